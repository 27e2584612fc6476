package postgres

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Constraint checks rely on GORM's TranslateError option, which maps
// PostgreSQL error codes onto GORM sentinel errors.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
