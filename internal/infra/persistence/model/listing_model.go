// Package model defines the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ListingColumns holds the column set shared by the 'properties' and
// 'projects' tables. Both tables have the same shape; the table a row lives
// in determines its kind. Slice and map attributes are stored as jsonb.
type ListingColumns struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Slug        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	Price       int64     `gorm:"not null;index"`
	City        string    `gorm:"type:varchar(100);index"`
	Area        string    `gorm:"type:varchar(100)"`
	AreaSqFt    int
	Bedrooms    int `gorm:"index"`
	Bathrooms   int
	Amenities   []byte `gorm:"type:jsonb"`
	Images      []byte `gorm:"type:jsonb"`
	Longitude   float64
	Latitude    float64
	Rating      float64
	Verified    bool      `gorm:"index"`
	ListingType string    `gorm:"type:varchar(20);index"`
	Attrs       []byte    `gorm:"type:jsonb"`
	AgentID     uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PropertyModel mirrors the 'properties' table.
type PropertyModel struct {
	ListingColumns `gorm:"embedded"`
}

// TableName explicitly sets the table name for GORM.
func (PropertyModel) TableName() string {
	return "properties"
}

// ProjectModel mirrors the 'projects' table.
type ProjectModel struct {
	ListingColumns `gorm:"embedded"`
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}
