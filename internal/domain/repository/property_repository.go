// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"thikana/internal/domain/entity"
	"thikana/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for property persistence.
var (
	// ErrPropertyNotFound is returned when a property is not found.
	ErrPropertyNotFound = errors.New("property not found")
	// ErrDuplicateProperty is returned when a property with the same slug already exists.
	ErrDuplicateProperty = errors.New("property already exists")
)

// ListingFilter narrows listing searches. Zero values mean "no constraint".
type ListingFilter struct {
	City        string
	MinPrice    int64
	MaxPrice    int64
	Bedrooms    int
	ListingType string
	Verified    *bool
	Limit       int
	Offset      int
}

// PropertyRepository defines the interface for property-related database operations.
type PropertyRepository interface {
	// CreateProperty persists a new property listing.
	CreateProperty(ctx context.Context, listing *entity.Listing) error

	// FindPropertyByID retrieves a property by its unique ID.
	FindPropertyByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// FindPropertyBySlug retrieves a property by its URL slug.
	FindPropertyBySlug(ctx context.Context, slug string) (*entity.Listing, error)

	// SearchProperties retrieves properties matching the filter, newest first.
	SearchProperties(ctx context.Context, filter ListingFilter) ([]*entity.Listing, error)

	// UpdateProperty persists changes to an existing property.
	UpdateProperty(ctx context.Context, listing *entity.Listing) error

	// DeleteProperty removes a property by its ID.
	DeleteProperty(ctx context.Context, id uuid.UUID) error
}
