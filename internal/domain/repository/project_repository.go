// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"thikana/internal/domain/entity"
	"thikana/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for project persistence.
var (
	// ErrProjectNotFound is returned when a project is not found.
	ErrProjectNotFound = errors.New("project not found")
	// ErrDuplicateProject is returned when a project with the same slug already exists.
	ErrDuplicateProject = errors.New("project already exists")
)

// ProjectRepository defines the interface for project-related database operations.
type ProjectRepository interface {
	// CreateProject persists a new project listing.
	CreateProject(ctx context.Context, listing *entity.Listing) error

	// FindProjectByID retrieves a project by its unique ID.
	FindProjectByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// FindProjectBySlug retrieves a project by its URL slug.
	FindProjectBySlug(ctx context.Context, slug string) (*entity.Listing, error)

	// SearchProjects retrieves projects matching the filter, newest first.
	SearchProjects(ctx context.Context, filter ListingFilter) ([]*entity.Listing, error)

	// UpdateProject persists changes to an existing project.
	UpdateProject(ctx context.Context, listing *entity.Listing) error

	// DeleteProject removes a project by its ID.
	DeleteProject(ctx context.Context, id uuid.UUID) error
}
