// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"context"
	"testing"

	"thikana/internal/domain/entity"
	"thikana/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPropertyRepository mocks repository.PropertyRepository.
type MockPropertyRepository struct {
	mock.Mock
}

// NewMockPropertyRepository creates a mock wired to the test lifecycle.
func NewMockPropertyRepository(t *testing.T) *MockPropertyRepository {
	m := &MockPropertyRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPropertyRepository) CreateProperty(ctx context.Context, listing *entity.Listing) error {
	return m.Called(ctx, listing).Error(0)
}

func (m *MockPropertyRepository) FindPropertyByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	args := m.Called(ctx, id)

	return listingOrNil(args.Get(0)), args.Error(1)
}

func (m *MockPropertyRepository) FindPropertyBySlug(ctx context.Context, slug string) (*entity.Listing, error) {
	args := m.Called(ctx, slug)

	return listingOrNil(args.Get(0)), args.Error(1)
}

func (m *MockPropertyRepository) SearchProperties(ctx context.Context, filter repository.ListingFilter) ([]*entity.Listing, error) {
	args := m.Called(ctx, filter)

	return listingsOrNil(args.Get(0)), args.Error(1)
}

func (m *MockPropertyRepository) UpdateProperty(ctx context.Context, listing *entity.Listing) error {
	return m.Called(ctx, listing).Error(0)
}

func (m *MockPropertyRepository) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockProjectRepository mocks repository.ProjectRepository.
type MockProjectRepository struct {
	mock.Mock
}

// NewMockProjectRepository creates a mock wired to the test lifecycle.
func NewMockProjectRepository(t *testing.T) *MockProjectRepository {
	m := &MockProjectRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProjectRepository) CreateProject(ctx context.Context, listing *entity.Listing) error {
	return m.Called(ctx, listing).Error(0)
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	args := m.Called(ctx, id)

	return listingOrNil(args.Get(0)), args.Error(1)
}

func (m *MockProjectRepository) FindProjectBySlug(ctx context.Context, slug string) (*entity.Listing, error) {
	args := m.Called(ctx, slug)

	return listingOrNil(args.Get(0)), args.Error(1)
}

func (m *MockProjectRepository) SearchProjects(ctx context.Context, filter repository.ListingFilter) ([]*entity.Listing, error) {
	args := m.Called(ctx, filter)

	return listingsOrNil(args.Get(0)), args.Error(1)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, listing *entity.Listing) error {
	return m.Called(ctx, listing).Error(0)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func listingOrNil(v any) *entity.Listing {
	if v == nil {
		return nil
	}

	return v.(*entity.Listing)
}

func listingsOrNil(v any) []*entity.Listing {
	if v == nil {
		return nil
	}

	return v.([]*entity.Listing)
}
