package repository

import (
	"context"
	"testing"

	"thikana/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockLeadRepository mocks repository.LeadRepository.
type MockLeadRepository struct {
	mock.Mock
}

// NewMockLeadRepository creates a mock wired to the test lifecycle.
func NewMockLeadRepository(t *testing.T) *MockLeadRepository {
	m := &MockLeadRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLeadRepository) CreateLead(ctx context.Context, lead *entity.Lead) error {
	return m.Called(ctx, lead).Error(0)
}

func (m *MockLeadRepository) FindLeadByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	args := m.Called(ctx, id)

	return leadOrNil(args.Get(0)), args.Error(1)
}

func (m *MockLeadRepository) FindLeadsByAgent(ctx context.Context, agentID uuid.UUID) ([]*entity.Lead, error) {
	args := m.Called(ctx, agentID)

	return leadsOrNil(args.Get(0)), args.Error(1)
}

func (m *MockLeadRepository) FindLeadsByStatus(ctx context.Context, status entity.LeadStatus) ([]*entity.Lead, error) {
	args := m.Called(ctx, status)

	return leadsOrNil(args.Get(0)), args.Error(1)
}

func (m *MockLeadRepository) UpdateLeadStatus(ctx context.Context, id uuid.UUID, status entity.LeadStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockLeadRepository) AssignLead(ctx context.Context, id uuid.UUID, agentID uuid.UUID) error {
	return m.Called(ctx, id, agentID).Error(0)
}

func leadOrNil(v any) *entity.Lead {
	if v == nil {
		return nil
	}

	return v.(*entity.Lead)
}

func leadsOrNil(v any) []*entity.Lead {
	if v == nil {
		return nil
	}

	return v.([]*entity.Lead)
}
