// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"thikana/internal/domain/entity"
	"thikana/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for lead persistence.
var (
	// ErrLeadNotFound is returned when a lead is not found.
	ErrLeadNotFound = errors.New("lead not found")
	// ErrLeadAgentMissing is returned when a lead is assigned to an agent that
	// does not exist.
	ErrLeadAgentMissing = errors.New("assigned agent does not exist")
)

// LeadRepository defines the interface for lead-related database operations.
type LeadRepository interface {
	// CreateLead persists a new inquiry.
	CreateLead(ctx context.Context, lead *entity.Lead) error

	// FindLeadByID retrieves a lead by its unique ID.
	FindLeadByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error)

	// FindLeadsByAgent retrieves all leads assigned to an agent, newest first.
	FindLeadsByAgent(ctx context.Context, agentID uuid.UUID) ([]*entity.Lead, error)

	// FindLeadsByStatus retrieves all leads in a given pipeline status, newest first.
	FindLeadsByStatus(ctx context.Context, status entity.LeadStatus) ([]*entity.Lead, error)

	// UpdateLeadStatus transitions a lead to a new pipeline status.
	UpdateLeadStatus(ctx context.Context, id uuid.UUID, status entity.LeadStatus) error

	// AssignLead assigns a lead to an agent.
	AssignLead(ctx context.Context, id uuid.UUID, agentID uuid.UUID) error
}
