package usecase

import (
	"context"

	"thikana/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateLeadInput carries a visitor inquiry form submission.
type CreateLeadInput struct {
	ListingID   uuid.UUID
	ListingKind entity.ListingKind
	Name        string
	Email       string
	Phone       string
	Message     string
}

// LeadUsecase defines the inquiry pipeline use cases.
type LeadUsecase interface {
	// SubmitLead validates the referenced listing and records a new inquiry.
	SubmitLead(ctx context.Context, input *CreateLeadInput) (*entity.Lead, error)

	// GetLead retrieves a single lead by id.
	GetLead(ctx context.Context, id uuid.UUID) (*entity.Lead, error)

	// ListLeadsByStatus retrieves leads in a pipeline status, newest first.
	ListLeadsByStatus(ctx context.Context, status entity.LeadStatus) ([]*entity.Lead, error)

	// ListLeadsByAgent retrieves leads assigned to an agent, newest first.
	ListLeadsByAgent(ctx context.Context, agentID uuid.UUID) ([]*entity.Lead, error)

	// TransitionLead moves a lead to a new pipeline status.
	TransitionLead(ctx context.Context, id uuid.UUID, status entity.LeadStatus) error

	// AssignLead assigns a lead to an agent.
	AssignLead(ctx context.Context, id uuid.UUID, agentID uuid.UUID) error
}
