package impl

import (
	"context"
	"log/slog"
	"time"

	"thikana/internal/domain/entity"
	domainerrors "thikana/internal/domain/errors"
	"thikana/internal/domain/repository"
	"thikana/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type leadService struct {
	leadRepo     repository.LeadRepository
	propertyRepo repository.PropertyRepository
	projectRepo  repository.ProjectRepository
	logger       *slog.Logger
}

// LeadServiceParams holds dependencies for LeadService, injected by Fx.
type LeadServiceParams struct {
	fx.In

	LeadRepo     repository.LeadRepository
	PropertyRepo repository.PropertyRepository
	ProjectRepo  repository.ProjectRepository
	Logger       *slog.Logger
}

// NewLeadService creates a new lead service instance
func NewLeadService(params LeadServiceParams) usecase.LeadUsecase {
	return &leadService{
		leadRepo:     params.LeadRepo,
		propertyRepo: params.PropertyRepo,
		projectRepo:  params.ProjectRepo,
		logger:       params.Logger,
	}
}

// SubmitLead validates the referenced listing and records a new inquiry.
// The lead is pre-assigned to the listing's agent so it lands in the right
// dashboard immediately.
func (s *leadService) SubmitLead(ctx context.Context, input *usecase.CreateLeadInput) (*entity.Lead, error) {
	if !input.ListingKind.IsValid() {
		return nil, ErrInvalidListingKind
	}

	listing, err := s.findListing(ctx, input.ListingKind, input.ListingID)
	if err != nil {
		if isNotFound(err) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to validate lead listing")
	}

	now := time.Now()
	lead := &entity.Lead{
		ID:              uuid.New(),
		ListingID:       input.ListingID,
		ListingKind:     input.ListingKind,
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		Message:         input.Message,
		Status:          entity.LeadStatusNew,
		AssignedAgentID: listing.AgentID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.leadRepo.CreateLead(ctx, lead); err != nil {
		return nil, errors.Wrap(err, "failed to create lead")
	}

	s.logger.Info("lead submitted",
		slog.String("lead_id", lead.ID.String()),
		slog.String("listing_id", input.ListingID.String()),
		slog.String("kind", input.ListingKind.String()),
	)

	return lead, nil
}

// GetLead retrieves a single lead by id.
func (s *leadService) GetLead(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	lead, err := s.leadRepo.FindLeadByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return nil, domainerrors.ErrLeadNotFound
		}

		return nil, errors.Wrap(err, "failed to find lead by id")
	}

	return lead, nil
}

// ListLeadsByStatus retrieves leads in a pipeline status, newest first.
func (s *leadService) ListLeadsByStatus(ctx context.Context, status entity.LeadStatus) ([]*entity.Lead, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidLeadStatus
	}

	leads, err := s.leadRepo.FindLeadsByStatus(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find leads by status")
	}

	return leads, nil
}

// ListLeadsByAgent retrieves leads assigned to an agent, newest first.
func (s *leadService) ListLeadsByAgent(ctx context.Context, agentID uuid.UUID) ([]*entity.Lead, error) {
	leads, err := s.leadRepo.FindLeadsByAgent(ctx, agentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find leads by agent")
	}

	return leads, nil
}

// TransitionLead moves a lead to a new pipeline status.
func (s *leadService) TransitionLead(ctx context.Context, id uuid.UUID, status entity.LeadStatus) error {
	if !status.IsValid() {
		return domainerrors.ErrInvalidLeadStatus
	}

	if err := s.leadRepo.UpdateLeadStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return domainerrors.ErrLeadNotFound
		}

		return errors.Wrap(err, "failed to update lead status")
	}

	return nil
}

// AssignLead assigns a lead to an agent.
func (s *leadService) AssignLead(ctx context.Context, id uuid.UUID, agentID uuid.UUID) error {
	if err := s.leadRepo.AssignLead(ctx, id, agentID); err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return domainerrors.ErrLeadNotFound
		}
		if errors.Is(err, repository.ErrLeadAgentMissing) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to assign lead")
	}

	return nil
}

func (s *leadService) findListing(ctx context.Context, kind entity.ListingKind, id uuid.UUID) (*entity.Listing, error) {
	switch kind {
	case entity.KindProject:
		return s.projectRepo.FindProjectByID(ctx, id)
	default:
		return s.propertyRepo.FindPropertyByID(ctx, id)
	}
}
