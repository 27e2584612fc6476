package postgres

import (
	"context"
	"time"

	"thikana/internal/domain/entity"
	"thikana/internal/domain/repository"
	"thikana/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// leadRepository implements the repository.LeadRepository interface using GORM.
type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository is the constructor for leadRepository.
func NewLeadRepository(db *gorm.DB) repository.LeadRepository {
	return &leadRepository{db: db}
}

// CreateLead persists a new inquiry.
func (repo *leadRepository) CreateLead(ctx context.Context, lead *entity.Lead) error {
	leadM := fromLeadDomain(lead)

	if err := repo.db.WithContext(ctx).Create(leadM).Error; err != nil {
		return errors.Wrap(err, "failed to create lead")
	}

	return nil
}

// FindLeadByID retrieves a lead by its unique ID.
func (repo *leadRepository) FindLeadByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	var leadM model.LeadModel
	if err := repo.db.WithContext(ctx).First(&leadM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLeadNotFound
		}

		return nil, errors.Wrap(err, "failed to find lead by id")
	}

	return toLeadDomain(&leadM), nil
}

// FindLeadsByAgent retrieves leads assigned to an agent, newest first.
func (repo *leadRepository) FindLeadsByAgent(ctx context.Context, agentID uuid.UUID) ([]*entity.Lead, error) {
	var leadMs []model.LeadModel
	err := repo.db.WithContext(ctx).
		Where("assigned_agent_id = ?", agentID).
		Order("created_at DESC").
		Find(&leadMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find leads by agent")
	}

	return toLeadDomains(leadMs), nil
}

// FindLeadsByStatus retrieves leads in a pipeline status, newest first.
func (repo *leadRepository) FindLeadsByStatus(ctx context.Context, status entity.LeadStatus) ([]*entity.Lead, error) {
	var leadMs []model.LeadModel
	err := repo.db.WithContext(ctx).
		Where("status = ?", status.String()).
		Order("created_at DESC").
		Find(&leadMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find leads by status")
	}

	return toLeadDomains(leadMs), nil
}

// UpdateLeadStatus moves a lead to a new pipeline status.
func (repo *leadRepository) UpdateLeadStatus(ctx context.Context, id uuid.UUID, status entity.LeadStatus) error {
	return repo.updateLeadColumns(ctx, id, map[string]any{
		"status":     status.String(),
		"updated_at": time.Now(),
	})
}

// AssignLead assigns a lead to an agent. The assigned_agent_id column
// references users, so assigning a nonexistent agent trips the foreign key.
func (repo *leadRepository) AssignLead(ctx context.Context, id uuid.UUID, agentID uuid.UUID) error {
	err := repo.updateLeadColumns(ctx, id, map[string]any{
		"assigned_agent_id": agentID,
		"updated_at":        time.Now(),
	})
	if isForeignKeyConstraintViolation(err) {
		return repository.ErrLeadAgentMissing
	}

	return err
}

func (repo *leadRepository) updateLeadColumns(ctx context.Context, id uuid.UUID, columns map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LeadModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update lead")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLeadNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toLeadDomain(data *model.LeadModel) *entity.Lead {
	if data == nil {
		return nil
	}

	return &entity.Lead{
		ID:              data.ID,
		ListingID:       data.ListingID,
		ListingKind:     entity.ListingKind(data.ListingKind),
		Name:            data.Name,
		Email:           data.Email,
		Phone:           data.Phone,
		Message:         data.Message,
		Status:          entity.LeadStatus(data.Status),
		AssignedAgentID: data.AssignedAgentID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toLeadDomains(data []model.LeadModel) []*entity.Lead {
	leads := make([]*entity.Lead, 0, len(data))
	for i := range data {
		leads = append(leads, toLeadDomain(&data[i]))
	}

	return leads
}

func fromLeadDomain(data *entity.Lead) *model.LeadModel {
	if data == nil {
		return nil
	}

	return &model.LeadModel{
		ID:              data.ID,
		ListingID:       data.ListingID,
		ListingKind:     data.ListingKind.String(),
		Name:            data.Name,
		Email:           data.Email,
		Phone:           data.Phone,
		Message:         data.Message,
		Status:          data.Status.String(),
		AssignedAgentID: data.AssignedAgentID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
