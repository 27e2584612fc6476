package postgres

import (
	"context"

	"thikana/internal/domain/entity"
	"thikana/internal/domain/repository"
	"thikana/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// projectRepository implements the repository.ProjectRepository interface using GORM.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

// CreateProject persists a new project listing.
func (repo *projectRepository) CreateProject(ctx context.Context, listing *entity.Listing) error {
	projectM := &model.ProjectModel{ListingColumns: fromListingDomain(listing)}

	if err := repo.db.WithContext(ctx).Create(projectM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProject
		}

		return errors.Wrap(err, "failed to create project")
	}

	return nil
}

// FindProjectByID retrieves a project by its unique ID.
func (repo *projectRepository) FindProjectByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var projectM model.ProjectModel
	if err := repo.db.WithContext(ctx).First(&projectM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project by id")
	}

	return toListingDomain(entity.KindProject, &projectM.ListingColumns), nil
}

// FindProjectBySlug retrieves a project by its URL slug.
func (repo *projectRepository) FindProjectBySlug(ctx context.Context, slug string) (*entity.Listing, error) {
	var projectM model.ProjectModel
	if err := repo.db.WithContext(ctx).First(&projectM, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project by slug")
	}

	return toListingDomain(entity.KindProject, &projectM.ListingColumns), nil
}

// SearchProjects retrieves projects matching the filter, newest first.
func (repo *projectRepository) SearchProjects(ctx context.Context, filter repository.ListingFilter) ([]*entity.Listing, error) {
	var projectMs []model.ProjectModel
	query := applyListingFilter(repo.db.WithContext(ctx).Model(&model.ProjectModel{}), filter)
	if err := query.Find(&projectMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search projects")
	}

	listings := make([]*entity.Listing, 0, len(projectMs))
	for i := range projectMs {
		listings = append(listings, toListingDomain(entity.KindProject, &projectMs[i].ListingColumns))
	}

	return listings, nil
}

// UpdateProject persists changes to an existing project.
func (repo *projectRepository) UpdateProject(ctx context.Context, listing *entity.Listing) error {
	projectM := &model.ProjectModel{ListingColumns: fromListingDomain(listing)}

	result := repo.db.WithContext(ctx).Save(projectM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateProject
		}

		return errors.Wrap(result.Error, "failed to update project")
	}

	return nil
}

// DeleteProject removes a project by its ID.
func (repo *projectRepository) DeleteProject(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProjectModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete project")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}
