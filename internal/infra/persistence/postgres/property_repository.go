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

// propertyRepository implements the repository.PropertyRepository interface using GORM.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository is the constructor for propertyRepository.
// It returns the repository as a repository.PropertyRepository interface, adhering to dependency inversion.
func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

// CreateProperty persists a new property listing.
func (repo *propertyRepository) CreateProperty(ctx context.Context, listing *entity.Listing) error {
	propertyM := &model.PropertyModel{ListingColumns: fromListingDomain(listing)}

	if err := repo.db.WithContext(ctx).Create(propertyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProperty
		}

		return errors.Wrap(err, "failed to create property")
	}

	return nil
}

// FindPropertyByID retrieves a property by its unique ID.
func (repo *propertyRepository) FindPropertyByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var propertyM model.PropertyModel
	if err := repo.db.WithContext(ctx).First(&propertyM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property by id")
	}

	return toListingDomain(entity.KindProperty, &propertyM.ListingColumns), nil
}

// FindPropertyBySlug retrieves a property by its URL slug.
func (repo *propertyRepository) FindPropertyBySlug(ctx context.Context, slug string) (*entity.Listing, error) {
	var propertyM model.PropertyModel
	if err := repo.db.WithContext(ctx).First(&propertyM, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property by slug")
	}

	return toListingDomain(entity.KindProperty, &propertyM.ListingColumns), nil
}

// SearchProperties retrieves properties matching the filter, newest first.
func (repo *propertyRepository) SearchProperties(ctx context.Context, filter repository.ListingFilter) ([]*entity.Listing, error) {
	var propertyMs []model.PropertyModel
	query := applyListingFilter(repo.db.WithContext(ctx).Model(&model.PropertyModel{}), filter)
	if err := query.Find(&propertyMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search properties")
	}

	listings := make([]*entity.Listing, 0, len(propertyMs))
	for i := range propertyMs {
		listings = append(listings, toListingDomain(entity.KindProperty, &propertyMs[i].ListingColumns))
	}

	return listings, nil
}

// UpdateProperty persists changes to an existing property.
func (repo *propertyRepository) UpdateProperty(ctx context.Context, listing *entity.Listing) error {
	propertyM := &model.PropertyModel{ListingColumns: fromListingDomain(listing)}

	result := repo.db.WithContext(ctx).Save(propertyM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateProperty
		}

		return errors.Wrap(result.Error, "failed to update property")
	}

	return nil
}

// DeleteProperty removes a property by its ID.
func (repo *propertyRepository) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.PropertyModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete property")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}
