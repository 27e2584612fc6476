package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"thikana/internal/domain/entity"
	domainerrors "thikana/internal/domain/errors"
	"thikana/internal/domain/repository"
	"thikana/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100

	// nearbyCandidateLimit bounds how many rows a proximity search pulls before
	// distance filtering. Distance is computed in-process, not in SQL.
	nearbyCandidateLimit = 500
)

// ErrInvalidListingKind is returned when a request names an unknown listing kind.
var ErrInvalidListingKind = errors.New("invalid listing kind")

type listingService struct {
	propertyRepo repository.PropertyRepository
	projectRepo  repository.ProjectRepository
	logger       *slog.Logger
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	PropertyRepo repository.PropertyRepository
	ProjectRepo  repository.ProjectRepository
	Logger       *slog.Logger
}

// NewListingService creates a new listing service instance
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	return &listingService{
		propertyRepo: params.PropertyRepo,
		projectRepo:  params.ProjectRepo,
		logger:       params.Logger,
	}
}

// SearchListings retrieves listings of one kind matching the filters, newest first.
func (s *listingService) SearchListings(ctx context.Context, input usecase.SearchListingsInput) ([]*entity.Listing, error) {
	if !input.Kind.IsValid() {
		return nil, ErrInvalidListingKind
	}

	filter := repository.ListingFilter{
		City:        input.City,
		MinPrice:    input.MinPrice,
		MaxPrice:    input.MaxPrice,
		Bedrooms:    input.Bedrooms,
		ListingType: input.ListingType,
		Verified:    input.Verified,
		Limit:       clampLimit(input.Limit),
		Offset:      input.Offset,
	}

	listings, err := s.search(ctx, input.Kind, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search listings")
	}

	return listings, nil
}

// GetListing retrieves a listing of the given kind by id.
func (s *listingService) GetListing(ctx context.Context, kind entity.ListingKind, id uuid.UUID) (*entity.Listing, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidListingKind
	}

	listing, err := s.findByID(ctx, kind, id)
	if err != nil {
		if isNotFound(err) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by id")
	}

	return listing, nil
}

// GetListingBySlug retrieves a listing of the given kind by its URL slug.
func (s *listingService) GetListingBySlug(ctx context.Context, kind entity.ListingKind, slug string) (*entity.Listing, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidListingKind
	}

	var listing *entity.Listing
	var err error
	switch kind {
	case entity.KindProperty:
		listing, err = s.propertyRepo.FindPropertyBySlug(ctx, slug)
	case entity.KindProject:
		listing, err = s.projectRepo.FindProjectBySlug(ctx, slug)
	}
	if err != nil {
		if isNotFound(err) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by slug")
	}

	return listing, nil
}

// NearbyListings retrieves listings within a radius of a point, closest first.
func (s *listingService) NearbyListings(ctx context.Context, input usecase.NearbyListingsInput) ([]*usecase.NearbyListing, error) {
	kinds := []entity.ListingKind{entity.KindProperty, entity.KindProject}
	if input.Kind != "" {
		if !input.Kind.IsValid() {
			return nil, ErrInvalidListingKind
		}
		kinds = []entity.ListingKind{input.Kind}
	}

	center := orb.Point{input.Longitude, input.Latitude}
	var nearby []*usecase.NearbyListing
	for _, kind := range kinds {
		listings, err := s.search(ctx, kind, repository.ListingFilter{Limit: nearbyCandidateLimit})
		if err != nil {
			return nil, errors.Wrap(err, "failed to load nearby candidates")
		}
		for _, listing := range listings {
			distance := geo.Distance(center, listing.Location)
			if input.RadiusMeters > 0 && distance > input.RadiusMeters {
				continue
			}
			nearby = append(nearby, &usecase.NearbyListing{
				Listing:        listing,
				DistanceMeters: distance,
			})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})

	limit := clampLimit(input.Limit)
	if len(nearby) > limit {
		nearby = nearby[:limit]
	}

	return nearby, nil
}

// CreateListing creates a listing owned by the given agent.
func (s *listingService) CreateListing(ctx context.Context, agentID uuid.UUID, input *usecase.CreateListingInput) (*entity.Listing, error) {
	if !input.Kind.IsValid() {
		return nil, ErrInvalidListingKind
	}

	now := time.Now()
	listing := &entity.Listing{
		ID:          uuid.New(),
		Kind:        input.Kind,
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
		Price:       input.Price,
		City:        input.City,
		Area:        input.Area,
		AreaSqFt:    input.AreaSqFt,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		Amenities:   input.Amenities,
		Images:      input.Images,
		Location:    orb.Point{input.Longitude, input.Latitude},
		ListingType: input.ListingType,
		Attrs:       input.Attrs,
		AgentID:     agentID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var err error
	switch input.Kind {
	case entity.KindProperty:
		err = s.propertyRepo.CreateProperty(ctx, listing)
	case entity.KindProject:
		err = s.projectRepo.CreateProject(ctx, listing)
	}
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateProperty) || errors.Is(err, repository.ErrDuplicateProject) {
			return nil, domainerrors.ErrListingAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create listing")
	}

	return listing, nil
}

// UpdateListing applies a partial update under ownership rules.
func (s *listingService) UpdateListing(ctx context.Context, actorID uuid.UUID, roles entity.Roles, kind entity.ListingKind, id uuid.UUID, input *usecase.UpdateListingInput) (*entity.Listing, error) {
	listing, err := s.GetListing(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	if err := checkOwnership(listing, actorID, roles); err != nil {
		return nil, err
	}

	applyUpdate(listing, input)
	listing.UpdatedAt = time.Now()

	switch kind {
	case entity.KindProperty:
		err = s.propertyRepo.UpdateProperty(ctx, listing)
	case entity.KindProject:
		err = s.projectRepo.UpdateProject(ctx, listing)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update listing")
	}

	return listing, nil
}

// DeleteListing removes a listing under ownership rules.
func (s *listingService) DeleteListing(ctx context.Context, actorID uuid.UUID, roles entity.Roles, kind entity.ListingKind, id uuid.UUID) error {
	listing, err := s.GetListing(ctx, kind, id)
	if err != nil {
		return err
	}

	if err := checkOwnership(listing, actorID, roles); err != nil {
		return err
	}

	switch kind {
	case entity.KindProperty:
		err = s.propertyRepo.DeleteProperty(ctx, id)
	case entity.KindProject:
		err = s.projectRepo.DeleteProject(ctx, id)
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete listing")
	}

	return nil
}

func (s *listingService) search(ctx context.Context, kind entity.ListingKind, filter repository.ListingFilter) ([]*entity.Listing, error) {
	switch kind {
	case entity.KindProject:
		return s.projectRepo.SearchProjects(ctx, filter)
	default:
		return s.propertyRepo.SearchProperties(ctx, filter)
	}
}

func (s *listingService) findByID(ctx context.Context, kind entity.ListingKind, id uuid.UUID) (*entity.Listing, error) {
	switch kind {
	case entity.KindProject:
		return s.projectRepo.FindProjectByID(ctx, id)
	default:
		return s.propertyRepo.FindPropertyByID(ctx, id)
	}
}

func checkOwnership(listing *entity.Listing, actorID uuid.UUID, roles entity.Roles) error {
	if listing.AgentID == actorID || roles.Contains(entity.RoleAdmin) {
		return nil
	}

	return domainerrors.ErrListingForbidden
}

func applyUpdate(listing *entity.Listing, input *usecase.UpdateListingInput) {
	if input.Title != nil {
		listing.Title = *input.Title
	}
	if input.Description != nil {
		listing.Description = *input.Description
	}
	if input.Price != nil {
		listing.Price = *input.Price
	}
	if input.City != nil {
		listing.City = *input.City
	}
	if input.Area != nil {
		listing.Area = *input.Area
	}
	if input.AreaSqFt != nil {
		listing.AreaSqFt = *input.AreaSqFt
	}
	if input.Bedrooms != nil {
		listing.Bedrooms = *input.Bedrooms
	}
	if input.Bathrooms != nil {
		listing.Bathrooms = *input.Bathrooms
	}
	if input.Amenities != nil {
		listing.Amenities = input.Amenities
	}
	if input.Images != nil {
		listing.Images = input.Images
	}
	if input.ListingType != nil {
		listing.ListingType = *input.ListingType
	}
	if input.Verified != nil {
		listing.Verified = *input.Verified
	}
	if input.Attrs != nil {
		listing.Attrs = input.Attrs
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrPropertyNotFound) || errors.Is(err, repository.ErrProjectNotFound)
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultSearchLimit
	case limit > maxSearchLimit:
		return maxSearchLimit
	default:
		return limit
	}
}
