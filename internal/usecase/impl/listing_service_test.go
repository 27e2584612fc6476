package impl

import (
	"context"
	"testing"

	"thikana/internal/domain/entity"
	domainerrors "thikana/internal/domain/errors"
	"thikana/internal/domain/repository"
	mockRepo "thikana/internal/mocks/repository"
	"thikana/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newListingService(t *testing.T) (usecase.ListingUsecase, *mockRepo.MockPropertyRepository, *mockRepo.MockProjectRepository) {
	t.Helper()

	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	projectRepo := mockRepo.NewMockProjectRepository(t)

	svc := NewListingService(ListingServiceParams{
		PropertyRepo: propertyRepo,
		ProjectRepo:  projectRepo,
		Logger:       newDiscardLogger(),
	})

	return svc, propertyRepo, projectRepo
}

func TestListingService_SearchListings(t *testing.T) {
	svc, propertyRepo, _ := newListingService(t)

	expected := []*entity.Listing{{ID: uuid.New(), Kind: entity.KindProperty}}
	propertyRepo.On("SearchProperties", mock.Anything, repository.ListingFilter{
		City:  "Dhaka",
		Limit: defaultSearchLimit,
	}).Return(expected, nil)

	listings, err := svc.SearchListings(context.Background(), usecase.SearchListingsInput{
		Kind: entity.KindProperty,
		City: "Dhaka",
	})
	require.NoError(t, err)
	assert.Equal(t, expected, listings)
}

func TestListingService_SearchListings_ClampsLimit(t *testing.T) {
	svc, _, projectRepo := newListingService(t)

	projectRepo.On("SearchProjects", mock.Anything, repository.ListingFilter{
		Limit: maxSearchLimit,
	}).Return([]*entity.Listing{}, nil)

	_, err := svc.SearchListings(context.Background(), usecase.SearchListingsInput{
		Kind:  entity.KindProject,
		Limit: 10000,
	})
	assert.NoError(t, err)
}

func TestListingService_SearchListings_InvalidKind(t *testing.T) {
	svc, _, _ := newListingService(t)

	listings, err := svc.SearchListings(context.Background(), usecase.SearchListingsInput{Kind: "warehouse"})
	assert.ErrorIs(t, err, ErrInvalidListingKind)
	assert.Nil(t, listings)
}

func TestListingService_GetListing_NotFound(t *testing.T) {
	svc, propertyRepo, _ := newListingService(t)

	id := uuid.New()
	propertyRepo.On("FindPropertyByID", mock.Anything, id).
		Return(nil, repository.ErrPropertyNotFound)

	listing, err := svc.GetListing(context.Background(), entity.KindProperty, id)
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
	assert.Nil(t, listing)
}

func TestListingService_GetListingBySlug(t *testing.T) {
	svc, _, projectRepo := newListingService(t)

	expected := &entity.Listing{ID: uuid.New(), Kind: entity.KindProject, Slug: "lakeview-towers"}
	projectRepo.On("FindProjectBySlug", mock.Anything, "lakeview-towers").
		Return(expected, nil)

	listing, err := svc.GetListingBySlug(context.Background(), entity.KindProject, "lakeview-towers")
	require.NoError(t, err)
	assert.Equal(t, expected, listing)
}

func TestListingService_NearbyListings(t *testing.T) {
	svc, propertyRepo, _ := newListingService(t)

	// Gulshan circle as the query point; one listing nearby, one across the city.
	near := &entity.Listing{ID: uuid.New(), Kind: entity.KindProperty, Location: orb.Point{90.4152, 23.7925}}
	far := &entity.Listing{ID: uuid.New(), Kind: entity.KindProperty, Location: orb.Point{90.3563, 23.6850}}
	propertyRepo.On("SearchProperties", mock.Anything, repository.ListingFilter{Limit: nearbyCandidateLimit}).
		Return([]*entity.Listing{far, near}, nil)

	nearby, err := svc.NearbyListings(context.Background(), usecase.NearbyListingsInput{
		Kind:         entity.KindProperty,
		Longitude:    90.4150,
		Latitude:     23.7920,
		RadiusMeters: 2000,
	})
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, near.ID, nearby[0].Listing.ID)
	assert.Less(t, nearby[0].DistanceMeters, 2000.0)
}

func TestListingService_NearbyListings_SortsByDistance(t *testing.T) {
	svc, propertyRepo, _ := newListingService(t)

	closer := &entity.Listing{ID: uuid.New(), Location: orb.Point{90.4151, 23.7921}}
	farther := &entity.Listing{ID: uuid.New(), Location: orb.Point{90.4200, 23.7990}}
	propertyRepo.On("SearchProperties", mock.Anything, repository.ListingFilter{Limit: nearbyCandidateLimit}).
		Return([]*entity.Listing{farther, closer}, nil)

	nearby, err := svc.NearbyListings(context.Background(), usecase.NearbyListingsInput{
		Kind:      entity.KindProperty,
		Longitude: 90.4150,
		Latitude:  23.7920,
	})
	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, closer.ID, nearby[0].Listing.ID)
	assert.Equal(t, farther.ID, nearby[1].Listing.ID)
}

func TestListingService_CreateListing(t *testing.T) {
	svc, propertyRepo, _ := newListingService(t)

	agentID := uuid.New()
	propertyRepo.On("CreateProperty", mock.Anything, mock.MatchedBy(func(listing *entity.Listing) bool {
		return listing.AgentID == agentID && listing.Slug == "villa-a" && !listing.Verified
	})).Return(nil)

	listing, err := svc.CreateListing(context.Background(), agentID, &usecase.CreateListingInput{
		Kind:      entity.KindProperty,
		Title:     "Villa A",
		Slug:      "villa-a",
		Price:     12000000,
		City:      "Dhaka",
		Longitude: 90.4152,
		Latitude:  23.7925,
	})
	require.NoError(t, err)
	assert.Equal(t, agentID, listing.AgentID)
	assert.Equal(t, orb.Point{90.4152, 23.7925}, listing.Location)
}

func TestListingService_CreateListing_DuplicateSlug(t *testing.T) {
	svc, propertyRepo, _ := newListingService(t)

	propertyRepo.On("CreateProperty", mock.Anything, mock.Anything).
		Return(repository.ErrDuplicateProperty)

	listing, err := svc.CreateListing(context.Background(), uuid.New(), &usecase.CreateListingInput{
		Kind: entity.KindProperty,
		Slug: "villa-a",
	})
	assert.ErrorIs(t, err, domainerrors.ErrListingAlreadyExists)
	assert.Nil(t, listing)
}

func TestListingService_UpdateListing_OwnerOnly(t *testing.T) {
	svc, propertyRepo, _ := newListingService(t)

	owner := uuid.New()
	stranger := uuid.New()
	id := uuid.New()
	propertyRepo.On("FindPropertyByID", mock.Anything, id).
		Return(&entity.Listing{ID: id, Kind: entity.KindProperty, AgentID: owner}, nil)

	newTitle := "Renovated Villa A"
	listing, err := svc.UpdateListing(context.Background(), stranger, entity.Roles{entity.RoleAgent},
		entity.KindProperty, id, &usecase.UpdateListingInput{Title: &newTitle})
	assert.ErrorIs(t, err, domainerrors.ErrListingForbidden)
	assert.Nil(t, listing)
}

func TestListingService_UpdateListing_AdminOverride(t *testing.T) {
	svc, propertyRepo, _ := newListingService(t)

	id := uuid.New()
	propertyRepo.On("FindPropertyByID", mock.Anything, id).
		Return(&entity.Listing{ID: id, Kind: entity.KindProperty, AgentID: uuid.New(), Title: "Villa A"}, nil)
	propertyRepo.On("UpdateProperty", mock.Anything, mock.MatchedBy(func(listing *entity.Listing) bool {
		return listing.Title == "Villa A+" && listing.Verified
	})).Return(nil)

	newTitle := "Villa A+"
	verified := true
	listing, err := svc.UpdateListing(context.Background(), uuid.New(), entity.Roles{entity.RoleAdmin},
		entity.KindProperty, id, &usecase.UpdateListingInput{Title: &newTitle, Verified: &verified})
	require.NoError(t, err)
	assert.Equal(t, "Villa A+", listing.Title)
	assert.True(t, listing.Verified)
}

func TestListingService_DeleteListing(t *testing.T) {
	svc, _, projectRepo := newListingService(t)

	owner := uuid.New()
	id := uuid.New()
	projectRepo.On("FindProjectByID", mock.Anything, id).
		Return(&entity.Listing{ID: id, Kind: entity.KindProject, AgentID: owner}, nil)
	projectRepo.On("DeleteProject", mock.Anything, id).Return(nil)

	err := svc.DeleteListing(context.Background(), owner, entity.Roles{entity.RoleAgent}, entity.KindProject, id)
	assert.NoError(t, err)
}
