package usecase

import (
	"context"

	"thikana/internal/domain/entity"

	"github.com/google/uuid"
)

// SearchListingsInput narrows a listing search. Zero values mean "no constraint".
type SearchListingsInput struct {
	Kind        entity.ListingKind
	City        string
	MinPrice    int64
	MaxPrice    int64
	Bedrooms    int
	ListingType string
	Verified    *bool
	Limit       int
	Offset      int
}

// CreateListingInput carries the fields an agent submits for a new listing.
type CreateListingInput struct {
	Kind        entity.ListingKind
	Title       string
	Slug        string
	Description string
	Price       int64
	City        string
	Area        string
	AreaSqFt    int
	Bedrooms    int
	Bathrooms   int
	Amenities   []string
	Images      []string
	Longitude   float64
	Latitude    float64
	ListingType string
	Attrs       map[string]any
}

// UpdateListingInput carries partial updates; nil fields are left unchanged.
type UpdateListingInput struct {
	Title       *string
	Description *string
	Price       *int64
	City        *string
	Area        *string
	AreaSqFt    *int
	Bedrooms    *int
	Bathrooms   *int
	Amenities   []string
	Images      []string
	ListingType *string
	Verified    *bool
	Attrs       map[string]any
}

// NearbyListingsInput describes a proximity search around a point.
type NearbyListingsInput struct {
	Kind         entity.ListingKind
	Longitude    float64
	Latitude     float64
	RadiusMeters float64
	Limit        int
}

// NearbyListing pairs a listing with its distance from the query point.
type NearbyListing struct {
	Listing        *entity.Listing `json:"listing"`
	DistanceMeters float64         `json:"distance_meters"`
}

// ListingUsecase defines the listing catalogue use cases.
type ListingUsecase interface {
	// SearchListings retrieves listings of one kind matching the filters, newest first.
	SearchListings(ctx context.Context, input SearchListingsInput) ([]*entity.Listing, error)

	// GetListing retrieves a listing of the given kind by id.
	GetListing(ctx context.Context, kind entity.ListingKind, id uuid.UUID) (*entity.Listing, error)

	// GetListingBySlug retrieves a listing of the given kind by its URL slug.
	GetListingBySlug(ctx context.Context, kind entity.ListingKind, slug string) (*entity.Listing, error)

	// NearbyListings retrieves listings within a radius of a point, closest first.
	NearbyListings(ctx context.Context, input NearbyListingsInput) ([]*NearbyListing, error)

	// CreateListing creates a listing owned by the given agent.
	CreateListing(ctx context.Context, agentID uuid.UUID, input *CreateListingInput) (*entity.Listing, error)

	// UpdateListing applies a partial update. Agents may only touch their own
	// listings; admins may touch any.
	UpdateListing(ctx context.Context, actorID uuid.UUID, roles entity.Roles, kind entity.ListingKind, id uuid.UUID, input *UpdateListingInput) (*entity.Listing, error)

	// DeleteListing removes a listing under the same ownership rules as UpdateListing.
	DeleteListing(ctx context.Context, actorID uuid.UUID, roles entity.Roles, kind entity.ListingKind, id uuid.UUID) error
}
