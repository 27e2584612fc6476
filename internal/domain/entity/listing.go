// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ListingKind distinguishes the two comparable listing types on the platform.
type ListingKind string

const (
	// KindProperty is a single unit for sale or rent.
	KindProperty ListingKind = "property"
	// KindProject is a development project containing multiple units.
	KindProject ListingKind = "project"
)

// String returns the string representation of the ListingKind.
func (k ListingKind) String() string {
	return string(k)
}

// IsValid checks if the ListingKind is a valid value.
func (k ListingKind) IsValid() bool {
	switch k {
	case KindProperty, KindProject:
		return true
	default:
		return false
	}
}

// Listing is a marketable real-estate entity, either a property or a project.
// Both kinds share the same shape; kind-specific attributes live in Attrs so the
// comparison layer can diff overlapping but non-identical schemas.
type Listing struct {
	ID          uuid.UUID      `json:"id"`           // The Global Unique Identifier (GUID) for the listing.
	Kind        ListingKind    `json:"kind"`         // Whether this is a property or a project.
	Title       string         `json:"title"`        // Display name shown on cards and comparison columns.
	Slug        string         `json:"slug"`         // URL-friendly identifier, unique per kind.
	Description string         `json:"description"`  // Marketing copy.
	Price       int64          `json:"price"`        // Asking price in the platform's base currency unit.
	City        string         `json:"city"`         // City the listing is located in.
	Area        string         `json:"area"`         // Neighbourhood or area within the city.
	AreaSqFt    int            `json:"area_sq_ft"`   // Floor area in square feet.
	Bedrooms    int            `json:"bedrooms"`     // Number of bedrooms (0 for land/commercial).
	Bathrooms   int            `json:"bathrooms"`    // Number of bathrooms.
	Amenities   []string       `json:"amenities"`    // Amenity tags (parking, pool, ...).
	Images      []string       `json:"images"`       // Image URLs, first one is the cover.
	Location    orb.Point      `json:"location"`     // Geographic position as lon/lat.
	Rating      float64        `json:"rating"`       // Aggregate review rating, 0 when unrated.
	Verified    bool           `json:"verified"`     // Whether an admin verified the listing.
	ListingType string         `json:"listing_type"` // Commercial intent: "sale" or "rent".
	Attrs       map[string]any `json:"attrs"`        // Kind-specific attributes, opaque to the domain.
	AgentID     uuid.UUID      `json:"agent_id"`     // The agent who owns this listing.
	CreatedAt   time.Time      `json:"created_at"`   // Timestamp of when the listing was created.
	UpdatedAt   time.Time      `json:"updated_at"`   // Timestamp of the last modification.
}

// ComparableAttrs flattens the fields a comparison table can diff, merged with the
// kind-specific Attrs bag. Key order is not significant here; the comparison layer
// establishes column-stable ordering.
func (l *Listing) ComparableAttrs() map[string]any {
	attrs := map[string]any{
		"price":        l.Price,
		"city":         l.City,
		"area":         l.Area,
		"area_sq_ft":   l.AreaSqFt,
		"bedrooms":     l.Bedrooms,
		"bathrooms":    l.Bathrooms,
		"rating":       l.Rating,
		"verified":     l.Verified,
		"listing_type": l.ListingType,
	}
	for k, v := range l.Attrs {
		attrs[k] = v
	}

	return attrs
}
