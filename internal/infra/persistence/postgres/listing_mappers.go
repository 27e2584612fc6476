package postgres

import (
	"encoding/json"

	"thikana/internal/domain/entity"
	"thikana/internal/domain/repository"
	"thikana/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"gorm.io/gorm"
)

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence columns.
// Slice and map attributes are carried as jsonb; a marshal failure can only
// come from non-serializable values, which the entity never holds, so the
// encoded form falls back to null.

func toListingDomain(kind entity.ListingKind, columns *model.ListingColumns) *entity.Listing {
	if columns == nil {
		return nil
	}

	return &entity.Listing{
		ID:          columns.ID,
		Kind:        kind,
		Title:       columns.Title,
		Slug:        columns.Slug,
		Description: columns.Description,
		Price:       columns.Price,
		City:        columns.City,
		Area:        columns.Area,
		AreaSqFt:    columns.AreaSqFt,
		Bedrooms:    columns.Bedrooms,
		Bathrooms:   columns.Bathrooms,
		Amenities:   decodeStrings(columns.Amenities),
		Images:      decodeStrings(columns.Images),
		Location:    orb.Point{columns.Longitude, columns.Latitude},
		Rating:      columns.Rating,
		Verified:    columns.Verified,
		ListingType: columns.ListingType,
		Attrs:       decodeAttrs(columns.Attrs),
		AgentID:     columns.AgentID,
		CreatedAt:   columns.CreatedAt,
		UpdatedAt:   columns.UpdatedAt,
	}
}

func fromListingDomain(listing *entity.Listing) model.ListingColumns {
	return model.ListingColumns{
		ID:          listing.ID,
		Title:       listing.Title,
		Slug:        listing.Slug,
		Description: listing.Description,
		Price:       listing.Price,
		City:        listing.City,
		Area:        listing.Area,
		AreaSqFt:    listing.AreaSqFt,
		Bedrooms:    listing.Bedrooms,
		Bathrooms:   listing.Bathrooms,
		Amenities:   encodeJSON(listing.Amenities),
		Images:      encodeJSON(listing.Images),
		Longitude:   listing.Location.Lon(),
		Latitude:    listing.Location.Lat(),
		Rating:      listing.Rating,
		Verified:    listing.Verified,
		ListingType: listing.ListingType,
		Attrs:       encodeJSON(listing.Attrs),
		AgentID:     listing.AgentID,
		CreatedAt:   listing.CreatedAt,
		UpdatedAt:   listing.UpdatedAt,
	}
}

func encodeJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}

	return data
}

func decodeStrings(data []byte) []string {
	if len(data) == 0 {
		return nil
	}

	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil
	}

	return values
}

func decodeAttrs(data []byte) map[string]any {
	if len(data) == 0 {
		return nil
	}

	var attrs map[string]any
	if err := json.Unmarshal(data, &attrs); err != nil {
		return nil
	}

	return attrs
}

// applyListingFilter narrows a listing query with the non-zero filter fields.
func applyListingFilter(query *gorm.DB, filter repository.ListingFilter) *gorm.DB {
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.MinPrice > 0 {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price <= ?", filter.MaxPrice)
	}
	if filter.Bedrooms > 0 {
		query = query.Where("bedrooms = ?", filter.Bedrooms)
	}
	if filter.ListingType != "" {
		query = query.Where("listing_type = ?", filter.ListingType)
	}
	if filter.Verified != nil {
		query = query.Where("verified = ?", *filter.Verified)
	}

	return query.Order("created_at DESC").Limit(filter.Limit).Offset(filter.Offset)
}
