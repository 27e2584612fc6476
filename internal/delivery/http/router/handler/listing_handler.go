package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"thikana/internal/delivery/http/response"
	"thikana/internal/domain/entity"
	"thikana/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingUC usecase.ListingUsecase
	Logger    *slog.Logger
}

// ListingHandler holds dependencies for listing catalogue handlers
type ListingHandler struct {
	listingUC usecase.ListingUsecase
	logger    *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		listingUC: params.ListingUC,
		logger:    params.Logger,
	}
}

// CreateListingRequest represents the request body for creating a listing
type CreateListingRequest struct {
	Kind        string         `json:"kind" validate:"required,oneof=property project"`
	Title       string         `json:"title" validate:"required,max=255"`
	Slug        string         `json:"slug" validate:"required,max=255"`
	Description string         `json:"description"`
	Price       int64          `json:"price" validate:"required,gt=0"`
	City        string         `json:"city" validate:"required,max=100"`
	Area        string         `json:"area" validate:"max=100"`
	AreaSqFt    int            `json:"area_sq_ft"`
	Bedrooms    int            `json:"bedrooms"`
	Bathrooms   int            `json:"bathrooms"`
	Amenities   []string       `json:"amenities"`
	Images      []string       `json:"images"`
	Longitude   float64        `json:"longitude" validate:"min=-180,max=180"`
	Latitude    float64        `json:"latitude" validate:"min=-90,max=90"`
	ListingType string         `json:"listing_type" validate:"required,oneof=sale rent"`
	Attrs       map[string]any `json:"attrs"`
}

// UpdateListingRequest represents the request body for a partial listing update
type UpdateListingRequest struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Price       *int64         `json:"price"`
	City        *string        `json:"city"`
	Area        *string        `json:"area"`
	AreaSqFt    *int           `json:"area_sq_ft"`
	Bedrooms    *int           `json:"bedrooms"`
	Bathrooms   *int           `json:"bathrooms"`
	Amenities   []string       `json:"amenities"`
	Images      []string       `json:"images"`
	ListingType *string        `json:"listing_type"`
	Verified    *bool          `json:"verified"`
	Attrs       map[string]any `json:"attrs"`
}

// Search handles listing catalogue searches
func (h *ListingHandler) Search(c echo.Context) error {
	input := usecase.SearchListingsInput{
		Kind:        listingKindParam(c),
		City:        c.QueryParam("city"),
		ListingType: c.QueryParam("listing_type"),
		MinPrice:    queryInt64(c, "min_price"),
		MaxPrice:    queryInt64(c, "max_price"),
		Bedrooms:    queryInt(c, "bedrooms"),
		Limit:       queryInt(c, "limit"),
		Offset:      queryInt(c, "offset"),
	}
	if verified := c.QueryParam("verified"); verified != "" {
		v := verified == "true"
		input.Verified = &v
	}

	listings, err := h.listingUC.SearchListings(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listings, "Listings retrieved successfully")
}

// Nearby handles proximity searches around a point
func (h *ListingHandler) Nearby(c echo.Context) error {
	lon, lonErr := strconv.ParseFloat(c.QueryParam("lon"), 64)
	lat, latErr := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if lonErr != nil || latErr != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "lon and lat query parameters are required")
	}

	radius, _ := strconv.ParseFloat(c.QueryParam("radius"), 64)

	var kind entity.ListingKind
	if kindParam := c.QueryParam("kind"); kindParam != "" {
		kind = entity.ListingKind(kindParam)
	}

	nearby, err := h.listingUC.NearbyListings(c.Request().Context(), usecase.NearbyListingsInput{
		Kind:         kind,
		Longitude:    lon,
		Latitude:     lat,
		RadiusMeters: radius,
		Limit:        queryInt(c, "limit"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nearby, "Nearby listings retrieved successfully")
}

// Get handles listing detail lookups by id or slug
func (h *ListingHandler) Get(c echo.Context) error {
	kind := listingKindParam(c)
	ctx := c.Request().Context()

	idOrSlug := c.Param("id")
	id, err := uuid.Parse(idOrSlug)

	var listing *entity.Listing
	if err == nil {
		listing, err = h.listingUC.GetListing(ctx, kind, id)
	} else {
		listing, err = h.listingUC.GetListingBySlug(ctx, kind, idOrSlug)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing, "Listing retrieved successfully")
}

// Create handles listing creation by agents
func (h *ListingHandler) Create(c echo.Context) error {
	agentID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	listing, err := h.listingUC.CreateListing(c.Request().Context(), agentID, &usecase.CreateListingInput{
		Kind:        entity.ListingKind(req.Kind),
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       req.Price,
		City:        req.City,
		Area:        req.Area,
		AreaSqFt:    req.AreaSqFt,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Amenities:   req.Amenities,
		Images:      req.Images,
		Longitude:   req.Longitude,
		Latitude:    req.Latitude,
		ListingType: req.ListingType,
		Attrs:       req.Attrs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, listing, "Listing created successfully")
}

// Update handles partial listing updates under ownership rules
func (h *ListingHandler) Update(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	var req UpdateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}

	listing, err := h.listingUC.UpdateListing(c.Request().Context(), actorID,
		entity.RolesFromStrings(getRoles(c)), listingKindParam(c), id, &usecase.UpdateListingInput{
			Title:       req.Title,
			Description: req.Description,
			Price:       req.Price,
			City:        req.City,
			Area:        req.Area,
			AreaSqFt:    req.AreaSqFt,
			Bedrooms:    req.Bedrooms,
			Bathrooms:   req.Bathrooms,
			Amenities:   req.Amenities,
			Images:      req.Images,
			ListingType: req.ListingType,
			Verified:    req.Verified,
			Attrs:       req.Attrs,
		})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing, "Listing updated successfully")
}

// Delete handles listing removal under ownership rules
func (h *ListingHandler) Delete(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	if err := h.listingUC.DeleteListing(c.Request().Context(), actorID,
		entity.RolesFromStrings(getRoles(c)), listingKindParam(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Listing deleted"}, "Listing deleted successfully")
}

// listingKindParam reads the kind query parameter, defaulting to property.
func listingKindParam(c echo.Context) entity.ListingKind {
	if kind := c.QueryParam("kind"); kind != "" {
		return entity.ListingKind(kind)
	}

	return entity.KindProperty
}

func queryInt(c echo.Context, name string) int {
	value, _ := strconv.Atoi(c.QueryParam(name))

	return value
}

func queryInt64(c echo.Context, name string) int64 {
	value, _ := strconv.ParseInt(c.QueryParam(name), 10, 64)

	return value
}
