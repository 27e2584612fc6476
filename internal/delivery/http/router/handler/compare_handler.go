package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"thikana/internal/delivery/http/response"
	"thikana/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// trayCookieName identifies an anonymous visitor's comparison tray.
const trayCookieName = "tray_id"

// listingsRedirectPath is where the client should navigate once its comparison
// becomes empty, instead of rendering an empty table.
const listingsRedirectPath = "/listings"

// CompareHandlerParams holds dependencies for CompareHandler, injected by Fx.
type CompareHandlerParams struct {
	fx.In

	CompareUC usecase.CompareUsecase
	Logger    *slog.Logger
}

// CompareHandler holds dependencies for comparison tray and page handlers
type CompareHandler struct {
	compareUC usecase.CompareUsecase
	logger    *slog.Logger
}

// NewCompareHandler is the constructor for CompareHandler
func NewCompareHandler(params CompareHandlerParams) *CompareHandler {
	return &CompareHandler{
		compareUC: params.CompareUC,
		logger:    params.Logger,
	}
}

// AddToTrayRequest represents the request body for adding a listing to the tray
type AddToTrayRequest struct {
	ListingID string `json:"listing_id" validate:"required"`
}

// GetComparison resolves ?ids=a,b,c into a comparison table.
func (h *CompareHandler) GetComparison(c echo.Context) error {
	comparison, err := h.compareUC.ResolveComparison(c.Request().Context(), splitIDs(c.QueryParam("ids")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, comparison, "Comparison resolved successfully")
}

// ShareQR renders a QR code PNG that opens the comparison page for ?ids=...
func (h *CompareHandler) ShareQR(c echo.Context) error {
	png, err := h.compareUC.GenerateShareQR(c.Request().Context(), splitIDs(c.QueryParam("ids")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetTray returns the current tray snapshot for the caller.
func (h *CompareHandler) GetTray(c echo.Context) error {
	items := h.compareUC.Tray(c.Request().Context(), h.trayOwner(c))

	return response.Success(c, http.StatusOK, items, "Tray retrieved successfully")
}

// AddToTray resolves a listing and adds it to the caller's tray.
// The response reports whether the tray changed; adding a listing already in
// the tray, or adding to a full tray, is a silent no-op.
func (h *CompareHandler) AddToTray(c echo.Context) error {
	var req AddToTrayRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tray input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	owner := h.trayOwner(c)
	added, err := h.compareUC.AddToTray(c.Request().Context(), owner, req.ListingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"added": added,
		"items": h.compareUC.Tray(c.Request().Context(), owner),
	}, "Tray updated successfully")
}

// RemoveFromTray removes a listing from the caller's tray and returns the
// rewritten id list so the client can update its comparison URL. Removing the
// last item additionally carries the listings-page redirect so the client can
// navigate away instead of rendering an empty comparison.
func (h *CompareHandler) RemoveFromTray(c echo.Context) error {
	owner := h.trayOwner(c)
	removed := h.compareUC.RemoveFromTray(c.Request().Context(), owner, c.Param("id"))

	items := h.compareUC.Tray(c.Request().Context(), owner)
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	payload := map[string]any{
		"removed": removed,
		"ids":     ids,
	}
	if len(ids) == 0 {
		payload["redirect"] = listingsRedirectPath
	}

	return response.Success(c, http.StatusOK, payload, "Tray updated successfully")
}

// trayOwner determines whose tray the request operates on. Authenticated
// users get a stable per-account tray; anonymous visitors are keyed by a
// cookie minted on first use.
func (h *CompareHandler) trayOwner(c echo.Context) string {
	if userID, ok := c.Get("userID").(uuid.UUID); ok {
		return "user:" + userID.String()
	}

	if cookie, err := c.Cookie(trayCookieName); err == nil && cookie.Value != "" {
		return "anon:" + cookie.Value
	}

	trayID := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     trayCookieName,
		Value:    trayID,
		Path:     "/",
		Expires:  time.Now().Add(180 * 24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return "anon:" + trayID
}

// splitIDs parses a comma-separated ids query parameter, dropping empty segments.
func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}

	return ids
}
