package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"thikana/internal/compare"
	mockUsecase "thikana/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCompareHandler(t *testing.T) (*CompareHandler, *mockUsecase.MockCompareUsecase) {
	t.Helper()

	compareUC := mockUsecase.NewMockCompareUsecase(t)
	h := NewCompareHandler(CompareHandlerParams{
		CompareUC: compareUC,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, compareUC
}

func newRemoveFromTrayContext(t *testing.T, trayID, listingID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodDelete, "/compare/tray/"+listingID, nil)
	req.AddCookie(&http.Cookie{Name: trayCookieName, Value: trayID})
	rec := httptest.NewRecorder()

	c := echo.New().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(listingID)

	return c, rec
}

type removeFromTrayResponse struct {
	Data struct {
		Removed  bool     `json:"removed"`
		IDs      []string `json:"ids"`
		Redirect string   `json:"redirect"`
	} `json:"data"`
}

func TestCompareHandler_RemoveFromTray_RewritesIDs(t *testing.T) {
	h, compareUC := newCompareHandler(t)

	compareUC.On("RemoveFromTray", mock.Anything, "anon:tray-1", "p1").Return(true)
	compareUC.On("Tray", mock.Anything, "anon:tray-1").
		Return([]compare.Item{{ID: "p2", Title: "Lakeview Flat"}})

	c, rec := newRemoveFromTrayContext(t, "tray-1", "p1")
	require.NoError(t, h.RemoveFromTray(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body removeFromTrayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Data.Removed)
	assert.Equal(t, []string{"p2"}, body.Data.IDs)
	assert.NotContains(t, rec.Body.String(), "redirect")
}

func TestCompareHandler_RemoveFromTray_LastItemRedirects(t *testing.T) {
	h, compareUC := newCompareHandler(t)

	compareUC.On("RemoveFromTray", mock.Anything, "anon:tray-1", "p1").Return(true)
	compareUC.On("Tray", mock.Anything, "anon:tray-1").Return([]compare.Item{})

	c, rec := newRemoveFromTrayContext(t, "tray-1", "p1")
	require.NoError(t, h.RemoveFromTray(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body removeFromTrayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Data.Removed)
	assert.Empty(t, body.Data.IDs)
	assert.Equal(t, listingsRedirectPath, body.Data.Redirect)
}
