package impl

import (
	"context"
	"testing"

	"thikana/internal/compare"
	"thikana/internal/domain/entity"
	domainerrors "thikana/internal/domain/errors"
	"thikana/internal/domain/repository"
	mockRepo "thikana/internal/mocks/repository"
	mockSvc "thikana/internal/mocks/service"
	"thikana/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCompareService(t *testing.T) (usecase.CompareUsecase, *mockRepo.MockPropertyRepository, *mockRepo.MockProjectRepository, *mockSvc.MockQRCodeService) {
	t.Helper()

	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	projectRepo := mockRepo.NewMockProjectRepository(t)
	qrcodeSvc := mockSvc.NewMockQRCodeService(t)

	svc := NewCompareService(CompareServiceParams{
		PropertyRepo:  propertyRepo,
		ProjectRepo:   projectRepo,
		Trays:         compare.NewManager(nil, newDiscardLogger()),
		QRCodeService: qrcodeSvc,
		Logger:        newDiscardLogger(),
	})

	return svc, propertyRepo, projectRepo, qrcodeSvc
}

func listing(id uuid.UUID, kind entity.ListingKind, title string, price int64) *entity.Listing {
	return &entity.Listing{
		ID:    id,
		Kind:  kind,
		Title: title,
		Price: price,
		City:  "Dhaka",
	}
}

func TestCompareService_ResolveComparison_OrderAndFallback(t *testing.T) {
	svc, propertyRepo, projectRepo, _ := newCompareService(t)

	p1 := uuid.New()
	p2 := uuid.New()
	missing := uuid.New()

	propertyRepo.On("FindPropertyByID", mock.Anything, p1).
		Return(listing(p1, entity.KindProperty, "Villa A", 100), nil)
	propertyRepo.On("FindPropertyByID", mock.Anything, p2).
		Return(nil, repository.ErrPropertyNotFound)
	projectRepo.On("FindProjectByID", mock.Anything, p2).
		Return(listing(p2, entity.KindProject, "Lakeview Towers", 200), nil)
	propertyRepo.On("FindPropertyByID", mock.Anything, missing).
		Return(nil, repository.ErrPropertyNotFound)
	projectRepo.On("FindProjectByID", mock.Anything, missing).
		Return(nil, repository.ErrProjectNotFound)

	comparison, err := svc.ResolveComparison(context.Background(),
		[]string{p1.String(), p2.String(), missing.String()})
	require.NoError(t, err)
	require.Len(t, comparison.Listings, 2)

	// Results come back in input order regardless of lookup completion order.
	assert.Equal(t, entity.KindProperty, comparison.Listings[0].Kind)
	assert.Equal(t, "Villa A", comparison.Listings[0].Listing.Title)
	assert.Equal(t, entity.KindProject, comparison.Listings[1].Kind)
	assert.Equal(t, "Lakeview Towers", comparison.Listings[1].Listing.Title)

	require.NotEmpty(t, comparison.Rows)
	assert.Equal(t, "price", comparison.Rows[0].Key)
	require.Len(t, comparison.Rows[0].Values, 2)
	assert.Equal(t, int64(100), comparison.Rows[0].Values[0])
	assert.Equal(t, int64(200), comparison.Rows[0].Values[1])
}

func TestCompareService_ResolveComparison_RepositoryErrorFallsThrough(t *testing.T) {
	svc, propertyRepo, projectRepo, _ := newCompareService(t)

	id := uuid.New()
	propertyRepo.On("FindPropertyByID", mock.Anything, id).
		Return(nil, errors.New("db down"))
	projectRepo.On("FindProjectByID", mock.Anything, id).
		Return(listing(id, entity.KindProject, "Fallback Project", 300), nil)

	comparison, err := svc.ResolveComparison(context.Background(), []string{id.String()})
	require.NoError(t, err)
	require.Len(t, comparison.Listings, 1)
	assert.Equal(t, entity.KindProject, comparison.Listings[0].Kind)
}

func TestCompareService_ResolveComparison_EmptyInput(t *testing.T) {
	svc, _, _, _ := newCompareService(t)

	comparison, err := svc.ResolveComparison(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, comparison.Listings)
	assert.Empty(t, comparison.Rows)
}

func TestCompareService_ResolveComparison_AllFail(t *testing.T) {
	svc, propertyRepo, projectRepo, _ := newCompareService(t)

	id := uuid.New()
	propertyRepo.On("FindPropertyByID", mock.Anything, id).
		Return(nil, repository.ErrPropertyNotFound)
	projectRepo.On("FindProjectByID", mock.Anything, id).
		Return(nil, repository.ErrProjectNotFound)

	comparison, err := svc.ResolveComparison(context.Background(), []string{id.String(), "not-a-uuid"})
	assert.ErrorIs(t, err, domainerrors.ErrNothingToCompare)
	assert.Nil(t, comparison)
}

func TestCompareService_ResolveComparison_DeduplicatesIDs(t *testing.T) {
	svc, propertyRepo, _, _ := newCompareService(t)

	id := uuid.New()
	propertyRepo.On("FindPropertyByID", mock.Anything, id).
		Return(listing(id, entity.KindProperty, "Villa A", 100), nil).Once()

	comparison, err := svc.ResolveComparison(context.Background(), []string{id.String(), id.String()})
	require.NoError(t, err)
	assert.Len(t, comparison.Listings, 1)
}

func TestCompareService_AddToTray(t *testing.T) {
	svc, propertyRepo, _, _ := newCompareService(t)

	id := uuid.New()
	propertyRepo.On("FindPropertyByID", mock.Anything, id).
		Return(listing(id, entity.KindProperty, "Villa A", 100), nil)

	added, err := svc.AddToTray(context.Background(), "user-1", id.String())
	require.NoError(t, err)
	assert.True(t, added)

	// A second add of the same listing is a no-op signalled via false.
	added, err = svc.AddToTray(context.Background(), "user-1", id.String())
	require.NoError(t, err)
	assert.False(t, added)

	items := svc.Tray(context.Background(), "user-1")
	require.Len(t, items, 1)
	assert.Equal(t, id.String(), items[0].ID)
	assert.Equal(t, "Villa A", items[0].Title)
	assert.Equal(t, entity.KindProperty, items[0].Kind)
}

func TestCompareService_AddToTray_UnknownListing(t *testing.T) {
	svc, propertyRepo, projectRepo, _ := newCompareService(t)

	id := uuid.New()
	propertyRepo.On("FindPropertyByID", mock.Anything, id).
		Return(nil, repository.ErrPropertyNotFound)
	projectRepo.On("FindProjectByID", mock.Anything, id).
		Return(nil, repository.ErrProjectNotFound)

	added, err := svc.AddToTray(context.Background(), "user-1", id.String())
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
	assert.False(t, added)
}

func TestCompareService_RemoveFromTray(t *testing.T) {
	svc, propertyRepo, _, _ := newCompareService(t)

	id := uuid.New()
	propertyRepo.On("FindPropertyByID", mock.Anything, id).
		Return(listing(id, entity.KindProperty, "Villa A", 100), nil)

	_, err := svc.AddToTray(context.Background(), "user-1", id.String())
	require.NoError(t, err)

	assert.True(t, svc.RemoveFromTray(context.Background(), "user-1", id.String()))
	assert.False(t, svc.RemoveFromTray(context.Background(), "user-1", id.String()))
	assert.Empty(t, svc.Tray(context.Background(), "user-1"))
}

func TestCompareService_GenerateShareQR(t *testing.T) {
	svc, _, _, qrcodeSvc := newCompareService(t)

	qrcodeSvc.On("GenerateCompareQR", []string{"p1", "p2"}).
		Return([]byte("png-bytes"), nil)

	png, err := svc.GenerateShareQR(context.Background(), []string{"p1", "p2"})
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestCompareService_GenerateShareQR_EmptyIDs(t *testing.T) {
	svc, _, _, _ := newCompareService(t)

	png, err := svc.GenerateShareQR(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrNothingToCompare)
	assert.Nil(t, png)
}
