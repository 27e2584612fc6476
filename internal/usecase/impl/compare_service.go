// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"log/slog"
	"sort"

	"thikana/internal/compare"
	"thikana/internal/domain/entity"
	domainerrors "thikana/internal/domain/errors"
	"thikana/internal/domain/repository"
	"thikana/internal/domain/service"
	"thikana/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// resolveConcurrency caps how many listing lookups run at once per request.
const resolveConcurrency = 4

// baseAttrKeys fixes the leading row order of the comparison table; attribute
// keys outside this set are appended alphabetically so columns stay stable
// across requests.
var baseAttrKeys = []string{
	"price",
	"city",
	"area",
	"area_sq_ft",
	"bedrooms",
	"bathrooms",
	"rating",
	"verified",
	"listing_type",
}

type compareService struct {
	propertyRepo repository.PropertyRepository
	projectRepo  repository.ProjectRepository
	trays        *compare.Manager
	qrcodeSvc    service.QRCodeService
	logger       *slog.Logger
}

// CompareServiceParams holds dependencies for CompareService, injected by Fx.
type CompareServiceParams struct {
	fx.In

	PropertyRepo  repository.PropertyRepository
	ProjectRepo   repository.ProjectRepository
	Trays         *compare.Manager
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewCompareService creates a new comparison service instance
func NewCompareService(params CompareServiceParams) usecase.CompareUsecase {
	return &compareService{
		propertyRepo: params.PropertyRepo,
		projectRepo:  params.ProjectRepo,
		trays:        params.Trays,
		qrcodeSvc:    params.QRCodeService,
		logger:       params.Logger,
	}
}

// ResolveComparison resolves ids into full listings and assembles the
// comparison table. Lookups are issued concurrently but results are placed
// back in input order, since columns are positionally meaningful to the user
// who curated them.
func (s *compareService) ResolveComparison(ctx context.Context, ids []string) (*usecase.Comparison, error) {
	ids = dedupeIDs(ids)
	if len(ids) == 0 {
		return &usecase.Comparison{}, nil
	}

	resolved := make([]*usecase.ComparedListing, len(ids))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(resolveConcurrency)
	for i, id := range ids {
		group.Go(func() error {
			resolved[i] = s.resolveOne(groupCtx, id)

			return nil
		})
	}
	// Resolution failures are dropped per id, never propagated.
	_ = group.Wait()

	listings := make([]*usecase.ComparedListing, 0, len(resolved))
	for _, cl := range resolved {
		if cl != nil {
			listings = append(listings, cl)
		}
	}

	if len(listings) == 0 {
		return nil, domainerrors.ErrNothingToCompare
	}

	return &usecase.Comparison{
		Listings: listings,
		Rows:     buildComparisonRows(listings),
	}, nil
}

// resolveOne tries the property repository first, then falls back to projects,
// since ids are not namespaced by kind. Any failure on both sides drops the id.
func (s *compareService) resolveOne(ctx context.Context, id string) *usecase.ComparedListing {
	listingID, err := uuid.Parse(id)
	if err != nil {
		s.logger.Debug("skipping malformed comparison id", slog.String("id", id))

		return nil
	}

	property, err := s.propertyRepo.FindPropertyByID(ctx, listingID)
	if err == nil {
		return &usecase.ComparedListing{Kind: entity.KindProperty, Listing: property}
	}
	if !errors.Is(err, repository.ErrPropertyNotFound) {
		s.logger.Warn("property lookup failed during comparison",
			slog.String("id", id), slog.Any("error", err))
	}

	project, err := s.projectRepo.FindProjectByID(ctx, listingID)
	if err == nil {
		return &usecase.ComparedListing{Kind: entity.KindProject, Listing: project}
	}
	if !errors.Is(err, repository.ErrProjectNotFound) {
		s.logger.Warn("project lookup failed during comparison",
			slog.String("id", id), slog.Any("error", err))
	}

	return nil
}

// Tray returns the current tray snapshot for an owner.
func (s *compareService) Tray(ctx context.Context, owner string) []compare.Item {
	return s.trays.For(ctx, owner).Items()
}

// AddToTray resolves the listing and adds it to the owner's tray.
func (s *compareService) AddToTray(ctx context.Context, owner string, listingID string) (bool, error) {
	resolved := s.resolveOne(ctx, listingID)
	if resolved == nil {
		return false, domainerrors.ErrListingNotFound
	}

	item := compare.Item{
		ID:    resolved.Listing.ID.String(),
		Kind:  resolved.Kind,
		Title: resolved.Listing.Title,
		Attrs: resolved.Listing.ComparableAttrs(),
	}

	added, err := s.trays.For(ctx, owner).Add(ctx, item)
	if err != nil {
		return false, errors.Wrap(err, "failed to add listing to tray")
	}

	return added, nil
}

// RemoveFromTray removes the listing from the owner's tray.
func (s *compareService) RemoveFromTray(ctx context.Context, owner string, listingID string) bool {
	return s.trays.For(ctx, owner).Remove(ctx, listingID)
}

// GenerateShareQR renders a QR code for the comparison page URL.
func (s *compareService) GenerateShareQR(_ context.Context, ids []string) ([]byte, error) {
	ids = dedupeIDs(ids)
	if len(ids) == 0 {
		return nil, domainerrors.ErrNothingToCompare
	}

	png, err := s.qrcodeSvc.GenerateCompareQR(ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate comparison QR code")
	}

	return png, nil
}

// dedupeIDs drops empty and repeated ids while preserving first-seen order.
func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

// buildComparisonRows diffs the union of comparable attributes across columns.
// Known attribute keys keep their fixed order; kind-specific extras follow
// alphabetically.
func buildComparisonRows(listings []*usecase.ComparedListing) []usecase.ComparisonRow {
	attrs := make([]map[string]any, len(listings))
	for i, cl := range listings {
		attrs[i] = cl.Listing.ComparableAttrs()
	}

	base := make(map[string]struct{}, len(baseAttrKeys))
	for _, key := range baseAttrKeys {
		base[key] = struct{}{}
	}

	extraSet := make(map[string]struct{})
	for _, m := range attrs {
		for key := range m {
			if _, known := base[key]; !known {
				extraSet[key] = struct{}{}
			}
		}
	}
	extras := make([]string, 0, len(extraSet))
	for key := range extraSet {
		extras = append(extras, key)
	}
	sort.Strings(extras)

	keys := append(append([]string{}, baseAttrKeys...), extras...)
	rows := make([]usecase.ComparisonRow, 0, len(keys))
	for _, key := range keys {
		row := usecase.ComparisonRow{Key: key, Values: make([]any, len(attrs))}
		for i, m := range attrs {
			if value, ok := m[key]; ok {
				row.Values[i] = value
			}
		}
		rows = append(rows, row)
	}

	return rows
}
