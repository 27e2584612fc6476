// Package usecase defines the application's use case interfaces and their
// input/output types.
package usecase

import (
	"context"

	"thikana/internal/compare"
	"thikana/internal/domain/entity"
)

// ComparedListing is a resolved comparison column: the full listing tagged with
// which collaborator resolved it, so downstream code can pick the right detail
// route per kind.
type ComparedListing struct {
	Kind    entity.ListingKind `json:"kind"`
	Listing *entity.Listing    `json:"listing"`
}

// ComparisonRow is one attribute row across all comparison columns. Values is
// positionally aligned with the resolved listings; nil marks an attribute a
// listing does not carry.
type ComparisonRow struct {
	Key    string `json:"key"`
	Values []any  `json:"values"`
}

// Comparison is the fully resolved comparison table.
type Comparison struct {
	Listings []*ComparedListing `json:"listings"`
	Rows     []ComparisonRow    `json:"rows"`
}

// CompareUsecase defines the comparison tray and comparison page use cases.
type CompareUsecase interface {
	// ResolveComparison resolves each id against properties first, then
	// projects, drops ids neither can resolve, and assembles the survivors in
	// input order. A non-empty input where every id fails resolution returns
	// ErrNothingToCompare.
	ResolveComparison(ctx context.Context, ids []string) (*Comparison, error)

	// Tray returns the current tray snapshot for an owner.
	Tray(ctx context.Context, owner string) []compare.Item

	// AddToTray resolves the listing id and adds it to the owner's tray.
	// It returns false when nothing changed (already in the tray, or the tray
	// is full); the listing id failing to resolve is an error.
	AddToTray(ctx context.Context, owner string, listingID string) (bool, error)

	// RemoveFromTray removes the listing from the owner's tray, reporting
	// whether anything changed.
	RemoveFromTray(ctx context.Context, owner string, listingID string) bool

	// GenerateShareQR renders a QR code PNG for the comparison page URL of the
	// given ordered ids.
	GenerateShareQR(ctx context.Context, ids []string) ([]byte, error)
}
