// Package usecase provides testify mocks for the use case interfaces.
package usecase

import (
	"context"
	"testing"

	"thikana/internal/compare"
	"thikana/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockCompareUsecase mocks usecase.CompareUsecase.
type MockCompareUsecase struct {
	mock.Mock
}

// NewMockCompareUsecase creates a mock wired to the test lifecycle.
func NewMockCompareUsecase(t *testing.T) *MockCompareUsecase {
	m := &MockCompareUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCompareUsecase) ResolveComparison(ctx context.Context, ids []string) (*usecase.Comparison, error) {
	args := m.Called(ctx, ids)

	return comparisonOrNil(args.Get(0)), args.Error(1)
}

func (m *MockCompareUsecase) Tray(ctx context.Context, owner string) []compare.Item {
	args := m.Called(ctx, owner)

	return itemsOrNil(args.Get(0))
}

func (m *MockCompareUsecase) AddToTray(ctx context.Context, owner string, listingID string) (bool, error) {
	args := m.Called(ctx, owner, listingID)

	return args.Bool(0), args.Error(1)
}

func (m *MockCompareUsecase) RemoveFromTray(ctx context.Context, owner string, listingID string) bool {
	return m.Called(ctx, owner, listingID).Bool(0)
}

func (m *MockCompareUsecase) GenerateShareQR(ctx context.Context, ids []string) ([]byte, error) {
	args := m.Called(ctx, ids)

	return bytesOrNil(args.Get(0)), args.Error(1)
}

func comparisonOrNil(v any) *usecase.Comparison {
	if v == nil {
		return nil
	}

	return v.(*usecase.Comparison)
}

func itemsOrNil(v any) []compare.Item {
	if v == nil {
		return nil
	}

	return v.([]compare.Item)
}

func bytesOrNil(v any) []byte {
	if v == nil {
		return nil
	}

	return v.([]byte)
}
