package compare

import (
	"context"
	"log/slog"
	"sync"
)

// SnapshotOpener yields the snapshot medium for one tray owner. Owners are
// authenticated user ids or anonymous tray cookies; each owner gets an
// isolated persisted snapshot.
type SnapshotOpener interface {
	OpenSnapshot(owner string) SnapshotStore
}

// Manager hands out one Store per tray owner, creating and rehydrating it on
// first use. Stores are cached for the process lifetime so every request for
// the same owner observes the same live selection.
type Manager struct {
	mu     sync.Mutex
	stores map[string]*Store

	opener SnapshotOpener
	logger *slog.Logger
	opts   []Option
}

// NewManager creates a manager. The options are applied to every store it
// constructs.
func NewManager(opener SnapshotOpener, logger *slog.Logger, opts ...Option) *Manager {
	return &Manager{
		stores: make(map[string]*Store),
		opener: opener,
		logger: logger,
		opts:   opts,
	}
}

// For returns the store for the given owner, constructing it on first access.
func (m *Manager) For(ctx context.Context, owner string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[owner]; ok {
		return store
	}

	var snapshots SnapshotStore
	if m.opener != nil {
		snapshots = m.opener.OpenSnapshot(owner)
	}
	store := NewStore(ctx, snapshots, m.logger, m.opts...)
	m.stores[owner] = store

	return store
}
