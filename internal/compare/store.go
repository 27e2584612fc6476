// Package compare implements the cross-page comparison tray: a bounded,
// insertion-ordered selection of listings shared by every UI surface that can
// add to, remove from, or render the tray. The store is the single source of
// truth for "which listings are selected"; consumers observe it through
// Subscribe and never mutate returned snapshots.
package compare

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"thikana/internal/domain/entity"
	"thikana/internal/errors"
)

// DefaultMaxItems is the comparison capacity surfaced in the UI.
const DefaultMaxItems = 4

// snapshotVersion tags the persisted envelope so a future shape change of Item
// can migrate instead of silently corrupting older snapshots.
const snapshotVersion = 1

var (
	// ErrMissingID is returned when an item without an id is added. This is a
	// programmer error, not an expected condition.
	ErrMissingID = errors.New("compare: item id must not be empty")

	// ErrSnapshotNotFound is returned by a SnapshotStore when no snapshot has
	// been persisted yet. The store treats it as an empty tray, not a failure.
	ErrSnapshotNotFound = errors.New("compare: snapshot not found")
)

// Item is a listing as carried by the store. The store keys items by ID and
// treats the remaining fields as an opaque bag for consumers to render.
type Item struct {
	ID    string             `json:"id"`
	Kind  entity.ListingKind `json:"kind"`
	Title string             `json:"title"`
	Attrs map[string]any     `json:"attrs,omitempty"`
}

func (i Item) clone() Item {
	if i.Attrs == nil {
		return i
	}
	attrs := make(map[string]any, len(i.Attrs))
	for k, v := range i.Attrs {
		attrs[k] = v
	}
	i.Attrs = attrs

	return i
}

// SnapshotStore is the durable medium a store persists its contents to.
// Persistence is best-effort: failures are logged by the store and never
// affect in-memory state.
type SnapshotStore interface {
	// Read returns the last persisted snapshot, or ErrSnapshotNotFound when
	// nothing has been persisted under this store's key.
	Read(ctx context.Context) ([]byte, error)

	// Write replaces the persisted snapshot.
	Write(ctx context.Context, data []byte) error
}

// envelope is the versioned persisted form of the tray.
type envelope struct {
	Version int    `json:"version"`
	Items   []Item `json:"items"`
}

// Subscriber receives the full current snapshot on every real mutation.
type Subscriber func(items []Item)

// Store holds the comparison selection. All methods are safe for concurrent
// use; mutations are serialized by an internal mutex and subscribers are
// notified outside of it, each with its own snapshot copy.
type Store struct {
	mu        sync.Mutex
	items     []Item
	max       int
	subs      map[int]Subscriber
	nextSubID int

	snapshots SnapshotStore
	logger    *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithMaxItems overrides the comparison capacity.
func WithMaxItems(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.max = n
		}
	}
}

// NewStore creates a store rehydrated from the snapshot medium. A missing or
// unreadable snapshot yields an empty store; rehydration never fails the
// caller.
func NewStore(ctx context.Context, snapshots SnapshotStore, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		max:       DefaultMaxItems,
		subs:      make(map[int]Subscriber),
		snapshots: snapshots,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.rehydrate(ctx)

	return s
}

func (s *Store) rehydrate(ctx context.Context) {
	if s.snapshots == nil {
		return
	}

	data, err := s.snapshots.Read(ctx)
	if err != nil {
		if !errors.Is(err, ErrSnapshotNotFound) {
			s.logger.Warn("failed to read compare snapshot, starting empty", slog.Any("error", err))
		}

		return
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		s.logger.Warn("corrupt compare snapshot, starting empty", slog.Any("error", err))

		return
	}
	if env.Version != snapshotVersion {
		s.logger.Warn("unsupported compare snapshot version, starting empty",
			slog.Int("version", env.Version))

		return
	}

	// Re-apply set semantics on load: drop empty/duplicate ids and clamp to
	// capacity in case the snapshot was written by a differently configured
	// instance.
	seen := make(map[string]struct{}, len(env.Items))
	for _, item := range env.Items {
		if item.ID == "" {
			continue
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		if len(s.items) == s.max {
			break
		}
		seen[item.ID] = struct{}{}
		s.items = append(s.items, item.clone())
	}
}

// Items returns a snapshot of the current selection in insertion order.
// The returned slice is a defensive copy; mutating it does not affect the store.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// Len returns the number of selected items.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

// Contains reports whether an item with the given id is selected.
func (s *Store) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.indexOfLocked(id) >= 0
}

// Add inserts the item if it is not already selected and the tray has room.
// It returns false when nothing changed: the id was already present
// (duplicates keep the original item) or the tray is full. Callers use the
// return value to decide whether to surface an "already compared" or
// "maximum reached" message. A missing id returns ErrMissingID.
func (s *Store) Add(ctx context.Context, item Item) (bool, error) {
	if item.ID == "" {
		return false, ErrMissingID
	}

	s.mu.Lock()
	if s.indexOfLocked(item.ID) >= 0 || len(s.items) >= s.max {
		s.mu.Unlock()

		return false, nil
	}

	s.items = append(s.items, item.clone())
	s.persistLocked(ctx)
	subs, snapshot := s.notifyArgsLocked()
	s.mu.Unlock()

	notify(subs, snapshot)

	return true, nil
}

// Remove deletes the item with the given id. It returns false when the id was
// not selected; that case is a silent no-op and does not notify subscribers.
func (s *Store) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	idx := s.indexOfLocked(id)
	if idx < 0 {
		s.mu.Unlock()

		return false
	}

	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.persistLocked(ctx)
	subs, snapshot := s.notifyArgsLocked()
	s.mu.Unlock()

	notify(subs, snapshot)

	return true
}

// Clear empties the tray. An already-empty tray is a silent no-op.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	if len(s.items) == 0 {
		s.mu.Unlock()

		return
	}

	s.items = nil
	s.persistLocked(ctx)
	subs, snapshot := s.notifyArgsLocked()
	s.mu.Unlock()

	notify(subs, snapshot)
}

// Subscribe registers a callback invoked with the full snapshot: once
// immediately, so a newly mounted consumer sees the current state, and again
// after every real mutation. The returned function unsubscribes and is safe
// to call more than once. A subscriber may unsubscribe itself from within
// its callback.
func (s *Store) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	fn(snapshot)

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) indexOfLocked(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}

	return -1
}

func (s *Store) snapshotLocked() []Item {
	snapshot := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		snapshot = append(snapshot, item.clone())
	}

	return snapshot
}

// persistLocked writes the current selection to the snapshot medium. A write
// failure only loses "remembered across restart", never "reflects the current
// click", so it is logged and swallowed.
func (s *Store) persistLocked(ctx context.Context) {
	if s.snapshots == nil {
		return
	}

	data, err := json.Marshal(envelope{Version: snapshotVersion, Items: s.items})
	if err != nil {
		s.logger.Warn("failed to encode compare snapshot", slog.Any("error", err))

		return
	}
	if err := s.snapshots.Write(ctx, data); err != nil {
		s.logger.Warn("failed to persist compare snapshot", slog.Any("error", err))
	}
}

// notifyArgsLocked captures the subscriber list and snapshot under the lock so
// callbacks run outside it and a callback unsubscribing itself cannot corrupt
// the iteration.
func (s *Store) notifyArgsLocked() ([]Subscriber, []Item) {
	subs := make([]Subscriber, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}

	return subs, s.snapshotLocked()
}

func notify(subs []Subscriber, snapshot []Item) {
	for _, fn := range subs {
		// Each subscriber gets its own copy so one callback cannot leak
		// mutations into another.
		own := make([]Item, len(snapshot))
		for i, item := range snapshot {
			own[i] = item.clone()
		}
		fn(own)
	}
}
