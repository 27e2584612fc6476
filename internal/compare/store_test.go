package compare

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"thikana/internal/domain/entity"
	"thikana/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memorySnapshots is an in-memory SnapshotStore shared across store instances
// to simulate a reload against the same persisted medium.
type memorySnapshots struct {
	data       []byte
	failWrites bool
	failReads  bool
	writes     int
}

func (m *memorySnapshots) Read(_ context.Context) ([]byte, error) {
	if m.failReads {
		return nil, errors.New("read failed")
	}
	if m.data == nil {
		return nil, ErrSnapshotNotFound
	}

	return m.data, nil
}

func (m *memorySnapshots) Write(_ context.Context, data []byte) error {
	m.writes++
	if m.failWrites {
		return errors.New("write failed")
	}
	m.data = data

	return nil
}

func item(id, title string) Item {
	return Item{ID: id, Kind: entity.KindProperty, Title: title}
}

func TestStore_Add_Idempotent(t *testing.T) {
	store := NewStore(context.Background(), nil, newDiscardLogger())

	added, err := store.Add(context.Background(), item("p1", "Villa A"))
	require.NoError(t, err)
	assert.True(t, added)

	added, err = store.Add(context.Background(), item("p1", "Villa A"))
	require.NoError(t, err)
	assert.False(t, added)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
}

func TestStore_Add_DuplicateKeepsOriginal(t *testing.T) {
	store := NewStore(context.Background(), nil, newDiscardLogger())

	_, err := store.Add(context.Background(), item("p1", "Original Title"))
	require.NoError(t, err)

	added, err := store.Add(context.Background(), item("p1", "Stale Cached Title"))
	require.NoError(t, err)
	assert.False(t, added)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Original Title", items[0].Title)
}

func TestStore_Add_MissingID(t *testing.T) {
	store := NewStore(context.Background(), nil, newDiscardLogger())

	added, err := store.Add(context.Background(), Item{Title: "no id"})
	assert.ErrorIs(t, err, ErrMissingID)
	assert.False(t, added)
	assert.Empty(t, store.Items())
}

func TestStore_Add_CapacityBound(t *testing.T) {
	store := NewStore(context.Background(), nil, newDiscardLogger())

	ids := []string{"p1", "p2", "p3", "p4"}
	for _, id := range ids {
		added, err := store.Add(context.Background(), item(id, id))
		require.NoError(t, err)
		require.True(t, added)
	}

	added, err := store.Add(context.Background(), item("p5", "one too many"))
	require.NoError(t, err)
	assert.False(t, added)

	items := store.Items()
	require.Len(t, items, DefaultMaxItems)
	for i, id := range ids {
		assert.Equal(t, id, items[i].ID)
	}
}

func TestStore_WithMaxItems(t *testing.T) {
	store := NewStore(context.Background(), nil, newDiscardLogger(), WithMaxItems(2))

	added, err := store.Add(context.Background(), item("p1", "a"))
	require.NoError(t, err)
	require.True(t, added)
	added, err = store.Add(context.Background(), item("p2", "b"))
	require.NoError(t, err)
	require.True(t, added)

	added, err = store.Add(context.Background(), item("p3", "c"))
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 2, store.Len())
}

func TestStore_Remove_Idempotent(t *testing.T) {
	store := NewStore(context.Background(), nil, newDiscardLogger())

	_, err := store.Add(context.Background(), item("p1", "Villa A"))
	require.NoError(t, err)

	assert.True(t, store.Remove(context.Background(), "p1"))
	assert.False(t, store.Remove(context.Background(), "p1"))
	assert.False(t, store.Remove(context.Background(), "never-there"))
	assert.Empty(t, store.Items())
}

func TestStore_SubscriberFanOut(t *testing.T) {
	store := NewStore(context.Background(), nil, newDiscardLogger())

	calls := make([]int, 3)
	last := make([][]Item, 3)
	for i := range calls {
		store.Subscribe(func(items []Item) {
			calls[i]++
			last[i] = items
		})
	}

	// Each subscriber got the immediate initial delivery.
	for i := range calls {
		require.Equal(t, 1, calls[i])
		assert.Empty(t, last[i])
	}

	added, err := store.Add(context.Background(), item("p1", "Villa A"))
	require.NoError(t, err)
	require.True(t, added)

	for i := range calls {
		assert.Equal(t, 2, calls[i])
		require.Len(t, last[i], 1)
		assert.Equal(t, "p1", last[i][0].ID)
	}
}

func TestStore_NoOpDoesNotNotify(t *testing.T) {
	store := NewStore(context.Background(), nil, newDiscardLogger())

	_, err := store.Add(context.Background(), item("p1", "Villa A"))
	require.NoError(t, err)

	notifications := 0
	store.Subscribe(func([]Item) { notifications++ })
	require.Equal(t, 1, notifications) // initial delivery only

	_, err = store.Add(context.Background(), item("p1", "Villa A"))
	require.NoError(t, err)
	assert.Equal(t, 1, notifications)

	store.Remove(context.Background(), "absent")
	assert.Equal(t, 1, notifications)

	// Clearing an empty store after removing everything is also silent.
	store.Remove(context.Background(), "p1")
	assert.Equal(t, 2, notifications)
	store.Clear(context.Background())
	assert.Equal(t, 2, notifications)
}

func TestStore_Unsubscribe(t *testing.T) {
	store := NewStore(context.Background(), nil, newDiscardLogger())

	notifications := 0
	unsubscribe := store.Subscribe(func([]Item) { notifications++ })
	require.Equal(t, 1, notifications)

	unsubscribe()
	unsubscribe() // idempotent

	_, err := store.Add(context.Background(), item("p1", "Villa A"))
	require.NoError(t, err)
	assert.Equal(t, 1, notifications)
}

func TestStore_SelfUnsubscribeDuringNotify(t *testing.T) {
	store := NewStore(context.Background(), nil, newDiscardLogger())

	calls := 0
	var unsubscribe func()
	unsubscribe = store.Subscribe(func(items []Item) {
		calls++
		if len(items) > 0 {
			unsubscribe()
		}
	})

	_, err := store.Add(context.Background(), item("p1", "a"))
	require.NoError(t, err)
	_, err = store.Add(context.Background(), item("p2", "b"))
	require.NoError(t, err)

	// Initial delivery plus the first mutation; the second mutation must not
	// reach the unsubscribed callback.
	assert.Equal(t, 2, calls)
}

func TestStore_SnapshotIsDefensiveCopy(t *testing.T) {
	store := NewStore(context.Background(), nil, newDiscardLogger())

	src := item("p1", "Villa A")
	src.Attrs = map[string]any{"price": 100}
	_, err := store.Add(context.Background(), src)
	require.NoError(t, err)

	items := store.Items()
	items[0].ID = "mutated"
	items[0].Attrs["price"] = 999

	fresh := store.Items()
	assert.Equal(t, "p1", fresh[0].ID)
	assert.Equal(t, 100, fresh[0].Attrs["price"])
}

func TestStore_RoundTripPersistence(t *testing.T) {
	medium := &memorySnapshots{}

	store := NewStore(context.Background(), medium, newDiscardLogger())
	_, err := store.Add(context.Background(), item("p1", "Villa A"))
	require.NoError(t, err)
	_, err = store.Add(context.Background(), item("p2", "Villa B"))
	require.NoError(t, err)

	reloaded := NewStore(context.Background(), medium, newDiscardLogger())
	items := reloaded.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, "p2", items[1].ID)
}

func TestStore_PersistenceFailureDoesNotAffectState(t *testing.T) {
	medium := &memorySnapshots{failWrites: true}
	store := NewStore(context.Background(), medium, newDiscardLogger())

	notifications := 0
	store.Subscribe(func([]Item) { notifications++ })

	added, err := store.Add(context.Background(), item("p1", "Villa A"))
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 2, notifications)
	assert.Equal(t, 1, medium.writes)
}

func TestStore_UnreadableSnapshotStartsEmpty(t *testing.T) {
	store := NewStore(context.Background(), &memorySnapshots{failReads: true}, newDiscardLogger())
	assert.Empty(t, store.Items())
}

func TestStore_CorruptSnapshotStartsEmpty(t *testing.T) {
	medium := &memorySnapshots{data: []byte("{not json")}
	store := NewStore(context.Background(), medium, newDiscardLogger())
	assert.Empty(t, store.Items())
}

func TestStore_UnsupportedSnapshotVersionStartsEmpty(t *testing.T) {
	medium := &memorySnapshots{data: []byte(`{"version":99,"items":[{"id":"p1"}]}`)}
	store := NewStore(context.Background(), medium, newDiscardLogger())
	assert.Empty(t, store.Items())
}

func TestStore_RehydrateDropsDuplicatesAndClamps(t *testing.T) {
	medium := &memorySnapshots{data: []byte(
		`{"version":1,"items":[{"id":"p1"},{"id":"p1"},{"id":""},{"id":"p2"},{"id":"p3"}]}`,
	)}
	store := NewStore(context.Background(), medium, newDiscardLogger(), WithMaxItems(2))

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, "p2", items[1].ID)
}

func TestStore_EndToEnd(t *testing.T) {
	store := NewStore(context.Background(), nil, newDiscardLogger())

	added, err := store.Add(context.Background(), item("p1", "Villa A"))
	require.NoError(t, err)
	require.True(t, added)
	require.Len(t, store.Items(), 1)

	added, err = store.Add(context.Background(), item("p1", "Villa A"))
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 1, store.Len())

	assert.True(t, store.Remove(context.Background(), "p1"))
	assert.Empty(t, store.Items())
}
