package compare

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryOpener struct {
	mediums map[string]*memorySnapshots
}

func (o *memoryOpener) OpenSnapshot(owner string) SnapshotStore {
	if o.mediums == nil {
		o.mediums = make(map[string]*memorySnapshots)
	}
	if _, ok := o.mediums[owner]; !ok {
		o.mediums[owner] = &memorySnapshots{}
	}

	return o.mediums[owner]
}

func TestManager_SameOwnerSameStore(t *testing.T) {
	manager := NewManager(&memoryOpener{}, newDiscardLogger())

	first := manager.For(context.Background(), "user-1")
	second := manager.For(context.Background(), "user-1")
	assert.Same(t, first, second)
}

func TestManager_OwnersAreIsolated(t *testing.T) {
	manager := NewManager(&memoryOpener{}, newDiscardLogger())

	alice := manager.For(context.Background(), "alice")
	bob := manager.For(context.Background(), "bob")

	added, err := alice.Add(context.Background(), item("p1", "Villa A"))
	require.NoError(t, err)
	require.True(t, added)

	assert.Equal(t, 1, alice.Len())
	assert.Equal(t, 0, bob.Len())
}

func TestManager_RehydratesPerOwnerSnapshot(t *testing.T) {
	opener := &memoryOpener{}

	manager := NewManager(opener, newDiscardLogger())
	store := manager.For(context.Background(), "user-1")
	_, err := store.Add(context.Background(), item("p1", "Villa A"))
	require.NoError(t, err)

	// A fresh manager simulates a process restart against the same medium.
	restarted := NewManager(opener, newDiscardLogger())
	reloaded := restarted.For(context.Background(), "user-1")
	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
}

func TestManager_OptionsApplyToEveryStore(t *testing.T) {
	manager := NewManager(&memoryOpener{}, newDiscardLogger(), WithMaxItems(1))

	store := manager.For(context.Background(), "user-1")
	added, err := store.Add(context.Background(), item("p1", "a"))
	require.NoError(t, err)
	require.True(t, added)

	added, err = store.Add(context.Background(), item("p2", "b"))
	require.NoError(t, err)
	assert.False(t, added)
}
