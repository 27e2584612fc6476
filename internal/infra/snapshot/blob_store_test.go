package snapshot

import (
	"context"
	"testing"

	"thikana/internal/compare"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobSnapshotStore_RoundTrip(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	opener := &bucketOpener{bucket: bucket}
	store := opener.OpenSnapshot("user-1")

	err := store.Write(context.Background(), []byte(`{"version":1,"items":[]}`))
	require.NoError(t, err)

	data, err := store.Read(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"items":[]}`, string(data))
}

func TestBlobSnapshotStore_AbsentKey(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	opener := &bucketOpener{bucket: bucket}
	store := opener.OpenSnapshot("never-written")

	_, err := store.Read(context.Background())
	assert.ErrorIs(t, err, compare.ErrSnapshotNotFound)
}

func TestBucketOpener_IsolatesOwners(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	opener := &bucketOpener{bucket: bucket}
	alice := opener.OpenSnapshot("alice")
	bob := opener.OpenSnapshot("bob")

	require.NoError(t, alice.Write(context.Background(), []byte(`{"version":1,"items":[{"id":"p1"}]}`)))

	_, err := bob.Read(context.Background())
	assert.ErrorIs(t, err, compare.ErrSnapshotNotFound)
}
