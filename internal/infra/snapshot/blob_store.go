// Package snapshot persists compare-tray snapshots through a gocloud.dev blob
// bucket, so the medium can be a local directory in development and cloud
// object storage in production without code changes.
package snapshot

import (
	"context"
	"log/slog"
	"path"

	"thikana/config"
	"thikana/internal/compare"
	"thikana/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Drivers registered for blob.OpenBucket URL schemes.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

const (
	keyPrefix = "compare"

	// defaultBucketURL keeps snapshots in process memory when no bucket is
	// configured; trays then live only as long as the process.
	defaultBucketURL = "mem://"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBucketOpener opens the configured bucket and returns a compare.SnapshotOpener
// handing out one snapshot key per tray owner.
func NewBucketOpener(params Params) (compare.SnapshotOpener, error) {
	bucketURL := defaultBucketURL
	if params.Config.Compare != nil && params.Config.Compare.BucketURL != "" {
		bucketURL = params.Config.Compare.BucketURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open snapshot bucket %q", bucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return &bucketOpener{bucket: bucket}, nil
}

type bucketOpener struct {
	bucket *blob.Bucket
}

func (o *bucketOpener) OpenSnapshot(owner string) compare.SnapshotStore {
	return &blobSnapshotStore{
		bucket: o.bucket,
		key:    path.Join(keyPrefix, owner+".json"),
	}
}

// blobSnapshotStore implements compare.SnapshotStore on a single blob key.
type blobSnapshotStore struct {
	bucket *blob.Bucket
	key    string
}

func (s *blobSnapshotStore) Read(ctx context.Context) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, s.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, compare.ErrSnapshotNotFound
		}

		return nil, errors.Wrapf(err, "failed to read snapshot %s", s.key)
	}

	return data, nil
}

func (s *blobSnapshotStore) Write(ctx context.Context, data []byte) error {
	if err := s.bucket.WriteAll(ctx, s.key, data, nil); err != nil {
		return errors.Wrapf(err, "failed to write snapshot %s", s.key)
	}

	return nil
}
