// Package storage implements media persistence on top of gocloud.dev blob
// buckets, so local directories and cloud object stores share one code path.
package storage

import (
	"context"
	"io"
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // Register file:// bucket driver
	_ "gocloud.dev/blob/memblob"  // Register mem:// bucket driver
	"gocloud.dev/gcerrors"
)

type blobMediaStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// MediaStoreParams holds dependencies for the media store, injected by Fx
type MediaStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobMediaStore opens the configured bucket and returns a MediaStore
// backed by it.
func NewBlobMediaStore(params MediaStoreParams) (service.MediaStore, error) {
	if params.Config.Media == nil || params.Config.Media.BucketURL == "" {
		return nil, errors.New("media bucket url must be provided")
	}

	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", params.Config.Media.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Media store initialized",
		slog.String("bucket_url", params.Config.Media.BucketURL),
	)

	return &blobMediaStore{
		bucket: bucket,
		logger: params.Logger,
	}, nil
}

// newBlobMediaStoreWithBucket wires an already-open bucket, used by tests.
func newBlobMediaStoreWithBucket(bucket *blob.Bucket, logger *slog.Logger) service.MediaStore {
	return &blobMediaStore{
		bucket: bucket,
		logger: logger,
	}
}

// Put stores a blob under the given key and returns the key as its stable
// reference.
func (s *blobMediaStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()

		return "", errors.Wrapf(err, "failed to write %s", key)
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to finalize %s", key)
	}

	s.logger.DebugContext(ctx, "media stored",
		slog.String("key", key),
		slog.Int("size", len(data)),
	)

	return key, nil
}

// List enumerates stored blobs under a key prefix.
func (s *blobMediaStore) List(ctx context.Context, prefix string) ([]service.MediaObject, error) {
	var objects []service.MediaObject

	iter := s.bucket.List(&blob.ListOptions{Prefix: prefix})
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list prefix %s", prefix)
		}
		if obj.IsDir {
			continue
		}

		objects = append(objects, service.MediaObject{
			Key:     obj.Key,
			ModTime: obj.ModTime,
			Size:    obj.Size,
		})
	}

	return objects, nil
}

// Delete removes a stored blob. Missing keys are treated as already deleted.
func (s *blobMediaStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}
