package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestMediaStore(t *testing.T) *blobMediaStore {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := newBlobMediaStoreWithBucket(bucket, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return store.(*blobMediaStore)
}

func TestBlobMediaStore_PutAndList(t *testing.T) {
	ctx := context.Background()
	store := newTestMediaStore(t)

	ref, err := store.Put(ctx, "referrals/qr-abc.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "referrals/qr-abc.png", ref)

	_, err = store.Put(ctx, "receipts/order-1.txt", []byte("receipt"), "text/plain; charset=utf-8")
	require.NoError(t, err)

	objects, err := store.List(ctx, "referrals/")
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "referrals/qr-abc.png", objects[0].Key)
	assert.Equal(t, int64(len("png-bytes")), objects[0].Size)
	assert.False(t, objects[0].ModTime.IsZero())
}

func TestBlobMediaStore_ListEmptyPrefix(t *testing.T) {
	ctx := context.Background()
	store := newTestMediaStore(t)

	objects, err := store.List(ctx, "referrals/")
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestBlobMediaStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestMediaStore(t)

	_, err := store.Put(ctx, "referrals/qr-abc.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "referrals/qr-abc.png"))

	objects, err := store.List(ctx, "referrals/")
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestBlobMediaStore_DeleteMissingKey(t *testing.T) {
	store := newTestMediaStore(t)

	assert.NoError(t, store.Delete(context.Background(), "referrals/never-existed.png"))
}
