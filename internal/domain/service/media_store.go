package service

import (
	"context"
	"time"
)

// MediaObject describes one stored blob.
type MediaObject struct {
	Key     string
	ModTime time.Time
	Size    int64
}

// MediaStore persists generated artifacts (referral QR images, order
// receipts, referral videos) and returns stable references the gateway can
// deliver. Uploads happen after the session commit, off the per-customer
// lock.
type MediaStore interface {
	// Put stores a blob under the given key and returns its reference.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// List enumerates stored blobs under a key prefix.
	List(ctx context.Context, prefix string) ([]MediaObject, error)

	// Delete removes a stored blob. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
