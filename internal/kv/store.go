package kv

import (
	"context"
)

// Store is a key-value blob store holding JSON-encoded entity collections
// under fixed keys. It mirrors the storage contract the application has
// always had: whole collections read and written as single blobs.
type Store interface {
	// Get decodes the blob under key into value; returns a not-found
	// marked error when the key has never been written
	Get(ctx context.Context, key string, value any) error

	// Set encodes value and stores it under key, replacing any prior blob
	Set(ctx context.Context, key string, value any) error

	// Delete removes the blob under key; deleting a missing key is a no-op
	Delete(ctx context.Context, key string) error
}
