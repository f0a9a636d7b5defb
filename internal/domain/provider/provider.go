package provider

import (
	"context"
	"io"
	"time"
)

// BlobStore stores uploaded images and returns their public URL
type BlobStore interface {
	Put(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
}

// SnapshotCache holds serialised reference snapshots between requests
type SnapshotCache interface {
	GetJSON(ctx context.Context, key string, out interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// TokenIssuer signs admin access tokens
type TokenIssuer interface {
	Issue(adminID uint, email string, role string) (string, error)
}
