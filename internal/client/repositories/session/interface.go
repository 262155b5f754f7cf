// Package session persists the opaque bearer credential in local client
// storage. Storage trouble is never fatal: a store that cannot be read or
// written simply behaves as if no credential were present.
package session

import "context"

// Repository stores at most one credential under a fixed key.
//
// Get returns "" when no credential is stored. Save and Clear are
// best-effort; implementations backed by real storage absorb failures
// rather than surface them.
type Repository interface {
	Get(ctx context.Context) (string, error)
	Save(ctx context.Context, credential string) error
	Clear(ctx context.Context) error
}
