// Package tokenstore persists the bearer credential pair in client-durable
// storage so a session survives process restarts.
//
// The store holds exactly one pair under two well-known keys. Saving is
// atomic: after any operation either both tokens are present or neither.
// No token validation or expiry checking happens here; an expired token is
// only discovered through a rejected request.
package tokenstore

import (
	"context"

	"github.com/demobank/bankcli/internal/client/models"
)

// Storage keys for the credential pair.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
)

// Store persists and retrieves the current credential pair.
type Store interface {
	// Save persists both tokens, overwriting any existing pair.
	Save(ctx context.Context, pair models.TokenPair) error

	// Load returns the stored pair, or nil when either token is absent.
	Load(ctx context.Context) (*models.TokenPair, error)

	// Clear removes both tokens unconditionally. Safe to call repeatedly.
	Clear(ctx context.Context) error

	// HasToken reports whether an access token is present.
	HasToken(ctx context.Context) (bool, error)
}
