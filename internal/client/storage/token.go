package storage

import (
	"context"
)

//go:generate moq -out tokenstorage_mock.go . TokenStorage

// TokenStorage defines the credential store for the single session token.
// Implementations persist the token encrypted at rest; callers always see
// the plaintext value. At most one token is held at a time: SaveToken fully
// replaces any previous value.
type TokenStorage interface {
	// SaveToken durably stores the session token, replacing any previous one
	SaveToken(ctx context.Context, token string) error

	// GetToken retrieves the stored session token
	// Returns ErrTokenNotFound if no token is stored
	GetToken(ctx context.Context) (string, error)

	// DeleteToken removes the stored token (sign-out)
	// Deleting an absent token is a no-op, so sign-out stays idempotent
	DeleteToken(ctx context.Context) error
}

// TokenRecord is the persisted shape of the credential.
// The token field holds ciphertext by the time it reaches disk.
type TokenRecord struct {
	Token   string `json:"token"`    // AES-GCM encrypted, base64-encoded
	SavedAt int64  `json:"saved_at"` // unix seconds, diagnostic only
}
