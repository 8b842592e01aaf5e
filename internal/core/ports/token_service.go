package ports

import "context"

// TokenService manages opaque artisan session tokens. Only a one-way digest
// of a token is ever persisted; Issue is the single place the plaintext
// exists server-side.
type TokenService interface {
	// Issue mints a fresh high-entropy token for the artisan, persists its
	// digest (overwriting any previous one) and returns the plaintext.
	Issue(ctx context.Context, artisanID string) (string, error)

	// Validate recomputes the digest of the presented token and compares it
	// to the stored one. It fails closed: unknown artisan, absent digest or
	// empty token all yield false.
	Validate(ctx context.Context, artisanID, presented string) bool

	// Revoke clears the stored digest. Idempotent.
	Revoke(ctx context.Context, artisanID string) error
}
