package ports

import (
	"context"
	"time"

	"github.com/coopbat/intake-api/internal/core/domain"
)

// AccountRepository persists pro and artisan accounts. Emails are stored in
// normalized form and unique per account kind.
type AccountRepository interface {
	CreatePro(ctx context.Context, user *domain.ProUser) (*domain.ProUser, error)
	FindProByEmail(ctx context.Context, email string) (*domain.ProUser, error)

	CreateArtisan(ctx context.Context, artisan *domain.Artisan) (*domain.Artisan, error)
	FindArtisanByEmail(ctx context.Context, email string) (*domain.Artisan, error)
	FindArtisanByID(ctx context.Context, id string) (*domain.Artisan, error)

	// SetArtisanToken overwrites the stored token digest; ClearArtisanToken
	// removes it. Both touch exactly one document.
	SetArtisanToken(ctx context.Context, artisanID, digest string, issuedAt time.Time) error
	ClearArtisanToken(ctx context.Context, artisanID string) error
}
