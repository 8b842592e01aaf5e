package ports

import (
	"context"

	"github.com/coopbat/intake-api/internal/core/domain"
)

type RegisterProInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterArtisanInput struct {
	ContactName string
	Email       string
	Password    string
	Commune     string
	RadiusKm    int
	Phone       string
	ZoneNote    string
}

// AccountService implements registration and login for both account kinds.
// LoginPro returns a signed session JWT; LoginArtisan returns the opaque
// bearer token issued by the TokenService (plaintext, returned exactly once).
type AccountService interface {
	RegisterPro(ctx context.Context, input RegisterProInput) (*domain.ProUser, error)
	LoginPro(ctx context.Context, email, password string) (string, *domain.ProUser, error)

	RegisterArtisan(ctx context.Context, input RegisterArtisanInput) (*domain.Artisan, error)
	LoginArtisan(ctx context.Context, email, password string) (string, *domain.Artisan, error)
	LogoutArtisan(ctx context.Context, artisanID string) error
}
