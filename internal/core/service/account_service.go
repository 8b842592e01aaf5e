package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/coopbat/intake-api/internal/core/domain"
	"github.com/coopbat/intake-api/internal/core/ports"
)

// AccountService implements registration and login for pro users and
// artisans. Pro sessions are stateless JWTs; artisan sessions go through
// the opaque TokenService so the server can revoke them.
type AccountService struct {
	repo      ports.AccountRepository
	tokens    ports.TokenService
	jwtSecret string
	jwtTTL    time.Duration
	logger    zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, tokens ports.TokenService, jwtSecret string, jwtTTL time.Duration, logger zerolog.Logger) *AccountService {
	if jwtTTL <= 0 {
		jwtTTL = 24 * time.Hour
	}
	return &AccountService{repo: repo, tokens: tokens, jwtSecret: jwtSecret, jwtTTL: jwtTTL, logger: logger}
}

func (s *AccountService) RegisterPro(ctx context.Context, input ports.RegisterProInput) (*domain.ProUser, error) {
	if missing := missingFields(map[string]string{
		"name":     input.Name,
		"email":    input.Email,
		"password": input.Password,
	}); len(missing) > 0 {
		return nil, &domain.ValidationError{Missing: missing}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.ProUser{
		Name:         trimmed(input.Name),
		Email:        domain.NormalizeEmail(input.Email),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.CreatePro(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("pro account created")
	return created, nil
}

// LoginPro authenticates and returns a signed session JWT. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AccountService) LoginPro(ctx context.Context, email, password string) (string, *domain.ProUser, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindProByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.signProToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AccountService) RegisterArtisan(ctx context.Context, input ports.RegisterArtisanInput) (*domain.Artisan, error) {
	if missing := missingFields(map[string]string{
		"contact_name": input.ContactName,
		"email":        input.Email,
		"password":     input.Password,
		"commune":      input.Commune,
	}); len(missing) > 0 {
		return nil, &domain.ValidationError{Missing: missing}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	radius := input.RadiusKm
	if radius <= 0 {
		radius = 30
	}

	artisan := &domain.Artisan{
		ContactName:  trimmed(input.ContactName),
		Email:        domain.NormalizeEmail(input.Email),
		PasswordHash: string(hash),
		Commune:      trimmed(input.Commune),
		RadiusKm:     radius,
		Phone:        trimmed(input.Phone),
		ZoneNote:     trimmed(input.ZoneNote),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.CreateArtisan(ctx, artisan)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("artisan_id", created.ID).Str("commune", created.Commune).Msg("artisan account created")
	return created, nil
}

// LoginArtisan authenticates and issues a fresh opaque token, invalidating
// any previous session for the same artisan.
func (s *AccountService) LoginArtisan(ctx context.Context, email, password string) (string, *domain.Artisan, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	artisan, err := s.repo.FindArtisanByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(artisan.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, artisan.ID)
	if err != nil {
		return "", nil, err
	}
	return token, artisan, nil
}

func (s *AccountService) LogoutArtisan(ctx context.Context, artisanID string) error {
	return s.tokens.Revoke(ctx, artisanID)
}

func (s *AccountService) signProToken(user *domain.ProUser) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.jwtTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
