package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/coopbat/intake-api/internal/core/ports"
)

const tokenBytes = 32 // 256 bits of entropy

// TokenService issues and validates opaque artisan session tokens. The
// plaintext leaves Issue exactly once; only its SHA-256 digest is stored,
// so a stolen database snapshot yields nothing replayable.
type TokenService struct {
	repo   ports.AccountRepository
	logger zerolog.Logger
}

func NewTokenService(repo ports.AccountRepository, logger zerolog.Logger) *TokenService {
	return &TokenService{repo: repo, logger: logger}
}

func (s *TokenService) Issue(ctx context.Context, artisanID string) (string, error) {
	raw := make([]byte, tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	token := hex.EncodeToString(raw)

	if err := s.repo.SetArtisanToken(ctx, artisanID, digest(token), time.Now().UTC()); err != nil {
		return "", fmt.Errorf("persist token digest: %w", err)
	}
	return token, nil
}

// Validate fails closed: any repository error, missing digest or empty
// presented token yields false.
func (s *TokenService) Validate(ctx context.Context, artisanID, presented string) bool {
	if artisanID == "" || presented == "" {
		return false
	}

	artisan, err := s.repo.FindArtisanByID(ctx, artisanID)
	if err != nil {
		return false
	}
	if artisan.TokenDigest == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(artisan.TokenDigest), []byte(digest(presented))) == 1
}

func (s *TokenService) Revoke(ctx context.Context, artisanID string) error {
	if err := s.repo.ClearArtisanToken(ctx, artisanID); err != nil {
		return fmt.Errorf("clear token digest: %w", err)
	}
	s.logger.Info().Str("artisan_id", artisanID).Msg("session revoked")
	return nil
}

func digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
