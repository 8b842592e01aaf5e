package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrDuplicateEmail = errors.New("email already in use")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountNotFound = errors.New("account not found")

// NormalizeEmail is the canonical form used for uniqueness checks and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ProUser is a homeowner account submitting estimation requests.
type ProUser struct {
	ID           string    `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Artisan is a registered tradesperson consuming the request feed.
// TokenDigest holds the SHA-256 of the current session token; the plaintext
// token is never persisted. At most one token is active per artisan — a new
// login overwrites the previous digest.
type Artisan struct {
	ID            string     `json:"artisan_id"`
	ContactName   string     `json:"contact_name"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"-"`
	Commune       string     `json:"commune"`
	RadiusKm      int        `json:"radius_km"`
	Phone         string     `json:"phone,omitempty"`
	ZoneNote      string     `json:"zone_note,omitempty"`
	TokenDigest   string     `json:"-"`
	TokenIssuedAt *time.Time `json:"-"`
	CreatedAt     time.Time  `json:"created_at"`
}
