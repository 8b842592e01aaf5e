package domain

import (
	"errors"
	"time"
)

// Status is an artisan's private annotation on a request. Requests start
// life without any overlay entry; the absence of an entry means StatusNew.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
)

var ErrInvalidStatus = errors.New("invalid status value")
var ErrStatusNotFound = errors.New("status entry not found")

// Valid reports whether s is one of the accepted overlay values.
func (s Status) Valid() bool {
	return s == StatusNew || s == StatusInProgress
}

// StatusEntry is one row of the per-artisan overlay. The composite key
// (ArtisanID, Ref) has upsert semantics: at most one entry ever exists for
// it, and only the owning artisan writes it.
type StatusEntry struct {
	ArtisanID string     `json:"artisan_id" bson:"artisan_id"`
	Ref       RequestRef `json:"ref" bson:"ref"`
	Status    Status     `json:"status" bson:"status"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}

// FeedItem is one merged entry of an artisan's request feed: a request from
// any of the three archives joined with that artisan's overlay status.
type FeedItem struct {
	Kind     RequestKind `json:"kind"`
	ID       int64       `json:"id"`
	Date     time.Time   `json:"date"`
	WorkType string      `json:"work_type"`
	Surface  string      `json:"surface"`
	Budget   string      `json:"budget"`
	Email    string      `json:"email"`
	Commune  string      `json:"commune"`
	Status   Status      `json:"status"`
}
