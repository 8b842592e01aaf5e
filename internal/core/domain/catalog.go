package domain

import "time"

// TradeCategory is one entry of the public "Nos métiers" catalog, edited
// through the admin surface.
type TradeCategory struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
}
