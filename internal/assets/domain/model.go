package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("asset not found")

// Asset is an external artifact (portfolio link, uploaded file URL) a
// user attaches to their account.
type Asset struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"-"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}
