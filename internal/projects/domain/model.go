package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("project not found")

// Project is a portfolio entry owned by a user. Icon and Gradient are
// derived from Category at the HTTP layer, not stored.
type Project struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"-"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags"`
	Summary      string    `json:"summary"`
	Type         string    `json:"type"`
	SourceURL    *string   `json:"sourceUrl,omitempty"`
	Period       *string   `json:"period,omitempty"`
	Role         *string   `json:"role,omitempty"`
	Achievements *string   `json:"achievements,omitempty"`
	Tools        *string   `json:"tools,omitempty"`
	Description  *string   `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UpdateProjectRequest carries a partial update. Nil fields are left
// untouched.
type UpdateProjectRequest struct {
	Title        *string
	Category     *string
	Tags         []string
	Summary      *string
	SourceURL    *string
	Period       *string
	Role         *string
	Achievements *string
	Tools        *string
	Description  *string
}
