package domain

import "time"

// Signup methods accepted by the service.
const (
	MethodEmail  = "email"
	MethodGoogle = "google"
)

// User represents an account in the application.
// PasswordHash is never serialized; google accounts have none.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Method       string     `json:"method"`
	Headline     *string    `json:"headline,omitempty"`
	AvatarURL    *string    `json:"avatar_url,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	Status       *string    `json:"status,omitempty"`
	Goals        []string   `json:"goals,omitempty"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

// CreateUserRequest carries the data needed to register an account.
type CreateUserRequest struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Status   string
	Goals    []string
	Method   string
}

// UpdateUserRequest carries a partial profile update. Nil fields are
// left untouched.
type UpdateUserRequest struct {
	Name      *string
	Headline  *string
	AvatarURL *string
	Phone     *string
	Status    *string
	Goals     []string
}
