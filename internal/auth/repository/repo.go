package repository

import (
	"context"

	"github.com/nexter-app/nexter-backend/internal/auth/domain"
)

// UserRepo abstracts user persistence so handlers never touch a
// concrete store. Memory (dev) and Postgres implementations exist.
type UserRepo interface {
	// Create stores a new user. Returns domain.ErrEmailTaken when the
	// email is already registered; implementations must make the
	// check-and-insert atomic.
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdateLastLogin(ctx context.Context, id string) error
}
