package repository

import (
	"context"

	"github.com/nexter-app/nexter-backend/internal/projects/domain"
)

// ProjectRepo abstracts project persistence. All reads and writes are
// owner-scoped: a project is only visible to the user that created it.
type ProjectRepo interface {
	Create(ctx context.Context, project *domain.Project) error
	List(ctx context.Context, ownerID string) ([]domain.Project, error)
	Get(ctx context.Context, ownerID, id string) (*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	// Delete reports false when no owned project matched.
	Delete(ctx context.Context, ownerID, id string) (bool, error)
}
