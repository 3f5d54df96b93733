package repository

import (
	"context"

	"github.com/nexter-app/nexter-backend/internal/assets/domain"
)

// AssetRepo abstracts asset persistence; reads are owner-scoped.
type AssetRepo interface {
	Create(ctx context.Context, asset *domain.Asset) error
	List(ctx context.Context, ownerID string) ([]domain.Asset, error)
}
