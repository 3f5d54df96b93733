package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nexter-app/nexter-backend/internal/assets/domain"
)

// MemoryAssetRepo keeps assets in process memory for dev mode.
type MemoryAssetRepo struct {
	mu     sync.Mutex
	assets map[string]*domain.Asset
}

func NewMemoryAssetRepo() *MemoryAssetRepo {
	return &MemoryAssetRepo{assets: make(map[string]*domain.Asset)}
}

func (r *MemoryAssetRepo) Create(_ context.Context, asset *domain.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if asset.ID == "" {
		asset.ID = uuid.New().String()
	}
	asset.CreatedAt = time.Now().UTC()
	clone := *asset
	r.assets[asset.ID] = &clone
	return nil
}

func (r *MemoryAssetRepo) List(_ context.Context, ownerID string) ([]domain.Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]domain.Asset, 0)
	for _, a := range r.assets {
		if a.OwnerID == ownerID {
			items = append(items, *a)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}
