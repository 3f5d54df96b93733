package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/nexter-app/nexter-backend/internal/assets/domain"
)

// PostgresAssetRepo persists assets in the assets table.
type PostgresAssetRepo struct {
	db *sql.DB
}

func NewPostgresAssetRepo(db *sql.DB) *PostgresAssetRepo {
	return &PostgresAssetRepo{db: db}
}

func (r *PostgresAssetRepo) Create(ctx context.Context, asset *domain.Asset) error {
	if asset.ID == "" {
		asset.ID = uuid.New().String()
	}

	const q = `
		INSERT INTO assets (id, owner_id, url, title)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, q, asset.ID, asset.OwnerID, asset.URL, asset.Title).
		Scan(&asset.CreatedAt)
}

func (r *PostgresAssetRepo) List(ctx context.Context, ownerID string) ([]domain.Asset, error) {
	const q = `
		SELECT id, owner_id, url, title, created_at
		FROM assets
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.Asset, 0)
	for rows.Next() {
		var a domain.Asset
		if err := rows.Scan(&a.ID, &a.OwnerID, &a.URL, &a.Title, &a.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
