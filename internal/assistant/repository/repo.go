package repository

import (
	"context"

	"github.com/nexter-app/nexter-backend/internal/assistant/domain"
)

// Store abstracts upload/analysis persistence. Both implementations
// are ephemeral by contract: Redis expires records by TTL, the memory
// store relies on the janitor sweep.
type Store interface {
	SaveUpload(ctx context.Context, upload *domain.Upload) error
	GetUpload(ctx context.Context, id string) (*domain.Upload, error)
	// SaveAnalysis stores the analysis keyed by its upload id.
	SaveAnalysis(ctx context.Context, analysis *domain.Analysis) error
	// GetAnalysisByUpload returns domain.ErrAnalysisNotFound when the
	// upload was never analyzed.
	GetAnalysisByUpload(ctx context.Context, uploadID string) (*domain.Analysis, error)
}
