package repository

import (
	"context"
	"sync"
	"time"

	"github.com/nexter-app/nexter-backend/internal/assistant/domain"
)

// MemoryStore keeps uploads and analyses in process memory for dev
// mode. Entries older than the TTL are removed by PurgeExpired, which
// the janitor calls on a schedule.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	uploads  map[string]*domain.Upload
	analyses map[string]*domain.Analysis
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		uploads:  make(map[string]*domain.Upload),
		analyses: make(map[string]*domain.Analysis),
	}
}

func (s *MemoryStore) SaveUpload(_ context.Context, upload *domain.Upload) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *upload
	s.uploads[upload.ID] = &clone
	return nil
}

func (s *MemoryStore) GetUpload(_ context.Context, id string) (*domain.Upload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.uploads[id]
	if !ok {
		return nil, domain.ErrUploadNotFound
	}
	clone := *u
	return &clone, nil
}

func (s *MemoryStore) SaveAnalysis(_ context.Context, analysis *domain.Analysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *analysis
	clone.Project.Tags = append([]string(nil), analysis.Project.Tags...)
	clone.Metadata.RecommendedNextActions = append([]string(nil), analysis.Metadata.RecommendedNextActions...)
	s.analyses[analysis.UploadID] = &clone
	return nil
}

func (s *MemoryStore) GetAnalysisByUpload(_ context.Context, uploadID string) (*domain.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.analyses[uploadID]
	if !ok {
		return nil, domain.ErrAnalysisNotFound
	}
	clone := *a
	return &clone, nil
}

// PurgeExpired drops uploads past the TTL along with their analyses
// and reports how many uploads were removed.
func (s *MemoryStore) PurgeExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ttl <= 0 {
		return 0
	}

	cutoff := now.Add(-s.ttl)
	removed := 0
	for id, u := range s.uploads {
		if u.CreatedAt.Before(cutoff) {
			delete(s.uploads, id)
			delete(s.analyses, id)
			removed++
		}
	}
	return removed
}
