package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nexter-app/nexter-backend/internal/projects/domain"
)

// MemoryProjectRepo keeps projects in process memory for dev mode.
type MemoryProjectRepo struct {
	mu       sync.Mutex
	projects map[string]*domain.Project
}

func NewMemoryProjectRepo() *MemoryProjectRepo {
	return &MemoryProjectRepo{projects: make(map[string]*domain.Project)}
}

func (r *MemoryProjectRepo) Create(_ context.Context, project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now
	r.projects[project.ID] = cloneProject(project)
	return nil
}

func (r *MemoryProjectRepo) List(_ context.Context, ownerID string) ([]domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]domain.Project, 0)
	for _, p := range r.projects {
		if p.OwnerID == ownerID {
			items = append(items, *cloneProject(p))
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (r *MemoryProjectRepo) Get(_ context.Context, ownerID, id string) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[id]
	if !ok || p.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return cloneProject(p), nil
}

func (r *MemoryProjectRepo) Update(_ context.Context, project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.projects[project.ID]
	if !ok || stored.OwnerID != project.OwnerID {
		return domain.ErrNotFound
	}
	project.CreatedAt = stored.CreatedAt
	project.UpdatedAt = time.Now().UTC()
	r.projects[project.ID] = cloneProject(project)
	return nil
}

func (r *MemoryProjectRepo) Delete(_ context.Context, ownerID, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[id]
	if !ok || p.OwnerID != ownerID {
		return false, nil
	}
	delete(r.projects, id)
	return true, nil
}

func cloneProject(p *domain.Project) *domain.Project {
	clone := *p
	if p.Tags != nil {
		clone.Tags = append([]string(nil), p.Tags...)
	}
	return &clone
}
