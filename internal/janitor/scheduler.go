package janitor

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nexter-app/nexter-backend/internal/assistant/repository"
)

// Scheduler sweeps expired assistant uploads out of the in-memory
// store. Redis enforces TTLs on its own, so this only runs in
// memory mode.
type Scheduler struct {
	store *repository.MemoryStore
	cron  *cron.Cron
}

func NewScheduler(store *repository.MemoryStore) *Scheduler {
	return &Scheduler{store: store}
}

// Start registers the sweep job. Every 10 minutes is frequent enough
// for a 7-day TTL.
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 */10 * * * *", func() {
		s.sweep()
	})
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Janitor scheduler started (sweeping every 10 minutes)")
	c.Start()
	s.cron = c
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) sweep() {
	removed := s.store.PurgeExpired(time.Now())
	if removed > 0 {
		log.Printf("Janitor removed %d expired upload(s)", removed)
	}
}
