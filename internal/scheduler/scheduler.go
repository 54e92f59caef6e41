// Package scheduler re-runs the analysis pipeline on a cron schedule for
// watch mode.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler manages the recurring analysis task.
type Scheduler struct {
	Cron *cron.Cron
	Ctx  context.Context
}

// NewScheduler creates a Scheduler bound to the given context.
func NewScheduler(ctx context.Context) *Scheduler {
	return &Scheduler{
		Cron: cron.New(cron.WithSeconds()),
		Ctx:  ctx,
	}
}

// Register adds the analysis job at the given cron spec. The job is
// skipped once the context is cancelled.
func (s *Scheduler) Register(spec string, job func() error) error {
	if _, err := s.Cron.AddFunc(spec, func() {
		if s.Ctx.Err() != nil {
			return
		}
		if err := job(); err != nil {
			log.Printf("[WARN] scheduled analysis failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("register analysis task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	ctx := s.Cron.Stop()
	<-ctx.Done()
	log.Println("[INFO] scheduler stopped")
}
