package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Refresher reloads the catalog snapshot.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	schedule  string
	timeout   time.Duration
	logger    *zap.Logger
}

// NewScheduler creates a new scheduler instance. schedule is a standard
// five-field cron expression.
func NewScheduler(schedule string, refresher Refresher, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:      cron.New(),
		refresher: refresher,
		schedule:  schedule,
		timeout:   time.Minute,
		logger:    logger,
	}
}

// Start registers the refresh job and starts the scheduler.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule))

	if _, err := s.cron.AddFunc(s.schedule, s.refreshCatalog); err != nil {
		return fmt.Errorf("schedule catalog refresh %q: %w", s.schedule, err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) refreshCatalog() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.refresher.Refresh(ctx); err != nil {
		s.logger.Error("scheduled catalog refresh failed", zap.Error(err))
		return
	}
	s.logger.Info("scheduled catalog refresh done", zap.Duration("duration", time.Since(start)))
}
