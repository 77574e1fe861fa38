// Package scheduler runs the periodic background jobs of the forecast service
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"weatherforecast.app/internal/ports"
	"weatherforecast.app/pkg/errors"
)

const purgeTimeout = 30 * time.Second

// Purger removes expired entries from a store backend
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// RefreshScheduler triggers a refresh cycle on a fixed interval and optionally purges expired store entries
type RefreshScheduler struct {
	scheduler  *gocron.Scheduler
	controller ports.RefreshController
	purger     Purger
	interval   time.Duration
	logger     ports.Logger

	mu      sync.Mutex
	running bool
}

// Config holds the dependencies of a RefreshScheduler. Purger is optional.
type Config struct {
	Controller ports.RefreshController
	Purger     Purger
	Interval   time.Duration
	Logger     ports.Logger
}

func NewRefreshScheduler(config Config) (*RefreshScheduler, error) {
	if config.Controller == nil {
		return nil, errors.NewValidationError("refresh controller is required")
	}
	if config.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if config.Interval <= 0 {
		return nil, errors.NewValidationError("scheduler interval must be positive")
	}

	return &RefreshScheduler{
		scheduler:  gocron.NewScheduler(time.UTC),
		controller: config.Controller,
		purger:     config.Purger,
		interval:   config.Interval,
		logger:     config.Logger,
	}, nil
}

// Start schedules the jobs and starts the underlying scheduler. The first run happens after one interval.
func (s *RefreshScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	_, err := s.scheduler.Every(s.interval).WaitForSchedule().Tag("refresh").Do(s.runRefresh)
	if err != nil {
		return errors.NewConfigurationError("failed to schedule refresh job", err)
	}

	if s.purger != nil {
		_, err = s.scheduler.Every(s.interval).WaitForSchedule().SingletonMode().Tag("purge").Do(s.runPurge)
		if err != nil {
			s.scheduler.Clear()
			return errors.NewConfigurationError("failed to schedule purge job", err)
		}
	}

	s.scheduler.StartAsync()
	s.running = true

	s.logger.Info("Refresh scheduler started",
		ports.F("interval", s.interval.String()),
		ports.F("purge_enabled", s.purger != nil))
	return nil
}

// Stop stops the scheduler and cancels any future jobs
func (s *RefreshScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.scheduler.Stop()
	s.scheduler.Clear()
	s.running = false

	s.logger.Info("Refresh scheduler stopped")
}

// IsRunning reports whether the scheduler has been started
func (s *RefreshScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *RefreshScheduler) runRefresh() {
	s.logger.Debug("Scheduled refresh triggered")
	s.controller.Refresh()
}

func (s *RefreshScheduler) runPurge() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	removed, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		s.logger.Warn("Failed to purge expired store entries", ports.F("error", err))
		return
	}
	if removed > 0 {
		s.logger.Info("Purged expired store entries", ports.F("removed", removed))
	}
}
