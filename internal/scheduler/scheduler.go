// Package scheduler runs the server's periodic housekeeping and the weekly
// parent reports.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

const reportTimeout = 10 * time.Minute

// SessionSweeper drops idle play sessions
type SessionSweeper interface {
	Sweep(ttl time.Duration) int
}

// LimiterCleaner forgets rate limit entries that have expired
type LimiterCleaner interface {
	Cleanup() int
}

// Reporter sends the weekly parent reports
type Reporter interface {
	Run(ctx context.Context) (int, error)
}

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	sessions  SessionSweeper
	limiter   LimiterCleaner
	reporter  Reporter
	idleTTL   time.Duration
	cron      string
	log       logrus.FieldLogger
}

// New creates a new scheduler. A nil reporter or an empty cron expression
// leaves the weekly report unscheduled.
func New(sessions SessionSweeper, limiter LimiterCleaner, reporter Reporter, idleTTL time.Duration, reportCron string, log logrus.FieldLogger) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		sessions:  sessions,
		limiter:   limiter,
		reporter:  reporter,
		idleTTL:   idleTTL,
		cron:      reportCron,
		log:       log,
	}
}

// Start registers every job and runs them in the background
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(1).Hour().Do(s.sweepSessions); err != nil {
		return fmt.Errorf("failed to schedule session sweep: %w", err)
	}
	if _, err := s.scheduler.Every(1).Hour().Do(s.cleanupLimiter); err != nil {
		return fmt.Errorf("failed to schedule limiter cleanup: %w", err)
	}
	if s.reporter != nil && s.cron != "" {
		if _, err := s.scheduler.Cron(s.cron).Do(s.sendReports); err != nil {
			return fmt.Errorf("failed to schedule weekly report %q: %w", s.cron, err)
		}
	}

	s.scheduler.StartAsync()
	s.log.WithField("jobs", s.scheduler.Len()).Info("Scheduler started")
	return nil
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) sweepSessions() {
	if n := s.sessions.Sweep(s.idleTTL); n > 0 {
		s.log.WithField("removed", n).Debug("Swept idle sessions")
	}
}

func (s *Scheduler) cleanupLimiter() {
	if n := s.limiter.Cleanup(); n > 0 {
		s.log.WithField("removed", n).Debug("Cleaned rate limiter")
	}
}

func (s *Scheduler) sendReports() {
	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()

	sent, err := s.reporter.Run(ctx)
	entry := s.log.WithField("sent", sent)
	if err != nil {
		entry.WithError(err).Warn("Weekly report run finished with errors")
		return
	}
	entry.Info("Weekly reports sent")
}
