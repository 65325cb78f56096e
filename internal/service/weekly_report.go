package service

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"kanjiquest/internal/repository"
)

const reportWindow = 7 * 24 * time.Hour

// WeeklyReporter mails every parent who left an address a summary of the
// past week
type WeeklyReporter struct {
	players  *repository.PlayerRepository
	progress *ProgressService
	email    *EmailService
	now      func() time.Time
	log      logrus.FieldLogger
}

// NewWeeklyReporter creates a new weekly reporter
func NewWeeklyReporter(players *repository.PlayerRepository, progress *ProgressService, email *EmailService, log logrus.FieldLogger) *WeeklyReporter {
	return &WeeklyReporter{
		players:  players,
		progress: progress,
		email:    email,
		now:      time.Now,
		log:      log,
	}
}

// Run sends the reports and returns how many went out. One failing player
// does not stop the others.
func (r *WeeklyReporter) Run(ctx context.Context) (int, error) {
	if !r.email.IsEnabled() {
		return 0, ErrEmailDisabled
	}

	players, err := r.players.ListPlayersWithParentEmail()
	if err != nil {
		return 0, err
	}

	since := r.now().Add(-reportWindow)
	sent := 0
	var errs []error
	for _, p := range players {
		if err := ctx.Err(); err != nil {
			return sent, err
		}

		summary, err := r.progress.Summary(p.ID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		week, err := r.progress.Since(p.ID, since)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := r.email.SendWeeklyReport(ctx, p.ParentEmail, summary, week); err != nil {
			r.log.WithError(err).WithField("player_id", p.ID).Warn("weekly report failed")
			errs = append(errs, err)
			continue
		}
		sent++
	}

	r.log.WithFields(logrus.Fields{"sent": sent, "failed": len(errs)}).Info("weekly reports done")
	return sent, errors.Join(errs...)
}

// SendFor mails the report of one player right away
func (r *WeeklyReporter) SendFor(ctx context.Context, playerID int64) error {
	p, err := r.players.GetPlayerByID(playerID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPlayerNotFound
	}
	if p.ParentEmail == "" {
		return ErrNoParentEmail
	}

	summary, err := r.progress.Summary(playerID)
	if err != nil {
		return err
	}
	week, err := r.progress.Since(playerID, r.now().Add(-reportWindow))
	if err != nil {
		return err
	}
	return r.email.SendWeeklyReport(ctx, p.ParentEmail, summary, week)
}
