// Package jobs runs background tasks (cron) while the board is open:
// the midnight quest reset and periodic autosave.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/pko841923-dot/Level-System/internal/engine"
)

// Scheduler drives the engine's time-based maintenance.
type Scheduler struct {
	cron *cron.Cron
	svc  *engine.Service
	log  logrus.FieldLogger
}

// NewScheduler builds a scheduler in the local time zone so the reset
// fires at the user's midnight.
func NewScheduler(svc *engine.Service, log logrus.FieldLogger) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(time.Local)),
		svc:  svc,
		log:  log,
	}
}

// Start registers the jobs and launches the cron loop. autosave is the
// save interval; zero disables the autosave job.
func (s *Scheduler) Start(ctx context.Context, autosave time.Duration) error {
	_, err := s.cron.AddFunc("0 0 * * *", func() {
		reopened, err := s.svc.MidnightReset(ctx)
		if err != nil {
			s.log.WithError(err).Error("midnight reset failed")
			return
		}
		s.log.WithField("reopened", reopened).Info("midnight reset done")
	})
	if err != nil {
		return fmt.Errorf("schedule midnight reset: %w", err)
	}

	if autosave > 0 {
		_, err = s.cron.AddFunc(fmt.Sprintf("@every %s", autosave), func() {
			if err := s.svc.Save(ctx); err != nil {
				s.log.WithError(err).Error("autosave failed")
			}
		})
		if err != nil {
			return fmt.Errorf("schedule autosave: %w", err)
		}
	}

	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
