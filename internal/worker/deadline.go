// Package worker runs the portal's scheduled background jobs.
package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/launchhub/business-portal/internal/api/metrics"
	"github.com/launchhub/business-portal/internal/core/ports"
)

const closeSchedule = "@every 5m"

// DeadlineCloser periodically marks competitions past their deadline as
// closed so new entries are rejected promptly rather than on the next read.
type DeadlineCloser struct {
	competitions ports.CompetitionService
	cron         *cron.Cron
	log          zerolog.Logger
}

func NewDeadlineCloser(competitions ports.CompetitionService, log zerolog.Logger) *DeadlineCloser {
	return &DeadlineCloser{
		competitions: competitions,
		cron:         cron.New(),
		log:          log,
	}
}

// Start schedules the close job and runs it once immediately, so a restart
// never leaves expired competitions open for a full interval.
func (d *DeadlineCloser) Start() error {
	if _, err := d.cron.AddFunc(closeSchedule, d.run); err != nil {
		return err
	}
	d.cron.Start()
	go d.run()
	return nil
}

// Stop halts the schedule and waits for a running job to finish.
func (d *DeadlineCloser) Stop() {
	<-d.cron.Stop().Done()
}

func (d *DeadlineCloser) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	closed, err := d.competitions.CloseExpired(ctx, time.Now().UTC())
	if err != nil {
		d.log.Error().Err(err).Msg("competition deadline sweep failed")
		return
	}
	if closed > 0 {
		metrics.CompetitionsClosedTotal.Add(float64(closed))
		d.log.Info().Int("closed", closed).Msg("closed expired competitions")
	}
}
