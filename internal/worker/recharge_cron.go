package worker

// recharge_cron.go
// In-process scheduler for the daily point recharge. Ticks hourly and
// fires the recharge run once the configured local hour is reached. The
// cron remembers the last day it dispatched, so even with the shared
// day guard unreachable a single process fires at most once per day;
// the guard remains the cross-process arbiter.

import (
	"context"
	"time"

	"github.com/angelolorensi/vending-machine-api/internal/dto"

	"github.com/rs/zerolog/log"
)

const rechargeTickInterval = time.Hour

// RechargeRunner is the slice of the recharge job the cron invokes.
type RechargeRunner interface {
	RunDailyRecharge(ctx context.Context, today time.Time) (*dto.RechargeSummary, error)
}

type rechargeCron struct {
	runner RechargeRunner
	loc    *time.Location
	hour   int
	// lastDay is the local date of the last dispatched run. A failed run
	// leaves it unset so the next tick retries.
	lastDay string
}

func (c *rechargeCron) tick(ctx context.Context, now time.Time) {
	now = now.In(c.loc)
	if now.Hour() < c.hour {
		return
	}
	day := now.Format("2006-01-02")
	if day == c.lastDay {
		return
	}
	if _, err := c.runner.RunDailyRecharge(ctx, now); err != nil {
		log.Error().Err(err).Msg("recharge cron run failed")
		return
	}
	c.lastDay = day
}

// StartRechargeCron launches a background goroutine that runs the daily
// recharge at or after rechargeHour local time on every business day.
// It respects the context for graceful shutdown.
func StartRechargeCron(ctx context.Context, runner RechargeRunner, loc *time.Location, rechargeHour int) {
	cron := &rechargeCron{runner: runner, loc: loc, hour: rechargeHour}
	go func() {
		ticker := time.NewTicker(rechargeTickInterval)
		defer ticker.Stop()

		log.Info().Int("hour", rechargeHour).Msg("recharge cron started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("recharge cron shutting down")
				return
			case <-ticker.C:
				cron.tick(ctx, time.Now())
			}
		}
	}()
}
