// Command recharge runs the daily point recharge once and exits.
// Meant for external schedulers (cron, Kubernetes CronJob) where the
// in-process scheduler of the API server is not wanted. The per-day
// guard makes overlapping runs harmless.
package main

import (
	"context"
	"os"
	"time"

	"github.com/angelolorensi/vending-machine-api/internal/config"
	"github.com/angelolorensi/vending-machine-api/internal/infra"
	"github.com/angelolorensi/vending-machine-api/internal/repository"
	"github.com/angelolorensi/vending-machine-api/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	svc := service.NewRechargeService(
		repository.NewEmployeeRepository(db),
		repository.NewCardRepository(db),
		infra.NewRechargeDayGuard(rdb),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	summary, err := svc.RunDailyRecharge(ctx, time.Now().In(cfg.Location()))
	if err != nil {
		log.Fatal().Err(err).Msg("recharge run failed")
	}

	if summary.Skipped {
		log.Info().Str("reason", summary.Reason).Msg("recharge skipped")
		return
	}
	log.Info().
		Str("date", summary.Date).
		Int("employees", summary.Employees).
		Int("points", summary.Points).
		Msg("recharge completed")
}
