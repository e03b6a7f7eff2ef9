// Command fillslots loads machine slots with random products, the same
// operation exposed as POST /v1/machines/fill-slots. Useful for seeding
// a fresh environment from the shell.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/angelolorensi/vending-machine-api/internal/config"
	"github.com/angelolorensi/vending-machine-api/internal/dto"
	"github.com/angelolorensi/vending-machine-api/internal/infra"
	"github.com/angelolorensi/vending-machine-api/internal/repository"
	"github.com/angelolorensi/vending-machine-api/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	machineID := flag.Uint("machine", 0, "machine ID to fill (0 = all machines)")
	emptyOnly := flag.Bool("empty-only", false, "only fill slots that have no product")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	svc := service.NewMachineService(
		repository.NewMachineRepository(db),
		repository.NewProductRepository(db),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	summary, err := svc.FillSlots(ctx, dto.FillSlotsRequest{
		MachineID: *machineID,
		EmptyOnly: *emptyOnly,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("fill slots failed")
	}

	log.Info().
		Int("machines", summary.Machines).
		Int("slots_filled", summary.SlotsFilled).
		Msg("slots filled")
}
