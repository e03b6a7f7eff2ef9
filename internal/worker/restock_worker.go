package worker

import (
	"context"

	"github.com/angelolorensi/vending-machine-api/internal/infra"

	"github.com/rs/zerolog/log"
)

// RestockWorker notifies the machine operator when a slot runs out.
type RestockWorker struct {
	mailer        *infra.Mailer
	operatorEmail string
}

func NewRestockWorker(mailer *infra.Mailer, operatorEmail string) *RestockWorker {
	return &RestockWorker{mailer: mailer, operatorEmail: operatorEmail}
}

func (w *RestockWorker) Handle(_ context.Context, payload RestockPayload) error {
	log.Info().
		Str("machine", payload.MachineName).
		Int("slot", payload.SlotNumber).
		Str("product", payload.ProductName).
		Msg("slot empty, restock needed")

	if w.mailer == nil || w.operatorEmail == "" {
		return nil
	}
	return w.mailer.SendRestockAlert(w.operatorEmail, payload.MachineName, payload.Location, payload.SlotNumber, payload.ProductName)
}
