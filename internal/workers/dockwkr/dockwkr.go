package dockwkr

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/millbrook-logistics/dispatchd/internal/app/appconfig"
	"github.com/millbrook-logistics/dispatchd/internal/service"
)

type WorkerDeps struct {
	fx.In
	DockService *service.Dock
}

// Worker re-derives the dock snapshot for the delivery date on a fixed
// interval so dashboards polling the API read a warm cache.
type Worker struct {
	// count counts refreshes the worker has completed so far
	count int

	// interval describes the time in-between refreshes
	interval time.Duration

	// deps
	WorkerDeps
}

func Start(config *appconfig.Config, deps WorkerDeps) {
	if !config.DockWorkerEnabled {
		log.Info().Msg("dock worker is disabled, skipping")
		return
	}
	(&Worker{
		interval:   config.DockRefreshInterval,
		WorkerDeps: deps,
	}).do()
}

func (w *Worker) do() context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		for {
			date := w.DockService.DeliveryDate(time.Now())

			if _, err := w.DockService.Snapshot(ctx, date, "worker"); err != nil {
				log.Error().Err(err).Str("date", date).Msg("dock refresh failed")
			} else if l := log.Trace(); l.Enabled() {
				l.Int("count", w.count).Str("date", date).Msg("dock refreshed")
			}

			w.count++

			select {
			case <-ctx.Done():
				return
			case <-time.After(w.interval):
			}
		}
	}()

	return cancel
}

func (w *Worker) Count() int {
	return w.count
}
