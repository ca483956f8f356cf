package workers

import (
	"context"
	"crewcast/contract"
	"log/slog"
	"time"
)

// SweepWorker calls Sweep on a fixed cadence.
type SweepWorker struct {
	log      *slog.Logger
	sweeper  contract.ISweeper
	interval time.Duration
}

func NewSweepWorker(log *slog.Logger, sweeper contract.ISweeper, interval time.Duration) *SweepWorker {
	return &SweepWorker{log: log, sweeper: sweeper, interval: interval}
}

func (w *SweepWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping sweep")
			return nil
		case <-ticker.C:
			w.sweeper.Sweep()
		}
	}
}
