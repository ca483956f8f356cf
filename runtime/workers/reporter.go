package workers

import (
	"context"
	"crewcast/observability"
	"log/slog"
	"time"
)

// ReporterWorker logs the client counters on a fixed interval, and once more on shutdown.
type ReporterWorker struct {
	log        *slog.Logger
	monitoring *observability.Monitoring
	interval   time.Duration
}

func NewReporterWorker(log *slog.Logger, monitoring *observability.Monitoring, interval time.Duration) *ReporterWorker {
	return &ReporterWorker{log: log, monitoring: monitoring, interval: interval}
}

func (w *ReporterWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Report()
			return nil
		case <-ticker.C:
			w.Report()
		}
	}
}

// Report writes one snapshot to the log.
func (w *ReporterWorker) Report() {
	stats := w.monitoring.Snapshot()
	attrs := []any{
		"uptime", stats.Uptime.Round(time.Second).String(),
		"eventsReceived", stats.EventsReceived,
		"eventsDropped", stats.EventsDropped,
		"lookups", stats.LookupsIssued,
		"lookupFailures", stats.LookupFailures,
		"notifications", stats.Notifications,
		"restarts", stats.WorkerRestarts,
	}
	if stats.ProcessStatsErr != nil {
		w.log.Debug("Process stats unavailable", "err", stats.ProcessStatsErr)
	} else {
		attrs = append(attrs, "rssMB", stats.RSSBytes/(1024*1024), "cpu", stats.CPUPercent)
	}
	w.log.Info("Client stats", attrs...)
}
