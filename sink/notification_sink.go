package sink

import (
	"crewcast/contract"
	"crewcast/domain"
	"crewcast/observability"
	"log/slog"
)

// NotificationFeed buffers notifications for the terminal.
// When the reader lags behind, new notifications are dropped, never blocking the caller.
type NotificationFeed struct {
	log        *slog.Logger
	ch         chan domain.Notification
	monitoring *observability.Monitoring
}

func NewNotificationFeed(log *slog.Logger, buffer int, monitoring *observability.Monitoring) *NotificationFeed {
	return &NotificationFeed{log: log, ch: make(chan domain.Notification, buffer), monitoring: monitoring}
}

func (f *NotificationFeed) Notify(n domain.Notification) {
	f.monitoring.IncrNotifications()
	select {
	case f.ch <- n:
	default:
		f.log.Debug("Notification feed full, dropping", "message", n.Message)
	}
}

// C is the channel the renderer reads from.
func (f *NotificationFeed) C() <-chan domain.Notification {
	return f.ch
}

// LogNotifier writes every notification to the structured log.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) LogNotifier {
	return LogNotifier{log: log}
}

func (l LogNotifier) Notify(n domain.Notification) {
	switch n.Level {
	case domain.LevelError:
		l.log.Error(n.Message, "kind", "notification")
	case domain.LevelWarn:
		l.log.Warn(n.Message, "kind", "notification")
	default:
		l.log.Info(n.Message, "kind", "notification", "level", string(n.Level))
	}
}

// Fanout forwards each notification to every notifier.
type Fanout []contract.INotifier

func (f Fanout) Notify(n domain.Notification) {
	for _, notifier := range f {
		notifier.Notify(n)
	}
}
