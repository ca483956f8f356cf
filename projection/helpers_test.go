package projection

import (
	"crewcast/domain"
	"sync"
	"time"
)

type recordingNotifier struct {
	mu            sync.Mutex
	notifications []domain.Notification
}

func (r *recordingNotifier) Notify(n domain.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

func (r *recordingNotifier) all() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

func (r *recordingNotifier) withLevel(level domain.Level) []domain.Notification {
	var out []domain.Notification
	for _, n := range r.all() {
		if n.Level == level {
			out = append(out, n)
		}
	}
	return out
}

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// scheduledReloads counts grace timers that have not fired yet.
func (c *FileCatalog) scheduledReloads() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.timers)
}
