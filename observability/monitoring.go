package observability

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Stats is a point-in-time view of the client counters.
type Stats struct {
	EventsReceived  uint64
	EventsDropped   uint64
	LookupsIssued   uint64
	LookupFailures  uint64
	Notifications   uint64
	WorkerRestarts  uint64
	RSSBytes        uint64
	CPUPercent      float64
	Uptime          time.Duration
	ProcessStatsErr error
}

// Monitoring aggregates client counters. Safe for concurrent use.
// A nil *Monitoring ignores every increment.
type Monitoring struct {
	startedAt      time.Time
	eventsReceived uint64
	eventsDropped  uint64
	lookupsIssued  uint64
	lookupFailures uint64
	notifications  uint64
	workerRestarts uint64
}

func NewMonitoring() *Monitoring {
	return &Monitoring{startedAt: time.Now()}
}

func (m *Monitoring) IncrEventsReceived() {
	if m != nil {
		atomic.AddUint64(&m.eventsReceived, 1)
	}
}

func (m *Monitoring) IncrEventsDropped() {
	if m != nil {
		atomic.AddUint64(&m.eventsDropped, 1)
	}
}

func (m *Monitoring) IncrLookupsIssued() {
	if m != nil {
		atomic.AddUint64(&m.lookupsIssued, 1)
	}
}

func (m *Monitoring) IncrLookupFailures() {
	if m != nil {
		atomic.AddUint64(&m.lookupFailures, 1)
	}
}

func (m *Monitoring) IncrNotifications() {
	if m != nil {
		atomic.AddUint64(&m.notifications, 1)
	}
}

func (m *Monitoring) IncrWorkerRestarts() {
	if m != nil {
		atomic.AddUint64(&m.workerRestarts, 1)
	}
}

// Snapshot reads every counter and samples the current process.
func (m *Monitoring) Snapshot() Stats {
	if m == nil {
		return Stats{}
	}
	stats := Stats{
		EventsReceived: atomic.LoadUint64(&m.eventsReceived),
		EventsDropped:  atomic.LoadUint64(&m.eventsDropped),
		LookupsIssued:  atomic.LoadUint64(&m.lookupsIssued),
		LookupFailures: atomic.LoadUint64(&m.lookupFailures),
		Notifications:  atomic.LoadUint64(&m.notifications),
		WorkerRestarts: atomic.LoadUint64(&m.workerRestarts),
		Uptime:         time.Since(m.startedAt),
	}
	rss, cpu, err := selfStats()
	stats.RSSBytes, stats.CPUPercent, stats.ProcessStatsErr = rss, cpu, err
	return stats
}

// selfStats retrieves memory and CPU usage of the running client.
func selfStats() (uint64, float64, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, 0, err
	}
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
