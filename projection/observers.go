// Package projection derives the local views of a topic from backend events:
// chat transcript, member roster and file catalog.
// Views are exposed as snapshots, observers are only told that something changed.
package projection

import "sync"

// observers signals state changes to subscribers.
// A slow subscriber misses intermediate signals, never the last one.
type observers struct {
	mu     sync.Mutex
	nextID int
	chans  map[int]chan struct{}
}

func (o *observers) subscribe() (<-chan struct{}, func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.chans == nil {
		o.chans = make(map[int]chan struct{})
	}
	id := o.nextID
	o.nextID++
	ch := make(chan struct{}, 1)
	o.chans[id] = ch

	return ch, func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if c, ok := o.chans[id]; ok {
			delete(o.chans, id)
			close(c)
		}
	}
}

func (o *observers) notify() {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, ch := range o.chans {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (o *observers) closeAll() {
	o.mu.Lock()
	defer o.mu.Unlock()
	for id, ch := range o.chans {
		delete(o.chans, id)
		close(ch)
	}
}
