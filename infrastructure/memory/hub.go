// Package memory is an in-process stand-in for the networking backend:
// topics, users, files and both event streams live in memory.
package memory

import (
	"context"
	"crewcast/domain/event"
	"log/slog"
	"sync"
)

// Hub broadcasts payloads to every live subscription of a stream.
// A subscriber that does not keep up loses payloads, like a gossip peer would.
type Hub struct {
	log    *slog.Logger
	buffer int

	mu   sync.Mutex
	subs map[event.Stream]map[chan []byte]struct{}
}

func NewHub(log *slog.Logger, buffer int) *Hub {
	return &Hub{
		log:    log,
		buffer: buffer,
		subs:   make(map[event.Stream]map[chan []byte]struct{}),
	}
}

func (h *Hub) Subscribe(ctx context.Context, stream event.Stream) (<-chan []byte, error) {
	ch := make(chan []byte, h.buffer)

	h.mu.Lock()
	if h.subs[stream] == nil {
		h.subs[stream] = make(map[chan []byte]struct{})
	}
	h.subs[stream][ch] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subs[stream], ch)
		close(ch)
		h.mu.Unlock()
	}()
	return ch, nil
}

// Publish never blocks.
func (h *Hub) Publish(stream event.Stream, payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[stream] {
		select {
		case ch <- payload:
		default:
			h.log.Warn("Subscriber too slow, dropping payload", "stream", string(stream))
		}
	}
}

func (h *Hub) Subscribers(stream event.Stream) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[stream])
}
