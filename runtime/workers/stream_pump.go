package workers

import (
	"context"
	"crewcast/contract"
	"crewcast/domain/event"
	"crewcast/errors"
	"crewcast/observability"
	"fmt"
	"log/slog"
)

// StreamPump subscribes to one backend stream and fans every decoded event
// out to the sinks registered for its topic.
//
// Dispatch never waits on identity lookups or RPCs: sinks hand slow work
// to their own goroutines. Malformed payloads are logged and dropped.
// When the stream closes the pump fails, so the supervisor re-subscribes.
type StreamPump struct {
	log        *slog.Logger
	source     contract.IEventSource
	registry   contract.IRegistry
	stream     event.Stream
	topicID    string
	monitoring *observability.Monitoring
}

func NewStreamPump(
	log *slog.Logger,
	source contract.IEventSource,
	registry contract.IRegistry,
	stream event.Stream,
	topicID string,
	monitoring *observability.Monitoring,
) *StreamPump {
	return &StreamPump{
		log:        log.With("stream", string(stream), "topicId", topicID),
		source:     source,
		registry:   registry,
		stream:     stream,
		topicID:    topicID,
		monitoring: monitoring,
	}
}

func (w *StreamPump) Run(ctx context.Context) error {
	payloads, err := w.source.Subscribe(ctx, w.stream)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", w.stream, err)
	}
	w.log.Debug("Listening to stream")

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, leaving stream")
			return nil
		case payload, ok := <-payloads:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.ErrStreamClosed
			}
			w.Dispatch(ctx, payload)
		}
	}
}

// Dispatch decodes one payload and hands it to every sink of the topic.
func (w *StreamPump) Dispatch(ctx context.Context, payload []byte) {
	w.monitoring.IncrEventsReceived()
	evt, err := event.Parse(w.stream, payload)
	if err != nil {
		w.monitoring.IncrEventsDropped()
		w.log.Debug("Dropping malformed event", "err", err)
		return
	}

	for _, sink := range w.registry.SinksForTopic(w.topicID) {
		if err := sink.Consume(ctx, evt); err != nil {
			w.log.Warn("Sink failed to consume event", "type", string(evt.EventType()), "err", err)
		}
	}
}
