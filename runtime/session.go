package runtime

import (
	"context"
	"crewcast/domain"
	"crewcast/projection"
	"crewcast/search"
	"log/slog"
)

// TopicSession owns the state of one joined topic. Nothing in it survives a leave.
type TopicSession struct {
	Topic    domain.Topic
	Messages *projection.MessageLog
	Presence *projection.PresenceTracker
	Files    *projection.FileCatalog

	log       *slog.Logger
	index     *search.TranscriptIndex
	cancel    context.CancelFunc
	done      chan struct{}
	listeners []string
}

// Search runs a transcript query over the messages received in this session.
func (s *TopicSession) Search(ctx context.Context, q search.Query) ([]search.Hit, error) {
	if s.index == nil {
		return nil, nil
	}
	return s.index.Search(ctx, q)
}

// stop cancels the session workers, waits for them, then closes the stores.
// In-flight callbacks find their store closed and drop their result.
func (s *TopicSession) stop() {
	s.cancel()
	<-s.done

	s.Messages.Close()
	s.Presence.Close()
	s.Files.Close()
	if s.index != nil {
		if err := s.index.Close(); err != nil {
			s.log.Warn("Failed to close transcript index", "err", err)
		}
	}
}
