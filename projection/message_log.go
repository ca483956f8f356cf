package projection

import (
	"context"
	"crewcast/contract"
	"crewcast/domain"
	"crewcast/domain/event"
	"log/slog"
	"sync"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"
)

// MessageLog is the append-only chat transcript of one topic.
//
// Each chat event resolves its sender before being appended. Messages of one
// sender keep their arrival order, but a sender resolving slowly may be
// overtaken by another sender: across senders render order is completion order.
type MessageLog struct {
	log      *slog.Logger
	resolver contract.IIdentityResolver
	filter   contract.IContentFilter
	index    contract.ITranscriptIndex
	now      func() time.Time

	// queues holds, per sender, the contents waiting on its identity lookup.
	queueMu sync.Mutex
	queues  map[string][]string

	mu       sync.RWMutex
	messages []domain.ChatMessage
	closed   bool
	pending  sync.WaitGroup
	watchers observers
}

func NewMessageLog(log *slog.Logger, resolver contract.IIdentityResolver) *MessageLog {
	return &MessageLog{log: log, resolver: resolver, now: time.Now, queues: make(map[string][]string)}
}

// WithFilter masks forbidden words before messages are stored.
func (l *MessageLog) WithFilter(filter contract.IContentFilter) *MessageLog {
	l.filter = filter
	return l
}

// WithIndex feeds every appended message to a search index.
func (l *MessageLog) WithIndex(index contract.ITranscriptIndex) *MessageLog {
	l.index = index
	return l
}

func (l *MessageLog) WithClock(now func() time.Time) *MessageLog {
	l.now = now
	return l
}

// Consume appends chat events and returns immediately. A sender already known
// is appended inline; otherwise the message waits behind its sender's lookup.
// Other events are ignored.
func (l *MessageLog) Consume(ctx context.Context, e event.Event) error {
	chat, ok := e.(event.ChatReceived)
	if !ok {
		return nil
	}

	l.queueMu.Lock()
	if queue, waiting := l.queues[chat.Sender]; waiting {
		l.queues[chat.Sender] = append(queue, chat.Content)
		l.queueMu.Unlock()
		return nil
	}
	if identity, known := l.cached(chat.Sender); known {
		l.store(chat.Sender, chat.Content, identity)
		l.queueMu.Unlock()
		return nil
	}
	l.queues[chat.Sender] = []string{chat.Content}
	l.pending.Add(1)
	l.queueMu.Unlock()

	go func() {
		defer l.pending.Done()
		l.drain(context.WithoutCancel(ctx), chat.Sender)
	}()
	return nil
}

// drain resolves sender once, then appends its queued messages in arrival order.
func (l *MessageLog) drain(ctx context.Context, sender string) {
	identity, err := l.resolver.Resolve(ctx, sender)
	if err != nil {
		l.log.Debug("Appending message from unresolved sender", "sender", sender, "err", err)
	}

	for {
		l.queueMu.Lock()
		queue := l.queues[sender]
		if len(queue) == 0 {
			delete(l.queues, sender)
			l.queueMu.Unlock()
			return
		}
		l.queues[sender] = queue[1:]
		l.store(sender, queue[0], identity)
		l.queueMu.Unlock()
	}
}

func (l *MessageLog) cached(sender string) (domain.NodeIdentity, bool) {
	cache, ok := l.resolver.(contract.ICachedIdentities)
	if !ok {
		return domain.NodeIdentity{}, false
	}
	return cache.Cached(sender)
}

// Append resolves the sender, then appends a message stamped with the local time.
// Nothing is appended once the log is closed.
func (l *MessageLog) Append(ctx context.Context, senderNodeID, content string) {
	identity, err := l.resolver.Resolve(ctx, senderNodeID)
	if err != nil {
		l.log.Debug("Appending message from unresolved sender", "sender", senderNodeID, "err", err)
	}
	l.store(senderNodeID, content, identity)
}

func (l *MessageLog) store(senderNodeID, content string, identity domain.NodeIdentity) {
	if l.filter != nil {
		masked, words := l.filter.Censor(content)
		if len(words) > 0 {
			l.log.Debug("Masked chat content", "sender", senderNodeID, "words", len(words))
		}
		content = masked
	}

	msg := domain.ChatMessage{
		ID:                uuid.New(),
		Content:           content,
		SenderNodeID:      senderNodeID,
		ResolvedFirstName: identity.FirstName,
		Language:          detectLanguage(content),
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		l.log.Debug("Discarding message for a closed topic", "sender", senderNodeID)
		return
	}
	msg.LocalTimestamp = l.now()
	l.messages = append(l.messages, msg)
	l.mu.Unlock()

	if l.index != nil {
		if err := l.index.Index(msg); err != nil {
			l.log.Warn("Failed to index message", "id", msg.ID, "err", err)
		}
	}
	l.watchers.notify()
}

// Snapshot returns a copy of the transcript in render order.
func (l *MessageLog) Snapshot() []domain.ChatMessage {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.ChatMessage, len(l.messages))
	copy(out, l.messages)
	return out
}

func (l *MessageLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.messages)
}

// Subscribe returns a channel signaled after each append, and its cancel function.
func (l *MessageLog) Subscribe() (<-chan struct{}, func()) {
	return l.watchers.subscribe()
}

// Wait blocks until every message waiting on a lookup was appended or discarded.
func (l *MessageLog) Wait() {
	l.pending.Wait()
}

// Close stops accepting messages. Appends still in flight are discarded.
func (l *MessageLog) Close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
	l.watchers.closeAll()
}

// detectLanguage returns the ISO 639-1 code of content, or "" when unsure.
func detectLanguage(content string) string {
	info := whatlanggo.Detect(content)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.Iso6391()
}
