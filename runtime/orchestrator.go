// Package runtime drives the topic lifecycle: it joins and leaves topics,
// wires the event streams to the per-topic stores and forwards user actions
// to the backend. It holds no business rules of its own.
package runtime

import (
	"context"
	"crewcast/contract"
	"crewcast/domain"
	"crewcast/domain/event"
	"crewcast/errors"
	"crewcast/observability"
	"crewcast/projection"
	"crewcast/runtime/workers"
	"crewcast/search"
	goerrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type State string

const (
	NoTopic     State = "NoTopic"
	ActiveTopic State = "ActiveTopic"
)

// SessionConfig holds the timings applied to every topic session.
type SessionConfig struct {
	SweepInterval   time.Duration
	ActiveWindow    time.Duration
	GraceDelay      time.Duration
	RestartInterval time.Duration
}

// Orchestrator is the TopicSession state machine.
//
// Transitions are serialized. Switching topics tears the previous session
// down (listeners first, then workers, then stores) before the next one is
// installed, so no event of the old topic reaches the new stores.
type Orchestrator struct {
	log         *slog.Logger
	backend     contract.IBackend
	source      contract.IEventSource
	registry    contract.IRegistry
	resolver    contract.IIdentityResolver
	notifier    contract.INotifier
	filter      contract.IContentFilter
	monitoring  *observability.Monitoring
	cfg         SessionConfig
	localNodeID string

	transition sync.Mutex
	mu         sync.RWMutex
	session    *TopicSession
}

func NewOrchestrator(
	log *slog.Logger,
	backend contract.IBackend,
	source contract.IEventSource,
	registry contract.IRegistry,
	resolver contract.IIdentityResolver,
	notifier contract.INotifier,
	monitoring *observability.Monitoring,
	localNodeID string,
	cfg SessionConfig,
) *Orchestrator {
	return &Orchestrator{
		log:         log,
		backend:     backend,
		source:      source,
		registry:    registry,
		resolver:    resolver,
		notifier:    notifier,
		monitoring:  monitoring,
		localNodeID: localNodeID,
		cfg:         cfg,
	}
}

// WithContentFilter masks chat content of every future session.
func (o *Orchestrator) WithContentFilter(filter contract.IContentFilter) *Orchestrator {
	o.filter = filter
	return o
}

func (o *Orchestrator) State() State {
	if o.Session() == nil {
		return NoTopic
	}
	return ActiveTopic
}

// Session returns the active session, or nil.
func (o *Orchestrator) Session() *TopicSession {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.session
}

func (o *Orchestrator) LocalNodeID() string {
	return o.localNodeID
}

// ListTopics returns the topics known to the local node.
// On failure the user is notified and an empty list is returned with the error.
func (o *Orchestrator) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	topics, err := o.backend.ListTopics(ctx)
	if err != nil {
		o.fail("Failed to fetch topics", err)
		return []domain.Topic{}, err
	}
	return topics, nil
}

// Create starts a new topic owned by the local node, joins it and returns its invitation key.
func (o *Orchestrator) Create(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		o.notify(domain.LevelWarn, "Please enter a topic name")
		return "", errors.ErrEmptyTopicName
	}

	o.transition.Lock()
	defer o.transition.Unlock()

	if err := o.leaveLocked(ctx); err != nil {
		return "", err
	}

	key, err := o.backend.StartNewTopic(ctx, name)
	if err != nil {
		o.fail("Failed to create topic", err)
		return "", err
	}

	topic, err := o.findCreated(ctx, name)
	if err != nil {
		o.fail("Failed to create topic", err)
		return "", err
	}

	o.activate(ctx, topic)
	o.notify(domain.LevelSuccess, fmt.Sprintf("New topic %q created successfully!", topic.Name))
	return key, nil
}

// findCreated picks the most recent topic with that name owned by the local node.
func (o *Orchestrator) findCreated(ctx context.Context, name string) (domain.Topic, error) {
	topics, err := o.backend.ListTopics(ctx)
	if err != nil {
		return domain.Topic{}, err
	}
	owned := lo.Filter(topics, func(t domain.Topic, _ int) bool {
		return t.Name == name && t.OwnerNodeID == o.localNodeID
	})
	if len(owned) == 0 {
		return domain.Topic{}, fmt.Errorf("%w: %s", errors.ErrTopicNotFound, name)
	}
	return lo.MaxBy(owned, func(a, b domain.Topic) bool { return a.ID > b.ID }), nil
}

// JoinWithTicket joins the topic described by a "name:ticket" invitation key.
func (o *Orchestrator) JoinWithTicket(ctx context.Context, key string) (domain.Topic, error) {
	key = strings.TrimSpace(key)
	if _, _, err := domain.ParseTicketKey(key); err != nil {
		o.notify(domain.LevelWarn, "Please enter a valid ticket")
		return domain.Topic{}, err
	}
	return o.join(ctx, "Failed to join topic with the provided ticket", func() (domain.Topic, error) {
		return o.backend.JoinTopicWithTicket(ctx, key)
	})
}

// JoinWithID joins a topic already known to the local node.
func (o *Orchestrator) JoinWithID(ctx context.Context, id int64) (domain.Topic, error) {
	return o.join(ctx, "Failed to join topic with the provided ID", func() (domain.Topic, error) {
		return o.backend.JoinTopicWithID(ctx, id)
	})
}

func (o *Orchestrator) join(ctx context.Context, failure string, call func() (domain.Topic, error)) (domain.Topic, error) {
	o.transition.Lock()
	defer o.transition.Unlock()

	if err := o.leaveLocked(ctx); err != nil {
		return domain.Topic{}, err
	}

	topic, err := call()
	if err != nil {
		o.fail(failure, err)
		return domain.Topic{}, err
	}

	o.activate(ctx, topic)
	o.notify(domain.LevelSuccess, fmt.Sprintf("Joined topic %q successfully!", topic.Name))
	return topic, nil
}

// Leave discards the active session and tells the backend.
// Local state is reset even when the backend call fails.
func (o *Orchestrator) Leave(ctx context.Context) error {
	o.transition.Lock()
	defer o.transition.Unlock()

	if o.Session() == nil {
		return errors.ErrNoActiveTopic
	}
	return o.leaveLocked(ctx)
}

func (o *Orchestrator) leaveLocked(ctx context.Context) error {
	session := o.Session()
	if session == nil {
		return nil
	}
	o.teardown(session)

	if err := o.backend.LeaveTopic(ctx); err != nil {
		o.fail("Failed to leave topic", err)
		return err
	}
	o.log.Info("Left topic", "topicId", session.Topic.TopicID, "name", session.Topic.Name)
	return nil
}

// Close drops the active session locally, without telling the backend.
func (o *Orchestrator) Close() {
	o.transition.Lock()
	defer o.transition.Unlock()
	if session := o.Session(); session != nil {
		o.teardown(session)
	}
}

// RequestTicket returns the invitation key of the active topic.
func (o *Orchestrator) RequestTicket(ctx context.Context) (string, error) {
	session := o.Session()
	if session == nil {
		return "", errors.ErrNoActiveTopic
	}
	key, err := o.backend.GetTicketForTopic(ctx, session.Topic.TopicID)
	if err != nil {
		o.fail("Failed to generate invitation ticket", err)
		return "", err
	}
	o.notify(domain.LevelSuccess, "Topic invitation ticket generated")
	return key, nil
}

// SendMessage broadcasts content to the active topic. Blank content is ignored.
func (o *Orchestrator) SendMessage(ctx context.Context, content string) error {
	if strings.TrimSpace(content) == "" {
		return errors.ErrEmptyMessage
	}
	if o.Session() == nil {
		return errors.ErrNoActiveTopic
	}
	if err := o.backend.SendMessage(ctx, content); err != nil {
		o.fail("Failed to send message", err)
		return err
	}
	return nil
}

// InitiateDownload starts downloading a catalog entry of the active topic.
func (o *Orchestrator) InitiateDownload(ctx context.Context, fileID int64) error {
	session := o.Session()
	if session == nil {
		return errors.ErrNoActiveTopic
	}
	entry, ok := session.Files.Find(fileID)
	if !ok {
		return fmt.Errorf("%w: %d", errors.ErrFileNotInCatalog, fileID)
	}
	return session.Files.InitiateDownload(ctx, entry)
}

// ShareFile shares a local file in the active topic.
func (o *Orchestrator) ShareFile(ctx context.Context, filePath string) error {
	session := o.Session()
	if session == nil {
		return errors.ErrNoActiveTopic
	}
	return session.Files.ShareFile(ctx, filePath)
}

// Search queries the transcript of the active topic.
func (o *Orchestrator) Search(ctx context.Context, q search.Query) ([]search.Hit, error) {
	session := o.Session()
	if session == nil {
		return nil, errors.ErrNoActiveTopic
	}
	return session.Search(ctx, q)
}

func (o *Orchestrator) Stats() observability.Stats {
	return o.monitoring.Snapshot()
}

// activate builds fresh stores for topic, registers them, starts the stream
// workers and hydrates the roster and the file catalog.
func (o *Orchestrator) activate(ctx context.Context, topic domain.Topic) {
	log := o.log.With("topicId", topic.TopicID)

	messages := projection.NewMessageLog(log, o.resolver)
	if o.filter != nil {
		messages.WithFilter(o.filter)
	}
	index, err := search.NewTranscriptIndex(log)
	if err != nil {
		log.Warn("Transcript search disabled for this topic", "err", err)
		index = nil
	} else {
		messages.WithIndex(index)
	}
	presence := projection.NewPresenceTracker(log, o.resolver, o.notifier, o.cfg.ActiveWindow)
	files := projection.NewFileCatalog(log, o.backend, o.resolver, o.notifier,
		topic.TopicID, o.localNodeID, o.cfg.GraceDelay)

	sinks := []contract.EventSink{messages, presence, files}
	listeners := lo.Map(sinks, func(sink contract.EventSink, _ int) string {
		id := uuid.NewString()
		o.registry.Subscribe(id, topic.TopicID, sink)
		return id
	})

	sessionCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	session := &TopicSession{
		Topic:     topic,
		Messages:  messages,
		Presence:  presence,
		Files:     files,
		log:       log,
		index:     index,
		cancel:    cancel,
		done:      make(chan struct{}),
		listeners: listeners,
	}

	supervisor := workers.NewSupervisor(log, o.cfg.RestartInterval, o.monitoring)
	supervisor.Add(
		workers.NewStreamPump(log, o.source, o.registry, event.GossipStream, topic.TopicID, o.monitoring),
		workers.NewStreamPump(log, o.source, o.registry, event.ProgressStream, topic.TopicID, o.monitoring),
		workers.NewSweepWorker(log, presence, o.cfg.SweepInterval),
	)
	go func() {
		defer close(session.done)
		supervisor.Run(sessionCtx)
	}()

	o.mu.Lock()
	o.session = session
	o.mu.Unlock()

	presence.Hydrate(sessionCtx, topic.Roster())
	if err := files.Hydrate(sessionCtx); err != nil && !goerrors.Is(err, context.Canceled) {
		log.Warn("File catalog starts empty", "err", err)
	}
	log.Info("Topic session started", "name", topic.Name, "roster", len(topic.Roster()))
}

func (o *Orchestrator) teardown(session *TopicSession) {
	for _, listenerID := range session.listeners {
		o.registry.Unsubscribe(listenerID, session.Topic.TopicID)
	}

	o.mu.Lock()
	o.session = nil
	o.mu.Unlock()

	session.stop()
	session.log.Info("Topic session stopped")
}

func (o *Orchestrator) notify(level domain.Level, message string) {
	o.notifier.Notify(domain.NewNotification(level, message))
}

func (o *Orchestrator) fail(message string, err error) {
	o.log.Error(message, "err", err)
	o.notify(domain.LevelError, message)
}
