package runtime

import (
	"context"
	"crewcast/domain"
	"crewcast/domain/event"
	"crewcast/errors"
	"crewcast/mocks"
	"crewcast/observability"
	goerrors "errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	topicA = domain.Topic{ID: 1, TopicID: "topic-a", Name: "rust", OwnerNodeID: "ownerA", Members: []string{"nodeA1"}}
	topicB = domain.Topic{ID: 2, TopicID: "topic-b", Name: "golang", OwnerNodeID: "ownerB", Members: []string{"nodeB1", "ownerB"}}
)

// fakeSource broadcasts published payloads to the live subscriptions of a stream.
type fakeSource struct {
	mu   sync.Mutex
	subs map[event.Stream]map[chan []byte]struct{}
}

func newFakeSource() *fakeSource {
	return &fakeSource{subs: make(map[event.Stream]map[chan []byte]struct{})}
}

func (f *fakeSource) Subscribe(ctx context.Context, stream event.Stream) (<-chan []byte, error) {
	ch := make(chan []byte, 16)
	f.mu.Lock()
	if f.subs[stream] == nil {
		f.subs[stream] = make(map[chan []byte]struct{})
	}
	f.subs[stream][ch] = struct{}{}
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		delete(f.subs[stream], ch)
		close(ch)
		f.mu.Unlock()
	}()
	return ch, nil
}

func (f *fakeSource) publish(stream event.Stream, payload []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for ch := range f.subs[stream] {
		ch <- payload
	}
}

func (f *fakeSource) subscribers(stream event.Stream) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs[stream])
}

type recordingNotifier struct {
	mu            sync.Mutex
	notifications []domain.Notification
}

func (r *recordingNotifier) Notify(n domain.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

func (r *recordingNotifier) withLevel(level domain.Level) []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Notification
	for _, n := range r.notifications {
		if n.Level == level {
			out = append(out, n)
		}
	}
	return out
}

type fixture struct {
	orchestrator *Orchestrator
	backend      *mocks.MockIBackend
	resolver     *mocks.MockIIdentityResolver
	source       *fakeSource
	notifier     *recordingNotifier
	monitoring   *observability.Monitoring
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		backend:    mocks.NewMockIBackend(ctrl),
		resolver:   mocks.NewMockIIdentityResolver(ctrl),
		source:     newFakeSource(),
		notifier:   &recordingNotifier{},
		monitoring: observability.NewMonitoring(),
	}
	f.orchestrator = NewOrchestrator(
		logs.GetLoggerFromLevel(slog.LevelDebug),
		f.backend, f.source, NewRegistry(), f.resolver, f.notifier, f.monitoring,
		"localNode",
		SessionConfig{
			SweepInterval:   time.Hour,
			ActiveWindow:    time.Minute,
			GraceDelay:      10 * time.Millisecond,
			RestartInterval: 10 * time.Millisecond,
		},
	)
	t.Cleanup(f.orchestrator.Close)
	return f
}

func (f fixture) resolveByNodeID() {
	f.resolver.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, nodeID string) (domain.NodeIdentity, error) {
			return domain.NodeIdentity{NodeID: nodeID, FirstName: "name-" + nodeID}, nil
		}).AnyTimes()
}

func chatPayload(t *testing.T, sender, content string) []byte {
	payload, err := event.EncodeChat(sender, content)
	require.NoError(t, err)
	return payload
}

func memberIDs(members []domain.Member) []string {
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.NodeID
	}
	return ids
}

func TestOrchestrator_JoinHydratesAndRoutesEvents(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	f.resolveByNodeID()

	// Given the backend accepts the join
	f.backend.EXPECT().JoinTopicWithID(gomock.Any(), int64(1)).Return(topicA, nil)
	f.backend.EXPECT().ListFiles(gomock.Any(), "topic-a").Return(nil, nil).AnyTimes()

	// When joining
	topic, err := f.orchestrator.JoinWithID(ctx, 1)

	// Then the roster is hydrated and the user is told
	req.NoError(err)
	req.Equal(topicA, topic)
	req.Equal(ActiveTopic, f.orchestrator.State())
	session := f.orchestrator.Session()
	req.Equal([]string{"ownerA", "nodeA1"}, memberIDs(session.Presence.Snapshot()))
	req.Len(f.notifier.withLevel(domain.LevelSuccess), 1)
	req.Equal(`Joined topic "rust" successfully!`, f.notifier.withLevel(domain.LevelSuccess)[0].Message)

	// When events arrive on both streams
	req.Eventually(func() bool {
		return f.source.subscribers(event.GossipStream) == 1 && f.source.subscribers(event.ProgressStream) == 1
	}, time.Second, 5*time.Millisecond)
	f.source.publish(event.GossipStream, chatPayload(t, "nodeA1", "hello"))
	f.source.publish(event.GossipStream, []byte(`{"type":"reaction"}`))

	// Then chat reaches the message log and garbage is dropped
	req.Eventually(func() bool { return session.Messages.Len() == 1 }, time.Second, 5*time.Millisecond)
	req.Equal("name-nodeA1", session.Messages.Snapshot()[0].ResolvedFirstName)
	req.Eventually(func() bool { return f.monitoring.Snapshot().EventsDropped == 1 }, time.Second, 5*time.Millisecond)
}

func TestOrchestrator_SwitchTopicStartsFresh(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()

	// Given a sender of topic A whose identity lookup is slow
	release := make(chan struct{})
	f.resolver.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, nodeID string) (domain.NodeIdentity, error) {
			if nodeID == "slowA" {
				<-release
			}
			return domain.NodeIdentity{NodeID: nodeID, FirstName: "name-" + nodeID}, nil
		}).AnyTimes()
	defer close(release)

	f.backend.EXPECT().JoinTopicWithID(gomock.Any(), int64(1)).Return(topicA, nil)
	f.backend.EXPECT().JoinTopicWithID(gomock.Any(), int64(2)).Return(topicB, nil)
	f.backend.EXPECT().ListFiles(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.backend.EXPECT().LeaveTopic(gomock.Any()).Return(nil).Times(1)

	_, err := f.orchestrator.JoinWithID(ctx, 1)
	req.NoError(err)
	sessionA := f.orchestrator.Session()
	req.Eventually(func() bool { return f.source.subscribers(event.GossipStream) == 1 }, time.Second, 5*time.Millisecond)

	f.source.publish(event.GossipStream, chatPayload(t, "nodeA1", "first"))
	f.source.publish(event.GossipStream, chatPayload(t, "slowA", "late"))
	req.Eventually(func() bool { return sessionA.Messages.Len() == 1 }, time.Second, 5*time.Millisecond)

	// When switching to topic B while a lookup of A is still pending
	_, err = f.orchestrator.JoinWithID(ctx, 2)
	req.NoError(err)
	sessionB := f.orchestrator.Session()

	// Then B starts empty with B's roster only
	req.NotSame(sessionA, sessionB)
	req.Equal(0, sessionB.Messages.Len())
	req.Equal([]string{"ownerB", "nodeB1"}, memberIDs(sessionB.Presence.Snapshot()))
	req.Eventually(func() bool { return f.source.subscribers(event.GossipStream) == 1 }, time.Second, 5*time.Millisecond)

	// When the pending lookup of A completes
	release <- struct{}{}
	sessionA.Messages.Wait()

	// Then nothing of A leaks into either log
	req.Equal(1, sessionA.Messages.Len())
	req.Equal(0, sessionB.Messages.Len())
}

func TestOrchestrator_JoinFailureNotifiesOnce(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	// Given the backend rejects the ticket
	f.backend.EXPECT().JoinTopicWithTicket(gomock.Any(), "rust:abc").Return(domain.Topic{}, errors.ErrInvalidTicket)

	// When joining
	_, err := f.orchestrator.JoinWithTicket(context.Background(), " rust:abc ")

	// Then
	req.ErrorIs(err, errors.ErrInvalidTicket)
	req.Equal(NoTopic, f.orchestrator.State())
	failures := f.notifier.withLevel(domain.LevelError)
	req.Len(failures, 1)
	req.Equal("Failed to join topic with the provided ticket", failures[0].Message)
}

func TestOrchestrator_RejectsBlankInputLocally(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()

	// Given the backend expects no call at all
	_, err := f.orchestrator.JoinWithTicket(ctx, "   ")
	req.ErrorIs(err, errors.ErrInvalidTicket)

	_, err = f.orchestrator.JoinWithTicket(ctx, "no-separator")
	req.ErrorIs(err, errors.ErrInvalidTicket)

	_, err = f.orchestrator.Create(ctx, "")
	req.ErrorIs(err, errors.ErrEmptyTopicName)

	req.ErrorIs(f.orchestrator.SendMessage(ctx, "  "), errors.ErrEmptyMessage)
	req.ErrorIs(f.orchestrator.SendMessage(ctx, "hi"), errors.ErrNoActiveTopic)
	req.ErrorIs(f.orchestrator.Leave(ctx), errors.ErrNoActiveTopic)

	req.Len(f.notifier.withLevel(domain.LevelWarn), 3)
	req.Empty(f.notifier.withLevel(domain.LevelError))
}

func TestOrchestrator_CreateJoinsOwnedTopic(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.resolveByNodeID()

	created := domain.Topic{ID: 3, TopicID: "topic-c", Name: "general", OwnerNodeID: "localNode"}
	f.backend.EXPECT().StartNewTopic(gomock.Any(), "general").Return("general:tok", nil)
	f.backend.EXPECT().ListTopics(gomock.Any()).Return([]domain.Topic{
		{ID: 1, TopicID: "other", Name: "general", OwnerNodeID: "someoneElse"},
		{ID: 2, TopicID: "old", Name: "general", OwnerNodeID: "localNode"},
		created,
	}, nil)
	f.backend.EXPECT().ListFiles(gomock.Any(), "topic-c").Return(nil, nil)

	// When
	key, err := f.orchestrator.Create(context.Background(), "general")

	// Then
	req.NoError(err)
	req.Equal("general:tok", key)
	req.Equal(created, f.orchestrator.Session().Topic)
	req.Equal(`New topic "general" created successfully!`, f.notifier.withLevel(domain.LevelSuccess)[0].Message)
}

func TestOrchestrator_LeaveResetsEvenWhenBackendFails(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	f.resolveByNodeID()

	f.backend.EXPECT().JoinTopicWithID(gomock.Any(), int64(1)).Return(topicA, nil)
	f.backend.EXPECT().ListFiles(gomock.Any(), "topic-a").Return(nil, nil)
	f.backend.EXPECT().LeaveTopic(gomock.Any()).Return(goerrors.New("node offline"))

	_, err := f.orchestrator.JoinWithID(ctx, 1)
	req.NoError(err)
	session := f.orchestrator.Session()

	// When
	err = f.orchestrator.Leave(ctx)

	// Then the local state is gone anyway
	req.Error(err)
	req.Equal(NoTopic, f.orchestrator.State())
	req.Len(f.notifier.withLevel(domain.LevelError), 1)
	req.Eventually(func() bool { return f.source.subscribers(event.GossipStream) == 0 }, time.Second, 5*time.Millisecond)

	_, err = f.orchestrator.RequestTicket(ctx)
	req.ErrorIs(err, errors.ErrNoActiveTopic)
	session.Messages.Append(ctx, "nodeA1", "after leave")
	req.Equal(0, session.Messages.Len())
}

func TestOrchestrator_RequestTicket(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	f.resolveByNodeID()

	f.backend.EXPECT().JoinTopicWithID(gomock.Any(), int64(1)).Return(topicA, nil)
	f.backend.EXPECT().ListFiles(gomock.Any(), "topic-a").Return(nil, nil)
	f.backend.EXPECT().GetTicketForTopic(gomock.Any(), "topic-a").Return("rust:tok", nil)

	_, err := f.orchestrator.JoinWithID(ctx, 1)
	req.NoError(err)

	key, err := f.orchestrator.RequestTicket(ctx)

	req.NoError(err)
	req.Equal("rust:tok", key)
	req.Equal("Topic invitation ticket generated", f.notifier.withLevel(domain.LevelSuccess)[1].Message)
}
