//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"crewcast/domain"
	"crewcast/domain/event"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// It is only used for logging during supervision.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink consumes decoded backend events.
// Consume must not block the caller for longer than a map update.
type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}

// IRegistry maps a topic to the listeners currently installed for it.
type IRegistry interface {
	SinksForTopic(topicID string) []EventSink
	Subscribe(listenerID, topicID string, sink EventSink)
	Unsubscribe(listenerID, topicID string)
	UnsubscribeTopic(topicID string)
}

// IDirectory resolves node ids against the user directory.
type IDirectory interface {
	GetUserByNodeID(ctx context.Context, nodeID string) (domain.UserInfo, error)
}

type IFileBackend interface {
	ListFiles(ctx context.Context, topicID string) ([]domain.SharedFile, error)
	DownloadFile(ctx context.Context, file domain.SharedFile) error
	ShareFile(ctx context.Context, filePath string) error
}

// ITopicBackend acts on the backend's single active topic.
type ITopicBackend interface {
	ListTopics(ctx context.Context) ([]domain.Topic, error)
	StartNewTopic(ctx context.Context, name string) (string, error)
	JoinTopicWithTicket(ctx context.Context, key string) (domain.Topic, error)
	JoinTopicWithID(ctx context.Context, id int64) (domain.Topic, error)
	GetTicketForTopic(ctx context.Context, topicID string) (string, error)
	LeaveTopic(ctx context.Context) error
	SendMessage(ctx context.Context, content string) error
}

type IUserBackend interface {
	CreateUser(ctx context.Context, user domain.UserInfo) error
	GetNodeByID(ctx context.Context, id int64) (domain.Node, error)
}

// IBackend is the whole RPC surface of the networking backend.
type IBackend interface {
	IDirectory
	IFileBackend
	ITopicBackend
	IUserBackend
}

// IEventSource delivers raw payloads of a backend stream.
// Canceling ctx unsubscribes and closes the returned channel.
type IEventSource interface {
	Subscribe(ctx context.Context, stream event.Stream) (<-chan []byte, error)
}

type INotifier interface {
	Notify(n domain.Notification)
}

type IIdentityResolver interface {
	Resolve(ctx context.Context, nodeID string) (domain.NodeIdentity, error)
}

// ICachedIdentities answers from identities already resolved, without blocking.
type ICachedIdentities interface {
	Cached(nodeID string) (domain.NodeIdentity, bool)
}

// IIdentityStore persists resolved identities across runs.
type IIdentityStore interface {
	Get(nodeID string) (domain.NodeIdentity, error)
	Put(identity domain.NodeIdentity) error
	Close() error
}

// IContentFilter masks forbidden words and returns the words found.
type IContentFilter interface {
	Censor(original string) (string, []string)
}

// ITranscriptIndex makes received chat messages searchable.
type ITranscriptIndex interface {
	Index(msg domain.ChatMessage) error
}

// ISweeper recomputes time-derived state.
type ISweeper interface {
	Sweep()
}
