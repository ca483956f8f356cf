package memory

import (
	"context"
	"crewcast/domain"
	"crewcast/domain/event"
	"crewcast/errors"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/crypto/blake2b"
)

var progressSteps = []float64{25, 50, 75, 100}

// Backend serves the RPC surface for a single local node.
// Like the real backend it has at most one active topic, and it emits
// gossip and download progress on its Hub.
type Backend struct {
	log          *slog.Logger
	hub          *Hub
	tickets      *TicketCodec
	local        domain.Node
	progressStep time.Duration
	now          func() time.Time

	mu          sync.RWMutex
	users       map[string]domain.UserInfo
	topics      []domain.Topic
	nextTopicID int64
	active      string
	files       map[string][]domain.SharedFile
	nextFileID  int64

	stop chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

func NewBackend(log *slog.Logger, hub *Hub, tickets *TicketCodec, local domain.Node, progressStep time.Duration) *Backend {
	return &Backend{
		log:          log,
		hub:          hub,
		tickets:      tickets,
		local:        local,
		progressStep: progressStep,
		now:          time.Now,
		users:        make(map[string]domain.UserInfo),
		files:        make(map[string][]domain.SharedFile),
		stop:         make(chan struct{}),
	}
}

// Close stops the downloads still emitting progress.
func (b *Backend) Close() {
	b.once.Do(func() { close(b.stop) })
	b.wg.Wait()
}

func (b *Backend) LocalNode() domain.Node {
	return b.local
}

// ActiveTopic returns the joined topic, if any.
func (b *Backend) ActiveTopic() (domain.Topic, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.active == "" {
		return domain.Topic{}, false
	}
	return b.findByTopicID(b.active)
}

func (b *Backend) GetUserByNodeID(_ context.Context, nodeID string) (domain.UserInfo, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	user, ok := b.users[nodeID]
	if !ok {
		return domain.UserInfo{}, fmt.Errorf("%w: user %s", errors.ErrNotFound, nodeID)
	}
	return user, nil
}

func (b *Backend) CreateUser(_ context.Context, user domain.UserInfo) error {
	if user.NodeID == "" {
		user.NodeID = b.local.NodeID
	}
	b.mu.Lock()
	b.users[user.NodeID] = user
	b.mu.Unlock()
	b.log.Info("User created", "nodeId", user.NodeID, "firstName", user.FirstName)
	return nil
}

func (b *Backend) GetNodeByID(_ context.Context, id int64) (domain.Node, error) {
	if id != b.local.ID {
		return domain.Node{}, fmt.Errorf("%w: node %d", errors.ErrNotFound, id)
	}
	return b.local, nil
}

func (b *Backend) ListTopics(_ context.Context) ([]domain.Topic, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return lo.Map(b.topics, func(t domain.Topic, _ int) domain.Topic { return cloneTopic(t) }), nil
}

// StartNewTopic creates a topic owned by the local node, joins it and returns its invitation key.
func (b *Backend) StartNewTopic(_ context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.ErrEmptyTopicName
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active != "" {
		return "", errors.ErrAlreadyJoined
	}

	topicID := uuid.NewString()
	ticket, err := b.tickets.Issue(topicID)
	if err != nil {
		return "", err
	}
	b.nextTopicID++
	b.topics = append(b.topics, domain.Topic{
		ID:          b.nextTopicID,
		TopicID:     topicID,
		Name:        name,
		OwnerNodeID: b.local.NodeID,
		Members:     []string{},
	})
	b.active = topicID
	b.log.Info("Topic created", "topicId", topicID, "name", name)
	return domain.TicketKey(name, ticket), nil
}

func (b *Backend) JoinTopicWithTicket(_ context.Context, key string) (domain.Topic, error) {
	_, ticket, err := domain.ParseTicketKey(key)
	if err != nil {
		return domain.Topic{}, err
	}
	topicID, err := b.tickets.Verify(ticket)
	if err != nil {
		return domain.Topic{}, err
	}
	return b.join(func() (domain.Topic, bool) { return b.findByTopicID(topicID) })
}

func (b *Backend) JoinTopicWithID(_ context.Context, id int64) (domain.Topic, error) {
	return b.join(func() (domain.Topic, bool) {
		return lo.Find(b.topics, func(t domain.Topic) bool { return t.ID == id })
	})
}

func (b *Backend) join(find func() (domain.Topic, bool)) (domain.Topic, error) {
	b.mu.Lock()
	if b.active != "" {
		b.mu.Unlock()
		return domain.Topic{}, errors.ErrAlreadyJoined
	}
	topic, ok := find()
	if !ok {
		b.mu.Unlock()
		return domain.Topic{}, errors.ErrTopicNotFound
	}
	topic = b.addMemberLocked(topic.TopicID, b.local.NodeID)
	b.active = topic.TopicID
	b.mu.Unlock()

	b.publishGossip(event.EncodeNewMember(b.local.NodeID))
	return topic, nil
}

func (b *Backend) GetTicketForTopic(_ context.Context, topicID string) (string, error) {
	b.mu.RLock()
	topic, ok := b.findByTopicID(topicID)
	b.mu.RUnlock()
	if !ok {
		return "", errors.ErrTopicNotFound
	}
	ticket, err := b.tickets.Issue(topicID)
	if err != nil {
		return "", err
	}
	return domain.TicketKey(topic.Name, ticket), nil
}

func (b *Backend) LeaveTopic(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active == "" {
		return errors.ErrNoActiveTopic
	}
	b.log.Info("Topic left", "topicId", b.active)
	b.active = ""
	return nil
}

// SendMessage gossips content to the active topic, the sender included.
func (b *Backend) SendMessage(_ context.Context, content string) error {
	if _, ok := b.ActiveTopic(); !ok {
		return errors.ErrNoActiveTopic
	}
	b.publishGossip(event.EncodeChat(b.local.NodeID, content))
	return nil
}

func (b *Backend) ListFiles(_ context.Context, topicID string) ([]domain.SharedFile, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	files := make([]domain.SharedFile, len(b.files[topicID]))
	copy(files, b.files[topicID])
	return files, nil
}

// ShareFile reads filePath and announces it in the active topic.
func (b *Backend) ShareFile(_ context.Context, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}
	topic, ok := b.ActiveTopic()
	if !ok {
		return errors.ErrNoActiveTopic
	}
	_, err = b.Announce(topic.TopicID, b.local.NodeID, filepath.Base(filePath), data)
	return err
}

// Announce records a file shared by nodeID in topicID and gossips it.
func (b *Backend) Announce(topicID, nodeID, name string, data []byte) (domain.SharedFile, error) {
	sum := blake2b.Sum256(data)

	b.mu.Lock()
	if _, ok := b.findByTopicID(topicID); !ok {
		b.mu.Unlock()
		return domain.SharedFile{}, errors.ErrTopicNotFound
	}
	b.nextFileID++
	file := domain.SharedFile{
		ID:        b.nextFileID,
		NodeID:    nodeID,
		TopicID:   topicID,
		Hash:      hex.EncodeToString(sum[:]),
		Name:      name,
		Format:    mimetype.Detect(data).String(),
		SizeBytes: int64(len(data)),
		Status:    domain.StatusAnnounced,
		SharedAt:  b.now().UnixMilli(),
	}
	b.files[topicID] = append(b.files[topicID], file)
	b.mu.Unlock()

	b.log.Info("File shared", "topicId", topicID, "name", name, "format", file.Format, "size", file.SizeBytes)
	b.publishGossip(event.EncodeFile(file))
	return file, nil
}

// DownloadFile starts a download and reports it on the progress stream.
// The file is marked Downloaded just before the final 100 step.
func (b *Backend) DownloadFile(_ context.Context, file domain.SharedFile) error {
	b.mu.RLock()
	stored, ok := lo.Find(b.files[file.TopicID], func(f domain.SharedFile) bool { return f.ID == file.ID })
	b.mu.RUnlock()
	switch {
	case !ok:
		return fmt.Errorf("%w: file %d", errors.ErrNotFound, file.ID)
	case stored.NodeID == b.local.NodeID:
		return errors.ErrOwnFile
	case stored.Status == domain.StatusDownloaded:
		return errors.ErrAlreadyDownloaded
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.emitProgress(stored)
	}()
	return nil
}

func (b *Backend) emitProgress(file domain.SharedFile) {
	ticker := time.NewTicker(b.progressStep)
	defer ticker.Stop()

	for _, step := range progressSteps {
		select {
		case <-b.stop:
			return
		case <-ticker.C:
		}
		if step == 100 {
			b.markDownloaded(file)
		}
		downloaded := int64(float64(file.SizeBytes) * step / 100)
		payload, err := event.EncodeProgress(event.DownloadProgress{
			FileName:      file.Name,
			Percentage:    step,
			HasPercentage: true,
			Downloaded:    downloaded,
			Total:         file.SizeBytes,
			Complete:      step == 100,
		})
		if err != nil {
			b.log.Error("Failed to encode progress", "err", err)
			return
		}
		b.hub.Publish(event.ProgressStream, payload)
	}
}

func (b *Backend) markDownloaded(file domain.SharedFile) {
	b.mu.Lock()
	defer b.mu.Unlock()
	files := b.files[file.TopicID]
	for i := range files {
		if files[i].ID == file.ID {
			files[i].Status = domain.StatusDownloaded
		}
	}
}

// RegisterPeer adds a remote user to the directory.
func (b *Backend) RegisterPeer(user domain.UserInfo) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.users[user.NodeID] = user
}

// AddMember records nodeID as a member of topicID.
func (b *Backend) AddMember(topicID, nodeID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.addMemberLocked(topicID, nodeID)
}

func (b *Backend) addMemberLocked(topicID, nodeID string) domain.Topic {
	for i := range b.topics {
		t := &b.topics[i]
		if t.TopicID != topicID {
			continue
		}
		if t.OwnerNodeID != nodeID && !lo.Contains(t.Members, nodeID) {
			t.Members = append(t.Members, nodeID)
		}
		return cloneTopic(*t)
	}
	return domain.Topic{}
}

func (b *Backend) findByTopicID(topicID string) (domain.Topic, bool) {
	topic, ok := lo.Find(b.topics, func(t domain.Topic) bool { return t.TopicID == topicID })
	return cloneTopic(topic), ok
}

func (b *Backend) publishGossip(payload []byte, err error) {
	if err != nil {
		b.log.Error("Failed to encode gossip", "err", err)
		return
	}
	b.hub.Publish(event.GossipStream, payload)
}

func cloneTopic(t domain.Topic) domain.Topic {
	t.Members = append([]string{}, t.Members...)
	return t
}
