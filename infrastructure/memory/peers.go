package memory

import (
	"context"
	"crewcast/domain"
	"crewcast/domain/event"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"
)

var chatter = []string{
	"Hello everyone!",
	"Did anyone look at the build logs?",
	"Bonjour à tous, comment ça va aujourd'hui ?",
	"I just pushed the fix, can someone review it?",
	"Hola, ¿alguien sabe dónde está el documento?",
	"Lunch in ten minutes?",
	"Ich habe die Datei gerade geteilt.",
}

// PeerSimulator plays remote members of whatever topic the local node joined.
// Peers join it, check in on a fixed cadence and chat now and then.
type PeerSimulator struct {
	log             *slog.Logger
	backend         *Backend
	hub             *Hub
	peers           []domain.UserInfo
	checkInInterval time.Duration
	chatInterval    time.Duration

	joined map[string]bool // topic id -> peers already announced
	chats  int
}

func NewPeerSimulator(
	log *slog.Logger,
	backend *Backend,
	hub *Hub,
	peers []domain.UserInfo,
	checkInInterval, chatInterval time.Duration,
) *PeerSimulator {
	for _, peer := range peers {
		backend.RegisterPeer(peer)
	}
	return &PeerSimulator{
		log:             log,
		backend:         backend,
		hub:             hub,
		peers:           peers,
		checkInInterval: checkInInterval,
		chatInterval:    chatInterval,
		joined:          make(map[string]bool),
	}
}

func (s *PeerSimulator) Run(ctx context.Context) error {
	if len(s.peers) == 0 {
		<-ctx.Done()
		return nil
	}
	checkIns := time.NewTicker(s.checkInInterval)
	defer checkIns.Stop()
	chats := time.NewTicker(s.chatInterval)
	defer chats.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-checkIns.C:
			s.CheckIn()
		case <-chats.C:
			s.Chat()
			if s.chats%5 == 0 {
				s.ShareNote()
			}
		}
	}
}

// CheckIn makes every peer announce its presence in the active topic.
// The first time a topic is seen, peers join it before checking in.
func (s *PeerSimulator) CheckIn() {
	topic, ok := s.backend.ActiveTopic()
	if !ok {
		return
	}
	if !s.joined[topic.TopicID] {
		s.joined[topic.TopicID] = true
		for _, peer := range s.peers {
			s.backend.AddMember(topic.TopicID, peer.NodeID)
			s.publish(event.EncodeNewMember(peer.NodeID))
		}
		s.log.Debug("Peers joined topic", "topicId", topic.TopicID, "peers", len(s.peers))
	}
	for _, peer := range s.peers {
		s.publish(event.EncodeCheckIn(peer.NodeID, domain.MemberMeta{
			Email:     peer.Email,
			FirstName: peer.FirstName,
			LastName:  peer.LastName,
		}))
	}
}

// Chat makes a random peer say a random line in the active topic.
func (s *PeerSimulator) Chat() {
	if _, ok := s.backend.ActiveTopic(); !ok {
		return
	}
	s.chats++
	peer := s.peers[rand.IntN(len(s.peers))]
	s.publish(event.EncodeChat(peer.NodeID, chatter[rand.IntN(len(chatter))]))
}

// ShareNote makes a random peer share a small text file in the active topic.
func (s *PeerSimulator) ShareNote() {
	topic, ok := s.backend.ActiveTopic()
	if !ok {
		return
	}
	peer := s.peers[rand.IntN(len(s.peers))]
	name := fmt.Sprintf("notes-%s-%d.txt", strings.ToLower(peer.FirstName), s.chats)
	content := fmt.Sprintf("Notes from %s\n%s\n", peer.FirstName, strings.Join(chatter, "\n"))
	if _, err := s.backend.Announce(topic.TopicID, peer.NodeID, name, []byte(content)); err != nil {
		s.log.Warn("Peer failed to share a note", "peer", peer.NodeID, "err", err)
	}
}

func (s *PeerSimulator) publish(payload []byte, err error) {
	if err != nil {
		s.log.Error("Failed to encode peer event", "err", err)
		return
	}
	s.hub.Publish(event.GossipStream, payload)
}
