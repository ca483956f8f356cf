package runtime

import (
	"crewcast/contract"
	"sort"
	"sync"
)

// Registry maps a topic to the listeners installed for it.
// Removing a topic's listeners is the only way event delivery is cancelled.
type Registry struct {
	mu        sync.RWMutex
	listeners map[string]map[string]contract.EventSink // topic -> listener -> sink
}

func NewRegistry() *Registry {
	return &Registry{listeners: make(map[string]map[string]contract.EventSink)}
}

// SinksForTopic returns the sinks of a topic ordered by listener id,
// or nil when nothing listens to it.
func (r *Registry) SinksForTopic(topicID string) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listeners, ok := r.listeners[topicID]
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(listeners))
	for id := range listeners {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	sinks := make([]contract.EventSink, 0, len(ids))
	for _, id := range ids {
		sinks = append(sinks, listeners[id])
	}
	return sinks
}

func (r *Registry) Subscribe(listenerID, topicID string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listeners[topicID]; !ok {
		r.listeners[topicID] = make(map[string]contract.EventSink)
	}
	r.listeners[topicID][listenerID] = sink
}

// Unsubscribe removes one listener. A topic left without listeners is dropped.
func (r *Registry) Unsubscribe(listenerID, topicID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if listeners, ok := r.listeners[topicID]; ok {
		delete(listeners, listenerID)
		if len(listeners) == 0 {
			delete(r.listeners, topicID)
		}
	}
}

func (r *Registry) UnsubscribeTopic(topicID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.listeners, topicID)
}

// Topics returns the topics that currently have listeners.
func (r *Registry) Topics() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	topics := make([]string, 0, len(r.listeners))
	for topic := range r.listeners {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}
