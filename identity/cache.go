package identity

import (
	"crewcast/contract"
	"crewcast/domain"
	"crewcast/errors"
	goerrors "errors"
	"log/slog"
	"sync"
)

// Cache holds resolved identities shared by every store of a session,
// and across topic switches. Inserts are monotonic: a cached identity is never replaced.
// Failures are never cached.
type Cache struct {
	mu      sync.RWMutex
	log     *slog.Logger
	entries map[string]domain.NodeIdentity
	store   contract.IIdentityStore
}

// NewCache builds an empty cache. store is an optional persistent second level.
func NewCache(log *slog.Logger, store contract.IIdentityStore) *Cache {
	return &Cache{
		log:     log,
		entries: make(map[string]domain.NodeIdentity),
		store:   store,
	}
}

// Get looks up memory first, then the persistent store.
func (c *Cache) Get(nodeID string) (domain.NodeIdentity, bool) {
	c.mu.RLock()
	identity, ok := c.entries[nodeID]
	c.mu.RUnlock()
	if ok || c.store == nil {
		return identity, ok
	}

	identity, err := c.store.Get(nodeID)
	if err != nil {
		if !goerrors.Is(err, errors.ErrNotFound) {
			c.log.Warn("Identity store read failed", "nodeId", nodeID, "err", err)
		}
		return domain.NodeIdentity{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[nodeID]; ok {
		return existing, true
	}
	c.entries[nodeID] = identity
	return identity, true
}

// PutIfAbsent inserts identity unless one is already cached for its node,
// and returns the cached value.
func (c *Cache) PutIfAbsent(identity domain.NodeIdentity) domain.NodeIdentity {
	c.mu.Lock()
	if existing, ok := c.entries[identity.NodeID]; ok {
		c.mu.Unlock()
		return existing
	}
	c.entries[identity.NodeID] = identity
	c.mu.Unlock()

	if c.store != nil {
		if err := c.store.Put(identity); err != nil {
			c.log.Warn("Identity store write failed", "nodeId", identity.NodeID, "err", err)
		}
	}
	return identity
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
