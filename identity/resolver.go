// Package identity resolves opaque node ids to display identities.
package identity

import (
	"context"
	"crewcast/contract"
	"crewcast/domain"
	"crewcast/observability"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"
)

// Resolver is cache-first. On a miss, concurrent callers for the same node
// share a single directory lookup. A failed lookup yields the Unknown
// placeholder and is not cached, so the next call retries.
type Resolver struct {
	log        *slog.Logger
	directory  contract.IDirectory
	cache      *Cache
	group      singleflight.Group
	timeout    time.Duration
	monitoring *observability.Monitoring
}

func NewResolver(
	log *slog.Logger,
	directory contract.IDirectory,
	cache *Cache,
	timeout time.Duration,
	monitoring *observability.Monitoring,
) *Resolver {
	return &Resolver{
		log:        log,
		directory:  directory,
		cache:      cache,
		timeout:    timeout,
		monitoring: monitoring,
	}
}

// Resolve returns the identity of nodeID. On failure the returned identity is
// the Unknown placeholder and err is set.
// The lookup is detached from ctx: a caller giving up does not abort it for the others.
func (r *Resolver) Resolve(ctx context.Context, nodeID string) (domain.NodeIdentity, error) {
	if identity, ok := r.cache.Get(nodeID); ok {
		return identity, nil
	}

	ch := r.group.DoChan(nodeID, func() (any, error) {
		if identity, ok := r.cache.Get(nodeID); ok {
			return identity, nil
		}
		return r.lookup(context.WithoutCancel(ctx), nodeID)
	})

	select {
	case <-ctx.Done():
		return domain.UnknownIdentity(nodeID), ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return domain.UnknownIdentity(nodeID), res.Err
		}
		return res.Val.(domain.NodeIdentity), nil
	}
}

// Cached returns the identity of nodeID only if it is already known.
func (r *Resolver) Cached(nodeID string) (domain.NodeIdentity, bool) {
	return r.cache.Get(nodeID)
}

func (r *Resolver) lookup(ctx context.Context, nodeID string) (domain.NodeIdentity, error) {
	r.monitoring.IncrLookupsIssued()
	lookupCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	user, err := r.directory.GetUserByNodeID(lookupCtx, nodeID)
	if err != nil {
		r.monitoring.IncrLookupFailures()
		r.log.Warn("Identity lookup failed", "nodeId", nodeID, "err", err)
		return domain.NodeIdentity{}, fmt.Errorf("resolve %s: %w", nodeID, err)
	}

	identity := user.Identity()
	identity.NodeID = nodeID
	return r.cache.PutIfAbsent(identity), nil
}
