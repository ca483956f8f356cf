package projection

import (
	"context"
	"crewcast/contract"
	"crewcast/domain"
	"crewcast/domain/event"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const hydrateConcurrency = 8

// PresenceTracker keeps the topic roster with time-decaying liveness.
// Members are never removed, the sweep only marks them inactive.
type PresenceTracker struct {
	log          *slog.Logger
	resolver     contract.IIdentityResolver
	notifier     contract.INotifier
	activeWindow time.Duration
	now          func() time.Time

	mu       sync.RWMutex
	members  map[string]domain.Member
	order    []string
	closed   bool
	pending  sync.WaitGroup
	watchers observers
}

func NewPresenceTracker(
	log *slog.Logger,
	resolver contract.IIdentityResolver,
	notifier contract.INotifier,
	activeWindow time.Duration,
) *PresenceTracker {
	return &PresenceTracker{
		log:          log,
		resolver:     resolver,
		notifier:     notifier,
		activeWindow: activeWindow,
		now:          time.Now,
		members:      make(map[string]domain.Member),
	}
}

func (p *PresenceTracker) WithClock(now func() time.Time) *PresenceTracker {
	p.now = now
	return p
}

// Consume routes check-ins and join announcements. Other events are ignored.
func (p *PresenceTracker) Consume(ctx context.Context, e event.Event) error {
	switch evt := e.(type) {
	case event.CheckedIn:
		p.OnCheckIn(evt.Sender, evt.Meta)
	case event.MemberJoined:
		p.OnNewMember(ctx, evt)
	}
	return nil
}

// OnCheckIn upserts the sender. Only the first observation of a member
// produces a "joined" notification.
func (p *PresenceTracker) OnCheckIn(senderNodeID string, meta domain.MemberMeta) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	now := p.now()
	member, exists := p.members[senderNodeID]
	if exists {
		if meta.FirstName != "" {
			member.FirstName = meta.FirstName
		}
		member.LastName = meta.LastName
	} else {
		member = domain.Member{NodeID: senderNodeID, FirstName: meta.FirstName, LastName: meta.LastName}
		if member.FirstName == "" {
			member.FirstName = domain.UnknownFirstName
		}
		p.order = append(p.order, senderNodeID)
	}
	member.LastSeenAt = now
	member.IsActive = true
	p.members[senderNodeID] = member
	p.mu.Unlock()

	if !exists {
		p.log.Debug("New member observed", "nodeId", senderNodeID)
		p.notifier.Notify(domain.NewNotification(domain.LevelInfo, fmt.Sprintf("%s joined the topic", member.FirstName)))
	}
	p.watchers.notify()
}

// OnNewMember records a join announcement. Without meta the sender is
// resolved first, in the background.
func (p *PresenceTracker) OnNewMember(ctx context.Context, joined event.MemberJoined) {
	if joined.Meta != nil {
		p.OnCheckIn(joined.Sender, *joined.Meta)
		return
	}
	p.pending.Add(1)
	go func() {
		defer p.pending.Done()
		identity, err := p.resolver.Resolve(context.WithoutCancel(ctx), joined.Sender)
		if err != nil {
			p.log.Debug("Joining member not resolved", "nodeId", joined.Sender, "err", err)
		}
		p.OnCheckIn(joined.Sender, domain.MemberMeta{FirstName: identity.FirstName, LastName: identity.LastName})
	}()
}

// Hydrate inserts the authoritative roster, optimistically active.
// Names are resolved in parallel, a failed lookup leaves the Unknown placeholder.
// Members already observed through a check-in are left untouched.
func (p *PresenceTracker) Hydrate(ctx context.Context, roster []string) {
	identities := make([]domain.NodeIdentity, len(roster))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(hydrateConcurrency)
	for i, nodeID := range roster {
		g.Go(func() error {
			identity, err := p.resolver.Resolve(gctx, nodeID)
			if err != nil {
				p.log.Debug("Roster member not resolved", "nodeId", nodeID, "err", err)
			}
			identities[i] = identity
			return nil
		})
	}
	_ = g.Wait()

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	now := p.now()
	for i, nodeID := range roster {
		if _, exists := p.members[nodeID]; exists {
			continue
		}
		identity := identities[i]
		if identity.FirstName == "" {
			identity.FirstName = domain.UnknownFirstName
		}
		p.members[nodeID] = domain.Member{
			NodeID:     nodeID,
			FirstName:  identity.FirstName,
			LastName:   identity.LastName,
			LastSeenAt: now,
			IsActive:   true,
		}
		p.order = append(p.order, nodeID)
	}
	p.mu.Unlock()
	p.watchers.notify()
}

// Sweep recomputes liveness: a member is active when seen within the active window.
func (p *PresenceTracker) Sweep() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	now := p.now()
	changed := false
	for id, member := range p.members {
		active := now.Sub(member.LastSeenAt) < p.activeWindow
		if active != member.IsActive {
			member.IsActive = active
			p.members[id] = member
			changed = true
		}
	}
	p.mu.Unlock()

	if changed {
		p.watchers.notify()
	}
}

// Snapshot returns the roster in first-observation order.
func (p *PresenceTracker) Snapshot() []domain.Member {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]domain.Member, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, p.members[id])
	}
	return out
}

func (p *PresenceTracker) Member(nodeID string) (domain.Member, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	member, ok := p.members[nodeID]
	return member, ok
}

func (p *PresenceTracker) Subscribe() (<-chan struct{}, func()) {
	return p.watchers.subscribe()
}

// Wait blocks until background resolutions completed.
func (p *PresenceTracker) Wait() {
	p.pending.Wait()
}

func (p *PresenceTracker) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.watchers.closeAll()
}
