package identity

import (
	"context"
	"crewcast/domain"
	"crewcast/errors"
	"crewcast/mocks"
	"crewcast/observability"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResolver_CoalescesConcurrentLookups(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	directory := mocks.NewMockIDirectory(ctrl)
	monitoring := observability.NewMonitoring()

	// Given a directory answering slowly, exactly once
	release := make(chan struct{})
	directory.EXPECT().
		GetUserByNodeID(gomock.Any(), "nodeA").
		DoAndReturn(func(ctx context.Context, nodeID string) (domain.UserInfo, error) {
			<-release
			return domain.UserInfo{FirstName: "Sarah", LastName: "Connor"}, nil
		}).
		Times(1)

	resolver := NewResolver(log, directory, NewCache(log, nil), time.Second, monitoring)

	// When ten callers resolve the same node concurrently
	const callers = 10
	results := make([]domain.NodeIdentity, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = resolver.Resolve(context.Background(), "nodeA")
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	// Then all of them observe the same identity
	for i, identity := range results {
		req.NoError(errs[i])
		req.Equal(domain.NodeIdentity{NodeID: "nodeA", FirstName: "Sarah", LastName: "Connor"}, identity)
	}
	req.Equal(uint64(1), monitoring.Snapshot().LookupsIssued)
}

func TestResolver_CacheHitSkipsDirectory(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	directory := mocks.NewMockIDirectory(ctrl)

	directory.EXPECT().
		GetUserByNodeID(gomock.Any(), "nodeB").
		Return(domain.UserInfo{FirstName: "Bob"}, nil).
		Times(1)

	resolver := NewResolver(log, directory, NewCache(log, nil), time.Second, nil)

	first, err := resolver.Resolve(context.Background(), "nodeB")
	req.NoError(err)
	second, err := resolver.Resolve(context.Background(), "nodeB")
	req.NoError(err)

	req.Equal(first, second)
	req.Equal("Bob", second.FirstName)
}

func TestResolver_FailureIsNotCached(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	directory := mocks.NewMockIDirectory(ctrl)
	cache := NewCache(log, nil)

	// Given a directory lagging behind the network, then catching up
	gomock.InOrder(
		directory.EXPECT().
			GetUserByNodeID(gomock.Any(), "nodeC").
			Return(domain.UserInfo{}, errors.ErrNotFound),
		directory.EXPECT().
			GetUserByNodeID(gomock.Any(), "nodeC").
			Return(domain.UserInfo{FirstName: "Carol"}, nil),
	)

	resolver := NewResolver(log, directory, cache, time.Second, nil)

	// When the first lookup fails
	identity, err := resolver.Resolve(context.Background(), "nodeC")

	// Then the placeholder is returned and nothing is cached
	req.ErrorIs(err, errors.ErrNotFound)
	req.Equal(domain.UnknownFirstName, identity.FirstName)
	req.Equal(0, cache.Len())

	// When resolving again, the lookup is retried and succeeds
	identity, err = resolver.Resolve(context.Background(), "nodeC")
	req.NoError(err)
	req.Equal("Carol", identity.FirstName)
	req.Equal(1, cache.Len())
}

func TestResolver_CallerCancellationDoesNotAbortLookup(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	directory := mocks.NewMockIDirectory(ctrl)
	cache := NewCache(log, nil)

	directory.EXPECT().
		GetUserByNodeID(gomock.Any(), "nodeD").
		DoAndReturn(func(ctx context.Context, nodeID string) (domain.UserInfo, error) {
			time.Sleep(100 * time.Millisecond)
			return domain.UserInfo{FirstName: "Dan"}, ctx.Err()
		}).
		Times(1)

	resolver := NewResolver(log, directory, cache, time.Second, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	identity, err := resolver.Resolve(ctx, "nodeD")
	req.ErrorIs(err, context.DeadlineExceeded)
	req.Equal(domain.UnknownFirstName, identity.FirstName)

	// Then the shared lookup still completes and fills the cache
	req.Eventually(func() bool {
		cached, ok := cache.Get("nodeD")
		return ok && cached.FirstName == "Dan"
	}, time.Second, 10*time.Millisecond)
}
