package identity

import (
	"crewcast/domain"
	"crewcast/errors"
	"crewcast/mocks"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCache_PutIfAbsentKeepsFirstValue(t *testing.T) {
	req := require.New(t)
	cache := NewCache(logs.GetLoggerFromLevel(slog.LevelDebug), nil)

	first := cache.PutIfAbsent(domain.NodeIdentity{NodeID: "n1", FirstName: "Ann"})
	second := cache.PutIfAbsent(domain.NodeIdentity{NodeID: "n1", FirstName: "Other"})

	req.Equal("Ann", first.FirstName)
	req.Equal("Ann", second.FirstName)
	req.Equal(1, cache.Len())
}

func TestCache_FallsBackToStore(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIIdentityStore(ctrl)

	// Given a persisted identity and an unknown one
	store.EXPECT().Get("n1").Return(domain.NodeIdentity{NodeID: "n1", FirstName: "Ann"}, nil).Times(1)
	store.EXPECT().Get("n2").Return(domain.NodeIdentity{}, errors.ErrNotFound).Times(1)

	cache := NewCache(logs.GetLoggerFromLevel(slog.LevelDebug), store)

	// When reading twice, the store is only hit once
	identity, ok := cache.Get("n1")
	req.True(ok)
	req.Equal("Ann", identity.FirstName)
	_, ok = cache.Get("n1")
	req.True(ok)

	_, ok = cache.Get("n2")
	req.False(ok)
}

func TestCache_PersistsNewEntries(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIIdentityStore(ctrl)

	identity := domain.NodeIdentity{NodeID: "n3", FirstName: "Zoe"}
	store.EXPECT().Put(identity).Return(nil).Times(1)

	cache := NewCache(logs.GetLoggerFromLevel(slog.LevelDebug), store)
	cache.PutIfAbsent(identity)
	cache.PutIfAbsent(identity)

	req.Equal(1, cache.Len())
}
