package projection

import (
	"context"
	"crewcast/domain"
	"crewcast/domain/event"
	"crewcast/errors"
	"crewcast/mocks"
	goerrors "errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	topicID     = "topic-1"
	localNodeID = "local"
	graceDelay  = 20 * time.Millisecond
)

func newTestCatalog(t *testing.T, backend *mocks.MockIFileBackend, notifier *recordingNotifier) *FileCatalog {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockIIdentityResolver(ctrl)
	resolver.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, nodeID string) (domain.NodeIdentity, error) {
			return domain.NodeIdentity{NodeID: nodeID, FirstName: "Peer"}, nil
		}).
		AnyTimes()
	return NewFileCatalog(logs.GetLoggerFromLevel(slog.LevelDebug), backend, resolver, notifier, topicID, localNodeID, graceDelay)
}

func TestFileCatalog_RejectedDownloadReverts(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockIFileBackend(ctrl)
	notifier := &recordingNotifier{}

	entry := domain.SharedFile{ID: 7, NodeID: "peer", TopicID: topicID, Name: "report.pdf", Status: domain.StatusAnnounced}
	backend.EXPECT().ListFiles(gomock.Any(), topicID).Return([]domain.SharedFile{entry}, nil)
	backend.EXPECT().DownloadFile(gomock.Any(), gomock.Any()).Return(goerrors.New("provider unreachable")).Times(1)

	catalog := newTestCatalog(t, backend, notifier)
	req.NoError(catalog.Hydrate(context.Background()))

	// When the backend rejects the download
	err := catalog.InitiateDownload(context.Background(), entry)

	// Then the entry reverts and exactly one error is surfaced
	req.Error(err)
	reverted, ok := catalog.Find(7)
	req.True(ok)
	req.Equal(domain.StatusAnnounced, reverted.Status)
	req.Nil(reverted.ProgressPercent)
	req.Len(notifier.all(), 1)
	req.Equal(domain.LevelError, notifier.all()[0].Level)
	req.Equal("Failed to download file", notifier.all()[0].Message)
}

func TestFileCatalog_DownloadIsOptimistic(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockIFileBackend(ctrl)
	notifier := &recordingNotifier{}

	entry := domain.SharedFile{ID: 3, NodeID: "peer", Name: "song.mp3", Status: domain.StatusAnnounced}
	backend.EXPECT().ListFiles(gomock.Any(), topicID).Return([]domain.SharedFile{entry}, nil)

	catalog := newTestCatalog(t, backend, notifier)
	req.NoError(catalog.Hydrate(context.Background()))

	// Then the entry is Downloading while the command is in flight
	backend.EXPECT().
		DownloadFile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, file domain.SharedFile) error {
			current, _ := catalog.Find(3)
			req.Equal(domain.StatusDownloading, current.Status)
			return nil
		})

	req.NoError(catalog.InitiateDownload(context.Background(), entry))

	current, _ := catalog.Find(3)
	req.Equal(domain.StatusDownloading, current.Status)
	req.Equal("Started downloading: song.mp3", notifier.withLevel(domain.LevelSuccess)[0].Message)

	// And a second attempt is refused locally
	req.ErrorIs(catalog.InitiateDownload(context.Background(), entry), errors.ErrDownloadInProgress)
}

func TestFileCatalog_IneligibleDownloads(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockIFileBackend(ctrl)

	own := domain.SharedFile{ID: 1, NodeID: localNodeID, Name: "mine.txt", Status: domain.StatusAnnounced}
	done := domain.SharedFile{ID: 2, NodeID: "peer", Name: "done.txt", Status: domain.StatusDownloaded}
	backend.EXPECT().ListFiles(gomock.Any(), topicID).Return([]domain.SharedFile{own, done}, nil)
	backend.EXPECT().DownloadFile(gomock.Any(), gomock.Any()).Times(0)

	catalog := newTestCatalog(t, backend, &recordingNotifier{})
	req.NoError(catalog.Hydrate(context.Background()))

	req.False(own.CanDownload(localNodeID))
	req.ErrorIs(catalog.InitiateDownload(context.Background(), own), errors.ErrOwnFile)
	req.ErrorIs(catalog.InitiateDownload(context.Background(), done), errors.ErrAlreadyDownloaded)
	req.ErrorIs(catalog.InitiateDownload(context.Background(), domain.SharedFile{ID: 99}), errors.ErrFileNotInCatalog)
}

func TestFileCatalog_ProgressThenCompletion(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockIFileBackend(ctrl)

	var mu sync.Mutex
	status := "Shared"
	backend.EXPECT().
		ListFiles(gomock.Any(), topicID).
		DoAndReturn(func(ctx context.Context, topicID string) ([]domain.SharedFile, error) {
			mu.Lock()
			defer mu.Unlock()
			return []domain.SharedFile{{ID: 5, NodeID: "peer", Name: "report.pdf", Status: domain.ParseFileStatus(status)}}, nil
		}).
		AnyTimes()
	backend.EXPECT().DownloadFile(gomock.Any(), gomock.Any()).Return(nil)

	catalog := newTestCatalog(t, backend, &recordingNotifier{})
	req.NoError(catalog.Hydrate(context.Background()))
	entry, _ := catalog.Find(5)
	req.NoError(catalog.InitiateDownload(context.Background(), entry))

	// When progress 30 then 60 arrives, the transient progress follows
	catalog.OnProgress(event.DownloadProgress{FileName: "report.pdf", Percentage: 30, HasPercentage: true})
	current, _ := catalog.Find(5)
	req.Equal(30.0, *current.ProgressPercent)

	catalog.OnProgress(event.DownloadProgress{FileName: "report.pdf", Percentage: 60, HasPercentage: true})
	current, _ = catalog.Find(5)
	req.Equal(60.0, *current.ProgressPercent)
	req.Equal(domain.StatusDownloading, current.Status)

	// When the download completes on the backend and 100 arrives
	mu.Lock()
	status = "Downloaded"
	mu.Unlock()
	catalog.OnProgress(event.DownloadProgress{FileName: "report.pdf", Percentage: 100, HasPercentage: true, Complete: true})

	// Then after the grace delay the entry is Downloaded without progress
	req.Eventually(func() bool {
		current, _ := catalog.Find(5)
		return current.Status == domain.StatusDownloaded && current.ProgressPercent == nil
	}, time.Second, 5*time.Millisecond)
	catalog.Wait()

	// And the fired grace timer is forgotten
	req.Equal(0, catalog.scheduledReloads())
}

func TestFileCatalog_CompletionOfUnknownFileSchedulesNothing(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockIFileBackend(ctrl)

	// Given a catalog loaded once
	backend.EXPECT().ListFiles(gomock.Any(), topicID).Return([]domain.SharedFile{{ID: 1, NodeID: "peer", Name: "a.txt"}}, nil).Times(1)
	catalog := newTestCatalog(t, backend, &recordingNotifier{})
	req.NoError(catalog.Hydrate(context.Background()))

	// When a 100% progress arrives for a file it does not hold
	catalog.OnProgress(event.DownloadProgress{FileName: "other.bin", Percentage: 100, HasPercentage: true, Complete: true})

	// Then no grace reload is scheduled and the backend is not listed again
	req.Equal(0, catalog.scheduledReloads())
	time.Sleep(3 * graceDelay)
	catalog.Wait()
	current, ok := catalog.Find(1)
	req.True(ok)
	req.Nil(current.ProgressPercent)
}

func TestFileCatalog_ProgressErrorReverts(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockIFileBackend(ctrl)
	notifier := &recordingNotifier{}

	entry := domain.SharedFile{ID: 4, NodeID: "peer", Name: "clip.mov", Status: domain.StatusAnnounced}
	backend.EXPECT().ListFiles(gomock.Any(), topicID).Return([]domain.SharedFile{entry}, nil)
	backend.EXPECT().DownloadFile(gomock.Any(), gomock.Any()).Return(nil)

	catalog := newTestCatalog(t, backend, notifier)
	req.NoError(catalog.Hydrate(context.Background()))
	req.NoError(catalog.InitiateDownload(context.Background(), entry))
	catalog.OnProgress(event.DownloadProgress{FileName: "clip.mov", Percentage: 10, HasPercentage: true})

	// When the progress stream reports a failure
	catalog.OnProgress(event.DownloadProgress{FileName: "clip.mov", Error: "all providers failed"})

	current, _ := catalog.Find(4)
	req.Equal(domain.StatusAnnounced, current.Status)
	req.Nil(current.ProgressPercent)
	req.Len(notifier.withLevel(domain.LevelError), 1)

	// And a repeated failure notice for an idle entry is ignored
	catalog.OnProgress(event.DownloadProgress{FileName: "clip.mov", Error: "all providers failed"})
	req.Len(notifier.withLevel(domain.LevelError), 1)
}

func TestFileCatalog_HydrateLeavesUnresolvedSenderBlank(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockIFileBackend(ctrl)
	resolver := mocks.NewMockIIdentityResolver(ctrl)

	backend.EXPECT().ListFiles(gomock.Any(), topicID).Return([]domain.SharedFile{
		{ID: 1, NodeID: "known", Name: "a.txt"},
		{ID: 2, NodeID: "stranger", Name: "b.txt"},
	}, nil)
	resolver.EXPECT().Resolve(gomock.Any(), "known").Return(domain.NodeIdentity{NodeID: "known", FirstName: "Kim"}, nil)
	resolver.EXPECT().Resolve(gomock.Any(), "stranger").Return(domain.UnknownIdentity("stranger"), errors.ErrNotFound)

	catalog := NewFileCatalog(logs.GetLoggerFromLevel(slog.LevelDebug), backend, resolver, &recordingNotifier{}, topicID, localNodeID, graceDelay)
	req.NoError(catalog.Hydrate(context.Background()))

	files := catalog.Snapshot()
	req.Len(files, 2)
	req.Equal("Kim", files[0].SenderDisplayName)
	req.Equal("", files[1].SenderDisplayName)
}

func TestFileCatalog_HydrateFailureKeepsCatalog(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockIFileBackend(ctrl)
	notifier := &recordingNotifier{}

	gomock.InOrder(
		backend.EXPECT().ListFiles(gomock.Any(), topicID).Return([]domain.SharedFile{{ID: 1, NodeID: "peer", Name: "a.txt"}}, nil),
		backend.EXPECT().ListFiles(gomock.Any(), topicID).Return(nil, goerrors.New("backend down")),
	)

	catalog := newTestCatalog(t, backend, notifier)
	req.NoError(catalog.Hydrate(context.Background()))
	req.Error(catalog.Hydrate(context.Background()))

	req.Len(catalog.Snapshot(), 1)
	req.Len(notifier.withLevel(domain.LevelError), 1)
}

func TestFileCatalog_AnnouncementRehydrates(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockIFileBackend(ctrl)
	notifier := &recordingNotifier{}

	gomock.InOrder(
		backend.EXPECT().ListFiles(gomock.Any(), topicID).Return(nil, nil),
		backend.EXPECT().ListFiles(gomock.Any(), topicID).Return([]domain.SharedFile{{ID: 9, NodeID: "peer", Name: "new.png"}}, nil),
	)

	catalog := newTestCatalog(t, backend, notifier)
	req.NoError(catalog.Hydrate(context.Background()))

	req.NoError(catalog.Consume(context.Background(), event.FileAnnounced{Sender: "peer", FileName: "new.png"}))
	catalog.Wait()

	req.Len(catalog.Snapshot(), 1)
	req.Equal("New file shared: new.png", notifier.withLevel(domain.LevelInfo)[0].Message)
}

func TestFileCatalog_CloseCancelsGraceReload(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockIFileBackend(ctrl)

	backend.EXPECT().ListFiles(gomock.Any(), topicID).Return([]domain.SharedFile{{ID: 1, NodeID: "peer", Name: "a.txt"}}, nil).Times(1)

	catalog := newTestCatalog(t, backend, &recordingNotifier{})
	req.NoError(catalog.Hydrate(context.Background()))

	catalog.OnProgress(event.DownloadProgress{FileName: "a.txt", Percentage: 100, HasPercentage: true})
	catalog.Close()
	time.Sleep(3 * graceDelay)
	catalog.Wait()
}
