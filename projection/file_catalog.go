package projection

import (
	"context"
	"crewcast/contract"
	"crewcast/domain"
	"crewcast/domain/event"
	"crewcast/errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// FileCatalog lists the files shared in one topic and tracks local downloads.
//
// The backend list is authoritative. Local state only overlays it:
// an optimistic Downloading status and the transient progress, both keyed by
// file id and dropped once the backend reports the file as Downloaded.
// Progress events carry only a file name, entries sharing a name all receive them.
type FileCatalog struct {
	log         *slog.Logger
	backend     contract.IFileBackend
	resolver    contract.IIdentityResolver
	notifier    contract.INotifier
	topicID     string
	localNodeID string
	graceDelay  time.Duration

	mu          sync.RWMutex
	files       []domain.SharedFile
	downloading map[int64]domain.FileStatus // file id -> status before the download
	progress    map[int64]float64
	hydrateSeq  uint64
	appliedSeq  uint64
	timers      map[uint64]*time.Timer // grace timers not fired yet
	timerSeq    uint64
	closed      bool
	pending     sync.WaitGroup
	watchers    observers
}

func NewFileCatalog(
	log *slog.Logger,
	backend contract.IFileBackend,
	resolver contract.IIdentityResolver,
	notifier contract.INotifier,
	topicID, localNodeID string,
	graceDelay time.Duration,
) *FileCatalog {
	return &FileCatalog{
		log:         log,
		backend:     backend,
		resolver:    resolver,
		notifier:    notifier,
		topicID:     topicID,
		localNodeID: localNodeID,
		graceDelay:  graceDelay,
		downloading: make(map[int64]domain.FileStatus),
		timers:      make(map[uint64]*time.Timer),
		progress:    make(map[int64]float64),
	}
}

// Consume reacts to file announcements and download progress.
// Both may call the backend, so they run in the background.
func (c *FileCatalog) Consume(ctx context.Context, e event.Event) error {
	switch evt := e.(type) {
	case event.FileAnnounced:
		c.pending.Add(1)
		go func() {
			defer c.pending.Done()
			c.OnFileAnnounced(context.WithoutCancel(ctx), evt)
		}()
	case event.DownloadProgress:
		c.OnProgress(evt)
	}
	return nil
}

// Hydrate replaces the catalog with the backend list, then resolves every
// sender in parallel. A failed resolution leaves the sender blank.
// When the list cannot be fetched the current catalog is kept.
func (c *FileCatalog) Hydrate(ctx context.Context) error {
	c.mu.Lock()
	c.hydrateSeq++
	seq := c.hydrateSeq
	c.mu.Unlock()

	files, err := c.backend.ListFiles(ctx, c.topicID)
	if err != nil {
		c.log.Warn("Failed to list files", "topicId", c.topicID, "err", err)
		c.notifier.Notify(domain.NewNotification(domain.LevelError, fmt.Sprintf("Could not load shared files: %v", err)))
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(hydrateConcurrency)
	for i := range files {
		g.Go(func() error {
			identity, err := c.resolver.Resolve(gctx, files[i].NodeID)
			if err != nil {
				c.log.Debug("File sender not resolved", "nodeId", files[i].NodeID, "err", err)
				files[i].SenderDisplayName = ""
				return nil
			}
			files[i].SenderDisplayName = identity.FirstName
			return nil
		})
	}
	_ = g.Wait()

	c.mu.Lock()
	if c.closed || seq < c.appliedSeq {
		c.mu.Unlock()
		return nil
	}
	c.appliedSeq = seq
	for i := range files {
		c.overlay(&files[i])
	}
	c.files = files
	c.mu.Unlock()

	c.watchers.notify()
	return nil
}

// overlay applies local download state to a backend entry. Caller holds mu.
func (c *FileCatalog) overlay(file *domain.SharedFile) {
	file.ProgressPercent = nil
	if file.Status == domain.StatusDownloaded {
		delete(c.downloading, file.ID)
		delete(c.progress, file.ID)
		return
	}
	if _, ok := c.downloading[file.ID]; ok {
		file.Status = domain.StatusDownloading
		if pct, ok := c.progress[file.ID]; ok {
			file.ProgressPercent = &pct
		}
	}
}

// OnFileAnnounced re-hydrates the whole catalog and tells the user.
func (c *FileCatalog) OnFileAnnounced(ctx context.Context, announced event.FileAnnounced) {
	if err := c.Hydrate(ctx); err != nil {
		return
	}
	if c.isClosed() {
		return
	}
	c.notifier.Notify(domain.NewNotification(domain.LevelInfo, fmt.Sprintf("New file shared: %s", announced.FileName)))
}

// InitiateDownload marks the entry Downloading, then asks the backend to fetch it.
// On rejection the entry reverts to its prior status and one error notification is emitted.
func (c *FileCatalog) InitiateDownload(ctx context.Context, entry domain.SharedFile) error {
	c.mu.Lock()
	idx := c.indexOf(entry.ID)
	if idx < 0 {
		c.mu.Unlock()
		return errors.ErrFileNotInCatalog
	}
	current := c.files[idx]
	switch {
	case current.NodeID == c.localNodeID:
		c.mu.Unlock()
		return errors.ErrOwnFile
	case current.Status == domain.StatusDownloaded:
		c.mu.Unlock()
		return errors.ErrAlreadyDownloaded
	case current.Status == domain.StatusDownloading:
		c.mu.Unlock()
		return errors.ErrDownloadInProgress
	}
	prior := current.Status
	c.downloading[current.ID] = prior
	c.files[idx].Status = domain.StatusDownloading
	c.mu.Unlock()
	c.watchers.notify()

	if err := c.backend.DownloadFile(ctx, current); err != nil {
		c.log.Error("Download rejected", "fileId", current.ID, "name", current.Name, "err", err)
		c.revert(current.ID)
		c.notifier.Notify(domain.NewNotification(domain.LevelError, "Failed to download file"))
		return err
	}

	c.notifier.Notify(domain.NewNotification(domain.LevelSuccess, fmt.Sprintf("Started downloading: %s", current.Name)))
	return nil
}

// revert restores the status an entry had before its download started.
func (c *FileCatalog) revert(fileID int64) {
	c.mu.Lock()
	prior, ok := c.downloading[fileID]
	if !ok || c.closed {
		c.mu.Unlock()
		return
	}
	delete(c.downloading, fileID)
	delete(c.progress, fileID)
	if idx := c.indexOf(fileID); idx >= 0 {
		c.files[idx].Status = prior
		c.files[idx].ProgressPercent = nil
	}
	c.mu.Unlock()
	c.watchers.notify()
}

// OnProgress updates the transient progress of every entry named like the event.
// A completed download is confirmed by a re-hydrate after the grace delay.
// A failed one reverts like a rejected download.
func (c *FileCatalog) OnProgress(p event.DownloadProgress) {
	if p.Error != "" {
		c.onProgressError(p)
		return
	}
	if !p.HasPercentage {
		c.log.Debug("Ignoring progress notice without percentage", "fileName", p.FileName)
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	matched := 0
	for i := range c.files {
		file := &c.files[i]
		if file.Name != p.FileName || file.Status == domain.StatusDownloaded {
			continue
		}
		matched++
		if _, ok := c.downloading[file.ID]; !ok {
			c.downloading[file.ID] = file.Status
		}
		pct := p.Percentage
		c.progress[file.ID] = pct
		file.Status = domain.StatusDownloading
		file.ProgressPercent = &pct
	}
	if p.Done() && matched > 0 {
		c.timerSeq++
		id := c.timerSeq
		c.timers[id] = time.AfterFunc(c.graceDelay, func() { c.completeDownload(p.FileName, id) })
	}
	c.mu.Unlock()

	if matched == 0 {
		c.log.Debug("Progress for a file not in catalog", "fileName", p.FileName)
		return
	}
	c.watchers.notify()
}

func (c *FileCatalog) onProgressError(p event.DownloadProgress) {
	c.mu.Lock()
	var failed []int64
	for _, file := range c.files {
		if _, ok := c.downloading[file.ID]; ok && file.Name == p.FileName {
			failed = append(failed, file.ID)
		}
	}
	c.mu.Unlock()
	if len(failed) == 0 {
		return
	}

	c.log.Error("Download failed", "fileName", p.FileName, "err", p.Error)
	for _, id := range failed {
		c.revert(id)
	}
	c.notifier.Notify(domain.NewNotification(domain.LevelError, "Failed to download file"))
}

// completeDownload clears the transient state of a finished download and
// reloads the catalog so the status comes from the backend.
func (c *FileCatalog) completeDownload(fileName string, timerID uint64) {
	c.mu.Lock()
	delete(c.timers, timerID)
	if c.closed {
		c.mu.Unlock()
		return
	}
	for i := range c.files {
		file := &c.files[i]
		if file.Name != fileName {
			continue
		}
		delete(c.downloading, file.ID)
		delete(c.progress, file.ID)
		file.ProgressPercent = nil
	}
	c.pending.Add(1)
	c.mu.Unlock()

	defer c.pending.Done()
	_ = c.Hydrate(context.Background())
}

// ShareFile publishes a local file in the topic, then reloads the catalog.
func (c *FileCatalog) ShareFile(ctx context.Context, filePath string) error {
	if err := c.backend.ShareFile(ctx, filePath); err != nil {
		c.log.Error("Share rejected", "path", filePath, "err", err)
		c.notifier.Notify(domain.NewNotification(domain.LevelError, "Failed to share file"))
		return err
	}
	c.notifier.Notify(domain.NewNotification(domain.LevelSuccess, "File shared successfully"))
	return c.Hydrate(ctx)
}

// Snapshot returns a copy of the catalog.
func (c *FileCatalog) Snapshot() []domain.SharedFile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.SharedFile, len(c.files))
	for i, file := range c.files {
		if file.ProgressPercent != nil {
			pct := *file.ProgressPercent
			file.ProgressPercent = &pct
		}
		out[i] = file
	}
	return out
}

// Find returns the entry with the given id.
func (c *FileCatalog) Find(fileID int64) (domain.SharedFile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if idx := c.indexOf(fileID); idx >= 0 {
		return c.files[idx], true
	}
	return domain.SharedFile{}, false
}

func (c *FileCatalog) Subscribe() (<-chan struct{}, func()) {
	return c.watchers.subscribe()
}

// Wait blocks until background reloads completed.
func (c *FileCatalog) Wait() {
	c.pending.Wait()
}

// Close stops pending grace timers. Late callbacks leave the catalog untouched.
func (c *FileCatalog) Close() {
	c.mu.Lock()
	c.closed = true
	for _, timer := range c.timers {
		timer.Stop()
	}
	clear(c.timers)
	c.mu.Unlock()
	c.watchers.closeAll()
}

func (c *FileCatalog) isClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

func (c *FileCatalog) indexOf(fileID int64) int {
	for i, file := range c.files {
		if file.ID == fileID {
			return i
		}
	}
	return -1
}
