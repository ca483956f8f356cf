package domain

import (
	"fmt"
)

type FileStatus string

const (
	StatusAnnounced   FileStatus = "Announced"
	StatusDownloading FileStatus = "Downloading"
	StatusDownloaded  FileStatus = "Downloaded"
)

// ParseFileStatus maps backend statuses onto the local lifecycle.
// The backend calls an announced file "Shared".
func ParseFileStatus(s string) FileStatus {
	switch s {
	case string(StatusDownloaded):
		return StatusDownloaded
	case string(StatusDownloading):
		return StatusDownloading
	default:
		return StatusAnnounced
	}
}

// SharedFile is one entry of a topic's file catalog.
type SharedFile struct {
	ID                int64      `json:"id"`
	NodeID            string     `json:"nodeId"`
	TopicID           string     `json:"topicId"`
	Hash              string     `json:"hash"`
	Name              string     `json:"name"`
	Format            string     `json:"format"`
	SizeBytes         int64      `json:"size"`
	Status            FileStatus `json:"status"`
	SharedAt          int64      `json:"sharedAt"`
	ProgressPercent   *float64   `json:"progressPercent,omitempty"`
	SenderDisplayName string     `json:"sender,omitempty"`
}

// CanDownload reports whether the download action is offered to localNodeID.
// Own entries and finished or running downloads never are.
func (f SharedFile) CanDownload(localNodeID string) bool {
	if f.NodeID == localNodeID {
		return false
	}
	return f.Status == StatusAnnounced
}

// FormatSize renders a byte count the way the files panel does.
func FormatSize(bytes int64) string {
	if bytes < KB {
		return fmt.Sprintf("%d B", bytes)
	}
	kb := float64(bytes) / KB
	if kb < KB {
		return fmt.Sprintf("%.1f KB", kb)
	}
	mb := kb / KB
	if mb < KB {
		return fmt.Sprintf("%.1f MB", mb)
	}
	return fmt.Sprintf("%.1f GB", mb/KB)
}

const KB = 1024
