// Package event defines what the networking backend pushes to the client.
// Payloads are JSON, delivered unordered and at least once.
package event

import "crewcast/domain"

// Stream names the backend event channel a payload was delivered on.
type Stream string

const (
	GossipStream   Stream = "gossip-message"
	ProgressStream Stream = "download-progress"
)

type Type string

const (
	ChatType      Type = "chat"
	CheckInType   Type = "check_in"
	FileType      Type = "file"
	NewMemberType Type = "new_member"
	ProgressType  Type = "download_progress"
)

// Event is a decoded payload of either stream.
type Event interface {
	EventType() Type
}

type ChatReceived struct {
	Sender  string
	Content string
}

func (ChatReceived) EventType() Type { return ChatType }

// CheckedIn is the periodic presence broadcast of a topic member.
type CheckedIn struct {
	Sender string
	Meta   domain.MemberMeta
}

func (CheckedIn) EventType() Type { return CheckInType }

// FileAnnounced tells that Sender shared a file in the topic.
// File is set when the backend already recorded the entry.
type FileAnnounced struct {
	Sender     string
	FileName   string
	BlobTicket string
	Hash       string
	SizeBytes  int64
	SharedAt   int64
	File       *domain.SharedFile
}

func (FileAnnounced) EventType() Type { return FileType }

type MemberJoined struct {
	Sender string
	Meta   *domain.MemberMeta
}

func (MemberJoined) EventType() Type { return NewMemberType }

// DownloadProgress reports a running download. It only carries the file name.
// HasPercentage is false for intermediate notices (part complete, provider failed).
type DownloadProgress struct {
	FileName      string
	Percentage    float64
	HasPercentage bool
	Downloaded    int64
	Total         int64
	Complete      bool
	Error         string
}

func (DownloadProgress) EventType() Type { return ProgressType }

// Done reports whether the download reached its end.
func (p DownloadProgress) Done() bool {
	return p.HasPercentage && p.Percentage >= 100
}
