package event

import (
	"bytes"
	"crewcast/domain"
	"crewcast/errors"
	"encoding/json"
	"fmt"
)

type rawMeta struct {
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	FirstNameCamel string `json:"firstName"`
	LastName       string `json:"last_name"`
	LastNameCamel  string `json:"lastName"`
}

type rawFile struct {
	ID         int64  `json:"id"`
	NodeID     string `json:"nodeId"`
	TopicID    string `json:"topicId"`
	Hash       string `json:"hash"`
	Name       string `json:"name"`
	FileName   string `json:"file_name"`
	BlobTicket string `json:"blob_ticket"`
	Format     string `json:"format"`
	Size       int64  `json:"size"`
	Status     string `json:"status"`
	SharedAt   int64  `json:"sharedAt"`
}

type rawGossip struct {
	Type       string   `json:"type"`
	Sender     string   `json:"sender"`
	Content    *string  `json:"content"`
	Meta       *rawMeta `json:"meta"`
	FileName   string   `json:"fileName"`
	BlobTicket string   `json:"blobTicket"`
	Hash       string   `json:"hash"`
	Size       int64    `json:"size"`
	Ts         int64    `json:"ts"`
	File       *rawFile `json:"file"`
}

type rawProgress struct {
	FileName   string   `json:"fileName"`
	Percentage *float64 `json:"percentage"`
	Downloaded int64    `json:"downloaded"`
	Total      int64    `json:"total"`
	Complete   bool     `json:"complete"`
	Error      string   `json:"error"`
}

// Parse decodes a payload according to the stream it was delivered on.
func Parse(stream Stream, payload []byte) (Event, error) {
	switch stream {
	case GossipStream:
		return ParseGossip(payload)
	case ProgressStream:
		return ParseProgress(payload)
	default:
		return nil, fmt.Errorf("%w: stream %q", errors.ErrUnknownEventType, stream)
	}
}

// ParseGossip decodes a gossip-message payload.
// Unparsable JSON yields ErrMalformedEvent, an unrecognized type ErrUnknownEventType.
func ParseGossip(payload []byte) (Event, error) {
	var raw rawGossip
	if err := decode(payload, &raw); err != nil {
		return nil, err
	}

	switch Type(raw.Type) {
	case ChatType:
		if raw.Sender == "" || raw.Content == nil {
			return nil, fmt.Errorf("%w: chat without sender or content", errors.ErrMalformedEvent)
		}
		return ChatReceived{Sender: raw.Sender, Content: *raw.Content}, nil
	case CheckInType:
		if raw.Sender == "" || raw.Meta == nil {
			return nil, fmt.Errorf("%w: check_in without sender or meta", errors.ErrMalformedEvent)
		}
		return CheckedIn{Sender: raw.Sender, Meta: raw.Meta.toMeta()}, nil
	case NewMemberType:
		if raw.Sender == "" {
			return nil, fmt.Errorf("%w: new_member without sender", errors.ErrMalformedEvent)
		}
		joined := MemberJoined{Sender: raw.Sender}
		if raw.Meta != nil {
			meta := raw.Meta.toMeta()
			joined.Meta = &meta
		}
		return joined, nil
	case FileType:
		return raw.toFileAnnounced()
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownEventType, raw.Type)
	}
}

// ParseProgress decodes a download-progress payload.
func ParseProgress(payload []byte) (DownloadProgress, error) {
	var raw rawProgress
	if err := decode(payload, &raw); err != nil {
		return DownloadProgress{}, err
	}
	if raw.FileName == "" {
		return DownloadProgress{}, fmt.Errorf("%w: progress without fileName", errors.ErrMalformedEvent)
	}
	progress := DownloadProgress{
		FileName:   raw.FileName,
		Downloaded: raw.Downloaded,
		Total:      raw.Total,
		Complete:   raw.Complete,
		Error:      raw.Error,
	}
	if raw.Percentage != nil {
		progress.Percentage = *raw.Percentage
		progress.HasPercentage = true
	}
	return progress, nil
}

// decode unmarshals payload into v. A payload emitted as a JSON string
// holding the JSON document is unwrapped once.
func decode(payload []byte, v any) error {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return fmt.Errorf("%w: %v", errors.ErrMalformedEvent, err)
		}
		trimmed = []byte(inner)
	}
	if err := json.Unmarshal(trimmed, v); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrMalformedEvent, err)
	}
	return nil
}

func (m rawMeta) toMeta() domain.MemberMeta {
	meta := domain.MemberMeta{Email: m.Email, FirstName: m.FirstName, LastName: m.LastName}
	if meta.FirstName == "" {
		meta.FirstName = m.FirstNameCamel
	}
	if meta.LastName == "" {
		meta.LastName = m.LastNameCamel
	}
	return meta
}

func (r rawGossip) toFileAnnounced() (Event, error) {
	if r.File != nil {
		name := r.File.Name
		if name == "" {
			name = r.File.FileName
		}
		sender := r.Sender
		if sender == "" {
			sender = r.File.NodeID
		}
		if name == "" || sender == "" {
			return nil, fmt.Errorf("%w: file without name or owner", errors.ErrMalformedEvent)
		}
		return FileAnnounced{
			Sender:     sender,
			FileName:   name,
			BlobTicket: r.File.BlobTicket,
			Hash:       r.File.Hash,
			SizeBytes:  r.File.Size,
			SharedAt:   r.File.SharedAt,
			File: &domain.SharedFile{
				ID:        r.File.ID,
				NodeID:    sender,
				TopicID:   r.File.TopicID,
				Hash:      r.File.Hash,
				Name:      name,
				Format:    r.File.Format,
				SizeBytes: r.File.Size,
				Status:    domain.ParseFileStatus(r.File.Status),
				SharedAt:  r.File.SharedAt,
			},
		}, nil
	}
	if r.Sender == "" || r.FileName == "" {
		return nil, fmt.Errorf("%w: file without sender or fileName", errors.ErrMalformedEvent)
	}
	return FileAnnounced{
		Sender:     r.Sender,
		FileName:   r.FileName,
		BlobTicket: r.BlobTicket,
		Hash:       r.Hash,
		SizeBytes:  r.Size,
		SharedAt:   r.Ts,
	}, nil
}
