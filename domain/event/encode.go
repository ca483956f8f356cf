package event

import (
	"crewcast/domain"
	"encoding/json"
)

// Encoders produce payloads in the shape the networking backend emits:
// a JSON document serialized a second time as a JSON string.

func EncodeChat(sender, content string) ([]byte, error) {
	return encodeTwice(map[string]any{
		"type":    ChatType,
		"sender":  sender,
		"content": content,
	})
}

func EncodeCheckIn(sender string, meta domain.MemberMeta) ([]byte, error) {
	return encodeTwice(map[string]any{
		"type":   CheckInType,
		"sender": sender,
		"meta": rawMeta{
			Email:     meta.Email,
			FirstName: meta.FirstName,
			LastName:  meta.LastName,
		},
	})
}

func EncodeNewMember(sender string) ([]byte, error) {
	return encodeTwice(map[string]any{
		"type":   NewMemberType,
		"sender": sender,
	})
}

// EncodeFile announces a file already recorded by the backend.
func EncodeFile(file domain.SharedFile) ([]byte, error) {
	status := "Shared"
	if file.Status == domain.StatusDownloaded {
		status = string(domain.StatusDownloaded)
	}
	return encodeTwice(map[string]any{
		"type": FileType,
		"file": rawFile{
			ID:       file.ID,
			NodeID:   file.NodeID,
			TopicID:  file.TopicID,
			Hash:     file.Hash,
			Name:     file.Name,
			Format:   file.Format,
			Size:     file.SizeBytes,
			Status:   status,
			SharedAt: file.SharedAt,
		},
	})
}

// EncodeProgress is serialized once, the way progress payloads are emitted.
func EncodeProgress(p DownloadProgress) ([]byte, error) {
	raw := rawProgress{
		FileName:   p.FileName,
		Downloaded: p.Downloaded,
		Total:      p.Total,
		Complete:   p.Complete,
		Error:      p.Error,
	}
	if p.HasPercentage {
		percentage := p.Percentage
		raw.Percentage = &percentage
	}
	return json.Marshal(raw)
}

func encodeTwice(v any) ([]byte, error) {
	inner, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(inner))
}
