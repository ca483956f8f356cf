package wire

import "crewcast/domain"

type Empty struct{}

type NameRequest struct {
	Name string `json:"name"`
}

type KeyRequest struct {
	Key string `json:"key"`
}

type RowRequest struct {
	ID int64 `json:"id"`
}

type TopicRequest struct {
	TopicID string `json:"topicId"`
}

type ContentRequest struct {
	Content string `json:"content"`
}

type PathRequest struct {
	FilePath string `json:"filePath"`
}

type FileRequest struct {
	File domain.SharedFile `json:"file"`
}

type NodeRequest struct {
	NodeID string `json:"nodeId"`
}

type UserRequest struct {
	User domain.UserInfo `json:"user"`
}

type SubscribeRequest struct {
	Stream string `json:"stream"`
}

type TopicsResponse struct {
	Topics []domain.Topic `json:"topics"`
}

type TopicResponse struct {
	Topic domain.Topic `json:"topic"`
}

type KeyResponse struct {
	Key string `json:"key"`
}

type FilesResponse struct {
	Files []domain.SharedFile `json:"files"`
}

type UserResponse struct {
	User domain.UserInfo `json:"user"`
}

type NodeResponse struct {
	Node domain.Node `json:"node"`
}

// Payload is one raw event of a subscribed stream.
type Payload struct {
	Data []byte `json:"data"`
}
