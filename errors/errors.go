package errors

import "fmt"

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrNotFound           = fmt.Errorf("not found")
	ErrAlreadyJoined      = fmt.Errorf("already joined a topic")
	ErrNoActiveTopic      = fmt.Errorf("no active topic")
	ErrTopicNotFound      = fmt.Errorf("topic not found")
	ErrInvalidTicket      = fmt.Errorf("invalid ticket format, expected 'name:ticket'")
	ErrEmptyTopicName     = fmt.Errorf("topic name is empty")
	ErrUnknownEventType   = fmt.Errorf("unknown event type")
	ErrMalformedEvent     = fmt.Errorf("malformed event")
	ErrOwnFile            = fmt.Errorf("file is owned by the local node")
	ErrAlreadyDownloaded  = fmt.Errorf("file already downloaded")
	ErrDownloadInProgress = fmt.Errorf("download already in progress")
	ErrFileNotInCatalog   = fmt.Errorf("file not in catalog")
	ErrEmptyMessage       = fmt.Errorf("message is empty")
	ErrStreamClosed       = fmt.Errorf("event stream closed")
	ErrNodeNotInitialized = fmt.Errorf("no node initialized")
	ErrEmptyWords         = fmt.Errorf("no words have been found")
	ErrInvalidUser        = fmt.Errorf("invalid user information")
)
