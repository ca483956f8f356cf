// Package domain contains core concepts of the topic client.
// This file defines chat messages as they are rendered locally.
// Messages are immutable once appended.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage represents one received chat line.
// LocalTimestamp is assigned at local receipt, the sender's clock is never trusted.
type ChatMessage struct {
	ID                uuid.UUID
	Content           string
	SenderNodeID      string
	ResolvedFirstName string
	Language          string
	LocalTimestamp    time.Time
}

// SenderLabel is the name to render next to the message.
func (m ChatMessage) SenderLabel() string {
	if m.ResolvedFirstName != "" {
		return m.ResolvedFirstName
	}
	return UnknownFirstName
}
