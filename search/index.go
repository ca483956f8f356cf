// Package search indexes the transcript of the active topic in memory.
// The index lives as long as the topic session and is never persisted.
package search

import (
	"context"
	"crewcast/domain"
	"log/slog"
	"strings"
	"time"

	"github.com/blugelabs/bluge"
)

const (
	fieldContent = "content"
	fieldSender  = "sender"
	fieldLabel   = "sender_label"
	fieldNodeID  = "node_id"
	fieldLang    = "lang"
	fieldAt      = "at"
)

// Hit is one matching chat message.
type Hit struct {
	ID       string
	Sender   string
	NodeID   string
	Content  string
	Language string
	At       time.Time
	Score    float64
}

type TranscriptIndex struct {
	log    *slog.Logger
	writer *bluge.Writer
}

func NewTranscriptIndex(log *slog.Logger) (*TranscriptIndex, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, err
	}
	return &TranscriptIndex{log: log, writer: writer}, nil
}

// Index adds a received message to the index.
func (t *TranscriptIndex) Index(msg domain.ChatMessage) error {
	doc := bluge.NewDocument(msg.ID.String()).
		AddField(bluge.NewTextField(fieldContent, msg.Content).StoreValue()).
		AddField(bluge.NewKeywordField(fieldSender, strings.ToLower(msg.SenderLabel()))).
		AddField(bluge.NewStoredOnlyField(fieldLabel, []byte(msg.SenderLabel()))).
		AddField(bluge.NewKeywordField(fieldNodeID, msg.SenderNodeID).StoreValue()).
		AddField(bluge.NewKeywordField(fieldLang, msg.Language).StoreValue()).
		AddField(bluge.NewDateTimeField(fieldAt, msg.LocalTimestamp).StoreValue())
	return t.writer.Update(doc.ID(), doc)
}

// Search runs q against the transcript, best matches first.
func (t *TranscriptIndex) Search(ctx context.Context, q Query) ([]Hit, error) {
	reader, err := t.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			t.log.Debug("Failed to close index reader", "err", err)
		}
	}()

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(q.Limit, buildQuery(q)))
	if err != nil {
		return nil, err
	}

	var hits []Hit
	match, err := iterator.Next()
	for err == nil && match != nil {
		hit := Hit{Score: match.Score}
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.ID = string(value)
			case fieldContent:
				hit.Content = string(value)
			case fieldLabel:
				hit.Sender = string(value)
			case fieldNodeID:
				hit.NodeID = string(value)
			case fieldLang:
				hit.Language = string(value)
			case fieldAt:
				if at, err := bluge.DecodeDateTime(value); err == nil {
					hit.At = at
				}
			}
			return true
		})
		if visitErr != nil {
			return nil, visitErr
		}
		hits = append(hits, hit)
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, err
	}
	return hits, nil
}

func buildQuery(q Query) bluge.Query {
	query := bluge.NewBooleanQuery()
	if q.Terms != "" {
		query.AddMust(bluge.NewMatchQuery(q.Terms).SetField(fieldContent))
	} else {
		query.AddMust(bluge.NewMatchAllQuery())
	}
	if q.Language != "" {
		query.AddMust(bluge.NewTermQuery(q.Language).SetField(fieldLang))
	}
	if q.From != "" {
		query.AddMust(bluge.NewTermQuery(q.From).SetField(fieldSender))
	}
	return query
}

func (t *TranscriptIndex) Close() error {
	return t.writer.Close()
}
