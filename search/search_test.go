package search

import (
	"context"
	"crewcast/domain"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Query
	}{
		{
			name:  "terms only",
			input: "/find release notes",
			want:  Query{RawInput: "/find release notes", Terms: "release notes", Limit: defaultLimit},
		},
		{
			name:  "filters and limit",
			input: "/find deploy --lang EN --from Sarah --limit 3",
			want:  Query{RawInput: "/find deploy --lang EN --from Sarah --limit 3", Terms: "deploy", Language: "en", From: "sarah", Limit: 3},
		},
		{
			name:  "unknown flag and bad limit are ignored",
			input: "/find --color red --limit zero",
			want:  Query{RawInput: "/find --color red --limit zero", Limit: defaultLimit},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ParseQuery(tt.input))
		})
	}
	require.True(t, ParseQuery("/find").IsEmpty())
}

func TestTranscriptIndex_Search(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	index, err := NewTranscriptIndex(logs.GetLoggerFromLevel(slog.LevelDebug))
	req.NoError(err)
	defer func() { req.NoError(index.Close()) }()

	// Given a small transcript
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	messages := []domain.ChatMessage{
		{ID: uuid.New(), Content: "the release is ready for review", SenderNodeID: "n1", ResolvedFirstName: "Sarah", Language: "en", LocalTimestamp: at},
		{ID: uuid.New(), Content: "la release est prête", SenderNodeID: "n2", ResolvedFirstName: "Hugo", Language: "fr", LocalTimestamp: at.Add(time.Minute)},
		{ID: uuid.New(), Content: "lunch anyone?", SenderNodeID: "n1", ResolvedFirstName: "Sarah", Language: "en", LocalTimestamp: at.Add(2 * time.Minute)},
	}
	for _, msg := range messages {
		req.NoError(index.Index(msg))
	}

	// When searching by term
	hits, err := index.Search(ctx, ParseQuery("/find release"))
	req.NoError(err)
	req.Len(hits, 2)

	// When narrowing by language
	hits, err = index.Search(ctx, ParseQuery("/find release --lang fr"))
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal("Hugo", hits[0].Sender)
	req.Equal("la release est prête", hits[0].Content)
	req.Equal(at.Add(time.Minute), hits[0].At.UTC())

	// When filtering by sender only
	hits, err = index.Search(ctx, ParseQuery("/find --from sarah"))
	req.NoError(err)
	req.Len(hits, 2)
	for _, hit := range hits {
		req.Equal("n1", hit.NodeID)
	}
}
