package moderation

import (
	"crewcast/errors"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

// Dictionary words are chosen not to collide with common substrings ("he" in "the").
func TestModerator_Censor(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	mod, err := NewModerator([]string{"spoiler", "phishing", "scam"}, replacementChar, log)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Single word keeps spacing",
			input:    "no spoiler please",
			expected: "no ******* please",
			words:    []string{"spoiler"},
		},
		{
			name:     "Repeated word",
			input:    "scam scam",
			expected: "**** ****",
			words:    []string{"scam", "scam"},
		},
		{
			name:     "Leet speak with inner punctuation",
			input:    "a 5.c.4.m link",
			expected: "a ******* link",
			words:    []string{"scam"},
		},
		{
			name:     "Uppercase and separators",
			input:    "P-H-I-S-H-I-N-G or SPOILER",
			expected: "*************** or *******",
			words:    []string{"phishing", "spoiler"},
		},
		{
			name:     "Accented neighbours are untouched",
			input:    "un été sans spoiler",
			expected: "un été sans *******",
			words:    []string{"spoiler"},
		},
		{
			name:     "Trailing punctuation stays",
			input:    "what a scam!",
			expected: "what a ****!",
			words:    []string{"scam"},
		},
		{
			name:     "Nothing to mask",
			input:    "see you at the standup",
			expected: "see you at the standup",
			words:    nil,
		},
		{
			name:     "Empty line",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, words := mod.Censor(tt.input)
			req.Equal(tt.expected, content)
			req.Equal(tt.words, words)
		})
	}
}

func TestModerator_NoiseOnlyWordsAreSkipped(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given a dictionary containing punctuation-only entries
	mod, err := NewModerator([]string{"...", ",,,", "", "scam"}, replacementChar, log)
	req.NoError(err)

	content, words := mod.Censor("not a scam")
	req.Equal("not a ****", content)
	req.Equal([]string{"scam"}, words)

	// Then punctuation in chat is left alone
	content, words = mod.Censor("wait ...")
	req.Equal("wait ...", content)
	req.Nil(words)
}

func TestModerator_EmptyDictionary(t *testing.T) {
	req := require.New(t)
	_, err := NewModerator([]string{"", "???"}, replacementChar, logs.GetLoggerFromLevel(slog.LevelDebug))
	req.ErrorIs(err, errors.ErrEmptyWords)
}
