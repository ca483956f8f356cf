package moderation

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestLoadWordFiles(t *testing.T) {
	req := require.New(t)

	// Given two dictionaries with a shared word and Windows line endings
	fsys := fstest.MapFS{
		"words/en.txt":    {Data: []byte("scam\r\nspoiler\r\n\r\n")},
		"words/fr.txt":    {Data: []byte("arnaque\nscam\n")},
		"words/README.md": {Data: []byte("ignored")},
	}

	list, err := LoadWordFiles(fsys, "words")
	req.NoError(err)

	req.Equal([]string{"arnaque", "scam", "spoiler"}, list.Words)
	req.ElementsMatch([]string{"en", "fr"}, list.Languages)
}

func TestLoadWordFiles_MissingDir(t *testing.T) {
	_, err := LoadWordFiles(fstest.MapFS{}, "nowhere")
	require.Error(t, err)
}

func TestMerge(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, Merge([]string{" b", "a", ""}, []string{"a "}))
}
