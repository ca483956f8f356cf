package ui

import (
	"bytes"
	"crewcast/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderer_FilesOffersDownloadOnlyToOthers(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	renderer := NewRenderer(&out, false)
	pct := 60.0

	// Given an own file, a peer file and a peer file being downloaded
	renderer.Files([]domain.SharedFile{
		{ID: 1, NodeID: "local", Name: "mine.txt", SizeBytes: 12, Status: domain.StatusAnnounced},
		{ID: 2, NodeID: "nodeA", Name: "report.pdf", SizeBytes: 2048, Status: domain.StatusAnnounced, SenderDisplayName: "Sarah"},
		{ID: 3, NodeID: "nodeA", Name: "deck.key", SizeBytes: 10, Status: domain.StatusDownloading, ProgressPercent: &pct},
	}, "local")

	// Then only the idle peer file has an action
	printed := out.String()
	req.Equal(1, strings.Count(printed, "/download"))
	req.Contains(printed, "/download 2")
	req.Contains(printed, "you")
	req.Contains(printed, "Sarah")
	req.Contains(printed, "60%")
}

func TestRenderer_EmptyViews(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	renderer := NewRenderer(&out, false)

	renderer.Topics(nil, "local")
	renderer.Members(nil)
	renderer.Files(nil, "local")
	renderer.Hits(nil)

	req.Equal("No topics yet\nNo members yet\nNo shared files\nNo match\n", out.String())
}
