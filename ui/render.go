// Package ui renders topic snapshots in a terminal and reads user commands.
package ui

import (
	"crewcast/domain"
	"crewcast/observability"
	"crewcast/search"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"
)

// Renderer writes snapshots to out. It is a pure consumer: it never mutates state.
type Renderer struct {
	out    io.Writer
	colors bool
}

func NewRenderer(out io.Writer, colors bool) *Renderer {
	return &Renderer{out: out, colors: colors}
}

// IsTerminal reports whether f is attached to a terminal, so colors can be used.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func (r *Renderer) paint(style color.Color, s string) string {
	if !r.colors {
		return s
	}
	return style.Sprint(s)
}

func (r *Renderer) Notification(n domain.Notification) {
	var style color.Color
	switch n.Level {
	case domain.LevelSuccess:
		style = color.Green
	case domain.LevelWarn:
		style = color.Yellow
	case domain.LevelError:
		style = color.Red
	default:
		style = color.Cyan
	}
	fmt.Fprintf(r.out, "%s %s\n", r.paint(style, "["+strings.ToUpper(string(n.Level))+"]"), n.Message)
}

func (r *Renderer) Message(msg domain.ChatMessage) {
	line := fmt.Sprintf("%s %s: %s",
		r.paint(color.Gray, msg.LocalTimestamp.Format(time.TimeOnly)),
		r.paint(color.Magenta, msg.SenderLabel()),
		msg.Content)
	if msg.Language != "" {
		line += r.paint(color.Gray, " ("+msg.Language+")")
	}
	fmt.Fprintln(r.out, line)
}

func (r *Renderer) Info(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *Renderer) table(header []string, rows [][]string) {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.AppendBulk(rows)
	table.Render()
}

func (r *Renderer) Topics(topics []domain.Topic, localNodeID string) {
	if len(topics) == 0 {
		r.Info("No topics yet")
		return
	}
	rows := make([][]string, 0, len(topics))
	for _, t := range topics {
		owner := t.OwnerNodeID
		if owner == localNodeID {
			owner = "you"
		}
		rows = append(rows, []string{strconv.FormatInt(t.ID, 10), t.Name, owner, strconv.Itoa(len(t.Roster()))})
	}
	r.table([]string{"Id", "Name", "Owner", "Members"}, rows)
}

func (r *Renderer) Members(members []domain.Member) {
	if len(members) == 0 {
		r.Info("No members yet")
		return
	}
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		status := r.paint(color.Gray, m.StatusLabel())
		if m.IsActive {
			status = r.paint(color.Green, m.StatusLabel())
		}
		lastSeen := "-"
		if !m.LastSeenAt.IsZero() {
			lastSeen = m.LastSeenAt.Format(time.TimeOnly)
		}
		rows = append(rows, []string{m.Initial(), m.DisplayName(), status, lastSeen})
	}
	r.table([]string{"", "Name", "Status", "Last seen"}, rows)
}

func (r *Renderer) Files(files []domain.SharedFile, localNodeID string) {
	if len(files) == 0 {
		r.Info("No shared files")
		return
	}
	rows := make([][]string, 0, len(files))
	for _, f := range files {
		sender := f.SenderDisplayName
		if f.NodeID == localNodeID {
			sender = "you"
		}
		status := string(f.Status)
		if f.ProgressPercent != nil {
			status = fmt.Sprintf("%s %.0f%%", status, *f.ProgressPercent)
		}
		action := ""
		if f.CanDownload(localNodeID) {
			action = fmt.Sprintf("/download %d", f.ID)
		}
		rows = append(rows, []string{strconv.FormatInt(f.ID, 10), f.Name, sender, domain.FormatSize(f.SizeBytes), status, action})
	}
	r.table([]string{"Id", "Name", "Sender", "Size", "Status", ""}, rows)
}

// Identities lists the cached node identities.
func (r *Renderer) Identities(identities []domain.NodeIdentity) {
	rows := make([][]string, 0, len(identities))
	for _, identity := range identities {
		rows = append(rows, []string{identity.NodeID, identity.FirstName, identity.LastName})
	}
	r.table([]string{"Node", "First name", "Last name"}, rows)
}

func (r *Renderer) Hits(hits []search.Hit) {
	if len(hits) == 0 {
		r.Info("No match")
		return
	}
	for _, h := range hits {
		fmt.Fprintf(r.out, "%s %s: %s\n",
			r.paint(color.Gray, h.At.Format(time.TimeOnly)),
			r.paint(color.Magenta, h.Sender),
			h.Content)
	}
}

func (r *Renderer) Stats(stats observability.Stats) {
	rows := [][]string{
		{"events received", strconv.FormatUint(stats.EventsReceived, 10)},
		{"events dropped", strconv.FormatUint(stats.EventsDropped, 10)},
		{"identity lookups", strconv.FormatUint(stats.LookupsIssued, 10)},
		{"lookup failures", strconv.FormatUint(stats.LookupFailures, 10)},
		{"notifications", strconv.FormatUint(stats.Notifications, 10)},
		{"worker restarts", strconv.FormatUint(stats.WorkerRestarts, 10)},
		{"uptime", stats.Uptime.Truncate(time.Second).String()},
	}
	if stats.ProcessStatsErr == nil {
		rows = append(rows,
			[]string{"memory (rss)", domain.FormatSize(int64(stats.RSSBytes))},
			[]string{"cpu", fmt.Sprintf("%.1f%%", stats.CPUPercent)})
	}
	r.table([]string{"Metric", "Value"}, rows)
}
