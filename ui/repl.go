package ui

import (
	"bufio"
	"context"
	"crewcast/domain"
	"crewcast/errors"
	"crewcast/observability"
	"crewcast/runtime"
	"crewcast/search"
	goerrors "errors"
	"io"
	"strconv"
	"strings"
	"time"
)

// Actions is the command surface the REPL drives. *runtime.Orchestrator implements it.
type Actions interface {
	ListTopics(ctx context.Context) ([]domain.Topic, error)
	Create(ctx context.Context, name string) (string, error)
	JoinWithTicket(ctx context.Context, key string) (domain.Topic, error)
	JoinWithID(ctx context.Context, id int64) (domain.Topic, error)
	Leave(ctx context.Context) error
	RequestTicket(ctx context.Context) (string, error)
	SendMessage(ctx context.Context, content string) error
	InitiateDownload(ctx context.Context, fileID int64) error
	ShareFile(ctx context.Context, filePath string) error
	Search(ctx context.Context, q search.Query) ([]search.Hit, error)
	Stats() observability.Stats
	Session() *runtime.TopicSession
	LocalNodeID() string
}

const help = `Commands:
  /topics              list known topics
  /create <name>       start a new topic
  /join <name:ticket>  join with an invitation key
  /open <id>           join a known topic
  /ticket              invitation key of the current topic
  /members             roster of the current topic
  /files               files shared in the current topic
  /download <id>       download a shared file
  /share <path>        share a local file
  /find <terms> [--lang xx] [--from name] [--limit n]
  /stats               client counters
  /leave               leave the current topic
  /quit                exit
Anything else is sent as a chat message.`

// REPL reads commands line by line and prints their outcome.
// Failures are already reported as notifications, so they are not printed twice.
type REPL struct {
	actions  Actions
	renderer *Renderer
}

func NewREPL(actions Actions, renderer *Renderer) *REPL {
	return &REPL{actions: actions, renderer: renderer}
}

// Run returns when in is exhausted, on /quit, or when ctx is canceled.
func (r *REPL) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
		close(lines)
	}()

	r.renderer.Info("Type /help for commands")
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			if quit := r.Execute(ctx, line); quit {
				return nil
			}
		}
	}
}

// Execute runs one input line and reports whether the user asked to quit.
func (r *REPL) Execute(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if !strings.HasPrefix(line, "/") {
		r.report(r.actions.SendMessage(ctx, line))
		return false
	}

	command, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch command {
	case "/help":
		r.renderer.Info(help)
	case "/topics":
		if topics, err := r.actions.ListTopics(ctx); err == nil {
			r.renderer.Topics(topics, r.actions.LocalNodeID())
		}
	case "/create":
		if key, err := r.actions.Create(ctx, arg); err == nil {
			r.renderer.Info("Invitation key: %s", key)
		}
	case "/join":
		_, _ = r.actions.JoinWithTicket(ctx, arg)
	case "/open":
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			r.renderer.Info("Usage: /open <id>")
			return false
		}
		_, _ = r.actions.JoinWithID(ctx, id)
	case "/ticket":
		if key, err := r.actions.RequestTicket(ctx); err == nil {
			r.renderer.Info("Invitation key: %s", key)
		} else {
			r.report(err)
		}
	case "/leave":
		if err := r.actions.Leave(ctx); goerrors.Is(err, errors.ErrNoActiveTopic) {
			r.report(err)
		}
	case "/members":
		if session := r.session(); session != nil {
			r.renderer.Members(session.Presence.Snapshot())
		}
	case "/files":
		if session := r.session(); session != nil {
			r.renderer.Files(session.Files.Snapshot(), r.actions.LocalNodeID())
		}
	case "/download":
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			r.renderer.Info("Usage: /download <id>")
			return false
		}
		r.report(r.actions.InitiateDownload(ctx, id))
	case "/share":
		if arg == "" {
			r.renderer.Info("Usage: /share <path>")
			return false
		}
		r.report(r.actions.ShareFile(ctx, arg))
	case "/find":
		query := search.ParseQuery(arg)
		if query.IsEmpty() {
			r.renderer.Info("Usage: /find <terms> [--lang xx] [--from name]")
			return false
		}
		hits, err := r.actions.Search(ctx, query)
		if err != nil {
			r.report(err)
			return false
		}
		r.renderer.Hits(hits)
	case "/stats":
		r.renderer.Stats(r.actions.Stats())
	case "/quit", "/exit":
		return true
	default:
		r.renderer.Info("Unknown command: %s", command)
	}
	return false
}

func (r *REPL) session() *runtime.TopicSession {
	session := r.actions.Session()
	if session == nil {
		r.report(errors.ErrNoActiveTopic)
	}
	return session
}

// report prints the local errors that produced no notification.
func (r *REPL) report(err error) {
	switch {
	case err == nil:
	case goerrors.Is(err, errors.ErrNoActiveTopic):
		r.renderer.Info("Join or create a topic first")
	case goerrors.Is(err, errors.ErrEmptyMessage):
	case goerrors.Is(err, errors.ErrFileNotInCatalog),
		goerrors.Is(err, errors.ErrOwnFile),
		goerrors.Is(err, errors.ErrAlreadyDownloaded),
		goerrors.Is(err, errors.ErrDownloadInProgress):
		r.renderer.Info("Cannot download: %v", err)
	}
}

// Follow prints notifications and new chat messages until ctx is canceled.
// It follows the active session across topic switches.
func (r *REPL) Follow(ctx context.Context, notifications <-chan domain.Notification) {
	go r.followMessages(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-notifications:
			r.renderer.Notification(n)
		}
	}
}

func (r *REPL) followMessages(ctx context.Context) {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	for {
		if session := r.actions.Session(); session != nil {
			r.printSession(ctx, session)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// printSession prints each message of session once, until the session ends.
func (r *REPL) printSession(ctx context.Context, session *runtime.TopicSession) {
	changed, cancel := session.Messages.Subscribe()
	defer cancel()
	recheck := time.NewTicker(time.Second)
	defer recheck.Stop()

	printed := 0
	for {
		messages := session.Messages.Snapshot()
		for _, msg := range messages[printed:] {
			r.renderer.Message(msg)
		}
		printed = len(messages)

		select {
		case <-ctx.Done():
			return
		case _, ok := <-changed:
			if !ok {
				return
			}
		case <-recheck.C:
			if r.actions.Session() != session {
				return
			}
		}
	}
}
