package main

import (
	"context"
	"crewcast/contract"
	"crewcast/errors"
	"crewcast/identity"
	"crewcast/infrastructure/grpc/client"
	"crewcast/infrastructure/storage"
	"crewcast/internal"
	"crewcast/moderation"
	"crewcast/observability"
	"crewcast/runtime"
	"crewcast/services"
	"crewcast/sink"
	"crewcast/ui"
	goerrors "errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mama165/sdk-go/logs"
)

var errConfig = fmt.Errorf("configuration")

// app holds the components shared by every command.
// Call Close once done.
type app struct {
	config       internal.Config
	log          *slog.Logger
	client       *client.BackendClient
	store        *storage.IdentityStore
	monitoring   *observability.Monitoring
	feed         *sink.NotificationFeed
	renderer     *ui.Renderer
	registration *services.RegistrationService
	filter       contract.IContentFilter
}

func newApp(envFile string) (*app, error) {
	var envFiles []string
	if envFile != "" {
		envFiles = append(envFiles, envFile)
	}
	config, err := internal.LoadConfig(envFiles...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errConfig, err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	a := &app{
		config:     config,
		log:        log,
		monitoring: observability.NewMonitoring(),
		renderer:   ui.NewRenderer(os.Stdout, ui.IsTerminal(os.Stdout)),
	}
	a.feed = sink.NewNotificationFeed(log, config.NotificationBuffer, a.monitoring)

	a.client, err = client.Dial(log, config.BackendAddr, config.RPCTimeout)
	if err != nil {
		return nil, fmt.Errorf("dial backend %s: %w", config.BackendAddr, err)
	}

	if config.IdentityCachePath != "" {
		a.store, err = storage.OpenIdentityStore(config.IdentityCachePath, log, config.LogLevel == "DEBUG")
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("open identity cache: %w", err)
		}
		if count, err := a.store.Count(); err == nil {
			log.Info("Identity cache opened", "path", config.IdentityCachePath, "entries", count)
		}
	}

	if a.filter, err = a.contentFilter(); err != nil {
		a.Close()
		return nil, err
	}

	a.registration = services.NewRegistrationService(log, a.client, a.notifier(), config.NodeRowID)
	return a, nil
}

// contentFilter merges the inline and file word lists. No words means no filter.
func (a *app) contentFilter() (contract.IContentFilter, error) {
	words := a.config.Words()
	if dir := a.config.CensoredWordsDir; dir != "" {
		list, err := moderation.LoadWordFiles(os.DirFS(dir), ".")
		if err != nil {
			return nil, fmt.Errorf("%w: censored words: %w", errConfig, err)
		}
		a.log.Debug("Censored word files loaded", "languages", list.Languages)
		words = moderation.Merge(words, list.Words)
	}
	if len(words) == 0 {
		return nil, nil
	}

	replacement, err := internal.CharacterRune(a.config.CharReplacement)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errConfig, err)
	}
	moderator, err := moderation.NewModerator(words, replacement, a.log)
	if goerrors.Is(err, errors.ErrEmptyWords) {
		a.log.Warn("Censored words contain no letters, moderation disabled")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return moderator, nil
}

// notifier feeds the terminal. At DEBUG level notifications are logged too.
func (a *app) notifier() contract.INotifier {
	if a.config.LogLevel == "DEBUG" {
		return sink.Fanout{a.feed, sink.NewLogNotifier(a.log)}
	}
	return a.feed
}

func (a *app) identityStore() contract.IIdentityStore {
	if a.store == nil {
		return nil
	}
	return a.store
}

// orchestrator builds the topic state machine for the registered local node.
func (a *app) orchestrator(localNodeID string) *runtime.Orchestrator {
	cache := identity.NewCache(a.log, a.identityStore())
	resolver := identity.NewResolver(a.log, a.client, cache, a.config.LookupTimeout, a.monitoring)

	orchestrator := runtime.NewOrchestrator(
		a.log, a.client, a.client, runtime.NewRegistry(), resolver, a.notifier(), a.monitoring,
		localNodeID,
		runtime.SessionConfig{
			SweepInterval:   a.config.SweepInterval,
			ActiveWindow:    a.config.ActiveWindow,
			GraceDelay:      a.config.ProgressGraceDelay,
			RestartInterval: a.config.RestartInterval,
		},
	)
	if a.filter != nil {
		orchestrator.WithContentFilter(a.filter)
	}
	return orchestrator
}

// registered returns the local registration, or an error telling how to register.
func (a *app) registered(ctx context.Context) (services.Registration, error) {
	registration, err := a.registration.CheckRegistration(ctx)
	if err != nil {
		return services.Registration{}, err
	}
	if !registration.Registered {
		return registration, fmt.Errorf("node %s has no profile, run: crewcast register", registration.Node.NodeID)
	}
	return registration, nil
}

// drain prints the pending notifications.
func (a *app) drain() {
	for {
		select {
		case n := <-a.feed.C():
			a.renderer.Notification(n)
		default:
			return
		}
	}
}

func (a *app) Close() {
	if a.client != nil {
		if err := a.client.Close(); err != nil {
			a.log.Warn("Failed to close backend connection", "err", err)
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn("Failed to close identity cache", "err", err)
		}
	}
}
