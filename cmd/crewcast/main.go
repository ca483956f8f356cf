package main

import (
	"bufio"
	"context"
	"crewcast/runtime/workers"
	"crewcast/ui"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const leaveTimeout = 5 * time.Second

func main() {
	code := exitOK
	if err := rootCmd.Execute(); err != nil {
		code = exitRuntime
		if errors.Is(err, errConfig) {
			code = exitConfig
		}
	}
	os.Exit(code)
}

var envFile string

var rootCmd = &cobra.Command{
	Use:          "crewcast",
	Short:        "Topic chat and file sharing over a p2p node",
	SilenceUsage: true,
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the interactive chat",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := newApp(envFile)
		if err != nil {
			return err
		}
		defer a.Close()

		registration, err := a.registered(ctx)
		if err != nil {
			return err
		}
		a.log.Info("Starting chat", "nodeId", registration.Node.NodeID, "backend", a.config.BackendAddr)

		orchestrator := a.orchestrator(registration.Node.NodeID)
		defer func() {
			if orchestrator.Session() == nil {
				return
			}
			leaveCtx, cancel := context.WithTimeout(context.Background(), leaveTimeout)
			defer cancel()
			_ = orchestrator.Leave(leaveCtx)
			a.drain()
		}()

		sup := workers.NewSupervisor(a.log, a.config.RestartInterval, a.monitoring)
		sup.Add(workers.NewReporterWorker(a.log, a.monitoring, a.config.StatsInterval))
		supDone := make(chan struct{})
		go func() {
			defer close(supDone)
			sup.Run(ctx)
		}()
		defer func() {
			sup.Stop()
			<-supDone
		}()

		repl := ui.NewREPL(orchestrator, a.renderer)
		go repl.Follow(ctx, a.feed.C())

		a.renderer.Info("Welcome back, %s", registration.User.FirstName)
		if key, _ := cmd.Flags().GetString("join"); key != "" {
			_, _ = orchestrator.JoinWithTicket(ctx, key)
		} else if id, _ := cmd.Flags().GetInt64("topic"); id > 0 {
			_, _ = orchestrator.JoinWithID(ctx, id)
		}
		return repl.Run(ctx, os.Stdin)
	},
}

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the topics known to the node",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(envFile)
		if err != nil {
			return err
		}
		defer a.Close()

		registration, err := a.registration.CheckRegistration(cmd.Context())
		if err != nil {
			return err
		}
		topics, err := a.client.ListTopics(cmd.Context())
		if err != nil {
			return fmt.Errorf("list topics: %w", err)
		}
		a.renderer.Topics(topics, registration.Node.NodeID)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create the user profile of the local node",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(envFile)
		if err != nil {
			return err
		}
		defer a.Close()
		defer a.drain()

		registration, err := a.registration.CheckRegistration(cmd.Context())
		if err != nil {
			return err
		}
		if registration.Registered {
			a.renderer.Info("Already registered as %s", registration.User.FirstName)
			return nil
		}

		email, _ := cmd.Flags().GetString("email")
		firstName, _ := cmd.Flags().GetString("first-name")
		lastName, _ := cmd.Flags().GetString("last-name")
		in := bufio.NewReader(os.Stdin)
		if email == "" {
			email = prompt(in, "Email: ")
		}
		if firstName == "" {
			firstName = prompt(in, "First name: ")
		}

		_, err = a.registration.Register(cmd.Context(), email, firstName, lastName)
		return err
	},
}

var identitiesCmd = &cobra.Command{
	Use:   "identities",
	Short: "List the identities kept in the local cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(envFile)
		if err != nil {
			return err
		}
		defer a.Close()

		if a.store == nil {
			return fmt.Errorf("%w: IDENTITY_CACHE_PATH is not set", errConfig)
		}
		identities, err := a.store.List()
		if err != nil {
			return fmt.Errorf("read identity cache: %w", err)
		}
		a.renderer.Identities(identities)
		return nil
	},
}

func prompt(in *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Read configuration from this .env file")

	chatCmd.Flags().String("join", "", "Join a topic with an invitation key on start")
	chatCmd.Flags().Int64("topic", 0, "Join a known topic by id on start")
	registerCmd.Flags().String("email", "", "Email of the profile")
	registerCmd.Flags().String("first-name", "", "First name shown to other members")
	registerCmd.Flags().String("last-name", "", "Last name")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(identitiesCmd)
}
