package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/skillcoder/kubedev-controller/internal/app"
	"github.com/skillcoder/kubedev-controller/internal/config"
	"github.com/skillcoder/kubedev-controller/internal/infra/appstate"
	"github.com/skillcoder/kubedev-controller/internal/infra/logging"
	"github.com/skillcoder/kubedev-controller/internal/infra/pinger"
	"github.com/skillcoder/kubedev-controller/internal/infra/shutdown"
)

func main() {
	appStart := time.Now()
	// Start listening for signals immediately as first thing, before any other initialization
	signals := shutdown.Notify()
	ctx := context.Background()

	err := newRootCommand(signals, appStart).ExecuteContext(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to run", "reason", err)
		// Give the logger some time to flush
		time.Sleep(1 * time.Second)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "bye")
}

func newRootCommand(signals <-chan os.Signal, appStart time.Time) *cobra.Command {
	root := &cobra.Command{
		Use:   "kubedev-controller",
		Short: "Provisions and reconciles per-user development workspaces on Kubernetes",
		Long: `kubedev-controller serves the workspace lifecycle API, provisions an isolated
namespace with quota, workload, service and ingress per workspace, and keeps
workspace phases in sync with the cluster. Configuration is read from
KUBEDEV_* environment variables.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), signals, appStart)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSweepCommand(signals))

	return root
}

func newSweepCommand(signals <-chan os.Signal) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Delete expired workspaces once and print a JSON report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return sweep(cmd, signals, dryRun)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "only report the workspaces that would be deleted")

	return cmd
}

func run(ctx context.Context, signals <-chan os.Signal, appStart time.Time) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(os.Stdout, cfg.LogFormat, cfg.LogLevel)
	pingers := pinger.New(logger, cfg.PingerInterval)
	appState := appstate.New(logger, appStart, cfg.TerminationFile, cfg.ShutdownTimeout, signals, pingers)

	application, err := app.New(logger, cfg, appState, pingers)
	if err != nil {
		return fmt.Errorf("new application: %w", err)
	}

	return application.Run(ctx)
}

func sweep(cmd *cobra.Command, signals <-chan os.Signal, dryRun bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The report goes to stdout.
	logger := logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	go func() {
		select {
		case sig := <-signals:
			logger.InfoContext(ctx, "received signal, cancelling sweep", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	report, err := app.RunSweep(ctx, logger, cfg, dryRun)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode sweep report: %w", err)
	}

	return nil
}
