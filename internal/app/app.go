package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/skillcoder/kubedev-controller/internal/adapters/outbound/k8s"
	"github.com/skillcoder/kubedev-controller/internal/config"
	"github.com/skillcoder/kubedev-controller/internal/httpserver"
	"github.com/skillcoder/kubedev-controller/internal/infra/pinger"
	"github.com/skillcoder/kubedev-controller/internal/infra/shutdown"
	"github.com/skillcoder/kubedev-controller/internal/logic/workspace"
)

const sweepRequester = "kubedev-cli"

type App struct {
	logger   *slog.Logger
	appState appstater
	signals  signalHandler
	// stages start in order, the components of one stage together. Shutdown
	// runs in reverse start order.
	stages [][]component
}

// New creates a new application instance with all dependencies wired.
func New(logger *slog.Logger, cfg *config.Config, appState appstater, pingers component) (*App, error) {
	c, err := newClients(logger, cfg)
	if err != nil {
		return nil, err
	}

	return assemble(logger, cfg, appState, pingers, c)
}

func assemble(
	logger *slog.Logger,
	cfg *config.Config,
	appState appstater,
	pingers component,
	c *clients,
) (*App, error) {
	d, err := newDomain(logger, cfg, c)
	if err != nil {
		return nil, err
	}

	httpServer := httpserver.New(logger, appState, d.lifecycle, apiRequesters(cfg.APIKeys), cfg.HTTPPort)
	metricsServer := httpserver.NewMetricsServer(logger, cfg.MetricsPort)

	checks := []pinger.Pinger{
		k8s.NewAPIPinger(c.kube, cfg.ControlNamespace),
		k8s.NewStorePinger(c.dynamic, cfg.ControlNamespace),
		d.reconciler,
		httpServer,
		metricsServer,
	}

	if c.metrics != nil {
		checks = append(checks, k8s.NewMetricsPinger(c.metrics))
	}

	for _, p := range checks {
		if err := appState.RegisterPinger(p); err != nil {
			return nil, fmt.Errorf("register pinger %s: %w", p.Name(), err)
		}
	}

	if len(cfg.APIKeys) == 0 {
		logger.Warn("no API keys configured, every API request will be rejected")
	}

	return &App{
		logger:   logger,
		appState: appState,
		signals:  shutdown.New(logger, appState, cfg.TerminationFile),
		stages: [][]component{
			{d.reconciler, d.sweeper, metricsServer, httpServer},
			// The first round of checks runs once every component is ready.
			{pingers},
		},
	}, nil
}

// Run starts the application and blocks until context is cancelled.
func (a *App) Run(originCtx context.Context) error {
	err := a.signals.CheckTermination(originCtx)
	if err != nil {
		return fmt.Errorf("check termination: %w", err)
	}

	ctx, cancel := context.WithCancel(originCtx)
	defer cancel()

	go a.signals.HandleSignals(ctx, cancel)

	if err := a.appState.SetStarting(ctx); err != nil {
		return fmt.Errorf("set starting application state: %w", err)
	}

	a.logger.InfoContext(ctx, "starting controller")

	if err := a.start(ctx); err != nil {
		shutdownErr := a.appState.Shutdown(context.WithoutCancel(ctx))

		return errors.Join(err, shutdownErr)
	}

	if ctx.Err() == nil {
		if err := a.appState.SetRunning(ctx); err != nil {
			a.logger.ErrorContext(ctx, "failed to set running state", "reason", err)
		} else {
			a.logger.InfoContext(ctx, "controller is running")
		}
	}

	<-ctx.Done()

	a.logger.InfoContext(ctx, "stopping controller")

	if err := a.appState.Shutdown(context.WithoutCancel(ctx)); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

// start starts the stages in order and waits for every component of a stage
// to be ready before the next one. A component is registered for shutdown
// only once it started.
func (a *App) start(ctx context.Context) error {
	for _, stage := range a.stages {
		readyChans := make([]<-chan struct{}, 0, len(stage))

		for _, c := range stage {
			if err := c.Start(ctx); err != nil {
				return fmt.Errorf("start %s: %w", c.Name(), err)
			}

			if err := a.appState.RegisterShutdowner(c); err != nil {
				return fmt.Errorf("register shutdowner %s: %w", c.Name(), err)
			}

			readyChans = append(readyChans, c.Ready())
		}

		<-allChannelsClose(ctx, a.logger, readyChans...)
	}

	return nil
}

// allChannelsClose returns a channel closed once every input channel closed
// or ctx is done.
func allChannelsClose(ctx context.Context, logger *slog.Logger, chans ...<-chan struct{}) <-chan struct{} {
	out := make(chan struct{})

	go func() {
		defer close(out)

		for i, ch := range chans {
			select {
			case <-ch:
			case <-ctx.Done():
				logger.DebugContext(ctx, "stopped waiting for components", "pending", len(chans)-i)

				return
			}
		}
	}()

	return out
}

// RunSweep runs one expiry sweep against the cluster and returns its report.
func RunSweep(ctx context.Context, logger *slog.Logger, cfg *config.Config, dryRun bool) (*workspace.SweepReport, error) {
	c, err := newClients(logger, cfg)
	if err != nil {
		return nil, err
	}

	return sweepOnce(ctx, logger, cfg, c, dryRun)
}

func sweepOnce(
	ctx context.Context,
	logger *slog.Logger,
	cfg *config.Config,
	c *clients,
	dryRun bool,
) (*workspace.SweepReport, error) {
	d, err := newDomain(logger, cfg, c)
	if err != nil {
		return nil, err
	}

	report, err := d.lifecycle.SweepExpired(ctx, workspace.Requester{
		Name: sweepRequester,
		Role: workspace.RoleAdmin,
	}, dryRun)
	if err != nil {
		return nil, fmt.Errorf("sweep expired workspaces: %w", err)
	}

	return report, nil
}
