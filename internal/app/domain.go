package app

import (
	"fmt"
	"log/slog"

	"github.com/skillcoder/kubedev-controller/internal/adapters/outbound/k8s"
	"github.com/skillcoder/kubedev-controller/internal/adapters/outbound/manifest"
	"github.com/skillcoder/kubedev-controller/internal/config"
	"github.com/skillcoder/kubedev-controller/internal/infra/cronparser"
	"github.com/skillcoder/kubedev-controller/internal/logic/workspace"
)

// domain holds the workspace services built on top of the adapters.
type domain struct {
	reconciler *workspace.Service
	lifecycle  *workspace.Lifecycle
	sweeper    *workspace.Sweeper
}

func newDomain(logger *slog.Logger, cfg *config.Config, c *clients) (*domain, error) {
	medium, err := workspace.MediumLimits(cfg.DefaultCPU, cfg.DefaultMemory, cfg.DefaultStorage)
	if err != nil {
		return nil, fmt.Errorf("default resource limits: %w", err)
	}

	manifests, err := manifest.New(logger, manifest.Options{
		Timeout:       cfg.ManifestFetchTimeout,
		GitLabHosts:   cfg.ManifestGitLabHosts,
		GitHubBaseURL: cfg.ManifestGitHubBaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create manifest fetcher: %w", err)
	}

	cluster := k8s.New(logger, c.kube, c.metrics)
	store := k8s.NewStore(logger, c.dynamic, cfg.ControlNamespace)

	quota := workspace.NewQuotaGovernor(logger, cluster)
	provisioner := workspace.NewProvisioner(logger, cluster, quota, workspace.ProvisionerOptions{
		IngressDomain: cfg.IngressDomain,
		IngressClass:  cfg.IngressClass,
		CloneImage:    cfg.CloneImage,
		CloneTimeout:  cfg.CloneTimeout,
	})

	reconciler := workspace.New(logger, store, cluster, provisioner, workspace.Options{
		ResyncInterval:       cfg.ResyncInterval,
		ReadinessInterval:    cfg.ReadinessInterval,
		ReadinessTimeout:     cfg.ReadinessTimeout,
		RestartSettleDelay:   cfg.RestartSettleDelay,
		RestartSettleTimeout: cfg.RestartSettleTimeout,
		DefaultExpiry:        cfg.DefaultExpiry,
	})

	projector := workspace.NewStatusProjector(logger, cluster, quota)
	lifecycle := workspace.NewLifecycle(
		logger,
		reconciler,
		store,
		cluster,
		quota,
		projector,
		workspace.DefaultCatalog(),
		manifests,
		workspace.DefaultTiers(medium),
	)

	sweeper, err := workspace.NewSweeper(logger, cronparser.New(), reconciler, cfg.SweepSchedule, cfg.SweepTimezone)
	if err != nil {
		return nil, fmt.Errorf("create expiry sweeper: %w", err)
	}

	return &domain{
		reconciler: reconciler,
		lifecycle:  lifecycle,
		sweeper:    sweeper,
	}, nil
}

// apiRequesters maps the configured API keys onto requester identities.
func apiRequesters(keys map[string]config.APIKey) map[string]workspace.Requester {
	out := make(map[string]workspace.Requester, len(keys))

	for key, identity := range keys {
		out[key] = workspace.Requester{Name: identity.User, Role: identity.Role}
	}

	return out
}
