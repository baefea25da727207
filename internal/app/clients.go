package app

import (
	"fmt"
	"log/slog"

	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
	metricsv "k8s.io/metrics/pkg/client/clientset/versioned"

	"github.com/skillcoder/kubedev-controller/internal/config"
)

// clients are the Kubernetes API clients shared by the adapters.
type clients struct {
	kube    kubernetes.Interface
	dynamic dynamic.Interface
	// metrics is nil when the metrics API client could not be built.
	metrics metricsv.Interface
}

func newClients(logger *slog.Logger, cfg *config.Config) (*clients, error) {
	kubeConfig, err := clientcmd.BuildConfigFromFlags(cfg.KubeMaster, cfg.KubeConfig)
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("create clientset: %w", err)
	}

	dynamicClient, err := dynamic.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("create dynamic client: %w", err)
	}

	out := &clients{
		kube:    clientset,
		dynamic: dynamicClient,
	}

	metricsClientset, err := metricsv.NewForConfig(kubeConfig)
	if err != nil {
		logger.Warn("metrics API client unavailable, usage will not be reported", "reason", err)
	} else {
		out.metrics = metricsClientset
	}

	return out, nil
}
