package workspace_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	dynamicfake "k8s.io/client-go/dynamic/fake"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/skillcoder/kubedev-controller/internal/adapters/outbound/k8s"
	"github.com/skillcoder/kubedev-controller/internal/logic/workspace"
)

const (
	testControlNamespace = "kubedev-users"
	waitFor              = 3 * time.Second
	tick                 = 5 * time.Millisecond
)

var (
	alice = workspace.Requester{Name: "alice", Role: workspace.RoleUser}
	bob   = workspace.Requester{Name: "bob", Role: workspace.RoleUser}
	admin = workspace.Requester{Name: "root", Role: workspace.RoleAdmin}
)

// harness wires the domain services over fake cluster clients.
type harness struct {
	clientset *fake.Clientset
	cluster   workspace.Cluster
	store     workspace.Store
	svc       *workspace.Service
	lifecycle *workspace.Lifecycle
}

func fastOptions() workspace.Options {
	return workspace.Options{
		ResyncInterval:       time.Minute,
		ReadinessInterval:    10 * time.Millisecond,
		ReadinessTimeout:     waitFor,
		RestartSettleDelay:   0,
		RestartSettleTimeout: time.Second,
		RestartPollInterval:  10 * time.Millisecond,
		DefaultExpiry:        time.Hour,
	}
}

func newHarness(t *testing.T, opts workspace.Options, manifests workspace.ManifestFetcher) *harness {
	t.Helper()

	clientset := fake.NewSimpleClientset()
	dynamicClient := dynamicfake.NewSimpleDynamicClientWithCustomListKinds(runtime.NewScheme(), k8s.WorkspaceListKinds())

	h := &harness{
		clientset: clientset,
		cluster:   k8s.New(slog.Default(), clientset, nil),
		store:     k8s.NewStore(slog.Default(), dynamicClient, testControlNamespace),
	}
	h.wire(t, opts, manifests)

	return h
}

// newHarnessSharing builds fresh services over the clients of h, as after a
// controller restart.
func newHarnessSharing(t *testing.T, h *harness) *harness {
	t.Helper()

	restarted := &harness{
		clientset: h.clientset,
		cluster:   h.cluster,
		store:     h.store,
	}
	restarted.wire(t, fastOptions(), nil)

	return restarted
}

func (h *harness) wire(t *testing.T, opts workspace.Options, manifests workspace.ManifestFetcher) {
	t.Helper()

	logger := slog.Default()
	quota := workspace.NewQuotaGovernor(logger, h.cluster)
	provisioner := workspace.NewProvisioner(logger, h.cluster, quota, workspace.ProvisionerOptions{})
	svc := workspace.New(logger, h.store, h.cluster, provisioner, opts)

	medium, err := workspace.MediumLimits("1000m", "2Gi", "10Gi")
	require.NoError(t, err)

	h.svc = svc
	h.lifecycle = workspace.NewLifecycle(
		logger,
		svc,
		h.store,
		h.cluster,
		quota,
		workspace.NewStatusProjector(logger, h.cluster, quota),
		workspace.DefaultCatalog(),
		manifests,
		workspace.DefaultTiers(medium),
	)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), waitFor)
		defer cancel()

		require.NoError(t, svc.Shutdown(ctx))
	})
}

// markReady reports one ready replica on the workspace workload.
func (h *harness) markReady(t *testing.T, id string) {
	t.Helper()

	deployments := h.clientset.AppsV1().Deployments(workspace.NamespaceName(id))

	d, err := deployments.Get(t.Context(), workspace.WorkloadName(id), metav1.GetOptions{})
	require.NoError(t, err)

	d.Status.Replicas = 1
	d.Status.ReadyReplicas = 1

	_, err = deployments.UpdateStatus(t.Context(), d, metav1.UpdateOptions{})
	require.NoError(t, err)
}

func (h *harness) waitPhase(t *testing.T, id string, want workspace.Phase) *workspace.Workspace {
	t.Helper()

	var last *workspace.Workspace

	require.Eventually(t, func() bool {
		ws, err := h.store.GetWorkspaceQuery(t.Context(), id)
		if err != nil {
			return false
		}

		last = ws

		return ws.Status.Phase == want
	}, waitFor, tick, "workspace %s never reached %s", id, want)

	return last
}

func (h *harness) workloadExists(t *testing.T, id string) bool {
	t.Helper()

	_, err := h.clientset.AppsV1().
		Deployments(workspace.NamespaceName(id)).
		Get(t.Context(), workspace.WorkloadName(id), metav1.GetOptions{})

	return err == nil
}

func (h *harness) namespaceExists(t *testing.T, name string) bool {
	t.Helper()

	_, err := h.clientset.CoreV1().Namespaces().Get(t.Context(), name, metav1.GetOptions{})

	return err == nil
}

// createRunning creates a workspace for alice and waits until it runs.
func (h *harness) createRunning(t *testing.T, name string) string {
	t.Helper()

	result, err := h.lifecycle.CreateWorkspace(t.Context(), alice, workspace.CreateRequest{
		Name:  name,
		Image: "demo:latest",
		Ports: []int{8080},
	})
	require.NoError(t, err)

	h.markReady(t, result.ID)
	h.waitPhase(t, result.ID, workspace.PhaseRunning)

	return result.ID
}
