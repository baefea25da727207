package workspace_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	k8stesting "k8s.io/client-go/testing"

	"github.com/skillcoder/kubedev-controller/internal/logic/workspace"
	"github.com/skillcoder/kubedev-controller/internal/logic/workspace/mocks"
)

func TestLifecycle_CreateWorkspace(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fastOptions(), nil)

	result, err := h.lifecycle.CreateWorkspace(t.Context(), alice, workspace.CreateRequest{
		Name:  "demo",
		Image: "demo:latest",
		Ports: []int{8080},
	})
	require.NoError(t, err)
	require.Equal(t, &workspace.CreateResult{
		ID:        "env-alice-demo",
		Phase:     workspace.PhaseCreating,
		Namespace: "kubedev-alice-demo",
		Address:   "http://ide-env-alice-demo.kubdev.local",
		Message:   "waiting for workload readiness",
	}, result)

	d, err := h.clientset.AppsV1().Deployments("kubedev-alice-demo").
		Get(t.Context(), "ide-env-alice-demo", metav1.GetOptions{})
	require.NoError(t, err)
	require.Equal(t, "demo:latest", d.Spec.Template.Spec.Containers[0].Image)
	require.Empty(t, d.Spec.Template.Spec.InitContainers)

	svc, err := h.clientset.CoreV1().Services("kubedev-alice-demo").
		Get(t.Context(), "ide-env-alice-demo", metav1.GetOptions{})
	require.NoError(t, err)
	require.Equal(t, int32(8080), svc.Spec.Ports[0].Port)

	ing, err := h.clientset.NetworkingV1().Ingresses("kubedev-alice-demo").
		Get(t.Context(), "ing-ide-env-alice-demo", metav1.GetOptions{})
	require.NoError(t, err)
	require.Equal(t, "ide-env-alice-demo.kubdev.local", ing.Spec.Rules[0].Host)

	_, err = h.clientset.CoreV1().ResourceQuotas("kubedev-alice-demo").
		Get(t.Context(), "quota-ide-env-alice-demo", metav1.GetOptions{})
	require.NoError(t, err)

	view, err := h.lifecycle.GetWorkspace(t.Context(), alice, result.ID)
	require.NoError(t, err)
	require.Equal(t, workspace.PhaseCreating, view.Phase)
	require.False(t, view.CanAccess)

	h.markReady(t, result.ID)
	ws := h.waitPhase(t, result.ID, workspace.PhaseRunning)
	require.NotNil(t, ws.Status.StartedAt)
	require.NotNil(t, ws.Status.ExpiresAt)
	require.Equal(t, "kubedev-alice-demo", ws.Status.Namespace)

	view, err = h.lifecycle.GetWorkspace(t.Context(), alice, result.ID)
	require.NoError(t, err)
	require.True(t, view.CanAccess)
	require.Equal(t, int32(1), view.Ready)
	require.NotNil(t, view.Quota)
}

func TestLifecycle_ReadinessTimeout(t *testing.T) {
	t.Parallel()

	opts := fastOptions()
	opts.ReadinessTimeout = 50 * time.Millisecond

	h := newHarness(t, opts, nil)

	result, err := h.lifecycle.CreateWorkspace(t.Context(), alice, workspace.CreateRequest{
		Name:  "slow",
		Image: "demo:latest",
	})
	require.NoError(t, err)

	ws := h.waitPhase(t, result.ID, workspace.PhaseError)
	require.Contains(t, ws.Status.Message, "readiness timeout")
	require.Equal(t, "kubedev-alice-slow", ws.Status.Namespace)
}

func TestLifecycle_CreateWorkspace_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		giveRequester workspace.Requester
		giveRequest   workspace.CreateRequest
		wantErr       error
	}{
		{
			name:          "anonymous",
			giveRequester: workspace.Requester{},
			giveRequest:   workspace.CreateRequest{Name: "x", Image: "demo"},
			wantErr:       workspace.ErrForbidden,
		},
		{
			name:          "missing name",
			giveRequester: alice,
			giveRequest:   workspace.CreateRequest{Image: "demo"},
			wantErr:       workspace.ErrValidation,
		},
		{
			name:          "missing image",
			giveRequester: alice,
			giveRequest:   workspace.CreateRequest{Name: "x"},
			wantErr:       workspace.ErrValidation,
		},
		{
			name:          "port out of range",
			giveRequester: alice,
			giveRequest:   workspace.CreateRequest{Name: "x", Image: "demo", Ports: []int{70000}},
			wantErr:       workspace.ErrValidation,
		},
		{
			name:          "bad env key",
			giveRequester: alice,
			giveRequest:   workspace.CreateRequest{Name: "x", Image: "demo", Env: map[string]string{"9X": "1"}},
			wantErr:       workspace.ErrValidation,
		},
		{
			name:          "bad repository",
			giveRequester: alice,
			giveRequest:   workspace.CreateRequest{Name: "x", Image: "demo", RepoURL: "ftp://host/repo"},
			wantErr:       workspace.ErrValidation,
		},
		{
			name:          "unknown tier",
			giveRequester: alice,
			giveRequest:   workspace.CreateRequest{Name: "x", Image: "demo", Tier: "xl"},
			wantErr:       workspace.ErrValidation,
		},
		{
			name:          "unknown template",
			giveRequester: alice,
			giveRequest:   workspace.CreateRequest{Name: "x", Template: "emacs"},
			wantErr:       workspace.ErrValidation,
		},
		{
			name:          "unknown mode",
			giveRequester: alice,
			giveRequest:   workspace.CreateRequest{Name: "x", Image: "demo", Mode: "shared"},
			wantErr:       workspace.ErrValidation,
		},
	}

	h := newHarness(t, fastOptions(), nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := h.lifecycle.CreateWorkspace(t.Context(), tt.giveRequester, tt.giveRequest)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("nothing recorded", func(t *testing.T) {
		items, err := h.lifecycle.ListAllWorkspaces(t.Context(), admin)
		require.NoError(t, err)
		require.Empty(t, items)
	})
}

func TestLifecycle_CreateWorkspace_Duplicate(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fastOptions(), nil)
	req := workspace.CreateRequest{Name: "demo", Image: "demo:latest"}

	_, err := h.lifecycle.CreateWorkspace(t.Context(), alice, req)
	require.NoError(t, err)

	_, err = h.lifecycle.CreateWorkspace(t.Context(), alice, req)
	require.ErrorIs(t, err, workspace.ErrConflict)

	_, err = h.lifecycle.CreateWorkspace(t.Context(), bob, req)
	require.NoError(t, err)
}

func TestLifecycle_CreateWorkspace_QuotaFailureBlocksWorkload(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fastOptions(), nil)

	h.clientset.PrependReactor("create", "resourcequotas",
		func(k8stesting.Action) (bool, runtime.Object, error) {
			return true, nil, errors.New("quota admission denied")
		},
	)

	result, err := h.lifecycle.CreateWorkspace(t.Context(), alice, workspace.CreateRequest{
		Name:  "demo",
		Image: "demo:latest",
	})
	require.ErrorContains(t, err, "quota admission denied")
	require.NotNil(t, result)
	require.Equal(t, workspace.PhaseError, result.Phase)
	require.Contains(t, result.Message, "quota admission denied")

	require.True(t, h.namespaceExists(t, "kubedev-alice-demo"))
	require.False(t, h.workloadExists(t, result.ID))
}

func TestLifecycle_CreateWorkspace_ManifestOverlay(t *testing.T) {
	t.Parallel()

	manifests := mocks.NewMockManifestFetcher(t)
	manifests.EXPECT().
		Fetch(mock.Anything, "https://github.com/acme/app").
		Return(&workspace.ManifestOverlay{
			Image:    "node:20",
			Commands: workspace.Commands{Init: "npm ci", Start: "npm start"},
			Ports:    []int32{5173, 3000},
		}, true).
		Once()

	h := newHarness(t, fastOptions(), manifests)

	result, err := h.lifecycle.CreateWorkspace(t.Context(), alice, workspace.CreateRequest{
		Name:         "app",
		RepoURL:      "https://github.com/acme/app",
		StartCommand: "npm run dev",
		Ports:        []int{3000},
	})
	require.NoError(t, err)

	ws, err := h.store.GetWorkspaceQuery(t.Context(), result.ID)
	require.NoError(t, err)
	require.Equal(t, "node:20", ws.Spec.Image)
	require.Equal(t, []int32{3000, 5173}, ws.Spec.Ports)
	require.Equal(t, workspace.Commands{Init: "npm ci", Start: "npm run dev"}, ws.Spec.Commands)
	require.Equal(t, "main", ws.Spec.Source.Ref)

	d, err := h.clientset.AppsV1().Deployments(result.Namespace).
		Get(t.Context(), workspace.WorkloadName(result.ID), metav1.GetOptions{})
	require.NoError(t, err)
	require.Len(t, d.Spec.Template.Spec.InitContainers, 2)
}

func TestLifecycle_CreateWorkspace_Template(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fastOptions(), nil)

	result, err := h.lifecycle.CreateWorkspace(t.Context(), alice, workspace.CreateRequest{
		Name:     "notebook",
		Template: "jupyter",
		Tier:     workspace.TierSmall,
	})
	require.NoError(t, err)

	ws, err := h.store.GetWorkspaceQuery(t.Context(), result.ID)
	require.NoError(t, err)
	require.Equal(t, "jupyter/scipy-notebook:latest", ws.Spec.Image)
	require.Equal(t, []int32{8888}, ws.Spec.Ports)
	require.Equal(t, "yes", ws.Spec.Env["JUPYTER_ENABLE_LAB"])
	require.Equal(t, workspace.TierSmall, ws.Spec.Tier)
	require.Equal(t, "500m", ws.Spec.Resources.CPU.String())
	require.Equal(t, workspace.ModePersonal, ws.Spec.Mode)
}

func TestLifecycle_Ownership(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fastOptions(), nil)

	result, err := h.lifecycle.CreateWorkspace(t.Context(), alice, workspace.CreateRequest{
		Name:  "demo",
		Image: "demo:latest",
	})
	require.NoError(t, err)

	_, err = h.lifecycle.GetWorkspace(t.Context(), bob, result.ID)
	require.ErrorIs(t, err, workspace.ErrForbidden)

	_, err = h.lifecycle.StopWorkspace(t.Context(), bob, result.ID)
	require.ErrorIs(t, err, workspace.ErrForbidden)

	err = h.lifecycle.DeleteWorkspace(t.Context(), bob, result.ID, false)
	require.ErrorIs(t, err, workspace.ErrForbidden)

	_, err = h.lifecycle.GetWorkspace(t.Context(), admin, result.ID)
	require.NoError(t, err)

	_, err = h.lifecycle.GetWorkspace(t.Context(), alice, "env-alice-missing")
	require.ErrorIs(t, err, workspace.ErrNotFound)

	own, err := h.lifecycle.ListWorkspaces(t.Context(), bob)
	require.NoError(t, err)
	require.Empty(t, own)

	_, err = h.lifecycle.ListAllWorkspaces(t.Context(), bob)
	require.ErrorIs(t, err, workspace.ErrForbidden)

	all, err := h.lifecycle.ListAllWorkspaces(t.Context(), admin)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "alice", all[0].Owner)
}

func TestLifecycle_BatchCreate(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fastOptions(), nil)
	req := workspace.CreateRequest{Name: "course", Image: "demo:latest"}

	_, err := h.lifecycle.BatchCreate(t.Context(), alice, []string{"carol"}, req)
	require.ErrorIs(t, err, workspace.ErrForbidden)

	_, err = h.lifecycle.BatchCreate(t.Context(), admin, nil, req)
	require.ErrorIs(t, err, workspace.ErrValidation)

	result, err := h.lifecycle.BatchCreate(t.Context(), admin, []string{"carol", "dave", "carol"}, req)
	require.NoError(t, err)
	require.Len(t, result.Created, 2)
	require.Len(t, result.Failed, 1)
	require.True(t, strings.HasPrefix(result.Failed[0], "carol: "), result.Failed[0])

	for _, created := range result.Created {
		ws, err := h.store.GetWorkspaceQuery(t.Context(), created.ID)
		require.NoError(t, err)
		require.Equal(t, workspace.PhaseCreating, ws.Status.Phase)
	}
}

func TestLifecycle_StopAndStart(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fastOptions(), nil)
	id := h.createRunning(t, "demo")

	view, err := h.lifecycle.StopWorkspace(t.Context(), alice, id)
	require.NoError(t, err)
	require.Equal(t, workspace.PhaseStopped, view.Phase)
	require.NotNil(t, view.StoppedAt)
	require.False(t, h.workloadExists(t, id))
	require.True(t, h.namespaceExists(t, "kubedev-alice-demo"))

	view, err = h.lifecycle.StopWorkspace(t.Context(), alice, id)
	require.NoError(t, err)
	require.Equal(t, workspace.PhaseStopped, view.Phase)

	view, err = h.lifecycle.StartWorkspace(t.Context(), alice, id)
	require.NoError(t, err)
	require.Equal(t, workspace.PhaseCreating, view.Phase)
	require.Nil(t, view.StoppedAt)
	require.True(t, h.workloadExists(t, id))

	h.markReady(t, id)
	h.waitPhase(t, id, workspace.PhaseRunning)

	view, err = h.lifecycle.StartWorkspace(t.Context(), alice, id)
	require.NoError(t, err)
	require.Equal(t, workspace.PhaseRunning, view.Phase)
}

func TestLifecycle_StartStoppedWithLiveWorkload(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fastOptions(), nil)
	id := h.createRunning(t, "demo")

	_, err := h.lifecycle.StopWorkspace(t.Context(), alice, id)
	require.NoError(t, err)

	_, err = h.clientset.AppsV1().Deployments(workspace.NamespaceName(id)).Create(t.Context(), &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{Name: workspace.WorkloadName(id), Namespace: workspace.NamespaceName(id)},
	}, metav1.CreateOptions{})
	require.NoError(t, err)

	view, err := h.lifecycle.StartWorkspace(t.Context(), alice, id)
	require.NoError(t, err)
	require.Equal(t, workspace.PhaseRunning, view.Phase)
}

func TestLifecycle_StopPendingIsNotReady(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fastOptions(), nil)

	id, err := workspace.WorkspaceID("alice", "queued")
	require.NoError(t, err)

	_, err = h.store.CreateWorkspaceCommand(t.Context(), &workspace.Workspace{
		ID:     id,
		Owner:  "alice",
		Spec:   workspace.Spec{Image: "demo:latest", Resources: testLimits()},
		Status: workspace.Status{Phase: workspace.PhasePending},
	})
	require.NoError(t, err)

	_, err = h.lifecycle.StopWorkspace(t.Context(), alice, id)
	require.ErrorIs(t, err, workspace.ErrNotReady)

	err = h.lifecycle.RestartWorkspace(t.Context(), alice, id)
	require.ErrorIs(t, err, workspace.ErrNotReady)

	_, err = h.lifecycle.GetLogs(t.Context(), alice, id, 10)
	require.ErrorIs(t, err, workspace.ErrNotReady)
}

func TestLifecycle_RestartWorkspace(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fastOptions(), nil)
	id := h.createRunning(t, "demo")

	require.NoError(t, h.lifecycle.RestartWorkspace(t.Context(), alice, id))

	require.Eventually(t, func() bool {
		ws, err := h.store.GetWorkspaceQuery(t.Context(), id)

		return err == nil && ws.Status.Phase == workspace.PhaseCreating && h.workloadExists(t, id)
	}, waitFor, tick)

	require.Eventually(t, func() bool {
		release, ok := h.svc.TryBegin(id)
		if ok {
			release()
		}

		return ok
	}, waitFor, tick, "restart job must release the workspace")

	h.markReady(t, id)
	h.waitPhase(t, id, workspace.PhaseRunning)
}

func TestLifecycle_ConcurrentActionsConflict(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fastOptions(), nil)
	id := h.createRunning(t, "demo")

	release, ok := h.svc.TryBegin(id)
	require.True(t, ok)

	_, err := h.lifecycle.StopWorkspace(t.Context(), alice, id)
	require.ErrorIs(t, err, workspace.ErrConflict)

	err = h.lifecycle.RestartWorkspace(t.Context(), alice, id)
	require.ErrorIs(t, err, workspace.ErrConflict)

	err = h.lifecycle.DeleteWorkspace(t.Context(), alice, id, true)
	require.ErrorIs(t, err, workspace.ErrConflict)

	release()

	_, err = h.lifecycle.StopWorkspace(t.Context(), alice, id)
	require.NoError(t, err)
}

func TestLifecycle_DeleteWorkspace(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fastOptions(), nil)
	id := h.createRunning(t, "demo")

	require.NoError(t, h.lifecycle.DeleteWorkspace(t.Context(), alice, id, true))

	_, err := h.lifecycle.GetWorkspace(t.Context(), alice, id)
	require.ErrorIs(t, err, workspace.ErrNotFound)
	require.False(t, h.namespaceExists(t, "kubedev-alice-demo"))
	require.False(t, h.workloadExists(t, id))
}

func TestLifecycle_DeleteWorkspace_FailureKeepsRecord(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fastOptions(), nil)
	id := h.createRunning(t, "demo")

	h.clientset.PrependReactor("delete", "deployments",
		func(k8stesting.Action) (bool, runtime.Object, error) {
			return true, nil, errors.New("api unavailable")
		},
	)

	err := h.lifecycle.DeleteWorkspace(t.Context(), alice, id, false)
	require.ErrorContains(t, err, "api unavailable")

	ws, err := h.store.GetWorkspaceQuery(t.Context(), id)
	require.NoError(t, err)
	require.Equal(t, workspace.PhaseError, ws.Status.Phase)
	require.Contains(t, ws.Status.Message, "delete failed")
}

func TestLifecycle_GetLogs(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fastOptions(), nil)
	id := h.createRunning(t, "demo")

	_, err := h.lifecycle.GetLogs(t.Context(), alice, id, 50)
	require.ErrorIs(t, err, workspace.ErrNotReady)

	_, err = h.clientset.CoreV1().Pods(workspace.NamespaceName(id)).Create(t.Context(), &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "ide-env-alice-demo-abc",
			Namespace: workspace.NamespaceName(id),
			Labels:    map[string]string{workspace.LabelApp: workspace.WorkloadName(id)},
		},
	}, metav1.CreateOptions{})
	require.NoError(t, err)

	logs, err := h.lifecycle.GetLogs(t.Context(), alice, id, 0)
	require.NoError(t, err)
	require.Equal(t, "fake logs", logs)
}

func TestLifecycle_AdminQueries(t *testing.T) {
	t.Parallel()

	h := newHarness(t, fastOptions(), nil)
	id := h.createRunning(t, "demo")

	quota, err := h.lifecycle.QuotaStatus(t.Context(), admin, workspace.NamespaceName(id))
	require.NoError(t, err)
	require.Equal(t, "1", quota.Hard[workspace.QuotaLimitsCPU])
	require.Equal(t, "2Gi", quota.Hard[workspace.QuotaLimitsMemory])

	_, err = h.lifecycle.QuotaStatus(t.Context(), alice, workspace.NamespaceName(id))
	require.ErrorIs(t, err, workspace.ErrForbidden)

	_, err = h.lifecycle.QuotaStatus(t.Context(), admin, "kubedev-nobody")
	require.ErrorIs(t, err, workspace.ErrQuotaNotFound)

	overview, err := h.lifecycle.ClusterOverview(t.Context(), admin)
	require.NoError(t, err)
	require.Zero(t, overview.TotalNodes)

	_, err = h.lifecycle.ClusterOverview(t.Context(), bob)
	require.ErrorIs(t, err, workspace.ErrForbidden)
}
