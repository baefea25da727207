package app

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	dynamicfake "k8s.io/client-go/dynamic/fake"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/skillcoder/kubedev-controller/internal/adapters/outbound/k8s"
	"github.com/skillcoder/kubedev-controller/internal/config"
	"github.com/skillcoder/kubedev-controller/internal/infra/appstate"
	"github.com/skillcoder/kubedev-controller/internal/infra/pinger"
	"github.com/skillcoder/kubedev-controller/internal/logic/workspace"
)

const testNamespace = "kubedev-users"

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:             "debug",
		LogFormat:            "text",
		HTTPPort:             "0",
		MetricsPort:          "0",
		ShutdownTimeout:      5 * time.Second,
		ControlNamespace:     testNamespace,
		ResyncInterval:       time.Hour,
		PingerInterval:       time.Hour,
		ReadinessInterval:    time.Second,
		ReadinessTimeout:     time.Minute,
		RestartSettleDelay:   0,
		RestartSettleTimeout: time.Second,
		DefaultExpiry:        8 * time.Hour,
		IngressDomain:        "kubdev.local",
		CloneImage:           "alpine/git:latest",
		CloneTimeout:         time.Minute,
		DefaultCPU:           "1",
		DefaultMemory:        "2Gi",
		DefaultStorage:       "10Gi",
		SweepSchedule:        "*/15 * * * *",
		ManifestFetchTimeout: time.Second,
		APIKeys: map[string]config.APIKey{
			"k-admin": {Role: workspace.RoleAdmin, User: "root"},
		},
	}
}

func fakeClients(objects ...runtime.Object) *clients {
	objects = append(objects, &corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: testNamespace}})

	return &clients{
		kube:    fake.NewSimpleClientset(objects...),
		dynamic: dynamicfake.NewSimpleDynamicClientWithCustomListKinds(runtime.NewScheme(), k8s.WorkspaceListKinds()),
	}
}

func newTestState(cfg *config.Config) (*appstate.AppState, *pinger.Service) {
	logger := slog.Default()
	pingers := pinger.New(logger, cfg.PingerInterval)

	return appstate.New(logger, time.Now(), "", cfg.ShutdownTimeout, make(chan os.Signal, 1), pingers), pingers
}

type allChannelsCloseCase struct {
	name                         string
	giveNumChannels              int
	giveContextCancelBeforeClose bool
	wantClosed                   bool
}

func TestAllChannelsClose(t *testing.T) {
	logger := slog.Default()

	tests := []allChannelsCloseCase{
		{
			name:            "zero channels closes immediately",
			giveNumChannels: 0,
			wantClosed:      true,
		},
		{
			name:            "one channel closes when it closes",
			giveNumChannels: 1,
			wantClosed:      true,
		},
		{
			name:            "two channels close when both close",
			giveNumChannels: 2,
			wantClosed:      true,
		},
		{
			name:                         "context cancelled then channels close",
			giveNumChannels:              2,
			giveContextCancelBeforeClose: true,
			wantClosed:                   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()

			if tt.giveContextCancelBeforeClose {
				var cancel context.CancelFunc

				ctx, cancel = context.WithCancel(ctx)
				cancel()
			}

			chans := make([]<-chan struct{}, 0, tt.giveNumChannels)
			readyChans := make([]chan struct{}, 0, tt.giveNumChannels)

			for range tt.giveNumChannels {
				ch := make(chan struct{})

				readyChans = append(readyChans, ch)
				chans = append(chans, ch)
			}

			out := allChannelsClose(ctx, logger, chans...)

			if tt.giveNumChannels == 0 {
				select {
				case <-out:
				case <-time.After(100 * time.Millisecond):
					t.Fatal("expected out channel to close immediately")
				}

				return
			}

			for _, ch := range readyChans {
				close(ch)
			}

			select {
			case <-out:
			case <-time.After(500 * time.Millisecond):
				t.Fatal("expected out channel to close after all input channels closed")
			}
		})
	}
}

func TestAssemble_RegistersChecks(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	state, pingers := newTestState(cfg)

	a, err := assemble(slog.Default(), cfg, state, pingers, fakeClients())
	require.NoError(t, err)
	require.Len(t, a.stages, 2)

	stats := state.GetAllStats()
	for _, name := range []string{"kube-api", "workspace-store", "workspace-reconciler", "http-server", "metrics-server"} {
		require.Contains(t, stats, name)
	}

	require.NotContains(t, stats, "metrics-api", "no metrics client, no metrics check")
}

func TestAssemble_InvalidSchedule(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.SweepSchedule = "not a schedule"
	state, pingers := newTestState(cfg)

	_, err := assemble(slog.Default(), cfg, state, pingers, fakeClients())
	require.Error(t, err)
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	state, pingers := newTestState(cfg)

	a, err := assemble(slog.Default(), cfg, state, pingers, fakeClients())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	errCh := make(chan error, 1)

	go func() {
		errCh <- a.Run(ctx)
	}()

	require.Eventually(t, state.IsReady, 5*time.Second, 10*time.Millisecond)
	require.Equal(t, appstate.StateRunning, state.GetState())

	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("app did not stop")
	}

	require.Equal(t, appstate.StateTerminated, state.GetState())
}

func TestSweepOnce(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	c := fakeClients(&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "kubedev-alice-old"}})
	store := k8s.NewStore(slog.Default(), c.dynamic, testNamespace)

	limits, err := workspace.MediumLimits("1", "2Gi", "10Gi")
	require.NoError(t, err)

	id, err := workspace.WorkspaceID("alice", "old")
	require.NoError(t, err)

	_, err = store.CreateWorkspaceCommand(t.Context(), &workspace.Workspace{
		ID:    id,
		Owner: "alice",
		Spec: workspace.Spec{
			Image:     "python:3.12",
			Ports:     []int32{8000},
			Tier:      workspace.TierMedium,
			Resources: limits,
		},
		Status: workspace.Status{Phase: workspace.PhasePending},
	})
	require.NoError(t, err)

	expired := time.Now().Add(-time.Hour).Truncate(time.Second)

	_, err = store.UpdateStatusCommand(t.Context(), id, func(ws *workspace.Workspace) error {
		ws.Status.Phase = workspace.PhaseStopped
		ws.Status.Namespace = "kubedev-alice-old"
		ws.Status.ExpiresAt = &expired

		return nil
	})
	require.NoError(t, err)

	report, err := sweepOnce(t.Context(), slog.Default(), cfg, c, true)
	require.NoError(t, err)
	require.True(t, report.DryRun)
	require.Equal(t, []string{id}, report.Candidates)
	require.Empty(t, report.Deleted)

	report, err = sweepOnce(t.Context(), slog.Default(), cfg, c, false)
	require.NoError(t, err)
	require.Equal(t, []string{id}, report.Deleted)
	require.Empty(t, report.Failed)

	_, err = store.GetWorkspaceQuery(t.Context(), id)

	var notFound *k8s.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestAPIRequesters(t *testing.T) {
	t.Parallel()

	got := apiRequesters(map[string]config.APIKey{
		"k1": {Role: workspace.RoleAdmin, User: "root"},
		"k2": {Role: workspace.RoleUser, User: "alice"},
	})

	require.Equal(t, map[string]workspace.Requester{
		"k1": {Name: "root", Role: workspace.RoleAdmin},
		"k2": {Name: "alice", Role: workspace.RoleUser},
	}, got)
}
