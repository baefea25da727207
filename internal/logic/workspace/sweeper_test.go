package workspace_test

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/kubedev-controller/internal/infra/cronparser"
	"github.com/skillcoder/kubedev-controller/internal/logic/workspace"
)

// everyFewMillis fires shortly after every call.
type everyFewMillis struct{}

func (everyFewMillis) NextAfter(_, _ string, after time.Time) (time.Time, error) {
	return after.Add(5 * time.Millisecond), nil
}

type countingSweeper struct {
	calls atomic.Int32
}

func (c *countingSweeper) SweepExpiredCommand(context.Context, bool) (*workspace.SweepReport, error) {
	if c.calls.Add(1)%2 == 0 {
		return nil, errors.New("list failed")
	}

	return &workspace.SweepReport{}, nil
}

func TestSweeper_RunsOnSchedule(t *testing.T) {
	t.Parallel()

	target := &countingSweeper{}

	sweeper, err := workspace.NewSweeper(slog.Default(), everyFewMillis{}, target, "@every-few-ms", "")
	require.NoError(t, err)
	require.Equal(t, "expiry-sweeper", sweeper.Name())

	ctx, cancel := context.WithCancel(t.Context())

	require.NoError(t, sweeper.Start(ctx))
	<-sweeper.Ready()

	require.Eventually(t, func() bool {
		return target.calls.Load() >= 3
	}, waitFor, tick, "sweeps keep running after a failed one")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), waitFor)
	defer shutdownCancel()

	require.NoError(t, sweeper.Shutdown(shutdownCtx))
}

func TestNewSweeper_InvalidSchedule(t *testing.T) {
	t.Parallel()

	_, err := workspace.NewSweeper(slog.Default(), cronparser.New(), &countingSweeper{}, "every minute", "")
	require.Error(t, err)

	_, err = workspace.NewSweeper(slog.Default(), cronparser.New(), &countingSweeper{}, "*/15 * * * *", "Europe/Berlin")
	require.NoError(t, err)
}
