package pinger

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errUnreachable = errors.New("unreachable")

type fakePinger struct {
	name  string
	fail  atomic.Bool
	delay time.Duration
	calls atomic.Int32
}

func (f *fakePinger) Name() string {
	return f.name
}

func (f *fakePinger) Ping(ctx context.Context) error {
	f.calls.Add(1)

	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(f.delay):
		}
	}

	if f.fail.Load() {
		return errUnreachable
	}

	return nil
}

type tunedPinger struct {
	fakePinger

	readyCritical  bool
	healthCritical bool
	timeout        time.Duration
}

func (p *tunedPinger) PingerReadyCritical() bool {
	return p.readyCritical
}

func (p *tunedPinger) PingerCritical() bool {
	return p.healthCritical
}

func (p *tunedPinger) PingerTimeout() time.Duration {
	return p.timeout
}

func failing(name string) *fakePinger {
	p := &fakePinger{name: name}
	p.fail.Store(true)

	return p
}

func TestService_Register(t *testing.T) {
	t.Parallel()

	t.Run("valid pinger", func(t *testing.T) {
		t.Parallel()

		s := New(slog.Default(), time.Second)
		require.NoError(t, s.Register(&fakePinger{name: "kube-api"}))

		stats, err := s.GetStats("kube-api")
		require.NoError(t, err)
		require.True(t, stats.ReadyCritical)
		require.True(t, stats.HealthCritical)
		require.Empty(t, stats.LastLatency)
	})

	t.Run("nil pinger", func(t *testing.T) {
		t.Parallel()

		require.ErrorIs(t, New(slog.Default(), time.Second).Register(nil), ErrPingerNil)
	})

	t.Run("duplicate name", func(t *testing.T) {
		t.Parallel()

		s := New(slog.Default(), time.Second)
		require.NoError(t, s.Register(&fakePinger{name: "kube-api"}))
		require.ErrorIs(t, s.Register(&fakePinger{name: "kube-api"}), ErrPingerAlreadyRegistered)
	})

	t.Run("unknown stats", func(t *testing.T) {
		t.Parallel()

		_, err := New(slog.Default(), time.Second).GetStats("nope")
		require.ErrorIs(t, err, ErrPingerNotFound)
	})
}

func TestService_ReadyAndHealthy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		give          Pinger
		giveRuns      int
		wantIsReady   bool
		wantIsHealthy bool
	}{
		{
			name:          "not run yet is not ready",
			give:          &fakePinger{name: "a"},
			giveRuns:      0,
			wantIsReady:   false,
			wantIsHealthy: true,
		},
		{
			name:          "passing check",
			give:          &fakePinger{name: "a"},
			giveRuns:      1,
			wantIsReady:   true,
			wantIsHealthy: true,
		},
		{
			name:          "one failure is not ready but still healthy",
			give:          failing("a"),
			giveRuns:      1,
			wantIsReady:   false,
			wantIsHealthy: true,
		},
		{
			name:          "repeated failures are unhealthy",
			give:          failing("a"),
			giveRuns:      failureThreshold,
			wantIsReady:   false,
			wantIsHealthy: false,
		},
		{
			name: "non critical failures count for nothing",
			give: &tunedPinger{
				fakePinger: fakePinger{name: "metrics-api"},
			},
			giveRuns:      failureThreshold,
			wantIsReady:   true,
			wantIsHealthy: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tp, ok := tt.give.(*tunedPinger); ok {
				tp.fail.Store(true)
			}

			s := New(slog.Default(), time.Second)
			require.NoError(t, s.Register(tt.give))

			for range tt.giveRuns {
				s.runChecks(t.Context())
			}

			require.Equal(t, tt.wantIsReady, s.IsReady())
			require.Equal(t, tt.wantIsHealthy, s.IsHealthy())
		})
	}
}

func TestService_RecoveryResetsFailures(t *testing.T) {
	t.Parallel()

	p := failing("workspace-store")
	s := New(slog.Default(), time.Second)
	require.NoError(t, s.Register(p))

	for range failureThreshold {
		s.runChecks(t.Context())
	}

	require.False(t, s.IsHealthy())

	p.fail.Store(false)
	s.runChecks(t.Context())

	stats, err := s.GetStats("workspace-store")
	require.NoError(t, err)
	require.True(t, stats.IsReady)
	require.True(t, stats.IsHealthy)
	require.Equal(t, uint64(failureThreshold), stats.ErrorCount)
	require.Equal(t, uint64(1), stats.SuccessCount)
	require.Zero(t, stats.ConsecutiveFailures)
	require.Empty(t, stats.LastError)
	require.False(t, stats.LastSuccess.IsZero())
}

func TestService_PingerTimeout(t *testing.T) {
	t.Parallel()

	slow := &tunedPinger{
		fakePinger:     fakePinger{name: "slow", delay: 200 * time.Millisecond},
		readyCritical:  true,
		healthCritical: true,
		timeout:        20 * time.Millisecond,
	}

	s := New(slog.Default(), time.Second)
	require.NoError(t, s.Register(slow))

	s.runChecks(t.Context())

	stats, err := s.GetStats("slow")
	require.NoError(t, err)
	require.Equal(t, uint64(1), stats.ErrorCount)
	require.Contains(t, stats.LastError, context.DeadlineExceeded.Error())
}

func TestService_GetAllStats(t *testing.T) {
	t.Parallel()

	s := New(slog.Default(), time.Second)

	for i := range 3 {
		require.NoError(t, s.Register(&fakePinger{name: "check" + strconv.Itoa(i)}))
	}

	s.runChecks(t.Context())

	all := s.GetAllStats()
	require.Len(t, all, 3)

	for name, stats := range all {
		require.Equal(t, uint64(1), stats.SuccessCount, name)
	}
}

func TestService_StartShutdown(t *testing.T) {
	t.Parallel()

	p := &fakePinger{name: "kube-api"}
	s := New(slog.Default(), 20*time.Millisecond)
	require.NoError(t, s.Register(p))

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	require.NoError(t, s.Start(ctx))

	select {
	case <-s.Ready():
	case <-time.After(time.Second):
		t.Fatal("pinger service did not become ready")
	}

	require.True(t, s.IsReady())

	require.Eventually(t, func() bool { return p.calls.Load() >= 3 }, time.Second, 10*time.Millisecond)

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()

	require.NoError(t, s.Shutdown(shutdownCtx))
	require.NoError(t, s.Shutdown(shutdownCtx))
}

func TestService_ShutdownWithoutStart(t *testing.T) {
	t.Parallel()

	require.NoError(t, New(slog.Default(), time.Second).Shutdown(t.Context()))
}
