package workspace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/skillcoder/kubedev-controller/internal/infra/metrics"
)

// Readiness outcomes, also used as metric label values.
const (
	readinessReady    = "ready"
	readinessTimeout  = "timeout"
	readinessFailed   = "failed"
	readinessCanceled = "canceled"
)

var (
	errWorkloadNotReady = errors.New("workload has no ready replica")
	errWorkloadPresent  = errors.New("workload still present")
)

// startReadiness attaches a readiness poller to a Creating workspace unless one
// already runs.
func (s *Service) startReadiness(ctx context.Context, ws *Workspace) bool {
	id := ws.ID
	namespace := namespaceOf(ws)

	return s.jobs.Start(ctx, jobReadiness, id, func(ctx context.Context, logger *slog.Logger) {
		s.pollReadiness(ctx, logger, id, namespace)
	})
}

// pollReadiness checks the workload at a fixed interval until it reports a ready
// replica or the timeout elapses, then moves Creating to Running or Error.
// Platform errors while polling are treated as transient.
func (s *Service) pollReadiness(ctx context.Context, logger *slog.Logger, id, namespace string) {
	name := WorkloadName(id)
	attempts := uint(s.opts.ReadinessTimeout/s.opts.ReadinessInterval) + 1

	err := retry.Do(
		func() error {
			status, err := s.cluster.GetWorkloadStatusQuery(ctx, namespace, name)
			if err != nil {
				if isNotFound(err) {
					return errWorkloadNotReady
				}

				return fmt.Errorf("get workload status: %w", err)
			}

			if status.ReadyReplicas < 1 {
				return errWorkloadNotReady
			}

			return nil
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(s.opts.ReadinessInterval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.DebugContext(ctx, "workload not ready yet", "attempt", n+1, "reason", err)
		}),
	)

	if ctx.Err() != nil {
		metrics.RecordReadinessOutcome(readinessCanceled)
		logger.DebugContext(ctx, "readiness poll canceled")

		return
	}

	var (
		to      Phase
		message string
		outcome string
	)

	switch {
	case err == nil:
		to, message, outcome = PhaseRunning, "workspace is running and ready", readinessReady
	case errors.Is(err, errWorkloadNotReady):
		to, outcome = PhaseError, readinessTimeout
		message = fmt.Sprintf("%s: no ready replica after %s", ErrReadinessTimeout, s.opts.ReadinessTimeout)
	default:
		to, outcome = PhaseError, readinessFailed
		message = fmt.Sprintf("health check failed: %s", err)
	}

	metrics.RecordReadinessOutcome(outcome)

	_, err = s.store.UpdateStatusCommand(ctx, id, func(ws *Workspace) error {
		if ws.Status.Phase != PhaseCreating {
			return fmt.Errorf("%w: phase is %s", ErrConflict, ws.Status.Phase)
		}

		now := s.now()
		ws.Status.Phase = to
		ws.Status.Message = message
		ws.Status.LastTransitionAt = &now

		return nil
	})
	if err != nil {
		logger.WarnContext(ctx, "readiness result not recorded", "to", to, "reason", err)

		return
	}

	metrics.RecordTransition(string(PhaseCreating), string(to))
	logger.InfoContext(ctx, "readiness poll finished", "workspace", id, "to", to, "message", message)
}

// waitWorkloadGone blocks until the workload object is absent, up to the settle
// timeout.
func (s *Service) waitWorkloadGone(ctx context.Context, ws *Workspace) error {
	namespace := namespaceOf(ws)
	name := WorkloadName(ws.ID)
	attempts := uint(s.opts.RestartSettleTimeout/s.opts.RestartPollInterval) + 1

	err := retry.Do(
		func() error {
			_, err := s.cluster.GetWorkloadStatusQuery(ctx, namespace, name)
			if err == nil {
				return errWorkloadPresent
			}

			if isNotFound(err) {
				return nil
			}

			return fmt.Errorf("get workload status: %w", err)
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(s.opts.RestartPollInterval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("wait for workload removal: %w", ctx.Err())
		}

		return fmt.Errorf("%w: %s after %s: %w", ErrRestartSettle, name, s.opts.RestartSettleTimeout, err)
	}

	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
