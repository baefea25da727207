package workspace

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/skillcoder/kubedev-controller/internal/infra/metrics"
)

// phaseDeleted labels the final transition metric of a removed record.
const phaseDeleted = "Deleted"

// ProvisionCommand moves the workspace to Creating and materializes its resources.
// On success the phase stays Creating until the readiness poller resolves it.
// A provisioning failure moves the workspace to Error with the failure verbatim;
// the failed record is returned along with the error.
func (s *Service) ProvisionCommand(ctx context.Context, id string) (*Workspace, error) {
	ws, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if ws.Status.Phase != PhaseCreating {
		ws, err = s.transition(ctx, id, PhaseCreating, "provisioning workspace resources", func(ws *Workspace) {
			if ws.Status.Namespace == "" {
				ws.Status.Namespace = NamespaceName(ws.ID)
			}
		})
		if err != nil {
			return nil, err
		}
	}

	result, err := s.provisioner.Provision(ctx, ws)
	if err != nil {
		failed, ferr := s.fail(ctx, id, err.Error())
		if ferr != nil {
			return nil, err
		}

		return failed, err
	}

	ws, err = s.store.UpdateStatusCommand(ctx, id, func(ws *Workspace) error {
		if ws.Status.Phase != PhaseCreating {
			return fmt.Errorf("%w: phase changed to %s during provisioning", ErrConflict, ws.Status.Phase)
		}

		now := s.now()
		ws.Status.Address = result.Address
		ws.Status.Message = "waiting for workload readiness"
		ws.Status.StartedAt = &now
		ws.Status.StoppedAt = nil

		if ws.Status.ExpiresAt == nil {
			expires := now.Add(s.opts.DefaultExpiry)
			ws.Status.ExpiresAt = &expires
		}

		return nil
	})
	if err != nil {
		return nil, s.storeError(id, err)
	}

	s.startReadiness(ctx, ws)

	return ws, nil
}

// StartCommand brings a workspace back up. Running and Creating workspaces are
// left untouched. A Stopped workspace whose workload still exists flips to
// Running; everything else is provisioned again.
func (s *Service) StartCommand(ctx context.Context, id string) (*Workspace, error) {
	ws, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch ws.Status.Phase {
	case PhaseRunning, PhaseCreating:
		return ws, nil
	case PhaseStopped:
		present, err := s.provisioner.WorkloadPresent(ctx, ws)
		if err != nil {
			failed, ferr := s.fail(ctx, id, fmt.Sprintf("start failed: %s", err))
			if ferr != nil {
				return nil, fmt.Errorf("start workspace: %w", err)
			}

			return failed, fmt.Errorf("start workspace: %w", err)
		}

		if present {
			return s.transition(ctx, id, PhaseRunning, "workspace started", func(ws *Workspace) {
				now := s.now()
				ws.Status.StartedAt = &now
				ws.Status.StoppedAt = nil
			})
		}
	}

	return s.ProvisionCommand(ctx, id)
}

// StopCommand tears the workload down and keeps namespace, quota and volume.
// Stopping a Stopped workspace is a no-op.
func (s *Service) StopCommand(ctx context.Context, id string) (*Workspace, error) {
	ws, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if ws.Status.Phase == PhaseStopped {
		return ws, nil
	}

	if err := checkTransition(ws.Status.Phase, PhaseStopped); err != nil {
		return nil, err
	}

	s.jobs.Cancel(ctx, jobReadiness, id)

	if err := s.provisioner.Teardown(ctx, ws); err != nil {
		if _, ferr := s.fail(ctx, id, fmt.Sprintf("stop failed: %s", err)); ferr != nil {
			s.logger.ErrorContext(ctx, "record stop failure", "workspace", id, "reason", ferr)
		}

		return nil, fmt.Errorf("stop workspace: %w", err)
	}

	return s.transition(ctx, id, PhaseStopped, "workspace stopped", func(ws *Workspace) {
		now := s.now()
		ws.Status.StoppedAt = &now
	})
}

// RestartCommand runs stop, settle and start as a background job. The job owns
// release and calls it when done. It returns false when a restart already runs.
func (s *Service) RestartCommand(ctx context.Context, id string, release func()) bool {
	started := s.jobs.Start(ctx, jobRestart, id, func(ctx context.Context, logger *slog.Logger) {
		defer release()

		s.restart(ctx, logger, id)
	})
	if !started {
		release()
	}

	return started
}

func (s *Service) restart(ctx context.Context, logger *slog.Logger, id string) {
	ws, err := s.StopCommand(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "restart: stop failed", "reason", err)

		return
	}

	if err := sleepContext(ctx, s.opts.RestartSettleDelay); err != nil {
		logger.InfoContext(ctx, "restart canceled during settle delay")

		return
	}

	if err := s.waitWorkloadGone(ctx, ws); err != nil {
		if ctx.Err() != nil {
			logger.InfoContext(ctx, "restart canceled while waiting for workload removal")

			return
		}

		logger.ErrorContext(ctx, "restart: workload did not go away", "reason", err)

		if _, ferr := s.fail(ctx, id, err.Error()); ferr != nil {
			logger.ErrorContext(ctx, "record restart failure", "reason", ferr)
		}

		return
	}

	if _, err := s.StartCommand(ctx, id); err != nil {
		logger.ErrorContext(ctx, "restart: start failed", "reason", err)

		return
	}

	logger.InfoContext(ctx, "workspace restarted", "workspace", id)
}

// DeleteCommand cancels background work, removes every dependent resource and
// finally the record. When cleanup fails the record is kept in Error.
func (s *Service) DeleteCommand(ctx context.Context, id string, deleteNamespace bool) error {
	ws, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	s.jobs.Cancel(ctx, jobReadiness, id)

	if err := s.provisioner.Purge(ctx, ws, deleteNamespace); err != nil {
		if _, ferr := s.fail(ctx, id, fmt.Sprintf("delete failed: %s", err)); ferr != nil {
			s.logger.ErrorContext(ctx, "record delete failure", "workspace", id, "reason", ferr)
		}

		return fmt.Errorf("purge workspace resources: %w", err)
	}

	err = s.store.DeleteWorkspaceCommand(ctx, id)
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("delete workspace record: %w", err)
	}

	metrics.RecordTransition(string(ws.Status.Phase), phaseDeleted)
	s.logger.InfoContext(ctx, "workspace deleted",
		"workspace", id,
		"namespace", namespaceOf(ws),
		"deleteNamespace", deleteNamespace,
	)

	return nil
}

