package workspace

import (
	"context"
	"fmt"

	"github.com/skillcoder/kubedev-controller/internal/infra/metrics"
)

// SweepReport summarizes one expiry sweep.
type SweepReport struct {
	DryRun     bool     `json:"dryRun"`
	Candidates []string `json:"candidates"`
	Deleted    []string `json:"deleted"`
	Failed     []string `json:"failed"`
	Skipped    []string `json:"skipped"`
}

// SweepExpiredCommand deletes every Running or Stopped workspace whose expiry has
// passed, namespace included. A failure on one workspace never stops the sweep.
// With dryRun set nothing is deleted and only the candidates are reported.
func (s *Service) SweepExpiredCommand(ctx context.Context, dryRun bool) (*SweepReport, error) {
	logger := s.logger.With("controller", "SweepExpiredCommand", "dryRun", dryRun)

	items, err := s.store.ListWorkspacesQuery(ctx, ListFilter{
		Phases:        []Phase{PhaseRunning, PhaseStopped},
		ExpiredBefore: s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("list expired workspaces: %w", err)
	}

	report := &SweepReport{
		DryRun:     dryRun,
		Candidates: make([]string, 0, len(items)),
		Deleted:    []string{},
		Failed:     []string{},
		Skipped:    []string{},
	}

	for i := range items {
		id := items[i].ID
		report.Candidates = append(report.Candidates, id)

		if dryRun {
			continue
		}

		release, ok := s.guard.tryAcquire(id)
		if !ok {
			logger.InfoContext(ctx, "expired workspace busy, skipping", "workspace", id)
			report.Skipped = append(report.Skipped, id)

			continue
		}

		err := s.DeleteCommand(ctx, id, true)

		release()

		if err != nil {
			logger.ErrorContext(ctx, "delete expired workspace", "workspace", id, "reason", err)
			report.Failed = append(report.Failed, fmt.Sprintf("%s: %s", id, err))

			continue
		}

		metrics.RecordSweepDeletion()

		report.Deleted = append(report.Deleted, id)
	}

	logger.InfoContext(ctx, "expiry sweep finished",
		"candidates", len(report.Candidates),
		"deleted", len(report.Deleted),
		"failed", len(report.Failed),
		"skipped", len(report.Skipped),
	)

	return report, nil
}
