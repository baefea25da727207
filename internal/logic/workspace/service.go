package workspace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/skillcoder/kubedev-controller/internal/infra/metrics"
)

// Options tunes the reconciler timings.
type Options struct {
	ResyncInterval       time.Duration
	ReadinessInterval    time.Duration
	ReadinessTimeout     time.Duration
	RestartSettleDelay   time.Duration
	RestartSettleTimeout time.Duration
	RestartPollInterval  time.Duration
	DefaultExpiry        time.Duration
}

func (o Options) withDefaults() Options {
	if o.ResyncInterval <= 0 {
		o.ResyncInterval = 5 * time.Minute
	}

	if o.ReadinessInterval <= 0 {
		o.ReadinessInterval = DefaultReadinessInterval
	}

	if o.ReadinessTimeout <= 0 {
		o.ReadinessTimeout = DefaultReadinessTimeout
	}

	if o.RestartSettleDelay < 0 {
		o.RestartSettleDelay = DefaultRestartSettleDelay
	}

	if o.RestartSettleTimeout <= 0 {
		o.RestartSettleTimeout = DefaultRestartSettleTimeout
	}

	if o.RestartPollInterval <= 0 {
		o.RestartPollInterval = 2 * time.Second
	}

	if o.DefaultExpiry <= 0 {
		o.DefaultExpiry = DefaultExpiry
	}

	return o
}

// Service is the workspace reconciler: it owns the status of every Workspace
// record and drives it through the phase state machine.
type Service struct {
	logger               *slog.Logger
	store                Store
	cluster              Cluster
	provisioner          *Provisioner
	opts                 Options
	jobs                 *jobRunner
	guard                *inflightGuard
	now                  func() time.Time
	ready                chan struct{}
	doneCh               chan struct{}
	started              atomic.Bool
	inShutdown           atomic.Bool
	mu                   sync.RWMutex
	lastReconcileEndTime time.Time
}

// New creates a new reconciler service.
func New(
	logger *slog.Logger,
	store Store,
	cluster Cluster,
	provisioner *Provisioner,
	opts Options,
) *Service {
	s := &Service{
		logger:      logger.With("component", "reconciler"),
		store:       store,
		cluster:     cluster,
		provisioner: provisioner,
		opts:        opts.withDefaults(),
		jobs:        newJobRunner(logger),
		guard:       newInflightGuard(),
		now:         time.Now,
		ready:       make(chan struct{}),
		doneCh:      make(chan struct{}),
	}

	// The reconcile age counts from creation until the first pass completes.
	s.lastReconcileEndTime = time.Now()

	return s
}

// Name returns the name of the reconciler component.
func (s *Service) Name() string {
	return "workspace-reconciler"
}

func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "reconciler is shutting down, skipping start")

		return nil
	}

	s.started.Store(true)

	go s.RunCommand(ctx)

	return nil
}

func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

func (s *Service) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
		age := s.getLastReconcileAge()
		if age > 2*s.opts.ResyncInterval {
			return fmt.Errorf("last reconcile was too long ago: %s", age.Round(time.Second).String())
		}

		return nil
	default:
		return fmt.Errorf("reconciler is not ready")
	}
}

func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "reconciler is already shutting down, skipping shutdown")

		return nil
	}

	defer func() {
		s.logger.InfoContext(ctx, "reconciler shut downed")
	}()

	s.logger.InfoContext(ctx, "shutting down reconciler")

	if s.started.Load() {
		select {
		case <-ctx.Done():
			return fmt.Errorf("shutdown context done before reconcile loop exited: %w", ctx.Err())
		case <-s.doneCh:
			s.logger.InfoContext(ctx, "reconcile loop exited")
		}
	}

	return s.jobs.Shutdown(ctx)
}

// RunCommand resyncs all workspaces on the configured interval until ctx is done.
func (s *Service) RunCommand(ctx context.Context) {
	defer close(s.doneCh)

	logger := s.logger.With("controller", "RunCommand")

	ticker := time.NewTicker(s.opts.ResyncInterval)
	defer ticker.Stop()

	close(s.ready)

	for {
		err := s.ReconcileCommand(ctx)
		if err != nil {
			logger.ErrorContext(ctx, "reconcile error", "reason", err)
		}

		s.setLastReconcileEndTime()

		select {
		case <-ticker.C:
		case <-ctx.Done():
			logger.InfoContext(ctx, "terminating reconcile loop")

			return
		}
	}
}

// ReconcileCommand runs one resync pass: pending workspaces are provisioned and
// creating ones without a readiness poller get one.
func (s *Service) ReconcileCommand(ctx context.Context) error {
	logger := s.logger.With("controller", "ReconcileCommand")

	items, err := s.store.ListWorkspacesQuery(ctx, ListFilter{
		Phases: []Phase{PhasePending, PhaseCreating},
	})
	if err != nil {
		return fmt.Errorf("list workspaces: %w", err)
	}

	logger.DebugContext(ctx, "reconciling workspaces", "count", len(items))

	for i := range items {
		select {
		case <-ctx.Done():
			logger.InfoContext(ctx, "context done, stopping reconciliation")

			return nil
		default:
		}

		s.reconcileOne(ctx, logger, &items[i])
	}

	return nil
}

func (s *Service) reconcileOne(ctx context.Context, logger *slog.Logger, ws *Workspace) {
	logger = logger.With("workspace", ws.ID, "phase", ws.Status.Phase)

	release, ok := s.guard.tryAcquire(ws.ID)
	if !ok {
		logger.DebugContext(ctx, "workspace has an action in flight, skipping")

		return
	}
	defer release()

	switch {
	case ws.Status.Phase == PhasePending || ws.Status.Phase == "":
		if _, err := s.ProvisionCommand(ctx, ws.ID); err != nil {
			logger.ErrorContext(ctx, "provision pending workspace", "reason", err)
		}
	case ws.Status.Phase == PhaseCreating && ws.Status.Address == "":
		if _, err := s.ProvisionCommand(ctx, ws.ID); err != nil {
			logger.ErrorContext(ctx, "resume provisioning", "reason", err)
		}
	case ws.Status.Phase == PhaseCreating:
		if s.startReadiness(ctx, ws) {
			logger.InfoContext(ctx, "readiness poller re-attached")
		}
	}
}

// Get returns the workspace record.
func (s *Service) Get(ctx context.Context, id string) (*Workspace, error) {
	ws, err := s.store.GetWorkspaceQuery(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}

		return nil, fmt.Errorf("get workspace: %w", err)
	}

	return ws, nil
}

// TryBegin marks id as having a mutating action in flight. The returned func
// releases it; ok is false when another action already runs.
func (s *Service) TryBegin(id string) (func(), bool) {
	return s.guard.tryAcquire(id)
}

// transition moves the workspace to phase to, validating the change against the
// transition table, and applies mutate within the same status write.
func (s *Service) transition(
	ctx context.Context,
	id string,
	to Phase,
	message string,
	mutate func(ws *Workspace),
) (*Workspace, error) {
	var from Phase

	ws, err := s.store.UpdateStatusCommand(ctx, id, func(ws *Workspace) error {
		from = ws.Status.Phase
		if err := checkTransition(from, to); err != nil {
			return err
		}

		now := s.now()
		ws.Status.Phase = to
		ws.Status.Message = message
		ws.Status.LastTransitionAt = &now

		if mutate != nil {
			mutate(ws)
		}

		return nil
	})
	if err != nil {
		return nil, s.storeError(id, err)
	}

	metrics.RecordTransition(string(from), string(to))
	s.logger.InfoContext(ctx, "workspace phase changed",
		"workspace", id,
		"from", from,
		"to", to,
		"message", message,
	)

	return ws, nil
}

// fail moves the workspace to Error with message kept verbatim. Error is
// reachable from every phase, so no transition check applies.
func (s *Service) fail(ctx context.Context, id, message string) (*Workspace, error) {
	var from Phase

	ws, err := s.store.UpdateStatusCommand(ctx, id, func(ws *Workspace) error {
		from = ws.Status.Phase
		now := s.now()
		ws.Status.Phase = PhaseError
		ws.Status.Message = message
		ws.Status.LastTransitionAt = &now

		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to record workspace error",
			"workspace", id,
			"message", message,
			"reason", err,
		)

		return nil, s.storeError(id, err)
	}

	if from != PhaseError {
		metrics.RecordTransition(string(from), string(PhaseError))
	}

	s.logger.WarnContext(ctx, "workspace failed", "workspace", id, "from", from, "message", message)

	return ws, nil
}

func (s *Service) storeError(id string, err error) error {
	if isNotFound(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if errors.Is(err, ErrInvalidTransition) || errors.Is(err, ErrConflict) {
		return err
	}

	return fmt.Errorf("update workspace status: %w", err)
}

func (s *Service) getLastReconcileAge() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return time.Since(s.lastReconcileEndTime)
}

func (s *Service) setLastReconcileEndTime() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastReconcileEndTime = time.Now()
}

// inflightGuard admits at most one mutating action per workspace id.
type inflightGuard struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func newInflightGuard() *inflightGuard {
	return &inflightGuard{ids: make(map[string]struct{})}
}

func (g *inflightGuard) tryAcquire(id string) (func(), bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.ids[id]; busy {
		return nil, false
	}

	g.ids[id] = struct{}{}

	var once sync.Once

	return func() {
		once.Do(func() {
			g.mu.Lock()
			defer g.mu.Unlock()

			delete(g.ids, id)
		})
	}, true
}
