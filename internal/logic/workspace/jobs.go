package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/skillcoder/kubedev-controller/internal/infra/metrics"
)

// Background job kinds.
const (
	jobReadiness = "readiness"
	jobRestart   = "restart"
)

type job struct {
	runID  string
	cancel context.CancelFunc
	done   chan struct{}
}

// jobRunner supervises detached background jobs keyed by kind and workspace id.
// At most one job runs per key.
type jobRunner struct {
	logger *slog.Logger
	mu     sync.Mutex
	jobs   map[string]*job
	wg     sync.WaitGroup
	closed bool
}

func newJobRunner(logger *slog.Logger) *jobRunner {
	return &jobRunner{
		logger: logger.With("component", "jobs"),
		jobs:   make(map[string]*job),
	}
}

func jobKey(kind, id string) string {
	return kind + "/" + id
}

// Start launches fn unless a job with the same key is running. The job context
// survives cancellation of parent but keeps its values.
func (r *jobRunner) Start(
	parent context.Context,
	kind,
	id string,
	fn func(ctx context.Context, logger *slog.Logger),
) bool {
	key := jobKey(kind, id)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false
	}

	if _, exists := r.jobs[key]; exists {
		r.logger.DebugContext(parent, "job already running", "job", key)

		return false
	}

	ctx, cancel := context.WithCancel(context.WithoutCancel(parent))
	j := &job{
		runID:  uuid.NewString(),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	r.jobs[key] = j

	logger := r.logger.With("job", key, "runID", j.runID)

	r.wg.Add(1)
	metrics.SetActiveJobs(len(r.jobs))

	go func() {
		defer r.wg.Done()
		defer close(j.done)
		defer r.release(key, j)
		defer cancel()

		logger.DebugContext(ctx, "job started")
		fn(ctx, logger)
		logger.DebugContext(ctx, "job finished")
	}()

	return true
}

// Cancel stops the job for key and waits for it to exit.
func (r *jobRunner) Cancel(ctx context.Context, kind, id string) {
	key := jobKey(kind, id)

	r.mu.Lock()
	j, exists := r.jobs[key]
	r.mu.Unlock()

	if !exists {
		return
	}

	j.cancel()

	select {
	case <-j.done:
	case <-ctx.Done():
	}
}

// Running reports whether a job is active for key.
func (r *jobRunner) Running(kind, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.jobs[jobKey(kind, id)]

	return exists
}

// Shutdown cancels every job and waits for them to exit.
func (r *jobRunner) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	r.closed = true

	for _, j := range r.jobs {
		j.cancel()
	}
	r.mu.Unlock()

	done := make(chan struct{})

	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait for background jobs: %w", ctx.Err())
	}
}

func (r *jobRunner) release(key string, j *job) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.jobs[key]; ok && current == j {
		delete(r.jobs, key)
	}

	metrics.SetActiveJobs(len(r.jobs))
}
