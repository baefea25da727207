package pinger

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"sync/atomic"
	"time"

	"github.com/skillcoder/kubedev-controller/internal/infra/metrics"
	"github.com/skillcoder/kubedev-controller/internal/infra/shutdown"
)

const (
	defaultPingTimeout = time.Second
	// failureThreshold consecutive failures turn a health-critical check unhealthy.
	failureThreshold = 3
)

type check struct {
	pinger         Pinger
	readyCritical  bool
	healthCritical bool
	timeout        time.Duration
	stats          stats
}

// Service runs the registered health checks on an interval and aggregates
// their results into readiness and liveness.
type Service struct {
	logger     *slog.Logger
	interval   time.Duration
	checks     map[string]*check
	mu         sync.RWMutex
	ready      chan struct{}
	started    atomic.Bool
	inShutdown atomic.Bool
	doneCh     chan struct{}
	wg         sync.WaitGroup
}

// New creates a new pinger service with the specified interval.
func New(logger *slog.Logger, interval time.Duration) *Service {
	return &Service{
		logger:   logger.With("component", "pinger"),
		interval: interval,
		checks:   make(map[string]*check),
		ready:    make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

var _ shutdown.Shutdowner = (*Service)(nil)

func (s *Service) Name() string {
	return "pinger-service"
}

// Register adds a health check. Checks are ready and health critical unless
// the pinger says otherwise.
func (s *Service) Register(p Pinger) error {
	if p == nil {
		return fmt.Errorf("register pinger: %w", ErrPingerNil)
	}

	name := p.Name()

	c := &check{
		pinger:         p,
		readyCritical:  true,
		healthCritical: true,
		timeout:        defaultPingTimeout,
	}

	if rc, ok := p.(readyCriticalPinger); ok {
		c.readyCritical = rc.PingerReadyCritical()
	}

	if hc, ok := p.(healthCriticalPinger); ok {
		c.healthCritical = hc.PingerCritical()
	}

	if tp, ok := p.(timeoutPinger); ok && tp.PingerTimeout() > 0 {
		c.timeout = tp.PingerTimeout()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.checks[name]; exists {
		return fmt.Errorf("register pinger %s: %w", name, ErrPingerAlreadyRegistered)
	}

	s.checks[name] = c

	s.logger.Info("pinger registered",
		"name", name,
		"readyCritical", c.readyCritical,
		"healthCritical", c.healthCritical,
		"timeout", c.timeout,
	)

	return nil
}

func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "pinger service is shutting down, skipping start")

		return nil
	}

	s.started.Store(true)

	go s.run(ctx)

	return nil
}

func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "pinger service is already shutting down, skipping shutdown")

		return nil
	}

	s.logger.InfoContext(ctx, "shutting down pinger service")

	if s.started.Load() {
		select {
		case <-ctx.Done():
			return fmt.Errorf("shutdown context done before pinger loop exited: %w", ctx.Err())
		case <-s.doneCh:
		}
	}

	s.wg.Wait()

	s.logger.InfoContext(ctx, "pinger service shut downed")

	return nil
}

// GetStats returns the statistics of one check.
func (s *Service) GetStats(name string) (*Statistics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.checks[name]
	if !ok {
		return nil, fmt.Errorf("get stats: %w: %s", ErrPingerNotFound, name)
	}

	return c.snapshot(failureThreshold), nil
}

// GetAllStats returns a copy of the statistics of every check.
func (s *Service) GetAllStats() map[string]*Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]*Statistics, len(s.checks))
	for name, c := range s.checks {
		out[name] = c.snapshot(failureThreshold)
	}

	return out
}

// IsReady reports whether every ready-critical check passed on its last run.
func (s *Service) IsReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.checks {
		if c.readyCritical && !c.stats.ready() {
			return false
		}
	}

	return true
}

// IsHealthy reports whether no health-critical check keeps failing.
func (s *Service) IsHealthy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.checks {
		if c.healthCritical && !c.stats.healthy(failureThreshold) {
			return false
		}
	}

	return true
}

func (s *Service) run(ctx context.Context) {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runChecks(ctx)

	close(s.ready)

	for {
		if s.inShutdown.Load() {
			s.logger.InfoContext(ctx, "terminating pinger loop")

			return
		}

		select {
		case <-ticker.C:
			s.runChecks(ctx)
		case <-ctx.Done():
			s.logger.InfoContext(ctx, "terminating pinger loop")

			return
		}
	}
}

// runChecks pings every registered check in parallel and waits for them.
func (s *Service) runChecks(ctx context.Context) {
	s.mu.RLock()
	checks := maps.Clone(s.checks)
	s.mu.RUnlock()

	var wg sync.WaitGroup

	for name, c := range checks {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		s.wg.Add(1)

		go func() {
			defer wg.Done()
			defer s.wg.Done()

			s.ping(ctx, name, c)
		}()
	}

	wg.Wait()
}

func (s *Service) ping(ctx context.Context, name string, c *check) {
	pingCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	err := c.pinger.Ping(pingCtx)
	latency := time.Since(start)

	s.mu.Lock()
	c.stats.record(time.Now(), latency, err)
	s.mu.Unlock()

	metrics.RecordHealthCheck(name, err == nil, latency)

	if err != nil {
		s.logger.DebugContext(ctx, "pinger error", "name", name, "latency", latency, "reason", err)

		return
	}

	s.logger.DebugContext(ctx, "pinger success", "name", name, "latency", latency)
}
