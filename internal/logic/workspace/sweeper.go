package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"
)

type scheduleParser interface {
	NextAfter(spec, tz string, after time.Time) (time.Time, error)
}

type expirySweeper interface {
	SweepExpiredCommand(ctx context.Context, dryRun bool) (*SweepReport, error)
}

// Sweeper runs the expiry sweep on a cron schedule.
type Sweeper struct {
	logger     *slog.Logger
	parser     scheduleParser
	sweeper    expirySweeper
	schedule   string
	tz         string
	ready      chan struct{}
	doneCh     chan struct{}
	inShutdown atomic.Bool
}

// NewSweeper creates the scheduled expiry sweeper. The schedule is parsed
// once up front so a malformed spec fails at startup.
func NewSweeper(
	logger *slog.Logger,
	parser scheduleParser,
	sweeper expirySweeper,
	schedule,
	tz string,
) (*Sweeper, error) {
	if _, err := parser.NextAfter(schedule, tz, time.Now()); err != nil {
		return nil, fmt.Errorf("validate sweep schedule: %w", err)
	}

	return &Sweeper{
		logger:   logger.With("component", "expiry-sweeper", "schedule", schedule),
		parser:   parser,
		sweeper:  sweeper,
		schedule: schedule,
		tz:       tz,
		ready:    make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

func (s *Sweeper) Name() string {
	return "expiry-sweeper"
}

func (s *Sweeper) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		return nil
	}

	go s.run(ctx)

	return nil
}

func (s *Sweeper) Ready() <-chan struct{} {
	return s.ready
}

func (s *Sweeper) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		return nil
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before sweeper exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "expiry sweeper stopped")

		return nil
	}
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.doneCh)

	close(s.ready)

	for {
		next, err := s.parser.NextAfter(s.schedule, s.tz, time.Now())
		if err != nil {
			s.logger.ErrorContext(ctx, "compute next sweep time", "reason", err)

			return
		}

		s.logger.DebugContext(ctx, "next expiry sweep scheduled", "at", next)

		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()

			return
		case <-timer.C:
		}

		if _, err := s.sweeper.SweepExpiredCommand(ctx, false); err != nil {
			s.logger.ErrorContext(ctx, "expiry sweep failed", "reason", err)
		}
	}
}
