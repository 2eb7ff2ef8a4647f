package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"job_aggregator/internal/domain"
	"job_aggregator/internal/metrics"
)

var ErrCycleRunning = errors.New("aggregation cycle already running")

// Cycle runs one aggregate -> merge -> notify pass.
type Cycle interface {
	Run(ctx context.Context) (*domain.CycleStats, error)
}

type State int32

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

type Scheduler struct {
	cycle    Cycle
	schedule cron.Schedule
	timeout  time.Duration
	metrics  *metrics.Metrics
	logger   *slog.Logger
	state    atomic.Int32
	now      func() time.Time
}

// NewScheduler parses spec as a standard cron expression or descriptor
// ("@every 6h", "@hourly", "0 */6 * * *").
func NewScheduler(cycle Cycle, spec string, timeout time.Duration, m *metrics.Metrics, logger *slog.Logger) (*Scheduler, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse schedule %q: %w", spec, err)
	}

	return &Scheduler{
		cycle:    cycle,
		schedule: schedule,
		timeout:  timeout,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
	}, nil
}

func (s *Scheduler) State() State {
	return State(s.state.Load())
}

// RunForever runs a cycle immediately and then on every fire time of the
// schedule until ctx is cancelled.
func (s *Scheduler) RunForever(ctx context.Context) error {
	s.logger.Info("scheduler started", "timeout", s.timeout)

	for {
		if _, err := s.RunOnce(ctx); err != nil {
			if errors.Is(err, ErrCycleRunning) {
				s.logger.Warn("skipping scheduled cycle, previous one still running")
			} else if ctx.Err() == nil {
				s.logger.Error("cycle failed", "error", err)
			}
		}

		next := s.schedule.Next(s.now())
		s.logger.Debug("next cycle scheduled", "at", next)

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// RunOnce runs a single cycle unless one is already in progress.
func (s *Scheduler) RunOnce(ctx context.Context) (*domain.CycleStats, error) {
	if !s.state.CompareAndSwap(int32(Idle), int32(Running)) {
		return nil, ErrCycleRunning
	}
	s.metrics.SetCycleRunning(true)
	defer func() {
		s.state.Store(int32(Idle))
		s.metrics.SetCycleRunning(false)
	}()

	return s.run(ctx)
}

func (s *Scheduler) run(ctx context.Context) (stats *domain.CycleStats, err error) {
	cycleCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		cycleCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := s.now()
	defer func() {
		if r := recover(); r != nil {
			stats, err = nil, fmt.Errorf("cycle panicked: %v", r)
		}

		status := "success"
		if err != nil {
			status = "failed"
		}
		s.metrics.ObserveCycle(status, s.now().Sub(start))
	}()

	return s.cycle.Run(cycleCtx)
}
