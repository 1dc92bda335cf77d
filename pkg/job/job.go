package job

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

type job struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

// Service runs registered functions periodically until its context is done.
// A job runs once right after Start and then on every tick.
type Service struct {
	jobs []job
	wg   *sync.WaitGroup
}

func NewService() *Service {
	return &Service{
		wg: &sync.WaitGroup{},
	}
}

func (s *Service) RegisterJob(name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	return s.TryRegisterJob(true, name, interval, fn)
}

// TryRegisterJob registers the job only when isEnabled is true and interval is positive.
func (s *Service) TryRegisterJob(isEnabled bool, name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	if !isEnabled || interval <= 0 {
		return s
	}

	s.jobs = append(s.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return s
}

func (s *Service) Len() int {
	return len(s.jobs)
}

func (s *Service) Start(ctx context.Context) {
	for _, v := range s.jobs {
		s.wg.Add(1)

		go s.startJob(ctx, v)
	}
}

func (s *Service) startJob(ctx context.Context, job job) {
	defer s.wg.Done()

	l := slog.Default().With("job", job.name)

	ticker := time.NewTicker(job.interval)
	defer ticker.Stop()

	for {
		l.Debug("job started")

		err := s.withRecover(ctx, l, job)
		if err != nil {
			l.ErrorContext(ctx, "job failed", "error", err)
		} else {
			l.Debug("job done")
		}

		select {
		case <-ctx.Done():
			l.Debug("context done")
			return

		case <-ticker.C:
		}
	}
}

func (s *Service) withRecover(ctx context.Context, l *slog.Logger, j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.Error("job panic", "error", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("job panic: %v", r)
		}
	}()

	return j.fn(ctx)
}

// Stop waits for running jobs to return. The context passed to Start must be done.
func (s *Service) Stop() {
	s.wg.Wait()
}
