// SPDX-License-Identifier: MIT

package training

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Scheduler runs a Task one step per host tick so the host stays
// responsive between steps. Its methods are safe for concurrent use;
// the task itself only ever runs inside Tick, one step at a time.
//
// Lifecycle: idle → Start → running → (Stop | task done | step error) → idle.
// A finished or failed scheduler cannot be restarted.
type Scheduler struct {
	task  Task
	hooks hooks

	mu       sync.Mutex
	running  bool
	stepping bool
	finished bool
	steps    int
	err      error
}

// NewScheduler returns an idle scheduler for task.
func NewScheduler(task Task, opts ...Option) (*Scheduler, error) {
	if task == nil {
		return nil, ErrNilTask
	}
	h := defaultHooks()
	for _, set := range opts {
		if set != nil {
			set(&h)
		}
	}

	return &Scheduler{task: task, hooks: h}, nil
}

// Start begins or resumes stepping. It is a no-op while running and after
// the task has finished or failed. It reports whether the state changed.
func (s *Scheduler) Start() bool {
	s.mu.Lock()
	if s.running || s.finished {
		s.mu.Unlock()
		return false
	}
	s.running = true
	s.mu.Unlock()

	s.hooks.onStart()

	return true
}

// Stop requests cancellation. A step already in progress completes, but no
// further step starts. No-op while idle; reports whether the state changed.
func (s *Scheduler) Stop() bool {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return false
	}
	s.running = false
	s.mu.Unlock()

	s.hooks.onStop()

	return true
}

// IsRunning reports whether Tick would run a step.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

// Done reports whether the task finished or failed.
func (s *Scheduler) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.finished
}

// Err returns the error of the failed step, if any.
func (s *Scheduler) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// Steps returns the number of steps run so far, including a failed one.
func (s *Scheduler) Steps() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.steps
}

// Tick runs exactly one step if the scheduler is running and no other
// Tick is mid-step. It reports whether a step ran.
//
// A step error is fatal: the scheduler stops, records the error and never
// retries. When the task reports done the scheduler stops as well.
func (s *Scheduler) Tick() bool {
	s.mu.Lock()
	if !s.running || s.stepping {
		s.mu.Unlock()
		return false
	}
	s.stepping = true
	s.mu.Unlock()

	done, err := s.task.Step()

	s.mu.Lock()
	s.stepping = false
	s.steps++
	step := s.steps
	wasRunning := s.running
	if err != nil {
		s.err = errors.Wrapf(err, "training: step %d", step)
		err = s.err
	}
	if err != nil || done {
		s.finished = true
		s.running = false
	}
	s.mu.Unlock()

	switch {
	case err != nil:
		s.hooks.onError(err)
	default:
		s.hooks.onStep(step)
	}
	// Stop already fired onStop if it raced with this step.
	if (err != nil || done) && wasRunning {
		s.hooks.onStop()
	}

	return true
}

// Run starts the scheduler and calls Tick for every value received from
// ticks (typically time.Ticker.C) until the task finishes, the scheduler
// is stopped or ctx is done.
//
// Returns the step error if a step failed, ctx.Err() on cancellation,
// ErrTicksClosed if ticks closes first, and nil otherwise.
func (s *Scheduler) Run(ctx context.Context, ticks <-chan time.Time) error {
	s.Start()
	for {
		if !s.IsRunning() {
			return s.Err()
		}
		select {
		case <-ctx.Done():
			s.Stop()
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				s.Stop()
				return ErrTicksClosed
			}
			s.Tick()
		}
	}
}
