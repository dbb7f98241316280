// SPDX-License-Identifier: MIT

package training

// Task is a unit of work split into steps. Step runs one step and reports
// whether the task is finished. A non-nil error ends the task.
type Task interface {
	Step() (done bool, err error)
}

// TaskFunc adapts a plain function to Task.
type TaskFunc func() (done bool, err error)

// Step calls f.
func (f TaskFunc) Step() (bool, error) { return f() }

// Option configures Scheduler hooks.
type Option func(*hooks)

// hooks are called outside the scheduler's lock, so they may call back
// into the scheduler (a hook may Stop it, for example).
type hooks struct {
	onStart func()
	onStop  func()
	onStep  func(step int)
	onError func(err error)
}

func defaultHooks() hooks {
	return hooks{
		onStart: func() {},
		onStop:  func() {},
		onStep:  func(int) {},
		onError: func(error) {},
	}
}

// WithOnStart registers a callback run when the scheduler starts.
func WithOnStart(fn func()) Option {
	return func(h *hooks) {
		if fn != nil {
			h.onStart = fn
		}
	}
}

// WithOnStop registers a callback run whenever a running scheduler stops:
// on Stop, on completion and after a failed step.
func WithOnStop(fn func()) Option {
	return func(h *hooks) {
		if fn != nil {
			h.onStop = fn
		}
	}
}

// WithOnStep registers a callback run after every successful step with the
// total number of steps taken so far.
func WithOnStep(fn func(step int)) Option {
	return func(h *hooks) {
		if fn != nil {
			h.onStep = fn
		}
	}
}

// WithOnError registers a callback run once with the error of a failed step.
func WithOnError(fn func(err error)) Option {
	return func(h *hooks) {
		if fn != nil {
			h.onError = fn
		}
	}
}
