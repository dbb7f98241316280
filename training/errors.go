// SPDX-License-Identifier: MIT

package training

import "github.com/pkg/errors"

// Sentinel errors for scheduling and training tasks.
var (
	// ErrNilTask is returned by NewScheduler when no task is given.
	ErrNilTask = errors.New("training: task is nil")

	// ErrNilNetwork is returned by NewLearnTask when no network is given.
	ErrNilNetwork = errors.New("training: network is nil")

	// ErrInvalidConfig is returned when a Config field is out of range.
	ErrInvalidConfig = errors.New("training: invalid config")

	// ErrTicksClosed is returned by Run when the tick channel closes before
	// the task finishes.
	ErrTicksClosed = errors.New("training: tick channel closed")
)
