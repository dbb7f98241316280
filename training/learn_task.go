// SPDX-License-Identifier: MIT

package training

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlann/network"
)

// DefaultEpochsPerStep is used when Config.EpochsPerStep is zero.
const DefaultEpochsPerStep = 1

// Trainer is the part of network.Network a LearnTask drives.
type Trainer interface {
	Epoch(set []network.Sample, rate float64) (float64, error)
}

// Config controls a LearnTask.
type Config struct {
	// Epochs is the total number of passes over the set.
	Epochs int

	// Rate is the learning rate.
	Rate float64

	// EpochsPerStep is how many epochs one scheduler step runs.
	// Zero means DefaultEpochsPerStep.
	EpochsPerStep int

	// ReportEvery calls the Observer after each epoch whose zero-based
	// index is a multiple of ReportEvery. Zero disables reporting.
	ReportEvery int
}

// Progress is what an Observer receives.
type Progress struct {
	Epoch  int     // zero-based index of the epoch just run
	Epochs int     // total epochs configured
	Error  float64 // mean absolute output error of that epoch
}

// Observer receives progress reports from a LearnTask.
type Observer func(Progress)

// LearnTask trains a network a few epochs per step. It is the Task the
// Scheduler drives; running it to completion is equivalent to
// net.Learn(set, cfg.Epochs, cfg.Rate).
type LearnTask struct {
	net   Trainer
	set   []network.Sample
	cfg   Config
	obs   Observer
	epoch int
	last  float64
}

var _ Task = (*LearnTask)(nil)

// NewLearnTask validates cfg and returns a task positioned at epoch 0.
// The sample slice is copied; the samples themselves must not change while
// the task runs. obs may be nil.
func NewLearnTask(net Trainer, set []network.Sample, cfg Config, obs Observer) (*LearnTask, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	switch {
	case cfg.Epochs < 0:
		return nil, errors.Wrapf(ErrInvalidConfig, "epochs %d", cfg.Epochs)
	case cfg.EpochsPerStep < 0:
		return nil, errors.Wrapf(ErrInvalidConfig, "epochs per step %d", cfg.EpochsPerStep)
	case cfg.ReportEvery < 0:
		return nil, errors.Wrapf(ErrInvalidConfig, "report every %d", cfg.ReportEvery)
	case math.IsNaN(cfg.Rate) || math.IsInf(cfg.Rate, 0):
		return nil, errors.Wrapf(ErrInvalidConfig, "rate %g", cfg.Rate)
	}
	if cfg.EpochsPerStep == 0 {
		cfg.EpochsPerStep = DefaultEpochsPerStep
	}

	return &LearnTask{
		net: net,
		set: append([]network.Sample(nil), set...),
		cfg: cfg,
		obs: obs,
	}, nil
}

// Step runs up to EpochsPerStep epochs. An empty set or a task with no
// epochs left reports done without touching the network.
func (t *LearnTask) Step() (bool, error) {
	if len(t.set) == 0 || t.epoch >= t.cfg.Epochs {
		return true, nil
	}
	for i := 0; i < t.cfg.EpochsPerStep && t.epoch < t.cfg.Epochs; i++ {
		e, err := t.net.Epoch(t.set, t.cfg.Rate)
		if err != nil {
			return false, errors.Wrapf(err, "training: epoch %d", t.epoch)
		}
		t.last = e
		if t.obs != nil && t.cfg.ReportEvery > 0 && t.epoch%t.cfg.ReportEvery == 0 {
			t.obs(Progress{Epoch: t.epoch, Epochs: t.cfg.Epochs, Error: e})
		}
		t.epoch++
	}

	return t.epoch >= t.cfg.Epochs, nil
}

// Epoch returns the number of epochs completed.
func (t *LearnTask) Epoch() int { return t.epoch }

// LastError returns the error of the most recent epoch, 0 before the first.
func (t *LearnTask) LastError() float64 { return t.last }
