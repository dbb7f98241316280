// SPDX-License-Identifier: MIT
package training_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlann/matrix"
	"github.com/katalvlaran/lvlann/network"
	"github.com/katalvlaran/lvlann/training"
)

func xorSet() []network.Sample {
	return []network.Sample{
		{Input: []float64{0, 0}, Target: []float64{0}},
		{Input: []float64{0, 1}, Target: []float64{1}},
		{Input: []float64{1, 0}, Target: []float64{1}},
		{Input: []float64{1, 1}, Target: []float64{0}},
	}
}

func TestLearnTask_MatchesLearn(t *testing.T) {
	t.Parallel()
	direct, err := network.NewThreeLayer(2, 2, 1, network.WithSeed(7))
	require.NoError(t, err)
	require.NoError(t, direct.Learn(xorSet(), 5000, 0.5))

	stepped, err := network.NewThreeLayer(2, 2, 1, network.WithSeed(7))
	require.NoError(t, err)
	var reports []training.Progress
	task, err := training.NewLearnTask(stepped, xorSet(), training.Config{
		Epochs: 5000, Rate: 0.5, EpochsPerStep: 300, ReportEvery: 1000,
	}, func(p training.Progress) { reports = append(reports, p) })
	require.NoError(t, err)

	s, err := training.NewScheduler(task)
	require.NoError(t, err)
	s.Start()
	for s.Tick() {
	}
	require.NoError(t, s.Err())
	require.Equal(t, 17, s.Steps()) // ceil(5000/300)
	require.Equal(t, 5000, task.Epoch())

	require.Len(t, reports, 5)
	for i, p := range reports {
		require.Equal(t, i*1000, p.Epoch)
		require.Equal(t, 5000, p.Epochs)
	}
	require.Less(t, task.LastError(), 0.05)

	dt, st := direct.Transitions(), stepped.Transitions()
	for k := range dt {
		ok, err := matrix.Equal(dt[k].Weights, st[k].Weights)
		require.NoError(t, err)
		require.True(t, ok)
		ok, err = matrix.Equal(dt[k].Biases, st[k].Biases)
		require.NoError(t, err)
		require.True(t, ok)
	}

	for _, smp := range xorSet() {
		y, err := stepped.FeedForward(smp.Input)
		require.NoError(t, err)
		require.Less(t, math.Abs(smp.Target[0]-y[0]), 0.1)
	}
}

func TestLearnTask_EmptySetFinishesImmediately(t *testing.T) {
	t.Parallel()
	net, err := network.NewThreeLayer(2, 2, 1, network.WithSeed(7))
	require.NoError(t, err)
	before := net.Transitions()[0].Weights.Copy()

	called := false
	task, err := training.NewLearnTask(net, nil, training.Config{Epochs: 100, Rate: 0.5, ReportEvery: 1},
		func(training.Progress) { called = true })
	require.NoError(t, err)

	done, err := task.Step()
	require.NoError(t, err)
	require.True(t, done)
	require.False(t, called)

	ok, err := matrix.Equal(before, net.Transitions()[0].Weights)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestLearnTask_ConfigErrors(t *testing.T) {
	t.Parallel()
	net, err := network.NewThreeLayer(2, 2, 1, network.WithSeed(7))
	require.NoError(t, err)

	_, err = training.NewLearnTask(nil, xorSet(), training.Config{Epochs: 1}, nil)
	require.ErrorIs(t, err, training.ErrNilNetwork)

	for name, cfg := range map[string]training.Config{
		"negative epochs":   {Epochs: -1},
		"negative per step": {Epochs: 1, EpochsPerStep: -2},
		"negative report":   {Epochs: 1, ReportEvery: -1},
		"nan rate":          {Epochs: 1, Rate: math.NaN()},
		"inf rate":          {Epochs: 1, Rate: math.Inf(1)},
	} {
		_, err = training.NewLearnTask(net, xorSet(), cfg, nil)
		require.ErrorIs(t, err, training.ErrInvalidConfig, name)
	}
}

func TestLearnTask_StepErrorIsFatal(t *testing.T) {
	t.Parallel()
	net, err := network.NewThreeLayer(2, 2, 1, network.WithSeed(7))
	require.NoError(t, err)
	bad := []network.Sample{{Input: []float64{1, 2, 3}, Target: []float64{1}}}
	task, err := training.NewLearnTask(net, bad, training.Config{Epochs: 10, Rate: 0.5}, nil)
	require.NoError(t, err)

	s, err := training.NewScheduler(task)
	require.NoError(t, err)
	ticks := make(chan time.Time, 4)
	for i := 0; i < 4; i++ {
		ticks <- time.Now()
	}
	err = s.Run(context.Background(), ticks)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Equal(t, 1, s.Steps())
	require.Zero(t, task.Epoch())
}
