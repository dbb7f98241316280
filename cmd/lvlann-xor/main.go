// SPDX-License-Identifier: MIT

// Command lvlann-xor trains a three-layer network on XOR under the
// training scheduler, one batch of epochs per clock tick, and prints the
// learned truth table.
//
// Usage:
//
//	lvlann-xor [-epochs 5000] [-rate 0.5] [-hidden 2] [-seed 7]
//	           [-tick 1ms] [-per-step 100] [-report 1000] [-save net.json]
//
// Ctrl-C stops training after the current step; the network is still
// printed and saved.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlann/network"
	"github.com/katalvlaran/lvlann/training"
)

type config struct {
	epochs   int
	rate     float64
	hidden   int
	seed     int64
	tick     time.Duration
	perStep  int
	report   int
	savePath string
}

func parseFlags(args []string) (config, error) {
	var c config
	fs := flag.NewFlagSet("lvlann-xor", flag.ContinueOnError)
	fs.IntVar(&c.epochs, "epochs", 5000, "total training epochs")
	fs.Float64Var(&c.rate, "rate", 0.5, "learning rate")
	fs.IntVar(&c.hidden, "hidden", 2, "hidden layer size")
	fs.Int64Var(&c.seed, "seed", 7, "initialization seed")
	fs.DurationVar(&c.tick, "tick", time.Millisecond, "scheduler tick interval")
	fs.IntVar(&c.perStep, "per-step", 100, "epochs per scheduler step")
	fs.IntVar(&c.report, "report", 1000, "log the error every n epochs (0 disables)")
	fs.StringVar(&c.savePath, "save", "", "write the trained network as JSON to this file")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if c.tick <= 0 {
		return c, errors.Errorf("tick must be positive, got %v", c.tick)
	}

	return c, nil
}

func xorSet() []network.Sample {
	return []network.Sample{
		{Input: []float64{0, 0}, Target: []float64{0}},
		{Input: []float64{0, 1}, Target: []float64{1}},
		{Input: []float64{1, 0}, Target: []float64{1}},
		{Input: []float64{1, 1}, Target: []float64{0}},
	}
}

// run trains, prints the truth table to out and optionally saves the network.
func run(ctx context.Context, c config, logger *log.Logger, out io.Writer) error {
	net, err := network.NewThreeLayer(2, c.hidden, 1, network.WithSeed(c.seed))
	if err != nil {
		return errors.Wrap(err, "building network")
	}
	set := xorSet()
	if err = network.ValidateSamples(net, set); err != nil {
		return errors.Wrap(err, "checking samples")
	}

	task, err := training.NewLearnTask(net, set, training.Config{
		Epochs:        c.epochs,
		Rate:          c.rate,
		EpochsPerStep: c.perStep,
		ReportEvery:   c.report,
	}, func(p training.Progress) {
		logger.Printf("epoch %d/%d: error %.6f", p.Epoch, p.Epochs, p.Error)
	})
	if err != nil {
		return errors.Wrap(err, "creating task")
	}

	sched, err := training.NewScheduler(task,
		training.WithOnStart(func() { logger.Printf("training %v for %d epochs", net.Sizes(), c.epochs) }),
		training.WithOnStop(func() { logger.Printf("stopped after %d epochs", task.Epoch()) }),
		training.WithOnError(func(err error) { logger.Printf("step failed: %v", err) }),
	)
	if err != nil {
		return errors.Wrap(err, "creating scheduler")
	}

	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()
	err = sched.Run(ctx, ticker.C)
	if err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrap(err, "training")
	}

	for _, s := range set {
		y, err := net.FeedForward(s.Input)
		if err != nil {
			return errors.Wrapf(err, "evaluating %v", s.Input)
		}
		fmt.Fprintf(out, "%v -> %.4f\n", s.Input, y[0])
	}
	mae, err := network.MeanAbsError(net, set)
	if err != nil {
		return errors.Wrap(err, "measuring error")
	}
	fmt.Fprintf(out, "mean absolute error: %.6f\n", mae)

	if c.savePath == "" {
		return nil
	}
	b, err := json.MarshalIndent(net, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding network")
	}
	if err = os.WriteFile(c.savePath, b, 0o644); err != nil {
		return errors.Wrapf(err, "saving to %s", c.savePath)
	}
	logger.Printf("saved network to %s", c.savePath)

	return nil
}

func main() {
	logger := log.New(os.Stderr, "lvlann-xor: ", log.LstdFlags)

	c, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = run(ctx, c, logger, os.Stdout); err != nil {
		logger.Fatalf("%+v", err)
	}
}
