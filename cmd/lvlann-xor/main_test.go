// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlann/network"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()
	c, err := parseFlags([]string{"-epochs", "10", "-hidden", "4", "-tick", "2ms", "-save", "x.json"})
	require.NoError(t, err)
	require.Equal(t, 10, c.epochs)
	require.Equal(t, 4, c.hidden)
	require.Equal(t, 2*time.Millisecond, c.tick)
	require.Equal(t, "x.json", c.savePath)
	require.Equal(t, int64(7), c.seed)

	_, err = parseFlags([]string{"-tick", "0s"})
	require.Error(t, err)

	_, err = parseFlags([]string{"-nope"})
	require.Error(t, err)
}

func TestRun_TrainsAndSaves(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "net.json")
	c := config{
		epochs: 5000, rate: 0.5, hidden: 2, seed: 7,
		tick: time.Millisecond, perStep: 1000, report: 1000, savePath: path,
	}
	var out bytes.Buffer
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	require.NoError(t, run(ctx, c, log.New(io.Discard, "", 0), &out))
	require.Contains(t, out.String(), "[0 1] -> 0.9")
	require.Contains(t, out.String(), "mean absolute error: 0.0")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var net network.ThreeLayer
	require.NoError(t, json.Unmarshal(b, &net))
	require.Equal(t, []int{2, 2, 1}, net.Sizes())
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := config{epochs: 100, rate: 0.5, hidden: 2, seed: 7, tick: time.Hour, perStep: 1}
	var out bytes.Buffer
	require.NoError(t, run(ctx, c, log.New(io.Discard, "", 0), &out))
	require.Contains(t, out.String(), "mean absolute error")
}

func TestRun_BadHidden(t *testing.T) {
	t.Parallel()
	c := config{epochs: 1, rate: 0.5, hidden: 0, seed: 7, tick: time.Millisecond, perStep: 1}
	err := run(context.Background(), c, log.New(io.Discard, "", 0), io.Discard)
	require.ErrorIs(t, err, network.ErrInvalidLayerSize)
}
