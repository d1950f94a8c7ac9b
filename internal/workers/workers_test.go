// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/logger"
	"github.com/stretchr/testify/assert"
)

type countingWorker struct {
	runs    atomic.Int32
	stopped atomic.Int32
}

func (c *countingWorker) Name() string { return "counting" }

func (c *countingWorker) Run(ctx context.Context) {
	c.runs.Add(1)
	<-ctx.Done()
	c.stopped.Add(1)
}

func TestWorkers_StartStop(t *testing.T) {
	w1, w2 := &countingWorker{}, &countingWorker{}
	ws := New(w1, w2)

	ws.Start(context.Background())
	assert.Eventually(t, func() bool { return w1.runs.Load() == 1 && w2.runs.Load() == 1 }, time.Second, time.Millisecond)

	ws.Stop()
	assert.Equal(t, int32(1), w1.stopped.Load())
	assert.Equal(t, int32(1), w2.stopped.Load())

	// Stop on a stopped set is a no-op.
	ws.Stop()
}

func TestWorkers_RestartStopsPreviousRun(t *testing.T) {
	w := &countingWorker{}
	ws := New(w)

	ws.Start(context.Background())
	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, int32(2), w.runs.Load())
	assert.Equal(t, int32(2), w.stopped.Load())
}

func TestWorkers_Empty(t *testing.T) {
	ws := New()
	ws.Start(context.Background())
	ws.Stop()
}

func TestTicker_RunsTaskUntilCancelled(t *testing.T) {
	var calls atomic.Int32
	ticker := NewTicker("test", 5*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return errors.New("keeps going")
	}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ticker.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ticker did not stop")
	}
}

func TestNewTicker_DefaultInterval(t *testing.T) {
	ticker := NewTicker("test", 0, func(context.Context) error { return nil }, logger.Nop())
	assert.Equal(t, DefaultInterval, ticker.interval)
	assert.Equal(t, "test", ticker.Name())
}
