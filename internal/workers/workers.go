// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/ome/openmicroscopy-sub022/internal/logger"
)

// Workers starts and stops a set of workers together.
type Workers struct {
	workers []Worker

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Start runs every worker in its own goroutine. A previous run is stopped
// first. The workers exit when ctx is cancelled or Stop is called.
func (w *Workers) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	defer w.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			worker.Run(runCtx)
		}()
	}
}

// Stop cancels the running workers and waits for them to return. It is a
// no-op when nothing runs.
func (w *Workers) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// Ticker calls a task every interval. Task errors are logged and do not
// stop the ticker.
type Ticker struct {
	name     string
	interval time.Duration
	task     func(ctx context.Context) error

	logger *logger.Logger
}

// DefaultInterval is used when a ticker is given a non-positive interval.
const DefaultInterval = time.Minute

func NewTicker(name string, interval time.Duration, task func(ctx context.Context) error, log *logger.Logger) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Ticker{name: name, interval: interval, task: task, logger: log.Component(name)}
}

func (t *Ticker) Name() string { return t.name }

func (t *Ticker) Run(ctx context.Context) {
	tick := time.NewTicker(t.interval)
	defer tick.Stop()

	t.logger.Debug().Dur("interval", t.interval).Msg("worker started")
	for {
		select {
		case <-ctx.Done():
			t.logger.Debug().Msg("worker stopped")
			return
		case <-tick.C:
			if err := t.task(ctx); err != nil && ctx.Err() == nil {
				t.logger.Warn().Err(err).Str("func", "Ticker.Run").Msg("worker task failed")
			}
		}
	}
}
