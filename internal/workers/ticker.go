// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is used when a Ticker is created with a non-positive
// interval.
const DefaultInterval = 10 * time.Second

// Ticker is a [Worker] that calls a function on a fixed cadence.
type Ticker struct {
	interval time.Duration
	fn       func()

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTicker creates a Ticker that calls fn every interval. The ticker is idle
// until Start is called. If interval is zero or negative it defaults to
// [DefaultInterval].
func NewTicker(interval time.Duration, fn func()) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Ticker{interval: interval, fn: fn}
}

// Interval returns the cadence of the ticker.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Start implements [Worker]. It stops any previously running loop, then
// launches a background goroutine that calls fn every interval. The first
// call happens one interval after Start.
func (t *Ticker) Start(ctx context.Context) {
	t.Stop()

	t.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.wg.Add(1)
	t.mu.Unlock()

	go func() {
		defer t.wg.Done()
		tick := time.NewTicker(t.interval)
		defer tick.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-tick.C:
				t.fn()
			}
		}
	}()
}

// Stop implements [Worker]. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the ticker is
// not running (no-op in that case).
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	t.wg.Wait()
}
