// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
)

// Workers starts and stops a group of workers together. A worker added while
// the group is running is started right away.
type Workers struct {
	mu      sync.Mutex
	workers []Worker
	ctx     context.Context
}

// Add registers w with the group.
func (w *Workers) Add(worker Worker) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.workers = append(w.workers, worker)
	if w.ctx != nil {
		worker.Start(w.ctx)
	}
}

// Start starts every registered worker with ctx.
func (w *Workers) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.ctx = ctx
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker and waits for them to exit. Workers added after
// Stop are kept idle until the next Start.
func (w *Workers) Stop() {
	w.mu.Lock()
	w.ctx = nil
	workers := append([]Worker(nil), w.workers...)
	w.mu.Unlock()

	for _, worker := range workers {
		worker.Stop()
	}
}

// Len returns the number of registered workers.
func (w *Workers) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.workers)
}
