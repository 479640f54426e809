// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workerpool provides a persistent, reusable worker pool for
// splitting a plane into row bands. A Pool is created once per filter and
// reused for every frame, so per-frame work pays no goroutine spawn cost.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, frame := range frames {
//	    pool.ParallelFor(frame.Height(), func(y0, y1 int) {
//	        processRows(frame, y0, y1)
//	    })
//	}
//
// A nil *Pool is valid and runs everything on the calling goroutine.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single band of a parallel operation.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	// Spawn persistent workers
	for range numWorkers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
// A nil pool reports one worker: the caller.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times, or on a nil pool, is safe.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Bands returns how many contiguous bands ParallelBands splits n items
// into, and the size of every band but possibly the last.
func (p *Pool) Bands(n int) (bands, chunk int) {
	if n <= 0 {
		return 0, 0
	}
	workers := 1
	if p != nil && !p.closed.Load() {
		workers = min(p.numWorkers, n)
	}
	chunk = (n + workers - 1) / workers
	bands = (n + chunk - 1) / chunk
	return bands, chunk
}

// ParallelBands executes fn once per band of [0, n) and blocks until all
// bands complete. band is the band index in [0, bands) as reported by
// Bands, so callers can keep per-band partial results without locking.
func (p *Pool) ParallelBands(n int, fn func(band, start, end int)) {
	bands, chunk := p.Bands(n)
	if bands == 0 {
		return
	}

	// For a single band, or a closed or nil pool, run on the caller.
	if bands == 1 {
		fn(0, 0, n)
		return
	}

	var wg sync.WaitGroup
	wg.Add(bands)

	for i := range bands {
		start := i * chunk
		end := min(start+chunk, n)
		p.workC <- workItem{
			fn: func() {
				fn(i, start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ParallelFor executes fn for each contiguous band of [0, n) using the
// worker pool. Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelBands(n, func(_, start, end int) {
		fn(start, end)
	})
}
