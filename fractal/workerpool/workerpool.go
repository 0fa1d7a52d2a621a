// Copyright 2026 The go-fractal Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a fixed-size worker pool with dynamic
// work claiming. A Pool lives for one render call: workers claim image
// rows on demand from a shared atomic cursor instead of being assigned
// static ranges, which is essential when per-row cost varies wildly:
// rows crossing the interior of the set iterate to the cap while rows
// far outside escape almost immediately.
//
// Usage:
//
//	pool := workerpool.New(0) // GOMAXPROCS workers
//	defer pool.Close()
//
//	pool.ParallelForAtomic(height, func(y int) {
//	    renderRow(y)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed-size worker pool. Workers are spawned at creation and
// exit when Close is called.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

// task is one parallel operation queued to the pool.
type task struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with the given number of workers.
// If numWorkers <= 0, it uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers),
	}

	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}

	return p
}

// worker is the main loop of each worker goroutine.
func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the pool down. Pending work completes first.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelForAtomic executes fn for each index in [0, n), distributing
// indices through a shared atomic cursor: each worker fetch-and-
// increments the cursor, processes the claimed index, and stops once
// the cursor passes n. Every index is claimed exactly once. Blocks
// until all work completes.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		// Sequential fallback if the pool is already closed.
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	workers := min(p.numWorkers, n)

	if workers == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		p.workC <- task{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ParallelForAtomicBatched executes fn for batches of indices claimed
// through the shared cursor. It keeps the load balancing of
// ParallelForAtomic while amortizing the atomic operation over
// batchSize items, which matters when per-item work is cheap.
//
// fn receives (start, end) and should process [start, end).
func (p *Pool) ParallelForAtomicBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if batchSize <= 0 {
		batchSize = 1
	}

	if p.closed.Load() {
		fn(0, n)
		return
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)

	if workers == 1 {
		fn(0, n)
		return
	}

	var nextBatch atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		p.workC <- task{
			fn: func() {
				for {
					batch := int(nextBatch.Add(1)) - 1
					start := batch * batchSize
					if start >= n {
						return
					}
					end := min(start+batchSize, n)
					fn(start, end)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
