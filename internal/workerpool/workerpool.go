// Copyright 2025 The go-half Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for sweeping
// large ranges of float bit patterns. A Pool is created once and reused
// across many sweeps, so each sweep only pays for handing out batches.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelForBatched(1<<32, 1<<16, func(start, end uint64) {
//	    for bits := start; bits < end; bits++ {
//	        check(uint32(bits))
//	    }
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// sweeps. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem

	// mu orders Close against the sends of running sweeps.
	mu     sync.RWMutex
	closed bool
}

// workItem represents a single worker's share of a sweep.
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
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe, and so is calling it while sweeps
// are running: they finish on the workers, and later sweeps run sequentially.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.workC)
	}
}

// ParallelForBatched calls fn on consecutive batches covering [0, n), using
// atomic work stealing so that cheap and expensive regions balance out.
// Blocks until all work completes.
//
// fn receives (start, end) where work should process [start, end). Batches
// are at most batchSize long; batchSize == 0 picks one batch per worker.
// fn may be called concurrently from several workers.
func (p *Pool) ParallelForBatched(n, batchSize uint64, fn func(start, end uint64)) {
	if n == 0 {
		return
	}

	workers := uint64(p.numWorkers)
	if batchSize == 0 {
		batchSize = (n + workers - 1) / workers
	}
	numBatches := (n + batchSize - 1) / batchSize
	workers = min(workers, numBatches)

	p.mu.RLock()
	if p.closed || workers == 1 {
		p.mu.RUnlock()
		// Sequential fallback for a closed pool or a single batch.
		for start := uint64(0); start < n; start += batchSize {
			fn(start, min(start+batchSize, n))
		}
		return
	}

	var nextBatch atomic.Uint64
	var wg sync.WaitGroup
	wg.Add(int(workers))

	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					batch := nextBatch.Add(1) - 1
					if batch >= numBatches {
						return
					}
					start := batch * batchSize
					fn(start, min(start+batchSize, n))
				}
			},
			barrier: &wg,
		}
	}
	p.mu.RUnlock()

	wg.Wait()
}
