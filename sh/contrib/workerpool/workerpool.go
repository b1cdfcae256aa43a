// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool executes accelerator-style kernel launches on the CPU.
//
// A kernel is a function of one thread coordinate. A launch covers a grid of
// blocks, each block a fixed tile of threads (16x16 for 2D problems, 8x8x8
// for 3D), with the grid rounded up to whole tiles. Kernels must therefore
// bounds-check their coordinate and return early when it falls outside the
// problem, exactly as a device kernel would.
//
// Blocks are handed to a persistent Pool created once and reused across
// launches:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	extent := sh.Dim3{X: n, Y: m, Z: 1}
//	block := workerpool.BlockSize2D()
//	pool.Launch(workerpool.GridSize(extent, block), block, func(thread sh.Dim3) {
//	    if !extent.Contains(thread) {
//	        return
//	    }
//	    ...
//	})
//
// Launch returns only after every block has run, so consecutive launches are
// ordered. Within one launch there is no ordering between threads.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Pool is a persistent set of worker goroutines that execute kernel blocks.
// A nil *Pool is valid and runs every launch on the calling goroutine.
type Pool struct {
	numWorkers int
	taskC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

// task is one worker's share of a launch.
type task struct {
	fn      func()
	barrier *sync.WaitGroup
}

// cursor is the work-stealing counter shared by all workers of one launch.
// It is padded to its own cache line since every worker hammers it.
type cursor struct {
	_    cpu.CacheLinePad
	next atomic.Int64
	_    cpu.CacheLinePad
}

// New creates a pool with numWorkers persistent workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		taskC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.taskC {
		t.fn()
		t.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool, or 1 for a nil pool.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.numWorkers
}

// Close shuts down the pool. Launches already queued complete; later
// launches run sequentially on the caller. Calling Close multiple times is
// safe.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.taskC)
	})
}

// sequential reports whether work must run on the calling goroutine.
func (p *Pool) sequential() bool {
	return p == nil || p.closed.Load() || p.numWorkers == 1
}

// ParallelForBatched calls fn over [0, n) in batches of batchSize indices.
// Workers grab batches from a shared atomic cursor, which balances load when
// the cost per index varies (as it does between interior and edge blocks).
// Blocks until all work completes.
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	numBatches := (n + batchSize - 1) / batchSize
	if p.sequential() || numBatches == 1 {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, numBatches)
	c := new(cursor)
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.taskC <- task{
			fn: func() {
				for {
					start := int(c.next.Add(int64(batchSize))) - batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}
