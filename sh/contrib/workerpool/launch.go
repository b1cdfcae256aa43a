// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"github.com/ajroetker/go-sphharm/sh"
	"golang.org/x/sync/errgroup"
)

// BlocksPerGrab is the number of blocks a worker takes from the launch
// cursor at a time.
const BlocksPerGrab = 4

// BlockSize2D is the tile used for two-dimensional launches.
func BlockSize2D() sh.Dim3 {
	return sh.Dim3{X: 16, Y: 16, Z: 1}
}

// BlockSize3D is the tile used for three-dimensional launches.
func BlockSize3D() sh.Dim3 {
	return sh.Dim3{X: 8, Y: 8, Z: 8}
}

// GridSize returns the number of blocks needed to cover extent, rounding up
// on each axis. Zero or negative extents give an empty grid.
func GridSize(extent, block sh.Dim3) sh.Dim3 {
	return sh.Dim3{
		X: ceilDiv(extent.X, block.X),
		Y: ceilDiv(extent.Y, block.Y),
		Z: ceilDiv(extent.Z, block.Z),
	}
}

func ceilDiv(n, d int) int {
	if n <= 0 || d <= 0 {
		return 0
	}
	return (n + d - 1) / d
}

// Launch runs kernel once for every thread of every block in grid and waits
// for all of them.
//
// Thread coordinates are blockIndex*block + threadInBlock, so the last block
// on each axis may produce coordinates past the problem extent; kernel is
// expected to ignore those.
func (p *Pool) Launch(grid, block sh.Dim3, kernel func(thread sh.Dim3)) {
	blocks := grid.Volume()
	if blocks <= 0 || block.Volume() <= 0 {
		return
	}

	run := func(start, end int) {
		for b := start; b < end; b++ {
			bx := b % grid.X
			by := (b / grid.X) % grid.Y
			bz := b / (grid.X * grid.Y)
			for tz := range block.Z {
				for ty := range block.Y {
					for tx := range block.X {
						kernel(sh.Dim3{
							X: bx*block.X + tx,
							Y: by*block.Y + ty,
							Z: bz*block.Z + tz,
						})
					}
				}
			}
		}
	}

	if sh.SequentialEnv() {
		run(0, blocks)
		return
	}
	p.ParallelForBatched(blocks, BlocksPerGrab, run)
}

// LaunchNested is the outer level of a two-level launch: kernel runs once per
// thread of grid, and each call may itself Launch an inner grid on p.
//
// Outer threads run on their own goroutines (at most NumWorkers at a time),
// not on the pool's workers. An outer thread blocked waiting for its inner
// launch therefore never occupies a worker that the inner blocks need.
// Outer threads share nothing and may run in any order.
func (p *Pool) LaunchNested(grid, block sh.Dim3, kernel func(thread sh.Dim3)) {
	if grid.Volume() <= 0 || block.Volume() <= 0 {
		return
	}

	extent := sh.Dim3{X: grid.X * block.X, Y: grid.Y * block.Y, Z: grid.Z * block.Z}
	if p.sequential() || sh.SequentialEnv() {
		for x := range extent.X {
			for y := range extent.Y {
				for z := range extent.Z {
					kernel(sh.Dim3{X: x, Y: y, Z: z})
				}
			}
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(p.NumWorkers())
	for x := range extent.X {
		for y := range extent.Y {
			for z := range extent.Z {
				thread := sh.Dim3{X: x, Y: y, Z: z}
				g.Go(func() error {
					kernel(thread)
					return nil
				})
			}
		}
	}
	_ = g.Wait()
}
