// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package matrix builds spherical harmonic design matrices: the basis
// functions evaluated at a batch of directions, one row per direction and
// one column per coefficient.
//
// Matrices are stored column-major, element (vector i, coefficient j) at
// i + vectorCount*j, so that each coefficient's column is contiguous.
package matrix

import (
	"github.com/ajroetker/go-sphharm/sh"
	"github.com/ajroetker/go-sphharm/sh/contrib/workerpool"
)

// CalculateMatrix accumulates the vectorCount x coefficientCount design
// matrix for directions into outputMatrix.
//
// Launched on a 2D grid over (vector, coefficient). Each cell is written by
// exactly one thread, but the write is an atomic add: outputMatrix must be
// zeroed by the caller, and several launches (possibly concurrent) may
// accumulate into the same buffer.
//
// Only Theta and Phi of each direction are read.
func CalculateMatrix[T sh.Floats](pool *workerpool.Pool, vectorCount, coefficientCount int, directions []sh.Point[T], outputMatrix []T) {
	extent := sh.Dim3{X: vectorCount, Y: coefficientCount, Z: 1}
	block := workerpool.BlockSize2D()
	pool.Launch(workerpool.GridSize(extent, block), block, func(thread sh.Dim3) {
		calculateMatrixThread(thread, vectorCount, coefficientCount, directions, outputMatrix)
	})
}

func calculateMatrixThread[T sh.Floats](thread sh.Dim3, vectorCount, coefficientCount int, directions []sh.Point[T], outputMatrix []T) {
	vectorIndex := thread.X
	coefficientIndex := thread.Y
	if vectorIndex >= vectorCount || coefficientIndex >= coefficientCount {
		return
	}

	d := directions[vectorIndex]
	sh.AtomicAdd(
		&outputMatrix[vectorIndex+vectorCount*coefficientIndex],
		sh.EvaluateIndex(coefficientIndex, d.Theta, d.Phi))
}

// CalculateMatrices is the batched CalculateMatrix: one independent matrix
// per instance of the dims grid.
//
// Instance i (linear index dims.Linear(coord)) reads directions
// [i*vectorCount, (i+1)*vectorCount) and accumulates into outputMatrices
// [i*vectorCount*coefficientCount, (i+1)*vectorCount*coefficientCount).
func CalculateMatrices[T sh.Floats](pool *workerpool.Pool, dims sh.Dim3, vectorCount, coefficientCount int, directions []sh.Point[T], outputMatrices []T) {
	block := workerpool.BlockSize3D()
	pool.LaunchNested(workerpool.GridSize(dims, block), block, func(instance sh.Dim3) {
		if !dims.Contains(instance) {
			return
		}

		vectorsOffset := vectorCount * dims.Linear(instance)
		matrixOffset := vectorsOffset * coefficientCount

		CalculateMatrix(pool, vectorCount, coefficientCount,
			directions[vectorsOffset:vectorsOffset+vectorCount],
			outputMatrices[matrixOffset:matrixOffset+vectorCount*coefficientCount])
	})
}
