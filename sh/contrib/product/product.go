// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package product multiplies band-limited spherical harmonic expansions in
// coefficient space.
//
// The coefficient of Y_l3^m3 in the product of Y_l1^m1 and Y_l2^m2 follows
// from angular-momentum coupling (Sakurai, Modern Quantum Mechanics, 2nd ed.,
// p. 216):
//
//	sqrt((2l1+1)(2l2+1) / (4pi(2l3+1))) <l1 0; l2 0 | l3 0> <l1 m1; l2 m2 | l3 m3>
//
// so each output coefficient is a sum over all input pairs. Most terms vanish
// by the selection rules (m3 = m1+m2, |l1-l2| <= l3 <= l1+l2), but the
// survivors from many pairs land on the same output and are accumulated
// atomically.
//
// Products are truncated to the input's degree: outputs of degree above
// MaximumDegree(coefficientCount) are not computed.
package product

import (
	"math"

	"github.com/ajroetker/go-sphharm/sh"
	"github.com/ajroetker/go-sphharm/sh/contrib/workerpool"
	"github.com/ajroetker/go-sphharm/sh/special"
)

// Coupling returns the weight with which lhs coefficient lhsIndex times rhs
// coefficient rhsIndex contributes to output coefficient outIndex.
func Coupling[A sh.Floats](lhsIndex, rhsIndex, outIndex int) A {
	l1, m1 := sh.DegreeOrder(lhsIndex)
	l2, m2 := sh.DegreeOrder(rhsIndex)
	l3, m3 := sh.DegreeOrder(outIndex)

	cg2 := special.ClebschGordan[A](l1, l2, l3, m1, m2, m3)
	if cg2 == 0 {
		return 0
	}
	cg1 := special.ClebschGordan[A](l1, l2, l3, 0, 0, 0)
	norm := A(math.Sqrt(float64((2*l1+1)*(2*l2+1)) / (4 * math.Pi * float64(2*l3+1))))
	return norm * cg1 * cg2
}

// Product accumulates the coefficient-space product of lhs and rhs into out.
//
// Launched on a 3D grid over (lhsIndex, rhsIndex, outIndex). Contributions
// are computed and summed in the accumulation precision A, which may be wider
// than the coefficient precision T; use float64 accumulation for float32
// inputs when the summation order matters. out must be zeroed by the caller.
func Product[T, A sh.Floats](pool *workerpool.Pool, coefficientCount int, lhs, rhs []T, out []A) {
	extent := sh.Dim3{X: coefficientCount, Y: coefficientCount, Z: coefficientCount}
	block := workerpool.BlockSize3D()
	pool.Launch(workerpool.GridSize(extent, block), block, func(thread sh.Dim3) {
		lhsIndex, rhsIndex, outIndex := thread.X, thread.Y, thread.Z
		if lhsIndex >= coefficientCount || rhsIndex >= coefficientCount || outIndex >= coefficientCount {
			return
		}

		coupling := Coupling[A](lhsIndex, rhsIndex, outIndex)
		if coupling == 0 {
			return
		}
		sh.AtomicAdd(&out[outIndex], coupling*A(lhs[lhsIndex])*A(rhs[rhsIndex]))
	})
}

// Products is the batched Product over the dims grid.
//
// Instance i (linear index dims.Linear(coord)) uses the slice
// [i*coefficientCount, (i+1)*coefficientCount) of lhs, rhs and out alike:
// the three buffers must share one instance-major layout, and instance i
// always multiplies lhs instance i by rhs instance i.
func Products[T, A sh.Floats](pool *workerpool.Pool, dims sh.Dim3, coefficientCount int, lhs, rhs []T, out []A) {
	block := workerpool.BlockSize3D()
	pool.LaunchNested(workerpool.GridSize(dims, block), block, func(instance sh.Dim3) {
		if !dims.Contains(instance) {
			return
		}

		offset := coefficientCount * dims.Linear(instance)
		end := offset + coefficientCount
		Product(pool, coefficientCount, lhs[offset:end], rhs[offset:end], out[offset:end])
	})
}
