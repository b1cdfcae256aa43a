// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package sh

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// EvaluateSum reconstructs a band-limited function at (theta, phi):
//
//	sum_{l=0..maxL} sum_{m=-l..l} Y_l^m(theta, phi) * coefficients[l(l+1)+m]
//
// This is the serial reference. The sphere kernels parallelize both loops
// and are checked against it.
func EvaluateSum[T Floats](maxL int, theta, phi T, coefficients []T) T {
	var sum T
	for l := 0; l <= maxL; l++ {
		for m := -l; m <= l; m++ {
			sum += Evaluate(l, m, theta, phi) * coefficients[CoefficientIndex(l, m)]
		}
	}
	return sum
}

// IsZero reports whether every coefficient is exactly zero.
func IsZero[T Floats](coefficients []T) bool {
	for _, c := range coefficients {
		if c != 0 {
			return false
		}
	}
	return true
}

// L1Distance returns sum(|a[i] - b[i]|).
//
// a and b must have the same length. []float64 inputs go through gonum's
// floats.Distance, which panics on a length mismatch.
func L1Distance[T Floats](a, b []T) T {
	if a64, ok := any(a).([]float64); ok {
		return T(floats.Distance(a64, any(b).([]float64), 1))
	}
	var sum T
	for i := range a {
		sum += T(math.Abs(float64(a[i] - b[i])))
	}
	return sum
}

// L2Distance returns sqrt(sum((a[i] - b[i])^2)).
//
// Based on "Rotation Invariant Spherical Harmonic Representation of 3D Shape
// Descriptors" by Kazhdan et al.; the L2 distance between coefficient vectors
// equals the L2 distance between the reconstructed functions.
func L2Distance[T Floats](a, b []T) T {
	if a64, ok := any(a).([]float64); ok {
		return T(floats.Distance(a64, any(b).([]float64), 2))
	}
	var sum T
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return T(math.Sqrt(float64(sum)))
}
