// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package sh

import (
	"math"

	"github.com/ajroetker/go-sphharm/sh/special"
)

// Normalization returns K_l^m = sqrt((2l+1)(l-|m|)! / (4pi (l+|m|)!)).
//
// The ratio is formed in float64 so that float32 callers do not lose the
// constant to factorial overflow at moderate degrees.
func Normalization[T Floats](l, m int) T {
	am := m
	if am < 0 {
		am = -m
	}
	num := float64(2*l+1) * special.Factorial[float64](l-am)
	den := 4 * math.Pi * special.Factorial[float64](l+am)
	return T(math.Sqrt(num / den))
}

// Evaluate returns the real spherical harmonic Y_l^m at azimuth theta and
// polar angle phi:
//
//	m > 0:  sqrt(2) K_l^m cos(m theta)  P_l^m(cos phi)
//	m < 0:  sqrt(2) K_l^m sin(-m theta) P_l^-m(cos phi)
//	m == 0: K_l^0 P_l^0(cos phi)
//
// l must be non-negative and |m| <= l. Out-of-range degrees or orders are not
// detected and produce meaningless values.
func Evaluate[T Floats](l, m int, theta, phi T) T {
	k := Normalization[T](l, m)
	x := T(math.Cos(float64(phi)))
	switch {
	case m > 0:
		return T(math.Sqrt2) * k * T(math.Cos(float64(m)*float64(theta))) * special.AssociatedLegendre(l, m, x)
	case m < 0:
		return T(math.Sqrt2) * k * T(math.Sin(float64(-m)*float64(theta))) * special.AssociatedLegendre(l, -m, x)
	default:
		return k * special.AssociatedLegendre(l, 0, x)
	}
}

// EvaluateIndex is Evaluate addressed by linear coefficient index.
func EvaluateIndex[T Floats](index int, theta, phi T) T {
	l, m := DegreeOrder(index)
	return Evaluate(l, m, theta, phi)
}
