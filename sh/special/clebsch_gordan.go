// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package special

import "math"

// ClebschGordan returns the coupling coefficient <j1 m1; j2 m2 | j3 m3> for
// integer angular momenta, using Racah's closed form.
//
// The result is exactly zero whenever the selection rules fail:
// m3 != m1+m2, |mi| > ji, or j3 outside [|j1-j2|, j1+j2].
//
// The sum is accumulated in float64 regardless of T; factorials of
// j1+j2+j3+1 overflow float32 long before they overflow float64.
func ClebschGordan[T Float](j1, j2, j3, m1, m2, m3 int) T {
	if m3 != m1+m2 {
		return 0
	}
	if j1 < 0 || j2 < 0 || j3 < 0 {
		return 0
	}
	if abs(m1) > j1 || abs(m2) > j2 || abs(m3) > j3 {
		return 0
	}
	if j3 < abs(j1-j2) || j3 > j1+j2 {
		return 0
	}

	f := Factorial[float64]

	norm := math.Sqrt(float64(2*j3+1) * f(j3+j1-j2) * f(j3-j1+j2) * f(j1+j2-j3) / f(j1+j2+j3+1))
	norm *= math.Sqrt(f(j3+m3) * f(j3-m3) * f(j1-m1) * f(j1+m1) * f(j2-m2) * f(j2+m2))

	kMin := max(0, j2-j3-m1, j1-j3+m2)
	kMax := min(j1+j2-j3, j1-m1, j2+m2)

	var sum float64
	for k := kMin; k <= kMax; k++ {
		term := 1 / (f(k) * f(j1+j2-j3-k) * f(j1-m1-k) * f(j2+m2-k) * f(j3-j2+m1+k) * f(j3-j1-m2+k))
		if k%2 == 1 {
			term = -term
		}
		sum += term
	}
	return T(norm * sum)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
