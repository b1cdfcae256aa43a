// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package special

import "math"

// AssociatedLegendre evaluates the associated Legendre polynomial P_l^m(x)
// with the Condon-Shortley phase.
//
// Defined for 0 <= m <= l and x in [-1, 1]. Outside that domain the result is
// unspecified (typically NaN or garbage); no error is reported.
//
// The value is built from P_m^m by the upward recurrence in l:
//
//	P_m^m     = (-1)^m (2m-1)!! (1-x^2)^(m/2)
//	P_{m+1}^m = x (2m+1) P_m^m
//	P_l^m     = (x (2l-1) P_{l-1}^m - (l+m-1) P_{l-2}^m) / (l-m)
func AssociatedLegendre[T Float](l, m int, x T) T {
	pmm := T(1)
	if m > 0 {
		somx2 := T(math.Sqrt(float64((1 - x) * (1 + x))))
		fact := T(1)
		for range m {
			pmm *= -fact * somx2
			fact += 2
		}
	}
	if l == m {
		return pmm
	}

	pmmp1 := x * T(2*m+1) * pmm
	if l == m+1 {
		return pmmp1
	}

	var pll T
	for ll := m + 2; ll <= l; ll++ {
		pll = (T(2*ll-1)*x*pmmp1 - T(ll+m-1)*pmm) / T(ll-m)
		pmm = pmmp1
		pmmp1 = pll
	}
	return pll
}
