// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package special

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorialTable(t *testing.T) {
	want := 1.0
	for n := 0; n <= 20; n++ {
		if n > 0 {
			want *= float64(n)
		}
		// Products up to 20! are exact in float64.
		assert.Equal(t, want, Factorial[float64](n), "%d!", n)
	}
	for n := 21; n <= MaxFactorial; n++ {
		want *= float64(n)
		assert.InEpsilon(t, want, Factorial[float64](n), 1e-12, "%d!", n)
	}
}

func TestFactorialOutOfRange(t *testing.T) {
	assert.True(t, math.IsNaN(Factorial[float64](-1)))
	assert.True(t, math.IsInf(Factorial[float64](MaxFactorial+1), 1))
	assert.True(t, math.IsInf(float64(Factorial[float32](35)), 1))
	assert.Equal(t, float32(120), Factorial[float32](5))
}

func TestAssociatedLegendreClosedForms(t *testing.T) {
	closed := []struct {
		l, m int
		fn   func(x float64) float64
	}{
		{0, 0, func(x float64) float64 { return 1 }},
		{1, 0, func(x float64) float64 { return x }},
		{1, 1, func(x float64) float64 { return -math.Sqrt(1 - x*x) }},
		{2, 0, func(x float64) float64 { return 0.5 * (3*x*x - 1) }},
		{2, 1, func(x float64) float64 { return -3 * x * math.Sqrt(1-x*x) }},
		{2, 2, func(x float64) float64 { return 3 * (1 - x*x) }},
		{3, 0, func(x float64) float64 { return 0.5 * (5*x*x*x - 3*x) }},
		{3, 1, func(x float64) float64 { return -1.5 * (5*x*x - 1) * math.Sqrt(1-x*x) }},
		{3, 2, func(x float64) float64 { return 15 * x * (1 - x*x) }},
		{3, 3, func(x float64) float64 { return -15 * math.Pow(1-x*x, 1.5) }},
	}

	for _, tc := range closed {
		for _, x := range []float64{-1, -0.75, -0.3, 0, 0.2, 0.5, 0.9, 1} {
			got := AssociatedLegendre(tc.l, tc.m, x)
			assert.InDelta(t, tc.fn(x), got, 1e-12, "P_%d^%d(%v)", tc.l, tc.m, x)
		}
	}
}

func TestAssociatedLegendreFloat32(t *testing.T) {
	got := AssociatedLegendre(2, 1, float32(0.5))
	assert.InDelta(t, -3*0.5*math.Sqrt(0.75), float64(got), 1e-6)
}

func TestClebschGordanKnownValues(t *testing.T) {
	tests := []struct {
		name                   string
		j1, j2, j3, m1, m2, m3 int
		want                   float64
	}{
		{"identity", 0, 0, 0, 0, 0, 0, 1},
		{"couple to scalar", 0, 3, 3, 0, -2, -2, 1},
		{"singlet 00", 1, 1, 0, 0, 0, 0, -1 / math.Sqrt(3)},
		{"singlet +-", 1, 1, 0, 1, -1, 0, 1 / math.Sqrt(3)},
		{"triplet 00", 1, 1, 1, 0, 0, 0, 0},
		{"triplet +-", 1, 1, 1, 1, -1, 0, 1 / math.Sqrt(2)},
		{"quintet 00", 1, 1, 2, 0, 0, 0, math.Sqrt(2.0 / 3.0)},
		{"quintet stretched", 1, 1, 2, 1, 1, 2, 1},
		{"quintet +0", 1, 1, 2, 1, 0, 1, 1 / math.Sqrt(2)},
		{"2x1 to 3 stretched", 2, 1, 3, 2, 1, 3, 1},
		{"2x1 to 1", 2, 1, 1, 0, 0, 0, -math.Sqrt(2.0 / 5.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClebschGordan[float64](tt.j1, tt.j2, tt.j3, tt.m1, tt.m2, tt.m3)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestClebschGordanSelectionRules(t *testing.T) {
	assert.Zero(t, ClebschGordan[float64](1, 1, 2, 1, 0, 0), "m3 != m1+m2")
	assert.Zero(t, ClebschGordan[float64](1, 1, 3, 0, 0, 0), "triangle")
	assert.Zero(t, ClebschGordan[float64](2, 1, 0, 0, 0, 0), "triangle lower bound")
	assert.Zero(t, ClebschGordan[float64](1, 1, 2, 2, 0, 2), "|m1| > j1")
}

// Completeness: for fixed j1, j2, m3 the coefficients form an orthogonal
// matrix between the (m1, m2) and (j3) bases.
func TestClebschGordanOrthogonality(t *testing.T) {
	for j1 := 0; j1 <= 3; j1++ {
		for j2 := 0; j2 <= 3; j2++ {
			for j3 := abs(j1 - j2); j3 <= j1+j2; j3++ {
				for j3p := abs(j1 - j2); j3p <= j1+j2; j3p++ {
					for m3 := -min(j3, j3p); m3 <= min(j3, j3p); m3++ {
						var sum float64
						for m1 := -j1; m1 <= j1; m1++ {
							m2 := m3 - m1
							sum += ClebschGordan[float64](j1, j2, j3, m1, m2, m3) *
								ClebschGordan[float64](j1, j2, j3p, m1, m2, m3)
						}
						want := 0.0
						if j3 == j3p {
							want = 1
						}
						require.InDelta(t, want, sum, 1e-10, "j1=%d j2=%d j3=%d j3'=%d m3=%d", j1, j2, j3, j3p, m3)
					}
				}
			}
		}
	}
}
