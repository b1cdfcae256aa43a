// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package special

//go:generate go run ../../cmd/shgen -output factorial_table.go -pkg special -max 170

import "math"

// Float is a constraint for the floating-point types the special functions
// are evaluated in.
type Float interface {
	~float32 | ~float64
}

// MaxFactorial is the largest n whose factorial is finite in float64.
const MaxFactorial = len(factorialTable) - 1

// Factorial returns n! in precision T.
//
// Values come from a generated float64 table, so Factorial[float32] is the
// correctly rounded float64 value narrowed to float32 (and +Inf from 35!
// onwards). n > MaxFactorial yields +Inf. Negative n is outside the domain and
// yields NaN.
func Factorial[T Float](n int) T {
	if n < 0 {
		return T(math.NaN())
	}
	if n > MaxFactorial {
		return T(math.Inf(1))
	}
	return T(factorialTable[n])
}
