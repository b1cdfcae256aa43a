package sh

import "math"

// CoefficientCount returns the number of coefficients of an expansion
// truncated at degree maxL: (maxL+1)^2.
func CoefficientCount(maxL int) int {
	return (maxL + 1) * (maxL + 1)
}

// MaximumDegree is the inverse of CoefficientCount for perfect squares.
func MaximumDegree(coefficientCount int) int {
	return int(math.Sqrt(float64(coefficientCount))) - 1
}

// CoefficientIndex returns the linear index of (l, m): l(l+1)+m.
// Requires l >= 0 and -l <= m <= l; nothing is checked.
func CoefficientIndex(l, m int) int {
	return l*(l+1) + m
}

// DegreeOrder returns the (l, m) pair at a linear coefficient index.
func DegreeOrder(index int) (l, m int) {
	l = int(math.Floor(math.Sqrt(float64(index))))
	m = index - l*l - l
	return l, m
}
