// Package sh evaluates real spherical harmonic basis functions and provides
// the coefficient-index arithmetic shared by the parallel kernels in
// sh/contrib.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-sphharm/sh"
//
//	// Y_2^1 at (theta, phi)
//	v := sh.Evaluate(2, 1, theta, phi)
//
//	// Reference reconstruction of a band-limited expansion
//	f := sh.EvaluateSum(maxL, theta, phi, coefficients)
//
// Angles follow the convention of Green's "Spherical Harmonic Lighting: The
// Gritty Details": theta is the azimuth in [0, 2pi) and phi the polar angle
// in [0, pi].
package sh

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// Point is a direction paired with a value.
//
// Sample buffers use Value as the output slot. Direction buffers consumed by
// the matrix kernels leave Value unused.
type Point[T Floats] struct {
	Value T
	Theta T
	Phi   T
}

// Dim2 is a two-dimensional extent, such as a longitude x latitude
// tessellation.
type Dim2 struct {
	X, Y int
}

// Size returns X*Y.
func (d Dim2) Size() int {
	return d.X * d.Y
}

// Dim3 is a three-dimensional extent or coordinate, used both for launch
// grids and for addressing batch instances.
type Dim3 struct {
	X, Y, Z int
}

// Volume returns X*Y*Z.
func (d Dim3) Volume() int {
	return d.X * d.Y * d.Z
}

// Contains reports whether coordinate c lies inside the extent d.
func (d Dim3) Contains(c Dim3) bool {
	return c.X >= 0 && c.Y >= 0 && c.Z >= 0 &&
		c.X < d.X && c.Y < d.Y && c.Z < d.Z
}

// Linear returns the instance-major linear index of coordinate c within the
// extent d: c.Z + d.Z*(c.Y + d.Y*c.X). Batched buffers are laid out in this
// order.
func (d Dim3) Linear(c Dim3) int {
	return c.Z + d.Z*(c.Y+d.Y*c.X)
}
