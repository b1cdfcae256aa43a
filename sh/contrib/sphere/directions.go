package sphere

import (
	"math"

	"github.com/ajroetker/go-sphharm/sh"
)

// goldenAngle is pi*(3 - sqrt(5)), the azimuth step of a Fibonacci lattice.
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// FibonacciDirections returns n quasi-uniformly distributed directions on the
// sphere (a Fibonacci lattice), suitable as sample positions for least-squares
// projection. Value is left zero.
func FibonacciDirections[T sh.Floats](n int) []sh.Point[T] {
	dirs := make([]sh.Point[T], n)
	for i := range dirs {
		z := 1 - (2*float64(i)+1)/float64(n)
		dirs[i] = sh.Point[T]{
			Theta: T(math.Mod(float64(i)*goldenAngle, 2*math.Pi)),
			Phi:   T(math.Acos(z)),
		}
	}
	return dirs
}

// GridDirections returns the directions of a tessellation in point order,
// the same angles Sample and SampleSum assign.
func GridDirections[T sh.Floats](tessellations sh.Dim2) []sh.Point[T] {
	dirs := make([]sh.Point[T], PointCount(tessellations))
	for longitude := range tessellations.X {
		for latitude := range tessellations.Y {
			theta, phi := Angles[T](tessellations, longitude, latitude)
			dirs[latitude+longitude*tessellations.Y] = sh.Point[T]{Theta: theta, Phi: phi}
		}
	}
	return dirs
}
