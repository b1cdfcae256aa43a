// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package matrix

import (
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-sphharm/sh"
	"github.com/ajroetker/go-sphharm/sh/contrib/sphere"
	"github.com/ajroetker/go-sphharm/sh/contrib/workerpool"
)

func newTestPool(tb testing.TB) *workerpool.Pool {
	tb.Helper()
	pool := workerpool.New(runtime.NumCPU())
	tb.Cleanup(pool.Close)
	return pool
}

// testDirections returns n directions with a deliberately unused Value slot.
func testDirections[T sh.Floats](n int) []sh.Point[T] {
	dirs := make([]sh.Point[T], n)
	for i := range dirs {
		dirs[i] = sh.Point[T]{
			Value: T(math.NaN()),
			Theta: T(math.Mod(0.7*float64(i), 2*math.Pi)),
			Phi:   T(math.Pi * (float64(i) + 0.5) / float64(n)),
		}
	}
	return dirs
}

func TestCalculateMatrix(t *testing.T) {
	pool := newTestPool(t)

	// Neither extent is a multiple of the 16x16 tile.
	const maxL = 4
	vectorCount := 37
	coefficientCount := sh.CoefficientCount(maxL)
	dirs := testDirections[float64](vectorCount)
	out := make([]float64, vectorCount*coefficientCount)

	CalculateMatrix(pool, vectorCount, coefficientCount, dirs, out)

	for i := range vectorCount {
		for j := range coefficientCount {
			want := sh.EvaluateIndex(j, dirs[i].Theta, dirs[i].Phi)
			require.Equal(t, want, out[i+vectorCount*j], "cell (%d, %d)", i, j)
		}
	}
}

func TestCalculateMatrixAccumulates(t *testing.T) {
	pool := newTestPool(t)

	vectorCount, coefficientCount := 20, 9
	dirs := testDirections[float32](vectorCount)
	out := make([]float32, vectorCount*coefficientCount)

	CalculateMatrix(pool, vectorCount, coefficientCount, dirs, out)
	once := append([]float32(nil), out...)
	CalculateMatrix(pool, vectorCount, coefficientCount, dirs, out)

	for i := range out {
		assert.InDelta(t, 2*float64(once[i]), float64(out[i]), 1e-6)
	}
}

func TestCalculateMatricesMatchesSingle(t *testing.T) {
	pool := newTestPool(t)

	dims := sh.Dim3{X: 2, Y: 3, Z: 1}
	vectorCount, coefficientCount := 18, sh.CoefficientCount(2)
	instances := dims.Volume()

	dirs := testDirections[float64](vectorCount * instances)
	batched := make([]float64, vectorCount*coefficientCount*instances)
	CalculateMatrices(pool, dims, vectorCount, coefficientCount, dirs, batched)

	size := vectorCount * coefficientCount
	for i := range instances {
		single := make([]float64, size)
		CalculateMatrix(nil, vectorCount, coefficientCount, dirs[i*vectorCount:(i+1)*vectorCount], single)
		assert.Equal(t, single, batched[i*size:(i+1)*size], "instance %d", i)
	}
}

func TestProjectRecoversExpansion(t *testing.T) {
	pool := newTestPool(t)

	const maxL = 3
	want := make([]float64, sh.CoefficientCount(maxL))
	for i := range want {
		want[i] = math.Sin(float64(i)+1) * 2
	}

	dirs := sphere.FibonacciDirections[float64](400)
	samples := make([]float64, len(dirs))
	for i, d := range dirs {
		samples[i] = sh.EvaluateSum(maxL, d.Theta, d.Phi, want)
	}

	got, err := Project(pool, dirs, samples, maxL)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	assert.Less(t, sh.L2Distance(want, got), 1e-9)
}

func TestProjectErrors(t *testing.T) {
	dirs := sphere.FibonacciDirections[float64](5)

	_, err := Project(nil, dirs, make([]float64, 4), 1)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = Project(nil, dirs, make([]float64, 5), 2)
	assert.ErrorIs(t, err, ErrUnderdetermined)

	_, err = Project(nil, dirs, make([]float64, 5), -1)
	assert.Error(t, err)
}

func BenchmarkCalculateMatrix(b *testing.B) {
	pool := newTestPool(b)

	vectorCount, coefficientCount := 4096, sh.CoefficientCount(8)
	dirs := testDirections[float32](vectorCount)
	out := make([]float32, vectorCount*coefficientCount)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CalculateMatrix(pool, vectorCount, coefficientCount, dirs, out)
	}
}
