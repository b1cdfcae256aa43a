// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package sphere samples spherical harmonics and band-limited expansions
// over a latitude/longitude tessellation of the sphere.
//
// A tessellation of X longitudes by Y latitudes yields X*Y points, stored
// longitude-major (point latitude + longitude*Y), and an index buffer of six
// indices per point describing the two triangles of the quad to its
// north-east. Longitude wraps at the seam. Latitude rows 0 and Y-1 are the
// poles; latitude also wraps, so the last row's quads fold back onto the
// first.
package sphere

import (
	"math"

	"github.com/ajroetker/go-sphharm/sh"
	"github.com/ajroetker/go-sphharm/sh/contrib/workerpool"
)

// IndicesPerPoint is the number of triangle indices emitted per grid point.
const IndicesPerPoint = 6

// PointCount returns the number of points of a tessellation.
func PointCount(tessellations sh.Dim2) int {
	return tessellations.Size()
}

// IndexCount returns the index buffer length of a tessellation.
func IndexCount(tessellations sh.Dim2) int {
	return IndicesPerPoint * tessellations.Size()
}

// Angles returns the direction of grid point (longitude, latitude):
// theta = 2pi*longitude/X and phi = pi*latitude/(Y-1).
//
// Y must be at least 2; Y == 1 divides by zero.
func Angles[T sh.Floats](tessellations sh.Dim2, longitude, latitude int) (theta, phi T) {
	theta = T(2 * math.Pi * float64(longitude) / float64(tessellations.X))
	phi = T(math.Pi * float64(latitude) / float64(tessellations.Y-1))
	return theta, phi
}

// writeQuad writes the two triangles of the quad at (longitude, latitude).
func writeQuad(indices []uint32, tessellations sh.Dim2, longitude, latitude int, baseIndex uint32) {
	x, y := tessellations.X, tessellations.Y
	next := (longitude + 1) % x
	up := (latitude + 1) % y

	offset := IndicesPerPoint * (latitude + longitude*y)
	indices[offset+0] = baseIndex + uint32(longitude*y+latitude)
	indices[offset+1] = baseIndex + uint32(longitude*y+up)
	indices[offset+2] = baseIndex + uint32(next*y+up)
	indices[offset+3] = baseIndex + uint32(longitude*y+latitude)
	indices[offset+4] = baseIndex + uint32(next*y+up)
	indices[offset+5] = baseIndex + uint32(next*y+latitude)
}

// Sample evaluates the single basis function Y_l^m at every grid point and
// writes the triangle indices.
//
// points must hold PointCount(tessellations) elements and indices
// IndexCount(tessellations).
func Sample[T sh.Floats](pool *workerpool.Pool, l, m int, tessellations sh.Dim2, points []sh.Point[T], indices []uint32) {
	extent := sh.Dim3{X: tessellations.X, Y: tessellations.Y, Z: 1}
	block := workerpool.BlockSize2D()
	pool.Launch(workerpool.GridSize(extent, block), block, func(thread sh.Dim3) {
		longitude, latitude := thread.X, thread.Y
		if longitude >= tessellations.X || latitude >= tessellations.Y {
			return
		}

		theta, phi := Angles[T](tessellations, longitude, latitude)
		points[latitude+longitude*tessellations.Y] = sh.Point[T]{
			Value: sh.Evaluate(l, m, theta, phi),
			Theta: theta,
			Phi:   phi,
		}
		writeQuad(indices, tessellations, longitude, latitude, 0)
	})
}

// SampleSum reconstructs the expansion coefficients at every grid point and
// writes the triangle indices, offset by baseIndex so several reconstructions
// can share one concatenated index buffer.
//
// It runs as two launches. The first resets each point (zero value, grid
// angles) and writes the indices. The second runs over (longitude, latitude,
// coefficient) and atomically adds Y_c(theta, phi)*coefficients[c] into the
// point's value. Because Launch waits for completion, no accumulation can
// observe a point before its reset.
func SampleSum[T sh.Floats](pool *workerpool.Pool, coefficientCount int, tessellations sh.Dim2, coefficients []T, points []sh.Point[T], indices []uint32, baseIndex uint32) {
	surface := sh.Dim3{X: tessellations.X, Y: tessellations.Y, Z: 1}
	block2D := workerpool.BlockSize2D()
	pool.Launch(workerpool.GridSize(surface, block2D), block2D, func(thread sh.Dim3) {
		longitude, latitude := thread.X, thread.Y
		if longitude >= tessellations.X || latitude >= tessellations.Y {
			return
		}

		theta, phi := Angles[T](tessellations, longitude, latitude)
		points[latitude+longitude*tessellations.Y] = sh.Point[T]{Theta: theta, Phi: phi}
		writeQuad(indices, tessellations, longitude, latitude, baseIndex)
	})

	volume := sh.Dim3{X: tessellations.X, Y: tessellations.Y, Z: coefficientCount}
	block3D := workerpool.BlockSize3D()
	pool.Launch(workerpool.GridSize(volume, block3D), block3D, func(thread sh.Dim3) {
		longitude, latitude, coefficientIndex := thread.X, thread.Y, thread.Z
		if longitude >= tessellations.X || latitude >= tessellations.Y || coefficientIndex >= coefficientCount {
			return
		}

		theta, phi := Angles[T](tessellations, longitude, latitude)
		sh.AtomicAdd(
			&points[latitude+longitude*tessellations.Y].Value,
			sh.EvaluateIndex(coefficientIndex, theta, phi)*coefficients[coefficientIndex])
	})
}

// SampleSums is the batched SampleSum: one reconstruction per instance of
// the dims grid.
//
// Instance i (linear index dims.Linear(coord)) reads coefficients
// [i*coefficientCount, ...), writes points [i*X*Y, ...) and indices
// [6*i*X*Y, ...). Its indices are offset by baseIndex + i*X*Y, so the whole
// index buffer addresses the whole point buffer as a single mesh.
func SampleSums[T sh.Floats](pool *workerpool.Pool, dims sh.Dim3, coefficientCount int, tessellations sh.Dim2, coefficients []T, points []sh.Point[T], indices []uint32, baseIndex uint32) {
	pointCount := PointCount(tessellations)
	indexCount := IndexCount(tessellations)

	block := workerpool.BlockSize3D()
	pool.LaunchNested(workerpool.GridSize(dims, block), block, func(instance sh.Dim3) {
		if !dims.Contains(instance) {
			return
		}

		volumeIndex := dims.Linear(instance)
		coefficientsOffset := volumeIndex * coefficientCount
		pointsOffset := volumeIndex * pointCount
		indicesOffset := volumeIndex * indexCount

		SampleSum(pool, coefficientCount, tessellations,
			coefficients[coefficientsOffset:coefficientsOffset+coefficientCount],
			points[pointsOffset:pointsOffset+pointCount],
			indices[indicesOffset:indicesOffset+indexCount],
			baseIndex+uint32(pointsOffset))
	})
}
