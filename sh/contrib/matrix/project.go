// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package matrix

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/ajroetker/go-sphharm/sh"
	"github.com/ajroetker/go-sphharm/sh/contrib/workerpool"
)

var (
	// ErrLengthMismatch is returned when the sample and direction counts differ.
	ErrLengthMismatch = errors.New("matrix: sample count does not match direction count")

	// ErrUnderdetermined is returned when there are fewer samples than
	// coefficients to fit.
	ErrUnderdetermined = errors.New("matrix: fewer samples than coefficients")
)

// Project fits the expansion of degree maxL that best matches samples at
// directions in the least-squares sense, returning its coefficients.
//
// The design matrix is built with CalculateMatrix and solved by QR
// factorization. len(directions) must be at least CoefficientCount(maxL).
func Project(pool *workerpool.Pool, directions []sh.Point[float64], samples []float64, maxL int) ([]float64, error) {
	if maxL < 0 {
		return nil, errors.Errorf("matrix: negative degree %d", maxL)
	}
	if len(directions) != len(samples) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d directions, %d samples", len(directions), len(samples))
	}

	vectorCount := len(directions)
	coefficientCount := sh.CoefficientCount(maxL)
	if vectorCount < coefficientCount {
		return nil, errors.Wrapf(ErrUnderdetermined, "%d samples for %d coefficients", vectorCount, coefficientCount)
	}

	design := make([]float64, vectorCount*coefficientCount)
	CalculateMatrix(pool, vectorCount, coefficientCount, directions, design)

	// A column-major vectorCount x coefficientCount buffer is the row-major
	// transpose, so gonum sees it through T().
	a := mat.NewDense(coefficientCount, vectorCount, design).T()

	var qr mat.QR
	qr.Factorize(a)

	var x mat.Dense
	if err := qr.SolveTo(&x, false, mat.NewVecDense(vectorCount, samples)); err != nil {
		return nil, errors.Wrapf(err, "matrix: solve %dx%d least squares", vectorCount, coefficientCount)
	}

	coefficients := make([]float64, coefficientCount)
	for i := range coefficients {
		coefficients[i] = x.At(i, 0)
	}
	return coefficients, nil
}
