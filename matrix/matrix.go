// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the dense float64 matrix used by the network engine.
//
// Matrices are width (columns) by height (rows), row-major, and mutated in
// place. Shape violations are reported as errors wrapping ErrShapeMismatch;
// row access beyond the height reports ErrIndexOutOfRange.
//
// Example:
//
//	lhs, _ := matrix.FromSlice(3, 2, []float64{1, 2, 3, 4, 5, 6})
//	rhs, _ := matrix.FromSlice(2, 3, []float64{7, 8, 9, 10, 11, 12})
//	out := matrix.New(2, 2)
//	_ = out.Dot(lhs, rhs) // {{58, 64},
//	                      //  {139, 154}}
package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/matrix"
	"github.com/born-ml/ffnet/random"
)

// Matrix is a dense row-major matrix of float64 values.
type Matrix = matrix.Matrix

// Errors returned by matrix operations.
var (
	ErrShapeMismatch   = matrix.ErrShapeMismatch
	ErrIndexOutOfRange = matrix.ErrIndexOutOfRange
)

// New creates a zero-filled matrix of width columns and height rows.
func New(width, height int) *Matrix {
	return matrix.New(width, height)
}

// FromSlice creates a matrix from row-major values.
func FromSlice(width, height int, values []float64) (*Matrix, error) {
	return matrix.FromSlice(width, height, values)
}

// Random creates a matrix with entries drawn uniformly from [-1, 1).
func Random(width, height int, rng *random.Generator) *Matrix {
	return matrix.Random(width, height, rng)
}

// FromDense copies a gonum matrix into a new Matrix.
func FromDense(d mat.Matrix) *Matrix {
	return matrix.FromDense(d)
}
