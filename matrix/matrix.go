// Copyright 2026 recore Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package matrix provides a generic, growable dense matrix backed by a flat
// row-major slice. It is the storage layer for correlation and co-occurrence
// tables built during training.
package matrix

import (
	"github.com/juju/errors"
)

var (
	// ErrInvalidDimension is returned when a matrix is created with a
	// negative number of rows or columns.
	ErrInvalidDimension = errors.New("matrix dimensions must be non-negative")
	// ErrIndexOutOfRange is returned when an element access falls outside
	// the current dimensions.
	ErrIndexOutOfRange = errors.New("matrix index out of range")
	// ErrLengthMismatch is returned when a bulk row or column assignment
	// disagrees with the matrix dimensions.
	ErrLengthMismatch = errors.New("sequence length mismatches matrix dimension")
)

// Matrix is a dense 2D store over an element type with a usable zero value.
// The backing slice is row-major, so row scans are sequential in memory.
// A matrix only ever grows; indices handed out to callers stay valid across
// AddRows and Grow.
type Matrix[T comparable] struct {
	rows int
	cols int
	data []T
}

// New creates a rows x cols matrix filled with the zero value of T.
func New[T comparable](rows, cols int) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimension
	}
	return &Matrix[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}, nil
}

// Rows returns the current number of rows.
func (m *Matrix[T]) Rows() int {
	return m.rows
}

// Columns returns the current number of columns.
func (m *Matrix[T]) Columns() int {
	return m.cols
}

// Clone returns a deep copy sharing no state with the receiver.
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return &Matrix[T]{
		rows: m.rows,
		cols: m.cols,
		data: data,
	}
}

func (m *Matrix[T]) inBounds(i, j int) bool {
	return i >= 0 && i < m.rows && j >= 0 && j < m.cols
}

// At returns the element at row i, column j.
func (m *Matrix[T]) At(i, j int) (T, error) {
	if !m.inBounds(i, j) {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return m.data[i*m.cols+j], nil
}

// Set assigns the element at row i, column j.
func (m *Matrix[T]) Set(i, j int, v T) error {
	if !m.inBounds(i, j) {
		return ErrIndexOutOfRange
	}
	m.data[i*m.cols+j] = v
	return nil
}

// Row returns a copy of row i. Mutating the returned slice does not affect
// the matrix.
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.rows {
		return nil, ErrIndexOutOfRange
	}
	row := make([]T, m.cols)
	copy(row, m.data[i*m.cols:(i+1)*m.cols])
	return row, nil
}

// Column returns a copy of column j. Mutating the returned slice does not
// affect the matrix.
func (m *Matrix[T]) Column(j int) ([]T, error) {
	if j < 0 || j >= m.cols {
		return nil, ErrIndexOutOfRange
	}
	column := make([]T, m.rows)
	for i := range column {
		column[i] = m.data[i*m.cols+j]
	}
	return column, nil
}

// SetRow overwrites row i with seq. The length of seq must equal the number
// of columns.
func (m *Matrix[T]) SetRow(i int, seq []T) error {
	if i < 0 || i >= m.rows {
		return ErrIndexOutOfRange
	}
	if len(seq) != m.cols {
		return ErrLengthMismatch
	}
	copy(m.data[i*m.cols:(i+1)*m.cols], seq)
	return nil
}

// SetColumn overwrites column j with seq. The length of seq must equal the
// number of rows.
func (m *Matrix[T]) SetColumn(j int, seq []T) error {
	if j < 0 || j >= m.cols {
		return ErrIndexOutOfRange
	}
	if len(seq) != m.rows {
		return ErrLengthMismatch
	}
	for i, v := range seq {
		m.data[i*m.cols+j] = v
	}
	return nil
}

// Fill overwrites every element with v.
func (m *Matrix[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// FillRow broadcasts v across row i.
func (m *Matrix[T]) FillRow(i int, v T) error {
	if i < 0 || i >= m.rows {
		return ErrIndexOutOfRange
	}
	for j := i * m.cols; j < (i+1)*m.cols; j++ {
		m.data[j] = v
	}
	return nil
}

// FillColumn broadcasts v across column j.
func (m *Matrix[T]) FillColumn(j int, v T) error {
	if j < 0 || j >= m.cols {
		return ErrIndexOutOfRange
	}
	for i := 0; i < m.rows; i++ {
		m.data[i*m.cols+j] = v
	}
	return nil
}

// AddRows grows the matrix to rows rows. Existing values keep their logical
// positions and new rows are zero-filled. A request not exceeding the current
// row count is a no-op, never an error.
func (m *Matrix[T]) AddRows(rows int) {
	if rows <= m.rows {
		return
	}
	// Column count is unchanged, so the row-major layout is preserved and
	// the backing slice only needs to be extended.
	data := make([]T, rows*m.cols)
	copy(data, m.data)
	m.rows = rows
	m.data = data
}

// Grow resizes the matrix to at least rows x cols. Every existing element
// keeps its logical (i, j) position, which requires remapping the backing
// slice whenever the column count changes. A request not exceeding the
// current dimensions on either axis is a no-op. A matrix never shrinks.
func (m *Matrix[T]) Grow(rows, cols int) {
	if rows <= m.rows && cols <= m.cols {
		return
	}
	if rows < m.rows {
		rows = m.rows
	}
	if cols < m.cols {
		cols = m.cols
	}
	data := make([]T, rows*cols)
	for i := 0; i < m.rows; i++ {
		copy(data[i*cols:i*cols+m.cols], m.data[i*m.cols:(i+1)*m.cols])
	}
	m.rows = rows
	m.cols = cols
	m.data = data
}

// IsSymmetric reports whether the matrix is square and equal to its
// transpose. This is a full O(n^2) scan and must not be called on a hot path.
func (m *Matrix[T]) IsSymmetric() bool {
	if m.rows != m.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := i + 1; j < m.cols; j++ {
			if m.data[i*m.cols+j] != m.data[j*m.cols+i] {
				return false
			}
		}
	}
	return true
}
