// seehuhn.de/go/lca - a library for computations on locally compact abelian groups
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package linalg implements exact linear algebra over the rational numbers
// and the integers.  It provides dense matrices with arbitrary precision
// entries, the Smith normal form, integer null spaces, and a solver for
// systems of linear congruences.
package linalg

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrNotIntegral indicates that a matrix with non-integer entries was used
// in a place where an integer matrix is required.
var ErrNotIntegral = errors.New("matrix is not integral")

// Matrix is a dense matrix with exact rational entries.
//
// Use [New], [FromInts] or [Identity] to create matrices.
type Matrix struct {
	rows, cols int
	a          []big.Rat // entries in row-major order
}

// New creates a zero matrix with the given dimensions.
func New(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic("linalg: negative matrix dimension")
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		a:    make([]big.Rat, rows*cols),
	}
}

// FromInts creates a matrix from rows of integers.
// All rows must have the same length.
func FromInts(rows [][]int) *Matrix {
	numRows := len(rows)
	numCols := 0
	if numRows > 0 {
		numCols = len(rows[0])
	}
	m := New(numRows, numCols)
	for i, row := range rows {
		if len(row) != numCols {
			panic("linalg: rows have different lengths")
		}
		for j, x := range row {
			m.a[i*numCols+j].SetInt64(int64(x))
		}
	}
	return m
}

// Identity returns the n by n identity matrix.
func Identity(n int) *Matrix {
	m := New(n, n)
	for i := 0; i < n; i++ {
		m.a[i*n+i].SetInt64(1)
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns a pointer to the entry in row i and column j.  The value is
// owned by the matrix; modifying it changes the matrix.
func (m *Matrix) At(i, j int) *big.Rat {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic("linalg: matrix index out of range")
	}
	return &m.a[i*m.cols+j]
}

// SetInt64 sets the entry in row i and column j to the integer x.
func (m *Matrix) SetInt64(i, j int, x int64) {
	m.At(i, j).SetInt64(x)
}

// SetRat sets the entry in row i and column j to the value of x.
func (m *Matrix) SetRat(i, j int, x *big.Rat) {
	m.At(i, j).Set(x)
}

// SetFrac sets the entry in row i and column j to num/den.
func (m *Matrix) SetFrac(i, j int, num, den int64) {
	if den == 0 {
		panic("linalg: zero denominator")
	}
	m.At(i, j).SetFrac64(num, den)
}

// Clone returns an independent copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	c := New(m.rows, m.cols)
	for i := range m.a {
		c.a[i].Set(&m.a[i])
	}
	return c
}

// Equal reports whether two matrices have the same shape and entries.
func (m *Matrix) Equal(other *Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.a {
		if m.a[i].Cmp(&other.a[i]) != 0 {
			return false
		}
	}
	return true
}

// Mul returns the matrix product of m and other.
func (m *Matrix) Mul(other *Matrix) *Matrix {
	if m.cols != other.rows {
		panic("linalg: dimension mismatch in matrix product")
	}
	res := New(m.rows, other.cols)
	tmp := new(big.Rat)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < other.cols; j++ {
			s := &res.a[i*other.cols+j]
			for k := 0; k < m.cols; k++ {
				tmp.Mul(&m.a[i*m.cols+k], &other.a[k*other.cols+j])
				s.Add(s, tmp)
			}
		}
	}
	return res
}

// Transpose returns the transposed matrix.
func (m *Matrix) Transpose() *Matrix {
	res := New(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			res.a[j*m.rows+i].Set(&m.a[i*m.cols+j])
		}
	}
	return res
}

// ApplyVec multiplies the matrix with a column vector.
// The length of x must equal the number of columns.
func (m *Matrix) ApplyVec(x []float64) []float64 {
	if len(x) != m.cols {
		panic("linalg: vector length does not match matrix")
	}
	res := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		var s float64
		for j := 0; j < m.cols; j++ {
			v, _ := m.a[i*m.cols+j].Float64()
			s += v * x[j]
		}
		res[i] = s
	}
	return res
}

// IsIntegral reports whether all entries of the matrix are integers.
func (m *Matrix) IsIntegral() bool {
	for i := range m.a {
		if !m.a[i].IsInt() {
			return false
		}
	}
	return true
}

// Ints returns the matrix entries as integers.  If an entry is not an
// integer, [ErrNotIntegral] is returned.
func (m *Matrix) Ints() ([][]*big.Int, error) {
	res := make([][]*big.Int, m.rows)
	for i := 0; i < m.rows; i++ {
		res[i] = make([]*big.Int, m.cols)
		for j := 0; j < m.cols; j++ {
			x := &m.a[i*m.cols+j]
			if !x.IsInt() {
				return nil, ErrNotIntegral
			}
			res[i][j] = new(big.Int).Set(x.Num())
		}
	}
	return res, nil
}

// String returns a compact representation of the matrix, with rows
// separated by semicolons.
func (m *Matrix) String() string {
	b := &strings.Builder{}
	b.WriteByte('[')
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(m.a[i*m.cols+j].RatString())
		}
	}
	b.WriteByte(']')
	return b.String()
}

// LaTeX returns the matrix as a LaTeX pmatrix environment.
func (m *Matrix) LaTeX() string {
	b := &strings.Builder{}
	b.WriteString(`\begin{pmatrix}`)
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			b.WriteString(` \\ `)
		}
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(" & ")
			}
			x := &m.a[i*m.cols+j]
			if x.IsInt() {
				b.WriteString(x.Num().String())
			} else {
				fmt.Fprintf(b, `\frac{%s}{%s}`, x.Num(), x.Denom())
			}
		}
	}
	b.WriteString(`\end{pmatrix}`)
	return b.String()
}
