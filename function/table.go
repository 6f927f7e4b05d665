// seehuhn.de/go/lca - a library for computations on locally compact abelian groups
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package function

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// A Table is a dense array of complex values indexed by a multi-index,
// with one dimension per factor of a finite group.  Entries are stored in
// row-major order, so the last index varies fastest.
type Table struct {
	dims []int
	data []complex128
}

// NewTable creates a table of zeros with the given dimensions.
// All dimensions must be positive.  A table with no dimensions holds a
// single entry.
func NewTable(dims []int) *Table {
	size := 1
	for _, d := range dims {
		if d <= 0 {
			panic(fmt.Sprintf("function: invalid table dimension %d", d))
		}
		size *= d
	}
	return &Table{
		dims: slices.Clone(dims),
		data: make([]complex128, size),
	}
}

// FromSlice creates a one-dimensional table containing the given values.
func FromSlice(values []complex128) *Table {
	t := NewTable([]int{len(values)})
	copy(t.data, values)
	return t
}

// FromRows creates a two-dimensional table from rows of values.
// All rows must have the same length.
func FromRows(rows [][]complex128) *Table {
	numRows := len(rows)
	numCols := 0
	if numRows > 0 {
		numCols = len(rows[0])
	}
	t := NewTable([]int{numRows, numCols})
	for i, row := range rows {
		if len(row) != numCols {
			panic("function: rows have different lengths")
		}
		copy(t.data[i*numCols:], row)
	}
	return t
}

// Dims returns the dimensions of the table.
func (t *Table) Dims() []int {
	return slices.Clone(t.dims)
}

// Size returns the total number of entries.
func (t *Table) Size() int {
	return len(t.data)
}

// At returns the entry at the given multi-index.
// At panics if an index is out of range.
func (t *Table) At(idx ...int) complex128 {
	return t.data[t.offset(idx)]
}

// Set stores a value at the given multi-index.
// Set panics if an index is out of range.
func (t *Table) Set(v complex128, idx ...int) {
	t.data[t.offset(idx)] = v
}

// Values returns the flattened entries in row-major order.  The returned
// slice is owned by the table and must not be modified.
func (t *Table) Values() []complex128 {
	return t.data
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	return &Table{
		dims: slices.Clone(t.dims),
		data: slices.Clone(t.data),
	}
}

// Equal reports whether two tables have the same dimensions and entries.
func (t *Table) Equal(other *Table) bool {
	return slices.Equal(t.dims, other.dims) &&
		slices.Equal(t.data, other.data)
}

func (t *Table) offset(idx []int) int {
	if len(idx) != len(t.dims) {
		panic(fmt.Sprintf("function: got %d indices for %d dimensions",
			len(idx), len(t.dims)))
	}
	pos := 0
	for i, n := range idx {
		if n < 0 || n >= t.dims[i] {
			panic(fmt.Sprintf("function: index %d out of range [0,%d)", n, t.dims[i]))
		}
		pos = pos*t.dims[i] + n
	}
	return pos
}
