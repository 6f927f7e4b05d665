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

package linalg

import (
	"math/big"
)

// SmithNormalForm computes the Smith normal form of an integer matrix.
//
// The function returns matrices S, U and V such that U*A*V = S, where U
// and V are square integer matrices invertible over the integers, and S
// is a diagonal matrix with non-negative diagonal entries d_1, ..., d_r
// where each d_i divides d_{i+1}.
//
// If a has non-integer entries, [ErrNotIntegral] is returned.
func SmithNormalForm(a *Matrix) (s, u, v *Matrix, err error) {
	w, err := a.Ints()
	if err != nil {
		return nil, nil, nil, err
	}
	sw, uw, vw := smith(w, a.rows, a.cols)
	s = fromBig(sw, a.rows, a.cols)
	u = fromBig(uw, a.rows, a.rows)
	v = fromBig(vw, a.cols, a.cols)
	return s, u, v, nil
}

// FreeKernel returns a basis for the integer null space of a.
//
// The columns of the result span the lattice of all integer vectors x
// with a*x = 0.  If the null space is trivial, the result has no columns.
func FreeKernel(a *Matrix) (*Matrix, error) {
	s, _, v, err := SmithNormalForm(a)
	if err != nil {
		return nil, err
	}
	rank := 0
	for rank < s.rows && rank < s.cols {
		if s.a[rank*s.cols+rank].Sign() == 0 {
			break
		}
		rank++
	}
	res := New(a.cols, a.cols-rank)
	for i := 0; i < a.cols; i++ {
		for j := rank; j < a.cols; j++ {
			res.a[i*res.cols+(j-rank)].Set(&v.a[i*v.cols+j])
		}
	}
	return res, nil
}

// smith reduces w to Smith normal form in place and returns w together
// with the accumulated row and column operations.
func smith(w [][]*big.Int, m, n int) (s, u, v [][]*big.Int) {
	u = bigIdentity(m)
	v = bigIdentity(n)

	for t := 0; t < m && t < n; t++ {
		if !movePivot(w, u, v, t, m, n) {
			break
		}
		for {
			clearPivot(w, u, v, t, m, n)
			if !fixDivisibility(w, u, t, m, n) {
				break
			}
		}
		if w[t][t].Sign() < 0 {
			negateRow(w, u, t)
		}
	}
	return w, u, v
}

// movePivot swaps a nonzero entry of smallest absolute value from the
// submatrix starting at (t, t) into the pivot position.  It returns false
// if the submatrix is zero.
func movePivot(w, u, v [][]*big.Int, t, m, n int) bool {
	pi, pj := -1, -1
	var best *big.Int
	abs := new(big.Int)
	for i := t; i < m; i++ {
		for j := t; j < n; j++ {
			if w[i][j].Sign() == 0 {
				continue
			}
			abs.Abs(w[i][j])
			if best == nil || abs.Cmp(best) < 0 {
				best = new(big.Int).Set(abs)
				pi, pj = i, j
			}
		}
	}
	if pi < 0 {
		return false
	}
	if pi != t {
		swapRows(w, u, t, pi)
	}
	if pj != t {
		swapCols(w, v, t, pj)
	}
	return true
}

// clearPivot performs row and column operations until all entries below
// and to the right of the pivot (t, t) are zero.  Whenever a division
// leaves a remainder, the remainder is swapped into the pivot position,
// so the absolute value of the pivot strictly decreases and the loop
// terminates.
func clearPivot(w, u, v [][]*big.Int, t, m, n int) {
	q := new(big.Int)
	for {
		again := false
		for i := t + 1; i < m; i++ {
			if w[i][t].Sign() == 0 {
				continue
			}
			q.Quo(w[i][t], w[t][t])
			if q.Sign() != 0 {
				subRow(w, u, i, t, q)
			}
			if w[i][t].Sign() != 0 {
				swapRows(w, u, t, i)
				again = true
			}
		}
		if again {
			continue
		}
		for j := t + 1; j < n; j++ {
			if w[t][j].Sign() == 0 {
				continue
			}
			q.Quo(w[t][j], w[t][t])
			if q.Sign() != 0 {
				subCol(w, v, j, t, q)
			}
			if w[t][j].Sign() != 0 {
				swapCols(w, v, t, j)
				again = true
			}
		}
		if !again {
			return
		}
	}
}

// fixDivisibility checks whether the pivot divides all entries of the
// remaining submatrix.  If some entry is not divisible, its row is added
// to row t and true is returned, indicating that the pivot must be
// cleared again.
func fixDivisibility(w, u [][]*big.Int, t, m, n int) bool {
	r := new(big.Int)
	for i := t + 1; i < m; i++ {
		for j := t + 1; j < n; j++ {
			r.Rem(w[i][j], w[t][t])
			if r.Sign() != 0 {
				addRow(w, u, t, i)
				return true
			}
		}
	}
	return false
}

func bigIdentity(n int) [][]*big.Int {
	res := make([][]*big.Int, n)
	for i := range res {
		res[i] = make([]*big.Int, n)
		for j := range res[i] {
			res[i][j] = big.NewInt(0)
		}
		res[i][i].SetInt64(1)
	}
	return res
}

func swapRows(w, u [][]*big.Int, i, j int) {
	w[i], w[j] = w[j], w[i]
	u[i], u[j] = u[j], u[i]
}

func swapCols(w, v [][]*big.Int, i, j int) {
	for r := range w {
		w[r][i], w[r][j] = w[r][j], w[r][i]
	}
	for r := range v {
		v[r][i], v[r][j] = v[r][j], v[r][i]
	}
}

// subRow subtracts q times row t from row i, in w and u.
func subRow(w, u [][]*big.Int, i, t int, q *big.Int) {
	tmp := new(big.Int)
	for j := range w[i] {
		tmp.Mul(q, w[t][j])
		w[i][j].Sub(w[i][j], tmp)
	}
	for j := range u[i] {
		tmp.Mul(q, u[t][j])
		u[i][j].Sub(u[i][j], tmp)
	}
}

// subCol subtracts q times column t from column j, in w and v.
func subCol(w, v [][]*big.Int, j, t int, q *big.Int) {
	tmp := new(big.Int)
	for i := range w {
		tmp.Mul(q, w[i][t])
		w[i][j].Sub(w[i][j], tmp)
	}
	for i := range v {
		tmp.Mul(q, v[i][t])
		v[i][j].Sub(v[i][j], tmp)
	}
}

// addRow adds row i to row t, in w and u.
func addRow(w, u [][]*big.Int, t, i int) {
	for j := range w[t] {
		w[t][j].Add(w[t][j], w[i][j])
	}
	for j := range u[t] {
		u[t][j].Add(u[t][j], u[i][j])
	}
}

// negateRow negates row t, in w and u.
func negateRow(w, u [][]*big.Int, t int) {
	for j := range w[t] {
		w[t][j].Neg(w[t][j])
	}
	for j := range u[t] {
		u[t][j].Neg(u[t][j])
	}
}

func fromBig(w [][]*big.Int, rows, cols int) *Matrix {
	m := New(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.a[i*cols+j].SetInt(w[i][j])
		}
	}
	return m
}
