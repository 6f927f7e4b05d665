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
	"errors"
	"fmt"
	"math/big"
)

// ErrNoSolution indicates that a system of congruences has no solution.
var ErrNoSolution = errors.New("system of congruences has no solution")

// Solve finds an integer solution x of the system of congruences
//
//	a*x = b  (mod p)
//
// where the i-th row of the system is taken modulo p[i].  A modulus of
// zero denotes an ordinary equation over the integers.  The lengths of b
// and p must equal the number of rows of a.
//
// If the system has no solution, [ErrNoSolution] is returned.  If a has
// non-integer entries, [ErrNotIntegral] is returned.
func Solve(a *Matrix, b []int64, p []int64) ([]int64, error) {
	m, n := a.rows, a.cols
	if len(b) != m || len(p) != m {
		panic("linalg: vector length does not match matrix")
	}

	w, err := a.Ints()
	if err != nil {
		return nil, err
	}

	// Appending the moduli as extra columns turns the congruence system
	// into an ordinary linear system in n+m unknowns.
	aug := make([][]*big.Int, m)
	for i := 0; i < m; i++ {
		row := make([]*big.Int, n+m)
		copy(row, w[i])
		for j := n; j < n+m; j++ {
			row[j] = big.NewInt(0)
		}
		row[n+i].SetInt64(p[i])
		aug[i] = row
	}

	s, u, v := smith(aug, m, n+m)

	// transform the right-hand side and divide by the diagonal
	c := new(big.Int)
	tmp := new(big.Int)
	sol := make([]*big.Int, n+m)
	for i := range sol {
		sol[i] = new(big.Int)
	}
	for i := 0; i < m; i++ {
		c.SetInt64(0)
		for j := 0; j < m; j++ {
			tmp.SetInt64(b[j])
			tmp.Mul(u[i][j], tmp)
			c.Add(c, tmp)
		}
		d := s[i][i]
		if d.Sign() == 0 {
			if c.Sign() != 0 {
				return nil, ErrNoSolution
			}
			continue
		}
		r := new(big.Int)
		sol[i].QuoRem(c, d, r)
		if r.Sign() != 0 {
			return nil, ErrNoSolution
		}
	}

	// map back to the original coordinates and drop the modulus part
	x := make([]int64, n)
	for i := 0; i < n; i++ {
		c.SetInt64(0)
		for j := 0; j < n+m; j++ {
			tmp.Mul(v[i][j], sol[j])
			c.Add(c, tmp)
		}
		if !c.IsInt64() {
			return nil, fmt.Errorf("linalg: solution component %d overflows int64", i)
		}
		x[i] = c.Int64()
	}
	return x, nil
}
