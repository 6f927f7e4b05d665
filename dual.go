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

package lca

import (
	"math/big"

	"seehuhn.de/go/lca/linalg"
)

// Dual returns the Pontryagin dual of the morphism, which maps the dual
// of the target group to the dual of the source group.
//
// The matrix of the dual is the transpose of the matrix of phi, with
// entry (i, j) scaled by the ratio of the periods of source factor i and
// target factor j.  A period of zero counts as one for this purpose, so
// duals of integer morphisms between finite groups are again integer
// morphisms.
func (phi *Morphism) Dual() *Morphism {
	m, n := phi.a.Rows(), phi.a.Cols()
	b := linalg.New(n, m)
	w := new(big.Rat)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			w.SetFrac64(dualScale(phi.source.periods[i]), dualScale(phi.target.periods[j]))
			w.Mul(w, phi.a.At(j, i))
			b.SetRat(i, j, w)
		}
	}
	return &Morphism{
		a:      b,
		source: phi.target.Dual(),
		target: phi.source.Dual(),
	}
}

// dualScale returns the weight a factor contributes to character
// exponents, the period for compact or finite factors and one for Z and
// R.
func dualScale(p int) int64 {
	if p > 0 {
		return int64(p)
	}
	return 1
}
