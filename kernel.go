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
	"errors"
	"fmt"

	"seehuhn.de/go/lca/linalg"
)

// ErrNotDiscrete indicates that an operation which is only implemented
// for finitely generated groups was applied to a group with continuous
// factors.
var ErrNotDiscrete = errors.New("group has continuous factors")

// augmented returns the matrix [A | diag(p)], where A is the matrix of
// phi and p are the periods of the target group.  Integer relations in
// the target group correspond to integer solutions of [A | diag(p)].
func (phi *Morphism) augmented() (*linalg.Matrix, error) {
	if !phi.source.Discrete() || !phi.target.Discrete() {
		return nil, ErrNotDiscrete
	}
	if !phi.a.IsIntegral() {
		return nil, linalg.ErrNotIntegral
	}
	m, n := phi.a.Rows(), phi.a.Cols()
	aug := linalg.New(m, n+m)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			aug.SetRat(i, j, phi.a.At(i, j))
		}
		aug.SetInt64(i, n+i, int64(phi.target.periods[i]))
	}
	return aug, nil
}

// Kernel returns a morphism from a free group Z^k into the source of phi
// whose image is the kernel of phi.  Adding the image of the result to
// any point of the source enumerates the full coset of that point.
//
// Source and target of phi must be finitely generated, otherwise
// [ErrNotDiscrete] is returned.
func (phi *Morphism) Kernel() (*Morphism, error) {
	aug, err := phi.augmented()
	if err != nil {
		return nil, err
	}
	null, err := linalg.FreeKernel(aug)
	if err != nil {
		return nil, err
	}

	// Only the first n rows describe source coordinates.  Basis vectors
	// which are zero in these rows merely adjust multiples of the
	// moduli and are omitted.
	n := phi.source.Dim()
	var cols []int
	for j := 0; j < null.Cols(); j++ {
		zero := true
		for i := 0; i < n; i++ {
			if null.At(i, j).Sign() != 0 {
				zero = false
				break
			}
		}
		if !zero {
			cols = append(cols, j)
		}
	}

	k := linalg.New(n, len(cols))
	for i := 0; i < n; i++ {
		for jj, j := range cols {
			k.SetRat(i, jj, null.At(i, j))
		}
	}
	return &Morphism{
		a:      k,
		source: FGA(make([]int, len(cols))...),
		target: phi.source.Copy(),
	}, nil
}

// Cokernel returns an epimorphism from the target of phi onto the
// quotient of the target by the image of phi.  The quotient may contain
// trivial factors Z_1.
//
// Source and target of phi must be finitely generated, otherwise
// [ErrNotDiscrete] is returned.
func (phi *Morphism) Cokernel() (*Morphism, error) {
	aug, err := phi.augmented()
	if err != nil {
		return nil, err
	}
	s, u, _, err := linalg.SmithNormalForm(aug)
	if err != nil {
		return nil, err
	}

	m := phi.target.Dim()
	periods := make([]int, m)
	for i := 0; i < m; i++ {
		d := s.At(i, i).Num()
		if !d.IsInt64() {
			return nil, fmt.Errorf("lca: cokernel period %s overflows", d)
		}
		periods[i] = int(d.Int64())
	}
	return &Morphism{
		a:      u,
		source: phi.target.Copy(),
		target: FGA(periods...),
	}, nil
}
