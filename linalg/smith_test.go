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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSmithNormalForm(t *testing.T) {
	cases := []struct {
		in   [][]int
		diag []int64
	}{
		{[][]int{{1, 0}, {0, 2}}, []int64{1, 2}},
		{[][]int{{2, 0}, {0, 3}}, []int64{1, 6}},
		{[][]int{{2, 4}, {6, 8}}, []int64{2, 4}},
		{[][]int{{2, 0, 0}, {0, 3, 0}}, []int64{1, 6}},
		{[][]int{{0, 0}, {0, 0}}, []int64{0, 0}},
		{[][]int{{6}}, []int64{6}},
		{[][]int{{-4}}, []int64{4}},
	}
	for i, c := range cases {
		a := FromInts(c.in)
		s, u, v, err := SmithNormalForm(a)
		if err != nil {
			t.Fatalf("case %d: %v", i, err)
		}

		// U*A*V must reproduce S
		if got := u.Mul(a).Mul(v); !got.Equal(s) {
			t.Errorf("case %d: U*A*V = %s, want %s", i, got, s)
		}

		// S must be diagonal with the expected entries
		for r := 0; r < s.Rows(); r++ {
			for q := 0; q < s.Cols(); q++ {
				if r != q && s.At(r, q).Sign() != 0 {
					t.Errorf("case %d: S not diagonal: %s", i, s)
				}
			}
		}
		var diag []int64
		for r := 0; r < s.Rows() && r < s.Cols(); r++ {
			diag = append(diag, s.At(r, r).Num().Int64())
		}
		if d := cmp.Diff(c.diag, diag); d != "" {
			t.Errorf("case %d: unexpected diagonal (-want +got):\n%s", i, d)
		}

		// U and V must be invertible over the integers
		if det := detRat(u); det.Num().CmpAbs(big.NewInt(1)) != 0 {
			t.Errorf("case %d: det(U) = %s", i, det)
		}
		if det := detRat(v); det.Num().CmpAbs(big.NewInt(1)) != 0 {
			t.Errorf("case %d: det(V) = %s", i, det)
		}
	}
}

func TestSmithDivisibility(t *testing.T) {
	a := FromInts([][]int{{2, 4, 4}, {-6, 6, 12}, {10, 4, 16}})
	s, u, v, err := SmithNormalForm(a)
	if err != nil {
		t.Fatal(err)
	}
	if got := u.Mul(a).Mul(v); !got.Equal(s) {
		t.Errorf("U*A*V = %s, want %s", got, s)
	}
	prev := new(big.Int)
	for r := 0; r < 3; r++ {
		d := s.At(r, r).Num()
		if d.Sign() < 0 {
			t.Errorf("negative diagonal entry %s", d)
		}
		if r > 0 && d.Sign() != 0 {
			rem := new(big.Int).Rem(d, prev)
			if rem.Sign() != 0 {
				t.Errorf("diagonal entry %s not divisible by %s", d, prev)
			}
		}
		prev.Set(d)
	}
}

func TestSmithNotIntegral(t *testing.T) {
	a := New(1, 1)
	a.SetFrac(0, 0, 1, 2)
	_, _, _, err := SmithNormalForm(a)
	if err != ErrNotIntegral {
		t.Errorf("expected ErrNotIntegral, got %v", err)
	}
}

func TestFreeKernel(t *testing.T) {
	cases := []struct {
		in   [][]int
		cols int
	}{
		{[][]int{{1, 0, 2, 0}, {0, 2, 0, 3}}, 2},
		{[][]int{{2}}, 0},
		{[][]int{{1, 1}}, 1},
		{[][]int{{0}}, 1},
	}
	for i, c := range cases {
		a := FromInts(c.in)
		k, err := FreeKernel(a)
		if err != nil {
			t.Fatalf("case %d: %v", i, err)
		}
		if k.Cols() != c.cols {
			t.Errorf("case %d: kernel has %d columns, want %d", i, k.Cols(), c.cols)
		}
		if !k.IsIntegral() {
			t.Errorf("case %d: kernel basis not integral", i)
		}
		prod := a.Mul(k)
		if !prod.Equal(New(a.Rows(), k.Cols())) {
			t.Errorf("case %d: A*K = %s, want zero", i, prod)
		}
	}
}

// detRat computes the determinant of a square matrix by Gaussian
// elimination.
func detRat(m *Matrix) *big.Rat {
	n := m.Rows()
	w := m.Clone()
	det := big.NewRat(1, 1)
	tmp := new(big.Rat)
	for t := 0; t < n; t++ {
		pivot := -1
		for i := t; i < n; i++ {
			if w.At(i, t).Sign() != 0 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			return new(big.Rat)
		}
		if pivot != t {
			for j := 0; j < n; j++ {
				a, b := w.At(t, j), w.At(pivot, j)
				tmp.Set(a)
				a.Set(b)
				b.Set(tmp)
			}
			det.Neg(det)
		}
		det.Mul(det, w.At(t, t))
		for i := t + 1; i < n; i++ {
			if w.At(i, t).Sign() == 0 {
				continue
			}
			f := new(big.Rat).Quo(w.At(i, t), w.At(t, t))
			for j := t; j < n; j++ {
				tmp.Mul(f, w.At(t, j))
				w.At(i, j).Sub(w.At(i, j), tmp)
			}
		}
	}
	return det
}
