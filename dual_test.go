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
	"testing"

	"seehuhn.de/go/lca/linalg"
)

func TestMorphismDual(t *testing.T) {
	// The dual of the projection Z -> Z_10 embeds Z_10 into the circle
	// group as the multiples of 1/10.
	phi, err := MorphismFromInts([][]int{{1}}, Z(), FGA(10))
	if err != nil {
		t.Fatal(err)
	}
	got := phi.Dual()

	b := linalg.New(1, 1)
	b.SetFrac(0, 0, 1, 10)
	want, err := NewMorphism(b, FGA(10), T())
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Errorf("dual is %s, want %s", got, want)
	}
}

func TestDualFinite(t *testing.T) {
	// Duals of morphisms between finite groups keep integer matrices.
	phi, err := MorphismFromInts([][]int{{3}}, FGA(4), FGA(4))
	if err != nil {
		t.Fatal(err)
	}
	got := phi.Dual()
	want, err := MorphismFromInts([][]int{{3}}, FGA(4), FGA(4))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Errorf("dual is %s, want %s", got, want)
	}
}

func TestDoubleDual(t *testing.T) {
	cases := []*Morphism{
		mustMorphism(t, [][]int{{1}}, Z(), FGA(10)),
		mustMorphism(t, [][]int{{1, 0}, {0, 2}}, FGA(0, 0), FGA(2, 3)),
		mustMorphism(t, [][]int{{2}}, Z(), Z()),
		mustMorphism(t, [][]int{{5}}, FGA(15), FGA(15)),
	}
	for i, phi := range cases {
		if got := phi.Dual().Dual(); !got.Equal(phi) {
			t.Errorf("case %d: double dual is %s, want %s", i, got, phi)
		}
	}
}

func mustMorphism(t *testing.T, rows [][]int, source, target *Group) *Morphism {
	t.Helper()
	phi, err := MorphismFromInts(rows, source, target)
	if err != nil {
		t.Fatal(err)
	}
	return phi
}
