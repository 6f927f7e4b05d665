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

package lca

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/lca/linalg"
)

func TestNewMorphism(t *testing.T) {
	a := linalg.FromInts([][]int{{1, 0}, {0, 2}})

	_, err := NewMorphism(a, FGA(0), FGA(2, 3))
	if err == nil {
		t.Error("expected error for wrong matrix shape")
	}

	phi, err := NewMorphism(a, FGA(0, 0), FGA(2, 3))
	if err != nil {
		t.Fatal(err)
	}
	if !phi.Source().Equal(FGA(0, 0)) || !phi.Target().Equal(FGA(2, 3)) {
		t.Error("wrong source or target")
	}

	// the matrix must be copied on the way in and out
	a.SetInt64(0, 0, 7)
	if phi.Matrix().At(0, 0).Num().Int64() != 1 {
		t.Error("morphism shares storage with caller matrix")
	}
	phi.Matrix().SetInt64(0, 0, 7)
	if phi.Matrix().At(0, 0).Num().Int64() != 1 {
		t.Error("Matrix() exposes internal storage")
	}
}

func TestMorphismEvaluate(t *testing.T) {
	phi, err := MorphismFromInts([][]int{{1, 0}, {0, 2}}, FGA(0, 0), FGA(2, 3))
	if err != nil {
		t.Fatal(err)
	}
	got := phi.Evaluate([]float64{3, 4})
	want := []float64{1, 2} // (3 mod 2, 8 mod 3)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected image (-want +got):\n%s", d)
	}
}

func TestCompose(t *testing.T) {
	phi, err := MorphismFromInts([][]int{{2}}, Z(), Z())
	if err != nil {
		t.Fatal(err)
	}
	psi, err := MorphismFromInts([][]int{{3}}, Z(), Z())
	if err != nil {
		t.Fatal(err)
	}

	comp, err := phi.Compose(psi)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := MorphismFromInts([][]int{{6}}, Z(), Z())
	if !comp.Equal(want) {
		t.Errorf("composition is %s, want %s", comp, want)
	}

	rho, err := MorphismFromInts([][]int{{1}}, FGA(5), FGA(5))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := phi.Compose(rho); err == nil {
		t.Error("expected error for mismatched composition")
	}
}

func TestIdentityMorphism(t *testing.T) {
	g := Sum(FGA(4), R())
	id := Identity(g)
	got := id.Evaluate([]float64{7, -1.5})
	want := []float64{3, -1.5}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected image (-want +got):\n%s", d)
	}
}

func TestMorphismString(t *testing.T) {
	phi, err := MorphismFromInts([][]int{{1, 0}, {0, 2}}, FGA(0, 0), FGA(2, 3))
	if err != nil {
		t.Fatal(err)
	}
	want := "[1 0; 0 2]: Z ⊕ Z -> Z_2 ⊕ Z_3"
	if got := phi.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
