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
)

func TestNewGroup(t *testing.T) {
	_, err := New([]int{1, 2}, []bool{true})
	if err == nil {
		t.Error("expected error for mismatched slice lengths")
	}

	_, err = New([]int{-1}, []bool{true})
	if err == nil {
		t.Error("expected error for negative period")
	}

	g, err := New([]int{0, 5}, []bool{false, true})
	if err != nil {
		t.Fatal(err)
	}
	if g.Dim() != 2 {
		t.Errorf("Dim() = %d, want 2", g.Dim())
	}
	if g.IsDiscrete(0) || !g.IsDiscrete(1) {
		t.Error("wrong discreteness flags")
	}
}

func TestProject(t *testing.T) {
	cases := []struct {
		group *Group
		in    []float64
		want  []float64
	}{
		{FGA(5), []float64{-3}, []float64{2}},
		{FGA(5), []float64{7}, []float64{2}},
		{FGA(5), []float64{5}, []float64{0}},
		{Z(), []float64{-3}, []float64{-3}},
		{R(), []float64{1.5}, []float64{1.5}},
		{T(), []float64{7.25}, []float64{0.25}},
		{T(), []float64{-0.25}, []float64{0.75}},
		{Sum(FGA(2), FGA(3)), []float64{3, -1}, []float64{1, 2}},
	}
	for i, c := range cases {
		in := append([]float64{}, c.in...)
		got := c.group.Project(in)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("case %d: unexpected projection (-want +got):\n%s", i, d)
		}
		if d := cmp.Diff(c.in, in); d != "" {
			t.Errorf("case %d: input modified (-want +got):\n%s", i, d)
		}
	}
}

func TestProjectPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for wrong coordinate count")
		}
	}()
	FGA(2, 3).Project([]float64{1})
}

func TestPredicates(t *testing.T) {
	cases := []struct {
		group    *Group
		discrete bool
		finite   bool
	}{
		{FGA(2, 3), true, true},
		{FGA(2, 0), true, false},
		{Z(), true, false},
		{R(), false, false},
		{T(), false, false},
		{Sum(FGA(2), R()), false, false},
		{FGA(), true, true},
	}
	for i, c := range cases {
		if got := c.group.Discrete(); got != c.discrete {
			t.Errorf("case %d: Discrete() = %t, want %t", i, got, c.discrete)
		}
		if got := c.group.IsFinite(); got != c.finite {
			t.Errorf("case %d: IsFinite() = %t, want %t", i, got, c.finite)
		}
	}
}

func TestGroupDual(t *testing.T) {
	cases := []struct {
		group *Group
		dual  *Group
	}{
		{Z(), T()},
		{T(), Z()},
		{R(), R()},
		{FGA(5), FGA(5)},
	}
	for i, c := range cases {
		if got := c.group.Dual(); !got.Equal(c.dual) {
			t.Errorf("case %d: dual of %s is %s, want %s", i, c.group, got, c.dual)
		}
		if got := c.group.Dual().Dual(); !got.Equal(c.group) {
			t.Errorf("case %d: double dual of %s is %s", i, c.group, got)
		}
	}
}

func TestGroupString(t *testing.T) {
	cases := []struct {
		group *Group
		str   string
		latex string
	}{
		{Z(), "Z", `\mathbb{Z}`},
		{FGA(5), "Z_5", `\mathbb{Z}_{5}`},
		{R(), "R", `\mathbb{R}`},
		{T(), "T", `\mathbb{T}`},
		{Sum(FGA(2), R()), "Z_2 ⊕ R", `\mathbb{Z}_{2} \oplus \mathbb{R}`},
		{FGA(), "0", "0"},
	}
	for i, c := range cases {
		if got := c.group.String(); got != c.str {
			t.Errorf("case %d: String() = %q, want %q", i, got, c.str)
		}
		if got := c.group.LaTeX(); got != c.latex {
			t.Errorf("case %d: LaTeX() = %q, want %q", i, got, c.latex)
		}
	}
}

func TestGroupCopy(t *testing.T) {
	g := Sum(FGA(2), R())
	h := g.Copy()
	if !g.Equal(h) {
		t.Error("copy differs from original")
	}
	if &g.periods[0] == &h.periods[0] {
		t.Error("copy shares storage with original")
	}
}
