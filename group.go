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
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/slices"
)

// A Group is a locally compact abelian group, given as a direct sum of
// elementary factors.  Each factor is described by a period together with
// a flag indicating whether the factor is discrete:
//
//	period 0, discrete:   the integers Z
//	period n>0, discrete: the cyclic group Z_n
//	period 0, continuous: the real line R
//	period n>0, continuous: the circle group R/nZ
//
// Points of the group are represented as coordinate vectors with one
// float64 coordinate per factor.
//
// Group values are immutable once created.
type Group struct {
	periods  []int
	discrete []bool
}

// New creates a group as the direct sum of len(periods) elementary
// factors.  Factor i has period periods[i] and is discrete if
// discrete[i] is true.  The two slices must have the same length and all
// periods must be non-negative.  The slices are copied.
func New(periods []int, discrete []bool) (*Group, error) {
	if len(periods) != len(discrete) {
		return nil, fmt.Errorf("lca: %d periods for %d discreteness flags",
			len(periods), len(discrete))
	}
	for i, p := range periods {
		if p < 0 {
			return nil, fmt.Errorf("lca: factor %d has negative period %d", i, p)
		}
	}
	return &Group{
		periods:  slices.Clone(periods),
		discrete: slices.Clone(discrete),
	}, nil
}

// FGA creates a finitely generated abelian group, the direct sum of
// factors Z (period 0) and Z_n (period n).  FGA panics if a period is
// negative.
func FGA(periods ...int) *Group {
	g, err := New(periods, allTrue(len(periods)))
	if err != nil {
		panic(err)
	}
	return g
}

// Z returns the group of integers.
func Z() *Group {
	return FGA(0)
}

// R returns the additive group of real numbers.
func R() *Group {
	g, _ := New([]int{0}, []bool{false})
	return g
}

// T returns the circle group R/Z.
func T() *Group {
	g, _ := New([]int{1}, []bool{false})
	return g
}

// Sum returns the direct sum of the given groups.
func Sum(groups ...*Group) *Group {
	var periods []int
	var discrete []bool
	for _, g := range groups {
		periods = append(periods, g.periods...)
		discrete = append(discrete, g.discrete...)
	}
	return &Group{periods: periods, discrete: discrete}
}

// Dim returns the number of elementary factors of the group.
func (g *Group) Dim() int {
	return len(g.periods)
}

// Periods returns the periods of the factors of the group.
func (g *Group) Periods() []int {
	return slices.Clone(g.periods)
}

// Period returns the period of factor i.
func (g *Group) Period(i int) int {
	return g.periods[i]
}

// IsDiscrete reports whether factor i of the group is discrete.
func (g *Group) IsDiscrete(i int) bool {
	return g.discrete[i]
}

// Discrete reports whether all factors of the group are discrete, i.e.
// whether the group is finitely generated.
func (g *Group) Discrete() bool {
	for _, d := range g.discrete {
		if !d {
			return false
		}
	}
	return true
}

// IsFinite reports whether the group has finitely many elements, i.e.
// whether all factors are discrete with non-zero period.
func (g *Group) IsFinite() bool {
	for i, p := range g.periods {
		if p == 0 || !g.discrete[i] {
			return false
		}
	}
	return true
}

// Project maps a coordinate vector to the canonical representative of
// its coset.  Coordinates of factors with non-zero period p are reduced
// to the interval [0, p); all other coordinates are returned unchanged.
//
// The returned slice is newly allocated; x is not modified.  Project
// panics if the length of x does not match the number of factors.
func (g *Group) Project(x []float64) []float64 {
	if len(x) != len(g.periods) {
		panic("lca: coordinate count does not match group")
	}
	res := make([]float64, len(x))
	for i, v := range x {
		if p := g.periods[i]; p > 0 {
			v = math.Mod(v, float64(p))
			if v < 0 {
				v += float64(p)
			}
		}
		res[i] = v
	}
	return res
}

// Equal reports whether two groups have the same sequence of factors.
func (g *Group) Equal(other *Group) bool {
	return slices.Equal(g.periods, other.periods) &&
		slices.Equal(g.discrete, other.discrete)
}

// Copy returns a new group with the same factors as g.
func (g *Group) Copy() *Group {
	return &Group{
		periods:  slices.Clone(g.periods),
		discrete: slices.Clone(g.discrete),
	}
}

// Dual returns the Pontryagin dual of the group.  Factorwise, the dual
// of Z is the circle group T, the dual of Z_n is Z_n, the dual of R is
// R, and the dual of a circle group is Z.
func (g *Group) Dual() *Group {
	periods := make([]int, len(g.periods))
	discrete := make([]bool, len(g.periods))
	for i, p := range g.periods {
		switch {
		case g.discrete[i] && p == 0: // Z -> T
			periods[i] = 1
			discrete[i] = false
		case g.discrete[i]: // Z_n -> Z_n
			periods[i] = p
			discrete[i] = true
		case p == 0: // R -> R
			periods[i] = 0
			discrete[i] = false
		default: // R/nZ -> Z
			periods[i] = 0
			discrete[i] = true
		}
	}
	return &Group{periods: periods, discrete: discrete}
}

// String returns a description of the group like "Z_2 ⊕ R".
// The trivial group with no factors is shown as "0".
func (g *Group) String() string {
	if len(g.periods) == 0 {
		return "0"
	}
	parts := make([]string, len(g.periods))
	for i, p := range g.periods {
		parts[i] = factorString(p, g.discrete[i])
	}
	return strings.Join(parts, " ⊕ ")
}

// LaTeX returns the group in LaTeX notation.
func (g *Group) LaTeX() string {
	if len(g.periods) == 0 {
		return "0"
	}
	parts := make([]string, len(g.periods))
	for i, p := range g.periods {
		parts[i] = factorLaTeX(p, g.discrete[i])
	}
	return strings.Join(parts, ` \oplus `)
}

func factorString(p int, discrete bool) string {
	switch {
	case discrete && p == 0:
		return "Z"
	case discrete:
		return fmt.Sprintf("Z_%d", p)
	case p == 0:
		return "R"
	case p == 1:
		return "T"
	default:
		return fmt.Sprintf("T_%d", p)
	}
}

func factorLaTeX(p int, discrete bool) string {
	switch {
	case discrete && p == 0:
		return `\mathbb{Z}`
	case discrete:
		return fmt.Sprintf(`\mathbb{Z}_{%d}`, p)
	case p == 0:
		return `\mathbb{R}`
	case p == 1:
		return `\mathbb{T}`
	default:
		return fmt.Sprintf(`\mathbb{R}/%d\mathbb{Z}`, p)
	}
}

func allTrue(n int) []bool {
	res := make([]bool, n)
	for i := range res {
		res[i] = true
	}
	return res
}
