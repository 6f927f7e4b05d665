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

	"seehuhn.de/go/lca/linalg"
)

// A Morphism is a continuous homomorphism between two groups, given by a
// matrix acting on coordinate vectors.  Row i of the matrix describes
// coordinate i of the image, so the matrix has Target().Dim() rows and
// Source().Dim() columns.
//
// Matrix entries are exact rational numbers.  Morphisms between finitely
// generated groups have integer matrices; rational entries occur for
// maps involving the continuous groups R and T, for example as duals of
// integer morphisms.
//
// Whether the matrix actually descends to a well-defined map between the
// two groups is not verified.
//
// Morphism values are immutable once created.
type Morphism struct {
	a      *linalg.Matrix
	source *Group
	target *Group
}

// NewMorphism creates a morphism from source to target.  The matrix must
// have target.Dim() rows and source.Dim() columns; it is copied, so the
// caller may modify a afterwards.
func NewMorphism(a *linalg.Matrix, source, target *Group) (*Morphism, error) {
	if a.Rows() != target.Dim() || a.Cols() != source.Dim() {
		return nil, fmt.Errorf("lca: %dx%d matrix cannot map %s to %s",
			a.Rows(), a.Cols(), source, target)
	}
	return &Morphism{
		a:      a.Clone(),
		source: source.Copy(),
		target: target.Copy(),
	}, nil
}

// MorphismFromInts creates a morphism with integer matrix entries.  Rows
// correspond to target coordinates, columns to source coordinates.
func MorphismFromInts(rows [][]int, source, target *Group) (*Morphism, error) {
	return NewMorphism(linalg.FromInts(rows), source, target)
}

// Identity returns the identity morphism of the group g.
func Identity(g *Group) *Morphism {
	return &Morphism{
		a:      linalg.Identity(g.Dim()),
		source: g.Copy(),
		target: g.Copy(),
	}
}

// Source returns the source group of the morphism.
func (phi *Morphism) Source() *Group {
	return phi.source
}

// Target returns the target group of the morphism.
func (phi *Morphism) Target() *Group {
	return phi.target
}

// Matrix returns a copy of the matrix of the morphism.
func (phi *Morphism) Matrix() *linalg.Matrix {
	return phi.a.Clone()
}

// Evaluate applies the morphism to a point of the source group.  The
// point is reduced to canonical source coordinates first, and the result
// is reduced to canonical target coordinates.
func (phi *Morphism) Evaluate(x []float64) []float64 {
	return phi.target.Project(phi.a.ApplyVec(phi.source.Project(x)))
}

// Compose returns the composition of phi and psi, the morphism which
// first applies psi and then phi.  The target of psi must equal the
// source of phi.
func (phi *Morphism) Compose(psi *Morphism) (*Morphism, error) {
	if !psi.target.Equal(phi.source) {
		return nil, fmt.Errorf("lca: cannot compose %s -> %s with %s -> %s",
			psi.source, psi.target, phi.source, phi.target)
	}
	return &Morphism{
		a:      phi.a.Mul(psi.a),
		source: psi.source.Copy(),
		target: phi.target.Copy(),
	}, nil
}

// Equal reports whether two morphisms have the same matrix, source and
// target.
func (phi *Morphism) Equal(other *Morphism) bool {
	return phi.a.Equal(other.a) &&
		phi.source.Equal(other.source) &&
		phi.target.Equal(other.target)
}

// String returns a description of the morphism, including its matrix,
// source and target.
func (phi *Morphism) String() string {
	return fmt.Sprintf("%s: %s -> %s", phi.a, phi.source, phi.target)
}

// LaTeX returns the morphism in LaTeX notation.
func (phi *Morphism) LaTeX() string {
	return fmt.Sprintf(`%s\colon %s \to %s`,
		phi.a.LaTeX(), phi.source.LaTeX(), phi.target.LaTeX())
}
