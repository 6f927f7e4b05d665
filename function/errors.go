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

package function

import (
	"errors"
	"fmt"
)

// ErrDomainMismatch indicates that the groups involved in an operation do
// not fit together, for example when a morphism ends in a group different
// from the domain of the function it is applied to.
var ErrDomainMismatch = errors.New("domains do not match")

// ErrUnsupportedDomain indicates that an operation requires a finite or
// finitely generated domain and the given group is not of this kind.
var ErrUnsupportedDomain = errors.New("unsupported domain")

// ArgumentError indicates that a point has the wrong number of
// coordinates for the domain of a function.
type ArgumentError struct {
	Dim int // number of factors of the domain
	Got int // number of coordinates given
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("function: argument has %d coordinates, domain has %d factors",
		e.Got, e.Dim)
}

// ShapeError indicates that the dimensions of a table do not match the
// periods of the domain group.
type ShapeError struct {
	Want []int // periods of the domain
	Got  []int // dimensions of the table
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("function: table dimensions %v do not match domain periods %v",
		e.Got, e.Want)
}
