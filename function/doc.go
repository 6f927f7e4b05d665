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

// Package function implements complex-valued functions on locally compact
// abelian groups.
//
// A [Func] ties a domain group to a rule for computing values.  The rule
// is either a Go closure (see [New]) or a table of samples on a finite
// group (see [FromTable]).  Functions are moved between groups along
// morphisms:
//
//   - [Func.Pullback] composes a function with a morphism into its
//     domain.
//   - [Func.Pushforward] sums function values over the fibres of an
//     epimorphism from the domain.
//   - [Func.Transversal] places values of a function on a quotient group
//     onto chosen fibre representatives in a larger group.
//
// Functions on a common domain can be combined with [Func.Pointwise] and
// shifted with [Func.Shift].  For finite groups, [Func.DFT] and
// [Func.IDFT] compute the discrete Fourier transform as a function on the
// Pontryagin dual.
package function
