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

// Package lca implements computations on locally compact abelian groups.
//
// Groups are represented as direct sums of the elementary groups R (the
// real line), T (the circle group), Z (the integers) and Z_n (the cyclic
// group of order n); see [Group].  Maps between groups are continuous
// homomorphisms given by matrices acting on coordinates; see [Morphism].
// For finitely generated groups the package computes kernels and
// cokernels of morphisms, and for arbitrary groups the Pontryagin dual.
//
// The subpackage seehuhn.de/go/lca/linalg provides the exact integer and
// rational arithmetic underlying these computations.  The subpackage
// seehuhn.de/go/lca/function implements complex-valued functions on
// groups, together with transport operators and discrete Fourier
// transforms.
package lca
