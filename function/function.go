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
	"fmt"
	"math"
	"sync"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/lca"
)

// An Evaluator computes the value of a function at a point of its domain.
// The argument slice must not be modified or retained.
type Evaluator func(x []float64) complex128

// representation is the rule for computing the values of a Func.
// Implementations receive points in canonical domain coordinates.
type representation interface {
	eval(x []float64) (complex128, error)

	// name returns a short label for display purposes.
	name() string
}

// A Func is a complex-valued function on a locally compact abelian group.
//
// Funcs are created with [New] or [FromTable].  Methods like
// [Func.Pullback], [Func.Shift] and [Func.Pointwise] derive new functions
// from existing ones; the original is never modified.
type Func struct {
	domain *lca.Group
	rep    representation

	mu  sync.Mutex
	tab *Table // lazily filled by Table
}

// New creates a function on the given domain.  Values are computed by
// calling eval with canonical domain coordinates.
func New(domain *lca.Group, eval Evaluator) *Func {
	return NewNamed(domain, "f", eval)
}

// NewNamed is like [New] but sets the name used when the function is
// displayed.
func NewNamed(domain *lca.Group, name string, eval Evaluator) *Func {
	if eval == nil {
		panic("function: nil evaluator")
	}
	return &Func{
		domain: domain.Copy(),
		rep:    &closure{fn: eval, label: name},
	}
}

// FromTable creates a function on a finite group whose values are given
// by a table of samples.  The dimensions of the table must equal the
// periods of the domain.  The table is copied.
func FromTable(domain *lca.Group, tab *Table) (*Func, error) {
	if !domain.IsFinite() {
		return nil, fmt.Errorf("function: domain %s is not finite: %w",
			domain, ErrUnsupportedDomain)
	}
	if !slices.Equal(tab.dims, domain.Periods()) {
		return nil, &ShapeError{Want: domain.Periods(), Got: tab.Dims()}
	}
	own := tab.Clone()
	return &Func{
		domain: domain.Copy(),
		rep:    &tableRep{tab: own, label: "table"},
		tab:    own,
	}, nil
}

// Domain returns the group the function is defined on.
func (f *Func) Domain() *lca.Group {
	return f.domain
}

// Evaluate computes the value of the function at the given point.  The
// number of coordinates must match the number of factors of the domain.
// The point is reduced to canonical coordinates before evaluation, so
// for example a function on Z_10 takes the same value at 11 and at 1.
func (f *Func) Evaluate(x ...float64) (complex128, error) {
	if len(x) != f.domain.Dim() {
		return 0, &ArgumentError{Dim: f.domain.Dim(), Got: len(x)}
	}
	return f.rep.eval(f.domain.Project(x))
}

// Sample evaluates the function at each of the given points.
func (f *Func) Sample(points [][]float64) ([]complex128, error) {
	res := make([]complex128, len(points))
	for i, x := range points {
		v, err := f.Evaluate(x...)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		res[i] = v
	}
	return res, nil
}

// Table evaluates the function at every point of a finite domain and
// returns the values as a table.  The table is computed at most once and
// then shared between calls; the caller must not modify it.
//
// If the domain is not finite, [ErrUnsupportedDomain] is returned.
func (f *Func) Table() (*Table, error) {
	if !f.domain.IsFinite() {
		return nil, fmt.Errorf("function: domain %s is not finite: %w",
			f.domain, ErrUnsupportedDomain)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tab != nil {
		return f.tab, nil
	}

	dims := f.domain.Periods()
	tab := NewTable(dims)
	idx := make([]int, len(dims))
	x := make([]float64, len(dims))
	pos := 0
	for {
		for i, v := range idx {
			x[i] = float64(v)
		}
		v, err := f.rep.eval(x)
		if err != nil {
			return nil, err
		}
		tab.data[pos] = v
		pos++
		if !nextIndex(idx, dims) {
			break
		}
	}
	f.tab = tab
	return tab, nil
}

// Copy returns a function with the same domain and rule as f.  The copy
// does not share cached tables with the original.
func (f *Func) Copy() *Func {
	return &Func{domain: f.domain.Copy(), rep: f.rep}
}

// String returns a short description of the function.
func (f *Func) String() string {
	return fmt.Sprintf("%s on %s", f.rep.name(), f.domain)
}

// LaTeX returns a description of the function in LaTeX notation.
func (f *Func) LaTeX() string {
	return fmt.Sprintf(`%s \colon %s \to \mathbb{C}`,
		f.rep.name(), f.domain.LaTeX())
}

// nextIndex advances a multi-index in row-major order.  It returns false
// when the index wraps around to all zeros.
func nextIndex(idx, dims []int) bool {
	for i := len(idx) - 1; i >= 0; i-- {
		idx[i]++
		if idx[i] < dims[i] {
			return true
		}
		idx[i] = 0
	}
	return false
}

// closure computes values by calling a user-supplied function.
type closure struct {
	fn    Evaluator
	label string
}

func (c *closure) eval(x []float64) (complex128, error) {
	return c.fn(x), nil
}

func (c *closure) name() string {
	return c.label
}

// tableRep computes values by looking them up in a table of samples.
type tableRep struct {
	tab   *Table
	label string
}

func (r *tableRep) eval(x []float64) (complex128, error) {
	idx := make([]int, len(x))
	for i, v := range x {
		n, err := roundIndex(v)
		if err != nil {
			return 0, err
		}
		// Transport operators produce coordinates outside the
		// fundamental domain; reduce modulo the period.
		n %= r.tab.dims[i]
		if n < 0 {
			n += r.tab.dims[i]
		}
		idx[i] = n
	}
	return r.tab.At(idx...), nil
}

func (r *tableRep) name() string {
	return r.label
}

// indexTol bounds how far a coordinate may be from an integer and still
// be accepted as a table index.
const indexTol = 1e-9

// roundIndex converts a coordinate of a discrete group to an integer.
func roundIndex(v float64) (int, error) {
	n := math.Round(v)
	if math.Abs(v-n) > indexTol {
		return 0, fmt.Errorf("function: coordinate %g is not an integer", v)
	}
	return int(n), nil
}
