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

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"

	"seehuhn.de/go/lca"
	"seehuhn.de/go/lca/linalg"
)

// Pullback returns the composition of f with phi, a function on the
// source of phi.  The target of phi must equal the domain of f.
func (f *Func) Pullback(phi *lca.Morphism) (*Func, error) {
	if !phi.Target().Equal(f.domain) {
		return nil, fmt.Errorf("function: pullback along %s -> %s of function on %s: %w",
			phi.Source(), phi.Target(), f.domain, ErrDomainMismatch)
	}
	return &Func{
		domain: phi.Source().Copy(),
		rep:    &pullback{of: f.rep, phi: phi},
	}, nil
}

// pullback composes a function with a morphism into its domain.
type pullback struct {
	of  representation
	phi *lca.Morphism
}

func (p *pullback) eval(x []float64) (complex128, error) {
	return p.of.eval(p.phi.Evaluate(x))
}

func (p *pullback) name() string {
	return "pullback(" + p.of.name() + ")"
}

// defaults for PushforwardOptions
const (
	defaultWindow    = 8
	defaultNormBound = 10
)

// PushforwardOptions controls how [Func.Pushforward] enumerates the
// fibre over a point.  A nil options pointer uses the defaults.
type PushforwardOptions struct {
	// Window bounds the enumeration of kernel elements: each kernel
	// coordinate runs through the integers from -Window to Window
	// inclusive.  If Window is zero, the default of 8 is used.
	Window int

	// Admit filters the candidate preimages.  Only candidates for which
	// Admit returns true contribute to the sum.  The slice passed to
	// Admit must not be modified or retained.
	//
	// If Admit is nil, candidates with L1 norm at most 10 are admitted.
	Admit func(x []float64) bool
}

// Pushforward transfers f along an epimorphism phi whose source is the
// domain of f.  The value of the result at a point y of the target is
// the sum of the values of f over the preimages of y.
//
// The preimages are enumerated as x0 + K*c, where x0 is one solution of
// phi(x) = y, the columns of K generate the kernel of phi, and the
// integer vector c runs through a bounded window.  Candidates are
// filtered by an admissibility test before evaluation; see
// [PushforwardOptions].  For functions with unbounded support the result
// is only an approximation to the full fibre sum.
//
// Source and target of phi must be finitely generated.  If a point has
// no preimage at all, evaluating the result returns an error wrapping
// [linalg.ErrNoSolution].
func (f *Func) Pushforward(phi *lca.Morphism, opt *PushforwardOptions) (*Func, error) {
	if !phi.Source().Equal(f.domain) {
		return nil, fmt.Errorf("function: pushforward along %s -> %s of function on %s: %w",
			phi.Source(), phi.Target(), f.domain, ErrDomainMismatch)
	}
	if !phi.Source().Discrete() || !phi.Target().Discrete() {
		return nil, fmt.Errorf("function: pushforward requires finitely generated groups: %w",
			ErrUnsupportedDomain)
	}
	a := phi.Matrix()
	if !a.IsIntegral() {
		return nil, fmt.Errorf("function: pushforward morphism: %w", linalg.ErrNotIntegral)
	}

	window := defaultWindow
	admit := defaultAdmit
	if opt != nil {
		if opt.Window > 0 {
			window = opt.Window
		}
		if opt.Admit != nil {
			admit = opt.Admit
		}
	}

	kappa, err := phi.Kernel()
	if err != nil {
		return nil, err
	}
	ker, err := matrixInt64(kappa.Matrix())
	if err != nil {
		return nil, err
	}

	mod := make([]int64, phi.Target().Dim())
	for i := range mod {
		mod[i] = int64(phi.Target().Period(i))
	}

	return &Func{
		domain: phi.Target().Copy(),
		rep: &pushforward{
			of:     f.rep,
			source: phi.Source().Copy(),
			a:      a,
			mod:    mod,
			ker:    ker,
			k:      kappa.Source().Dim(),
			window: window,
			admit:  admit,
		},
	}, nil
}

// pushforward sums function values over the preimages of a point.
type pushforward struct {
	of     representation
	source *lca.Group     // domain of the summed function
	a      *linalg.Matrix // matrix of the morphism
	mod    []int64        // periods of the target group
	ker    [][]int64      // kernel generators, one row per source coordinate
	k      int            // number of kernel generators
	window int
	admit  func(x []float64) bool
}

func (p *pushforward) eval(y []float64) (complex128, error) {
	b := make([]int64, len(y))
	for i, v := range y {
		n, err := roundIndex(v)
		if err != nil {
			return 0, err
		}
		b[i] = int64(n)
	}

	x0, err := linalg.Solve(p.a, b, p.mod)
	if err != nil {
		return 0, fmt.Errorf("function: no preimage of %v: %w", y, err)
	}

	n := len(x0)
	comb := make([]int64, p.k)
	for i := range comb {
		comb[i] = -int64(p.window)
	}
	cand := make([]float64, n)

	var sum complex128
	for {
		for i := 0; i < n; i++ {
			c := x0[i]
			for l := 0; l < p.k; l++ {
				c += p.ker[i][l] * comb[l]
			}
			cand[i] = float64(c)
		}
		// The admissibility test sees the raw lattice point; the
		// function is evaluated at canonical coordinates.
		if p.admit(cand) {
			v, err := p.of.eval(p.source.Project(cand))
			if err != nil {
				return 0, err
			}
			sum += v
		}
		if !nextComb(comb, int64(p.window)) {
			break
		}
	}
	return sum, nil
}

func (p *pushforward) name() string {
	return "pushforward(" + p.of.name() + ")"
}

// defaultAdmit is the admissibility filter used when the caller does not
// provide one.
func defaultAdmit(x []float64) bool {
	return floats.Norm(x, 1) <= defaultNormBound
}

// nextComb advances the vector of kernel coefficients, each coordinate
// running from -window to window.  It returns false after the last
// combination.
func nextComb(comb []int64, window int64) bool {
	for i := len(comb) - 1; i >= 0; i-- {
		comb[i]++
		if comb[i] <= window {
			return true
		}
		comb[i] = -window
	}
	return false
}

// matrixInt64 converts an integer matrix to rows of int64 values.
func matrixInt64(m *linalg.Matrix) ([][]int64, error) {
	w, err := m.Ints()
	if err != nil {
		return nil, err
	}
	res := make([][]int64, m.Rows())
	for i, row := range w {
		res[i] = make([]int64, m.Cols())
		for j, x := range row {
			if !x.IsInt64() {
				return nil, fmt.Errorf("function: matrix entry %s overflows int64", x)
			}
			res[i][j] = x.Int64()
		}
	}
	return res, nil
}

// A TransversalRule chooses, for each point y of a quotient group, the
// fibre representative which should carry the function value at y.
// Returning nil rejects the point.
type TransversalRule func(y []float64) []float64

// Transversal moves a function on the target of an epimorphism phi onto
// a section of the source.  The value of the result at a point x is
// f(phi(x)) if rule(phi(x)) returns x, and fallback otherwise.  The rule
// thus selects one representative in each fibre of phi; at all other
// points the result has the value fallback.
//
// The target of phi must equal the domain of f.
func (f *Func) Transversal(phi *lca.Morphism, rule TransversalRule, fallback complex128) (*Func, error) {
	if !phi.Target().Equal(f.domain) {
		return nil, fmt.Errorf("function: transversal along %s -> %s of function on %s: %w",
			phi.Source(), phi.Target(), f.domain, ErrDomainMismatch)
	}
	if rule == nil {
		panic("function: nil transversal rule")
	}
	return &Func{
		domain: phi.Source().Copy(),
		rep:    &section{of: f.rep, phi: phi, rule: rule, fallback: fallback},
	}, nil
}

// section places values of a function on a quotient group onto chosen
// fibre representatives.
type section struct {
	of       representation
	phi      *lca.Morphism
	rule     TransversalRule
	fallback complex128
}

func (s *section) eval(x []float64) (complex128, error) {
	y := s.phi.Evaluate(x)
	r := s.rule(y)
	if r == nil || !slices.Equal(r, x) {
		return s.fallback, nil
	}
	return s.of.eval(y)
}

func (s *section) name() string {
	return "section(" + s.of.name() + ")"
}

// An Operator combines two function values into one.
type Operator func(a, b complex128) complex128

// Pointwise combines two functions on the same domain value by value.
func (f *Func) Pointwise(other *Func, op Operator) (*Func, error) {
	return f.pointwise(other, op, "op")
}

// Add returns the pointwise sum of two functions on the same domain.
func (f *Func) Add(other *Func) (*Func, error) {
	return f.pointwise(other, func(a, b complex128) complex128 { return a + b }, "+")
}

// Mul returns the pointwise product of two functions on the same domain.
func (f *Func) Mul(other *Func) (*Func, error) {
	return f.pointwise(other, func(a, b complex128) complex128 { return a * b }, "*")
}

func (f *Func) pointwise(other *Func, op Operator, opName string) (*Func, error) {
	if !f.domain.Equal(other.domain) {
		return nil, fmt.Errorf("function: cannot combine functions on %s and %s: %w",
			f.domain, other.domain, ErrDomainMismatch)
	}
	if op == nil {
		panic("function: nil operator")
	}
	return &Func{
		domain: f.domain.Copy(),
		rep:    &pointwise{left: f.rep, right: other.rep, op: op, opName: opName},
	}, nil
}

// pointwise combines the values of two functions.
type pointwise struct {
	left, right representation
	op          Operator
	opName      string
}

func (p *pointwise) eval(x []float64) (complex128, error) {
	a, err := p.left.eval(x)
	if err != nil {
		return 0, err
	}
	b, err := p.right.eval(x)
	if err != nil {
		return 0, err
	}
	return p.op(a, b), nil
}

func (p *pointwise) name() string {
	if p.opName == "op" {
		return "op(" + p.left.name() + ", " + p.right.name() + ")"
	}
	return "(" + p.left.name() + " " + p.opName + " " + p.right.name() + ")"
}

// Shift translates the function by delta, so that the result at x has
// the value of f at x-delta.  The length of delta must match the number
// of factors of the domain.
func (f *Func) Shift(delta []float64) (*Func, error) {
	if len(delta) != f.domain.Dim() {
		return nil, &ArgumentError{Dim: f.domain.Dim(), Got: len(delta)}
	}
	domain := f.domain.Copy()
	return &Func{
		domain: domain,
		rep:    &shifted{of: f.rep, domain: domain, delta: slices.Clone(delta)},
	}, nil
}

// shifted translates the argument of a function.
type shifted struct {
	of     representation
	domain *lca.Group
	delta  []float64
}

func (s *shifted) eval(x []float64) (complex128, error) {
	y := make([]float64, len(x))
	for i := range x {
		y[i] = x[i] - s.delta[i]
	}
	return s.of.eval(s.domain.Project(y))
}

func (s *shifted) name() string {
	return "shift(" + s.of.name() + ")"
}
