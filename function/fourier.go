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
	"gonum.org/v1/gonum/dsp/fourier"
)

// DFT computes the discrete Fourier transform of a function on a finite
// group.  The result is a table-backed function on the Pontryagin dual
// of the domain.  Entry k of the result is
//
//	(1/N) * sum_x f(x) * exp(-2πi <k,x>)
//
// where N is the number of elements of the group and <k,x> is the sum of
// k_i*x_i/n_i over the factors Z_n_i of the domain.
//
// If the domain of f is not finite, an error wrapping
// [ErrUnsupportedDomain] is returned.
func (f *Func) DFT() (*Func, error) {
	tab, err := f.Table()
	if err != nil {
		return nil, err
	}
	out := fftTable(tab, false)
	scale := complex(1/float64(out.Size()), 0)
	for i := range out.data {
		out.data[i] *= scale
	}
	return &Func{
		domain: f.domain.Dual(),
		rep:    &tableRep{tab: out, label: "dft(" + f.rep.name() + ")"},
		tab:    out,
	}, nil
}

// IDFT computes the inverse discrete Fourier transform of a function on
// a finite group.  The result is a table-backed function on the
// Pontryagin dual of the domain.  Entry x of the result is
//
//	sum_k f(k) * exp(+2πi <k,x>)
//
// with no normalization factor, so that IDFT undoes [Func.DFT]: applying
// both in turn reproduces the original values exactly up to rounding.
//
// If the domain of f is not finite, an error wrapping
// [ErrUnsupportedDomain] is returned.
func (f *Func) IDFT() (*Func, error) {
	tab, err := f.Table()
	if err != nil {
		return nil, err
	}
	out := fftTable(tab, true)
	return &Func{
		domain: f.domain.Dual(),
		rep:    &tableRep{tab: out, label: "idft(" + f.rep.name() + ")"},
		tab:    out,
	}, nil
}

// fftTable applies an unnormalized discrete Fourier transform along
// every axis of the table.  For inverse=false the kernel exp(-2πi jk/n)
// is used, otherwise exp(+2πi jk/n).
func fftTable(t *Table, inverse bool) *Table {
	out := t.Clone()
	dims := out.dims
	for axis, n := range dims {
		if n == 1 {
			continue
		}
		fft := fourier.NewCmplxFFT(n)
		line := make([]complex128, n)
		res := make([]complex128, n)

		// Entries along the axis are stride positions apart, and lines
		// repeat in blocks of stride*n positions.
		stride := 1
		for i := axis + 1; i < len(dims); i++ {
			stride *= dims[i]
		}
		block := stride * n
		for base := 0; base < len(out.data); base += block {
			for off := 0; off < stride; off++ {
				start := base + off
				for j := 0; j < n; j++ {
					line[j] = out.data[start+j*stride]
				}
				if inverse {
					fft.Sequence(res, line)
				} else {
					fft.Coefficients(res, line)
				}
				for j := 0; j < n; j++ {
					out.data[start+j*stride] = res[j]
				}
			}
		}
	}
	return out
}
