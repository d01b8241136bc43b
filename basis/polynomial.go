// SPDX-License-Identifier: MIT

package basis

import (
	"fmt"

	"github.com/katalvlaran/lfa/features"
)

const ctxPolynomial = "Polynomial"

// Polynomial is the dense basis of monomials Π x_k^e_k over all exponent
// tuples with total degree <= Degree (see enumerate.go for the order).
// With WithBounds, each coordinate is first rescaled onto [-1, 1].
type Polynomial struct {
	degree int
	inDim  int
	bounds []Bounds // nil ⇒ raw inputs
	terms  [][]int  // exponent tuples, len == Dim()
}

// NewPolynomial builds the total-degree polynomial basis over dim inputs.
//
// Errors:
//   - ErrInvalidConfiguration when degree < 0, dim <= 0, the term count
//     exceeds MaxTerms, or WithBounds has the wrong length.
//
// Complexity: O(C(degree+dim, dim)·dim) construction and projection.
func NewPolynomial(degree, dim int, opts ...Option) (*Polynomial, error) {
	o, err := gatherOptions(ctxPolynomial, opts, optBounds)
	if err != nil {
		return nil, err
	}
	if degree < 0 {
		return nil, configErrorf(ctxPolynomial, "degree %d < 0", degree)
	}
	if dim <= 0 {
		return nil, configErrorf(ctxPolynomial, "input dimension %d <= 0", dim)
	}
	terms, err := totalDegreeTerms(ctxPolynomial, degree, dim)
	if err != nil {
		return nil, err
	}

	return newPolynomial(degree, dim, o.bounds, terms)
}

// newPolynomial is the shared tail of NewPolynomial and Build.
func newPolynomial(degree, dim int, bounds []Bounds, terms [][]int) (*Polynomial, error) {
	if degree < 0 || dim <= 0 {
		return nil, configErrorf(ctxPolynomial, "degree %d, input dimension %d", degree, dim)
	}
	if bounds != nil {
		if err := validateBounds(ctxPolynomial, bounds); err != nil {
			return nil, err
		}
		if len(bounds) != dim {
			return nil, configErrorf(ctxPolynomial, "%d bounds for %d inputs", len(bounds), dim)
		}
	}
	if err := validateTerms(ctxPolynomial, terms, dim, degree, true); err != nil {
		return nil, err
	}

	return &Polynomial{
		degree: degree,
		inDim:  dim,
		bounds: copyBounds(bounds),
		terms:  copyTerms(terms),
	}, nil
}

func (p *Polynomial) sealed() {}

// InputDim returns the configured input length.
func (p *Polynomial) InputDim() int { return p.inDim }

// Dim returns the number of monomials.
func (p *Polynomial) Dim() int { return len(p.terms) }

// IsSparse is false.
func (p *Polynomial) IsSparse() bool { return false }

// Degree returns the maximum total degree.
func (p *Polynomial) Degree() int { return p.degree }

// Project evaluates every monomial at x.
//
// Errors: *features.DimensionError on length mismatch; ErrNaNInf for a
// non-finite input or a monomial that overflows (raw inputs far outside
// [-1, 1]; WithBounds avoids this).
func (p *Polynomial) Project(x []float64) (features.Vector, error) {
	if err := checkInput(ctxPolynomial, p.inDim, x); err != nil {
		return nil, err
	}
	// powers[k*(degree+1)+e] = u_k^e, computed once per call
	stride := p.degree + 1
	powers := make([]float64, p.inDim*stride)
	for k, v := range x {
		u := v
		if p.bounds != nil {
			u = 2*p.bounds[k].Unit(v) - 1
		}
		acc := 1.0
		for e := 0; e <= p.degree; e++ {
			powers[k*stride+e] = acc
			acc *= u
		}
	}

	out := make([]float64, len(p.terms))
	for i, t := range p.terms {
		a := 1.0
		for k, e := range t {
			a *= powers[k*stride+e]
		}
		if !finite(a) {
			return nil, fmt.Errorf("%s.Project: term %d %v overflows: %w", ctxPolynomial, i, t, ErrNaNInf)
		}
		out[i] = a
	}

	return features.WrapDense(out)
}

// Config returns the plain-data description.
func (p *Polynomial) Config() Config {
	return Config{
		Kind:     KindPolynomial,
		InputDim: p.inDim,
		Degree:   p.degree,
		Bounds:   copyBounds(p.bounds),
		Terms:    copyTerms(p.terms),
	}
}
