// SPDX-License-Identifier: MIT

// Package basis - deterministic term enumeration for Polynomial and Fourier.
//
// Order (fixed, weight columns depend on it):
//   - Tuples are generated by gonum combin.Cartesian over {0..top}^dim, i.e.
//     lexicographic with the LAST coordinate varying fastest:
//     (0,0) (0,1) … (0,top) (1,0) … (top,top).
//   - Polynomial tuples (total degree <= top) are generated directly in the
//     same order, so the constant term (all zeros) is always first and the
//     cost is C(top+dim, dim), not (top+1)^dim.

package basis

import "gonum.org/v1/gonum/stat/combin"

// gridSize returns (top+1)^dim or ok=false when it exceeds MaxTerms.
func gridSize(top, dim int) (int, bool) {
	n := 1
	for k := 0; k < dim; k++ {
		n *= top + 1
		if n > MaxTerms {
			return 0, false
		}
	}

	return n, true
}

// fullGrid enumerates {0..top}^dim in lexicographic order.
func fullGrid(ctor string, top, dim int) ([][]int, error) {
	if _, ok := gridSize(top, dim); !ok {
		return nil, configErrorf(ctor, "(%d+1)^%d terms exceeds %d", top, dim, MaxTerms)
	}
	lens := make([]int, dim)
	for k := range lens {
		lens[k] = top + 1
	}

	return combin.Cartesian(lens), nil
}

// totalDegreeCount returns C(degree+dim, dim) or ok=false when it exceeds
// MaxTerms. The running product C(degree+i, i) grows with i, so it can stop
// at the first partial result over the cap.
func totalDegreeCount(degree, dim int) (int, bool) {
	if degree > MaxTerms {
		return 0, false
	}
	n := 1
	for i := 1; i <= dim; i++ {
		n = n * (degree + i) / i
		if n > MaxTerms {
			return 0, false
		}
	}

	return n, true
}

// totalDegreeTerms enumerates exponent tuples with Σe <= degree.
// Count is C(degree+dim, dim).
func totalDegreeTerms(ctor string, degree, dim int) ([][]int, error) {
	count, ok := totalDegreeCount(degree, dim)
	if !ok {
		return nil, configErrorf(ctor, "C(%d+%d, %d) terms exceeds %d", degree, dim, dim, MaxTerms)
	}
	// one backing array, every tuple a dim-wide window into it
	flat := make([]int, count*dim)
	out := make([][]int, 0, count)
	cur := make([]int, dim)

	var fill func(k, budget int)
	fill = func(k, budget int) {
		if k == dim {
			t := flat[len(out)*dim : (len(out)+1)*dim : (len(out)+1)*dim]
			copy(t, cur)
			out = append(out, t)

			return
		}
		for e := 0; e <= budget; e++ {
			cur[k] = e
			fill(k+1, budget-e)
		}
	}
	fill(0, degree)

	return out, nil
}

func sumInts(v []int) int {
	s := 0
	for _, x := range v {
		s += x
	}

	return s
}

// copyTerms deep-copies a term list.
func copyTerms(terms [][]int) [][]int {
	out := make([][]int, len(terms))
	for i, t := range terms {
		out[i] = append([]int(nil), t...)
	}

	return out
}

// validateTerms checks width dim, entries in [0,top] and, for polynomials,
// total degree <= top.
func validateTerms(ctor string, terms [][]int, dim, top int, totalDegree bool) error {
	if len(terms) == 0 {
		return configErrorf(ctor, "term list must be non-empty")
	}
	for i, t := range terms {
		if len(t) != dim {
			return configErrorf(ctor, "term %d has %d entries, want %d", i, len(t), dim)
		}
		for _, e := range t {
			if e < 0 || e > top {
				return configErrorf(ctor, "term %d entry %d outside [0,%d]", i, e, top)
			}
		}
		if totalDegree && sumInts(t) > top {
			return configErrorf(ctor, "term %d exceeds degree %d", i, top)
		}
	}

	return nil
}
