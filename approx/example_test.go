// SPDX-License-Identifier: MIT

package approx_test

import (
	"fmt"

	"github.com/katalvlaran/lfa/approx"
	"github.com/katalvlaran/lfa/basis"
)

// ExampleScalar_Update fits one point with a Fourier basis.
func ExampleScalar_Update() {
	b, _ := basis.NewFourier(1, []basis.Bounds{{Lo: 0, Hi: 1}})
	s, _ := approx.NewScalar(b)

	x := []float64{0.5}
	before, _ := s.Predict(x)
	_ = s.Update(x, 2-before, 1)
	after, _ := s.Predict(x)
	fmt.Printf("%.3f -> %.3f\n", before, after)
	// Output:
	// 0.000 -> 2.000
}

// ExampleVector_UpdateIndex runs a Q-learning style update on one action.
func ExampleVector_UpdateIndex() {
	b, _ := basis.NewTileCoding(4, 8, []basis.Bounds{{Lo: -1, Hi: 1}, {Lo: -1, Hi: 1}})
	q, _ := approx.NewVector(b, 3)

	state := []float64{0.1, -0.4}
	const action, reward, lr = 2, 1.0, 0.25 / 4 // rate shared over 4 tilings
	qsa, _ := q.PredictIndex(state, action)
	_ = q.UpdateIndex(state, action, reward-qsa, lr)

	values, _ := q.Predict(state)
	fmt.Printf("%.2f\n", values)
	// Output:
	// [0.00 0.00 0.25]
}
