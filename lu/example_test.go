// SPDX-License-Identifier: MIT

package lu_test

import (
	"fmt"

	"github.com/katalvlaran/linsolve/lu"
	"github.com/katalvlaran/linsolve/matrix"
)

// ExampleFactorize factorizes a 3×3 system once and solves it.
func ExampleFactorize() {
	a, _ := matrix.FromRows([][]float64{
		{1, 2, -1},
		{2, 1, -2},
		{-3, 1, 1},
	})
	f, err := lu.Factorize(a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	x, _ := f.Solve([]float64{3, 3, -6})
	fmt.Println("P:", f.P)
	fmt.Printf("x: [%.3f %.3f %.3f]\n", x[0], x[1], x[2])
	// Output:
	// P: [2 0 1]
	// x: [3.000 1.000 2.000]
}
