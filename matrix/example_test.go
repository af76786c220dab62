package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// ExampleMul multiplies two small matrices and prints the result row by row.
func ExampleMul() {
	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]float64{{0, 1}, {1, 0}})
	c, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(c)
	// Output:
	// [2, 1]
	// [4, 3]
}

// ExampleResidualNorm checks a candidate solution of A·x = b.
func ExampleResidualNorm() {
	a, _ := matrix.FromRows([][]float64{{2, 0}, {0, 4}})
	r, _ := matrix.ResidualNorm(a, []float64{1, 1}, []float64{2, 7})
	fmt.Println(r)
	// Output:
	// 3
}
