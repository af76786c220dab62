// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkV []float64
)

func benchDense(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	data := m.RawMatrix().Data
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}

	return m
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, 1337)
			B := benchDense(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

// BenchmarkMul compares the BLAS path (*Dense operands) with the generic
// fallback (operands hidden behind the Matrix interface).
func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		A := benchDense(b, n, 1)
		B := benchDense(b, n, 2)
		b.Run(fmt.Sprintf("dense/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
		b.Run(fmt.Sprintf("fallback/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(hide{A}, hide{B})
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, 7)
			x := make([]float64, n)
			for i := range x {
				x[i] = float64(i%3) - 1
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := matrix.MatVec(A, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Transpose(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
