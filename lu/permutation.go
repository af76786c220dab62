// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// Permutation is a row ordering: row i of P·A is row p[i] of A.
// A valid Permutation of size n holds every index 0..n-1 exactly once.
type Permutation []int

// Identity returns the identity ordering of size n.
func Identity(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Validate reports ErrPermutation unless p is a bijection on 0..len(p)-1.
func (p Permutation) Validate() error {
	seen := make([]bool, len(p))
	for i, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return fmt.Errorf("%w: entry %d = %d", ErrPermutation, i, v)
		}
		seen[v] = true
	}

	return nil
}

// Matrix returns the n×n 0/1 form with P[i, p[i]] = 1.
func (p Permutation) Matrix() (*matrix.Dense, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	P, err := matrix.NewDense(len(p), len(p))
	if err != nil {
		return nil, err
	}
	raw := P.RawMatrix()
	for i, v := range p {
		raw.Data[i*raw.Stride+v] = 1
	}

	return P, nil
}

// Apply returns P·x, i.e. out[i] = x[p[i]].
func (p Permutation) Apply(x []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(x, len(p)); err != nil {
		return nil, luErrorf(opApply, err)
	}
	out := make([]float64, len(p))
	for i, v := range p {
		out[i] = x[v]
	}

	return out, nil
}

// Sign returns +1 for an even permutation and -1 for an odd one.
func (p Permutation) Sign() float64 {
	visited := make([]bool, len(p))
	sign := 1.0
	for i := range p {
		if visited[i] {
			continue
		}
		// a cycle of length L contributes L-1 transpositions
		length := 0
		for j := i; !visited[j]; j = p[j] {
			visited[j] = true
			length++
		}
		if length%2 == 0 {
			sign = -sign
		}
	}

	return sign
}
