// SPDX-License-Identifier: MIT

package stationary

import (
	"fmt"
	"sync"
)

// Method is one sweep rule over a splitting. Sweep overwrites x with the next
// iterate; scratch has len(x) and may be used freely.
type Method interface {
	Name() string
	Sweep(s *Splitting, b, x, scratch []float64)
}

// Jacobi: x⁺ = D⁻¹(b + (L+U)·x). Every component reads only the previous iterate.
type Jacobi struct{}

// Name implements Method.
func (Jacobi) Name() string { return "jacobi" }

// Sweep implements Method.
func (Jacobi) Sweep(s *Splitting, b, x, scratch []float64) {
	jacobiRange(s, b, x, scratch, 0, len(x))
	copy(x, scratch)
}

// jacobiRange writes components lo..hi-1 of the next Jacobi iterate into next.
func jacobiRange(s *Splitting, b, x, next []float64, lo, hi int) {
	for i := lo; i < hi; i++ {
		next[i] = (b[i] + s.OffDiagonal(i, x)) / s.D[i]
	}
}

// GaussSeidel is Jacobi with in-place updates: component i already sees the
// new values of components 0..i-1 from the same sweep.
type GaussSeidel struct{}

// Name implements Method.
func (GaussSeidel) Name() string { return "gauss-seidel" }

// Sweep implements Method.
func (GaussSeidel) Sweep(s *Splitting, b, x, _ []float64) {
	for i := range x {
		x[i] = (b[i] + s.OffDiagonal(i, x)) / s.D[i]
	}
}

// SOR blends the Gauss-Seidel update with the previous iterate:
// x_i ← (1-ω)·x_i + ω·gs_i. Omega == 1 is exactly Gauss-Seidel.
//
// Convergence typically needs 0 < ω < 2 and a diagonally dominant or SPD A.
// Neither is checked; outside that range the iteration silently diverges.
type SOR struct {
	Omega float64
}

// Name implements Method.
func (m SOR) Name() string { return fmt.Sprintf("sor(%g)", m.Omega) }

// Sweep implements Method.
func (m SOR) Sweep(s *Splitting, b, x, _ []float64) {
	w := m.Omega
	var gs float64
	for i := range x {
		gs = (b[i] + s.OffDiagonal(i, x)) / s.D[i]
		if w == 1 {
			x[i] = gs
			continue
		}
		x[i] = (1-w)*x[i] + w*gs
	}
}

// parallelJacobi splits a Jacobi sweep into contiguous component blocks, one
// goroutine per block. Each component reads only x and writes only its own
// slot of scratch, so the result matches the sequential sweep bit for bit.
type parallelJacobi struct {
	workers int
}

func (p parallelJacobi) Name() string { return "jacobi" }

func (p parallelJacobi) Sweep(s *Splitting, b, x, scratch []float64) {
	n := len(x)
	workers := p.workers
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			jacobiRange(s, b, x, scratch, lo, hi)
		}(lo, hi)
	}
	wg.Wait()
	copy(x, scratch)
}
