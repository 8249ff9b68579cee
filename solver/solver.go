package solver

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrDimensionMismatch    = errors.New("solver: dimension mismatch")
	ErrInvalidBoundaryIndex = errors.New("solver: fixed DOF outside system")
	ErrSingular             = errors.New("solver: singular system")
)

// Solve returns the displacements u of K u = f with u[d] = 0 for every fixed
// DOF d. K is densified, so memory grows as n²; this is a direct solver for
// small systems. Neither global nor f is modified.
func Solve(global mat.Matrix, f []float64, fixed []int) ([]float64, error) {
	n, err := checkSystem(global, f, fixed)
	if err != nil {
		return nil, err
	}

	a, err := densify(global, n)
	if err != nil {
		return nil, err
	}
	b := mat.NewVecDense(n, nil)
	b.CopyVec(mat.NewVecDense(n, f))

	// Identity row and column per fixed DOF
	for _, d := range fixed {
		for k := 0; k < n; k++ {
			a.Set(d, k, 0)
			a.Set(k, d, 0)
		}
		a.Set(d, d, 1)
		b.SetVec(d, 0)
	}

	var lu mat.LU
	lu.Factorize(a)

	u := mat.NewVecDense(n, nil)
	if err := lu.SolveVecTo(u, false, b); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, fmt.Errorf("%dx%d system, condition number %g: %w", n, n, float64(cond), ErrSingular)
		}
		return nil, fmt.Errorf("LU solve: %w", err)
	}

	out := make([]float64, n)
	for i := range out {
		v := u.AtVec(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("non-finite displacement %g at DOF %d: %w", v, i, ErrSingular)
		}
		out[i] = v
	}
	// Fixed DOFs are exactly zero, not merely within round-off
	for _, d := range fixed {
		out[d] = 0
	}
	return out, nil
}

// checkSystem validates shapes and boundary indices before any work is done
func checkSystem(global mat.Matrix, f []float64, fixed []int) (int, error) {
	if global == nil {
		return 0, fmt.Errorf("nil matrix: %w", ErrDimensionMismatch)
	}
	r, c := global.Dims()
	if r != c {
		return 0, fmt.Errorf("%dx%d not square: %w", r, c, ErrDimensionMismatch)
	}
	if r == 0 {
		return 0, fmt.Errorf("empty system: %w", ErrDimensionMismatch)
	}
	if len(f) != r {
		return 0, fmt.Errorf("force vector length %d != %d: %w", len(f), r, ErrDimensionMismatch)
	}
	for _, d := range fixed {
		if d < 0 || d >= r {
			return 0, fmt.Errorf("fixed DOF %d not in [0, %d): %w", d, r, ErrInvalidBoundaryIndex)
		}
	}
	return r, nil
}

// densify copies global into a fresh zero-filled n x n dense matrix. A NaN or
// infinite stiffness has no unique solution and is reported as singular.
func densify(global mat.Matrix, n int) (*mat.Dense, error) {
	a := mat.NewDense(n, n, nil)
	if nz, ok := global.(mat.NonZeroDoer); ok {
		nz.DoNonZero(func(i, j int, v float64) {
			a.Set(i, j, a.At(i, j)+v)
		})
	} else {
		a.Copy(global)
	}
	for i, v := range a.RawMatrix().Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("stiffness %g at (%d, %d): %w", v, i/n, i%n, ErrSingular)
		}
	}
	return a, nil
}
