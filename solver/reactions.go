package solver

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Reactions returns the support reactions R = (K u - f) at each fixed DOF,
// evaluated on the unconstrained global matrix. R[i] belongs to fixed[i].
func Reactions(global mat.Matrix, u, f []float64, fixed []int) ([]float64, error) {
	n, err := checkSystem(global, f, fixed)
	if err != nil {
		return nil, err
	}
	if len(u) != n {
		return nil, fmt.Errorf("displacement length %d != %d: %w", len(u), n, ErrDimensionMismatch)
	}

	ku := make([]float64, n)
	if nz, ok := global.(mat.NonZeroDoer); ok {
		nz.DoNonZero(func(i, j int, v float64) {
			ku[i] += v * u[j]
		})
	} else {
		var v mat.VecDense
		v.MulVec(global, mat.NewVecDense(n, u))
		for i := range ku {
			ku[i] = v.AtVec(i)
		}
	}

	r := make([]float64, len(fixed))
	for i, d := range fixed {
		r[i] = ku[d] - f[d]
	}
	return r, nil
}
