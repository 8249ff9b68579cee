package assembly

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Symmetric reports whether m is square with |m(i,j) - m(j,i)| <= tol everywhere
func Symmetric(m mat.Matrix, tol float64) bool {
	r, c := m.Dims()
	if r != c {
		return false
	}
	for i := 0; i < r; i++ {
		for j := i + 1; j < c; j++ {
			if math.Abs(m.At(i, j)-m.At(j, i)) > tol {
				return false
			}
		}
	}
	return true
}
