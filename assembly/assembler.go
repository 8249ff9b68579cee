package assembly

import (
	"errors"
	"fmt"

	"github.com/james-bowman/sparse"
	"github.com/notargets/strengthcalc/element"
)

var (
	ErrInvalidDOFCount   = errors.New("assembly: DOF count must be positive")
	ErrDOFOutOfRange     = errors.New("assembly: element DOF outside global DOF space")
	ErrDimensionMismatch = errors.New("assembly: local stiffness does not match element DOFs")
)

// Assemble sums the local stiffness of every element into a dof x dof global
// matrix. Each element's local DOF i lands on global DOF el.DOFs()[i]. The
// returned force vector is zero; loading it is up to the caller.
func Assemble(dof int, elements []element.Element) (*sparse.CSR, []float64, error) {
	if dof < 1 {
		return nil, nil, fmt.Errorf("dof = %d: %w", dof, ErrInvalidDOFCount)
	}

	buf := sparse.NewCOO(dof, dof, nil, nil, nil)
	for k, el := range elements {
		if err := scatter(buf, dof, k, el); err != nil {
			return nil, nil, err
		}
	}

	return toCSR(buf), make([]float64, dof), nil
}

// scatter appends the local triplets of element k to buf at global positions.
// Duplicates are kept; they are summed when buf is canonicalized.
func scatter(buf *sparse.COO, dof, k int, el element.Element) error {
	dofs := el.DOFs()
	for _, d := range dofs {
		if d < 0 || d >= dof {
			return fmt.Errorf("element %d (%v): DOF %d not in [0, %d): %w",
				k, el.Topology(), d, dof, ErrDOFOutOfRange)
		}
	}

	local := el.LocalStiffness()
	r, c := local.Dims()
	if r != c || r != len(dofs) {
		return fmt.Errorf("element %d (%v): local stiffness %dx%d for %d DOFs: %w",
			k, el.Topology(), r, c, len(dofs), ErrDimensionMismatch)
	}

	local.DoNonZero(func(i, j int, v float64) {
		buf.Set(dofs[i], dofs[j], v)
	})
	return nil
}
