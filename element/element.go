package element

import (
	"errors"

	"github.com/james-bowman/sparse"
)

// Topology identifies the geometry / interpolation family of an element
type Topology uint8

const (
	Bar2 Topology = iota // Two node line, linear interpolation
)

func (t Topology) String() string {
	switch t {
	case Bar2:
		return "Bar2"
	default:
		return "Unknown"
	}
}

// Physics identifies the governing equations an element discretizes
type Physics uint8

const (
	Structural Physics = iota
)

func (p Physics) String() string {
	switch p {
	case Structural:
		return "Structural"
	default:
		return "Unknown"
	}
}

var (
	ErrDegenerateElement = errors.New("element: degenerate geometry or properties")
	ErrInvalidNode       = errors.New("element: invalid node id")
	ErrMissingArea       = errors.New("element: material has no cross-section area")
)

// Element is the capability every finite element provides to the assembler.
// Implementations are values: copying one is safe and all methods are read-only,
// so a single element may be shared by concurrent assemblers.
type Element interface {
	Topology() Topology
	Physics() Physics

	// DOFs is the location array: local DOF i maps to global DOF DOFs()[i]
	DOFs() []int

	// LocalStiffness returns the element stiffness as (row, col, value) triplets
	// over local DOF indices. The matrix is square with dimension len(DOFs()).
	LocalStiffness() *sparse.COO
}

// StressRecoverer is implemented by elements that can recover a scalar stress
// from the global displacement vector
type StressRecoverer interface {
	AxialStress(u []float64) float64
}
