package analysis

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/james-bowman/sparse"
	"github.com/notargets/strengthcalc/assembly"
	"github.com/notargets/strengthcalc/element"
	"github.com/notargets/strengthcalc/internal/logging"
	"github.com/notargets/strengthcalc/partitions"
	"github.com/notargets/strengthcalc/solver"
)

var (
	ErrInvalidLoad = errors.New("analysis: load DOF outside system")
	ErrEmptyModel  = errors.New("analysis: model has no elements")
)

// Load is a point force applied at a global DOF
type Load struct {
	DOF   int     `json:"dof" yaml:"dof"`
	Value float64 `json:"value" yaml:"value"`
}

// Model is a complete linear static problem
type Model struct {
	DOF      int // 0 means one past the largest DOF referenced by an element
	Elements []element.Element
	Loads    []Load
	Fixed    []int
}

// Options selects the assembler and logger used by Run
type Options struct {
	Workers  int // > 1 selects the partitioned parallel assembler
	Strategy partitions.PartitionStrategy
	Logger   *slog.Logger
}

// Result holds the solution and derived quantities
type Result struct {
	Displacements []float64 `json:"displacements"`
	Stresses      []float64 `json:"stresses"`  // Per element, NaN when not recoverable
	Reactions     []float64 `json:"reactions"` // Per fixed DOF, same order as Model.Fixed
}

// NumDOF returns the declared DOF count, or the count implied by the elements
func (m *Model) NumDOF() int {
	if m.DOF > 0 {
		return m.DOF
	}
	n := 0
	for _, el := range m.Elements {
		for _, d := range el.DOFs() {
			if d+1 > n {
				n = d + 1
			}
		}
	}
	return n
}

// Run assembles, loads, constrains, solves and post-processes the model
func Run(m *Model, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = logging.NewNop()
	}
	if len(m.Elements) == 0 {
		return nil, ErrEmptyModel
	}

	dof := m.NumDOF()
	start := time.Now()
	k, f, err := assemble(dof, m.Elements, opts)
	if err != nil {
		return nil, fmt.Errorf("assembly failed: %w", err)
	}
	log.Debug("assembled global stiffness",
		"dof", dof, "elements", len(m.Elements), "nnz", k.NNZ(),
		"workers", opts.Workers, "elapsed", time.Since(start))

	for _, ld := range m.Loads {
		if ld.DOF < 0 || ld.DOF >= dof {
			return nil, fmt.Errorf("load %g at DOF %d not in [0, %d): %w", ld.Value, ld.DOF, dof, ErrInvalidLoad)
		}
		f[ld.DOF] += ld.Value
	}

	start = time.Now()
	u, err := solver.Solve(k, f, m.Fixed)
	if err != nil {
		return nil, fmt.Errorf("solve failed: %w", err)
	}
	log.Debug("solved system", "dof", dof, "fixed", len(m.Fixed), "elapsed", time.Since(start))

	reactions, err := solver.Reactions(k, u, f, m.Fixed)
	if err != nil {
		return nil, fmt.Errorf("reactions failed: %w", err)
	}

	return &Result{
		Displacements: u,
		Stresses:      Stresses(m.Elements, u),
		Reactions:     reactions,
	}, nil
}

// Stresses recovers the axial stress of every element that supports it
func Stresses(elements []element.Element, u []float64) []float64 {
	s := make([]float64, len(elements))
	for i, el := range elements {
		if sr, ok := el.(element.StressRecoverer); ok {
			s[i] = sr.AxialStress(u)
		} else {
			s[i] = math.NaN()
		}
	}
	return s
}

func assemble(dof int, elements []element.Element, opts Options) (*sparse.CSR, []float64, error) {
	if opts.Workers > 1 {
		return assembly.AssembleParallel(dof, elements, assembly.Options{
			Workers:  opts.Workers,
			Strategy: opts.Strategy,
		})
	}
	return assembly.Assemble(dof, elements)
}
