package analysis

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/notargets/strengthcalc/element"
	"github.com/notargets/strengthcalc/internal/logging"
	"github.com/notargets/strengthcalc/partitions"
	"github.com/notargets/strengthcalc/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemo(t *testing.T) {
	m, bar, err := Demo()
	require.NoError(t, err)

	var logs bytes.Buffer
	res, err := Run(m, Options{Logger: logging.NewWithWriter(&logs, slog.LevelDebug)})
	require.NoError(t, err)

	u := res.Displacements
	require.Len(t, u, 2)
	assert.Equal(t, 0.0, u[0])
	assert.InEpsilon(t, -1000.0/21e6, u[1], 1.e-9)

	stress := bar.E * (u[1] - u[0]) / bar.Length
	assert.InEpsilon(t, -1.0e7, stress, 1.e-9)
	require.Len(t, res.Stresses, 1)
	assert.InEpsilon(t, -1.0e7, res.Stresses[0], 1.e-9)

	require.Len(t, res.Reactions, 1)
	assert.InDelta(t, 1000.0, res.Reactions[0], 1.e-6)

	assert.True(t, strings.Contains(logs.String(), "assembled global stiffness"))
	assert.True(t, strings.Contains(logs.String(), "solved system"))
}

func TestRunChainParallel(t *testing.T) {
	// Ten equal bars in series, fixed at node 0, loaded at the tip: the tip
	// displacement is the sum of the bar elongations
	n := 10
	var els []element.Element
	for i := 0; i < n; i++ {
		b, err := element.NewBar2([2]int{i, i + 1}, 200e9, 1e-4, 0.1)
		require.NoError(t, err)
		els = append(els, b)
	}
	m := &Model{Elements: els, Loads: []Load{{DOF: n, Value: 500}}, Fixed: []int{0}}
	assert.Equal(t, n+1, m.NumDOF())

	serial, err := Run(m, Options{})
	require.NoError(t, err)
	par, err := Run(m, Options{Workers: 4, Strategy: partitions.RoundRobin})
	require.NoError(t, err)

	k := 200e9 * 1e-4 / 0.1
	assert.InEpsilon(t, float64(n)*500/k, serial.Displacements[n], 1.e-9)
	assert.InDeltaSlicef(t, serial.Displacements, par.Displacements, 1.e-15, "")
	for _, s := range serial.Stresses {
		assert.InEpsilon(t, 500/1e-4, s, 1.e-9)
	}
}

func TestRunErrors(t *testing.T) {
	_, err := Run(&Model{}, Options{})
	assert.ErrorIs(t, err, ErrEmptyModel)

	m, _, err := Demo()
	require.NoError(t, err)
	m.Loads = []Load{{DOF: 2, Value: 1}}
	_, err = Run(m, Options{})
	assert.ErrorIs(t, err, ErrInvalidLoad)

	m, _, _ = Demo()
	m.Fixed = nil
	_, err = Run(m, Options{})
	assert.ErrorIs(t, err, solver.ErrSingular)

	m, _, _ = Demo()
	m.Fixed = []int{5}
	_, err = Run(m, Options{})
	assert.ErrorIs(t, err, solver.ErrInvalidBoundaryIndex)
}

func TestRunZeroStiffnessIsSingular(t *testing.T) {
	bar := element.Bar2Element{Nodes: [2]int{0, 1}, E: 0, Area: 1e-4, Length: 1}
	_, err := Run(&Model{Elements: []element.Element{bar}}, Options{})
	assert.ErrorIs(t, err, solver.ErrSingular)
}

func TestStressesNotRecoverable(t *testing.T) {
	s := Stresses([]element.Element{opaque{}}, []float64{0, 0})
	require.Len(t, s, 1)
	assert.True(t, math.IsNaN(s[0]))
}

// opaque hides the stress recovery of the wrapped bar
type opaque struct{ element.Element }

func (opaque) DOFs() []int { return []int{0, 1} }
