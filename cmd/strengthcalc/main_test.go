package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/notargets/strengthcalc/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestDemoCommand(t *testing.T) {
	out, err := execute(t, "demo")
	require.NoError(t, err)
	assert.Equal(t, "Displacement at node 1: -4.761905e-05 m\nAxial stress: -1.000000e+07 Pa\n", out)
}

const twoBarModel = `
materials:
  steel: {e: 210e9, area: 1.0e-4}
elements:
  - {type: bar2, nodes: [0, 1], material: steel, params: {length: 1.0}}
  - {type: bar2, nodes: [1, 2], material: steel, params: {length: 1.0}}
loads:
  - {dof: 2, value: 2000}
fixed: [0]
`

func TestRunCommandJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoBarModel), 0o644))

	out, err := execute(t, "run", "--model", path, "--workers", "2", "--json")
	require.NoError(t, err)

	var res analysis.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Displacements, 3)
	assert.Equal(t, 0.0, res.Displacements[0])
	assert.InEpsilon(t, 2*2000/21e6, res.Displacements[2], 1.e-9)
	assert.InDeltaSlice(t, []float64{2e7, 2e7}, res.Stresses, 1.e-3)
	assert.InDeltaSlice(t, []float64{-2000}, res.Reactions, 1.e-6)
}

func TestRunCommandText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoBarModel), 0o644))

	out, err := execute(t, "run", "-f", path, "--workers", "1", "--json=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Displacements:")
	assert.Contains(t, out, "  dof 2: 1.904762e-04 m")
	assert.Contains(t, out, "  element 0: 2.000000e+07 Pa")
	assert.Contains(t, out, "  dof 0: -2.000000e+03 N")
}

func TestRunCommandSingular(t *testing.T) {
	path := filepath.Join(t.TempDir(), "free.yaml")
	doc := `
materials: {steel: {e: 210e9, area: 1.0e-4}}
elements: [{type: bar2, nodes: [0, 1], material: steel, params: {length: 1.0}}]
loads: [{dof: 1, value: 1}]
fixed: []
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	_, err := execute(t, "run", "-f", path, "--workers", "1", "--json=false")
	assert.ErrorContains(t, err, "singular")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "strengthcalc version "+Version+"\n", out)
}
