package element

import (
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
	"github.com/notargets/strengthcalc/material"
)

// Bar2Element is a two node axial bar with one (axial) DOF per node and a
// constant cross section. Stiffness is closed form, no quadrature is needed.
type Bar2Element struct {
	Nodes  [2]int  // Global node ids, equal to the global DOF ids
	E      float64 // Young's modulus
	Area   float64 // Cross-sectional area
	Length float64 // Length of the bar
}

var _ Element = Bar2Element{}
var _ StressRecoverer = Bar2Element{}

// NewBar2 validates its inputs and returns a bar element. Zero, negative or
// non-finite E, area or length are rejected here rather than surfacing later
// as a singular system.
func NewBar2(nodes [2]int, e, area, length float64) (Bar2Element, error) {
	for _, n := range nodes {
		if n < 0 {
			return Bar2Element{}, fmt.Errorf("node %d: %w", n, ErrInvalidNode)
		}
	}
	props := []struct {
		name string
		val  float64
	}{{"E", e}, {"area", area}, {"length", length}}
	for _, p := range props {
		if !(p.val > 0) || math.IsInf(p.val, 0) {
			return Bar2Element{}, fmt.Errorf("%s = %g: %w", p.name, p.val, ErrDegenerateElement)
		}
	}
	return Bar2Element{Nodes: nodes, E: e, Area: area, Length: length}, nil
}

// NewBar2FromMaterial takes E and the cross-section area from m
func NewBar2FromMaterial(nodes [2]int, m material.Material, length float64) (Bar2Element, error) {
	area, ok := m.CrossSectionArea()
	if !ok {
		return Bar2Element{}, ErrMissingArea
	}
	return NewBar2(nodes, m.ElasticModulus(), area, length)
}

func (b Bar2Element) Topology() Topology { return Bar2 }

func (b Bar2Element) Physics() Physics { return Structural }

func (b Bar2Element) DOFs() []int { return []int{b.Nodes[0], b.Nodes[1]} }

// Stiffness returns the axial stiffness k = EA/L
func (b Bar2Element) Stiffness() float64 {
	return b.E * b.Area / b.Length
}

// LocalStiffness always emits four triplets, including when k is zero, Inf or NaN
func (b Bar2Element) LocalStiffness() *sparse.COO {
	k := b.Stiffness()
	tri := sparse.NewCOO(2, 2, make([]int, 0, 4), make([]int, 0, 4), make([]float64, 0, 4))
	tri.Set(0, 0, k)
	tri.Set(0, 1, -k)
	tri.Set(1, 0, -k)
	tri.Set(1, 1, k)
	return tri
}

// AxialStress is E·(u[n1]-u[n0])/L, positive in tension
func (b Bar2Element) AxialStress(u []float64) float64 {
	return b.E * (u[b.Nodes[1]] - u[b.Nodes[0]]) / b.Length
}

// AxialForce is the stress resultant over the section
func (b Bar2Element) AxialForce(u []float64) float64 {
	return b.AxialStress(u) * b.Area
}
