package analysis

import (
	"github.com/notargets/strengthcalc/element"
	"github.com/notargets/strengthcalc/material"
)

// Demo returns a 1 m steel bar fixed at node 0 and pulled by -1000 N at node 1
func Demo() (*Model, element.Bar2Element, error) {
	bar, err := element.NewBar2FromMaterial([2]int{0, 1}, material.Steel(), 1.0)
	if err != nil {
		return nil, element.Bar2Element{}, err
	}
	return &Model{
		DOF:      2,
		Elements: []element.Element{bar},
		Loads:    []Load{{DOF: 1, Value: -1.0e3}},
		Fixed:    []int{0},
	}, bar, nil
}
