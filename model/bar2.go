package model

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/notargets/strengthcalc/element"
	"github.com/notargets/strengthcalc/material"
)

// bar2Params are the per-element parameters of a bar; Area overrides the
// section carried by the material
type bar2Params struct {
	Length float64  `mapstructure:"length"`
	Area   *float64 `mapstructure:"area"`
}

// register element
func init() {
	allocators["bar2"] = func(def ElementDef, mat material.Isotropic) (element.Element, error) {
		if len(def.Nodes) != 2 {
			return nil, fmt.Errorf("bar2 needs 2 nodes, got %d: %w", len(def.Nodes), ErrInvalidElement)
		}

		var p bar2Params
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &p,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(def.Params); err != nil {
			return nil, fmt.Errorf("failed to decode bar2 params: %w", err)
		}

		if p.Area != nil {
			mat = mat.WithArea(*p.Area)
		}
		return element.NewBar2FromMaterial([2]int{def.Nodes[0], def.Nodes[1]}, mat, p.Length)
	}
}
