package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/notargets/strengthcalc/analysis"
	"github.com/notargets/strengthcalc/element"
	"github.com/notargets/strengthcalc/material"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownElement  = errors.New("model: unknown element type")
	ErrUnknownMaterial = errors.New("model: unknown material")
	ErrInvalidElement  = errors.New("model: invalid element definition")
)

// File is the on-disk model description
type File struct {
	DOF       int                           `yaml:"dof" json:"dof"`
	Materials map[string]material.Isotropic `yaml:"materials" json:"materials"`
	Elements  []ElementDef                  `yaml:"elements" json:"elements"`
	Loads     []analysis.Load               `yaml:"loads" json:"loads"`
	Fixed     []int                         `yaml:"fixed" json:"fixed"`
}

// ElementDef describes one element; Params are decoded by the allocator
// registered for Type
type ElementDef struct {
	Type     string         `yaml:"type" json:"type"`
	Nodes    []int          `yaml:"nodes" json:"nodes"`
	Material string         `yaml:"material" json:"material"`
	Params   map[string]any `yaml:"params" json:"params"`
}

// allocator builds an element from its definition and resolved material
type allocator func(def ElementDef, mat material.Isotropic) (element.Element, error)

var allocators = map[string]allocator{}

// Load reads a YAML or JSON (by extension) model file
func Load(path string) (*analysis.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}
	return Parse(data, material.FormatFromPath(path))
}

// Parse decodes a model description and builds its elements
func Parse(data []byte, format material.Format) (*analysis.Model, error) {
	var f File
	if format == material.FormatJSON {
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse model json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse model yaml: %w", err)
		}
	}
	return f.Build()
}

// Build validates the materials and allocates every element
func (f *File) Build() (*analysis.Model, error) {
	for name, m := range f.Materials {
		if m.Name == "" {
			m.Name = name
			f.Materials[name] = m
		}
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}

	elements := make([]element.Element, 0, len(f.Elements))
	for i, def := range f.Elements {
		alloc, ok := allocators[def.Type]
		if !ok {
			return nil, fmt.Errorf("element %d: %q: %w", i, def.Type, ErrUnknownElement)
		}
		mat, ok := f.Materials[def.Material]
		if !ok {
			return nil, fmt.Errorf("element %d: %q: %w", i, def.Material, ErrUnknownMaterial)
		}
		el, err := alloc(def, mat)
		if err != nil {
			return nil, fmt.Errorf("element %d (%s): %w", i, def.Type, err)
		}
		elements = append(elements, el)
	}

	return &analysis.Model{
		DOF:      f.DOF,
		Elements: elements,
		Loads:    f.Loads,
		Fixed:    f.Fixed,
	}, nil
}
