package material

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidMaterial = errors.New("material: invalid property")

// Material exposes the elastic properties elements draw on
type Material interface {
	ElasticModulus() float64
	// CrossSectionArea is reported only by materials carrying section data,
	// as used by axial elements
	CrossSectionArea() (float64, bool)
}

// Isotropic is a linear elastic isotropic material, optionally carrying the
// cross-section area of the members it is assigned to
type Isotropic struct {
	Name string   `json:"name,omitempty" yaml:"name,omitempty"`
	E    float64  `json:"e" yaml:"e"`
	Area *float64 `json:"area,omitempty" yaml:"area,omitempty"`
}

var _ Material = Isotropic{}

// Steel returns structural steel, E = 210 GPa, with a 1 cm² section
func Steel() Isotropic {
	return Isotropic{Name: "steel", E: 210e9}.WithArea(1e-4)
}

// WithArea returns a copy of m carrying the given section area
func (m Isotropic) WithArea(area float64) Isotropic {
	m.Area = &area
	return m
}

func (m Isotropic) ElasticModulus() float64 { return m.E }

func (m Isotropic) CrossSectionArea() (float64, bool) {
	if m.Area == nil {
		return 0, false
	}
	return *m.Area, true
}

// Validate checks that E, and the area when present, are positive and finite
func (m Isotropic) Validate() error {
	if !positiveFinite(m.E) {
		return fmt.Errorf("%q: E = %g: %w", m.Name, m.E, ErrInvalidMaterial)
	}
	if m.Area != nil && !positiveFinite(*m.Area) {
		return fmt.Errorf("%q: area = %g: %w", m.Name, *m.Area, ErrInvalidMaterial)
	}
	return nil
}

// SoundSpeed is the longitudinal wave speed sqrt(E/rho)
func SoundSpeed(e, density float64) float64 {
	return math.Sqrt(e / density)
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
