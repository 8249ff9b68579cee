package material

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the encoding of a material record
type Format uint8

const (
	FormatYAML Format = iota
	FormatJSON
)

// FormatFromPath picks JSON for .json files and YAML for everything else
func FormatFromPath(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

// Marshal encodes a material record
func Marshal(m Isotropic, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(m, "", "  ")
	case FormatYAML:
		return yaml.Marshal(m)
	default:
		return nil, fmt.Errorf("unknown record format %d", format)
	}
}

// Unmarshal decodes and validates a material record
func Unmarshal(data []byte, format Format) (m Isotropic, err error) {
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &m)
	case FormatYAML:
		err = yaml.Unmarshal(data, &m)
	default:
		err = fmt.Errorf("unknown record format %d", format)
	}
	if err != nil {
		return Isotropic{}, fmt.Errorf("failed to parse material record: %w", err)
	}
	if err = m.Validate(); err != nil {
		return Isotropic{}, err
	}
	return m, nil
}
