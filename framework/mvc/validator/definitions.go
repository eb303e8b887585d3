package validator

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Definition declares the rule of one parameter.
//
//	- param: qty
//	  required: true
//	  message: Quantity is required
//	  validators:
//	    - type: Number
//	      params: {min: 1, max: 10}
type Definition struct {
	Param      string                `yaml:"param"`
	Required   bool                  `yaml:"required"`
	Message    string                `yaml:"message"`
	Validators []ValidatorDefinition `yaml:"validators"`
}

// ValidatorDefinition names a variant and its params.
type ValidatorDefinition struct {
	Type   string `yaml:"type"`
	Params Params `yaml:"params"`
}

// Definitions is an ordered rule set.
type Definitions []Definition

// ParseDefinitions decodes a YAML rule set.
func ParseDefinitions(r io.Reader) (Definitions, error) {
	var defs Definitions
	if err := yaml.NewDecoder(r).Decode(&defs); err != nil {
		if errors.Is(err, io.EOF) {
			return Definitions{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	for i, d := range defs {
		if d.Param == "" {
			return nil, fmt.Errorf("%w: entry %d has no param", ErrInvalidDefinition, i)
		}
		for j, v := range d.Validators {
			if v.Type == "" {
				return nil, fmt.Errorf("%w: %s validator %d has no type", ErrInvalidDefinition, d.Param, j)
			}
		}
	}
	return defs, nil
}

// LoadDefinitions reads a YAML rule set from path.
func LoadDefinitions(path string) (Definitions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseDefinitions(f)
}

// LoadRules reads the rule set of unit/action from "<dir>/<unit>/<action>.yaml".
// A missing file yields an empty set.
func LoadRules(dir, unit, action string) (Definitions, error) {
	defs, err := LoadDefinitions(filepath.Join(dir, unit, action+".yaml"))
	if errors.Is(err, os.ErrNotExist) {
		return Definitions{}, nil
	}
	return defs, err
}

// Load applies defs to the manager in order. Unknown variants are skipped
// like AddValidation does; their errors are joined and returned.
func (m *Manager) Load(defs Definitions) error {
	var errs []error
	for _, d := range defs {
		m.SetRequired(d.Param, d.Required, d.Message)
		for _, v := range d.Validators {
			if err := m.AddValidation(d.Param, v.Type, v.Params); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
