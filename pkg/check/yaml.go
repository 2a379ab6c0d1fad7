package check

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlChecksFile is the structured YAML declaration format, for callers
// that prefer explicit records over HCL expressions:
//
//	checkset:
//	  name: orders
//	  checks:
//	    - name: amount_positive
//	      predicate: positive
//	      columns: [amount]
type yamlChecksFile struct {
	Checkset yamlCheckset `yaml:"checkset"`
}

type yamlCheckset struct {
	Name   string      `yaml:"name"`
	Checks []yamlCheck `yaml:"checks"`
}

type yamlCheck struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Predicate   string   `yaml:"predicate"`
	Columns     []string `yaml:"columns"`
}

// LoadYAML decodes structured YAML declarations and compiles them.
func LoadYAML(r io.Reader, reg *Registry) (*CheckSet, error) {
	var f yamlChecksFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse checks yaml: %w", err)
	}

	decls := make([]Decl, len(f.Checkset.Checks))
	for i, c := range f.Checkset.Checks {
		decls[i] = Decl{
			Name:        c.Name,
			Description: c.Description,
			Predicate:   c.Predicate,
			Columns:     c.Columns,
		}
	}
	return Compile(f.Checkset.Name, decls, reg)
}

// LoadYAMLFile decodes and compiles a YAML checks file from disk.
func LoadYAMLFile(path string, reg *Registry) (*CheckSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read checks file: %w", err)
	}
	defer func() { _ = f.Close() }()

	set, err := LoadYAML(f, reg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}
