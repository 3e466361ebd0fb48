package load

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Project is the on-disk generation project: output settings plus the tables
// to generate for.
type Project struct {
	Target        string   `yaml:"target"`
	Package       string   `yaml:"package"`
	Runtime       string   `yaml:"runtime,omitempty"`
	Client        string   `yaml:"client,omitempty"`
	Naming        string   `yaml:"naming,omitempty"`
	RootInterface string   `yaml:"root_interface,omitempty"`
	Header        string   `yaml:"header,omitempty"`
	Workers       int      `yaml:"workers,omitempty"`
	Tables        []*Table `yaml:"tables"`
	// Atlas sources append their tables after the inline ones.
	Atlas []*AtlasSource `yaml:"atlas,omitempty"`
}

// LoadProject reads and parses a YAML project file.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}
	return parseProject(data, filepath.Dir(path))
}

// ParseProject parses a YAML project document. Atlas schema files are
// resolved against the working directory.
func ParseProject(data []byte) (*Project, error) {
	return parseProject(data, ".")
}

func parseProject(data []byte, dir string) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing project file: %w", err)
	}
	for _, src := range p.Atlas {
		tables, err := src.Load(dir)
		if err != nil {
			return nil, err
		}
		p.Tables = append(p.Tables, tables...)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("invalid project: %w", err)
	}
	return &p, nil
}

func (p *Project) validate() error {
	if p.Target == "" {
		return errors.New("target is required")
	}
	if len(p.Tables) == 0 {
		return errors.New("at least one table is required")
	}
	seen := make(map[string]struct{}, len(p.Tables))
	for _, t := range p.Tables {
		if err := t.Validate(); err != nil {
			return err
		}
		if _, ok := seen[t.FullName()]; ok {
			return fmt.Errorf("duplicate table %q", t.FullName())
		}
		seen[t.FullName()] = struct{}{}
	}
	return nil
}
