package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Project is the optional `radix.yaml` project file: the ambient
// config-layer the teacher's package keeps as Go constants, made
// load-bearing here per SPEC_FULL.md's domain-stack table.
type Project struct {
	DefaultTarget string   `yaml:"defaultTarget"`
	SourceExts    []string `yaml:"sourceExtensions"`
}

// LoadProject reads and parses a radix.yaml file. A missing file is not
// an error: the caller falls back to the package-level defaults.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Project{DefaultTarget: TargetCanonical, SourceExts: SourceFileExtensions}, nil
		}
		return nil, err
	}
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if p.DefaultTarget == "" {
		p.DefaultTarget = TargetCanonical
	}
	if len(p.SourceExts) == 0 {
		p.SourceExts = SourceFileExtensions
	}
	return &p, nil
}
