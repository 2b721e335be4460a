// Package config holds the user's scaffolding choices.
//
// A Project is collected once from flags, a YAML preset file, or
// interactive prompts, then validated and read-only for the rest of the run.
// It is never persisted.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/company/nextstart/internal/pm"
	"gopkg.in/yaml.v3"
)

// namePattern restricts project names to characters that are safe as a
// directory name and an npm package name.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Project is the immutable set of user choices for one scaffolding run.
type Project struct {
	Name           string     `yaml:"name"`
	PackageManager pm.Manager `yaml:"packageManager"`
	Shadcn         bool       `yaml:"shadcn"`
	NextAuth       bool       `yaml:"nextauth"`
	Turbopack      bool       `yaml:"turbopack"`
}

// Validate checks that a Project is complete and well-formed.
func Validate(p *Project) error {
	if err := ValidateName(p.Name); err != nil {
		return err
	}
	if _, err := pm.Parse(string(p.PackageManager)); err != nil {
		return err
	}
	return nil
}

// ValidateName checks a project name against the allowed character set.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("project name is required")
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: only letters, digits, - and _ are allowed", name)
	}
	return nil
}

// LoadPreset reads a Project from a YAML preset file. Fields absent from
// the file keep their zero values and may still be filled from flags or
// prompts before validation.
func LoadPreset(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset: %w", err)
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing preset %s: %w", path, err)
	}
	return &p, nil
}
