package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile describes the interpreter used to run snippets.
type Profile struct {
	Name      string   `yaml:"name"`
	Binary    string   `yaml:"binary"`
	Args      []string `yaml:"args"`
	Extension string   `yaml:"extension"`
}

// DefaultProfile is the stock CPython profile.
func DefaultProfile() Profile {
	return Profile{Name: "python", Binary: "python3", Extension: ".py"}
}

// LoadProfile reads an interpreter profile from a YAML file.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}

	if p.Binary == "" {
		return nil, fmt.Errorf("profile %s: binary is required", path)
	}
	return &p, nil
}
