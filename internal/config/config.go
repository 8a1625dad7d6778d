package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme    = "dark"
	DefaultDecimals = 2
)

// Profile captures a saved control-panel configuration: display options
// plus one value per control id.
type Profile struct {
	Name     string         `yaml:"name"`
	Theme    string         `yaml:"theme"`
	Decimals int            `yaml:"decimals"`
	Controls map[string]any `yaml:"controls"`
}

func DefaultProfile() *Profile {
	return &Profile{
		Name:     "default",
		Theme:    DefaultTheme,
		Decimals: DefaultDecimals,
		Controls: map[string]any{
			"theta":   0.5,
			"omega":   0.0,
			"damping": 0.1,
			"dt":      0.01,
			"trail":   true,
		},
	}
}

func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	prof := DefaultProfile()
	if err := yaml.Unmarshal(data, prof); err != nil {
		return nil, err
	}
	return prof, nil
}

func Save(path string, prof *Profile) error {
	data, err := yaml.Marshal(prof)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
