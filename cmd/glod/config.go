package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/glod/glod"
)

// fileConfig is the YAML shape accepted via --config; any field left
// at its zero value falls back to glod's defaults.
type fileConfig struct {
	Alpha *float64 `yaml:"alpha"`
	Tau   *float64 `yaml:"tau"`
	Seed  *uint32  `yaml:"seed"`
}

// loadOptions reads path (if non-empty) and returns the glod.Option
// values it specifies. A missing --config is not an error: the
// pipeline simply runs with glod's built-in defaults.
func loadOptions(path string) ([]glod.Option, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	var opts []glod.Option
	if cfg.Alpha != nil {
		opts = append(opts, glod.WithAlpha(*cfg.Alpha))
	}
	if cfg.Tau != nil {
		opts = append(opts, glod.WithTau(*cfg.Tau))
	}
	if cfg.Seed != nil {
		opts = append(opts, glod.WithSeed(*cfg.Seed))
	}

	return opts, nil
}
