// Package rectconfig loads and validates the YAML run configuration
// that parameterises an instance and its packing algorithm: load, then
// validate with field-specific errors.
package rectconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aclarke/rectpack"
)

// AlgorithmConfig selects and parameterises one of the packing
// algorithm variants.
type AlgorithmConfig struct {
	Kind           string  `yaml:"kind"`
	InitialTemp    float64 `yaml:"initial_temp"`
	CoolingRate    float64 `yaml:"cooling_rate"`
	MaxTimeSeconds float64 `yaml:"max_time_s"`
	MaxIterations  int     `yaml:"max_iterations"`
	Neighbourhood  string  `yaml:"neighbourhood"`
}

// Config is the on-disk shape of a run: an instance specification plus an
// algorithm selection.
type Config struct {
	BinSide       int             `yaml:"bin_side"`
	NumRectangles int             `yaml:"num_rectangles"`
	MinDim        int             `yaml:"min_dim"`
	MaxDim        int             `yaml:"max_dim"`
	Seed          int64           `yaml:"seed"`
	Algorithm     AlgorithmConfig `yaml:"algorithm"`
}

// Loader reads and validates Config values from YAML files.
type Loader struct{}

// NewLoader creates a config loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads configPath, parses it as YAML, and validates the result.
func (l *Loader) Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := l.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks the instance fields (bin_side, num_rectangles and the
// min_dim/max_dim range) and that the algorithm kind is one rectpack
// recognises.
func (l *Loader) Validate(cfg *Config) error {
	if cfg.BinSide <= 0 {
		return fmt.Errorf("bin_side must be positive")
	}
	if cfg.NumRectangles < 0 {
		return fmt.Errorf("num_rectangles must be >= 0")
	}
	if cfg.MinDim <= 0 || cfg.MinDim > cfg.MaxDim {
		return fmt.Errorf("min_dim must be positive and <= max_dim")
	}
	if cfg.MaxDim > cfg.BinSide {
		return fmt.Errorf("max_dim must be <= bin_side")
	}
	if _, err := algorithmKind(cfg.Algorithm.Kind); err != nil {
		return err
	}
	return nil
}

func algorithmKind(kind string) (rectpack.AlgorithmKind, error) {
	switch kind {
	case "", "greedy_area":
		return rectpack.AlgorithmGreedyArea, nil
	case "greedy_perimeter":
		return rectpack.AlgorithmGreedyPerimeter, nil
	case "sim_anneal":
		return rectpack.AlgorithmSimAnneal, nil
	case "backtracking":
		return rectpack.AlgorithmBacktracking, nil
	case "local_search":
		return rectpack.AlgorithmLocalSearchGeometry, nil
	default:
		return 0, fmt.Errorf("unknown algorithm kind %q", kind)
	}
}

// ToAlgorithmSpec translates the YAML algorithm block into the core's
// AlgorithmSpec, resolving the local_search neighbourhood sub-field.
func (c *Config) ToAlgorithmSpec() (rectpack.AlgorithmSpec, error) {
	spec := rectpack.DefaultAlgorithmSpec()
	spec.InitialTemp = c.Algorithm.InitialTemp
	spec.CoolingRate = c.Algorithm.CoolingRate
	spec.MaxTimeSeconds = c.Algorithm.MaxTimeSeconds
	spec.MaxIterations = c.Algorithm.MaxIterations

	if c.Algorithm.Kind == "local_search" {
		switch c.Algorithm.Neighbourhood {
		case "rule":
			spec.Kind = rectpack.AlgorithmLocalSearchRule
		case "overlap":
			spec.Kind = rectpack.AlgorithmLocalSearchOverlap
		default:
			spec.Kind = rectpack.AlgorithmLocalSearchGeometry
		}
		return spec, nil
	}

	kind, err := algorithmKind(c.Algorithm.Kind)
	if err != nil {
		return spec, err
	}
	spec.Kind = kind
	return spec, nil
}
