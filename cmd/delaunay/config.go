package main

import (
	"os"

	"github.com/DubiousDoggo/delaunay-visualizer/advanced"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Count int    `yaml:"count"`
	Range int    `yaml:"range"`
	Seed  int64  `yaml:"seed"`
	Input string `yaml:"input"`

	PNG    string  `yaml:"png"`
	SVG    string  `yaml:"svg"`
	Dot    string  `yaml:"dot"`
	Frames string  `yaml:"frames"`
	Scale  float64 `yaml:"scale"`
	Labels bool    `yaml:"labels"`
	Names  bool    `yaml:"names"`
	Imgcat bool    `yaml:"imgcat"`

	Trace   bool `yaml:"trace"`
	Dump    bool `yaml:"dump"`
	Check   bool `yaml:"check"`
	Verbose bool `yaml:"verbose"`
	Color   bool `yaml:"color"`

	ConfigFile string `yaml:"-"`
}

func DefaultConfig() Config {
	return Config{
		Count: 50,
		Range: 600,
		Seed:  1,
		Scale: 1,
		Color: true,
	}
}

// LoadConfig overlays the YAML file at path onto cfg. Keys missing from the
// file keep their current values; unknown keys are an error.
func LoadConfig(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening config")
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return errors.Wrapf(err, "decoding %s", path)
	}
	return nil
}

func (c Config) Validate() error {
	if c.Input == "" {
		if c.Count < 2 {
			return errors.Errorf("count must be at least 2, got %d", c.Count)
		}
		if c.Range < 1 || c.Range > advanced.MaxCoordinate {
			return errors.Errorf("range must be between 1 and %d, got %d", advanced.MaxCoordinate, c.Range)
		}
		if c.Range*c.Range < c.Count {
			return errors.Errorf("cannot place %d distinct points in a %d×%d square", c.Count, c.Range, c.Range)
		}
	}
	if c.Scale <= 0 {
		return errors.Errorf("scale must be positive, got %g", c.Scale)
	}
	return nil
}
