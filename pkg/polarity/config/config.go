package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/polarity/pkg/polarity/internalerr"
)

// Config is the run configuration: the five data/output files the pipeline
// needs, plus an optional run-archive database.
type Config struct {
	Train    string `yaml:"train"`    // labeled training CSV
	Test     string `yaml:"test"`     // unlabeled test CSV
	Truth    string `yaml:"truth"`    // ground-truth sentiment CSV
	Results  string `yaml:"results"`  // prediction output file
	Accuracy string `yaml:"accuracy"` // evaluation output file
	DB       string `yaml:"db"`       // optional SQLite run archive
}

// Load reads a run configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that every required path is set. DB stays optional.
func (c *Config) Validate() error {
	required := map[string]string{
		"train":    c.Train,
		"test":     c.Test,
		"truth":    c.Truth,
		"results":  c.Results,
		"accuracy": c.Accuracy,
	}
	for name, val := range required {
		if val == "" {
			return fmt.Errorf("%w: %s path missing", internalerr.ErrInvalidConfig, name)
		}
	}
	return nil
}
