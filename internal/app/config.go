package app

import (
	"errors"

	"github.com/vk/funcattr/internal/report"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	GridPath    string // hcl files with function definitions
	ModulesPath string // hcl files with attribute manifests

	Output    string
	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GridPath == "" {
		return nil, errors.New("GridPath is a required configuration field and cannot be empty")
	}

	switch cfg.Output {
	case report.FormatText, report.FormatJSON, report.FormatYAML:
	default:
		return nil, errors.New("Output must be 'text', 'json', or 'yaml'")
	}

	return &cfg, nil
}
