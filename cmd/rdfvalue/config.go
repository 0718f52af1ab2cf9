package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"sourcery.dny.nu/fromrdf"
)

// Processing modes.
const (
	ModeJSONLD10 = "json-ld-1.0"
	ModeJSONLD11 = "json-ld-1.1"
)

// Config holds the conversion options.
type Config struct {
	// NativeTypes converts xsd:string, boolean, integer and double literals
	// to native JSON values.
	NativeTypes bool `yaml:"native_types"`
	// RDFDirection is empty or "i18n-datatype".
	RDFDirection string `yaml:"rdf_direction"`
	// ProcessingMode is json-ld-1.0 or json-ld-1.1.
	ProcessingMode string `yaml:"processing_mode"`
}

// DefaultConfig returns the JSON-LD 1.1 defaults.
func DefaultConfig() *Config {
	return &Config{
		NativeTypes:    false,
		RDFDirection:   "",
		ProcessingMode: ModeJSONLD11,
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
//
// An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	switch c.ProcessingMode {
	case ModeJSONLD10, ModeJSONLD11:
	default:
		return fmt.Errorf("processing_mode must be %s or %s, got %q",
			ModeJSONLD10, ModeJSONLD11, c.ProcessingMode)
	}

	if _, err := fromrdf.ParseRDFDirection(c.RDFDirection); err != nil {
		return err
	}

	return nil
}

// Options returns the processor options for this configuration.
func (c *Config) Options() ([]fromrdf.ProcessorOption, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dir, _ := fromrdf.ParseRDFDirection(c.RDFDirection)

	return []fromrdf.ProcessorOption{
		fromrdf.WithNativeTypes(c.NativeTypes),
		fromrdf.WithRDFDirection(dir),
		fromrdf.With10Processing(c.ProcessingMode == ModeJSONLD10),
	}, nil
}
