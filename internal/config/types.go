// Package config loads the nx configuration file.
package config

import "time"

// Config represents the complete .nx.yaml configuration file.
type Config struct {
	// Timezone overrides the process-local zone resolution (IANA name).
	// Empty means resolve from the environment.
	Timezone string `yaml:"timezone" mapstructure:"timezone"`

	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Demo   DemoConfig   `yaml:"demo" mapstructure:"demo"`
}

// OutputConfig controls terminal output behavior.
type OutputConfig struct {
	// Color is "auto", "always", or "never".
	Color string `yaml:"color" mapstructure:"color"`
}

// DemoConfig holds defaults for the demo command.
type DemoConfig struct {
	// Count is the number of work items the demo simulates.
	Count int `yaml:"count" mapstructure:"count"`

	// Interval is the simulated per-item work duration.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Message is the status line label.
	Message string `yaml:"message" mapstructure:"message"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Color: "auto"},
		Demo: DemoConfig{
			Count:    20,
			Interval: 100 * time.Millisecond,
			Message:  "demonstrating incremental progress",
		},
	}
}
