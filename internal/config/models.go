package config

import (
	"fmt"
	"time"
)

// AnalysisConfig represents the configuration for the detection service
type AnalysisConfig struct {
	SimulatedDelay time.Duration
	MaxInputSize   int
	Concurrency    int
}

// CacheConfig represents the in-memory verdict cache configuration
type CacheConfig struct {
	Enabled         bool
	TTL             time.Duration
	CleanupInterval time.Duration
}

// InputConfig represents how input is read
type InputConfig struct {
	ParseMIME bool
}

// OutputConfig represents how reports are rendered
type OutputConfig struct {
	Format  string
	NoColor bool
}

// LoggingConfig represents the logger configuration
type LoggingConfig struct {
	Level   string
	Format  string
	Verbose bool
	JSON    bool
}

// GetAnalysis returns the analysis configuration
func (c *Config) GetAnalysis() (AnalysisConfig, error) {
	delay, err := c.GetDuration("analysis.simulated_delay")
	if err != nil {
		return AnalysisConfig{}, err
	}
	if delay < 0 {
		return AnalysisConfig{}, fmt.Errorf("analysis.simulated_delay must not be negative, got %s", delay)
	}

	cfg := AnalysisConfig{
		SimulatedDelay: delay,
		MaxInputSize:   c.GetInt("analysis.max_input_size"),
		Concurrency:    c.GetInt("analysis.concurrency"),
	}
	if cfg.MaxInputSize < 0 {
		return AnalysisConfig{}, fmt.Errorf("analysis.max_input_size must not be negative, got %d", cfg.MaxInputSize)
	}
	if cfg.Concurrency < 1 {
		return AnalysisConfig{}, fmt.Errorf("analysis.concurrency must be at least 1, got %d", cfg.Concurrency)
	}
	return cfg, nil
}

// GetCache returns the verdict cache configuration
func (c *Config) GetCache() (CacheConfig, error) {
	ttl, err := c.GetDuration("cache.ttl")
	if err != nil {
		return CacheConfig{}, err
	}
	cleanup, err := c.GetDuration("cache.cleanup_interval")
	if err != nil {
		return CacheConfig{}, err
	}
	if ttl <= 0 {
		return CacheConfig{}, fmt.Errorf("cache.ttl must be positive, got %s", ttl)
	}

	return CacheConfig{
		Enabled:         c.GetBool("cache.enabled"),
		TTL:             ttl,
		CleanupInterval: cleanup,
	}, nil
}

// GetInput returns the input configuration
func (c *Config) GetInput() InputConfig {
	return InputConfig{
		ParseMIME: c.GetBool("input.mime"),
	}
}

// GetOutput returns the output configuration
func (c *Config) GetOutput() OutputConfig {
	return OutputConfig{
		Format:  c.GetString("output.format"),
		NoColor: c.GetBool("output.no_color"),
	}
}

// GetLogging returns the logging configuration
func (c *Config) GetLogging() LoggingConfig {
	return LoggingConfig{
		Level:   c.GetString("logging.level"),
		Format:  c.GetString("logging.format"),
		Verbose: c.GetBool("logging.verbose"),
		JSON:    c.GetBool("logging.json"),
	}
}
