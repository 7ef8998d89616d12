package config

import (
	kiterrors "github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/exec"
	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/observability"
	"github.com/kbukum/streamkit/stream"
)

// Config is the top-level configuration for applications embedding
// streamkit. Projects extend it by embedding it in their own config
// structs:
//
//	type MyConfig struct {
//	    skconfig.Config `yaml:",inline" mapstructure:",squash"`
//	    Database        database.Config `yaml:"database" mapstructure:"database"`
//	}
type Config struct {
	Name          string              `yaml:"name" mapstructure:"name"`
	Environment   string              `yaml:"environment" mapstructure:"environment"`
	Debug         bool                `yaml:"debug" mapstructure:"debug"`
	Stream        StreamConfig        `yaml:"stream" mapstructure:"stream"`
	Logging       logger.Config       `yaml:"logging" mapstructure:"logging"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
}

// StreamConfig tunes terminal-operation behavior.
type StreamConfig struct {
	// SplitThreshold is the partition size below which a parallel drain
	// stops splitting. 0 uses stream.DefaultSplitThreshold.
	SplitThreshold int `yaml:"split_threshold" mapstructure:"split_threshold"`
	// Parallelism is the worker count for parallel drains. 0 uses
	// GOMAXPROCS.
	Parallelism int `yaml:"parallelism" mapstructure:"parallelism"`
}

// ObservabilityConfig configures OTLP export for drain spans and metrics.
type ObservabilityConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure   bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
}

// ApplyDefaults applies default values. Embedding structs override this
// and call Config.ApplyDefaults first.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Stream.SplitThreshold == 0 {
		c.Stream.SplitThreshold = stream.DefaultSplitThreshold
	}
	if c.Observability.Endpoint == "" {
		c.Observability.Endpoint = "localhost:4318"
	}
	if c.Observability.SampleRate == 0 {
		c.Observability.SampleRate = 1.0
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the configuration. Embedding structs override this
// and call Config.Validate first.
func (c *Config) Validate() error {
	if c.Name == "" {
		return kiterrors.MissingField("name")
	}
	switch c.Environment {
	case "development", "staging", "production":
	default:
		return kiterrors.InvalidConfig("environment", "must be one of [development, staging, production]")
	}
	if c.Stream.SplitThreshold < 0 {
		return kiterrors.InvalidConfig("stream.split_threshold", "must not be negative")
	}
	if c.Stream.Parallelism < 0 {
		return kiterrors.InvalidConfig("stream.parallelism", "must not be negative")
	}
	if c.Observability.SampleRate < 0 || c.Observability.SampleRate > 1 {
		return kiterrors.InvalidConfig("observability.sample_rate", "must be between 0.0 and 1.0")
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return nil
}

// StreamOptions translates the stream section into stream.Option values
// for passing to the adapter entry points.
func (c *StreamConfig) StreamOptions() []stream.Option {
	opts := []stream.Option{stream.WithSplitThreshold(c.SplitThreshold)}
	if c.Parallelism > 0 {
		opts = append(opts, stream.WithExec(exec.NewPool(c.Parallelism)))
	}
	return opts
}

// TracerConfig builds the tracer provider configuration for this service.
func (c *Config) TracerConfig(version string) observability.TracerConfig {
	return observability.TracerConfig{
		ServiceName:    c.Name,
		ServiceVersion: version,
		Environment:    c.Environment,
		Endpoint:       c.Observability.Endpoint,
		Insecure:       c.Observability.Insecure,
		SampleRate:     c.Observability.SampleRate,
	}
}

// MeterConfig builds the meter provider configuration for this service.
func (c *Config) MeterConfig(version string) observability.MeterConfig {
	mc := observability.DefaultMeterConfig(c.Name)
	mc.ServiceVersion = version
	mc.Environment = c.Environment
	mc.Endpoint = c.Observability.Endpoint
	mc.Insecure = c.Observability.Insecure
	return mc
}
