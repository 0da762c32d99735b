// Package observability provides OpenTelemetry tracing and metrics for tool calls.
package observability

import (
	"io"
	"os"
	"time"

	domainconfig "github.com/felixgeelhaar/pdftool/domain/config"
)

// Config configures the observability infrastructure.
type Config struct {
	// ServiceName is the name of the service for telemetry.
	ServiceName string

	// ServiceVersion is the version of the service.
	ServiceVersion string

	// Tracing configures distributed tracing.
	Tracing TracingConfig
}

// TracingConfig configures distributed tracing.
type TracingConfig struct {
	// Enabled enables tracing (default: false).
	Enabled bool

	// Exporter specifies the trace exporter type.
	Exporter ExporterType

	// Endpoint is the OTLP endpoint (e.g., "localhost:4317").
	Endpoint string

	// Insecure disables TLS for the exporter connection.
	Insecure bool

	// SampleRate is the sampling rate (0.0-1.0, default: 1.0).
	SampleRate float64

	// BatchTimeout is the batch export timeout.
	BatchTimeout time.Duration

	// Writer receives stdout exporter output. Stdout carries the stdio
	// transport, so the default is stderr.
	Writer io.Writer
}

// ExporterType specifies the telemetry exporter.
type ExporterType string

const (
	// ExporterOTLP exports to an OTLP gRPC endpoint.
	ExporterOTLP ExporterType = domainconfig.ExporterOTLP

	// ExporterStdout exports pretty-printed spans to Writer.
	ExporterStdout ExporterType = domainconfig.ExporterStdout

	// ExporterNoop disables export.
	ExporterNoop ExporterType = domainconfig.ExporterNoop
)

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		ServiceName:    "pdftool",
		ServiceVersion: "dev",
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     ExporterNoop,
			SampleRate:   1.0,
			BatchTimeout: 5 * time.Second,
			Writer:       os.Stderr,
		},
	}
}

// Option configures the observability infrastructure.
type Option func(*Config)

// WithServiceName sets the service name.
func WithServiceName(name string) Option {
	return func(c *Config) {
		c.ServiceName = name
	}
}

// WithServiceVersion sets the service version.
func WithServiceVersion(version string) Option {
	return func(c *Config) {
		c.ServiceVersion = version
	}
}

// WithTracing enables tracing with the specified exporter.
func WithTracing(exporter ExporterType, endpoint string) Option {
	return func(c *Config) {
		c.Tracing.Enabled = true
		c.Tracing.Exporter = exporter
		c.Tracing.Endpoint = endpoint
	}
}

// WithTracingInsecure disables TLS for tracing.
func WithTracingInsecure() Option {
	return func(c *Config) {
		c.Tracing.Insecure = true
	}
}

// WithSampleRate sets the trace sampling rate.
func WithSampleRate(rate float64) Option {
	return func(c *Config) {
		c.Tracing.SampleRate = rate
	}
}

// WithStdoutTracing enables pretty-printed span export to w.
func WithStdoutTracing(w io.Writer) Option {
	return func(c *Config) {
		c.Tracing.Enabled = true
		c.Tracing.Exporter = ExporterStdout
		if w != nil {
			c.Tracing.Writer = w
		}
	}
}

// FromConfig converts file configuration into provider options.
func FromConfig(cfg domainconfig.TracingConfig) []Option {
	if !cfg.Enabled {
		return nil
	}
	opts := []Option{
		WithTracing(ExporterType(cfg.Exporter), cfg.Endpoint),
		WithSampleRate(cfg.SampleRate),
	}
	if cfg.Insecure {
		opts = append(opts, WithTracingInsecure())
	}
	return opts
}
