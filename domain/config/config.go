// Package config provides domain models for pdftool configuration.
package config

// Transport names accepted in ServerConfig.Transport.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Tracing exporter names accepted in TracingConfig.Exporter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
	ExporterNoop   = "noop"
)

// Config represents the complete pdftool configuration.
type Config struct {
	// Server configures the tool host transport.
	Server ServerConfig `json:"server" yaml:"server"`
	// PDF configures the pdf tool pack.
	PDF PDFConfig `json:"pdf" yaml:"pdf"`
	// Logging configures the process logger.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
	// Tracing configures OpenTelemetry tracing.
	Tracing TracingConfig `json:"tracing" yaml:"tracing"`
}

// ServerConfig contains tool host settings.
type ServerConfig struct {
	// Name is advertised to connecting hosts.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Transport is "stdio" or "http".
	Transport string `json:"transport,omitempty" yaml:"transport,omitempty"`
	// Addr is the listen address for the http transport.
	Addr string `json:"addr,omitempty" yaml:"addr,omitempty"`
}

// PDFConfig contains pdf pack settings.
type PDFConfig struct {
	// DefaultMaxPages applies to the "text" action when max_pages is omitted.
	DefaultMaxPages int `json:"default_max_pages" yaml:"default_max_pages"`
	// RootDir restricts readable files to a directory tree.
	RootDir string `json:"root_dir,omitempty" yaml:"root_dir,omitempty"`
	// MaxConcurrent caps simultaneous tool calls in the server.
	MaxConcurrent int `json:"max_concurrent,omitempty" yaml:"max_concurrent,omitempty"`
}

// LoggingConfig contains logger settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
	// Format is "json" or "console".
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	Enabled    bool    `json:"enabled" yaml:"enabled"`
	Exporter   string  `json:"exporter,omitempty" yaml:"exporter,omitempty"`
	Endpoint   string  `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	Insecure   bool    `json:"insecure,omitempty" yaml:"insecure,omitempty"`
	SampleRate float64 `json:"sample_rate,omitempty" yaml:"sample_rate,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Name:      "pdftool",
			Transport: TransportStdio,
			Addr:      ":8080",
		},
		PDF: PDFConfig{
			DefaultMaxPages: 5,
			MaxConcurrent:   10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Tracing: TracingConfig{
			Enabled:    false,
			Exporter:   ExporterStdout,
			Endpoint:   "localhost:4317",
			SampleRate: 1.0,
		},
	}
}
