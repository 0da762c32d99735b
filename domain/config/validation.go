package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Path is the dotted path to the invalid field.
	Path string
	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("%d validation errors:\n  - %s", len(e), strings.Join(msgs, "\n  - "))
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Validator validates pdftool configuration.
type Validator struct {
	errors ValidationErrors
}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates the configuration and returns any errors.
func (v *Validator) Validate(config *Config) ValidationErrors {
	v.errors = nil

	v.validateServer(config.Server)
	v.validatePDF(config.PDF)
	v.validateLogging(config.Logging)
	v.validateTracing(config.Tracing)

	return v.errors
}

func (v *Validator) addError(path, message string) {
	v.errors = append(v.errors, ValidationError{Path: path, Message: message})
}

func (v *Validator) validateServer(s ServerConfig) {
	if s.Name == "" {
		v.addError("server.name", "name is required")
	}
	switch s.Transport {
	case TransportStdio:
	case TransportHTTP:
		if s.Addr == "" {
			v.addError("server.addr", "addr is required for the http transport")
		}
	default:
		v.addError("server.transport", fmt.Sprintf("unknown transport %q (use %q or %q)", s.Transport, TransportStdio, TransportHTTP))
	}
}

func (v *Validator) validatePDF(p PDFConfig) {
	if p.DefaultMaxPages < 0 {
		v.addError("pdf.default_max_pages", "must not be negative")
	}
	if p.MaxConcurrent < 1 {
		v.addError("pdf.max_concurrent", "must be at least 1")
	}
}

func (v *Validator) validateLogging(l LoggingConfig) {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		v.addError("logging.level", fmt.Sprintf("unknown level %q", l.Level))
	}
	switch l.Format {
	case "json", "console":
	default:
		v.addError("logging.format", fmt.Sprintf("unknown format %q", l.Format))
	}
}

func (v *Validator) validateTracing(t TracingConfig) {
	if !t.Enabled {
		return
	}
	switch t.Exporter {
	case ExporterStdout, ExporterNoop:
	case ExporterOTLP:
		if t.Endpoint == "" {
			v.addError("tracing.endpoint", "endpoint is required for the otlp exporter")
		}
	default:
		v.addError("tracing.exporter", fmt.Sprintf("unknown exporter %q", t.Exporter))
	}
	if t.SampleRate < 0 || t.SampleRate > 1 {
		v.addError("tracing.sample_rate", "must be between 0 and 1")
	}
}
