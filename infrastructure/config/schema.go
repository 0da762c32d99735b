package config

import (
	"encoding/json"

	domainconfig "github.com/felixgeelhaar/pdftool/domain/config"
)

// JSONSchema represents a JSON Schema document.
type JSONSchema struct {
	Schema      string                 `json:"$schema,omitempty"`
	ID          string                 `json:"$id,omitempty"`
	Title       string                 `json:"title,omitempty"`
	Description string                 `json:"description,omitempty"`
	Type        string                 `json:"type,omitempty"`
	Properties  map[string]*JSONSchema `json:"properties,omitempty"`
	Required    []string               `json:"required,omitempty"`
	Enum        []string               `json:"enum,omitempty"`
	Default     any                    `json:"default,omitempty"`
	Minimum     *float64               `json:"minimum,omitempty"`
	Maximum     *float64               `json:"maximum,omitempty"`
}

// GenerateSchema generates a JSON Schema for the configuration file.
func GenerateSchema() *JSONSchema {
	def := domainconfig.Default()

	return &JSONSchema{
		Schema:      "https://json-schema.org/draft/2020-12/schema",
		ID:          "https://github.com/felixgeelhaar/pdftool/pdftool-config.schema.json",
		Title:       "pdftool Configuration",
		Description: "Configuration schema for the pdftool server and CLI",
		Type:        "object",
		Properties: map[string]*JSONSchema{
			"server": {
				Type:        "object",
				Description: "Tool host transport settings",
				Properties: map[string]*JSONSchema{
					"name":      {Type: "string", Description: "Server name advertised to hosts", Default: def.Server.Name},
					"transport": {Type: "string", Enum: []string{domainconfig.TransportStdio, domainconfig.TransportHTTP}, Default: def.Server.Transport},
					"addr":      {Type: "string", Description: "Listen address for the http transport", Default: def.Server.Addr},
				},
			},
			"pdf": {
				Type:        "object",
				Description: "PDF tool settings",
				Properties: map[string]*JSONSchema{
					"default_max_pages": {Type: "integer", Description: "Page limit for the text action when max_pages is omitted", Default: def.PDF.DefaultMaxPages, Minimum: floatPtr(0)},
					"root_dir":          {Type: "string", Description: "Only files under this directory may be read"},
					"max_concurrent":    {Type: "integer", Description: "Maximum simultaneous tool calls", Default: def.PDF.MaxConcurrent, Minimum: floatPtr(1)},
				},
			},
			"logging": {
				Type:        "object",
				Description: "Logger settings",
				Properties: map[string]*JSONSchema{
					"level":  {Type: "string", Enum: []string{"debug", "info", "warn", "error"}, Default: def.Logging.Level},
					"format": {Type: "string", Enum: []string{"json", "console"}, Default: def.Logging.Format},
				},
			},
			"tracing": {
				Type:        "object",
				Description: "OpenTelemetry tracing settings",
				Properties: map[string]*JSONSchema{
					"enabled":     {Type: "boolean", Default: false},
					"exporter":    {Type: "string", Enum: []string{domainconfig.ExporterStdout, domainconfig.ExporterOTLP, domainconfig.ExporterNoop}, Default: def.Tracing.Exporter},
					"endpoint":    {Type: "string", Description: "OTLP gRPC endpoint", Default: def.Tracing.Endpoint},
					"insecure":    {Type: "boolean", Description: "Disable TLS for the OTLP connection"},
					"sample_rate": {Type: "number", Default: def.Tracing.SampleRate, Minimum: floatPtr(0), Maximum: floatPtr(1)},
				},
			},
		},
	}
}

func floatPtr(f float64) *float64 {
	return &f
}

// SchemaJSON returns the JSON Schema as an indented JSON string.
func SchemaJSON() (string, error) {
	data, err := json.MarshalIndent(GenerateSchema(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
