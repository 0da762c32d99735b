package mcp

import (
	"encoding/json"

	"github.com/felixgeelhaar/pdftool/domain/tool"
)

// ToolDef is the MCP description of a tool.
type ToolDef struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	InputSchema json.RawMessage `json:"inputSchema,omitempty"`
	Annotations *ToolHints      `json:"annotations,omitempty"`
}

// ToolHints are the MCP behavior hints of a tool.
type ToolHints struct {
	ReadOnlyHint   bool `json:"readOnlyHint"`
	IdempotentHint bool `json:"idempotentHint"`
}

// ToolToDef converts a tool to its MCP definition.
func ToolToDef(t tool.Tool) ToolDef {
	def := ToolDef{
		Name:        t.Name(),
		Description: t.Description(),
	}

	if schema := t.InputSchema(); !schema.IsEmpty() {
		def.InputSchema = schema.Raw()
	}

	ann := t.Annotations()
	if ann.ReadOnly || ann.Idempotent {
		def.Annotations = &ToolHints{
			ReadOnlyHint:   ann.ReadOnly,
			IdempotentHint: ann.Idempotent,
		}
	}
	return def
}

// Definitions returns the MCP definitions of every tool in reg, sorted by name.
func Definitions(reg tool.Registry) []ToolDef {
	tools := reg.List()
	defs := make([]ToolDef, 0, len(tools))
	for _, t := range tools {
		defs = append(defs, ToolToDef(t))
	}
	return defs
}
