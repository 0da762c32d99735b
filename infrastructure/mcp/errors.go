package mcp

import "errors"

// ErrNoRegistry is returned when a server is created without a tool registry.
var ErrNoRegistry = errors.New("mcp server requires a tool registry")
