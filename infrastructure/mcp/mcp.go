// Package mcp exposes registered tools to agent hosts over the Model Context
// Protocol using github.com/felixgeelhaar/mcp-go.
package mcp

import (
	mcpgo "github.com/felixgeelhaar/mcp-go"
	mcpmiddleware "github.com/felixgeelhaar/mcp-go/middleware"
	mcpserver "github.com/felixgeelhaar/mcp-go/server"
)

// Re-export core types from mcp-go for convenience.
type (
	// ServeOption configures server behavior.
	ServeOption = mcpgo.ServeOption

	// HTTPOption configures HTTP transport.
	HTTPOption = mcpgo.HTTPOption
)

// Recover re-exports mcp-go's Recover middleware as a server middleware.
func Recover() mcpserver.Middleware { return toServerMiddleware(mcpgo.Recover()) }

// RequestID re-exports mcp-go's RequestID middleware as a server middleware.
func RequestID() mcpserver.Middleware { return toServerMiddleware(mcpgo.RequestID()) }

// toServerMiddleware converts between mcp-go's identically shaped
// middleware and server middleware function types.
func toServerMiddleware(m mcpgo.Middleware) mcpserver.Middleware {
	return func(next mcpserver.HandlerFunc) mcpserver.HandlerFunc {
		return mcpserver.HandlerFunc(m(mcpmiddleware.HandlerFunc(next)))
	}
}
