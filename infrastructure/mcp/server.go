package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mcpgo "github.com/felixgeelhaar/mcp-go"
	mcpserver "github.com/felixgeelhaar/mcp-go/server"
	"github.com/google/uuid"

	"github.com/felixgeelhaar/pdftool/domain/tool"
	"github.com/felixgeelhaar/pdftool/infrastructure/logging"
	"github.com/felixgeelhaar/pdftool/infrastructure/observability"
	"github.com/felixgeelhaar/pdftool/infrastructure/resilience"
)

// Server wraps an MCP server to expose registered tools.
type Server struct {
	srv         *mcpgo.Server
	registry    tool.Registry
	executor    *resilience.Executor
	instruments *observability.Instruments
}

// ServerConfig configures a Server.
type ServerConfig struct {
	// Name is the server name.
	Name string

	// Version is the server version.
	Version string

	// Description is an optional server description.
	Description string

	// Instructions provides usage instructions for clients.
	Instructions string

	// Registry holds the tools to expose. Required.
	Registry tool.Registry

	// Executor bounds concurrent calls. Defaults to resilience.NewDefaultExecutor.
	Executor *resilience.Executor

	// Instruments traces and measures calls when set.
	Instruments *observability.Instruments
}

// NewServer creates an MCP server exposing every tool in cfg.Registry.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Registry == nil {
		return nil, ErrNoRegistry
	}

	info := mcpgo.ServerInfo{
		Name:        cfg.Name,
		Version:     cfg.Version,
		Description: cfg.Description,
		Capabilities: mcpgo.Capabilities{
			Tools: true,
		},
	}

	var opts []mcpgo.Option
	if cfg.Instructions != "" {
		opts = append(opts, mcpgo.WithInstructions(cfg.Instructions))
	}

	executor := cfg.Executor
	if executor == nil {
		executor = resilience.NewDefaultExecutor()
	}

	s := &Server{
		srv:         mcpgo.NewServer(info, opts...),
		registry:    cfg.Registry,
		executor:    executor,
		instruments: cfg.Instruments,
	}

	for _, t := range cfg.Registry.List() {
		s.registerTool(t)
	}

	return s, nil
}

func (s *Server) registerTool(t tool.Tool) {
	if s.instruments != nil {
		t = s.instruments.Wrap(t)
	}

	s.srv.Tool(t.Name()).
		Description(t.Description()).
		Handler(func(ctx context.Context, input json.RawMessage) (string, error) {
			return s.execute(ctx, t, input)
		})
}

// Call runs the named tool the same way a host request would.
func (s *Server) Call(ctx context.Context, name string, input json.RawMessage) (string, error) {
	t, ok := s.registry.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", tool.ErrToolNotFound, name)
	}
	if s.instruments != nil {
		t = s.instruments.Wrap(t)
	}
	return s.execute(ctx, t, input)
}

func (s *Server) execute(ctx context.Context, t tool.Tool, input json.RawMessage) (string, error) {
	callID := uuid.NewString()
	ctx = observability.ContextWithCallID(ctx, callID)
	start := time.Now()

	logging.Debug().
		Add(logging.ToolName(t.Name())).
		Add(logging.CallID(callID)).
		Msg("tool call started")

	result, err := s.executor.Execute(ctx, t, input)
	if err != nil {
		logging.Warn().
			Add(logging.ToolName(t.Name())).
			Add(logging.CallID(callID)).
			Add(logging.Duration(time.Since(start))).
			Add(logging.ErrorField(err)).
			Msg("tool call failed")
		return "", err
	}

	logging.Info().
		Add(logging.ToolName(t.Name())).
		Add(logging.CallID(callID)).
		Add(logging.Duration(result.Duration)).
		Msg("tool call completed")

	return result.OutputString(), nil
}

// Server returns the underlying mcp-go server.
func (s *Server) Server() *mcpgo.Server {
	return s.srv
}

// Use adds middleware to the server.
func (s *Server) Use(middlewares ...mcpserver.Middleware) {
	s.srv.Use(middlewares...)
}

// ServeStdio runs the server over stdin/stdout.
func (s *Server) ServeStdio(ctx context.Context, opts ...ServeOption) error {
	return mcpgo.ServeStdio(ctx, s.srv, opts...)
}

// ServeHTTP runs the server over HTTP.
func (s *Server) ServeHTTP(ctx context.Context, addr string, opts ...HTTPOption) error {
	return mcpgo.ServeHTTP(ctx, s.srv, addr, opts...)
}
