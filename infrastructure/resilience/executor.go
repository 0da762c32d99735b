// Package resilience bounds concurrent tool execution using fortify.
package resilience

import (
	"context"
	"encoding/json"
	"time"

	"github.com/felixgeelhaar/fortify/bulkhead"

	"github.com/felixgeelhaar/pdftool/domain/tool"
)

// Executor runs tools behind a bulkhead that caps simultaneous calls.
// Calls are never retried and carry no timeout of their own.
type Executor struct {
	bulkhead      bulkhead.Bulkhead[tool.Result]
	maxConcurrent int
}

// ExecutorConfig configures the executor.
type ExecutorConfig struct {
	// MaxConcurrent limits concurrent tool executions.
	MaxConcurrent int
}

// DefaultExecutorConfig returns the default configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		MaxConcurrent: 10,
	}
}

// NewExecutor creates a new executor.
func NewExecutor(config ExecutorConfig) *Executor {
	maxConcurrent := config.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultExecutorConfig().MaxConcurrent
	}

	return &Executor{
		bulkhead: bulkhead.New[tool.Result](bulkhead.Config{
			MaxConcurrent: maxConcurrent,
		}),
		maxConcurrent: maxConcurrent,
	}
}

// NewDefaultExecutor creates an executor with default configuration.
func NewDefaultExecutor() *Executor {
	return NewExecutor(DefaultExecutorConfig())
}

// MaxConcurrent returns the effective concurrency limit.
func (e *Executor) MaxConcurrent() int {
	return e.maxConcurrent
}

// Execute runs a tool inside the bulkhead and records its duration.
func (e *Executor) Execute(ctx context.Context, t tool.Tool, input json.RawMessage) (tool.Result, error) {
	start := time.Now()

	result, err := e.bulkhead.Execute(ctx, func(ctx context.Context) (tool.Result, error) {
		return t.Execute(ctx, input)
	})
	if err == nil {
		result.Duration = time.Since(start)
	}

	return result, err
}
