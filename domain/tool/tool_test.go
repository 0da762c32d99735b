package tool_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/felixgeelhaar/pdftool/domain/tool"
)

func echoHandler(_ context.Context, input json.RawMessage) (tool.Result, error) {
	return tool.Result{Output: input}, nil
}

func TestToolBuilder_Basic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		toolName string
		handler  tool.Handler
		wantErr  error
	}{
		{name: "valid tool", toolName: "pdf_tool", handler: echoHandler},
		{name: "empty name fails", toolName: "", handler: echoHandler, wantErr: tool.ErrEmptyName},
		{name: "missing handler fails", toolName: "pdf_tool", wantErr: tool.ErrNoHandler},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := tool.NewBuilder(tt.toolName).WithDescription("desc")
			if tt.handler != nil {
				b = b.WithHandler(tt.handler)
			}

			built, err := b.Build()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Build() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if built.Name() != tt.toolName {
				t.Errorf("Name() = %s, want %s", built.Name(), tt.toolName)
			}
			if built.Description() != "desc" {
				t.Errorf("Description() = %s, want desc", built.Description())
			}
		})
	}
}

func TestToolBuilder_Annotations(t *testing.T) {
	t.Parallel()

	built := tool.NewBuilder("reader").
		ReadOnly().
		Cacheable().
		WithTags("pdf", "document").
		WithHandler(echoHandler).
		MustBuild()

	a := built.Annotations()
	if !a.ReadOnly || !a.Idempotent || !a.Cacheable {
		t.Errorf("Annotations() = %+v, want read-only, idempotent and cacheable", a)
	}
	if !a.CanCache() {
		t.Error("CanCache() = false, want true")
	}
	if !a.HasTag("pdf") || a.HasTag("image") {
		t.Errorf("Tags = %v", a.Tags)
	}
}

func TestAnnotations_CanCache(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    tool.Annotations
		want bool
	}{
		{name: "zero value", a: tool.Annotations{}, want: false},
		{name: "cacheable only", a: tool.Annotations{Cacheable: true}, want: false},
		{name: "cacheable read-only", a: tool.Annotations{Cacheable: true, ReadOnly: true}, want: true},
		{name: "cacheable idempotent", a: tool.Annotations{Cacheable: true, Idempotent: true}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.a.CanCache(); got != tt.want {
				t.Errorf("CanCache() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToolBuilder_MustBuild_Panics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("MustBuild() should panic for empty name")
		}
	}()
	tool.NewBuilder("").WithHandler(echoHandler).MustBuild()
}

func TestDefinition_Execute(t *testing.T) {
	t.Parallel()

	built := tool.NewBuilder("echo").WithHandler(echoHandler).MustBuild()

	result, err := built.Execute(context.Background(), json.RawMessage(`{"a":1}`))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.OutputString() != `{"a":1}` {
		t.Errorf("Output = %s, want {\"a\":1}", result.OutputString())
	}
}

func TestDefinition_Execute_NoHandler(t *testing.T) {
	t.Parallel()

	var d tool.Definition
	if _, err := d.Execute(context.Background(), nil); !errors.Is(err, tool.ErrNoHandler) {
		t.Errorf("Execute() error = %v, want ErrNoHandler", err)
	}
}

func TestDefinition_InputSchema_Default(t *testing.T) {
	t.Parallel()

	built := tool.NewBuilder("echo").WithHandler(echoHandler).MustBuild()
	if !built.InputSchema().IsEmpty() {
		t.Errorf("InputSchema() = %s, want empty", built.InputSchema().Raw())
	}
}
