package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/felixgeelhaar/pdftool/domain/tool"
)

// mockTool implements tool.Tool for testing.
type mockTool struct {
	name string
}

func (m *mockTool) Name() string                  { return m.name }
func (m *mockTool) Description() string           { return "Mock " + m.name }
func (m *mockTool) InputSchema() tool.Schema      { return tool.EmptySchema() }
func (m *mockTool) Annotations() tool.Annotations { return tool.Annotations{} }
func (m *mockTool) Execute(_ context.Context, _ json.RawMessage) (tool.Result, error) {
	return tool.Result{}, nil
}

func TestNewToolRegistry(t *testing.T) {
	registry := NewToolRegistry()
	if registry.Count() != 0 {
		t.Errorf("NewToolRegistry().Count() = %d, want 0", registry.Count())
	}
}

func TestToolRegistry_Register(t *testing.T) {
	registry := NewToolRegistry()

	if err := registry.Register(&mockTool{name: "pdf_tool"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := registry.Register(&mockTool{name: "pdf_tool"}); !errors.Is(err, tool.ErrToolExists) {
		t.Errorf("Register() duplicate error = %v, want ErrToolExists", err)
	}
	if err := registry.Register(&mockTool{name: ""}); !errors.Is(err, tool.ErrEmptyName) {
		t.Errorf("Register() empty name error = %v, want ErrEmptyName", err)
	}
	if registry.Count() != 1 {
		t.Errorf("Count() = %d, want 1", registry.Count())
	}
}

func TestToolRegistry_Get(t *testing.T) {
	registry := NewToolRegistry()
	_ = registry.Register(&mockTool{name: "pdf_tool"})

	got, ok := registry.Get("pdf_tool")
	if !ok || got.Name() != "pdf_tool" {
		t.Errorf("Get(pdf_tool) = %v, %v", got, ok)
	}
	if _, ok := registry.Get("missing"); ok {
		t.Error("Get(missing) should return false")
	}
}

func TestToolRegistry_ListSorted(t *testing.T) {
	registry := NewToolRegistry()
	for _, name := range []string{"pdf_tool", "pdf_extract_text", "pdf_page_count"} {
		_ = registry.Register(&mockTool{name: name})
	}

	want := []string{"pdf_extract_text", "pdf_page_count", "pdf_tool"}

	names := registry.Names()
	list := registry.List()
	if len(names) != len(want) || len(list) != len(want) {
		t.Fatalf("Names() = %v, List() len = %d", names, len(list))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %s, want %s", i, names[i], want[i])
		}
		if list[i].Name() != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, list[i].Name(), want[i])
		}
	}
}

func TestToolRegistry_Concurrent(t *testing.T) {
	registry := NewToolRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = registry.Register(&mockTool{name: fmt.Sprintf("tool_%d", i)})
			_ = registry.Names()
			_, _ = registry.Get("tool_0")
		}(i)
	}
	wg.Wait()

	if registry.Count() != 50 {
		t.Errorf("Count() = %d, want 50", registry.Count())
	}
}
