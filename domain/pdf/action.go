package pdf

import (
	"fmt"
	"strings"
)

// Action names accepted by the dispatcher.
const (
	ActionText = "text"
	ActionMeta = "meta"
)

// Action is a parsed tool action. The only implementations are ExtractText
// and GetMetadata.
type Action interface {
	// Name returns the canonical action name.
	Name() string

	isAction()
}

// ExtractText requests concatenated page text for up to MaxPages pages.
type ExtractText struct {
	MaxPages int
}

// Name returns "text".
func (ExtractText) Name() string { return ActionText }

func (ExtractText) isAction() {}

// GetMetadata requests the page count.
type GetMetadata struct{}

// Name returns "meta".
func (GetMetadata) Name() string { return ActionMeta }

func (GetMetadata) isAction() {}

// ParseAction converts a raw action string into an Action.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseAction(raw string, maxPages int) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ActionText:
		return ExtractText{MaxPages: maxPages}, nil
	case ActionMeta:
		return GetMetadata{}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported pdf action %q, use %q or %q",
			ErrInvalidArgument, raw, ActionText, ActionMeta)
	}
}
