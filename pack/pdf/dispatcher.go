package pdf

import (
	"context"
	"fmt"

	domainpdf "github.com/felixgeelhaar/pdftool/domain/pdf"
	"github.com/felixgeelhaar/pdftool/infrastructure/logging"
)

// Result keys of a dispatched action.
const (
	KeyText      = "text"
	KeyPageCount = "page_count"
)

// DefaultMaxPages is the page limit applied to text actions when the caller
// does not provide one.
const DefaultMaxPages = 5

// Dispatcher routes an action name to the extractor or the counter.
// It holds no per-call state.
type Dispatcher struct {
	extractor *Extractor
	counter   *Counter
}

// NewDispatcher creates a dispatcher backed by opener.
func NewDispatcher(opener domainpdf.Opener) *Dispatcher {
	return &Dispatcher{
		extractor: NewExtractor(opener),
		counter:   NewCounter(opener),
	}
}

// Dispatch runs the named action against path. The action is matched
// case-insensitively; maxPages only applies to "text".
func (d *Dispatcher) Dispatch(ctx context.Context, action, path string, maxPages int) (map[string]any, error) {
	act, err := domainpdf.ParseAction(action, maxPages)
	if err != nil {
		logging.Debug().
			Add(logging.Component("dispatcher")).
			Add(logging.Action(action)).
			Add(logging.ErrorField(err)).
			Msg("rejected action")
		return nil, err
	}
	return d.Run(ctx, act, path)
}

// Run executes an already parsed action.
func (d *Dispatcher) Run(ctx context.Context, act domainpdf.Action, path string) (map[string]any, error) {
	switch a := act.(type) {
	case domainpdf.ExtractText:
		limit := a.MaxPages
		text, err := d.extractor.Extract(ctx, path, &limit)
		if err != nil {
			return nil, err
		}
		return map[string]any{KeyText: text}, nil

	case domainpdf.GetMetadata:
		n, err := d.counter.Count(ctx, path)
		if err != nil {
			return nil, err
		}
		return map[string]any{KeyPageCount: n}, nil

	default:
		return nil, fmt.Errorf("%w: unhandled action %T", domainpdf.ErrInvalidArgument, act)
	}
}
