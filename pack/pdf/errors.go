package pdf

import "errors"

// ErrOpenerNotConfigured is returned by New when no document opener is set.
var ErrOpenerNotConfigured = errors.New("pdf opener not configured")
