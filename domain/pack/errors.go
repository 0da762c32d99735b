package pack

import "errors"

// ErrInvalidPack is returned when a pack cannot be installed.
var ErrInvalidPack = errors.New("invalid pack")
