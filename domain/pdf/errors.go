package pdf

import "errors"

// Domain errors for PDF operations.
var (
	// ErrInvalidArgument indicates an unsupported action or malformed request.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFileAccess indicates the path is missing, unreadable, or not a regular file.
	ErrFileAccess = errors.New("file access error")

	// ErrFormat indicates the file could not be parsed as a PDF document.
	ErrFormat = errors.New("pdf format error")
)
