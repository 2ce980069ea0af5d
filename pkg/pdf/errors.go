package pdf

import "errors"

var (
	// ErrInvalidSignature is returned when a file does not start with the
	// %PDF magic number.
	ErrInvalidSignature = errors.New("pdf: not a PDF file (missing %PDF signature)")

	// ErrInvalidPageIndex is returned for page references outside [0, PageCount).
	ErrInvalidPageIndex = errors.New("pdf: page index out of range")
)
