package pipeline

import "errors"

// The three fatal error kinds. Everything else the pipeline encounters after
// text has been computed is logged and swallowed; callers otherwise always get
// a successful result, possibly with a nil structured document.
var (
	// ErrSourceNotFound: the referenced source object is missing or its head
	// probe failed.
	ErrSourceNotFound = errors.New("source document not found")

	// ErrExtractionFailed: the OCR backend reported a terminal failure. The
	// backend's status message is preserved verbatim in the wrapping error.
	ErrExtractionFailed = errors.New("text extraction failed")

	// ErrExtractionTimeout: job polling exceeded the wall-clock budget.
	ErrExtractionTimeout = errors.New("text extraction timed out")
)
