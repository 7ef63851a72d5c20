package render

import (
	"errors"
	"fmt"
)

// Input defects. These surface to the caller as generation failures; a blank
// document is worse than a refused one.
var (
	// ErrMissingDocumentNumber is returned when the document carries no
	// identifying number.
	ErrMissingDocumentNumber = errors.New("missing document number")

	// ErrNoLineItems is returned when the document contains no line items.
	ErrNoLineItems = errors.New("document has no line items")

	// ErrMissingProofID is returned when a proof URL is requested for a
	// document without a proof identifier.
	ErrMissingProofID = errors.New("missing proof record identifier")

	// ErrSurfaceFailed is returned when the drawing surface reports an
	// unrecoverable error while producing the final artifact.
	ErrSurfaceFailed = errors.New("drawing surface failed")
)

// ComposeError wraps composition failures with the operation that failed.
type ComposeError struct {
	// Op is the operation that failed (e.g., "Generate", "Compose").
	Op string

	// Err is the underlying error.
	Err error

	// Details provides additional context about the failure.
	Details string
}

// Error implements the error interface.
func (e *ComposeError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("render: %s failed: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("render: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *ComposeError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is chains.
func (e *ComposeError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// wrapComposeError wraps an error as a ComposeError if it isn't already one.
func wrapComposeError(op string, err error, details string) error {
	if err == nil {
		return nil
	}

	var composeErr *ComposeError
	if errors.As(err, &composeErr) {
		return err
	}

	return &ComposeError{Op: op, Err: err, Details: details}
}

// IsInputDefect reports whether err stems from defective input data rather
// than a rendering problem. Handlers use this to pick the response status.
func IsInputDefect(err error) bool {
	return errors.Is(err, ErrMissingDocumentNumber) || errors.Is(err, ErrNoLineItems)
}
