package pipeline

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyContent = errors.New("No content extracted from URLs.")
	ErrTimeout      = errors.New("request deadline exceeded")
)

const (
	MsgMissingURLsOrQuery = "Missing 'urls' or 'query'"
	MsgMissingURLs        = "Missing or invalid 'urls'"
)

// ValidationError reports a malformed request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UpstreamError wraps a failure of an external provider (embedding or LLM).
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s provider error: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
