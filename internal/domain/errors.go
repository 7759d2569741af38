package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuery signals a blank search query.
	ErrEmptyQuery = errors.New("empty search query")
	// ErrEmptyCatalog signals that there are no products to search.
	ErrEmptyCatalog = errors.New("catalog is empty")
	// ErrCatalogNotFound signals a missing catalog file.
	ErrCatalogNotFound = errors.New("catalog not found")
	// ErrInvalidCatalog signals a catalog that is not a JSON array of objects.
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrProviderError signals a failure of the remote model API.
	ErrProviderError = errors.New("model provider error")
	// ErrNoToolCall signals a completion that did not call the requested function.
	ErrNoToolCall = errors.New("no function call returned by model")
	// ErrInvalidToolArguments signals function arguments that do not match the declared schema.
	ErrInvalidToolArguments = errors.New("invalid function call arguments")

	// ErrAudioNotFound signals a missing audio file.
	ErrAudioNotFound = errors.New("audio file not found")
	// ErrUnsupportedAudioFormat signals an audio extension the transcriber does not accept.
	ErrUnsupportedAudioFormat = errors.New("unsupported audio format")
)

// ToolArgumentsError wraps ErrInvalidToolArguments with the function name and reason.
type ToolArgumentsError struct {
	Tool   string
	Reason string
}

func (e *ToolArgumentsError) Error() string {
	return fmt.Sprintf("%s for %s: %s", ErrInvalidToolArguments.Error(), e.Tool, e.Reason)
}

func (e *ToolArgumentsError) Unwrap() error { return ErrInvalidToolArguments }

// NewToolArgumentsError creates an invalid-arguments error for the given function.
func NewToolArgumentsError(tool, reason string) error {
	return &ToolArgumentsError{Tool: tool, Reason: reason}
}
