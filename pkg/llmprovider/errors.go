package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey means the provider has no credential; the process cannot serve chat.
	ErrMissingAPIKey = errors.New("llm api key is required")

	// ErrUnknownProvider means Config.Provider names no supported backend.
	ErrUnknownProvider = errors.New("unknown llm provider")

	// ErrEmptyResponse means the backend answered without any text.
	ErrEmptyResponse = errors.New("empty llm response")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
