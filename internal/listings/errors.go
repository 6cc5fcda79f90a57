package listings

import "fmt"

// SourceUnavailableError represents a transiently unreachable listing source.
// The calling layer may retry with backoff; the core performs no retries.
type SourceUnavailableError struct {
	Source string
	Cause  error
}

func (e *SourceUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("listing source %s unavailable: %v", e.Source, e.Cause)
	}
	return fmt.Sprintf("listing source %s unavailable", e.Source)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Cause
}

// CatalogError represents a catalog file or document that could not be parsed.
type CatalogError struct {
	Message string
	Cause   error
}

func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog error: %s", e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}
