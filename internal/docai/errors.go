package docai

import "fmt"

// ServiceUnavailableError represents a transient failure reaching the
// document analysis backend. Callers may retry once with backoff; the engine
// core never retries on its own.
type ServiceUnavailableError struct {
	Message string
	Cause   error
}

func (e *ServiceUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("document analysis unavailable: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("document analysis unavailable: %s", e.Message)
}

func (e *ServiceUnavailableError) Unwrap() error {
	return e.Cause
}
