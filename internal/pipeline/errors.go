package pipeline

import "fmt"

// InvalidProfileError represents a profile that failed structural validation
// before evaluation began. Fatal to the request; never retried.
type InvalidProfileError struct {
	Message string
	Cause   error
}

func (e *InvalidProfileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid profile: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid profile: %s", e.Message)
}

func (e *InvalidProfileError) Unwrap() error {
	return e.Cause
}
