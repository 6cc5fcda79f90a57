package claims

import "fmt"

// DocumentParseError represents a document that could not be normalized into a claim.
// The affected claim is treated as absent; the request is not aborted.
type DocumentParseError struct {
	Kind    string
	Message string
	Cause   error
}

func (e *DocumentParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("document parse error (%s): %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("document parse error (%s): %s", e.Kind, e.Message)
}

func (e *DocumentParseError) Unwrap() error {
	return e.Cause
}
