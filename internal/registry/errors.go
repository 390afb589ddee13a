package registry

import "fmt"

// UnavailableError means the registry could not be reached or answered with a
// non-success HTTP status.
type UnavailableError struct {
	BusinessID string
	StatusCode int
	Cause      error
}

func (e *UnavailableError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("registry unavailable for %s: HTTP status %d", e.BusinessID, e.StatusCode)
	}
	if e.Cause != nil {
		return fmt.Sprintf("registry unavailable for %s: %v", e.BusinessID, e.Cause)
	}
	return fmt.Sprintf("registry unavailable for %s", e.BusinessID)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError means the registry body was not valid JSON for a
// Response, after any byte order mark was removed.
type MalformedResponseError struct {
	Message string
	Cause   error
}

func (e *MalformedResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed registry response: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed registry response: %s", e.Message)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}
