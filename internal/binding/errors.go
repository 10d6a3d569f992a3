package binding

import "fmt"

// BindError represents an error writing results into a page.
type BindError struct {
	Message string
	Cause   error
}

func (e *BindError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("bind error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("bind error: %s", e.Message)
}

func (e *BindError) Unwrap() error {
	return e.Cause
}
