package validation

import "fmt"

// Error carries field-scoped validation failures as an error value so
// services can reject a submission without losing the per-field messages.
type Error struct {
	Fields Errors
}

func (e *Error) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// AsError returns nil when every rule passed, otherwise an *Error wrapping
// the collected messages.
func (e Errors) AsError() error {
	if len(e) == 0 {
		return nil
	}
	return &Error{Fields: e}
}
