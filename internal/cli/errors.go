package cli

import "fmt"

// IOError indicates the roster file could not be read or written.
// main maps it to exit code 2, distinct from usage errors.
type IOError struct {
	Op   string // "read" or "write"
	Path string // the file involved
	Err  error  // the underlying failure
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}
