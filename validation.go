package investmate

import (
	"fmt"
	"strings"
)

// validateFields rejects values that cannot be stored on a single line.
func validateFields(fields ...string) error {
	for _, f := range fields {
		if strings.ContainsAny(f, "\r\n") {
			return fmt.Errorf("%w: field %q contains a line break", ErrInvalidInput, f)
		}
	}
	return nil
}

// isBlank reports whether a record holds nothing but blanks once its
// delimiters are removed.
func isBlank(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
