package investmate

import (
	"errors"
	"fmt"
)

// Error kinds returned by the stores and services. Callers classify failures
// with errors.Is; the wrapped message carries the details.
var (
	// ErrNotFound is returned when a lookup misses: no account for an email,
	// no asset for an id.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateKey is returned when registering an email that already exists.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrInvalidInput is returned for a blank or unencodable record.
	ErrInvalidInput = errors.New("invalid input")
	// ErrWrongPassword is returned by login when the account exists but the
	// password does not match.
	ErrWrongPassword = errors.New("wrong password")
	// ErrStorage wraps every I/O failure on the flat files.
	ErrStorage = errors.New("storage failure")
)

// storageError wraps an I/O error so that errors.Is(err, ErrStorage) holds
// while keeping the underlying error (e.g. fs.ErrPermission) reachable.
func storageError(op, path string, err error) error {
	return fmt.Errorf("%w: %s %q: %w", ErrStorage, op, path, err)
}
