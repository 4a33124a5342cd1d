package action

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAction indicates a definition without a name or perform func.
	ErrInvalidAction = errors.New("action: invalid definition")

	// ErrDuplicateAction indicates a name that is already registered.
	ErrDuplicateAction = errors.New("action: duplicate name")

	// ErrUnknownAction indicates a reference to an action that isn't registered.
	ErrUnknownAction = errors.New("action: unknown action")

	// ErrAborted marks an intentionally cancelled operation. It is not a failure.
	ErrAborted = errors.New("action: aborted")
)

// Abort wraps cause so that errors.Is(err, ErrAborted) holds.
func Abort(cause error) error {
	if cause == nil {
		return ErrAborted
	}
	return fmt.Errorf("%w: %w", ErrAborted, cause)
}

// IsAborted reports whether err is an intentional cancellation.
func IsAborted(err error) bool {
	return errors.Is(err, ErrAborted)
}
