package pkg

import (
	"errors"
	"fmt"
)

// Backing store errors. Each one is the Reason of an [IOError] returned
// when a device cannot be opened.
var (
	// ErrOpenFailed indicates the backing store could not be opened
	// read-only or its size could not be queried.
	ErrOpenFailed = errors.New("open failed")

	// ErrMisalignedSize indicates the backing store size is not a multiple
	// of the sector size.
	ErrMisalignedSize = errors.New("misaligned size")

	// ErrCapacityExceeded indicates the backing store is larger than the
	// capacity ceiling addressable by 10-byte commands.
	ErrCapacityExceeded = errors.New("exceeds capacity ceiling")
)

// Device state errors.
var (
	// ErrAlreadyOpen indicates Open was called on a device that is ready.
	ErrAlreadyOpen = errors.New("device already open")

	// ErrNotReady indicates a command was issued before a successful Open.
	ErrNotReady = errors.New("device not ready")

	// ErrInvalidCDB indicates an unsupported or malformed command descriptor.
	ErrInvalidCDB = errors.New("invalid field in CDB")

	// ErrInvalidParameter indicates a rejected parameter list, such as an
	// attempt to change the sector size.
	ErrInvalidParameter = errors.New("invalid field in parameter list")

	// ErrCommandFailed indicates a command ended with a status that has no
	// more specific error.
	ErrCommandFailed = errors.New("command failed")
)

// IOError reports a failure to open a backing store.
type IOError struct {
	// Path is the backing store that was being opened.
	Path string

	// Reason is one of ErrOpenFailed, ErrMisalignedSize or
	// ErrCapacityExceeded.
	Reason error

	// Err is the underlying cause, if any.
	Err error
}

func (e *IOError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// Unwrap returns the reason and the cause so that errors.Is matches both.
func (e *IOError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Reason}
	}
	return []error{e.Reason, e.Err}
}

// IsIOError returns true if err is or wraps an *IOError.
func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}
