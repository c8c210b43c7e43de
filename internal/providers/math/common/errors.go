package common

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel every precondition failure matches.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError describes which argument of which operation was rejected
type InvalidArgumentError struct {
	Op     string
	Arg    string
	Reason string
}

// Error implements error
func (e *InvalidArgumentError) Error() string {
	if e.Arg == "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, ErrInvalidArgument, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s: %s", e.Op, ErrInvalidArgument, e.Arg, e.Reason)
}

// Is reports whether target is ErrInvalidArgument
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// InvalidArgument creates an InvalidArgumentError
func InvalidArgument(op, arg, reason string) error {
	return &InvalidArgumentError{Op: op, Arg: arg, Reason: reason}
}

// IsInvalidArgument reports whether err is (or wraps) an invalid argument error
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
