package option

import (
	"errors"
	"fmt"
)

// Validation failure reasons. A *ValidationError wraps exactly one of them.
var (
	ErrInvalidAddress      = errors.New("not a valid IPv4 or IPv6 address")
	ErrInvalidPort         = errors.New("cannot cast to integer")
	ErrPortOutOfRange      = errors.New("port value should be between 1 and 65535")
	ErrInvalidBool         = errors.New("value should be true or false")
	ErrInvalidInteger      = errors.New("cannot cast to integer")
	ErrIntegerOutOfRange   = errors.New("integer value out of range")
	ErrInvalidFloat        = errors.New("cannot cast to float")
	ErrInvalidMAC          = errors.New("not a valid MAC address")
	ErrFileNotExist        = errors.New("file does not exist")
	ErrEncoderNotAvailable = errors.New("encoder not available, check available encoders with `show encoders`")
)

// ValidationError is returned when a raw value is rejected by an option.
// Value holds the offending input, or the file path for word list options.
type ValidationError struct {
	Kind  Kind
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s option value %q: %v", e.Kind, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(kind Kind, value string, err error) *ValidationError {
	return &ValidationError{Kind: kind, Value: value, Err: err}
}
