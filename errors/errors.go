package errors

import (
	"errors"
	"fmt"
)

type Status string

// The input is not a well formed address of the expected kind
const InvalidAddress Status = "InvalidAddress"

// A caller supplied option is outside of its enumerated domain
const InvalidArgument Status = "InvalidArgument"

// An encode or decode step failed after the input passed validation
const ConversionFailed Status = "ConversionFailed"

type Error struct {
	Status  Status
	Message string
	Cause   error
}

var _ error = &Error{}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Status, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func Errorf(status Status, format string, args ...interface{}) error {
	return &Error{
		Status:  status,
		Message: fmt.Sprintf(format, args...),
	}
}

// Used when the input is empty, has the wrong characters, length, prefix or checksum.
func InvalidAddressf(format string, args ...interface{}) error {
	return &Error{
		Status:  InvalidAddress,
		Message: fmt.Sprintf(format, args...),
	}
}

// Used when an option like the output format is not recognized.
func InvalidArgumentf(format string, args ...interface{}) error {
	return &Error{
		Status:  InvalidArgument,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wraps the underlying encoder/decoder error.
func ConversionFailedf(cause error, format string, args ...interface{}) error {
	return &Error{
		Status:  ConversionFailed,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// StatusOf returns the status of the first *Error in the chain, or "" if there is none.
func StatusOf(err error) Status {
	var xerr *Error
	if errors.As(err, &xerr) {
		return xerr.Status
	}
	return ""
}

func Is(err error, status Status) bool {
	return err != nil && StatusOf(err) == status
}
