// Package errors provides error types and utilities for intelprobe.
// It extends the standard errors package with the probe failure taxonomy
// and wrapping capabilities.
package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/exec"
)

// Sentinel errors for the probe failure taxonomy
var (
	// ErrProbeTimeout indicates a probe exceeded its bounded timeout
	ErrProbeTimeout = errors.New("probe timed out")

	// ErrProbeConnection indicates a connection could not be established
	ErrProbeConnection = errors.New("connection failed")

	// ErrProbeProtocol indicates the remote end misbehaved (malformed
	// certificate, unexpected response, non-zero exit status)
	ErrProbeProtocol = errors.New("protocol error")

	// ErrInvalidInput indicates input that cannot be analyzed
	ErrInvalidInput = errors.New("invalid input")
)

// wrappedError wraps an error with additional context
type wrappedError struct {
	msg   string
	cause error
}

func (e *wrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *wrappedError) Unwrap() error {
	return e.cause
}

// Wrap wraps an error with additional context message.
// If err is nil, Wrap returns nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{msg: msg, cause: err}
}

// Wrapf wraps an error with a formatted context message.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{msg: fmt.Sprintf(format, args...), cause: err}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New creates a new error with the given message.
func New(msg string) error {
	return errors.New(msg)
}

// Errorf formats according to a format specifier and returns the string
// as a value that satisfies error.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Classify maps an arbitrary probe failure onto the taxonomy sentinels.
// The returned error wraps err so the original message survives into the
// report section. Unrecognized failures classify as protocol errors.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrProbeTimeout),
		errors.Is(err, ErrProbeConnection),
		errors.Is(err, ErrProbeProtocol),
		errors.Is(err, ErrInvalidInput):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return &taggedError{tag: ErrProbeTimeout, cause: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &taggedError{tag: ErrProbeTimeout, cause: err}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return &taggedError{tag: ErrProbeConnection, cause: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsTimeout {
			return &taggedError{tag: ErrProbeTimeout, cause: err}
		}
		return &taggedError{tag: ErrProbeConnection, cause: err}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &taggedError{tag: ErrProbeProtocol, cause: err}
	}

	return &taggedError{tag: ErrProbeProtocol, cause: err}
}

// taggedError attaches a taxonomy sentinel to a cause without rewording it.
type taggedError struct {
	tag   error
	cause error
}

func (e *taggedError) Error() string { return e.cause.Error() }

func (e *taggedError) Is(target error) bool { return target == e.tag }

func (e *taggedError) Unwrap() error { return e.cause }

// IsTimeout reports whether the error classifies as a probe timeout
func IsTimeout(err error) bool {
	return Is(err, ErrProbeTimeout)
}

// IsConnectionFailed reports whether the error classifies as a connection failure
func IsConnectionFailed(err error) bool {
	return Is(err, ErrProbeConnection)
}

// IsProtocolError reports whether the error classifies as a protocol error
func IsProtocolError(err error) bool {
	return Is(err, ErrProbeProtocol)
}

// IsInvalidInput reports whether the error is an invalid input error
func IsInvalidInput(err error) bool {
	return Is(err, ErrInvalidInput)
}
