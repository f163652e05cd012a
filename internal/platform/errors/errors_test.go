// internal/platform/errors/errors_test.go
package errors

import (
	"context"
	"net"
	"os/exec"
	"testing"
)

func TestWrap(t *testing.T) {
	base := New("connection refused")
	wrapped := Wrap(base, "ssl probe")

	if wrapped.Error() != "ssl probe: connection refused" {
		t.Errorf("unexpected message: %q", wrapped.Error())
	}
	if !Is(wrapped, base) {
		t.Error("wrapped error should match its cause")
	}
	if Wrap(nil, "anything") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrProbeTimeout, "probe %s after %ds", "dns", 10)
	if wrapped.Error() != "probe dns after 10s: probe timed out" {
		t.Errorf("unexpected message: %q", wrapped.Error())
	}
	if !IsTimeout(wrapped) {
		t.Error("wrapped sentinel should still classify")
	}
}

func TestClassifyNil(t *testing.T) {
	if Classify(nil) != nil {
		t.Error("Classify(nil) should return nil")
	}
}

func TestClassifyPreservesTaxonomy(t *testing.T) {
	// Errores ya clasificados pasan sin re-envolver
	for _, sentinel := range []error{ErrProbeTimeout, ErrProbeConnection, ErrProbeProtocol, ErrInvalidInput} {
		wrapped := Wrap(sentinel, "context")
		if got := Classify(wrapped); got != wrapped {
			t.Errorf("Classify should pass through already-classified error %v", sentinel)
		}
	}
}

func TestClassifyDeadline(t *testing.T) {
	got := Classify(context.DeadlineExceeded)
	if !IsTimeout(got) {
		t.Errorf("deadline exceeded should classify as timeout, got %v", got)
	}
	if got.Error() != context.DeadlineExceeded.Error() {
		t.Errorf("classification should not reword the cause: %q", got.Error())
	}
}

func TestClassifyNetErrors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		label string
	}{
		{
			name:  "op error is connection failure",
			err:   &net.OpError{Op: "dial", Net: "tcp", Err: New("connection refused")},
			check: IsConnectionFailed,
			label: "connection",
		},
		{
			name:  "dns error is connection failure",
			err:   &net.DNSError{Err: "no such host", Name: "example.invalid"},
			check: IsConnectionFailed,
			label: "connection",
		},
		{
			name:  "dns timeout is timeout",
			err:   &net.DNSError{Err: "i/o timeout", Name: "example.com", IsTimeout: true},
			check: IsTimeout,
			label: "timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if !tt.check(got) {
				t.Errorf("expected %s classification, got %v", tt.label, got)
			}
		})
	}
}

func TestClassifyExitError(t *testing.T) {
	got := Classify(&exec.ExitError{})
	if !IsProtocolError(got) {
		t.Errorf("exit error should classify as protocol error, got %v", got)
	}
}

func TestClassifyUnknownDefaultsToProtocol(t *testing.T) {
	got := Classify(New("something strange"))
	if !IsProtocolError(got) {
		t.Errorf("unknown errors should default to protocol, got %v", got)
	}
	if got.Error() != "something strange" {
		t.Errorf("original message should survive: %q", got.Error())
	}
}

func TestTaggedErrorDoesNotCrossClassify(t *testing.T) {
	got := Classify(context.DeadlineExceeded)
	if IsConnectionFailed(got) || IsProtocolError(got) || IsInvalidInput(got) {
		t.Error("a timeout must not match other taxonomy sentinels")
	}
}
