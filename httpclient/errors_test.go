package httpclient

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("refused")
	err := NewConnectionError(cause)
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestError_Message(t *testing.T) {
	err := NewValidationError("bad request shape")
	if got := err.Error(); got != "httpclient: validation: bad request shape" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestErrorPredicates(t *testing.T) {
	cases := []struct {
		err       error
		isTimeout bool
		isConn    bool
		isValid   bool
	}{
		{NewTimeoutError(errors.New("deadline")), true, false, false},
		{NewConnectionError(errors.New("refused")), false, true, false},
		{NewValidationError("bad"), false, false, true},
		{errors.New("plain"), false, false, false},
		{nil, false, false, false},
	}
	for i, tc := range cases {
		if got := IsTimeout(tc.err); got != tc.isTimeout {
			t.Errorf("case %d: IsTimeout=%v, want %v", i, got, tc.isTimeout)
		}
		if got := IsConnection(tc.err); got != tc.isConn {
			t.Errorf("case %d: IsConnection=%v, want %v", i, got, tc.isConn)
		}
		if got := IsValidation(tc.err); got != tc.isValid {
			t.Errorf("case %d: IsValidation=%v, want %v", i, got, tc.isValid)
		}
	}
}

func TestErrorPredicates_Wrapped(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewTimeoutError(errors.New("deadline")))
	if !IsTimeout(err) {
		t.Error("expected IsTimeout through wrapping")
	}
}

func TestErrorCode_String(t *testing.T) {
	if ErrCodeTimeout.String() != "timeout" {
		t.Errorf("unexpected name: %s", ErrCodeTimeout)
	}
	if ErrorCode(99).String() != "unknown" {
		t.Errorf("unexpected name for out-of-range code")
	}
}
