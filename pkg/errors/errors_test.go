package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "min_size %d exceeds max_size %d", 10, 5)

	if err.Code != ErrCodeInvalidConfig {
		t.Errorf("Code = %s, want %s", err.Code, ErrCodeInvalidConfig)
	}
	if err.Message != "min_size 10 exceeds max_size 5" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
	want := "INVALID_CONFIG: min_size 10 exceeds max_size 5"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("syntax error in pattern")
	err := Wrap(ErrCodeMalformedPattern, cause, "invalid pattern %q", "[x")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped error lost its cause for errors.Is")
	}
	if !strings.Contains(err.Error(), "syntax error in pattern") {
		t.Errorf("Error() = %q, missing cause", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeGraphInconsistency, "stalled")

	if !Is(err, ErrCodeGraphInconsistency) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeInvalidInput) {
		t.Error("Is() = true for different code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeInternal) {
		t.Error("Is() = true for non-structured error")
	}
	if Is(nil, ErrCodeInternal) {
		t.Error("Is() = true for nil")
	}

	// The code is found through intermediate wrapping.
	wrapped := fmt.Errorf("pipeline: %w", err)
	if !Is(wrapped, ErrCodeGraphInconsistency) {
		t.Error("Is() = false through fmt.Errorf wrapping")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidInput, "bad record")); got != ErrCodeInvalidInput {
		t.Errorf("GetCode = %s, want %s", got, ErrCodeInvalidInput)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode = %s, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "wave sizes must be positive")
	if got := UserMessage(err); got != "wave sizes must be positive" {
		t.Errorf("UserMessage = %q", got)
	}
	plain := fmt.Errorf("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage = %q", got)
	}
}

func TestInconsistencyError(t *testing.T) {
	inner := &InconsistencyError{Stuck: []int{3, 7}}
	err := Wrap(ErrCodeGraphInconsistency, inner, "wave partitioning stalled")

	var got *InconsistencyError
	if !stderrors.As(err, &got) {
		t.Fatal("errors.As failed to find InconsistencyError")
	}
	if len(got.Stuck) != 2 || got.Stuck[0] != 3 || got.Stuck[1] != 7 {
		t.Errorf("Stuck = %v, want [3 7]", got.Stuck)
	}
	if !strings.Contains(inner.Error(), "3, 7") {
		t.Errorf("Error() = %q, missing stuck units", inner.Error())
	}
	if inner.Code() != ErrCodeGraphInconsistency {
		t.Errorf("Code() = %s, want %s", inner.Code(), ErrCodeGraphInconsistency)
	}
}

func TestInconsistencyError_Empty(t *testing.T) {
	err := &InconsistencyError{}
	if err.Error() == "" {
		t.Error("Error() empty")
	}
}
