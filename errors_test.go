package herald

import (
	"errors"
	"testing"
)

func TestTypeMismatchError(t *testing.T) {
	err := &TypeMismatchError{
		Event:    "score",
		Expected: "*herald.scorePayload",
		Got:      "*payload.Envelope",
	}

	errStr := err.Error()
	want := "incorrect broadcast argument for event score: expected *herald.scorePayload, got *payload.Envelope"
	if errStr != want {
		t.Errorf("unexpected error string: %s", errStr)
	}

	// Matches the sentinel via errors.Is
	if !errors.Is(err, ErrTypeMismatch) {
		t.Error("errors.Is should match ErrTypeMismatch")
	}

	// Does not match unrelated errors
	if errors.Is(err, ErrNilCallback) {
		t.Error("errors.Is should not match unrelated errors")
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	sentinels := []error{
		ErrNilCallback,
		ErrNilSink,
		ErrTypeMismatch,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("sentinel errors should be distinct: %v and %v", err1, err2)
			}
		}
	}
}
