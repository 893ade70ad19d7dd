package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessage_WithCase_NamesIndex(t *testing.T) {
	err := MalformedCase(3, `missing required field "tolerance"`)

	if !strings.Contains(err.Error(), "test case 3") {
		t.Errorf("Error() = %q, want case index named", err.Error())
	}
}

func TestErrorMessage_WithPath_NamesPath(t *testing.T) {
	err := MissingSource("/phase1/test_vectors.json")

	if !strings.Contains(err.Error(), "/phase1/test_vectors.json") {
		t.Errorf("Error() = %q, want path named", err.Error())
	}
}

func TestExitCode_PerKind(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"missing source", MissingSource("x"), ExitMissingSource},
		{"malformed", Malformed("bad"), ExitMalformedSource},
		{"malformed case", MalformedCase(1, "bad"), ExitMalformedSource},
		{"io", IO("x", fmt.Errorf("disk full")), ExitIOFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.ExitCode(); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGetExitCode_NilError_ReturnsSuccess(t *testing.T) {
	if got := GetExitCode(nil); got != ExitSuccess {
		t.Errorf("GetExitCode(nil) = %d, want %d", got, ExitSuccess)
	}
}

func TestGetExitCode_PlainError_ReturnsIOFailure(t *testing.T) {
	if got := GetExitCode(fmt.Errorf("plain")); got != ExitIOFailure {
		t.Errorf("GetExitCode() = %d, want %d", got, ExitIOFailure)
	}
}

func TestWrap_PreservesKindAndCause(t *testing.T) {
	cause := Malformed("inner")
	wrapped := Wrap(cause, "outer")

	if wrapped.Kind != KindMalformedSource {
		t.Errorf("Kind = %v, want KindMalformedSource", wrapped.Kind)
	}
	if wrapped.Unwrap() != cause {
		t.Error("Unwrap() did not return the cause")
	}
}
