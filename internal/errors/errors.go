// Package errors provides structured error types and exit codes for vecgen.
package errors

import (
	"fmt"
)

// Exit codes, one per failure class.
const (
	ExitSuccess         = 0 // Success
	ExitIOFailure       = 1 // Directory creation or file write failed
	ExitMalformedSource = 2 // Source document is syntactically or structurally invalid
	ExitMissingSource   = 3 // Source document does not exist
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindIO ErrorKind = iota
	KindMalformedSource
	KindMissingSource
)

// Error is the base error type for vecgen.
type Error struct {
	Kind    ErrorKind
	Message string
	Path    string // File or directory path if applicable
	Case    int    // 1-based case index if applicable, 0 otherwise
	Cause   error  // Underlying error
}

func (e *Error) Error() string {
	switch {
	case e.Case > 0:
		return fmt.Sprintf("test case %d: %s", e.Case, e.Message)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *Error) ExitCode() int {
	switch e.Kind {
	case KindMissingSource:
		return ExitMissingSource
	case KindMalformedSource:
		return ExitMalformedSource
	default:
		return ExitIOFailure
	}
}

// MissingSource creates a missing-source-file error.
func MissingSource(path string) *Error {
	return &Error{
		Kind:    KindMissingSource,
		Message: "test vector file not found",
		Path:    path,
	}
}

// Malformed creates a malformed-source error.
func Malformed(message string) *Error {
	return &Error{
		Kind:    KindMalformedSource,
		Message: message,
	}
}

// Malformedf creates a malformed-source error with formatting.
func Malformedf(format string, args ...interface{}) *Error {
	return Malformed(fmt.Sprintf(format, args...))
}

// MalformedCase creates a malformed-source error for a specific test case.
// The index is 1-based, matching the case numbering of generated fixtures.
func MalformedCase(index int, message string) *Error {
	return &Error{
		Kind:    KindMalformedSource,
		Message: message,
		Case:    index,
	}
}

// IO creates an I/O failure error for a path.
func IO(path string, cause error) *Error {
	return &Error{
		Kind:    KindIO,
		Message: cause.Error(),
		Path:    path,
		Cause:   cause,
	}
}

// Wrap wraps an error with additional context, preserving the kind when the
// cause is already a vecgen error.
func Wrap(err error, message string) *Error {
	kind := KindIO
	if ve, ok := err.(*Error); ok {
		kind = ve.Kind
	}
	return &Error{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if ve, ok := err.(*Error); ok {
		return ve.ExitCode()
	}
	return ExitIOFailure
}
