// Package gen renders planned manifest entries into Blade view files by
// substituting named variables into framework stub templates.
package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrUnknownFramework indicates an unsupported UI framework name.
	ErrUnknownFramework = errors.New("bladegen: unknown framework")
	// ErrStubNotFound indicates a manifest entry without a stub.
	ErrStubNotFound = errors.New("bladegen: stub not found")
	// ErrGenerationFailed indicates a file generation failure.
	ErrGenerationFailed = errors.New("bladegen: generation failed")
)

// A StubError reports a failure to load or render one stub.
type StubError struct {
	Framework string
	Stub      string
	Message   string
	Cause     error
}

// Error implements the error interface.
func (e *StubError) Error() string {
	var b strings.Builder
	b.WriteString("bladegen: stub error")
	if e.Framework != "" {
		b.WriteString(" in framework ")
		b.WriteString(e.Framework)
	}
	if e.Stub != "" {
		b.WriteString(" for ")
		b.WriteString(e.Stub)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *StubError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel for StubError.
func (e *StubError) Is(target error) bool {
	return target == ErrStubNotFound
}

// NewStubError creates a new StubError.
func NewStubError(framework, stub, message string, cause error) *StubError {
	return &StubError{
		Framework: framework,
		Stub:      stub,
		Message:   message,
		Cause:     cause,
	}
}

// A WriteError reports a failure to write one output file.
type WriteError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("bladegen: write %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel for WriteError.
func (e *WriteError) Is(target error) bool {
	return target == ErrGenerationFailed
}
