// Package oaserrors provides structured error types for oaspathtree.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to tell caller misuse apart from conflicting
// input data and unreadable documents.
//
// # Error Categories
//
//   - InvalidArgumentError: a required input was nil or empty
//   - DuplicateLabelError: the same label was attached twice at one tree node
//   - ParseError: YAML/JSON parsing failures and structural issues
//   - ConfigError: Invalid configuration or input options
//
// # Usage with errors.Is
//
//	_, err := tree.Attach("/users/{id}", "v1", item)
//	if errors.Is(err, oaserrors.ErrDuplicateLabel) {
//	    // Same path declared twice by one source
//	}
package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidArgument indicates a required argument was missing or empty.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDuplicateLabel indicates a label was attached twice at the same node.
	ErrDuplicateLabel = errors.New("duplicate label")

	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// InvalidArgumentError represents a nil or empty required input at a public
// entry point. It is raised before any mutation takes place.
type InvalidArgumentError struct {
	// Argument is the name of the offending parameter (e.g., "label", "path")
	Argument string
	// Message describes why the value was rejected
	Message string
}

// Error returns a human-readable error message.
func (e *InvalidArgumentError) Error() string {
	msg := "invalid argument"
	if e.Argument != "" {
		msg += " " + e.Argument
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as InvalidArgumentError has no underlying cause.
func (e *InvalidArgumentError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// DuplicateLabelError represents an attempt to record a second path item
// under a label that is already present at the terminal node.
type DuplicateLabelError struct {
	// Label is the label that was already attached
	Label string
	// Path is the URL path template whose insertion collided
	Path string
}

// Error returns a human-readable error message.
func (e *DuplicateLabelError) Error() string {
	msg := "duplicate label"
	if e.Label != "" {
		msg += fmt.Sprintf(" %q", e.Label)
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	return msg
}

// Unwrap returns nil as DuplicateLabelError has no underlying cause.
func (e *DuplicateLabelError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *DuplicateLabelError) Is(target error) bool {
	return target == ErrDuplicateLabel
}

// ParseError represents a failure to read an OpenAPI document.
// This includes YAML/JSON deserialization errors and structural issues.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
