package oaserrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrReference indicates any reference failure (invalid or unresolvable).
	ErrReference = errors.New("reference error")

	// ErrInvalidReference indicates a malformed $ref string.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrUnresolvableReference indicates a dangling or too-deep reference chain.
	ErrUnresolvableReference = errors.New("unresolvable reference")

	// ErrCircularDependency indicates a structural cycle among named schemas.
	ErrCircularDependency = errors.New("circular dependency")

	// ErrUnsupportedSchema indicates a schema node matched no known shape.
	ErrUnsupportedSchema = errors.New("unsupported schema")

	// ErrInvalidHTTPMethod indicates a path item key that is not an HTTP method.
	ErrInvalidHTTPMethod = errors.New("invalid http method")

	// ErrInvalidStatusCode indicates a response key that is neither numeric nor "default".
	ErrInvalidStatusCode = errors.New("invalid status code")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse an OpenAPI document.
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

// ReferenceReason distinguishes the two ways a reference can fail.
type ReferenceReason int

const (
	// ReasonInvalid means the $ref string is not of the form
	// #/components/<section>/<name> for a known section.
	ReasonInvalid ReferenceReason = iota
	// ReasonUnresolvable means the target is missing or the chain is too deep.
	ReasonUnresolvable
)

// ReferenceError represents a failure to parse or follow a $ref.
type ReferenceError struct {
	// Ref is the reference string that failed
	Ref string
	// Reason tells whether the string was malformed or its target unreachable
	Reason ReferenceReason
	// Depth is the chain depth at which resolution stopped (unresolvable only)
	Depth int
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "invalid reference"
	if e.Reason == ReasonUnresolvable {
		msg = "unresolvable reference"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
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
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrReference, plus ErrInvalidReference or ErrUnresolvableReference
// depending on Reason.
func (e *ReferenceError) Is(target error) bool {
	switch target {
	case ErrReference:
		return true
	case ErrInvalidReference:
		return e.Reason == ReasonInvalid
	case ErrUnresolvableReference:
		return e.Reason == ReasonUnresolvable
	}
	return false
}

// CircularDependencyError reports a cycle among named schema components.
// Path holds the ancestor chain followed by the vertex that closed the loop,
// so the first and last elements of a cycle are the same reference.
type CircularDependencyError struct {
	Path []string
}

// Error returns a human-readable error message.
func (e *CircularDependencyError) Error() string {
	if len(e.Path) == 0 {
		return "circular dependency"
	}
	return "circular dependency: " + strings.Join(e.Path, " -> ")
}

// Is reports whether target matches this error type.
func (e *CircularDependencyError) Is(target error) bool {
	return target == ErrCircularDependency
}

// UnsupportedSchemaError is returned when a schema node does not match any
// shape the compiler knows how to translate.
type UnsupportedSchemaError struct {
	// Location is where in the compiled tree the node was found (may be empty)
	Location string
	// Type is the declared type that could not be handled
	Type string
	// Schema is the offending node, kept for diagnostics
	Schema any
}

// Error returns a human-readable error message.
func (e *UnsupportedSchemaError) Error() string {
	msg := "unsupported schema"
	if e.Location != "" {
		msg += " at " + e.Location
	}
	if e.Type != "" {
		msg += fmt.Sprintf(": type %q", e.Type)
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *UnsupportedSchemaError) Is(target error) bool {
	return target == ErrUnsupportedSchema
}

// OperationErrorKind distinguishes operation extraction failures.
type OperationErrorKind int

const (
	// KindInvalidMethod marks a path item key that is not a known HTTP method.
	KindInvalidMethod OperationErrorKind = iota
	// KindInvalidStatusCode marks a response key that is not a valid status code.
	KindInvalidStatusCode
)

// OperationError is raised while extracting operations from the paths object.
type OperationError struct {
	Kind       OperationErrorKind
	Path       string
	Method     string
	StatusCode string
}

// Error returns a human-readable error message.
func (e *OperationError) Error() string {
	if e.Kind == KindInvalidStatusCode {
		return fmt.Sprintf("invalid status code %q for %s %s", e.StatusCode, strings.ToUpper(e.Method), e.Path)
	}
	return fmt.Sprintf("invalid http method %q for path %s", e.Method, e.Path)
}

// Is reports whether target matches this error type.
func (e *OperationError) Is(target error) bool {
	switch target {
	case ErrInvalidHTTPMethod:
		return e.Kind == KindInvalidMethod
	case ErrInvalidStatusCode:
		return e.Kind == KindInvalidStatusCode
	}
	return false
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
