package grom

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for common operations.
var (
	// ErrInvalidName is returned when a class or property name does not follow
	// the casing and separator conventions expected by an inflection.
	ErrInvalidName = errors.New("grom: invalid name")

	// ErrMissingDependency is returned when an object, its graph, or one of its
	// associations cannot be resolved while merging graphs.
	ErrMissingDependency = errors.New("grom: missing dependency")

	// ErrInvalidConfig is returned when configuration values are unusable.
	ErrInvalidConfig = errors.New("grom: invalid configuration")
)

// NameError represents a name passed to an inflection that is not in the
// expected spelling.
type NameError struct {
	Op     string // Inflection (e.g., "ClassName", "PropertyName")
	Name   string // Offending input
	Reason string
}

// Error returns the error string.
func (e *NameError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("grom: %s: invalid name %q: %s", e.Op, e.Name, e.Reason)
	}
	return fmt.Sprintf("grom: %s: invalid name %q", e.Op, e.Name)
}

// Is reports whether the target error matches NameError.
// This allows errors.Is(nameErr, ErrInvalidName) to return true.
func (e *NameError) Is(err error) bool {
	return err == ErrInvalidName
}

// NewNameError returns a new NameError.
func NewNameError(op, name, reason string) *NameError {
	return &NameError{Op: op, Name: name, Reason: reason}
}

// IsNameError returns true if the error is a NameError.
func IsNameError(err error) bool {
	if err == nil {
		return false
	}
	var e *NameError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidName)
}

// MissingDependencyError represents an object, graph or association that a
// graph merge needed but could not obtain.
type MissingDependencyError struct {
	Object     string // Identifier of the object being read (may be empty)
	Dependency string // What was missing (e.g., "graph", "association dummy_party_memberships")
	Err        error  // Underlying error, if the collaborator reported one
}

// Error returns the error string.
func (e *MissingDependencyError) Error() string {
	var b strings.Builder
	b.WriteString("grom: missing ")
	b.WriteString(e.Dependency)
	if e.Object != "" {
		b.WriteString(" for ")
		b.WriteString(e.Object)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *MissingDependencyError) Unwrap() error {
	return e.Err
}

// Is reports whether the target error matches MissingDependencyError.
func (e *MissingDependencyError) Is(err error) bool {
	return err == ErrMissingDependency
}

// NewMissingDependencyError returns a new MissingDependencyError.
func NewMissingDependencyError(object, dependency string, err error) *MissingDependencyError {
	return &MissingDependencyError{Object: object, Dependency: dependency, Err: err}
}

// IsMissingDependency returns true if the error is a MissingDependencyError.
func IsMissingDependency(err error) bool {
	if err == nil {
		return false
	}
	var e *MissingDependencyError
	return errors.As(err, &e) || errors.Is(err, ErrMissingDependency)
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error returns the error string.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("grom: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("grom: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError returns a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message}
}

// IsConfigError returns true if the error is a ConfigError.
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	var e *ConfigError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidConfig)
}

// AggregateError represents multiple errors collected during an operation.
type AggregateError struct {
	Errors []error
}

// Error returns the error string.
func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "grom: no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("grom: multiple errors:")
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  [%d] %v", i+1, err)
	}
	return sb.String()
}

// Unwrap returns the collected errors so errors.Is and errors.As can match
// any of them.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// NewAggregateError returns a new AggregateError if there are errors,
// otherwise returns nil.
func NewAggregateError(errs ...error) error {
	var filtered []error
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &AggregateError{Errors: filtered}
}
