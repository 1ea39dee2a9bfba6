// Package shared contains common domain types, errors and events
// that are used across all domain packages. This package has zero external dependencies
// apart from uuid for event identifiers.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Argument errors
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptyValue      = errors.New("value cannot be empty")

	// Grade errors
	ErrInvalidGrade    = errors.New("invalid grade")
	ErrInvalidFormat   = errors.New("invalid format")
	ErrValueOutOfRange = errors.New("value out of range")

	// Lookup errors
	ErrNotFound        = errors.New("not found")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "grade"
	Op      string // Operation that failed, e.g., "AddGrade"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Grade record errors
var (
	ErrBlankStudentID   = WrapError("grade", "NewRecord", ErrInvalidArgument, "student ID cannot be empty", ErrEmptyValue)
	ErrBlankStudentName = WrapError("grade", "NewRecord", ErrInvalidArgument, "student name cannot be empty", ErrEmptyValue)
)

// IsInvalidArgument checks if the error is an "invalid argument" error.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsInvalidGrade checks if the error is an "invalid grade" error.
func IsInvalidGrade(err error) bool {
	return errors.Is(err, ErrInvalidGrade)
}

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsIndexOutOfRange checks if the error is an "index out of range" error.
func IsIndexOutOfRange(err error) bool {
	return errors.Is(err, ErrIndexOutOfRange)
}
