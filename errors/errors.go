// Package errors provides domain-specific error types for the Arazzo model loaders
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific error type
type ErrorCode int

const (
	// Common error codes
	ErrUnknown ErrorCode = iota
	ErrInvalidInput

	// Loader error codes
	ErrMissingField
	ErrWrongType
	ErrEmptyList
	ErrUnsupportedKey
	ErrUnsupportedValue
	ErrNumericParse
)

// Error represents a loader error with context
type Error struct {
	// Code identifies the error type
	Code ErrorCode

	// Message provides human-readable error details
	Message string

	// Field names the document field the error relates to, if any
	Field string

	// SpecRef cites the governing section of the Arazzo specification, if any
	SpecRef string

	// Cause is the underlying error that triggered this one
	Cause error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.Message
	if e.SpecRef != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.SpecRef)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements the errors.Is interface
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error
func New(code ErrorCode, message string) error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// WithSpecRef attaches a specification section reference to the error
func WithSpecRef(err error, specRef string) error {
	if err == nil {
		return nil
	}

	e, ok := err.(*Error)
	if !ok {
		return &Error{
			Code:    ErrUnknown,
			Message: err.Error(),
			SpecRef: specRef,
			Cause:   err,
		}
	}

	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Field:   e.Field,
		SpecRef: specRef,
		Cause:   e.Cause,
	}
}

// MissingField creates an error for a required field that is absent
func MissingField(field string, specRef string) error {
	return &Error{
		Code:    ErrMissingField,
		Message: fmt.Sprintf("Did not find key '%s' in Object", field),
		Field:   field,
		SpecRef: specRef,
	}
}

// WrongType creates an error for a field present with the wrong primitive kind
func WrongType(field string, expected string, actual string) error {
	return &Error{
		Code:    ErrWrongType,
		Message: fmt.Sprintf("Value for key '%s' in Object was not a %s, was %s", field, expected, actual),
		Field:   field,
	}
}

// EmptyList creates an error for a required list that is absent or empty
func EmptyList(listName string, specRef string) error {
	return &Error{
		Code:    ErrEmptyList,
		Message: fmt.Sprintf("'%s' list must have at least one entry", listName),
		Field:   listName,
		SpecRef: specRef,
	}
}

// UnsupportedKey creates an error for a mapping key that is not a string
func UnsupportedKey(keyKind string) error {
	return &Error{
		Code:    ErrUnsupportedKey,
		Message: fmt.Sprintf("Only String values can be used for keys. Got '%s'", keyKind),
	}
}

// UnsupportedValue creates an error for a node with no Dynamic Value equivalent
func UnsupportedValue(kind string) error {
	return &Error{
		Code:    ErrUnsupportedValue,
		Message: fmt.Sprintf("Values of '%s' can not be used here", kind),
	}
}

// NumericParse creates an error for a numeric scalar that failed strict parsing
func NumericParse(rawText string, cause error) error {
	return &Error{
		Code:    ErrNumericParse,
		Message: fmt.Sprintf("Failed to parse '%s' as a number", rawText),
		Cause:   cause,
	}
}

// GetCode returns the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ErrUnknown
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrUnknown
}

// GetField returns the document field the error relates to
func GetField(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}

// IsMissingField returns true if the error is a missing required field error
func IsMissingField(err error) bool {
	return GetCode(err) == ErrMissingField
}

// IsWrongType returns true if the error is a wrong type error
func IsWrongType(err error) bool {
	return GetCode(err) == ErrWrongType
}

// IsEmptyList returns true if the error is an empty required list error
func IsEmptyList(err error) bool {
	return GetCode(err) == ErrEmptyList
}
