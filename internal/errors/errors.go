// Package errors provides custom error types and error handling utilities.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors that can be used for comparison.
var (
	// ErrInvalidInput is returned when user input is invalid.
	ErrInvalidInput = errors.New("Invalid input")

	// ErrConfigurationInvalid is returned when application configuration is invalid.
	ErrConfigurationInvalid = errors.New("Configuration is invalid")
)

// ValidationError represents an error that occurs during flag or option
// validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error returns the error message.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("Validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("Validation error: %s", e.Message)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// InputError represents a failure to read plan text or write the report.
type InputError struct {
	Source  string
	Message string
	Err     error
}

// Error returns the error message.
func (e *InputError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("Input error reading %s: %s", e.Source, e.Message)
	}
	return fmt.Sprintf("Input error: %s", e.Message)
}

// Unwrap returns the underlying error.
func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError creates a new InputError.
func NewInputError(source, message string, err error) error {
	return &InputError{
		Source:  source,
		Message: message,
		Err:     err,
	}
}

// ConfigurationError represents an error related to configuration.
type ConfigurationError struct {
	Component string
	Message   string
	Err       error
}

// Error returns the error message.
func (e *ConfigurationError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("Configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("Configuration error: %s", e.Message)
}

// Unwrap returns the underlying error.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a new ConfigurationError.
func NewConfigurationError(component, message string, err error) error {
	return &ConfigurationError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// IsValidationError returns true if the error is a ValidationError.
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// IsInputError returns true if the error is an InputError.
func IsInputError(err error) bool {
	var inErr *InputError
	return errors.As(err, &inErr)
}

// IsConfigurationError returns true if the error is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var confErr *ConfigurationError
	return errors.As(err, &confErr)
}

// IsErrInvalidInput returns true if the error is or wraps ErrInvalidInput.
func IsErrInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsErrConfigurationInvalid returns true if the error is or wraps ErrConfigurationInvalid.
func IsErrConfigurationInvalid(err error) bool {
	return errors.Is(err, ErrConfigurationInvalid)
}
