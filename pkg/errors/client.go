// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package errors

// Validation represents a request that failed input validation.
type Validation struct {
	base
}

// Error returns the error message for Validation.
func (v Validation) Error() string {
	return v.error()
}

// NewValidation creates a new Validation error with the provided message.
func NewValidation(message string, err ...error) Validation {
	return Validation{base: newBase(message, err)}
}

// NotFound represents a missing resource.
type NotFound struct {
	base
}

// Error returns the error message for NotFound.
func (n NotFound) Error() string {
	return n.error()
}

// NewNotFound creates a new NotFound error with the provided message.
func NewNotFound(message string, err ...error) NotFound {
	return NotFound{base: newBase(message, err)}
}

// Conflict represents a write that collides with existing state.
type Conflict struct {
	base
}

// Error returns the error message for Conflict.
func (c Conflict) Error() string {
	return c.error()
}

// NewConflict creates a new Conflict error with the provided message.
func NewConflict(message string, err ...error) Conflict {
	return Conflict{base: newBase(message, err)}
}

// ConfigValidation represents a mistake in a human-authored configuration.
//
// Unlike the other types, Error returns the message alone: it is shown verbatim
// to whoever wrote the configuration. The cause is still reachable through
// Unwrap, so callers classify it with errors.Is.
type ConfigValidation struct {
	base
}

// Error returns the configuration message without the wrapped cause.
func (c ConfigValidation) Error() string {
	return c.message
}

// NewConfigValidation creates a new ConfigValidation error with the provided message.
func NewConfigValidation(message string, err ...error) ConfigValidation {
	return ConfigValidation{base: newBase(message, err)}
}
