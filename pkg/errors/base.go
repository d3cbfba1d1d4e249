// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package errors provides custom error types for the authoring service.
package errors

import (
	"errors"
	"fmt"
)

// base holds the fields shared by every error type in this package
type base struct {
	message string
	err     error
}

// newBase joins causes so that every one of them stays reachable by errors.Is
func newBase(message string, causes []error) base {
	return base{message: message, err: errors.Join(causes...)}
}

// error renders the message, followed by the wrapped cause when there is one.
// Every type embedding base formats its message through here.
func (b base) error() string {
	if b.err == nil {
		return b.message
	}
	return fmt.Sprintf("%s: %v", b.message, b.err)
}

// Unwrap exposes the underlying error to support errors.Is / errors.As.
func (b base) Unwrap() error {
	return b.err
}
