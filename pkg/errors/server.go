// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package errors

// Unexpected is a fault on the service side that a retry will not fix, such as
// a stored policy that no longer evaluates or a reply that cannot be encoded.
type Unexpected struct {
	base
}

// Error renders the message and its cause.
func (u Unexpected) Error() string {
	return u.error()
}

// NewUnexpected wraps the given causes in an Unexpected error.
func NewUnexpected(message string, err ...error) Unexpected {
	return Unexpected{base: newBase(message, err)}
}

// ServiceUnavailable reports that NATS or the policy bucket cannot serve the
// request right now. Callers may retry.
type ServiceUnavailable struct {
	base
}

// Error renders the message and its cause.
func (su ServiceUnavailable) Error() string {
	return su.error()
}

// NewServiceUnavailable wraps the given causes in a ServiceUnavailable error.
func NewServiceUnavailable(message string, err ...error) ServiceUnavailable {
	return ServiceUnavailable{base: newBase(message, err)}
}
