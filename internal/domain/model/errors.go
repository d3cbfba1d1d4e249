// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

import "errors"

// Causes wrapped by the configuration errors returned from the authoring
// constructors. Match them with errors.Is.
var (
	ErrMalformedIdentity       = errors.New("malformed identity")
	ErrMissingRequiredField    = errors.New("missing required field")
	ErrEmptyWhitelist          = errors.New("empty whitelist")
	ErrDuplicateWhitelistEntry = errors.New("duplicate whitelist entry")
	ErrUnknownFunction         = errors.New("unknown authoring function")
	ErrUnexpectedField         = errors.New("unexpected field")
)
