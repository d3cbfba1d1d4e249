// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

import "strings"

// OriginalAuthor is a contributor as known to the origin system.
type OriginalAuthor interface {
	Name() string
	Email() string
}

// Contributor is a plain OriginalAuthor value.
type Contributor struct {
	name  string
	email string
}

// NewContributor creates a Contributor. The fields are not validated, the
// origin system owns their correctness.
func NewContributor(name, email string) Contributor {
	return Contributor{name: name, email: email}
}

// ParseContributor reads a contributor from an origin identity string.
// It never fails: a string that is not in "Name <email>" form becomes a
// contributor with that (trimmed) name and an empty email.
func ParseContributor(identity string) Contributor {
	if name, email, ok := splitIdentity(identity); ok {
		return Contributor{name: name, email: email}
	}
	return Contributor{name: strings.TrimSpace(identity)}
}

// Name returns the contributor display name.
func (c Contributor) Name() string {
	return c.name
}

// Email returns the contributor email.
func (c Contributor) Email() string {
	return c.email
}

// String renders the contributor in the "Name <email>" identity form.
func (c Contributor) String() string {
	return Author{Name: c.name, Email: c.email}.String()
}
