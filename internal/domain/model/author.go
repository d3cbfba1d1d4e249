// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package model defines the domain models and entities for the authoring service.
package model

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/errors"
)

// AuthorFormatExample is the identity format shown to users when parsing fails.
const AuthorFormatExample = "name <mail@example.com>"

// identityPattern matches "Name <email>": a name, one whitespace character and
// a non-empty token between angle brackets.
var identityPattern = regexp.MustCompile(`^(?P<name>[^<]+)\s<(?P<email>[^>]+)>$`)

// Author is the identity recorded on a migrated change.
// Author is a value type: copies never share state and == compares both fields.
type Author struct {
	Name  string `json:"name" msgpack:"name"`
	Email string `json:"email" msgpack:"email"`
}

// String renders the author in the "Name <email>" identity form. The separator
// is always a single space, whatever whitespace character was parsed.
func (a Author) String() string {
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}

// ParseAuthor parses an identity string of the form "Name <email>".
// Name and email are returned exactly as captured. The separator may be any
// single whitespace character; String normalizes it to a space.
func ParseAuthor(identity string) (Author, error) {
	name, email, ok := splitIdentity(identity)
	if !ok || strings.TrimSpace(name) == "" {
		return Author{}, errors.NewConfigValidation(
			fmt.Sprintf("Author '%s' doesn't match the expected format '%s'", identity, AuthorFormatExample),
			ErrMalformedIdentity,
		)
	}
	return Author{Name: name, Email: email}, nil
}

func splitIdentity(identity string) (name, email string, ok bool) {
	match := identityPattern.FindStringSubmatch(identity)
	if match == nil {
		return "", "", false
	}
	return match[identityPattern.SubexpIndex("name")], match[identityPattern.SubexpIndex("email")], true
}
