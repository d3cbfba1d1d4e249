// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/errors"
)

// Authoring decides which author is recorded for a contributor.
//
// An Authoring is immutable once built, so a single value may be shared and
// resolved against from any number of goroutines.
type Authoring struct {
	defaultAuthor Author
	mode          Mode
	whitelist     map[string]struct{}
}

// Overwrite builds an Authoring that always records defaultAuthor.
func Overwrite(defaultAuthor string) (*Authoring, error) {
	author, err := ParseAuthor(defaultAuthor)
	if err != nil {
		return nil, err
	}
	return &Authoring{defaultAuthor: author, mode: ModeUseDefault}, nil
}

// PassThru builds an Authoring that records contributors unchanged.
// defaultAuthor is still required and validated.
func PassThru(defaultAuthor string) (*Authoring, error) {
	author, err := ParseAuthor(defaultAuthor)
	if err != nil {
		return nil, err
	}
	return &Authoring{defaultAuthor: author, mode: ModePassThru}, nil
}

// Whitelisted builds an Authoring that keeps the identity of contributors whose
// email is in whitelist and records defaultAuthor for everybody else.
// Duplicates are reported in input order, so the first repeated token is named.
func Whitelisted(defaultAuthor string, whitelist []string) (*Authoring, error) {
	author, err := ParseAuthor(defaultAuthor)
	if err != nil {
		return nil, err
	}
	set, err := whitelistSet(whitelist)
	if err != nil {
		return nil, err
	}
	return &Authoring{defaultAuthor: author, mode: ModeWhitelist, whitelist: set}, nil
}

// NewAuthoring builds an Authoring from already parsed fields. The default
// author obeys the same rules as one accepted by ParseAuthor.
func NewAuthoring(defaultAuthor Author, mode Mode, whitelist ...string) (*Authoring, error) {
	if strings.TrimSpace(defaultAuthor.Name) == "" || defaultAuthor.Email == "" {
		return nil, errors.NewConfigValidation(
			fmt.Sprintf("Author '%s' doesn't match the expected format '%s'", defaultAuthor, AuthorFormatExample),
			ErrMalformedIdentity,
		)
	}
	if !mode.valid() {
		return nil, errors.NewValidation(fmt.Sprintf("unsupported authoring mode %d", mode))
	}

	a := &Authoring{defaultAuthor: defaultAuthor, mode: mode}
	if mode != ModeWhitelist {
		if len(whitelist) > 0 {
			return nil, errors.NewConfigValidation(
				fmt.Sprintf("'%s' mode does not accept a 'whitelist' field", mode.Function()),
				ErrUnexpectedField,
			)
		}
		return a, nil
	}

	set, err := whitelistSet(whitelist)
	if err != nil {
		return nil, err
	}
	a.whitelist = set
	return a, nil
}

func whitelistSet(whitelist []string) (map[string]struct{}, error) {
	if len(whitelist) == 0 {
		return nil, errors.NewConfigValidation(
			"'whitelisted' function requires a non-empty 'whitelist' field. "+
				"For default mapping, use 'overwrite(...)' mode instead.",
			ErrEmptyWhitelist,
		)
	}

	set := make(map[string]struct{}, len(whitelist))
	for _, entry := range whitelist {
		if _, seen := set[entry]; seen {
			return nil, errors.NewConfigValidation(
				fmt.Sprintf("Duplicated whitelist entry '%s'", entry),
				ErrDuplicateWhitelistEntry,
			)
		}
		set[entry] = struct{}{}
	}
	return set, nil
}

// DefaultAuthor returns the author recorded when a contributor is not kept.
func (a *Authoring) DefaultAuthor() Author {
	return a.defaultAuthor
}

// Mode returns the mapping mode.
func (a *Authoring) Mode() Mode {
	return a.mode
}

// Whitelist returns the whitelisted emails in sorted order.
// It is empty unless the mode is ModeWhitelist.
func (a *Authoring) Whitelist() []string {
	entries := make([]string, 0, len(a.whitelist))
	for entry := range a.whitelist {
		entries = append(entries, entry)
	}
	slices.Sort(entries)
	return entries
}

// Resolve returns the author to record for contributor.
// Membership in the whitelist is exact string equality on the email.
// Contributor data is never validated here.
func (a *Authoring) Resolve(contributor OriginalAuthor) Author {
	switch a.mode {
	case ModePassThru:
		return Author{Name: contributor.Name(), Email: contributor.Email()}
	case ModeWhitelist:
		if _, ok := a.whitelist[contributor.Email()]; ok {
			return Author{Name: contributor.Name(), Email: contributor.Email()}
		}
		return a.defaultAuthor
	default:
		return a.defaultAuthor
	}
}

// Equal reports whether both policies have the same default author, mode and
// whitelist. Whitelist order is irrelevant.
func (a *Authoring) Equal(other *Authoring) bool {
	if a == nil || other == nil {
		return a == other
	}
	if a.defaultAuthor != other.defaultAuthor || a.mode != other.mode || len(a.whitelist) != len(other.whitelist) {
		return false
	}
	for entry := range a.whitelist {
		if _, ok := other.whitelist[entry]; !ok {
			return false
		}
	}
	return true
}

// String describes the policy for logs.
func (a *Authoring) String() string {
	return fmt.Sprintf("Authoring{default=%s, mode=%s, whitelist=%v}", a.defaultAuthor, a.mode, a.Whitelist())
}

// Config returns the named-argument record that evaluates back to an equal Authoring.
func (a *Authoring) Config() AuthoringConfig {
	def := a.defaultAuthor.String()
	cfg := AuthoringConfig{
		Function: a.mode.Function(),
		Default:  &def,
	}
	if a.mode == ModeWhitelist {
		cfg.Whitelist = a.Whitelist()
	}
	return cfg
}
