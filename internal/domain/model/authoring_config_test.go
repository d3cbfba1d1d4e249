// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		cfg      AuthoringConfig
		expected func(t *testing.T) *Authoring
	}{
		{
			name: "overwrite",
			cfg:  AuthoringConfig{Function: FunctionOverwrite, Default: strPtr("foo bar <baz@bar.com>")},
			expected: func(t *testing.T) *Authoring {
				return mustAuthoring(t, Author{Name: "foo bar", Email: "baz@bar.com"}, ModeUseDefault)
			},
		},
		{
			name: "pass thru",
			cfg:  AuthoringConfig{Function: FunctionPassThru, Default: strPtr("foo bar <baz@bar.com>")},
			expected: func(t *testing.T) *Authoring {
				return mustAuthoring(t, Author{Name: "foo bar", Email: "baz@bar.com"}, ModePassThru)
			},
		},
		{
			name: "whitelisted",
			cfg: AuthoringConfig{
				Function:  FunctionWhitelisted,
				Default:   strPtr("foo bar <baz@bar.com>"),
				Whitelist: []string{"foo", "bar"},
			},
			expected: func(t *testing.T) *Authoring {
				return mustAuthoring(t, Author{Name: "foo bar", Email: "baz@bar.com"}, ModeWhitelist, "foo", "bar")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authoring, err := Evaluate(tt.cfg)
			require.NoError(t, err)
			assert.True(t, tt.expected(t).Equal(authoring), "got %s", authoring)
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AuthoringConfig
		wantErr error
		message string
	}{
		{
			name:    "overwrite without default",
			cfg:     AuthoringConfig{Function: FunctionOverwrite},
			wantErr: ErrMissingRequiredField,
			message: "insufficient arguments received by overwrite(default: string)",
		},
		{
			name:    "pass thru without default",
			cfg:     AuthoringConfig{Function: FunctionPassThru},
			wantErr: ErrMissingRequiredField,
			message: "insufficient arguments received by pass_thru(default: string)",
		},
		{
			name:    "whitelisted without whitelist",
			cfg:     AuthoringConfig{Function: FunctionWhitelisted, Default: strPtr("Copybara <no-reply@google.com>")},
			wantErr: ErrMissingRequiredField,
			message: "insufficient arguments received by whitelisted(default: string, whitelist: sequence of string)",
		},
		{
			name:    "invalid default",
			cfg:     AuthoringConfig{Function: FunctionOverwrite, Default: strPtr("invalid")},
			wantErr: ErrMalformedIdentity,
			message: "Author 'invalid' doesn't match the expected format 'name <mail@example.com>'",
		},
		{
			name: "empty whitelist",
			cfg: AuthoringConfig{
				Function:  FunctionWhitelisted,
				Default:   strPtr("Copybara <no-reply@google.com>"),
				Whitelist: []string{},
			},
			wantErr: ErrEmptyWhitelist,
			message: "'whitelisted' function requires a non-empty 'whitelist' field. For default mapping, use 'overwrite(...)' mode instead.",
		},
		{
			name: "duplicate whitelist entry",
			cfg: AuthoringConfig{
				Function:  FunctionWhitelisted,
				Default:   strPtr("Copybara <no-reply@google.com>"),
				Whitelist: []string{"foo", "foo"},
			},
			wantErr: ErrDuplicateWhitelistEntry,
			message: "Duplicated whitelist entry 'foo'",
		},
		{
			name: "whitelist on overwrite",
			cfg: AuthoringConfig{
				Function:  FunctionOverwrite,
				Default:   strPtr("Copybara <no-reply@google.com>"),
				Whitelist: []string{"foo"},
			},
			wantErr: ErrUnexpectedField,
			message: "unexpected keyword 'whitelist' in call to overwrite(default: string)",
		},
		{
			name:    "unknown function",
			cfg:     AuthoringConfig{Function: "rewrite", Default: strPtr("Copybara <no-reply@google.com>")},
			wantErr: ErrUnknownFunction,
			message: "unknown authoring function 'rewrite'. Must be one of: overwrite, pass_thru, whitelisted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authoring, err := Evaluate(tt.cfg)
			require.Error(t, err)
			assert.Nil(t, authoring)
			assert.True(t, errors.Is(err, tt.wantErr), "unexpected cause: %v", err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestAuthoring_ConfigRoundTrip(t *testing.T) {
	policies := []*Authoring{
		mustAuthoring(t, defaultAuthor, ModeUseDefault),
		mustAuthoring(t, defaultAuthor, ModePassThru),
		mustAuthoring(t, defaultAuthor, ModeWhitelist, "foo@example.com", "bar@example.com"),
	}

	for _, policy := range policies {
		t.Run(policy.Mode().String(), func(t *testing.T) {
			evaluated, err := Evaluate(policy.Config())
			require.NoError(t, err)
			assert.True(t, policy.Equal(evaluated))
		})
	}
}
