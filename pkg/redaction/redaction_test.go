// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package redaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"regular email", "john.doe@example.com", "j***@example.com"},
		{"short local part", "a@b.org", "a***@b.org"},
		{"surrounding whitespace", "  jane@example.com ", "j***@example.com"},
		{"empty", "", ""},
		{"no at sign", "not-an-email", "***"},
		{"leading at sign", "@example.com", "***"},
		{"trailing at sign", "john@", "***"},
		{"multiple at signs", "odd@name@example.com", "o***@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RedactEmail(tt.input))
		})
	}
}

func TestRedactName(t *testing.T) {
	assert.Equal(t, "f*** b***", RedactName("foo bar"))
	assert.Equal(t, "J*** M***", RedactName("José Müller"))
	assert.Equal(t, "", RedactName("   "))
}
