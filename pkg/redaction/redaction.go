// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package redaction masks personal data before it reaches the logs.
package redaction

import "strings"

const mask = "***"

// RedactEmail keeps the first character of the local part and the domain:
// "john.doe@example.com" becomes "j***@example.com".
// Values without a usable "@" are masked entirely.
func RedactEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return mask
	}

	return email[:1] + mask + email[at:]
}

// RedactName keeps the first character of every word of a display name.
func RedactName(name string) string {
	fields := strings.Fields(name)
	for i, field := range fields {
		r := []rune(field)
		fields[i] = string(r[0]) + mask
	}
	return strings.Join(fields, " ")
}
