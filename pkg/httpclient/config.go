// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package httpclient

import "time"

// Config holds the HTTP client settings
type Config struct {
	Timeout      time.Duration
	MaxRetries   int
	RetryDelay   time.Duration
	RetryBackoff bool
	MaxDelay     time.Duration
}

// DefaultConfig returns the settings used to fetch remote policy files
func DefaultConfig() Config {
	return Config{
		Timeout:      30 * time.Second,
		MaxRetries:   2,
		RetryDelay:   time.Second,
		RetryBackoff: true,
		MaxDelay:     30 * time.Second,
	}
}
