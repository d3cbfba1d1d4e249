// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package nats

import "time"

// Config holds the NATS connection settings
type Config struct {
	// URL is the NATS server URL
	URL string
	// Timeout bounds connection attempts and request/reply round trips
	Timeout time.Duration
	// MaxReconnect is the maximum number of reconnection attempts
	MaxReconnect int
	// ReconnectWait is the wait between reconnection attempts
	ReconnectWait time.Duration
}
