// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package constants defines shared constants used throughout the authoring service.
package constants

// ContextKey is the unified type for all context keys to prevent type mismatches
type ContextKey string

// Context keys
const (
	// RequestIDContextKey is the context key for request ID
	RequestIDContextKey ContextKey = "request-id"
)
