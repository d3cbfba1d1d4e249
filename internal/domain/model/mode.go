// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

// Mode selects how an Authoring maps contributors to authors.
type Mode int

const (
	// ModeUseDefault always records the default author.
	ModeUseDefault Mode = iota
	// ModePassThru records the contributor as-is.
	ModePassThru
	// ModeWhitelist records whitelisted contributors as-is and everybody else as the default author.
	ModeWhitelist
)

// Authoring function names, as written in policy configuration
const (
	FunctionOverwrite   = "overwrite"
	FunctionPassThru    = "pass_thru"
	FunctionWhitelisted = "whitelisted"
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeUseDefault:
		return "USE_DEFAULT"
	case ModePassThru:
		return "PASS_THRU"
	case ModeWhitelist:
		return "WHITELIST"
	default:
		return "UNKNOWN"
	}
}

// Function returns the configuration function that builds an Authoring in this mode.
func (m Mode) Function() string {
	switch m {
	case ModeUseDefault:
		return FunctionOverwrite
	case ModePassThru:
		return FunctionPassThru
	case ModeWhitelist:
		return FunctionWhitelisted
	default:
		return ""
	}
}

func (m Mode) valid() bool {
	return m >= ModeUseDefault && m <= ModeWhitelist
}
