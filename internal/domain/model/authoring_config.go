// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

import (
	"fmt"

	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/errors"
)

// AuthoringConfig is the named-argument form of an authoring function call,
// e.g. whitelisted(default = "...", whitelist = [...]).
// A nil Default or Whitelist means the argument was not given at all.
type AuthoringConfig struct {
	Function  string   `json:"function" yaml:"function"`
	Default   *string  `json:"default,omitempty" yaml:"default"`
	Whitelist []string `json:"whitelist,omitempty" yaml:"whitelist"`
}

// signatures are the user-facing function signatures used in error messages
var signatures = map[string]string{
	FunctionOverwrite:   "overwrite(default: string)",
	FunctionPassThru:    "pass_thru(default: string)",
	FunctionWhitelisted: "whitelisted(default: string, whitelist: sequence of string)",
}

// Evaluate builds the Authoring described by cfg.
// It has no side effects; either a fully valid Authoring or an error is returned.
func Evaluate(cfg AuthoringConfig) (*Authoring, error) {
	signature, known := signatures[cfg.Function]
	if !known {
		return nil, errors.NewConfigValidation(
			fmt.Sprintf("unknown authoring function '%s'. Must be one of: %s, %s, %s",
				cfg.Function, FunctionOverwrite, FunctionPassThru, FunctionWhitelisted),
			ErrUnknownFunction,
		)
	}

	if cfg.Default == nil || (cfg.Function == FunctionWhitelisted && cfg.Whitelist == nil) {
		return nil, errors.NewConfigValidation(
			fmt.Sprintf("insufficient arguments received by %s", signature),
			ErrMissingRequiredField,
		)
	}

	switch cfg.Function {
	case FunctionOverwrite, FunctionPassThru:
		if cfg.Whitelist != nil {
			return nil, errors.NewConfigValidation(
				fmt.Sprintf("unexpected keyword 'whitelist' in call to %s", signature),
				ErrUnexpectedField,
			)
		}
		if cfg.Function == FunctionOverwrite {
			return Overwrite(*cfg.Default)
		}
		return PassThru(*cfg.Default)
	default:
		return Whitelisted(*cfg.Default, cfg.Whitelist)
	}
}
