// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"regexp"
	"time"

	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/errors"
)

// policyNamePattern keeps policy names usable as NATS KV keys
var policyNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// AuthoringPolicy is a named authoring configuration as stored in the policy bucket.
type AuthoringPolicy struct {
	Name      string          `json:"name"`
	Config    AuthoringConfig `json:"config"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Validate checks the policy name and that its configuration evaluates.
func (p *AuthoringPolicy) Validate() error {
	if p == nil {
		return errors.NewValidation("authoring policy is required")
	}
	if !policyNamePattern.MatchString(p.Name) {
		return errors.NewValidation(fmt.Sprintf("invalid authoring policy name '%s': only letters, digits, '-' and '_' are allowed", p.Name))
	}
	if _, err := Evaluate(p.Config); err != nil {
		return errors.NewValidation(fmt.Sprintf("authoring policy '%s' is invalid", p.Name), err)
	}
	return nil
}

// Authoring evaluates the stored configuration.
func (p *AuthoringPolicy) Authoring() (*Authoring, error) {
	return Evaluate(p.Config)
}

// Tags returns the tags attached to policy update messages.
func (p *AuthoringPolicy) Tags() []string {
	if p == nil {
		return nil
	}
	tags := []string{fmt.Sprintf("policy:%s", p.Name)}
	if p.Config.Function != "" {
		tags = append(tags, fmt.Sprintf("function:%s", p.Config.Function))
	}
	return tags
}
