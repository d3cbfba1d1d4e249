// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

import (
	"context"

	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/constants"
)

// MessageAction is a type for the action of an authoring policy message
type MessageAction string

// MessageAction constants for the action of an authoring policy message
const (
	// ActionCreated is the action for a policy stored for the first time
	ActionCreated MessageAction = "created"
	// ActionUpdated is the action for a policy whose configuration changed
	ActionUpdated MessageAction = "updated"
)

// PolicyMessage is the NATS message published after an authoring policy is stored
type PolicyMessage struct {
	Action  MessageAction     `json:"action"`
	Headers map[string]string `json:"headers"`
	Data    *AuthoringPolicy  `json:"data"`
	Tags    []string          `json:"tags"`
}

// NewPolicyMessage builds a policy message, propagating the request ID found in ctx.
func NewPolicyMessage(ctx context.Context, action MessageAction, policy *AuthoringPolicy) *PolicyMessage {
	headers := make(map[string]string)
	if requestID, ok := ctx.Value(constants.RequestIDContextKey).(string); ok && requestID != "" {
		headers[constants.RequestIDHeader] = requestID
	}
	return &PolicyMessage{
		Action:  action,
		Headers: headers,
		Data:    policy,
		Tags:    policy.Tags(),
	}
}
