// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package constants

// NATS subjects
const (
	// AuthoringResolveSubject is the request/reply subject resolving a contributor against a policy
	AuthoringResolveSubject = "lfx.authoring-api.resolve"

	// AuthoringPolicyUpdatedSubject is published after a policy is stored
	AuthoringPolicyUpdatedSubject = "lfx.authoring-api.policy_updated"
)

// AuthoringAPIQueue is the NATS queue group for authoring service subscriptions
const AuthoringAPIQueue = "lfx-v2-authoring-api"
