// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package constants

const (
	// KVBucketNameAuthoringPolicies is the name of the KV bucket for authoring policies.
	KVBucketNameAuthoringPolicies = "authoring-policies"
)
