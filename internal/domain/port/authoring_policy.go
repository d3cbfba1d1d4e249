// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package port defines the interfaces for external dependencies and adapters.
package port

import (
	"context"

	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/domain/model"
)

// AuthoringPolicyReader defines the interface for policy read operations
type AuthoringPolicyReader interface {
	// GetAuthoringPolicy retrieves a policy by name and returns its revision
	GetAuthoringPolicy(ctx context.Context, name string) (*model.AuthoringPolicy, uint64, error)
	// ListAuthoringPolicies returns every stored policy sorted by name
	ListAuthoringPolicies(ctx context.Context) ([]*model.AuthoringPolicy, error)
}

// AuthoringPolicyWriter defines the interface for policy write operations
type AuthoringPolicyWriter interface {
	// PutAuthoringPolicy stores a policy, returning the new revision and
	// whether the policy did not exist before
	PutAuthoringPolicy(ctx context.Context, policy *model.AuthoringPolicy) (uint64, bool, error)
}

// AuthoringPolicyReaderWriter combines reader and writer
type AuthoringPolicyReaderWriter interface {
	AuthoringPolicyReader
	AuthoringPolicyWriter
}
