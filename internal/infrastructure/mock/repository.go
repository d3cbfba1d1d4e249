// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package mock provides in-memory implementations of the domain ports for
// local runs and tests.
package mock

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/errors"
)

// MockRepository provides a mock implementation of the policy store
type MockRepository struct {
	policies  map[string]*model.AuthoringPolicy
	revisions map[string]uint64
	errors    map[string]error // policy name -> simulated error
	mu        sync.RWMutex
}

var (
	_ port.AuthoringPolicyReaderWriter = (*MockRepository)(nil)
	_ port.ReadinessChecker            = (*MockRepository)(nil)
)

func identity(s string) *string {
	return &s
}

// NewMockRepository creates a new mock repository with sample policies
func NewMockRepository() *MockRepository {
	now := time.Now()

	repo := &MockRepository{
		policies:  make(map[string]*model.AuthoringPolicy),
		revisions: make(map[string]uint64),
		errors:    make(map[string]error),
	}

	samples := []*model.AuthoringPolicy{
		{
			Name: "default",
			Config: model.AuthoringConfig{
				Function: model.FunctionOverwrite,
				Default:  identity("Copybara <no-reply@google.com>"),
			},
			UpdatedAt: now,
		},
		{
			Name: "pass-thru",
			Config: model.AuthoringConfig{
				Function: model.FunctionPassThru,
				Default:  identity("Copybara <no-reply@google.com>"),
			},
			UpdatedAt: now,
		},
		{
			Name: "core-team",
			Config: model.AuthoringConfig{
				Function:  model.FunctionWhitelisted,
				Default:   identity("Copybara <no-reply@google.com>"),
				Whitelist: []string{"baz@bar.com"},
			},
			UpdatedAt: now,
		},
	}
	for _, policy := range samples {
		repo.policies[policy.Name] = policy
		repo.revisions[policy.Name] = 1
	}

	return repo
}

func clonePolicy(policy *model.AuthoringPolicy) *model.AuthoringPolicy {
	clone := *policy
	if policy.Config.Default != nil {
		clone.Config.Default = identity(*policy.Config.Default)
	}
	clone.Config.Whitelist = slices.Clone(policy.Config.Whitelist)
	return &clone
}

// GetAuthoringPolicy retrieves a policy by name
func (m *MockRepository) GetAuthoringPolicy(ctx context.Context, name string) (*model.AuthoringPolicy, uint64, error) {
	slog.DebugContext(ctx, "mock: getting authoring policy", "policy", name)

	m.mu.RLock()
	defer m.mu.RUnlock()

	if err, ok := m.errors[name]; ok {
		return nil, 0, err
	}

	policy, exists := m.policies[name]
	if !exists {
		return nil, 0, errors.NewNotFound("authoring policy not found")
	}

	return clonePolicy(policy), m.revisions[name], nil
}

// ListAuthoringPolicies returns every stored policy sorted by name
func (m *MockRepository) ListAuthoringPolicies(ctx context.Context) ([]*model.AuthoringPolicy, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	policies := make([]*model.AuthoringPolicy, 0, len(m.policies))
	for _, policy := range m.policies {
		policies = append(policies, clonePolicy(policy))
	}
	slices.SortFunc(policies, func(a, b *model.AuthoringPolicy) int {
		return strings.Compare(a.Name, b.Name)
	})

	slog.DebugContext(ctx, "mock: listed authoring policies", "count", len(policies))
	return policies, nil
}

// PutAuthoringPolicy stores a policy and bumps its revision
func (m *MockRepository) PutAuthoringPolicy(ctx context.Context, policy *model.AuthoringPolicy) (uint64, bool, error) {
	if policy == nil || policy.Name == "" {
		return 0, false, errors.NewValidation("policy name cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.errors[policy.Name]; ok {
		return 0, false, err
	}

	_, existed := m.policies[policy.Name]
	m.policies[policy.Name] = clonePolicy(policy)
	m.revisions[policy.Name]++

	slog.DebugContext(ctx, "mock: stored authoring policy",
		"policy", policy.Name,
		"revision", m.revisions[policy.Name],
	)

	return m.revisions[policy.Name], !existed, nil
}

// IsReady always succeeds for the in-memory store
func (m *MockRepository) IsReady(context.Context) error {
	return nil
}

// AddPolicy stores a policy directly, bypassing validation
func (m *MockRepository) AddPolicy(policy *model.AuthoringPolicy) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.policies[policy.Name] = clonePolicy(policy)
	m.revisions[policy.Name]++
}

// SetErrorForPolicy makes every read and write of the named policy fail with err
func (m *MockRepository) SetErrorForPolicy(name string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errors[name] = err
}

// ClearAll removes all policies and simulated errors
func (m *MockRepository) ClearAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.policies = make(map[string]*model.AuthoringPolicy)
	m.revisions = make(map[string]uint64)
	m.errors = make(map[string]error)
}
