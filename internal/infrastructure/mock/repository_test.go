// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/domain/model"
	pkgerrors "github.com/linuxfoundation/lfx-v2-authoring-service/pkg/errors"
)

func TestMockRepository_SamplePolicies(t *testing.T) {
	ctx := context.Background()
	repo := NewMockRepository()

	policies, err := repo.ListAuthoringPolicies(ctx)
	require.NoError(t, err)
	require.Len(t, policies, 3)
	assert.Equal(t, "core-team", policies[0].Name)
	assert.Equal(t, "default", policies[1].Name)
	assert.Equal(t, "pass-thru", policies[2].Name)

	for _, policy := range policies {
		assert.NoError(t, policy.Validate(), "sample policy %s should be valid", policy.Name)
	}
}

func TestMockRepository_PutAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMockRepository()
	repo.ClearAll()

	def := "Copybara <no-reply@google.com>"
	policy := &model.AuthoringPolicy{
		Name:   "docs",
		Config: model.AuthoringConfig{Function: model.FunctionWhitelisted, Default: &def, Whitelist: []string{"a@b.com"}},
	}

	rev, created, err := repo.PutAuthoringPolicy(ctx, policy)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), rev)
	assert.True(t, created)

	rev, created, err = repo.PutAuthoringPolicy(ctx, policy)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), rev)
	assert.False(t, created)

	// stored copies are isolated from the caller
	policy.Config.Whitelist[0] = "mutated"

	stored, rev, err := repo.GetAuthoringPolicy(ctx, "docs")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), rev)
	assert.Equal(t, []string{"a@b.com"}, stored.Config.Whitelist)

	_, _, err = repo.GetAuthoringPolicy(ctx, "missing")
	var notFound pkgerrors.NotFound
	assert.True(t, errors.As(err, &notFound))

	_, _, err = repo.PutAuthoringPolicy(ctx, &model.AuthoringPolicy{})
	var validation pkgerrors.Validation
	assert.True(t, errors.As(err, &validation))
}

func TestMockRepository_ErrorSimulation(t *testing.T) {
	ctx := context.Background()
	repo := NewMockRepository()

	expectedErr := pkgerrors.NewServiceUnavailable("simulated store outage")
	repo.SetErrorForPolicy("default", expectedErr)

	_, _, err := repo.GetAuthoringPolicy(ctx, "default")
	require.Error(t, err)
	assert.True(t, errors.Is(err, expectedErr))

	_, _, err = repo.PutAuthoringPolicy(ctx, &model.AuthoringPolicy{Name: "default"})
	assert.True(t, errors.Is(err, expectedErr))

	repo.ClearAll()
	_, _, err = repo.GetAuthoringPolicy(ctx, "default")
	var notFound pkgerrors.NotFound
	assert.True(t, errors.As(err, &notFound))
}

func TestMockMessagePublisher(t *testing.T) {
	ctx := context.Background()
	publisher := NewMockMessagePublisher()

	require.NoError(t, publisher.Policy(ctx, "subject.a", "one"))
	require.NoError(t, publisher.Policy(ctx, "subject.b", "two"))

	messages := publisher.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, "subject.a", messages[0].Subject)
	assert.Equal(t, "two", messages[1].Message)

	publisher.SetError(errors.New("broker down"))
	assert.Error(t, publisher.Policy(ctx, "subject.c", "three"))
	assert.Len(t, publisher.Messages(), 2)
}
