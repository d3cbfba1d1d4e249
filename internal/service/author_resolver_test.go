// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/infrastructure/mock"
	errs "github.com/linuxfoundation/lfx-v2-authoring-service/pkg/errors"
)

var defaultAuthor = model.Author{Name: "Copybara", Email: "no-reply@google.com"}

func TestAuthorResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	resolver := NewAuthorResolver(WithAuthoringPolicyReader(mock.NewMockRepository()))

	tests := []struct {
		name        string
		policy      string
		contributor model.OriginalAuthor
		expected    model.Author
	}{
		{
			name:        "overwrite ignores contributor",
			policy:      "default",
			contributor: model.NewContributor("foo bar", "baz@bar.com"),
			expected:    defaultAuthor,
		},
		{
			name:        "pass thru keeps contributor",
			policy:      "pass-thru",
			contributor: model.NewContributor("foo bar", "baz@bar.com"),
			expected:    model.Author{Name: "foo bar", Email: "baz@bar.com"},
		},
		{
			name:        "whitelisted contributor kept",
			policy:      "core-team",
			contributor: model.NewContributor("foo bar", "baz@bar.com"),
			expected:    model.Author{Name: "foo bar", Email: "baz@bar.com"},
		},
		{
			name:        "unknown contributor replaced",
			policy:      "core-team",
			contributor: model.NewContributor("John", "john@someemail.com"),
			expected:    defaultAuthor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			author, err := resolver.Resolve(ctx, tt.policy, tt.contributor)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, author)
		})
	}
}

func TestAuthorResolver_ResolveIdentity(t *testing.T) {
	resolver := NewAuthorResolver(WithAuthoringPolicyReader(mock.NewMockRepository()))

	author, err := resolver.ResolveIdentity(context.Background(), "core-team", "foo bar <baz@bar.com>")
	require.NoError(t, err)
	assert.Equal(t, model.Author{Name: "foo bar", Email: "baz@bar.com"}, author)
}

func TestAuthorResolver_Errors(t *testing.T) {
	ctx := context.Background()
	repo := mock.NewMockRepository()
	resolver := NewAuthorResolver(WithAuthoringPolicyReader(repo))
	contributor := model.NewContributor("foo", "foo@bar.com")

	t.Run("empty policy name", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, "", contributor)
		var validation errs.Validation
		assert.True(t, errors.As(err, &validation))
	})

	t.Run("nil contributor", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, "default", nil)
		var validation errs.Validation
		assert.True(t, errors.As(err, &validation))
	})

	t.Run("unknown policy", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, "missing", contributor)
		var notFound errs.NotFound
		assert.True(t, errors.As(err, &notFound))
	})

	t.Run("store failure", func(t *testing.T) {
		outage := errs.NewServiceUnavailable("kv unavailable")
		repo.SetErrorForPolicy("broken", outage)
		_, err := resolver.Resolve(ctx, "broken", contributor)
		assert.True(t, errors.Is(err, outage))
	})

	t.Run("invalid stored policy", func(t *testing.T) {
		repo.AddPolicy(&model.AuthoringPolicy{Name: "hand-edited", Config: model.AuthoringConfig{Function: "overwrite"}})
		_, err := resolver.Resolve(ctx, "hand-edited", contributor)
		var unexpected errs.Unexpected
		require.True(t, errors.As(err, &unexpected))
		assert.True(t, errors.Is(err, model.ErrMissingRequiredField))
	})

	t.Run("no store configured", func(t *testing.T) {
		_, err := NewAuthorResolver().Resolve(ctx, "default", contributor)
		var unavailable errs.ServiceUnavailable
		assert.True(t, errors.As(err, &unavailable))
	})
}

func TestAuthorResolver_ReevaluatesOnNewRevision(t *testing.T) {
	ctx := context.Background()
	repo := mock.NewMockRepository()
	resolver := NewAuthorResolver(WithAuthoringPolicyReader(repo))
	contributor := model.NewContributor("foo bar", "baz@bar.com")

	author, err := resolver.Resolve(ctx, "default", contributor)
	require.NoError(t, err)
	assert.Equal(t, defaultAuthor, author)

	passThru := "Copybara <no-reply@google.com>"
	_, _, err = repo.PutAuthoringPolicy(ctx, &model.AuthoringPolicy{
		Name:   "default",
		Config: model.AuthoringConfig{Function: model.FunctionPassThru, Default: &passThru},
	})
	require.NoError(t, err)

	author, err = resolver.Resolve(ctx, "default", contributor)
	require.NoError(t, err)
	assert.Equal(t, model.Author{Name: "foo bar", Email: "baz@bar.com"}, author)
}
