// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package service contains the authoring use cases.
package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/errors"
	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/log"
)

// AuthorResolver resolves contributors against named authoring policies
type AuthorResolver interface {
	// Resolve returns the author to record for contributor under the named policy
	Resolve(ctx context.Context, policyName string, contributor model.OriginalAuthor) (model.Author, error)
	// ResolveIdentity is Resolve for a contributor given as a "Name <email>" string
	ResolveIdentity(ctx context.Context, policyName, identity string) (model.Author, error)
}

// authorResolverOption defines a function type for setting options on the resolver
type authorResolverOption func(*authorResolver)

// WithAuthoringPolicyReader sets the policy reader
func WithAuthoringPolicyReader(reader port.AuthoringPolicyReader) authorResolverOption {
	return func(r *authorResolver) {
		r.policyReader = reader
	}
}

// evaluatedPolicy is an Authoring built from a given policy revision
type evaluatedPolicy struct {
	revision  uint64
	authoring *model.Authoring
}

// authorResolver evaluates each policy revision once and shares the immutable
// result between requests
type authorResolver struct {
	policyReader port.AuthoringPolicyReader
	evaluated    sync.Map // policy name -> evaluatedPolicy
}

// NewAuthorResolver creates a new resolver using the option pattern
func NewAuthorResolver(opts ...authorResolverOption) AuthorResolver {
	r := &authorResolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the author to record for contributor under the named policy
func (r *authorResolver) Resolve(ctx context.Context, policyName string, contributor model.OriginalAuthor) (model.Author, error) {
	if policyName == "" {
		return model.Author{}, errors.NewValidation("policy name is required")
	}
	if contributor == nil {
		return model.Author{}, errors.NewValidation("contributor is required")
	}

	ctx = log.AppendCtx(ctx, slog.String("policy", policyName))

	authoring, err := r.authoring(ctx, policyName)
	if err != nil {
		return model.Author{}, err
	}

	author := authoring.Resolve(contributor)

	slog.DebugContext(ctx, "author resolved",
		"mode", authoring.Mode().String(),
		"contributor", log.Identity(contributor.Name(), contributor.Email()),
		"author", log.Identity(author.Name, author.Email),
	)

	return author, nil
}

// ResolveIdentity resolves a contributor given in "Name <email>" form
func (r *authorResolver) ResolveIdentity(ctx context.Context, policyName, identity string) (model.Author, error) {
	return r.Resolve(ctx, policyName, model.ParseContributor(identity))
}

// authoring returns the evaluated policy, evaluating it again only when the
// stored revision changed
func (r *authorResolver) authoring(ctx context.Context, policyName string) (*model.Authoring, error) {
	if r.policyReader == nil {
		return nil, errors.NewServiceUnavailable("authoring policy store is not configured")
	}

	policy, revision, err := r.policyReader.GetAuthoringPolicy(ctx, policyName)
	if err != nil {
		slog.ErrorContext(ctx, "failed to get authoring policy", "error", err)
		return nil, err
	}

	if cached, ok := r.evaluated.Load(policyName); ok {
		if entry := cached.(evaluatedPolicy); entry.revision == revision {
			return entry.authoring, nil
		}
	}

	authoring, err := policy.Authoring()
	if err != nil {
		// stored policies are validated on write; reaching this means the store was edited by hand
		slog.ErrorContext(ctx, "stored authoring policy is invalid",
			"error", err,
			"revision", revision,
			log.PriorityCritical(),
		)
		return nil, errors.NewUnexpected("stored authoring policy is invalid", err)
	}

	r.evaluated.Store(policyName, evaluatedPolicy{revision: revision, authoring: authoring})

	slog.DebugContext(ctx, "authoring policy evaluated",
		"revision", revision,
		"authoring", authoring.String(),
	)

	return authoring, nil
}
