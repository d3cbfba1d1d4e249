// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/constants"
	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/errors"
)

// AuthoringSyncService writes configured policies to the policy store and
// announces every change
type AuthoringSyncService struct {
	writer    port.AuthoringPolicyWriter
	publisher port.MessagePublisher
	now       func() time.Time
}

// NewAuthoringSyncService creates a new sync service
func NewAuthoringSyncService(writer port.AuthoringPolicyWriter, publisher port.MessagePublisher) *AuthoringSyncService {
	return &AuthoringSyncService{
		writer:    writer,
		publisher: publisher,
		now:       time.Now,
	}
}

// Sync stores policies. Every policy is validated first, so a single invalid
// policy leaves the store untouched.
// Publishing failures are logged and do not fail the sync.
func (s *AuthoringSyncService) Sync(ctx context.Context, policies []*model.AuthoringPolicy) error {
	seen := make(map[string]struct{}, len(policies))
	for _, policy := range policies {
		if err := policy.Validate(); err != nil {
			slog.ErrorContext(ctx, "authoring policy rejected", "error", err)
			return err
		}
		if _, dup := seen[policy.Name]; dup {
			return errors.NewConflict(fmt.Sprintf("authoring policy '%s' is defined more than once", policy.Name))
		}
		seen[policy.Name] = struct{}{}
	}

	for _, policy := range policies {
		policy.UpdatedAt = s.now().UTC()

		revision, created, err := s.writer.PutAuthoringPolicy(ctx, policy)
		if err != nil {
			slog.ErrorContext(ctx, "failed to store authoring policy",
				"error", err,
				"policy", policy.Name,
			)
			return err
		}

		action := model.ActionUpdated
		if created {
			action = model.ActionCreated
		}

		slog.InfoContext(ctx, "authoring policy stored",
			"policy", policy.Name,
			"function", policy.Config.Function,
			"revision", revision,
			"action", action,
		)

		if s.publisher == nil {
			continue
		}
		message := model.NewPolicyMessage(ctx, action, policy)
		if err := s.publisher.Policy(ctx, constants.AuthoringPolicyUpdatedSubject, message); err != nil {
			slog.WarnContext(ctx, "failed to publish authoring policy message",
				"error", err,
				"policy", policy.Name,
			)
		}
	}

	slog.InfoContext(ctx, "authoring policies synced", "count", len(policies))
	return nil
}
