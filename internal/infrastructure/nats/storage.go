// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package nats

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"

	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/constants"
	errs "github.com/linuxfoundation/lfx-v2-authoring-service/pkg/errors"
	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/log"

	"github.com/nats-io/nats.go/jetstream"
)

type storage struct {
	client *NATSClient
}

// GetAuthoringPolicy retrieves a policy by name along with its revision
func (s *storage) GetAuthoringPolicy(ctx context.Context, name string) (*model.AuthoringPolicy, uint64, error) {
	slog.DebugContext(ctx, "nats storage: getting authoring policy", "policy", name)

	policy := &model.AuthoringPolicy{}
	rev, err := s.get(ctx, constants.KVBucketNameAuthoringPolicies, name, policy)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			slog.DebugContext(ctx, "authoring policy not found", "policy", name, "error", err)
			return nil, 0, errs.NewNotFound("authoring policy not found")
		}
		var validation errs.Validation
		var unavailable errs.ServiceUnavailable
		if errors.As(err, &validation) || errors.As(err, &unavailable) {
			return nil, 0, err
		}
		var corrupt errs.Unexpected
		if errors.As(err, &corrupt) {
			slog.ErrorContext(ctx, "stored authoring policy is corrupt",
				"error", err,
				"policy", name,
				log.PriorityCritical(),
			)
			return nil, 0, err
		}
		slog.ErrorContext(ctx, "failed to get authoring policy", "error", err, "policy", name)
		return nil, 0, errs.NewServiceUnavailable("failed to get authoring policy", err)
	}

	slog.DebugContext(ctx, "nats storage: authoring policy retrieved",
		"policy", name,
		"function", policy.Config.Function,
		"revision", rev)

	return policy, rev, nil
}

// ListAuthoringPolicies returns every stored policy sorted by name
func (s *storage) ListAuthoringPolicies(ctx context.Context) ([]*model.AuthoringPolicy, error) {
	kv, err := s.bucket(constants.KVBucketNameAuthoringPolicies)
	if err != nil {
		return nil, err
	}

	lister, err := kv.ListKeys(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list authoring policy keys", "error", err)
		return nil, errs.NewServiceUnavailable("failed to list authoring policies", err)
	}
	defer func() {
		_ = lister.Stop()
	}()

	var names []string
	for key := range lister.Keys() {
		names = append(names, key)
	}
	slices.Sort(names)

	policies := make([]*model.AuthoringPolicy, 0, len(names))
	for _, name := range names {
		policy, _, errGet := s.GetAuthoringPolicy(ctx, name)
		if errGet != nil {
			var notFound errs.NotFound
			if errors.As(errGet, &notFound) {
				// deleted between listing and reading
				continue
			}
			return nil, errGet
		}
		policies = append(policies, policy)
	}

	slog.DebugContext(ctx, "nats storage: authoring policies listed", "count", len(policies))
	return policies, nil
}

// PutAuthoringPolicy stores a policy and reports whether it did not exist before
func (s *storage) PutAuthoringPolicy(ctx context.Context, policy *model.AuthoringPolicy) (uint64, bool, error) {
	if policy == nil || policy.Name == "" {
		return 0, false, errs.NewValidation("policy name cannot be empty")
	}

	kv, err := s.bucket(constants.KVBucketNameAuthoringPolicies)
	if err != nil {
		return 0, false, err
	}

	data, err := json.Marshal(policy)
	if err != nil {
		slog.ErrorContext(ctx, "failed to marshal authoring policy", "error", err, "policy", policy.Name)
		return 0, false, errs.NewUnexpected("failed to marshal authoring policy", err)
	}

	created := true
	rev, err := kv.Create(ctx, policy.Name, data)
	if errors.Is(err, jetstream.ErrKeyExists) {
		created = false
		rev, err = kv.Put(ctx, policy.Name, data)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to store authoring policy", "error", err, "policy", policy.Name)
		return 0, false, errs.NewServiceUnavailable("failed to store authoring policy", err)
	}

	slog.DebugContext(ctx, "nats storage: authoring policy stored",
		"policy", policy.Name,
		"created", created,
		"revision", rev)

	return rev, created, nil
}

func (s *storage) bucket(name string) (jetstream.KeyValue, error) {
	kv, exists := s.client.kvStore[name]
	if !exists || kv == nil {
		return nil, errs.NewServiceUnavailable("KV bucket not available")
	}
	return kv, nil
}

// get retrieves a JSON document from a bucket and returns its revision
func (s *storage) get(ctx context.Context, bucket, key string, into any) (uint64, error) {
	if key == "" {
		return 0, errs.NewValidation("key cannot be empty")
	}

	kv, err := s.bucket(bucket)
	if err != nil {
		return 0, err
	}

	data, errGet := kv.Get(ctx, key)
	if errGet != nil {
		return 0, errGet
	}

	if errUnmarshal := json.Unmarshal(data.Value(), into); errUnmarshal != nil {
		return 0, errs.NewUnexpected("stored document is not valid JSON", errUnmarshal)
	}

	return data.Revision(), nil
}

// NewStorage creates a new NATS KV backed policy store
func NewStorage(client *NATSClient) port.AuthoringPolicyReaderWriter {
	return &storage{
		client: client,
	}
}
