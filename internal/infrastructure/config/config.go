// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package config loads authoring policy definitions from YAML.
package config

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/errors"
	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/httpclient"
)

// document is the top level of a policy file
type document struct {
	Policies map[string]model.AuthoringConfig `yaml:"policies"`
}

// Parse decodes a policy file and validates every policy in it.
// Policies are returned sorted by name. Every invalid policy is reported, not
// only the first one.
func Parse(data []byte) ([]*model.AuthoringPolicy, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var doc document
	if err := decoder.Decode(&doc); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.NewValidation("authoring configuration is empty")
		}
		return nil, errors.NewValidation("failed to parse authoring configuration", err)
	}
	if len(doc.Policies) == 0 {
		return nil, errors.NewValidation("authoring configuration defines no policies")
	}

	policies := make([]*model.AuthoringPolicy, 0, len(doc.Policies))
	for name, cfg := range doc.Policies {
		policies = append(policies, &model.AuthoringPolicy{Name: name, Config: cfg})
	}
	slices.SortFunc(policies, func(a, b *model.AuthoringPolicy) int {
		return strings.Compare(a.Name, b.Name)
	})

	var invalid []error
	for _, policy := range policies {
		if err := policy.Validate(); err != nil {
			invalid = append(invalid, err)
		}
	}
	if len(invalid) > 0 {
		return nil, errors.NewValidation(
			fmt.Sprintf("authoring configuration has %d invalid policies", len(invalid)),
			invalid...,
		)
	}

	return policies, nil
}

// LoadFile reads and parses a policy file from disk
func LoadFile(path string) ([]*model.AuthoringPolicy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewNotFound(fmt.Sprintf("failed to read authoring configuration %s", path), err)
	}
	return Parse(data)
}

// Fetch downloads and parses a policy file
func Fetch(ctx context.Context, client *httpclient.Client, url string) ([]*model.AuthoringPolicy, error) {
	slog.InfoContext(ctx, "fetching authoring configuration", "url", url)

	resp, err := client.Get(ctx, url, map[string]string{"Accept": "application/yaml"})
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch authoring configuration", "error", err, "url", url)
		return nil, errors.NewServiceUnavailable("failed to fetch authoring configuration", err)
	}

	return Parse(resp.Body)
}
