// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/domain/model"
	errs "github.com/linuxfoundation/lfx-v2-authoring-service/pkg/errors"
	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/httpclient"
)

const validConfig = `
policies:
  default:
    function: overwrite
    default: "Copybara <no-reply@google.com>"
  core-team:
    function: whitelisted
    default: "Copybara <no-reply@google.com>"
    whitelist:
      - baz@bar.com
      - foo@bar.com
  mirror:
    function: pass_thru
    default: "Copybara <no-reply@google.com>"
`

func TestParse(t *testing.T) {
	policies, err := Parse([]byte(validConfig))
	require.NoError(t, err)
	require.Len(t, policies, 3)

	assert.Equal(t, "core-team", policies[0].Name)
	assert.Equal(t, "default", policies[1].Name)
	assert.Equal(t, "mirror", policies[2].Name)

	authoring, err := policies[0].Authoring()
	require.NoError(t, err)
	assert.Equal(t, model.ModeWhitelist, authoring.Mode())
	assert.Equal(t, []string{"baz@bar.com", "foo@bar.com"}, authoring.Whitelist())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		sentinel error
		contains string
	}{
		{
			name:     "empty",
			data:     "",
			contains: "authoring configuration is empty",
		},
		{
			name:     "no policies",
			data:     "policies: {}\n",
			contains: "defines no policies",
		},
		{
			name:     "unknown field",
			data:     "policies:\n  default:\n    function: overwrite\n    default: \"a <a@b.com>\"\n    owner: me\n",
			contains: "owner",
		},
		{
			name:     "duplicate policy name",
			data:     "policies:\n  a:\n    function: overwrite\n    default: \"a <a@b.com>\"\n  a:\n    function: pass_thru\n    default: \"a <a@b.com>\"\n",
			contains: "already defined",
		},
		{
			name:     "malformed default",
			data:     "policies:\n  default:\n    function: overwrite\n    default: \"nobody\"\n",
			sentinel: model.ErrMalformedIdentity,
		},
		{
			name:     "empty whitelist",
			data:     "policies:\n  team:\n    function: whitelisted\n    default: \"a <a@b.com>\"\n    whitelist: []\n",
			sentinel: model.ErrEmptyWhitelist,
		},
		{
			name:     "unknown function",
			data:     "policies:\n  team:\n    function: anyone\n    default: \"a <a@b.com>\"\n",
			sentinel: model.ErrUnknownFunction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policies, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Nil(t, policies)

			var validation errs.Validation
			assert.True(t, errors.As(err, &validation))
			if tt.sentinel != nil {
				assert.True(t, errors.Is(err, tt.sentinel))
			}
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}

func TestParse_ReportsEveryInvalidPolicy(t *testing.T) {
	data := "policies:\n  a:\n    function: overwrite\n  b:\n    function: whitelisted\n    default: \"a <a@b.com>\"\n    whitelist: [x, x]\n"

	_, err := Parse([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 invalid policies")
	assert.True(t, errors.Is(err, model.ErrMissingRequiredField))
	assert.True(t, errors.Is(err, model.ErrDuplicateWhitelistEntry))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authoring.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validConfig), 0o600))

	policies, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, policies, 3)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	var notFound errs.NotFound
	assert.True(t, errors.As(err, &notFound))
}

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/authoring.yaml" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(validConfig))
	}))
	defer server.Close()

	client := httpclient.NewClient(httpclient.Config{Timeout: time.Second, RetryDelay: time.Millisecond, MaxDelay: time.Millisecond})

	policies, err := Fetch(context.Background(), client, server.URL+"/authoring.yaml")
	require.NoError(t, err)
	assert.Len(t, policies, 3)

	_, err = Fetch(context.Background(), client, server.URL+"/missing.yaml")
	var unavailable errs.ServiceUnavailable
	assert.True(t, errors.As(err, &unavailable))
}

func TestFetch_WithToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(validConfig))
	}))
	defer server.Close()

	cfg := httpclient.Config{Timeout: time.Second, RetryDelay: time.Millisecond, MaxDelay: time.Millisecond}

	policies, err := Fetch(context.Background(), NewFetchClient(cfg, "s3cret"), server.URL)
	require.NoError(t, err)
	assert.Len(t, policies, 3)

	_, err = Fetch(context.Background(), NewFetchClient(cfg, ""), server.URL)
	assert.Error(t, err)
}
