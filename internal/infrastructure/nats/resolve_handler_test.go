// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package nats

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/infrastructure/mock"
	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/service"
)

func newTestHandler() *ResolveHandler {
	resolver := service.NewAuthorResolver(service.WithAuthoringPolicyReader(mock.NewMockRepository()))
	return NewResolveHandler(resolver, 0)
}

func TestResolveHandler_Handle(t *testing.T) {
	handler := newTestHandler()
	ctx := context.Background()

	tests := []struct {
		name     string
		request  string
		expected ResolveReply
	}{
		{
			name:     "overwrite",
			request:  `{"policy":"default","name":"foo bar","email":"baz@bar.com"}`,
			expected: ResolveReply{Name: "Copybara", Email: "no-reply@google.com"},
		},
		{
			name:     "whitelisted contributor",
			request:  `{"policy":"core-team","name":"foo bar","email":"baz@bar.com"}`,
			expected: ResolveReply{Name: "foo bar", Email: "baz@bar.com"},
		},
		{
			name:     "identity string",
			request:  `{"policy":"pass-thru","identity":"John <john@someemail.com>"}`,
			expected: ResolveReply{Name: "John", Email: "john@someemail.com"},
		},
		{
			name:     "unknown policy",
			request:  `{"policy":"missing","name":"foo","email":"foo@bar.com"}`,
			expected: ResolveReply{Error: "authoring policy not found", Code: ReplyCodeNotFound},
		},
		{
			name:     "missing policy name",
			request:  `{"name":"foo","email":"foo@bar.com"}`,
			expected: ResolveReply{Error: "policy name is required", Code: ReplyCodeValidation},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := handler.Handle(ctx, []byte(tt.request))

			var reply ResolveReply
			require.NoError(t, json.Unmarshal(data, &reply))
			assert.Equal(t, tt.expected, reply)
		})
	}
}

func TestResolveHandler_HandleMsgpack(t *testing.T) {
	handler := newTestHandler()

	request, err := EncodeResolveRequest(ResolveRequest{Policy: "core-team", Name: "John", Email: "john@someemail.com"})
	require.NoError(t, err)

	reply, err := DecodeResolveReply(handler.Handle(context.Background(), request))
	require.NoError(t, err)
	assert.Equal(t, ResolveReply{Name: "Copybara", Email: "no-reply@google.com"}, reply)
}

func TestResolveHandler_HandleGarbage(t *testing.T) {
	handler := newTestHandler()

	reply, err := DecodeResolveReply(handler.Handle(context.Background(), []byte(`{"policy":`)))
	require.NoError(t, err)
	assert.Contains(t, reply.Error, "invalid json resolve request")
	assert.Equal(t, ReplyCodeValidation, reply.Code)
}
