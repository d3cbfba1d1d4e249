// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package nats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/constants"
	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/errors"
)

// ResolveRequester asks a running authoring service to resolve contributors
type ResolveRequester struct {
	client *NATSClient
}

// Resolve sends a resolve request and waits for the reply
func (m *ResolveRequester) Resolve(ctx context.Context, req ResolveRequest) (model.Author, error) {
	data, err := EncodeResolveRequest(req)
	if err != nil {
		return model.Author{}, errors.NewUnexpected("failed to encode resolve request", err)
	}

	if _, ok := ctx.Deadline(); !ok && m.client.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.client.timeout)
		defer cancel()
	}

	msg, err := m.client.conn.RequestWithContext(ctx, constants.AuthoringResolveSubject, data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to request author resolution",
			"error", err,
			"policy", req.Policy)
		return model.Author{}, errors.NewServiceUnavailable(fmt.Sprintf("authoring-api unavailable: %v", err))
	}

	reply, err := DecodeResolveReply(msg.Data)
	if err != nil {
		return model.Author{}, errors.NewUnexpected("failed to decode resolve reply", err)
	}
	if reply.Error != "" {
		slog.WarnContext(ctx, "resolve responded with an error",
			"policy", req.Policy,
			"error", reply.Error,
			"code", reply.Code)
		return model.Author{}, replyError(reply)
	}

	return model.Author{Name: reply.Name, Email: reply.Email}, nil
}

// NewResolveRequester creates a requester over an established NATS client
func NewResolveRequester(client *NATSClient) *ResolveRequester {
	return &ResolveRequester{
		client: client,
	}
}
