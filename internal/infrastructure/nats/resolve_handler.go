// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package nats

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/service"
	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/constants"
	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/log"
)

// defaultResolveTimeout bounds a single resolve when none is configured
const defaultResolveTimeout = 5 * time.Second

// ResolveHandler answers resolve requests using an AuthorResolver
type ResolveHandler struct {
	resolver service.AuthorResolver
	timeout  time.Duration
}

// NewResolveHandler creates a handler. A zero timeout uses the default.
func NewResolveHandler(resolver service.AuthorResolver, timeout time.Duration) *ResolveHandler {
	if timeout <= 0 {
		timeout = defaultResolveTimeout
	}
	return &ResolveHandler{
		resolver: resolver,
		timeout:  timeout,
	}
}

// HandleMessage resolves msg and responds on its reply subject
func (h *ResolveHandler) HandleMessage(msg *nats.Msg) {
	requestID := msg.Header.Get(constants.RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	// a fresh context per message, not derived from the shutdown context
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()
	ctx = context.WithValue(ctx, constants.RequestIDContextKey, requestID)
	ctx = log.AppendCtx(ctx, slog.String("request_id", requestID))

	if msg.Reply == "" {
		slog.WarnContext(ctx, "resolve request without reply subject dropped", "subject", msg.Subject)
		return
	}

	data := h.Handle(ctx, msg.Data)
	if err := msg.Respond(data); err != nil {
		slog.ErrorContext(ctx, "failed to respond to resolve request", "error", err)
	}
}

// Handle decodes a request, resolves it and returns the encoded reply.
// Every failure is reported inside the reply.
func (h *ResolveHandler) Handle(ctx context.Context, data []byte) []byte {
	req, format, err := decodeResolveRequest(data)
	if err != nil {
		slog.WarnContext(ctx, "failed to decode resolve request", "error", err)
		return h.reply(ctx, ResolveReply{Error: err.Error(), Code: ReplyCodeValidation}, format)
	}

	var author model.Author
	if req.Identity != "" {
		author, err = h.resolver.ResolveIdentity(ctx, req.Policy, req.Identity)
	} else {
		author, err = h.resolver.Resolve(ctx, req.Policy, model.NewContributor(req.Name, req.Email))
	}
	if err != nil {
		slog.WarnContext(ctx, "failed to resolve author",
			"error", err,
			"policy", req.Policy,
		)
		return h.reply(ctx, ResolveReply{Error: err.Error(), Code: ReplyCode(err)}, format)
	}

	return h.reply(ctx, ResolveReply{Name: author.Name, Email: author.Email}, format)
}

func (h *ResolveHandler) reply(ctx context.Context, reply ResolveReply, format wireFormat) []byte {
	data, err := encodeResolveReply(reply, format)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode resolve reply", "error", err, "format", format.String())
		return []byte(`{"error":"failed to encode reply","code":"unexpected"}`)
	}
	return data
}
