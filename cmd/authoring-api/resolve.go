// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/linuxfoundation/lfx-v2-authoring-service/cmd/authoring-api/service"
	natsinfra "github.com/linuxfoundation/lfx-v2-authoring-service/internal/infrastructure/nats"
	internalService "github.com/linuxfoundation/lfx-v2-authoring-service/internal/service"
	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/constants"
)

// resolveTimeout bounds the handling of a single resolve request
const resolveTimeout = 10 * time.Second

// handleResolve subscribes the resolve subject and drains the subscription once
// ctx is done
func handleResolve(ctx context.Context, resolver internalService.AuthorResolver) error {
	natsClient := service.GetNATSClient(ctx)
	handler := natsinfra.NewResolveHandler(resolver, resolveTimeout)

	sub, err := natsClient.QueueSubscribe(
		constants.AuthoringResolveSubject,
		constants.AuthoringAPIQueue,
		func(msg *nats.Msg) {
			select {
			case <-ctx.Done():
				slog.InfoContext(ctx, "rejecting resolve request - service shutting down",
					"subject", msg.Subject)
				return
			default:
			}
			handler.HandleMessage(msg)
		},
	)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", constants.AuthoringResolveSubject, err)
	}
	slog.InfoContext(ctx, "subscribed to resolve requests",
		"subject", constants.AuthoringResolveSubject,
		"queue", constants.AuthoringAPIQueue)

	<-ctx.Done()
	slog.InfoContext(ctx, "shutting down resolve subscription")
	if err := sub.Drain(); err != nil {
		slog.ErrorContext(ctx, "failed to drain resolve subscription", "error", err)
	}
	return nil
}
