// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"

	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/infrastructure/nats"
	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/errors"
)

// errorStatus maps a service error to its HTTP status
func errorStatus(err error) int {
	var (
		validation  errors.Validation
		notFound    errors.NotFound
		conflict    errors.Conflict
		unavailable errors.ServiceUnavailable
	)
	switch {
	case stderrors.As(err, &validation):
		return http.StatusBadRequest
	case stderrors.As(err, &notFound):
		return http.StatusNotFound
	case stderrors.As(err, &conflict):
		return http.StatusConflict
	case stderrors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := errorStatus(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "request failed", "error", err)
	} else {
		slog.WarnContext(ctx, "request rejected", "error", err, "status", status)
	}
	writeJSON(ctx, w, status, nats.ResolveReply{Error: err.Error(), Code: nats.ReplyCode(err)})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}
