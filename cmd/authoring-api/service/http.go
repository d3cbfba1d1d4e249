// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/infrastructure/nats"
	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/middleware"
	internalService "github.com/linuxfoundation/lfx-v2-authoring-service/internal/service"
	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/constants"
	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/errors"
)

// maxResolveBody bounds the JSON body accepted by POST /resolve
const maxResolveBody = 64 << 10

// Handler serves the health checks, the stored policies and author resolution over HTTP
type Handler struct {
	checker  port.ReadinessChecker
	policies port.AuthoringPolicyReader
	resolver internalService.AuthorResolver
}

// NewHandler creates the HTTP handler
func NewHandler(checker port.ReadinessChecker, policies port.AuthoringPolicyReader, resolver internalService.AuthorResolver) *Handler {
	return &Handler{
		checker:  checker,
		policies: policies,
		resolver: resolver,
	}
}

// RegisterRoutes registers the authoring API routes with a gorilla/mux router
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc(constants.LivenessPath, h.Livez).Methods(http.MethodGet)
	r.HandleFunc(constants.ReadinessPath, h.Readyz).Methods(http.MethodGet)
	r.HandleFunc("/policies", h.ListPolicies).Methods(http.MethodGet)
	r.HandleFunc("/policies/{name}", h.GetPolicy).Methods(http.MethodGet)
	r.HandleFunc("/resolve", h.Resolve).Methods(http.MethodPost)
}

// NewRouter builds a router serving h with request IDs attached
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestIDMiddleware())
	h.RegisterRoutes(r)
	return r
}

// Livez handles GET /livez
func (h *Handler) Livez(w http.ResponseWriter, r *http.Request) {
	slog.DebugContext(r.Context(), "liveness check completed successfully")
	_, _ = w.Write([]byte("OK"))
}

// Readyz handles GET /readyz
func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	if err := h.checker.IsReady(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "service not ready", "error", err)
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	_, _ = w.Write([]byte("OK\n"))
}

// policyResponse is a stored policy together with its revision
type policyResponse struct {
	*model.AuthoringPolicy
	Revision uint64 `json:"revision"`
}

// ListPolicies handles GET /policies
func (h *Handler) ListPolicies(w http.ResponseWriter, r *http.Request) {
	policies, err := h.policies.ListAuthoringPolicies(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	if policies == nil {
		policies = []*model.AuthoringPolicy{}
	}
	writeJSON(r.Context(), w, http.StatusOK, policies)
}

// GetPolicy handles GET /policies/{name}
func (h *Handler) GetPolicy(w http.ResponseWriter, r *http.Request) {
	policy, revision, err := h.policies.GetAuthoringPolicy(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, policyResponse{AuthoringPolicy: policy, Revision: revision})
}

// Resolve handles POST /resolve. The body and reply use the NATS resolve shapes.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req nats.ResolveRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxResolveBody))
	if err := decoder.Decode(&req); err != nil {
		writeError(r.Context(), w, errors.NewValidation("invalid json resolve request", err))
		return
	}

	var (
		author model.Author
		err    error
	)
	if req.Identity != "" {
		author, err = h.resolver.ResolveIdentity(r.Context(), req.Policy, req.Identity)
	} else {
		author, err = h.resolver.Resolve(r.Context(), req.Policy, model.NewContributor(req.Name, req.Email))
	}
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, nats.ResolveReply{Name: author.Name, Email: author.Email})
}
