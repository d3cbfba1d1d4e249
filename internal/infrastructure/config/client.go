// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package config

import (
	"log/slog"
	"net/http"

	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/httpclient"
)

// bearerTokenRoundTripper authorizes configuration downloads from private hosts
type bearerTokenRoundTripper struct {
	token string
}

// RoundTrip sets the Authorization header unless the request already carries one
func (rt *bearerTokenRoundTripper) RoundTrip(req *http.Request, next func(*http.Request) (*http.Response, error)) (*http.Response, error) {
	if req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "Bearer "+rt.token)
		slog.DebugContext(req.Context(), "RoundTripper: using configuration token",
			"host", req.Host, "path", req.URL.Path)
	}
	return next(req)
}

// NewFetchClient creates the HTTP client used by Fetch. An empty token sends
// anonymous requests.
func NewFetchClient(cfg httpclient.Config, token string) *httpclient.Client {
	client := httpclient.NewClient(cfg)
	if token != "" {
		client.AddRoundTripper(&bearerTokenRoundTripper{token: token})
	}
	return client
}
