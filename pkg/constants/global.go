// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package constants

// Service constants
const (
	// ServiceName is the name of this service
	ServiceName = "authoring"
)

// HTTP constants
const (
	// RequestIDHeader is the header name for request ID
	RequestIDHeader = "X-Request-Id"

	// DefaultPort is the port the health server listens on when PORT is unset
	DefaultPort = "8080"

	// LivenessPath and ReadinessPath are the health check endpoints
	LivenessPath  = "/livez"
	ReadinessPath = "/readyz"
)

// Environment variables
const (
	// EnvNATSURL is the environment variable for NATS server URL
	EnvNATSURL = "NATS_URL"
	// EnvNATSTimeout is the environment variable for the NATS connection timeout
	EnvNATSTimeout = "NATS_TIMEOUT"
	// EnvNATSMaxReconnect is the environment variable for the NATS reconnect attempts
	EnvNATSMaxReconnect = "NATS_MAX_RECONNECT"
	// EnvNATSReconnectWait is the environment variable for the wait between NATS reconnects
	EnvNATSReconnectWait = "NATS_RECONNECT_WAIT"

	// EnvRepositorySource selects the policy store implementation (nats or mock)
	EnvRepositorySource = "REPOSITORY_SOURCE"

	// EnvAuthoringConfigFile is the path of the YAML policy file
	EnvAuthoringConfigFile = "AUTHORING_CONFIG_FILE"
	// EnvAuthoringConfigURL is the URL of a YAML policy file, used when no file path is set
	EnvAuthoringConfigURL = "AUTHORING_CONFIG_URL"
	// EnvAuthoringConfigToken is the bearer token sent when fetching AUTHORING_CONFIG_URL
	EnvAuthoringConfigToken = "AUTHORING_CONFIG_TOKEN"

	// EnvPort is the environment variable for the health server port
	EnvPort = "PORT"
)

// Repository sources
const (
	RepositorySourceNATS = "nats"
	RepositorySourceMock = "mock"
)
