// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package service wires the authoring API dependencies from the environment.
package service

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/infrastructure/config"
	infrastructure "github.com/linuxfoundation/lfx-v2-authoring-service/internal/infrastructure/mock"
	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/infrastructure/nats"
	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/constants"
	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/httpclient"
)

var (
	natsClient    *nats.NATSClient
	natsStorage   port.AuthoringPolicyReaderWriter
	natsMessaging port.MessagePublisher

	natsDoOnce sync.Once

	mockRepo     *infrastructure.MockRepository
	mockDoOnce   sync.Once
	mockMessages *infrastructure.MockMessagePublisher
)

// NATSConfigFromEnv reads the NATS connection settings
func NATSConfigFromEnv() (nats.Config, error) {
	natsURL := os.Getenv(constants.EnvNATSURL)
	if natsURL == "" {
		natsURL = "nats://localhost:4222"
	}

	natsTimeout := os.Getenv(constants.EnvNATSTimeout)
	if natsTimeout == "" {
		natsTimeout = "10s"
	}
	natsTimeoutDuration, err := time.ParseDuration(natsTimeout)
	if err != nil {
		return nats.Config{}, err
	}

	natsMaxReconnect := os.Getenv(constants.EnvNATSMaxReconnect)
	if natsMaxReconnect == "" {
		natsMaxReconnect = "3"
	}
	natsMaxReconnectInt, err := strconv.Atoi(natsMaxReconnect)
	if err != nil {
		return nats.Config{}, err
	}

	natsReconnectWait := os.Getenv(constants.EnvNATSReconnectWait)
	if natsReconnectWait == "" {
		natsReconnectWait = "2s"
	}
	natsReconnectWaitDuration, err := time.ParseDuration(natsReconnectWait)
	if err != nil {
		return nats.Config{}, err
	}

	return nats.Config{
		URL:           natsURL,
		Timeout:       natsTimeoutDuration,
		MaxReconnect:  natsMaxReconnectInt,
		ReconnectWait: natsReconnectWaitDuration,
	}, nil
}

func natsInit(ctx context.Context) {
	natsDoOnce.Do(func() {
		cfg, err := NATSConfigFromEnv()
		if err != nil {
			log.Fatalf("invalid NATS configuration: %v", err)
		}

		client, errNewClient := nats.NewClient(ctx, cfg)
		if errNewClient != nil {
			log.Fatalf("failed to create NATS client: %v", errNewClient)
		}
		natsClient = client
		natsStorage = nats.NewStorage(client)
		natsMessaging = nats.NewMessagePublisher(client)
	})
}

func mockInit() {
	mockDoOnce.Do(func() {
		mockRepo = infrastructure.NewMockRepository()
		mockMessages = infrastructure.NewMockMessagePublisher()
	})
}

// repositorySource returns REPOSITORY_SOURCE, defaulting to nats
func repositorySource() string {
	repoSource := os.Getenv(constants.EnvRepositorySource)
	if repoSource == "" {
		repoSource = constants.RepositorySourceNATS
	}
	return repoSource
}

// GetNATSClient returns the shared NATS client, connecting on first use
func GetNATSClient(ctx context.Context) *nats.NATSClient {
	natsInit(ctx)
	return natsClient
}

// AuthoringPolicyReaderWriter initializes the policy store based on the repository source
func AuthoringPolicyReaderWriter(ctx context.Context) port.AuthoringPolicyReaderWriter {
	var store port.AuthoringPolicyReaderWriter

	switch repoSource := repositorySource(); repoSource {
	case constants.RepositorySourceMock:
		slog.InfoContext(ctx, "initializing mock authoring policy store")
		mockInit()
		store = mockRepo
	case constants.RepositorySourceNATS:
		slog.InfoContext(ctx, "initializing NATS authoring policy store")
		natsInit(ctx)
		store = natsStorage
	default:
		log.Fatalf("unsupported authoring policy store implementation: %s", repoSource)
	}

	return store
}

// MessagePublisher initializes the policy message publisher based on the repository source
func MessagePublisher(ctx context.Context) port.MessagePublisher {
	var publisher port.MessagePublisher

	switch repoSource := repositorySource(); repoSource {
	case constants.RepositorySourceMock:
		slog.InfoContext(ctx, "initializing mock message publisher")
		mockInit()
		publisher = mockMessages
	case constants.RepositorySourceNATS:
		slog.InfoContext(ctx, "initializing NATS message publisher")
		natsInit(ctx)
		publisher = natsMessaging
	default:
		log.Fatalf("unsupported message publisher implementation: %s", repoSource)
	}

	return publisher
}

// AuthoringPolicies loads the configured policy definitions.
// AUTHORING_CONFIG_FILE wins over AUTHORING_CONFIG_URL; with neither set
// there is nothing to sync and nil is returned.
func AuthoringPolicies(ctx context.Context) ([]*model.AuthoringPolicy, error) {
	if path := os.Getenv(constants.EnvAuthoringConfigFile); path != "" {
		slog.InfoContext(ctx, "loading authoring configuration from file", "path", path)
		return config.LoadFile(path)
	}
	if url := os.Getenv(constants.EnvAuthoringConfigURL); url != "" {
		client := config.NewFetchClient(httpclient.DefaultConfig(), os.Getenv(constants.EnvAuthoringConfigToken))
		return config.Fetch(ctx, client, url)
	}
	slog.WarnContext(ctx, "no authoring configuration source set, serving stored policies only")
	return nil, nil
}
