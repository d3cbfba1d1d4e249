// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// The authoring API resolves commit authors against named authoring policies
// over NATS request/reply and HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"

	"github.com/linuxfoundation/lfx-v2-authoring-service/cmd/authoring-api/service"
	internalService "github.com/linuxfoundation/lfx-v2-authoring-service/internal/service"
	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/constants"
	logging "github.com/linuxfoundation/lfx-v2-authoring-service/pkg/log"
	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/utils"
)

// gracefulShutdownSeconds should be higher than the NATS client request timeout
// and lower than the pod or container's graceful shutdown timeout
const gracefulShutdownSeconds = 25

func init() {
	logging.InitStructureLogConfig()
}

func main() {
	defaultPort := os.Getenv(constants.EnvPort)
	if defaultPort == "" {
		defaultPort = constants.DefaultPort
	}
	var (
		port = flag.String("p", defaultPort, "listen port")
		bind = flag.String("bind", "*", "interface to bind on")
	)
	flag.Usage = func() {
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()

	if err := run(*bind, *port); err != nil {
		slog.Error("authoring api stopped with an error", "error", err)
		os.Exit(1)
	}
}

func run(bind, port string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	otelShutdown, err := utils.SetupOTelSDK(ctx)
	if err != nil {
		return fmt.Errorf("failed to set up OpenTelemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if errShutdown := otelShutdown(shutdownCtx); errShutdown != nil {
			slog.Error("failed to shut down OpenTelemetry", "error", errShutdown)
		}
	}()

	policies, err := service.AuthoringPolicies(ctx)
	if err != nil {
		return fmt.Errorf("failed to load authoring configuration: %w", err)
	}

	store := service.AuthoringPolicyReaderWriter(ctx)
	if len(policies) > 0 {
		syncService := internalService.NewAuthoringSyncService(store, service.MessagePublisher(ctx))
		if err := syncService.Sync(ctx, policies); err != nil {
			return fmt.Errorf("failed to sync authoring policies: %w", err)
		}
	}

	stored, err := store.ListAuthoringPolicies(ctx)
	if err != nil {
		return fmt.Errorf("failed to list authoring policies: %w", err)
	}
	names := make([]string, 0, len(stored))
	for _, policy := range stored {
		names = append(names, policy.Name)
	}
	slog.InfoContext(ctx, "authoring policies available", "count", len(names), "policies", names)

	resolver := internalService.NewAuthorResolver(
		internalService.WithAuthoringPolicyReader(store),
	)

	natsClient := service.GetNATSClient(ctx)
	defer func() {
		if errClose := natsClient.Close(); errClose != nil {
			slog.Error("failed to close NATS connection", "error", errClose)
		}
	}()

	addr := ":" + port
	if bind != "*" {
		addr = net.JoinHostPort(bind, port)
	}
	server := &http.Server{
		Addr:              addr,
		Handler:           otelhttp.NewHandler(service.NewRouter(service.NewHandler(natsClient, store, resolver)), constants.ServiceName),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.InfoContext(gctx, "http server listening", "addr", addr)
		if errServe := server.ListenAndServe(); errServe != nil && !errors.Is(errServe, http.ErrServerClosed) {
			return errServe
		}
		return nil
	})

	g.Go(func() error {
		return handleResolve(gctx, resolver)
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down authoring api")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), gracefulShutdownSeconds*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("authoring api exited")
	return nil
}
