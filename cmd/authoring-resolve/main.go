// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// authoring-resolve asks a running authoring API which author a contributor
// would be recorded as under a policy.
//
//	authoring-resolve -policy core-team "Foo Bar <foo@bar.com>"
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/linuxfoundation/lfx-v2-authoring-service/cmd/authoring-api/service"
	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/infrastructure/nats"
	logging "github.com/linuxfoundation/lfx-v2-authoring-service/pkg/log"
)

func main() {
	policy := flag.String("policy", "default", "authoring policy name")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-policy name] \"Name <email>\"\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	logging.InitStructureLogConfig()

	if err := run(context.Background(), *policy, flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, policy, identity string) error {
	cfg, err := service.NATSConfigFromEnv()
	if err != nil {
		return fmt.Errorf("invalid NATS configuration: %w", err)
	}

	client, err := nats.NewClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if errClose := client.Close(); errClose != nil {
			slog.ErrorContext(ctx, "failed to close NATS connection", "error", errClose)
		}
	}()

	author, err := nats.NewResolveRequester(client).Resolve(ctx, nats.ResolveRequest{
		Policy:   policy,
		Identity: identity,
	})
	if err != nil {
		return err
	}

	fmt.Println(author.String())
	return nil
}
