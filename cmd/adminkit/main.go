package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/opservo/adminkit/internal/config"
	"github.com/opservo/adminkit/internal/core/logger"
	s3Infra "github.com/opservo/adminkit/internal/infrastructure/s3"
	valkeyInfra "github.com/opservo/adminkit/internal/infrastructure/valkey"
	"github.com/opservo/adminkit/internal/toolkit"
)

const lockValidity = 5 * time.Minute

func main() {
	configPath := flag.String("config", "adminkit.yaml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	lg := logger.NewFromConfig(&cfg.Logger)
	defer func() { _ = lg.Sync() }()

	tk := toolkit.New(cfg, lg)

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: adminkit [-config file] <command> [args...]")
		for _, cmd := range tk.Commands() {
			fmt.Fprintf(os.Stderr, "  %-18s %s\n", cmd.Name, cmd.Help)
		}
		os.Exit(2)
	}

	if cfg.Valkey != nil {
		client, err := valkeyInfra.NewClient(cfg.Valkey)
		if err != nil {
			lg.Fatal("cannot build valkey client", zap.Error(err))
		}
		defer client.Close()

		locker, err := valkeyInfra.NewLocker(client, lockValidity)
		if err != nil {
			lg.Fatal("cannot build valkey locker", zap.Error(err))
		}
		defer locker.Close()

		tk.AttachValkey(client, locker)
	}

	if cfg.S3 != nil {
		client, err := s3Infra.NewClient(cfg.S3, lg)
		if err != nil {
			lg.Fatal("cannot build s3 client", zap.Error(err))
		}
		tk.AttachS3(client)
	}

	inv, err := tk.Run(context.Background(), flag.Arg(0), flag.Args()[1:])
	if err != nil {
		lg.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
	if inv.Interrupted() {
		// Soft failure: the dispatcher already logged it.
		os.Exit(1)
	}
}
