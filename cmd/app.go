package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"sticker-manager/core/config"
	"sticker-manager/core/credentials"
	"sticker-manager/core/encoder"
	"sticker-manager/core/limiter"
	"sticker-manager/core/logger"
	"sticker-manager/core/snapshot"
	"sticker-manager/core/telegram"
	"sticker-manager/feature/pack"

	"go.uber.org/zap"
)

// snapshotDirName is the backup directory created next to the sticker
// directory inside a pack.
const snapshotDirName = "backups"

// app bundles the collaborators every authenticated command needs.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	client  telegram.Client
	cred    *credentials.Credential
	limiter *limiter.Limiter
}

// newApp loads configuration and the stored credential, authenticates it,
// and wires the shared collaborators. Missing credentials short-circuit
// before any remote call beyond the token check itself.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log = logger.WithRunID(log)

	candidate, err := credentials.Lookup()
	if err != nil {
		return nil, fmt.Errorf("please login first: %w", err)
	}

	client, err := buildClient(cfg, candidate)
	if err != nil {
		return nil, err
	}

	cred, err := credentials.Authenticate(ctx, candidate, client)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		log:     log,
		client:  client,
		cred:    cred,
		limiter: limiter.New(cfg.Limiter),
	}, nil
}

// buildClient creates the transport, preferring the credential's proxy over
// the configured one.
func buildClient(cfg *config.Config, candidate credentials.Candidate) (telegram.Client, error) {
	transportCfg := cfg.Telegram
	if candidate.Proxy != "" {
		transportCfg.Proxy = candidate.Proxy
	}
	client, err := telegram.NewClient(transportCfg, candidate.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	return client, nil
}

// service builds the sync service for the pack rooted at packDir.
func (a *app) service(packDir string) *pack.Service {
	snaps := snapshot.New(filepath.Join(packDir, snapshotDirName), a.cfg.Snapshot)
	return pack.NewService(a.log, a.client, a.limiter, encoder.NewPassthrough(), snaps, packDir)
}
