package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/slowdive/internal/services"
	"github.com/desertthunder/slowdive/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	session, err := shared.NewSessionStore(config.Session.Path)
	if err != nil {
		logger.Fatalf("failed to open session store: %v", err)
	}

	backend := services.NewSlowdiveService(shared.ResolveBaseURL(config), nil, session)

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Backend: backend,
		Session: session,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "slowdive",
		Usage:    "Browse ranked albums, manage likes and your record collection",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
