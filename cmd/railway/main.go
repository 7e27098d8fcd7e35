package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/divyam007142/Railway-reservation/internal/api"
	"github.com/divyam007142/Railway-reservation/internal/config"
	"github.com/divyam007142/Railway-reservation/internal/console"
	"github.com/divyam007142/Railway-reservation/internal/logger"
	"github.com/divyam007142/Railway-reservation/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.App.LogLevel)
	defer logger.Sync()
	logger.Info("starting railway console",
		zap.String("api", cfg.API.BaseURL),
		zap.String("session", cfg.Session.Path),
	)

	store := session.NewStore(cfg.Session.Path)
	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, store)
	term := console.NewTerminal(os.Stdin, os.Stdout)

	app := console.New(client, store, term)
	if err := app.Run(context.Background()); err != nil {
		logger.Error("console exited", zap.Error(err))
		os.Exit(1)
	}
}
