package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/demobank/bankcli/internal/buildinfo"
	"github.com/demobank/bankcli/internal/client/cli"
	"github.com/demobank/bankcli/internal/client/config"
	"github.com/demobank/bankcli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
