package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/NitinMohan03/photo-album-cli/internal/buildinfo"
	"github.com/NitinMohan03/photo-album-cli/internal/client/cli"
	"github.com/NitinMohan03/photo-album-cli/internal/client/config"
	"github.com/NitinMohan03/photo-album-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewDefault(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
