package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/animalcatalog/internal/buildinfo"
	"github.com/dmitrijs2005/animalcatalog/internal/logging"
	"github.com/dmitrijs2005/animalcatalog/internal/server"
	"github.com/dmitrijs2005/animalcatalog/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	logger.Info(ctx, "configuration loaded", append(buildinfo.Fields(), "driver", cfg.DBDriver, "port", cfg.ListenPort)...)

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
