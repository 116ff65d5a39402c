package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/dmitrijs2005/animalcatalog/internal/logging"
	"github.com/dmitrijs2005/animalcatalog/internal/server/config"
	"github.com/dmitrijs2005/animalcatalog/internal/server/importer"
	"github.com/dmitrijs2005/animalcatalog/internal/server/repositories/repomanager"
)

func main() {
	ctx := context.Background()

	opts, err := importer.ParseOptions(os.Args[1:])
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	rm, err := repomanager.New(cfg.DBDriver)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	db, err := sql.Open(cfg.SQLDriverName(), cfg.DatabaseDSN())
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	defer db.Close()

	if err := rm.RunMigrations(ctx, db); err != nil {
		log.Fatalf("Error: %v", err)
	}

	if _, err := importer.Run(ctx, db, rm, opts, logger); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
