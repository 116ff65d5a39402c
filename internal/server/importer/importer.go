// Package importer bulk-loads animals from a JSON array into the catalog in
// a single transaction: either every record is inserted or none is.
package importer

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/animalcatalog/internal/dbx"
	"github.com/dmitrijs2005/animalcatalog/internal/flagx"
	"github.com/dmitrijs2005/animalcatalog/internal/logging"
	"github.com/dmitrijs2005/animalcatalog/internal/server/models"
	"github.com/dmitrijs2005/animalcatalog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/animalcatalog/internal/server/services"
)

// Options are the importer's own command-line flags. Database settings come
// from the server configuration.
type Options struct {
	InputPath string
	DryRun    bool
}

// ParseOptions reads -in and -dry-run from args, ignoring other flags.
func ParseOptions(args []string) (Options, error) {
	var opts Options

	fs := flag.NewFlagSet("importer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.InputPath, "in", "", "JSON file with an array of animals")
	fs.BoolVar(&opts.DryRun, "dry-run", false, "validate without writing to the database")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-in", "-dry-run"})); err != nil {
		return Options{}, err
	}
	if strings.TrimSpace(opts.InputPath) == "" {
		return Options{}, errors.New("-in is required")
	}

	return opts, nil
}

// Decode reads a JSON array of animals and validates every record. The
// first invalid record fails the whole batch.
func Decode(r io.Reader) ([]models.NewAnimal, error) {
	var batch []models.NewAnimal
	if err := json.NewDecoder(r).Decode(&batch); err != nil {
		return nil, fmt.Errorf("decode animals: %w", err)
	}

	for i := range batch {
		if err := services.ValidateNewAnimal(&batch[i]); err != nil {
			return nil, fmt.Errorf("record %d (%q): %w", i, batch[i].Nombre, err)
		}
	}

	return batch, nil
}

// Import inserts batch inside one transaction and returns the created rows.
func Import(ctx context.Context, db *sql.DB, rm repomanager.RepositoryManager, batch []models.NewAnimal) ([]models.Animal, error) {
	created := make([]models.Animal, 0, len(batch))

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := rm.Animals(tx)
		for i := range batch {
			a, err := repo.Create(ctx, &batch[i])
			if err != nil {
				return fmt.Errorf("record %d (%q): %w", i, batch[i].Nombre, err)
			}
			created = append(created, *a)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Run reads opts.InputPath and imports it unless opts.DryRun is set.
func Run(ctx context.Context, db *sql.DB, rm repomanager.RepositoryManager, opts Options, logger logging.Logger) (int, error) {
	f, err := os.Open(opts.InputPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	batch, err := Decode(f)
	if err != nil {
		return 0, err
	}

	if opts.DryRun {
		logger.Info(ctx, "dry run: input is valid", "records", len(batch))
		return len(batch), nil
	}

	created, err := Import(ctx, db, rm, batch)
	if err != nil {
		return 0, err
	}

	logger.Info(ctx, "animals imported", "records", len(created))
	return len(created), nil
}
