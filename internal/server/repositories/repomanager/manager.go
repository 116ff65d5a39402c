package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/animalcatalog/internal/dbx"
	"github.com/dmitrijs2005/animalcatalog/internal/server/repositories/animals"
	"github.com/dmitrijs2005/animalcatalog/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

// RepositoryManager vends dialect-specific repositories bound to a DBTX and
// applies the matching schema migrations.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Animals(db dbx.DBTX) animals.Repository
}

// New returns the manager for driver ("postgres" or "sqlite").
func New(driver string) (RepositoryManager, error) {
	switch driver {
	case "postgres":
		return NewPostgresRepositoryManager(), nil
	case "sqlite":
		return NewSQLiteRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}
