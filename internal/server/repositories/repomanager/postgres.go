// Package repomanager wires repository constructors and goose migrations
// together for each supported database dialect.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/animalcatalog/internal/dbx"
	"github.com/dmitrijs2005/animalcatalog/internal/server/migrations"
	"github.com/dmitrijs2005/animalcatalog/internal/server/repositories/animals"
	"github.com/dmitrijs2005/animalcatalog/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Animals(db dbx.DBTX) animals.Repository {
	return animals.NewPostgresRepository(db)
}

// RunMigrations applies the embedded PostgreSQL migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Postgres)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, "postgres")
}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}
