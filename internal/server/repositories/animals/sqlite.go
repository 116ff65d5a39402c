package animals

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/animalcatalog/internal/common"
	"github.com/dmitrijs2005/animalcatalog/internal/dbx"
	"github.com/dmitrijs2005/animalcatalog/internal/server/models"
	"github.com/dmitrijs2005/animalcatalog/internal/server/repositories/sqlerr"
)

const sqliteColumns = `id, nombre, tipo, descripcion, wikipedia_url, imagen_url, created_at`

// SQLiteRepository implements Repository on SQLite with created_at stored as
// Unix milliseconds.
type SQLiteRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

func (r *SQLiteRepository) Create(ctx context.Context, a *models.NewAnimal) (*models.Animal, error) {
	createdAt := r.now().UTC().UnixMilli()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO animals (nombre, tipo, descripcion, wikipedia_url, imagen_url, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		a.Nombre, string(a.Tipo), a.Descripcion, a.WikipediaURL, a.ImagenURL, createdAt)
	if err != nil {
		return nil, sqlerr.Classify(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, sqlerr.Classify(err)
	}

	return &models.Animal{
		ID:           id,
		Nombre:       a.Nombre,
		Tipo:         a.Tipo,
		Descripcion:  a.Descripcion,
		WikipediaURL: a.WikipediaURL,
		ImagenURL:    a.ImagenURL,
		CreatedAt:    time.UnixMilli(createdAt).UTC(),
	}, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+sqliteColumns+` FROM animals ORDER BY id`)
	if err != nil {
		return nil, sqlerr.Classify(err)
	}
	defer rows.Close()

	result := make([]models.Animal, 0)
	for rows.Next() {
		a, err := scanSQLiteAnimal(rows)
		if err != nil {
			return nil, sqlerr.Classify(err)
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, sqlerr.Classify(err)
	}

	return result, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id int64) (*models.Animal, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+sqliteColumns+` FROM animals WHERE id = ?`, id)

	a, err := scanSQLiteAnimal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, sqlerr.Classify(err)
	}

	return a, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM animals WHERE id = ?`, id)
	if err != nil {
		return sqlerr.Classify(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return sqlerr.Classify(err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSQLiteAnimal(s scanner) (*models.Animal, error) {
	var (
		a         models.Animal
		tipo      string
		createdAt int64
	)
	if err := s.Scan(&a.ID, &a.Nombre, &tipo, &a.Descripcion, &a.WikipediaURL, &a.ImagenURL, &createdAt); err != nil {
		return nil, err
	}
	a.Tipo = models.AnimalType(tipo)
	a.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &a, nil
}
