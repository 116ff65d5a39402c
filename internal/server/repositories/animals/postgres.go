package animals

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/animalcatalog/internal/common"
	"github.com/dmitrijs2005/animalcatalog/internal/dbx"
	"github.com/dmitrijs2005/animalcatalog/internal/server/models"
	"github.com/dmitrijs2005/animalcatalog/internal/server/repositories/sqlerr"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.NewAnimal) (*models.Animal, error) {

	query :=
		`INSERT INTO animals (nombre, tipo, descripcion, wikipedia_url, imagen_url)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at
		 `

	animal := &models.Animal{
		Nombre:       a.Nombre,
		Tipo:         a.Tipo,
		Descripcion:  a.Descripcion,
		WikipediaURL: a.WikipediaURL,
		ImagenURL:    a.ImagenURL,
	}

	err := r.db.QueryRowContext(ctx, query,
		a.Nombre, string(a.Tipo), a.Descripcion, a.WikipediaURL, a.ImagenURL).
		Scan(&animal.ID, &animal.CreatedAt)
	if err != nil {
		return nil, sqlerr.Classify(err)
	}

	return animal, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Animal, error) {
	query :=
		`SELECT id, nombre, tipo, descripcion, wikipedia_url, imagen_url, created_at
		 FROM animals
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, sqlerr.Classify(err)
	}
	defer rows.Close()

	result := make([]models.Animal, 0)

	for rows.Next() {
		var a models.Animal
		var tipo string
		if err := rows.Scan(&a.ID, &a.Nombre, &tipo, &a.Descripcion, &a.WikipediaURL, &a.ImagenURL, &a.CreatedAt); err != nil {
			return nil, sqlerr.Classify(err)
		}
		a.Tipo = models.AnimalType(tipo)
		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		return nil, sqlerr.Classify(err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Animal, error) {
	query :=
		`SELECT id, nombre, tipo, descripcion, wikipedia_url, imagen_url, created_at
		 FROM animals
		 WHERE id = $1
		 `

	var a models.Animal
	var tipo string
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&a.ID, &a.Nombre, &tipo, &a.Descripcion, &a.WikipediaURL, &a.ImagenURL, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, sqlerr.Classify(err)
	}
	a.Tipo = models.AnimalType(tipo)

	return &a, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM animals WHERE id = $1`, id)
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
