package animals

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/animalcatalog/internal/common"
	"github.com/dmitrijs2005/animalcatalog/internal/server/models"
)

const (
	insertAnimalQuery = `(?s)^INSERT\s+INTO\s+animals\s*\(nombre,\s*tipo,\s*descripcion,\s*wikipedia_url,\s*imagen_url\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*RETURNING\s+id,\s*created_at\s*$`
	listAnimalsQuery  = `(?s)^SELECT\s+id,\s*nombre,\s*tipo,\s*descripcion,\s*wikipedia_url,\s*imagen_url,\s*created_at\s+FROM\s+animals\s+ORDER\s+BY\s+id\s*$`
	getAnimalQuery    = `(?s)^SELECT\s+id,\s*nombre,\s*tipo,\s*descripcion,\s*wikipedia_url,\s*imagen_url,\s*created_at\s+FROM\s+animals\s+WHERE\s+id\s*=\s*\$1\s*$`
	deleteAnimalQuery = `(?s)^DELETE\s+FROM\s+animals\s+WHERE\s+id\s*=\s*\$1$`
)

var animalColumns = []string{"id", "nombre", "tipo", "descripcion", "wikipedia_url", "imagen_url", "created_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestPostgresCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery(insertAnimalQuery).
		WithArgs("León", "mamifero", "Felino", "https://es.wikipedia.org/wiki/León", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))

	got, err := repo.Create(context.Background(), &models.NewAnimal{
		Nombre:       "León",
		Tipo:         models.AnimalTypeMamifero,
		Descripcion:  "Felino",
		WikipediaURL: "https://es.wikipedia.org/wiki/León",
	})
	require.NoError(t, err)
	assert.Equal(t, &models.Animal{
		ID:           1,
		Nombre:       "León",
		Tipo:         models.AnimalTypeMamifero,
		Descripcion:  "Felino",
		WikipediaURL: "https://es.wikipedia.org/wiki/León",
		CreatedAt:    now,
	}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreate_InvalidEnum(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertAnimalQuery).
		WithArgs("Hormiga", "insecto", "", "", "").
		WillReturnError(&pgconn.PgError{Code: "22P02", Message: "invalid input value for enum animal_tipo"})

	_, err := repo.Create(context.Background(), &models.NewAnimal{Nombre: "Hormiga", Tipo: "insecto"})
	assert.ErrorIs(t, err, common.ErrorInvalidInput)
}

func TestPostgresList_OrderedRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery(listAnimalsQuery).
		WillReturnRows(sqlmock.NewRows(animalColumns).
			AddRow(int64(1), "León", "mamifero", "", "", "", now).
			AddRow(int64(2), "Rana", "anfibio", "verde", "", "", now))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, models.AnimalTypeAnfibio, got[1].Tipo)
	assert.Equal(t, "verde", got[1].Descripcion)
}

func TestPostgresList_EmptyIsNotNil(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listAnimalsQuery).WillReturnRows(sqlmock.NewRows(animalColumns))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPostgresList_RowError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(animalColumns).
		AddRow(int64(1), "León", "mamifero", "", "", "", time.Now()).
		RowError(0, errors.New("row broken"))
	mock.ExpectQuery(listAnimalsQuery).WillReturnRows(rows)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestPostgresGet(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery(getAnimalQuery).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(animalColumns).
			AddRow(int64(5), "Águila", "ave", "", "", "https://img/x.png", now))

	got, err := repo.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Águila", got.Nombre)
	assert.Equal(t, models.AnimalTypeAve, got.Tipo)
	assert.Equal(t, "https://img/x.png", got.ImagenURL)
}

func TestPostgresGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(getAnimalQuery).WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 99)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPostgresDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteAnimalQuery).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), 3))

	mock.ExpectExec(deleteAnimalQuery).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), 3), common.ErrorNotFound)

	mock.ExpectExec(deleteAnimalQuery).WithArgs(int64(4)).WillReturnError(errors.New("db down"))
	err := repo.Delete(context.Background(), 4)
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
