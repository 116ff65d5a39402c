package users

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

// SQLiteRepository implements Repository for local development. Timestamps
// are stored as Unix milliseconds.
type SQLiteRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	createdAt := r.now().UTC().UnixMilli()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (email, password_hash, created_at) VALUES (?, ?, ?)`,
		user.Email, user.PasswordHash, createdAt)
	if err != nil {
		return nil, sqlerr.Classify(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, sqlerr.Classify(err)
	}

	user.ID = id
	user.CreatedAt = time.UnixMilli(createdAt).UTC()
	return user, nil
}

func (r *SQLiteRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var createdAt int64
	user := &models.User{}

	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE email = ?`, email).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, sqlerr.Classify(err)
	}

	user.CreatedAt = time.UnixMilli(createdAt).UTC()
	return user, nil
}
