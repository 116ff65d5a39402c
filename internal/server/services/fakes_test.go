package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/animalcatalog/internal/common"
	"github.com/dmitrijs2005/animalcatalog/internal/dbx"
	"github.com/dmitrijs2005/animalcatalog/internal/server/models"
	"github.com/dmitrijs2005/animalcatalog/internal/server/repositories/animals"
	"github.com/dmitrijs2005/animalcatalog/internal/server/repositories/users"
)

type fakeUsersRepo struct {
	byEmail map[string]*models.User
	nextID  int64

	getErr    error
	createErr error

	getCalls    int
	createCalls int
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byEmail: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrorConflict
	}
	f.nextID++
	u.ID = f.nextID
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

type fakeAnimalsRepo struct {
	items  []models.Animal
	nextID int64

	err error

	lastCreate *models.NewAnimal
	calls      int
}

func (f *fakeAnimalsRepo) Create(ctx context.Context, a *models.NewAnimal) (*models.Animal, error) {
	f.calls++
	f.lastCreate = a
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	animal := models.Animal{ID: f.nextID, Nombre: a.Nombre, Tipo: a.Tipo, Descripcion: a.Descripcion,
		WikipediaURL: a.WikipediaURL, ImagenURL: a.ImagenURL}
	f.items = append(f.items, animal)
	return &animal, nil
}

func (f *fakeAnimalsRepo) List(ctx context.Context) ([]models.Animal, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeAnimalsRepo) Get(ctx context.Context, id int64) (*models.Animal, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			a := f.items[i]
			return &a, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeAnimalsRepo) Delete(ctx context.Context, id int64) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

type fakeRepoManager struct {
	users   *fakeUsersRepo
	animals *fakeAnimalsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return m.users }
func (m *fakeRepoManager) Animals(dbx.DBTX) animals.Repository          { return m.animals }
