package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/animalcatalog/internal/common"
	"github.com/dmitrijs2005/animalcatalog/internal/server/models"
	"github.com/dmitrijs2005/animalcatalog/internal/server/repositories/repomanager"
)

// AnimalService is the catalog: create, list, get and delete animals. Each
// call is a single store round trip.
type AnimalService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewAnimalService(db *sql.DB, m repomanager.RepositoryManager) *AnimalService {
	return &AnimalService{db: db, repomanager: m}
}

// ValidateNewAnimal trims the name and checks the required fields.
func ValidateNewAnimal(a *models.NewAnimal) error {
	a.Nombre = strings.TrimSpace(a.Nombre)
	if a.Nombre == "" {
		return common.ErrorInvalidInput
	}
	if !a.Tipo.Valid() {
		return common.ErrorInvalidInput
	}
	return nil
}

func (s *AnimalService) Create(ctx context.Context, a models.NewAnimal) (*models.Animal, error) {
	if err := ValidateNewAnimal(&a); err != nil {
		return nil, err
	}
	return s.repomanager.Animals(s.db).Create(ctx, &a)
}

func (s *AnimalService) List(ctx context.Context) ([]models.Animal, error) {
	list, err := s.repomanager.Animals(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Animal{}
	}
	return list, nil
}

func (s *AnimalService) Get(ctx context.Context, id int64) (*models.Animal, error) {
	return s.repomanager.Animals(s.db).Get(ctx, id)
}

func (s *AnimalService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Animals(s.db).Delete(ctx, id)
}
