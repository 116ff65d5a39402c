// Package animals persists catalog entries: the Animal Store.
package animals

import (
	"context"

	"github.com/dmitrijs2005/animalcatalog/internal/server/models"
)

// Repository is the Animal Store. Get and Delete return
// common.ErrorNotFound for unknown ids; List returns animals in ascending
// id order and never a nil slice.
type Repository interface {
	Create(ctx context.Context, animal *models.NewAnimal) (*models.Animal, error)
	List(ctx context.Context) ([]models.Animal, error)
	Get(ctx context.Context, id int64) (*models.Animal, error)
	Delete(ctx context.Context, id int64) error
}
