package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/kitchen-inventory/internal/models"
)

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	EnsureSchema(ctx context.Context) error
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (models.Product, error)
	Create(ctx context.Context, product models.Product) (models.Product, error)
	Update(ctx context.Context, product models.Product) (models.Product, error)
	Delete(ctx context.Context, id int) error
}

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")
