package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rogerio-castellano/kitchen-inventory/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products map[int]models.Product
	nextID   int
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: map[int]models.Product{},
		nextID:   1,
	}
}

func (r *InMemoryProductRepository) EnsureSchema(ctx context.Context) error {
	return nil
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(ctx context.Context, product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	product.ExpirationDate = copyTime(product.ExpirationDate)
	r.nextID++
	r.products[product.ID] = product
	return withCopiedTime(product), nil
}

// GetAll retrieves all products from the repository.
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, withCopiedTime(p))
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id int) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return withCopiedTime(p), nil
}

// Update replaces every mutable field of an existing product.
func (r *InMemoryProductRepository) Update(ctx context.Context, product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return models.Product{}, ErrProductNotFound
	}
	product.ExpirationDate = copyTime(product.ExpirationDate)
	r.products[product.ID] = product
	return withCopiedTime(product), nil
}

// Delete removes a product from the repository by its ID.
func (r *InMemoryProductRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func withCopiedTime(p models.Product) models.Product {
	p.ExpirationDate = copyTime(p.ExpirationDate)
	return p
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := t.UTC()
	return &c
}
