package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"shopcart/internal/models"
)

// MemoryProductRepository is an in-memory implementation of ProductRepository.
type MemoryProductRepository struct {
	products map[int64]models.Product
	nextID   int64
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[int64]models.Product),
	}
}

func (r *MemoryProductRepository) InsertProduct(_ context.Context, product *models.Product) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	product.ID = r.nextID
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	r.products[product.ID] = *product
	return product.ID, nil
}

func (r *MemoryProductRepository) FindAll(_ context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	sort.Slice(productList, func(i, j int) bool {
		return productList[i].ID < productList[j].ID
	})
	return productList, nil
}

func (r *MemoryProductRepository) FindByID(_ context.Context, id int64) (models.Product, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	return product, ok, nil
}

// UpdateProduct is a no-op for unknown IDs.
func (r *MemoryProductRepository) UpdateProduct(_ context.Context, id int64, product models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[id]
	if !ok {
		return nil
	}
	existing.Name = product.Name
	existing.ImageURL = product.ImageURL
	existing.Price = product.Price
	existing.UpdatedAt = time.Now()
	r.products[id] = existing
	return nil
}

func (r *MemoryProductRepository) DeleteProduct(_ context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.products, id)
	return id, nil
}
