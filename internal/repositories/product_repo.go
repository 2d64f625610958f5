package repositories

import (
	"context"

	"shopcart/internal/models"
)

// ProductRepository defines the interface for product data access.
// FindByID reports absence through the found flag, not through the error.
// DeleteProduct also takes the product out of every cart the store knows about.
type ProductRepository interface {
	InsertProduct(ctx context.Context, product *models.Product) (int64, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id int64) (models.Product, bool, error)
	UpdateProduct(ctx context.Context, id int64, product models.Product) error
	DeleteProduct(ctx context.Context, id int64) (int64, error)
}
