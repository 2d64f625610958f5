package repositories

import (
	"context"
	"errors"
	"fmt"

	"shopcart/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// InsertProduct stores a new product and returns the generated ID.
func (r *GORMProductRepository) InsertProduct(ctx context.Context, product *models.Product) (int64, error) {
	product.ID = 0
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return 0, fmt.Errorf("failed to insert product: %w", err)
	}
	return product.ID, nil
}

// FindAll retrieves all products in insertion order.
func (r *GORMProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// FindByID retrieves a single product by its ID.
func (r *GORMProductRepository) FindByID(ctx context.Context, id int64) (models.Product, bool, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, false, nil
		}
		return models.Product{}, false, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return product, true, nil
}

// UpdateProduct replaces name, image URL and price of the product with the given ID.
func (r *GORMProductRepository) UpdateProduct(ctx context.Context, id int64, product models.Product) error {
	res := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":      product.Name,
		"image_url": product.ImageURL,
		"price":     product.Price,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update product %d: %w", id, res.Error)
	}
	return nil
}

// DeleteProduct removes the product together with its cart rows in one transaction
// and returns its ID.
func (r *GORMProductRepository) DeleteProduct(ctx context.Context, id int64) (int64, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := NewGORMCartItemRepository(tx).DeleteByProductID(ctx, id); err != nil {
			return err
		}
		if err := tx.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete product %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
