package repositories

import (
	"context"
	"errors"
	"fmt"

	"shopcart/internal/models"

	"gorm.io/gorm"
)

// GORMCartItemRepository is a GORM implementation of CartItemRepository.
type GORMCartItemRepository struct {
	db *gorm.DB
}

// NewGORMCartItemRepository creates a new instance of GORMCartItemRepository.
func NewGORMCartItemRepository(db *gorm.DB) *GORMCartItemRepository {
	return &GORMCartItemRepository{
		db: db,
	}
}

func (r *GORMCartItemRepository) Save(ctx context.Context, item *models.CartItem) (int64, error) {
	item.ID = 0
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return 0, fmt.Errorf("failed to save cart item: %w", err)
	}
	return item.ID, nil
}

func (r *GORMCartItemRepository) FindByID(ctx context.Context, id int64) (models.CartItem, bool, error) {
	return r.findOne(ctx, r.db.Where("id = ?", id))
}

func (r *GORMCartItemRepository) FindByCustomerAndProduct(ctx context.Context, customerID, productID int64) (models.CartItem, bool, error) {
	return r.findOne(ctx, r.db.Where("customer_id = ? AND product_id = ?", customerID, productID))
}

func (r *GORMCartItemRepository) findOne(ctx context.Context, scope *gorm.DB) (models.CartItem, bool, error) {
	var item models.CartItem
	if err := scope.WithContext(ctx).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CartItem{}, false, nil
		}
		return models.CartItem{}, false, fmt.Errorf("failed to get cart item: %w", err)
	}
	return item, true, nil
}

func (r *GORMCartItemRepository) FindItemsByCustomerID(ctx context.Context, customerID int64) ([]models.CartItemResponse, error) {
	items := []models.CartItemResponse{}
	err := r.db.WithContext(ctx).
		Table("cart_item").
		Select("cart_item.id AS id, product.name AS name, product.price AS price, product.image_url AS image_url, cart_item.quantity AS quantity").
		Joins("JOIN product ON product.id = cart_item.product_id").
		Where("cart_item.customer_id = ?", customerID).
		Order("cart_item.id").
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items of customer %d: %w", customerID, err)
	}
	return items, nil
}

func (r *GORMCartItemRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	err := r.db.WithContext(ctx).Model(&models.CartItem{}).Where("id = ?", id).Update("quantity", quantity).Error
	if err != nil {
		return fmt.Errorf("failed to update quantity of cart item %d: %w", id, err)
	}
	return nil
}

func (r *GORMCartItemRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.CartItem{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete cart item %d: %w", id, err)
	}
	return nil
}

func (r *GORMCartItemRepository) DeleteByCustomerID(ctx context.Context, customerID int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.CartItem{}, "customer_id = ?", customerID).Error; err != nil {
		return fmt.Errorf("failed to clear cart of customer %d: %w", customerID, err)
	}
	return nil
}

func (r *GORMCartItemRepository) DeleteByProductID(ctx context.Context, productID int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.CartItem{}, "product_id = ?", productID).Error; err != nil {
		return fmt.Errorf("failed to remove product %d from carts: %w", productID, err)
	}
	return nil
}
