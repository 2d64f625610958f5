package repositories

import (
	"context"

	"shopcart/internal/models"
)

// CartItemRepository defines the interface for cart item data access.
type CartItemRepository interface {
	Save(ctx context.Context, item *models.CartItem) (int64, error)
	FindByID(ctx context.Context, id int64) (models.CartItem, bool, error)
	FindByCustomerAndProduct(ctx context.Context, customerID, productID int64) (models.CartItem, bool, error)
	// FindItemsByCustomerID joins the customer's rows with the current product data.
	FindItemsByCustomerID(ctx context.Context, customerID int64) ([]models.CartItemResponse, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
	Delete(ctx context.Context, id int64) error
	DeleteByCustomerID(ctx context.Context, customerID int64) error
	DeleteByProductID(ctx context.Context, productID int64) error
}
