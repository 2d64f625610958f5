package repositories

import (
	"context"

	"shopcart/internal/models"
)

// CustomerRepository defines the interface for customer data access.
// Delete also removes the customer's cart.
type CustomerRepository interface {
	Save(ctx context.Context, customer *models.Customer) (int64, error)
	FindByID(ctx context.Context, id int64) (models.Customer, bool, error)
	FindByEmail(ctx context.Context, email string) (models.Customer, bool, error)
	Update(ctx context.Context, id int64, customer models.Customer) error
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
