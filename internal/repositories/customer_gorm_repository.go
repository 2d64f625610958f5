package repositories

import (
	"context"
	"errors"
	"fmt"

	"shopcart/internal/models"

	"gorm.io/gorm"
)

// GORMCustomerRepository is a GORM implementation of CustomerRepository.
type GORMCustomerRepository struct {
	db *gorm.DB
}

// NewGORMCustomerRepository creates a new instance of GORMCustomerRepository.
func NewGORMCustomerRepository(db *gorm.DB) *GORMCustomerRepository {
	return &GORMCustomerRepository{
		db: db,
	}
}

// Save inserts a new customer and returns the generated ID.
func (r *GORMCustomerRepository) Save(ctx context.Context, customer *models.Customer) (int64, error) {
	customer.ID = 0
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return 0, fmt.Errorf("failed to save customer: %w", err)
	}
	return customer.ID, nil
}

// FindByID retrieves a customer by ID.
func (r *GORMCustomerRepository) FindByID(ctx context.Context, id int64) (models.Customer, bool, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByEmail retrieves a customer by email.
func (r *GORMCustomerRepository) FindByEmail(ctx context.Context, email string) (models.Customer, bool, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *GORMCustomerRepository) findOne(ctx context.Context, query string, arg interface{}) (models.Customer, bool, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Customer{}, false, nil
		}
		return models.Customer{}, false, fmt.Errorf("failed to get customer (%s %v): %w", query, arg, err)
	}
	return customer, true, nil
}

// Update overwrites password, profile image URL and terms. Email and ID never change.
func (r *GORMCustomerRepository) Update(ctx context.Context, id int64, customer models.Customer) error {
	// A map is used so that terms=false is written as well.
	res := r.db.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", id).Updates(map[string]interface{}{
		"password":          customer.Password,
		"profile_image_url": customer.ProfileImageURL,
		"terms":             customer.Terms,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update customer %d: %w", id, res.Error)
	}
	return nil
}

// Delete removes the customer and its cart in one transaction. Deleting an unknown ID
// is not an error.
func (r *GORMCustomerRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := NewGORMCartItemRepository(tx).DeleteByCustomerID(ctx, id); err != nil {
			return err
		}
		if err := tx.Delete(&models.Customer{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete customer %d: %w", id, err)
		}
		return nil
	})
}

func (r *GORMCustomerRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "id = ?", id)
}

func (r *GORMCustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

func (r *GORMCustomerRepository) exists(ctx context.Context, query string, arg interface{}) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Customer{}).Where(query, arg).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check customer existence (%s %v): %w", query, arg, err)
	}
	return count > 0, nil
}
