package services

import (
	"context"
	"fmt"
	"log"

	"shopcart/internal/apperrors"
	"shopcart/internal/models"
	"shopcart/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// SignUp holds the data needed to register a customer.
type SignUp struct {
	Email           string
	Password        string
	ProfileImageURL string
	Terms           bool
}

// CustomerUpdate holds the fields a customer may change on their profile.
type CustomerUpdate struct {
	Password        string
	ProfileImageURL string
	Terms           bool
}

// CustomerService handles registration and profile management.
type CustomerService struct {
	customerRepo repositories.CustomerRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
	}
}

// SignUp registers a new customer and returns its ID.
func (s *CustomerService) SignUp(ctx context.Context, req SignUp) (int64, error) {
	password, err := models.NewPassword(req.Password)
	if err != nil {
		return 0, err
	}
	taken, err := s.customerRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, apperrors.NewDomainError("email '%s' already registered", req.Email)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return 0, err
	}
	id, err := s.customerRepo.Save(ctx, &models.Customer{
		Email:           req.Email,
		Password:        hash,
		ProfileImageURL: req.ProfileImageURL,
		Terms:           req.Terms,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to register customer: %w", err)
	}
	log.Printf("Registered customer %d (%s)", id, req.Email)
	return id, nil
}

// IsEmailTaken reports whether a customer already uses email.
func (s *CustomerService) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	return s.customerRepo.ExistsByEmail(ctx, email)
}

// FindCustomer returns the customer with the given ID.
func (s *CustomerService) FindCustomer(ctx context.Context, id int64) (models.Customer, error) {
	customer, found, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return models.Customer{}, err
	}
	if !found {
		return models.Customer{}, apperrors.NewNotFoundError("customer %d does not exist", id)
	}
	return customer, nil
}

// UpdateCustomer replaces password, profile image and terms of an existing customer.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id int64, req CustomerUpdate) error {
	if err := s.validateCustomerExists(ctx, id); err != nil {
		return err
	}
	password, err := models.NewPassword(req.Password)
	if err != nil {
		return err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	return s.customerRepo.Update(ctx, id, models.Customer{
		Password:        hash,
		ProfileImageURL: req.ProfileImageURL,
		Terms:           req.Terms,
	})
}

// DeleteCustomer removes the customer together with its cart.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	if err := s.validateCustomerExists(ctx, id); err != nil {
		return err
	}
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("Deleted customer %d", id)
	return nil
}

func (s *CustomerService) validateCustomerExists(ctx context.Context, id int64) error {
	exists, err := s.customerRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFoundError("customer %d does not exist", id)
	}
	return nil
}

func hashPassword(password models.Password) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password.Value()), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
