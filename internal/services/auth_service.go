package services

import (
	"context"
	"log"

	"shopcart/internal/apperrors"
	"shopcart/internal/models"
	"shopcart/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles login and the lookup of authenticated customers.
type AuthService struct {
	customerRepo repositories.CustomerRepository
	tokens       *TokenProvider
}

// NewAuthService creates a new AuthService.
func NewAuthService(customerRepo repositories.CustomerRepository, tokens *TokenProvider) *AuthService {
	return &AuthService{
		customerRepo: customerRepo,
		tokens:       tokens,
	}
}

// Login checks the credentials and returns a signed token for the customer.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	customer, found, err := s.customerRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	// Unknown email and wrong password are reported the same way.
	if !found {
		log.Printf("Login attempt for unknown email %s", email)
		return "", apperrors.NewAuthenticationError("invalid credentials", nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(password)); err != nil {
		return "", apperrors.NewAuthenticationError("invalid credentials", nil)
	}
	return s.tokens.CreateToken(customer.Email)
}

// FindLoginCustomer returns the customer a token was issued for.
func (s *AuthService) FindLoginCustomer(ctx context.Context, email string) (models.Customer, error) {
	customer, found, err := s.customerRepo.FindByEmail(ctx, email)
	if err != nil {
		return models.Customer{}, err
	}
	if !found {
		return models.Customer{}, apperrors.NewNotFoundError("customer %s does not exist", email)
	}
	return customer, nil
}
