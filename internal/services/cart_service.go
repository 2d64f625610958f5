package services

import (
	"context"

	"shopcart/internal/apperrors"
	"shopcart/internal/models"
	"shopcart/internal/repositories"
)

// CartService manages the items in a customer's cart.
type CartService struct {
	cartRepo    repositories.CartItemRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartItemRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddCartItem puts quantity units of a product into the cart and returns the cart item ID.
// Adding a product that is already in the cart increases its quantity. The resulting
// quantity may not exceed models.MaxCartItemQuantity.
func (s *CartService) AddCartItem(ctx context.Context, customerID, productID int64, quantity int) (int64, error) {
	if err := validateQuantity(quantity); err != nil {
		return 0, err
	}
	_, found, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, apperrors.NewNotFoundError("product with ID %d not found", productID)
	}

	existing, found, err := s.cartRepo.FindByCustomerAndProduct(ctx, customerID, productID)
	if err != nil {
		return 0, err
	}
	if found {
		if quantity > models.MaxCartItemQuantity-existing.Quantity {
			return 0, apperrors.NewDomainError("cart quantity of product %d may not exceed %d", productID, models.MaxCartItemQuantity)
		}
		if err := s.cartRepo.UpdateQuantity(ctx, existing.ID, existing.Quantity+quantity); err != nil {
			return 0, err
		}
		return existing.ID, nil
	}
	return s.cartRepo.Save(ctx, &models.CartItem{CustomerID: customerID, ProductID: productID, Quantity: quantity})
}

// FindCartItems lists the cart with current product name, price and image.
func (s *CartService) FindCartItems(ctx context.Context, customerID int64) ([]models.CartItemResponse, error) {
	return s.cartRepo.FindItemsByCustomerID(ctx, customerID)
}

func (s *CartService) UpdateCartItemQuantity(ctx context.Context, customerID, itemID int64, quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	if err := s.validateOwnedItem(ctx, customerID, itemID); err != nil {
		return err
	}
	return s.cartRepo.UpdateQuantity(ctx, itemID, quantity)
}

func (s *CartService) DeleteCartItem(ctx context.Context, customerID, itemID int64) error {
	if err := s.validateOwnedItem(ctx, customerID, itemID); err != nil {
		return err
	}
	return s.cartRepo.Delete(ctx, itemID)
}

// Items of other customers are reported as missing.
func (s *CartService) validateOwnedItem(ctx context.Context, customerID, itemID int64) error {
	item, found, err := s.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		return err
	}
	if !found || item.CustomerID != customerID {
		return apperrors.NewNotFoundError("cart item %d not found", itemID)
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 || quantity > models.MaxCartItemQuantity {
		return apperrors.NewDomainError("quantity must be between 1 and %d", models.MaxCartItemQuantity)
	}
	return nil
}
