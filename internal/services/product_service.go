package services

import (
	"context"
	"log"
	"time"

	"shopcart/internal/apperrors"
	"shopcart/internal/models"
	"shopcart/internal/repositories"
)

// EventPublisher delivers catalog events to interested consumers.
type EventPublisher interface {
	PublishProductEvent(event models.ProductEvent) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher // optional
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// SaveProduct stores a new product and returns its ID.
func (s *ProductService) SaveProduct(ctx context.Context, name, imageURL string, price int) (int64, error) {
	product := &models.Product{Name: name, ImageURL: imageURL, Price: price}
	id, err := s.repo.InsertProduct(ctx, product)
	if err != nil {
		return 0, err
	}
	s.publish(models.ProductEvent{Type: models.ProductCreated, ProductID: id, Name: name, Price: price})
	return id, nil
}

// FindAll retrieves all products.
func (s *ProductService) FindAll(ctx context.Context) ([]models.Product, error) {
	return s.repo.FindAll(ctx)
}

// FindProduct retrieves a single product by its ID.
func (s *ProductService) FindProduct(ctx context.Context, id int64) (models.Product, error) {
	product, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return models.Product{}, err
	}
	if !found {
		return models.Product{}, apperrors.NewNotFoundError("product with ID %d not found", id)
	}
	return product, nil
}

// UpdateProduct overwrites name, image URL and price of an existing product.
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, name, imageURL string, price int) error {
	_, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewDomainError("product does not exist")
	}
	if err := s.repo.UpdateProduct(ctx, id, models.Product{Name: name, ImageURL: imageURL, Price: price}); err != nil {
		return err
	}
	s.publish(models.ProductEvent{Type: models.ProductUpdated, ProductID: id, Name: name, Price: price})
	return nil
}

// DeleteProduct removes a product and takes it out of every cart.
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := s.FindProduct(ctx, id); err != nil {
		return err
	}
	if _, err := s.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.publish(models.ProductEvent{Type: models.ProductDeleted, ProductID: id})
	return nil
}

// publish never fails the caller; a lost event is only logged.
func (s *ProductService) publish(event models.ProductEvent) {
	if s.publisher == nil {
		return
	}
	event.OccurredAt = time.Now()
	if err := s.publisher.PublishProductEvent(event); err != nil {
		log.Printf("Warning: Failed to publish %s event for product %d: %v", event.Type, event.ProductID, err)
	}
}
