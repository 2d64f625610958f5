package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"shopcart/internal/apperrors"
	"shopcart/internal/models"
	"shopcart/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var ctx = context.Background()

func eventOfType(eventType string, productID int64) interface{} {
	return mock.MatchedBy(func(e models.ProductEvent) bool {
		return e.Type == eventType && e.ProductID == productID && !e.OccurredAt.IsZero()
	})
}

func TestProductService_SaveProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	mockRepo.On("InsertProduct", ctx, &models.Product{Name: "pencil", ImageURL: "img", Price: 1000}).Return(int64(1), nil).Once()
	mockPublisher.On("PublishProductEvent", eventOfType(models.ProductCreated, 1)).Return(nil).Once()

	id, err := service.SaveProduct(ctx, "pencil", "img", 1000)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), id)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)

	// Test insert failure (e.g., database error)
	mockRepo.On("InsertProduct", ctx, mock.Anything).Return(int64(0), fmt.Errorf("database error")).Once()
	_, err = service.SaveProduct(ctx, "pencil", "img", 1000)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestProductService_PublishFailureDoesNotFailSave(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	mockRepo.On("InsertProduct", ctx, mock.Anything).Return(int64(3), nil).Once()
	mockPublisher.On("PublishProductEvent", mock.Anything).Return(errors.New("broker down")).Once()

	id, err := service.SaveProduct(ctx, "pencil", "img", 1000)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), id)
	mockPublisher.AssertExpectations(t)
}

func TestProductService_FindAll(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expectedProducts := []models.Product{
		{ID: 1, Name: "pencil", ImageURL: "img", Price: 1000},
		{ID: 2, Name: "eraser", ImageURL: "img", Price: 500},
	}
	mockRepo.On("FindAll", ctx).Return(expectedProducts, nil).Once()

	products, err := service.FindAll(ctx)
	assert.NoError(t, err)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	// Test successful update
	mockRepo.On("FindByID", ctx, int64(1)).Return(models.Product{ID: 1, Name: "pencil", ImageURL: "img", Price: 1000}, true, nil).Once()
	mockRepo.On("UpdateProduct", ctx, int64(1), models.Product{Name: "eraser", ImageURL: "img", Price: 2000}).Return(nil).Once()
	err := service.UpdateProduct(ctx, 1, "eraser", "img", 2000)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test product does not exist
	mockRepo.On("FindByID", ctx, int64(99)).Return(models.Product{}, false, nil).Once()
	err = service.UpdateProduct(ctx, 99, "eraser", "img", 2000)
	var domainErr *apperrors.DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "product does not exist", err.Error())
	mockRepo.AssertNotCalled(t, "UpdateProduct", ctx, int64(99), mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	// Test successful deletion
	mockRepo.On("FindByID", ctx, int64(1)).Return(models.Product{ID: 1}, true, nil).Once()
	mockRepo.On("DeleteProduct", ctx, int64(1)).Return(int64(1), nil).Once()
	mockPublisher.On("PublishProductEvent", eventOfType(models.ProductDeleted, 1)).Return(nil).Once()
	err := service.DeleteProduct(ctx, 1)
	assert.NoError(t, err)

	// Test deletion of a missing product
	mockRepo.On("FindByID", ctx, int64(100)).Return(models.Product{}, false, nil).Once()
	err = service.DeleteProduct(ctx, 100)
	var notFound *apperrors.NotFoundError
	assert.True(t, errors.As(err, &notFound))
	assert.Contains(t, err.Error(), "not found")

	// A failed delete publishes nothing
	mockRepo.On("FindByID", ctx, int64(2)).Return(models.Product{ID: 2}, true, nil).Once()
	mockRepo.On("DeleteProduct", ctx, int64(2)).Return(int64(0), errors.New("transaction rolled back")).Once()
	assert.Error(t, service.DeleteProduct(ctx, 2))

	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}
