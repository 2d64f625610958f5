package services_test

import (
	"context"

	"shopcart/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) InsertProduct(ctx context.Context, product *models.Product) (int64, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (models.Product, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Product), args.Bool(1), args.Error(2)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, id int64, product models.Product) error {
	args := m.Called(ctx, id, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockCustomerRepository is a mock implementation of repositories.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *models.Customer) (int64, error) {
	args := m.Called(ctx, customer)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id int64) (models.Customer, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Customer), args.Bool(1), args.Error(2)
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, email string) (models.Customer, bool, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.Customer), args.Bool(1), args.Error(2)
}

func (m *MockCustomerRepository) Update(ctx context.Context, id int64, customer models.Customer) error {
	args := m.Called(ctx, id, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockCartItemRepository is a mock implementation of repositories.CartItemRepository
type MockCartItemRepository struct {
	mock.Mock
}

func (m *MockCartItemRepository) Save(ctx context.Context, item *models.CartItem) (int64, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCartItemRepository) FindByID(ctx context.Context, id int64) (models.CartItem, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.CartItem), args.Bool(1), args.Error(2)
}

func (m *MockCartItemRepository) FindByCustomerAndProduct(ctx context.Context, customerID, productID int64) (models.CartItem, bool, error) {
	args := m.Called(ctx, customerID, productID)
	return args.Get(0).(models.CartItem), args.Bool(1), args.Error(2)
}

func (m *MockCartItemRepository) FindItemsByCustomerID(ctx context.Context, customerID int64) ([]models.CartItemResponse, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]models.CartItemResponse), args.Error(1)
}

func (m *MockCartItemRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockCartItemRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCartItemRepository) DeleteByCustomerID(ctx context.Context, customerID int64) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

func (m *MockCartItemRepository) DeleteByProductID(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishProductEvent(event models.ProductEvent) error {
	args := m.Called(event)
	return args.Error(0)
}
