package models

import "time"

// MaxCartItemQuantity is the largest quantity a single cart row may hold.
const MaxCartItemQuantity = 10000

// CartItem is a single row of a customer's cart.
type CartItem struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerID int64     `json:"customerId" gorm:"index;not null"`
	ProductID  int64     `json:"productId" gorm:"index;not null"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

func (CartItem) TableName() string {
	return "cart_item"
}

// CartItemResponse is a cart row joined with the current state of its product.
type CartItemResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	ImageURL string `json:"imageUrl"`
	Quantity int    `json:"quantity"`
}
