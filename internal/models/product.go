package models

import "time"

// Product represents a product in the catalog.
type Product struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	ImageURL  string    `json:"imageUrl" gorm:"column:image_url;type:varchar(255);not null"`
	Price     int       `json:"price" gorm:"not null"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Product) TableName() string {
	return "product"
}

// ProductEvent is published whenever the catalog changes.
type ProductEvent struct {
	Type       string    `json:"type"` // product.created, product.updated or product.deleted
	ProductID  int64     `json:"productId"`
	Name       string    `json:"name,omitempty"`
	Price      int       `json:"price,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

const (
	ProductCreated = "product.created"
	ProductUpdated = "product.updated"
	ProductDeleted = "product.deleted"
)
