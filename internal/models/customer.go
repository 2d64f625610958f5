package models

import "time"

// Customer is a registered shopper. Password holds a bcrypt hash, never the raw value.
type Customer struct {
	ID              int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Email           string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Password        string    `json:"-" gorm:"type:varchar(255);not null"`
	ProfileImageURL string    `json:"profileImageUrl" gorm:"column:profile_image_url;type:varchar(255)"`
	Terms           bool      `json:"terms"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

func (Customer) TableName() string {
	return "customer"
}
