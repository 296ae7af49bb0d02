package models

import "gorm.io/gorm"

// Product represents a catalog product. Deleting a product only flips
// Active to false; the row stays in storage.
type Product struct {
	ID            string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name          string  `json:"name" validate:"required,min=3,max=100"`
	Description   string  `json:"description" validate:"omitempty,max=500"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	Category      string  `json:"category" validate:"omitempty,max=100"`
	ImageURL      string  `json:"image_url" validate:"omitempty,url"`
	Active        bool    `json:"active" gorm:"default:true"`
	gorm.Model    `json:"-"`
}
