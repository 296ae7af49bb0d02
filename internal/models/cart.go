package models

import "gorm.io/gorm"

// CartItem is one product line in a user's cart. There is at most one row
// per (user, product) pair; re-adding the same product merges quantities.
// Price is a snapshot of the product price taken at add-to-cart time.
type CartItem struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string  `json:"user_id" gorm:"type:varchar(36);uniqueIndex:idx_cart_user_product"`
	ProductID  string  `json:"product_id" gorm:"type:varchar(36);uniqueIndex:idx_cart_user_product"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	gorm.Model `json:"-"`
}
