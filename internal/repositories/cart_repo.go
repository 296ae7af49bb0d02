package repositories

import "ecom/internal/models"

// CartItemRepository defines the interface for cart item data access.
type CartItemRepository interface {
	GetByUserAndProduct(userID, productID string) (*models.CartItem, error)
	GetByUser(userID string) ([]models.CartItem, error)
	Save(item *models.CartItem) error
	Delete(item *models.CartItem) error
	DeleteByUser(userID string) error
}
