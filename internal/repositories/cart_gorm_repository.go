package repositories

import (
	"errors"
	"fmt"

	"ecom/internal/apperrors"
	"ecom/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartItemRepository is a GORM implementation of CartItemRepository.
type GORMCartItemRepository struct {
	db *gorm.DB
}

// NewGORMCartItemRepository creates a new instance of GORMCartItemRepository.
func NewGORMCartItemRepository(db *gorm.DB) *GORMCartItemRepository {
	return &GORMCartItemRepository{
		db: db,
	}
}

// GetByUserAndProduct retrieves the single cart row for a (user, product)
// pair, or a CartItem not-found error if none exists.
func (r *GORMCartItemRepository) GetByUserAndProduct(userID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.First(&item, "user_id = ? AND product_id = ?", userID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Cart item", productID)
		}
		return nil, fmt.Errorf("failed to get cart item for user %s, product %s: %w", userID, productID, err)
	}
	return &item, nil
}

// GetByUser retrieves all cart rows for a user in storage order.
func (r *GORMCartItemRepository) GetByUser(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Find(&items, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return items, nil
}

// Save inserts a new cart row or updates an existing one in place.
func (r *GORMCartItemRepository) Save(item *models.CartItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Save(item).Error; err != nil {
		return fmt.Errorf("failed to save cart item: %w", err)
	}
	return nil
}

// Delete removes a single cart row.
func (r *GORMCartItemRepository) Delete(item *models.CartItem) error {
	res := r.db.Unscoped().Delete(item)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("Cart item", item.ProductID)
	}
	return nil
}

// DeleteByUser removes every cart row for the user. Deleting an already
// empty cart is a no-op.
func (r *GORMCartItemRepository) DeleteByUser(userID string) error {
	if err := r.db.Unscoped().Delete(&models.CartItem{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
	}
	return nil
}
