package repositories

import (
	"errors"
	"fmt"

	"ecom/internal/apperrors"
	"ecom/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAllActive retrieves all active products from the database.
func (r *GORMProductRepository) GetAllActive() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("active = ?", true).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get active products: %w", err)
	}
	return products, nil
}

// GetActiveByID retrieves a single active product by its ID.
func (r *GORMProductRepository) GetActiveByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("active = ?", true).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Product", id)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// GetByIDIncludingInactive retrieves a product regardless of its active flag.
func (r *GORMProductRepository) GetByIDIncludingInactive(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Product", id)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Search returns active products whose name or description contains the
// keyword, case-insensitively.
func (r *GORMProductRepository) Search(keyword string) ([]models.Product, error) {
	var products []models.Product
	pattern := "%" + keyword + "%"
	err := r.db.
		Where("active = ?", true).
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search products for %q: %w", keyword, err)
	}
	return products, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update saves all fields of an existing product, including Active, so it
// is also how soft deletes are persisted.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("Product", product.ID)
	}
	return nil
}
