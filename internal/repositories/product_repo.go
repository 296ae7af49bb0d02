package repositories

import "ecom/internal/models"

// ProductRepository defines the interface for product data access.
// Read methods only see active products; GetByIDIncludingInactive exists
// for updates and soft deletes, which must reach deactivated rows too.
type ProductRepository interface {
	GetAllActive() ([]models.Product, error)
	GetActiveByID(id string) (*models.Product, error)
	GetByIDIncludingInactive(id string) (*models.Product, error)
	Search(keyword string) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
}
