package services

import (
	"ecom/internal/models"
	"ecom/internal/repositories"
)

// ProductRequest is the request DTO for creating or updating a product.
type ProductRequest struct {
	Name          string  `json:"name" validate:"required,min=3,max=100"`
	Description   string  `json:"description" validate:"omitempty,max=500"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	Category      string  `json:"category" validate:"omitempty,max=100"`
	ImageURL      string  `json:"image_url" validate:"omitempty,url"`
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// CreateProduct creates a new active product from the request.
func (s *ProductService) CreateProduct(req ProductRequest) (*models.Product, error) {
	product := &models.Product{Active: true}
	applyProductRequest(product, req)
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct updates an existing product in place. Inactive products can
// still be updated; the active flag itself is untouched here.
func (s *ProductService) UpdateProduct(id string, req ProductRequest) (*models.Product, error) {
	product, err := s.repo.GetByIDIncludingInactive(id)
	if err != nil {
		return nil, err
	}
	applyProductRequest(product, req)
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProductByID retrieves a single active product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetActiveByID(id)
}

// GetAllProducts retrieves all active products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAllActive()
}

// DeleteProduct soft-deletes a product by flipping its active flag; the
// row stays in storage.
func (s *ProductService) DeleteProduct(id string) error {
	product, err := s.repo.GetByIDIncludingInactive(id)
	if err != nil {
		return err
	}
	product.Active = false
	return s.repo.Update(product)
}

// SearchProducts returns active products matching the keyword.
func (s *ProductService) SearchProducts(keyword string) ([]models.Product, error) {
	return s.repo.Search(keyword)
}

func applyProductRequest(product *models.Product, req ProductRequest) {
	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.StockQuantity = req.StockQuantity
	product.Category = req.Category
	product.ImageURL = req.ImageURL
}
