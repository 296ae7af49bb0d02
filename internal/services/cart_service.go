package services

import (
	"context"

	"ecom/internal/apperrors"
	"ecom/internal/clients"
	"ecom/internal/models"
	"ecom/internal/repositories"
)

// ProductFetcher looks up products in the remote product service.
// (nil, nil) means the product does not exist there.
type ProductFetcher interface {
	GetProduct(ctx context.Context, id string) (*clients.ProductDetails, error)
}

// UserFetcher looks up users in the remote user service.
// (nil, nil) means the user does not exist there.
type UserFetcher interface {
	GetUser(ctx context.Context, id string) (*clients.UserDetails, error)
}

// CartItemRequest is the request DTO for adding a product to the cart.
type CartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CartService handles cart mutations for the order service. Product and
// user existence are validated against the remote peer services before any
// local row is touched.
type CartService struct {
	cartRepo      repositories.CartItemRepository
	productClient ProductFetcher
	userClient    UserFetcher
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartItemRepository, productClient ProductFetcher, userClient UserFetcher) *CartService {
	return &CartService{
		cartRepo:      cartRepo,
		productClient: productClient,
		userClient:    userClient,
	}
}

// AddToCart validates the product (existence, stock) and the user against
// the remote services, then merges the request into the user's cart. An
// existing row for the same product has its quantity increased and its
// price refreshed to the product's current price.
func (s *CartService) AddToCart(ctx context.Context, userID string, req CartItemRequest) error {
	product, err := s.productClient.GetProduct(ctx, req.ProductID)
	if err != nil {
		return apperrors.NewNotFoundCause("Product", req.ProductID, err)
	}
	if product == nil {
		return apperrors.NewNotFound("Product", req.ProductID)
	}

	if product.StockQuantity < req.Quantity {
		return &apperrors.OutOfStockError{
			ProductName: product.Name,
			Requested:   req.Quantity,
			Available:   product.StockQuantity,
		}
	}

	user, err := s.userClient.GetUser(ctx, userID)
	if err != nil {
		return apperrors.NewNotFoundCause("User", userID, err)
	}
	if user == nil {
		return apperrors.NewNotFound("User", userID)
	}

	existing, err := s.cartRepo.GetByUserAndProduct(userID, req.ProductID)
	switch {
	case err == nil:
		existing.Quantity += req.Quantity
		existing.Price = product.Price
		return s.cartRepo.Save(existing)
	case apperrors.IsNotFound(err):
		item := &models.CartItem{
			UserID:    userID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
			Price:     product.Price,
		}
		return s.cartRepo.Save(item)
	default:
		return err
	}
}

// DeleteItemFromCart removes the cart row for the given product.
func (s *CartService) DeleteItemFromCart(userID, productID string) error {
	item, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return err
	}
	return s.cartRepo.Delete(item)
}

// ClearCart removes every cart row for the user; clearing an already empty
// cart succeeds.
func (s *CartService) ClearCart(userID string) error {
	return s.cartRepo.DeleteByUser(userID)
}

// GetCart returns the user's cart rows in storage order.
func (s *CartService) GetCart(userID string) ([]models.CartItem, error) {
	return s.cartRepo.GetByUser(userID)
}
