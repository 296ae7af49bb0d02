package services

import (
	"context"
	"log"
	"time"

	"ecom/internal/apperrors"
	"ecom/internal/models"
	"ecom/internal/repositories"
	"ecom/pkg/rabbitmq"
)

// CartReader is the slice of the cart service the order service needs.
type CartReader interface {
	GetCart(userID string) ([]models.CartItem, error)
	ClearCart(userID string) error
}

// OrderItemResponse is one order line in the response DTO, with the
// subtotal computed as price × quantity.
type OrderItemResponse struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Subtotal  float64 `json:"subtotal"`
}

// OrderResponse is the response DTO for order reads and creation.
type OrderResponse struct {
	ID          string              `json:"id"`
	UserID      string              `json:"user_id"`
	Status      models.OrderStatus  `json:"status"`
	TotalAmount float64             `json:"total_amount"`
	Items       []OrderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"created_at"`
}

// OrderService turns a user's cart into a confirmed order.
type OrderService struct {
	orderRepo  repositories.OrderRepository
	cart       CartReader
	userClient UserFetcher
	mqClient   *rabbitmq.Client
}

// NewOrderService creates a new OrderService. mqClient may be nil, in
// which case order events are not published.
func NewOrderService(orderRepo repositories.OrderRepository, cart CartReader, userClient UserFetcher, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo:  orderRepo,
		cart:       cart,
		userClient: userClient,
		mqClient:   mqClient,
	}
}

// CreateOrder builds an order from the user's current cart snapshot,
// persists it with its items, then clears the cart. The cart clear is not
// atomic with the order insert: if it fails the order stands and the
// failure is only logged.
func (s *OrderService) CreateOrder(ctx context.Context, userID string) (*OrderResponse, error) {
	cartItems, err := s.cart.GetCart(userID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, &apperrors.EmptyCartError{UserID: userID}
	}

	user, err := s.userClient.GetUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewNotFoundCause("User", userID, err)
	}
	if user == nil {
		return nil, apperrors.NewNotFound("User", userID)
	}

	var totalAmount float64
	items := make([]models.OrderItem, 0, len(cartItems))
	for _, item := range cartItems {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
		totalAmount += item.Price * float64(item.Quantity)
	}

	order := &models.Order{
		UserID:      userID,
		Status:      models.OrderStatusConfirmed,
		TotalAmount: totalAmount,
		Items:       items,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	if err := s.cart.ClearCart(userID); err != nil {
		log.Printf("Warning: order %s created but cart clear failed for user %s: %v", order.ID, userID, err)
	}

	s.publishOrderCreated(order)

	return mapToOrderResponse(order), nil
}

// GetOrderByID retrieves a single order with its items.
func (s *OrderService) GetOrderByID(id string) (*OrderResponse, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return mapToOrderResponse(order), nil
}

// GetOrdersByUser retrieves all orders of a user, newest first.
func (s *OrderService) GetOrdersByUser(userID string) ([]OrderResponse, error) {
	orders, err := s.orderRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *mapToOrderResponse(&orders[i]))
	}
	return responses, nil
}

// publishOrderCreated emits an order.created event, best effort. A publish
// failure never fails the order.
func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.mqClient == nil {
		return
	}
	event := rabbitmq.OrderCreatedEvent{
		OrderID:     order.ID,
		UserID:      order.UserID,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
	}
	if err := s.mqClient.PublishOrderCreated(event); err != nil {
		log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
	} else {
		log.Printf("Published order created event for order %s", order.ID)
	}
}

func mapToOrderResponse(order *models.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  item.Price * float64(item.Quantity),
		})
	}
	return &OrderResponse{
		ID:          order.ID,
		UserID:      order.UserID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		Items:       items,
		CreatedAt:   order.CreatedAt,
	}
}
