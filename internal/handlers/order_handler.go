package handlers

import (
	"ecom/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandleCreateOrder)
}

// HandleGetOrders retrieves the calling user's orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	orders, err := h.service.GetOrdersByUser(userID)
	if err != nil {
		return err
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrderByID(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(order)
}

// HandleCreateOrder creates an order from the calling user's cart.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	order, err := h.service.CreateOrder(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}
