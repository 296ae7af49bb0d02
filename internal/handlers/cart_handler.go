package handlers

import (
	"fmt"
	"log"

	"ecom/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// userIDHeader carries the calling user's id into the cart and order
// endpoints. In a full deployment it is set by the gateway.
const userIDHeader = "X-User-ID"

// CartHandler handles HTTP requests for the cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddToCart)
	cartRoutes.Delete("/items/:productId", h.HandleDeleteItem)
}

// HandleGetCart returns the calling user's cart rows.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	items, err := h.service.GetCart(userID)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// HandleAddToCart adds a product to the calling user's cart, merging with
// an existing row if one exists.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req services.CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add-to-cart request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	if err := h.service.AddToCart(c.Context(), userID, req); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Item added to cart",
	})
}

// HandleDeleteItem removes one product row from the calling user's cart.
func (h *CartHandler) HandleDeleteItem(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteItemFromCart(userID, c.Params("productId")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// requireUserID extracts the calling user's id from the request header.
func requireUserID(c *fiber.Ctx) (string, error) {
	userID := c.Get(userIDHeader)
	if userID == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Header '%s' is required", userIDHeader))
	}
	return userID, nil
}
