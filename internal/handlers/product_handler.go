package handlers

import (
	"fmt"
	"log"

	"ecom/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products. Reads are public;
// mutations are expected to sit behind the admin middleware.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterReadRoutes registers the public product read routes.
func (h *ProductHandler) RegisterReadRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/search", h.HandleSearchProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
}

// RegisterWriteRoutes registers the product mutation routes, typically on
// an admin-gated router group.
func (h *ProductHandler) RegisterWriteRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all active products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single active product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleSearchProducts returns active products matching the keyword query.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	keyword := c.Query("keyword")
	if keyword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Query parameter 'keyword' is required",
		})
	}
	products, err := h.service.SearchProducts(keyword)
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	req, ok, err := h.parseProductRequest(c)
	if !ok {
		return err
	}
	product, err := h.service.CreateProduct(req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates an existing product in place.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	req, ok, err := h.parseProductRequest(c)
	if !ok {
		return err
	}
	product, err := h.service.UpdateProduct(c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleDeleteProduct soft-deletes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseProductRequest binds and validates the request body. When ok is
// false the returned error is the already-written validation response.
func (h *ProductHandler) parseProductRequest(c *fiber.Ctx) (services.ProductRequest, bool, error) {
	var req services.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return req, false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
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
		return req, false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}
	return req, true, nil
}
