package handlers

import (
	"fmt"
	"log"

	"ecom/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for users and authentication.
type UserHandler struct {
	userService *services.UserService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, authService *services.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user and auth routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Put("/:id", h.HandleUpdateUser)

	authRoutes := router.Group("/auth")
	authRoutes.Post("/login", h.HandleLogin)
}

// HandleGetUsers retrieves all users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.userService.FetchAllUsers()
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// HandleCreateUser registers a new user.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req services.UserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create user request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if errs := h.validationErrors(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	user, err := h.userService.AddUser(req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleGetUserByID retrieves a single user by their ID.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	user, err := h.userService.FindUserByID(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// HandleUpdateUser updates an existing user's profile.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	var req services.UserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update user request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if errs := h.validationErrors(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	user, err := h.userService.UpdateUser(c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin authenticates a user and issues a JWT token.
func (h *UserHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if errs := h.validationErrors(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		log.Printf("Error during login for %s: %v", req.Email, err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}

func (h *UserHandler) validationErrors(req any) map[string]string {
	err := h.validate.Struct(req)
	if err == nil {
		return nil
	}
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return errorMessages
}
