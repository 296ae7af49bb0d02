package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ecom/internal/apperrors"
	"ecom/internal/handlers"
	"ecom/internal/models"
	"ecom/internal/repositories"
	"ecom/internal/services"
)

func main() {
	viper.SetDefault("APP_PORT", ":8081")
	viper.SetDefault("DATABASE_DSN", "host=localhost user=ecom password=ecom dbname=users port=5432 sslmode=disable")
	viper.SetDefault("JWT_SECRET", "dev_jwt_secret")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	db, err := gorm.Open(postgres.Open(viper.GetString("DATABASE_DSN")), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	userRepo := repositories.NewGORMUserRepository(db)
	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo, viper.GetString("JWT_SECRET"))
	userHandler := handlers.NewUserHandler(userService, authService)

	app := fiber.New(fiber.Config{
		ErrorHandler: apperrors.ErrorHandler,
	})
	app.Use(logger.New())

	api := app.Group("/api")
	userHandler.RegisterRoutes(api)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	})

	log.Printf("Starting user service on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down user service...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("User service stopped")
}
