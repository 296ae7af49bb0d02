package apperrors

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is installed as the Fiber app's central error handler. It
// translates the domain error taxonomy into HTTP status codes and keeps
// everything else behind a generic 500 message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var (
		notFound   *NotFoundError
		outOfStock *OutOfStockError
		emptyCart  *EmptyCartError
		conflict   *ConflictError
		fiberErr   *fiber.Error
	)

	switch {
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": notFound.Error(),
		})
	case errors.As(err, &outOfStock):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": outOfStock.Error(),
		})
	case errors.As(err, &emptyCart):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": emptyCart.Error(),
		})
	case errors.As(err, &conflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": conflict.Error(),
		})
	case errors.As(err, &fiberErr):
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"message": fiberErr.Message,
		})
	}

	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "An internal error occurred: " + err.Error(),
	})
}
