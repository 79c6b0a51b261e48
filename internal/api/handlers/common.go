package handlers

import (
	"errors"

	"github.com/SahO-ux/budget-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// userIDFromContext reads the id placed in Locals by the auth
// middleware.
func userIDFromContext(c *fiber.Ctx) (primitive.ObjectID, error) {
	raw, _ := c.Locals("userID").(string)
	if raw == "" {
		return primitive.NilObjectID, errors.New("no user id in context")
	}
	return primitive.ObjectIDFromHex(raw)
}

// objectIDParam parses the :name route parameter as an ObjectID hex.
func objectIDParam(c *fiber.Ctx, name string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Params(name))
}

// serviceError maps service-layer failures onto HTTP responses:
// validation errors become 400 with the precise message, everything
// else is logged and becomes an opaque 500.
func serviceError(c *fiber.Ctx, logger *zap.Logger, op string, err error) error {
	if service.IsValidationError(err) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	logger.Error(op+" failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": op + " failed",
	})
}

func notFound(c *fiber.Ctx, what string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": what + " not found",
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
	})
}
