package api

import (
	"github.com/gofiber/fiber/v2"
)

// AuthRequired authenticates the bearer token and resolves the user's role
// profile. A user with zero or multiple role rows cannot act at all, so
// profile resolution failure maps to 401 rather than a partial identity.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	userID, err := handler.parseBearerToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	profile, err := handler.resolver.Resolve(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	c.Locals(contextUserKey, profile.User)
	c.Locals(contextProfileKey, profile)
	c.Locals(contextAccessKey, profile.Access(handler.db))
	return c.Next()
}
