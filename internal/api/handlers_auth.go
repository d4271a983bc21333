package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type registerInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if strings.TrimSpace(input.Email) == "" || len(input.Password) < 8 {
		return badRequest(c, "email and a password of at least 8 characters are required")
	}

	user, err := handler.authService.Register(input.Email, input.Password, input.FirstName, input.LastName)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": user.ID, "email": user.Email})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}

	user, err := handler.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		return respondError(c, err)
	}

	token, err := handler.buildToken(user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"token": token})
}

// Me reports the authenticated user's resolved profile.
func (handler *Handler) Me(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	org := profile.Org()
	return c.JSON(fiber.Map{
		"id":         profile.User.ID,
		"email":      profile.User.Email,
		"first_name": profile.User.FirstName,
		"last_name":  profile.User.LastName,
		"role":       profile.Kind,
		"org_kind":   org.Kind,
		"org_id":     org.ID,
	})
}
