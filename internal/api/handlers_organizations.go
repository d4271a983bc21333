package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ka4a/talentai-sub000/internal/models"
)

type createOrganizationInput struct {
	Name             string `json:"name"`
	PrimaryContactID *uint  `json:"primary_contact_id"`
}

type assignRoleInput struct {
	UserID         uint   `json:"user_id"`
	Role           string `json:"role"`
	OrganizationID uint   `json:"organization_id"`
}

func (handler *Handler) CreateClient(c *fiber.Ctx) error {
	var input createOrganizationInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if strings.TrimSpace(input.Name) == "" {
		return badRequest(c, "name is required")
	}

	client, err := handler.organizationService.CreateClient(input.Name, input.PrimaryContactID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

func (handler *Handler) CreateAgency(c *fiber.Ctx) error {
	var input createOrganizationInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if strings.TrimSpace(input.Name) == "" {
		return badRequest(c, "name is required")
	}

	agency, err := handler.organizationService.CreateAgency(input.Name, input.PrimaryContactID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(agency)
}

func (handler *Handler) AssignRole(c *fiber.Ctx) error {
	var input assignRoleInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}

	kind := models.RoleKind(input.Role)
	if !validRoleKind(kind) {
		return badRequest(c, "unknown role")
	}

	if err := handler.organizationService.AssignRole(input.UserID, kind, input.OrganizationID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) DeleteClient(c *fiber.Ctx) error {
	clientID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}
	if err := handler.organizationService.DeleteClient(clientID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) DeleteAgency(c *fiber.Ctx) error {
	agencyID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}
	if err := handler.organizationService.DeleteAgency(agencyID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func validRoleKind(kind models.RoleKind) bool {
	for _, known := range models.AllRoleKinds() {
		if kind == known {
			return true
		}
	}
	return false
}
