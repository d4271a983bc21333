package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ka4a/talentai-sub000/internal/models"
)

type createContractInput struct {
	AgencyID uint `json:"agency_id"`
	ClientID uint `json:"client_id"`
}

type acceptInvitationInput struct {
	Token string `json:"token"`
}

func (handler *Handler) ListContracts(c *fiber.Ctx) error {
	access, ok := currentAccess(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var contracts []models.Contract
	if err := handler.engine.Contracts(access).Order("contracts.id").Find(&contracts).Error; err != nil {
		return respondError(c, err)
	}
	return c.JSON(contracts)
}

func (handler *Handler) CreateContract(c *fiber.Ctx) error {
	var input createContractInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if input.AgencyID == 0 || input.ClientID == 0 {
		return badRequest(c, "agency_id and client_id are required")
	}

	contract, err := handler.contractService.Create(input.AgencyID, input.ClientID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(contract)
}

func (handler *Handler) InviteAgency(c *fiber.Ctx) error {
	profile, _ := currentProfile(c)
	contractID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}

	contract, err := handler.contractService.InviteAgency(profile.User, contractID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"id": contract.ID, "status": contract.Status, "invitation_token": contract.InvitationToken})
}

func (handler *Handler) AcceptInvitation(c *fiber.Ctx) error {
	var input acceptInvitationInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if strings.TrimSpace(input.Token) == "" {
		return badRequest(c, "token is required")
	}

	contract, err := handler.contractService.AcceptInvitation(strings.TrimSpace(input.Token))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(contract)
}

func (handler *Handler) SignContract(c *fiber.Ctx) error {
	profile, _ := currentProfile(c)
	contractID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}

	var contract models.Contract
	if profile.Client != nil {
		contract, err = handler.contractService.SignByClient(profile.User, contractID)
	} else {
		contract, err = handler.contractService.SignByAgency(profile.User, contractID)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(contract)
}
