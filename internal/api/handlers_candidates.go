package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ka4a/talentai-sub000/internal/models"
	"github.com/shopspring/decimal"
)

type createCandidateInput struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	SecondaryEmail string `json:"secondary_email"`
	CurrentSalary  string `json:"current_salary"`
	SalaryCurrency string `json:"salary_currency"`
}

type candidateNoteInput struct {
	Text string `json:"text"`
}

func (handler *Handler) ListCandidates(c *fiber.Ctx) error {
	access, ok := currentAccess(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	query := handler.engine.Candidates(access)
	if c.Query("include_archived") == "true" {
		query = handler.engine.AllCandidates(access)
	}

	var candidates []models.Candidate
	if err := query.Order("candidates.id").Find(&candidates).Error; err != nil {
		return respondError(c, err)
	}
	return c.JSON(candidates)
}

func (handler *Handler) GetCandidate(c *fiber.Ctx) error {
	access, _ := currentAccess(c)
	candidateID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}

	candidate, err := handler.engine.VisibleCandidate(access, candidateID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(candidate)
}

func (handler *Handler) CreateCandidate(c *fiber.Ctx) error {
	profile, _ := currentProfile(c)
	access, _ := currentAccess(c)

	var input createCandidateInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if strings.TrimSpace(input.FirstName) == "" {
		return badRequest(c, "first name is required")
	}

	candidate := models.Candidate{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          strings.TrimSpace(input.Email),
		SecondaryEmail: strings.TrimSpace(input.SecondaryEmail),
		SalaryCurrency: input.SalaryCurrency,
	}
	if input.CurrentSalary != "" {
		salary, err := decimal.NewFromString(input.CurrentSalary)
		if err != nil {
			return badRequest(c, "invalid current_salary")
		}
		candidate.CurrentSalary = salary
	}

	created, err := handler.candidateService.Create(access, profile.User, candidate)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (handler *Handler) ArchiveCandidate(c *fiber.Ctx) error {
	access, _ := currentAccess(c)
	candidateID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}

	if err := handler.candidateService.Archive(access, candidateID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) RestoreCandidate(c *fiber.Ctx) error {
	access, _ := currentAccess(c)
	candidateID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}

	if err := handler.candidateService.Restore(access, candidateID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) AddCandidateNote(c *fiber.Ctx) error {
	access, _ := currentAccess(c)
	candidateID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}

	var input candidateNoteInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}

	note, err := handler.candidateService.AddNote(access, candidateID, input.Text)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}
