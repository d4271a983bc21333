package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ka4a/talentai-sub000/internal/models"
)

type createJobInput struct {
	Title         string `json:"title"`
	OpeningsCount int    `json:"openings_count"`
}

type idListInput struct {
	IDs []uint `json:"ids"`
}

type publishJobInput struct {
	Public bool `json:"public"`
}

type createJobFileInput struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
}

func (handler *Handler) ListJobs(c *fiber.Ctx) error {
	access, ok := currentAccess(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var jobs []models.Job
	if err := handler.engine.Jobs(access).Order("jobs.id").Find(&jobs).Error; err != nil {
		return respondError(c, err)
	}
	return c.JSON(jobs)
}

func (handler *Handler) GetJob(c *fiber.Ctx) error {
	access, _ := currentAccess(c)
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}

	job, err := handler.engine.VisibleJob(access, jobID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(job)
}

// CreateJob opens a job for the actor's client organization. Agency-side
// actors own no jobs and cannot create them.
func (handler *Handler) CreateJob(c *fiber.Ctx) error {
	profile, _ := currentProfile(c)
	if profile.Client == nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
	}

	var input createJobInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if strings.TrimSpace(input.Title) == "" {
		return badRequest(c, "title is required")
	}

	job, err := handler.jobService.Create(profile.Org(), profile.Client.ID, profile.User.ID, input.Title, input.OpeningsCount)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

func (handler *Handler) SetJobAgencies(c *fiber.Ctx) error {
	profile, _ := currentProfile(c)
	access, _ := currentAccess(c)
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}

	var input idListInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}

	if _, err := handler.engine.VisibleJob(access, jobID); err != nil {
		return respondError(c, err)
	}
	if err := handler.jobService.SetAgencies(profile.User, jobID, input.IDs); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) AssignJobManagers(c *fiber.Ctx) error {
	access, _ := currentAccess(c)
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}

	var input idListInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}

	if _, err := handler.engine.VisibleJob(access, jobID); err != nil {
		return respondError(c, err)
	}
	if err := handler.jobService.AssignManagers(jobID, input.IDs); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) AssignJobMembers(c *fiber.Ctx) error {
	access, _ := currentAccess(c)
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}

	var input idListInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}

	if _, err := handler.engine.VisibleJob(access, jobID); err != nil {
		return respondError(c, err)
	}
	if err := handler.jobService.AssignMembers(jobID, input.IDs); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) PublishJob(c *fiber.Ctx) error {
	access, _ := currentAccess(c)
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}

	var input publishJobInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}

	if _, err := handler.engine.VisibleJob(access, jobID); err != nil {
		return respondError(c, err)
	}
	posting, err := handler.jobService.Publish(jobID, input.Public)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"public_uuid": posting.PublicUUID})
}

func (handler *Handler) UnpublishJob(c *fiber.Ctx) error {
	access, _ := currentAccess(c)
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}

	if _, err := handler.engine.VisibleJob(access, jobID); err != nil {
		return respondError(c, err)
	}
	if err := handler.jobService.Unpublish(jobID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) ListJobFiles(c *fiber.Ctx) error {
	access, _ := currentAccess(c)

	var files []models.JobFile
	if err := handler.engine.JobFiles(access).Order("job_files.id").Find(&files).Error; err != nil {
		return respondError(c, err)
	}
	return c.JSON(files)
}

func (handler *Handler) CreateJobFile(c *fiber.Ctx) error {
	profile, _ := currentProfile(c)
	access, _ := currentAccess(c)
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}

	var input createJobFileInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if strings.TrimSpace(input.Name) == "" {
		return badRequest(c, "name is required")
	}

	file, err := handler.jobService.CreateFile(access, profile.User, jobID, input.Name, input.ContentType)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(file)
}
