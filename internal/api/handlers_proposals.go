package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ka4a/talentai-sub000/internal/models"
)

type createProposalInput struct {
	JobID       uint   `json:"job_id"`
	CandidateID uint   `json:"candidate_id"`
	Stage       string `json:"stage"`
	StatusID    *uint  `json:"status_id"`
}

type changeStatusInput struct {
	StatusID uint `json:"status_id"`
}

type moveProposalInput struct {
	TargetJobID uint `json:"target_job_id"`
}

type importLonglistInput struct {
	SourceJobID uint `json:"source_job_id"`
}

type createInterviewInput struct {
	InterviewerID *uint `json:"interviewer_id"`
}

type scheduleInterviewInput struct {
	SchedulingType string                     `json:"scheduling_type"`
	Timeslots      []models.InterviewTimeslot `json:"timeslots"`
	Invited        []string                   `json:"invited"`
}

func (handler *Handler) ListProposals(c *fiber.Ctx) error {
	access, ok := currentAccess(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	query := handler.engine.Proposals(access).Preload("Status")
	if jobID := c.QueryInt("job_id"); jobID > 0 {
		query = query.Where("proposals.job_id = ?", jobID)
	}

	var proposals []models.Proposal
	if err := query.Order("proposals.id").Find(&proposals).Error; err != nil {
		return respondError(c, err)
	}
	return c.JSON(proposals)
}

func (handler *Handler) CreateProposal(c *fiber.Ctx) error {
	profile, _ := currentProfile(c)
	access, _ := currentAccess(c)

	var input createProposalInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if input.Stage == "" {
		input.Stage = models.StageLonglist
	}

	proposal, err := handler.proposalService.Create(access, profile.User, input.JobID, input.CandidateID, input.Stage, input.StatusID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(proposal)
}

func (handler *Handler) ChangeProposalStatus(c *fiber.Ctx) error {
	profile, _ := currentProfile(c)
	access, _ := currentAccess(c)
	proposalID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}

	var input changeStatusInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}

	proposal, err := handler.proposalService.ChangeStatus(access, profile.User, proposalID, input.StatusID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(proposal)
}

// DeclineOtherProposals runs the hire sweep: every other proposal of the
// same candidate, on any job, is marked rejected.
func (handler *Handler) DeclineOtherProposals(c *fiber.Ctx) error {
	profile, _ := currentProfile(c)
	access, _ := currentAccess(c)
	proposalID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}

	declined, err := handler.proposalService.DeclineSameCandidateProposals(access, profile.User, proposalID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"declined": declined})
}

func (handler *Handler) MoveProposal(c *fiber.Ctx) error {
	profile, _ := currentProfile(c)
	access, _ := currentAccess(c)
	proposalID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}

	var input moveProposalInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}

	proposal, err := handler.proposalService.MoveToJob(access, profile.User, proposalID, input.TargetJobID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(proposal)
}

func (handler *Handler) ImportLonglist(c *fiber.Ctx) error {
	profile, _ := currentProfile(c)
	access, _ := currentAccess(c)
	targetJobID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}

	var input importLonglistInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}

	imported, err := handler.proposalService.ImportLonglist(access, profile.User, input.SourceJobID, targetJobID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"imported": imported})
}

func (handler *Handler) DeleteProposal(c *fiber.Ctx) error {
	access, _ := currentAccess(c)
	proposalID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}

	if err := handler.proposalService.Delete(access, proposalID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) CreateInterview(c *fiber.Ctx) error {
	access, _ := currentAccess(c)
	proposalID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}

	var input createInterviewInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}

	interview, err := handler.proposalService.CreateInterview(access, proposalID, input.InterviewerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(interview)
}

func (handler *Handler) ScheduleInterview(c *fiber.Ctx) error {
	profile, _ := currentProfile(c)
	access, _ := currentAccess(c)
	interviewID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}

	var input scheduleInterviewInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if input.SchedulingType == "" {
		input.SchedulingType = models.SchedulingTypeSimple
	}
	for _, slot := range input.Timeslots {
		if slot.StartAt.IsZero() || slot.EndAt.Before(slot.StartAt) {
			return badRequest(c, "invalid timeslot")
		}
	}

	schedule, err := handler.proposalService.ScheduleInterview(access, profile.User, interviewID, input.SchedulingType, input.Timeslots, input.Invited)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(schedule)
}
