package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetPipeline aggregates the agency's in-flight proposals into the deal
// pipeline summary. Only agency-side actors have a pipeline.
func (handler *Handler) GetPipeline(c *fiber.Ctx) error {
	profile, _ := currentProfile(c)
	access, _ := currentAccess(c)
	if profile.Agency == nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
	}

	var statusLastUpdatedBy *uint
	if submitterID := c.QueryInt("status_last_updated_by"); submitterID > 0 {
		id := uint(submitterID)
		statusLastUpdatedBy = &id
	}

	summary, err := handler.pipelineService.Summary(access, *profile.Agency, statusLastUpdatedBy, time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
