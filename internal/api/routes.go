package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	organizations := api.Group("/organizations")
	organizations.Post("/clients", handler.CreateClient)
	organizations.Post("/agencies", handler.CreateAgency)
	organizations.Post("/roles", handler.AssignRole)
	organizations.Delete("/clients/:id", handler.DeleteClient)
	organizations.Delete("/agencies/:id", handler.DeleteAgency)

	contracts := api.Group("/contracts")
	contracts.Post("/accept-invitation", handler.AcceptInvitation)
	contracts.Get("", handler.AuthRequired, handler.ListContracts)
	contracts.Post("", handler.AuthRequired, handler.CreateContract)
	contracts.Post("/:id/invite", handler.AuthRequired, handler.InviteAgency)
	contracts.Post("/:id/sign", handler.AuthRequired, handler.SignContract)

	jobs := api.Group("/jobs", handler.AuthRequired)
	jobs.Get("", handler.ListJobs)
	jobs.Post("", handler.CreateJob)
	jobs.Get("/files", handler.ListJobFiles)
	jobs.Get("/:id", handler.GetJob)
	jobs.Put("/:id/agencies", handler.SetJobAgencies)
	jobs.Put("/:id/managers", handler.AssignJobManagers)
	jobs.Put("/:id/members", handler.AssignJobMembers)
	jobs.Post("/:id/publish", handler.PublishJob)
	jobs.Post("/:id/unpublish", handler.UnpublishJob)
	jobs.Post("/:id/files", handler.CreateJobFile)
	jobs.Post("/:id/import-longlist", handler.ImportLonglist)

	candidates := api.Group("/candidates", handler.AuthRequired)
	candidates.Get("", handler.ListCandidates)
	candidates.Post("", handler.CreateCandidate)
	candidates.Get("/:id", handler.GetCandidate)
	candidates.Post("/:id/archive", handler.ArchiveCandidate)
	candidates.Post("/:id/restore", handler.RestoreCandidate)
	candidates.Post("/:id/notes", handler.AddCandidateNote)

	proposals := api.Group("/proposals", handler.AuthRequired)
	proposals.Get("", handler.ListProposals)
	proposals.Post("", handler.CreateProposal)
	proposals.Put("/:id/status", handler.ChangeProposalStatus)
	proposals.Post("/:id/decline-others", handler.DeclineOtherProposals)
	proposals.Post("/:id/move", handler.MoveProposal)
	proposals.Delete("/:id", handler.DeleteProposal)
	proposals.Post("/:id/interviews", handler.CreateInterview)

	interviews := api.Group("/interviews", handler.AuthRequired)
	interviews.Post("/:id/schedule", handler.ScheduleInterview)

	pipeline := api.Group("/pipeline", handler.AuthRequired)
	pipeline.Get("", handler.GetPipeline)
}
