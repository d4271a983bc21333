package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ka4a/talentai-sub000/internal/db"
	"github.com/ka4a/talentai-sub000/internal/services"
	"gorm.io/gorm"
)

const (
	contextUserKey    = "current_user"
	contextProfileKey = "current_profile"
	contextAccessKey  = "current_access"
)

type Handler struct {
	db        *gorm.DB
	secretKey []byte

	repositories *db.Repositories
	resolver     *services.ProfileResolver
	engine       *services.VisibilityEngine
	notifier     services.NotificationSink
	exchange     services.ExchangeRates

	authService         *services.AuthService
	organizationService *services.OrganizationService
	contractService     *services.ContractService
	jobService          *services.JobService
	candidateService    *services.CandidateService
	proposalService     *services.ProposalService
	pipelineService     *services.PipelineService
}

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

func currentProfile(c *fiber.Ctx) (services.Profile, bool) {
	profile, ok := c.Locals(contextProfileKey).(services.Profile)
	return profile, ok
}

func currentAccess(c *fiber.Ctx) (services.Access, bool) {
	access, ok := c.Locals(contextAccessKey).(services.Access)
	return access, ok
}
