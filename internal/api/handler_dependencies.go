package api

import (
	"github.com/ka4a/talentai-sub000/internal/db"
	"github.com/ka4a/talentai-sub000/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) (*Handler, error) {
	seeder, err := services.NewCatalogSeeder()
	if err != nil {
		return nil, err
	}

	handler.repositories = db.NewRepositories(database)
	handler.resolver = services.NewProfileResolver(database)
	handler.engine = services.NewVisibilityEngine(database)
	if handler.notifier == nil {
		handler.notifier = services.NewLogNotificationSink()
	}
	if handler.exchange == nil {
		handler.exchange = services.NewStaticExchangeRates("JPY", nil)
	}

	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.organizationService = services.NewOrganizationService(database, handler.repositories.Organizations, seeder)
	handler.contractService = services.NewContractService(handler.repositories.Contracts, handler.notifier)
	handler.jobService = services.NewJobService(database, handler.repositories.Jobs, handler.engine, handler.notifier)
	handler.candidateService = services.NewCandidateService(handler.repositories.Candidates, handler.engine)
	handler.proposalService = services.NewProposalService(database, handler.engine, handler.notifier)
	handler.pipelineService = services.NewPipelineService(handler.engine, handler.exchange)
	return handler, nil
}
