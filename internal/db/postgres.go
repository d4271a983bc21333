package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ka4a/talentai-sub000/internal/models"
)

// OpenPostgres connects to the database named by a postgres DSN and brings
// the schema up to date with AutoMigrate. The sqlite path uses embedded SQL
// migrations instead; Postgres deployments rely on the model tags, including
// the proposal stage check constraint.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := autoMigrate(database); err != nil {
		return nil, fmt.Errorf("auto-migrate postgres schema: %w", err)
	}

	return database, nil
}

func autoMigrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Agency{},
		&models.ClientAdministrator{},
		&models.ClientInternalRecruiter{},
		&models.ClientStandardUser{},
		&models.AgencyAdministrator{},
		&models.AgencyManager{},
		&models.Recruiter{},
		&models.Contract{},
		&models.Job{},
		&models.PrivateJobPosting{},
		&models.JobAgencyContract{},
		&models.JobManager{},
		&models.JobMember{},
		&models.JobFile{},
		&models.Candidate{},
		&models.CandidateNote{},
		&models.ProposalStatus{},
		&models.Proposal{},
		&models.ProposalInterview{},
		&models.ProposalInterviewSchedule{},
	)
}
