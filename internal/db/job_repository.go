package db

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ka4a/talentai-sub000/internal/models"
	"gorm.io/gorm"
)

type JobRepository struct {
	database *gorm.DB
}

func NewJobRepository(database *gorm.DB) *JobRepository {
	return &JobRepository{database: database}
}

func (repo *JobRepository) FindByID(jobID uint) (models.Job, error) {
	var job models.Job
	if err := repo.database.First(&job, jobID).Error; err != nil {
		return models.Job{}, err
	}
	return job, nil
}

func (repo *JobRepository) Create(job *models.Job) error {
	return repo.database.Create(job).Error
}

func (repo *JobRepository) Save(job *models.Job) error {
	return repo.database.Save(job).Error
}

// ReplaceAgencies applies set-replace semantics to a job's agency
// assignments: rows for agencies missing from the new set are deactivated
// (never deleted), rows for agencies in the set are created or reactivated.
func (repo *JobRepository) ReplaceAgencies(jobID uint, agencyIDs []uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		keep := make(map[uint]struct{}, len(agencyIDs))
		for _, agencyID := range agencyIDs {
			keep[agencyID] = struct{}{}
		}

		var existing []models.JobAgencyContract
		if err := tx.Where("job_id = ?", jobID).Find(&existing).Error; err != nil {
			return err
		}

		known := make(map[uint]models.JobAgencyContract, len(existing))
		for _, row := range existing {
			known[row.AgencyID] = row
		}

		for _, row := range existing {
			_, keepRow := keep[row.AgencyID]
			if row.IsActive == keepRow {
				continue
			}
			if err := tx.Model(&models.JobAgencyContract{}).
				Where("id = ?", row.ID).
				Update("is_active", keepRow).Error; err != nil {
				return err
			}
		}

		for _, agencyID := range agencyIDs {
			if _, exists := known[agencyID]; exists {
				continue
			}
			row := models.JobAgencyContract{JobID: jobID, AgencyID: agencyID, IsActive: true}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (repo *JobRepository) HasActiveAgencyContract(jobID uint, agencyID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.JobAgencyContract{}).
		Where("job_id = ? AND agency_id = ? AND is_active = ?", jobID, agencyID, true).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *JobRepository) IsAssignedMember(jobID uint, userID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.JobMember{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *JobRepository) ReplaceManagers(jobID uint, userIDs []uint) error {
	return replaceAssignments(repo.database, jobID, userIDs, func(userID uint) any {
		return &models.JobManager{JobID: jobID, UserID: userID}
	}, &models.JobManager{})
}

func (repo *JobRepository) ReplaceMembers(jobID uint, userIDs []uint) error {
	return replaceAssignments(repo.database, jobID, userIDs, func(userID uint) any {
		return &models.JobMember{JobID: jobID, UserID: userID}
	}, &models.JobMember{})
}

func replaceAssignments(database *gorm.DB, jobID uint, userIDs []uint, build func(userID uint) any, model any) error {
	return database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", jobID).Delete(model).Error; err != nil {
			return err
		}
		for _, userID := range userIDs {
			if err := tx.Create(build(userID)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// EnsurePosting returns the job's private posting, creating one with a fresh
// uuid when the job is published for the first time.
func (repo *JobRepository) EnsurePosting(jobID uint) (models.PrivateJobPosting, error) {
	var posting models.PrivateJobPosting
	err := repo.database.Where("job_id = ?", jobID).First(&posting).Error
	if err == nil {
		return posting, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.PrivateJobPosting{}, err
	}

	posting = models.PrivateJobPosting{
		JobID:      jobID,
		PublicUUID: uuid.New(),
		CreatedAt:  time.Now(),
	}
	if err := repo.database.Create(&posting).Error; err != nil {
		return models.PrivateJobPosting{}, err
	}
	return posting, nil
}

func (repo *JobRepository) CreateFile(file *models.JobFile) error {
	return repo.database.Create(file).Error
}
