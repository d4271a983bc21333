package services

import (
	"fmt"
	"time"

	"github.com/ka4a/talentai-sub000/internal/db"
	"github.com/ka4a/talentai-sub000/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	database *gorm.DB
	jobs     *db.JobRepository
	engine   *VisibilityEngine
	notifier NotificationSink
}

func NewJobService(database *gorm.DB, jobs *db.JobRepository, engine *VisibilityEngine, notifier NotificationSink) *JobService {
	return &JobService{database: database, jobs: jobs, engine: engine, notifier: notifier}
}

func (service *JobService) Create(org models.OrgRef, clientID uint, ownerID uint, title string, openingsCount int) (models.Job, error) {
	if openingsCount < 1 {
		openingsCount = 1
	}
	job := models.Job{
		Org:           org,
		ClientID:      clientID,
		OwnerID:       ownerID,
		Title:         title,
		Status:        models.JobStatusDraft,
		OpeningsCount: openingsCount,
	}
	if err := service.jobs.Create(&job); err != nil {
		return models.Job{}, err
	}
	return job, nil
}

// SetAgencies replaces the job's agency set. Every agency must hold an
// org-level contract with the job's client that is neither rejected nor
// expired; prior assignments outside the new set are deactivated, not
// deleted.
func (service *JobService) SetAgencies(actor models.User, jobID uint, agencyIDs []uint) error {
	job, err := service.jobs.FindByID(jobID)
	if err != nil {
		return fmt.Errorf("job %d: %w", jobID, ErrNotFound)
	}

	for _, agencyID := range agencyIDs {
		var matched int64
		err := service.database.Model(&models.Contract{}).
			Where("agency_id = ? AND client_id = ? AND status NOT IN ?",
				agencyID, job.ClientID,
				[]string{models.ContractStatusRejected, models.ContractStatusExpired}).
			Count(&matched).Error
		if err != nil {
			return err
		}
		if matched == 0 {
			return fmt.Errorf("agency %d has no contract with client %d: %w",
				agencyID, job.ClientID, ErrAuthorizationDenied)
		}
	}

	if err := service.jobs.ReplaceAgencies(jobID, agencyIDs); err != nil {
		return err
	}

	for _, agencyID := range agencyIDs {
		service.notifier.Send(agencyID, EventJobAgenciesChanged, actor.ID,
			fmt.Sprintf("job:%d", jobID), nil)
	}
	return nil
}

// AssignManagers replaces the client-side managers of a job. Only users
// holding a role at the job's client qualify.
func (service *JobService) AssignManagers(jobID uint, userIDs []uint) error {
	job, err := service.jobs.FindByID(jobID)
	if err != nil {
		return fmt.Errorf("job %d: %w", jobID, ErrNotFound)
	}

	for _, userID := range userIDs {
		clientID, found, err := service.userClientID(userID)
		if err != nil {
			return err
		}
		if !found || clientID != job.ClientID {
			return fmt.Errorf("user %d holds no role at client %d: %w", userID, job.ClientID, ErrAuthorizationDenied)
		}
	}

	return service.jobs.ReplaceManagers(jobID, userIDs)
}

// AssignMembers replaces the agency-side members working a job. A member's
// agency must hold an active JobAgencyContract on the job, which keeps every
// recruiter's job set inside their agency's job set.
func (service *JobService) AssignMembers(jobID uint, userIDs []uint) error {
	for _, userID := range userIDs {
		agencyID, found, err := service.userAgencyID(userID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("user %d holds no agency role: %w", userID, ErrAuthorizationDenied)
		}

		active, err := service.jobs.HasActiveAgencyContract(jobID, agencyID)
		if err != nil {
			return err
		}
		if !active {
			return fmt.Errorf("agency %d is not assigned to job %d: %w", agencyID, jobID, ErrAuthorizationDenied)
		}
	}

	return service.jobs.ReplaceMembers(jobID, userIDs)
}

// Publish opens the job to applications and ensures its private posting
// carries a public uuid.
func (service *JobService) Publish(jobID uint, public bool) (models.PrivateJobPosting, error) {
	job, err := service.jobs.FindByID(jobID)
	if err != nil {
		return models.PrivateJobPosting{}, fmt.Errorf("job %d: %w", jobID, ErrNotFound)
	}

	job.Published = true
	job.Public = public
	if job.Status == models.JobStatusDraft {
		job.Status = models.JobStatusOpen
	}
	if err := service.jobs.Save(&job); err != nil {
		return models.PrivateJobPosting{}, err
	}

	return service.jobs.EnsurePosting(jobID)
}

func (service *JobService) Unpublish(jobID uint) error {
	job, err := service.jobs.FindByID(jobID)
	if err != nil {
		return fmt.Errorf("job %d: %w", jobID, ErrNotFound)
	}
	job.Published = false
	job.Public = false
	return service.jobs.Save(&job)
}

// CreateFile attaches a file record to a job the actor can see and is
// allowed to attach to.
func (service *JobService) CreateFile(access Access, actor models.User, jobID uint, name string, contentType string) (models.JobFile, error) {
	job, err := service.engine.VisibleJob(access, jobID)
	if err != nil {
		return models.JobFile{}, err
	}

	allowed, err := access.CanCreateJobFile(job)
	if err != nil {
		return models.JobFile{}, err
	}
	if !allowed {
		return models.JobFile{}, fmt.Errorf("job file on job %d: %w", jobID, ErrAuthorizationDenied)
	}

	file := models.JobFile{
		JobID:       job.ID,
		UploadedBy:  actor.ID,
		Name:        name,
		ContentType: contentType,
		CreatedAt:   time.Now(),
	}
	if err := service.jobs.CreateFile(&file); err != nil {
		return models.JobFile{}, err
	}
	return file, nil
}

func (service *JobService) userClientID(userID uint) (uint, bool, error) {
	roleModels := []any{
		&models.ClientAdministrator{},
		&models.ClientInternalRecruiter{},
		&models.ClientStandardUser{},
	}
	for _, roleModel := range roleModels {
		var ids []uint
		if err := service.database.Model(roleModel).Where("user_id = ?", userID).Pluck("client_id", &ids).Error; err != nil {
			return 0, false, err
		}
		if len(ids) > 0 {
			return ids[0], true, nil
		}
	}
	return 0, false, nil
}

func (service *JobService) userAgencyID(userID uint) (uint, bool, error) {
	roleModels := []any{
		&models.AgencyAdministrator{},
		&models.AgencyManager{},
		&models.Recruiter{},
	}
	for _, roleModel := range roleModels {
		var ids []uint
		if err := service.database.Model(roleModel).Where("user_id = ?", userID).Pluck("agency_id", &ids).Error; err != nil {
			return 0, false, err
		}
		if len(ids) > 0 {
			return ids[0], true, nil
		}
	}
	return 0, false, nil
}
