package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ka4a/talentai-sub000/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProposalService runs the proposal lifecycle: creation, status and stage
// transitions, the decline sweep on hires, job moves, and longlist imports.
// Every multi-row mutation runs in a single transaction.
type ProposalService struct {
	database *gorm.DB
	engine   *VisibilityEngine
	notifier NotificationSink
}

func NewProposalService(database *gorm.DB, engine *VisibilityEngine, notifier NotificationSink) *ProposalService {
	return &ProposalService{database: database, engine: engine, notifier: notifier}
}

// Create associates a candidate with a job. The status defaults to the job
// organization's default for the requested stage when none is supplied.
func (service *ProposalService) Create(access Access, actor models.User, jobID uint, candidateID uint, stage string, statusID *uint) (models.Proposal, error) {
	if stage != models.StageLonglist && stage != models.StageShortlist {
		return models.Proposal{}, &InvalidTransitionError{
			Rule:   "unknown_stage",
			Detail: fmt.Sprintf("stage %q", stage),
		}
	}

	job, err := service.engine.VisibleJob(access, jobID)
	if err != nil {
		return models.Proposal{}, err
	}
	candidate, err := service.engine.VisibleCandidate(access, candidateID)
	if err != nil {
		return models.Proposal{}, err
	}

	allowed, err := access.CanCreateProposal(job, candidate)
	if err != nil {
		return models.Proposal{}, err
	}
	if !allowed {
		return models.Proposal{}, fmt.Errorf("propose candidate %d for job %d: %w", candidateID, jobID, ErrAuthorizationDenied)
	}

	var proposal models.Proposal
	err = service.database.Transaction(func(tx *gorm.DB) error {
		var duplicates int64
		if err := tx.Model(&models.Proposal{}).
			Where("job_id = ? AND candidate_id = ?", job.ID, candidate.ID).
			Count(&duplicates).Error; err != nil {
			return err
		}
		if duplicates > 0 {
			return &IntegrityConflictError{
				Constraint: "uidx_proposal_job_candidate",
				Detail:     fmt.Sprintf("candidate %d already proposed for job %d", candidate.ID, job.ID),
			}
		}

		status, err := service.resolveCreationStatus(tx, job.Org, stage, statusID)
		if err != nil {
			return err
		}

		now := time.Now()
		proposal = models.Proposal{
			JobID:                 job.ID,
			CandidateID:           candidate.ID,
			StatusID:              status.ID,
			Stage:                 stage,
			CreatedByID:           actor.ID,
			ListedAt:              now,
			StatusLastUpdatedByID: &actor.ID,
		}
		if stage == models.StageLonglist {
			proposal.LonglistedByID = &actor.ID
		} else {
			proposal.ShortlistedByID = &actor.ID
		}

		return tx.Create(&proposal).Error
	})
	if err != nil {
		return models.Proposal{}, err
	}

	service.notifier.Send(job.OwnerID, EventProposalCreated, actor.ID,
		fmt.Sprintf("proposal:%d", proposal.ID),
		map[string]string{"job": job.Title})
	return proposal, nil
}

func (service *ProposalService) resolveCreationStatus(tx *gorm.DB, org models.OrgRef, stage string, statusID *uint) (models.ProposalStatus, error) {
	if statusID != nil {
		var status models.ProposalStatus
		err := tx.First(&status, *statusID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ProposalStatus{}, fmt.Errorf("status %d: %w", *statusID, ErrNotFound)
		}
		if err != nil {
			return models.ProposalStatus{}, err
		}
		if status.Org != org {
			return models.ProposalStatus{}, &InvalidTransitionError{
				Rule:   RuleCrossOrgStatus,
				Detail: fmt.Sprintf("status %d belongs to another organization", status.ID),
			}
		}
		return status, nil
	}

	statusStage := models.StatusStageAssociated
	if stage == models.StageShortlist {
		statusStage = models.StatusStageSubmissions
	}
	return defaultStatusFor(tx, org, statusStage)
}

func defaultStatusFor(tx *gorm.DB, org models.OrgRef, statusStage models.StatusStage) (models.ProposalStatus, error) {
	var status models.ProposalStatus
	err := tx.
		Where("org_kind = ? AND org_id = ? AND stage = ? AND is_default = ?",
			org.Kind, org.ID, statusStage, true).
		Order("default_order ASC").
		First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ProposalStatus{}, fmt.Errorf("no default %s status seeded for %s %d", statusStage, org.Kind, org.ID)
	}
	if err != nil {
		return models.ProposalStatus{}, err
	}
	return status, nil
}

// ChangeStatus assigns a new catalog status. Any status from the catalog of
// the proposal's own organization (the job's owner) is legal; cross-org
// statuses are rejected. The stage follows the status, and the
// longlisted_by/shortlisted_by pairing follows the stage.
func (service *ProposalService) ChangeStatus(access Access, actor models.User, proposalID uint, statusID uint) (models.Proposal, error) {
	proposal, err := service.engine.VisibleProposal(access, proposalID)
	if err != nil {
		return models.Proposal{}, err
	}

	var status models.ProposalStatus
	err = service.database.First(&status, statusID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Proposal{}, fmt.Errorf("status %d: %w", statusID, ErrNotFound)
	}
	if err != nil {
		return models.Proposal{}, err
	}
	if status.Org != proposal.Job.Org {
		return models.Proposal{}, &InvalidTransitionError{
			Rule:   RuleCrossOrgStatus,
			Detail: fmt.Sprintf("status %d belongs to another organization", status.ID),
		}
	}

	newStage := status.Stage.ProposalStage()
	updates := map[string]any{
		"status_id":                 status.ID,
		"stage":                     newStage,
		"status_last_updated_by_id": actor.ID,
		"is_rejected":               status.Group == models.GroupRejected,
	}
	if newStage == models.StageShortlist {
		shortlistedBy := actor.ID
		if proposal.ShortlistedByID != nil {
			shortlistedBy = *proposal.ShortlistedByID
		}
		updates["shortlisted_by_id"] = shortlistedBy
		updates["longlisted_by_id"] = nil
	} else {
		longlistedBy := actor.ID
		if proposal.LonglistedByID != nil {
			longlistedBy = *proposal.LonglistedByID
		}
		updates["longlisted_by_id"] = longlistedBy
		updates["shortlisted_by_id"] = nil
	}

	err = service.database.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Proposal{}).Where("id = ?", proposal.ID).Updates(updates).Error
	})
	if err != nil {
		return models.Proposal{}, err
	}

	service.notifier.Send(proposal.Job.OwnerID, EventProposalStatusChanged, actor.ID,
		fmt.Sprintf("proposal:%d", proposal.ID),
		map[string]string{"status": status.Name})

	return service.engine.VisibleProposal(access, proposal.ID)
}

// DeclineSameCandidateProposals marks every other proposal of the hired
// candidate rejected, across all jobs, in one sweep. The proposal itself
// must already sit in the pending-start group; it is excluded from the
// sweep. Callers invoke this explicitly after a hire.
func (service *ProposalService) DeclineSameCandidateProposals(access Access, actor models.User, proposalID uint) (int64, error) {
	proposal, err := service.engine.VisibleProposal(access, proposalID)
	if err != nil {
		return 0, err
	}
	if proposal.Status.Group != models.GroupPendingStart {
		return 0, &InvalidTransitionError{
			Rule:   RuleNotPendingStart,
			Detail: fmt.Sprintf("proposal %d is in group %s", proposal.ID, proposal.Status.Group),
		}
	}

	var declined int64
	err = service.database.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Proposal{}).
			Where("candidate_id = ? AND id <> ? AND is_rejected = ?", proposal.CandidateID, proposal.ID, false).
			Updates(map[string]any{"is_rejected": true, "status_last_updated_by_id": actor.ID})
		declined = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return 0, err
	}

	if declined > 0 {
		service.notifier.Send(proposal.Job.OwnerID, EventProposalDeclined, actor.ID,
			fmt.Sprintf("candidate:%d", proposal.CandidateID),
			map[string]string{"declined": fmt.Sprintf("%d", declined)})
	}
	return declined, nil
}

// MoveToJob transfers a proposal to another job of the same organization,
// recording where it came from and who moved it.
func (service *ProposalService) MoveToJob(access Access, actor models.User, proposalID uint, targetJobID uint) (models.Proposal, error) {
	proposal, err := service.engine.VisibleProposal(access, proposalID)
	if err != nil {
		return models.Proposal{}, err
	}

	if targetJobID == proposal.JobID {
		return models.Proposal{}, &InvalidTransitionError{
			Rule:   RuleSameJobMove,
			Detail: fmt.Sprintf("proposal %d already belongs to job %d", proposal.ID, targetJobID),
		}
	}

	targetJob, err := service.engine.VisibleJob(access, targetJobID)
	if err != nil {
		return models.Proposal{}, err
	}
	if targetJob.Org != proposal.Job.Org {
		return models.Proposal{}, &InvalidTransitionError{
			Rule:   RuleCrossOrgTargetJob,
			Detail: fmt.Sprintf("job %d belongs to another organization", targetJob.ID),
		}
	}

	err = service.database.Transaction(func(tx *gorm.DB) error {
		var duplicates int64
		if err := tx.Model(&models.Proposal{}).
			Where("job_id = ? AND candidate_id = ?", targetJob.ID, proposal.CandidateID).
			Count(&duplicates).Error; err != nil {
			return err
		}
		if duplicates > 0 {
			return &InvalidTransitionError{
				Rule:   RuleDuplicateJobCandidate,
				Detail: fmt.Sprintf("candidate %d already proposed for job %d", proposal.CandidateID, targetJob.ID),
			}
		}

		return tx.Model(&models.Proposal{}).Where("id = ?", proposal.ID).Updates(map[string]any{
			"job_id":            targetJob.ID,
			"moved_from_job_id": proposal.JobID,
			"moved_by_id":       actor.ID,
		}).Error
	})
	if err != nil {
		return models.Proposal{}, err
	}

	service.notifier.Send(targetJob.OwnerID, EventProposalMoved, actor.ID,
		fmt.Sprintf("proposal:%d", proposal.ID),
		map[string]string{"from_job": fmt.Sprintf("%d", proposal.JobID), "to_job": fmt.Sprintf("%d", targetJob.ID)})

	return service.engine.VisibleProposal(access, proposal.ID)
}

// ImportLonglist copies the source job's longlist onto the target job.
// Candidates already proposed to the target are skipped, so re-imports are
// no-ops rather than errors. Returns how many proposals were created.
func (service *ProposalService) ImportLonglist(access Access, actor models.User, sourceJobID uint, targetJobID uint) (int, error) {
	sourceJob, err := service.engine.VisibleJob(access, sourceJobID)
	if err != nil {
		return 0, err
	}
	targetJob, err := service.engine.VisibleJob(access, targetJobID)
	if err != nil {
		return 0, err
	}
	if sourceJob.Org != targetJob.Org {
		return 0, &InvalidTransitionError{
			Rule:   RuleCrossOrgTargetJob,
			Detail: fmt.Sprintf("job %d belongs to another organization", targetJob.ID),
		}
	}

	imported := 0
	err = service.database.Transaction(func(tx *gorm.DB) error {
		var existingCandidateIDs []uint
		if err := tx.Model(&models.Proposal{}).
			Where("job_id = ?", targetJob.ID).
			Pluck("candidate_id", &existingCandidateIDs).Error; err != nil {
			return err
		}
		existing := make(map[uint]struct{}, len(existingCandidateIDs))
		for _, candidateID := range existingCandidateIDs {
			existing[candidateID] = struct{}{}
		}

		var sourceProposals []models.Proposal
		if err := tx.
			Where("job_id = ? AND stage = ?", sourceJob.ID, models.StageLonglist).
			Find(&sourceProposals).Error; err != nil {
			return err
		}

		now := time.Now()
		for _, source := range sourceProposals {
			if _, alreadyProposed := existing[source.CandidateID]; alreadyProposed {
				continue
			}

			copied := models.Proposal{
				JobID:                 targetJob.ID,
				CandidateID:           source.CandidateID,
				StatusID:              source.StatusID,
				Stage:                 models.StageLonglist,
				LonglistedByID:        &actor.ID,
				CreatedByID:           actor.ID,
				ListedAt:              now,
				StatusLastUpdatedByID: &actor.ID,
			}
			if err := tx.Create(&copied).Error; err != nil {
				return err
			}
			imported++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return imported, nil
}

// Delete removes a proposal. Only longlist proposals are hard-deletable;
// once shortlisted a proposal is terminated by rejection or hire instead.
func (service *ProposalService) Delete(access Access, proposalID uint) error {
	proposal, err := service.engine.VisibleProposal(access, proposalID)
	if err != nil {
		return err
	}
	if proposal.Stage == models.StageShortlist {
		return &InvalidTransitionError{
			Rule:   RuleShortlistedDelete,
			Detail: fmt.Sprintf("proposal %d is shortlisted", proposal.ID),
		}
	}
	return service.database.Delete(&models.Proposal{}, proposal.ID).Error
}

// CreateInterview appends an interview round to a proposal.
func (service *ProposalService) CreateInterview(access Access, proposalID uint, interviewerID *uint) (models.ProposalInterview, error) {
	proposal, err := service.engine.VisibleProposal(access, proposalID)
	if err != nil {
		return models.ProposalInterview{}, err
	}

	var rounds int64
	if err := service.database.Model(&models.ProposalInterview{}).
		Where("proposal_id = ?", proposal.ID).
		Count(&rounds).Error; err != nil {
		return models.ProposalInterview{}, err
	}

	interview := models.ProposalInterview{
		ProposalID:    proposal.ID,
		InterviewerID: interviewerID,
		Order:         int(rounds) + 1,
		Status:        models.InterviewStatusToBeScheduled,
	}
	if err := service.database.Create(&interview).Error; err != nil {
		return models.ProposalInterview{}, err
	}
	return interview, nil
}

// ScheduleInterview replaces the interview's current schedule. Earlier
// schedules are retired, never deleted, so one row per interview stays
// current.
func (service *ProposalService) ScheduleInterview(access Access, actor models.User, interviewID uint, schedulingType string, timeslots []models.InterviewTimeslot, invited []string) (models.ProposalInterviewSchedule, error) {
	var interview models.ProposalInterview
	err := service.database.First(&interview, interviewID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ProposalInterviewSchedule{}, fmt.Errorf("interview %d: %w", interviewID, ErrNotFound)
	}
	if err != nil {
		return models.ProposalInterviewSchedule{}, err
	}

	proposal, err := service.engine.VisibleProposal(access, interview.ProposalID)
	if err != nil {
		return models.ProposalInterviewSchedule{}, err
	}

	var schedule models.ProposalInterviewSchedule
	err = service.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ProposalInterviewSchedule{}).
			Where("interview_id = ? AND is_current = ?", interview.ID, true).
			Update("is_current", false).Error; err != nil {
			return err
		}

		schedule = models.ProposalInterviewSchedule{
			InterviewID:    interview.ID,
			Status:         "pending",
			SchedulingType: schedulingType,
			Timeslots:      datatypes.NewJSONSlice(timeslots),
			Invited:        datatypes.NewJSONSlice(invited),
			IsCurrent:      true,
			CreatedAt:      time.Now(),
		}
		if err := tx.Create(&schedule).Error; err != nil {
			return err
		}

		return tx.Model(&models.ProposalInterview{}).
			Where("id = ?", interview.ID).
			Update("status", models.InterviewStatusScheduled).Error
	})
	if err != nil {
		return models.ProposalInterviewSchedule{}, err
	}

	service.notifier.Send(proposal.Job.OwnerID, EventInterviewScheduled, actor.ID,
		fmt.Sprintf("interview:%d", interview.ID), nil)
	return schedule, nil
}
