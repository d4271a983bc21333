package services

import (
	"errors"
	"fmt"

	"github.com/ka4a/talentai-sub000/internal/models"
	"gorm.io/gorm"
)

// VisibilityEngine turns (access, resource type) into a scoped query. It is
// stateless and recomputes on every call: the relationship graph underneath
// can change between requests, so nothing is cached.
type VisibilityEngine struct {
	database *gorm.DB
}

func NewVisibilityEngine(database *gorm.DB) *VisibilityEngine {
	return &VisibilityEngine{database: database}
}

// Candidates scopes the default candidate collection, which excludes
// archived rows.
func (engine *VisibilityEngine) Candidates(access Access) *gorm.DB {
	return access.ApplyCandidatesFilter(
		engine.database.Model(&models.Candidate{}).Where("candidates.archived = ?", false),
	)
}

// AllCandidates includes archived candidates.
func (engine *VisibilityEngine) AllCandidates(access Access) *gorm.DB {
	return access.ApplyCandidatesFilter(engine.database.Model(&models.Candidate{}))
}

func (engine *VisibilityEngine) OwnCandidates(access Access) *gorm.DB {
	return access.ApplyOwnCandidatesFilter(
		engine.database.Model(&models.Candidate{}).Where("candidates.archived = ?", false),
	)
}

func (engine *VisibilityEngine) Jobs(access Access) *gorm.DB {
	return access.ApplyJobsFilter(engine.database.Model(&models.Job{}))
}

func (engine *VisibilityEngine) JobFiles(access Access) *gorm.DB {
	return access.ApplyJobFilesFilter(engine.database.Model(&models.JobFile{}))
}

func (engine *VisibilityEngine) Proposals(access Access) *gorm.DB {
	return access.ApplyProposalsFilter(engine.database.Model(&models.Proposal{}))
}

func (engine *VisibilityEngine) Contracts(access Access) *gorm.DB {
	return access.ContractsFilter()(engine.database.Model(&models.Contract{}))
}

// VisibleJob loads one job within the actor's scope. A job outside the scope
// is indistinguishable from a missing one.
func (engine *VisibilityEngine) VisibleJob(access Access, jobID uint) (models.Job, error) {
	var job models.Job
	err := access.ApplyJobsFilter(engine.database.Model(&models.Job{})).
		Where("jobs.id = ?", jobID).
		First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Job{}, fmt.Errorf("job %d: %w", jobID, ErrNotFound)
	}
	if err != nil {
		return models.Job{}, err
	}
	return job, nil
}

func (engine *VisibilityEngine) VisibleCandidate(access Access, candidateID uint) (models.Candidate, error) {
	var candidate models.Candidate
	err := access.ApplyCandidatesFilter(engine.database.Model(&models.Candidate{})).
		Where("candidates.id = ?", candidateID).
		First(&candidate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Candidate{}, fmt.Errorf("candidate %d: %w", candidateID, ErrNotFound)
	}
	if err != nil {
		return models.Candidate{}, err
	}
	return candidate, nil
}

func (engine *VisibilityEngine) VisibleProposal(access Access, proposalID uint) (models.Proposal, error) {
	var proposal models.Proposal
	err := access.ApplyProposalsFilter(engine.database.Model(&models.Proposal{})).
		Where("proposals.id = ?", proposalID).
		Preload("Status").
		Preload("Job").
		First(&proposal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Proposal{}, fmt.Errorf("proposal %d: %w", proposalID, ErrNotFound)
	}
	if err != nil {
		return models.Proposal{}, err
	}
	return proposal, nil
}
