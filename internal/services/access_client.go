package services

import (
	"github.com/ka4a/talentai-sub000/internal/models"
	"gorm.io/gorm"
)

// clientOrgAccess carries the org-wide visibility shared by client
// administrators and internal recruiters: every job the client owns, every
// candidate the client owns or that was proposed to one of its jobs.
type clientOrgAccess struct {
	database *gorm.DB
	client   models.Client
	user     models.User
}

type ClientAdministratorAccess struct {
	clientOrgAccess
}

type ClientInternalRecruiterAccess struct {
	clientOrgAccess
}

func NewClientAdministratorAccess(database *gorm.DB, client models.Client, user models.User) ClientAdministratorAccess {
	return ClientAdministratorAccess{clientOrgAccess{database: database, client: client, user: user}}
}

func NewClientInternalRecruiterAccess(database *gorm.DB, client models.Client, user models.User) ClientInternalRecruiterAccess {
	return ClientInternalRecruiterAccess{clientOrgAccess{database: database, client: client, user: user}}
}

func (access clientOrgAccess) Org() models.OrgRef {
	return access.client.Ref()
}

func (access clientOrgAccess) orgJobIDs() *gorm.DB {
	return access.database.Model(&models.Job{}).
		Select("jobs.id").
		Where("jobs.org_kind = ? AND jobs.org_id = ?", models.OrgKindClient, access.client.ID)
}

func (access clientOrgAccess) ApplyJobsFilter(query *gorm.DB) *gorm.DB {
	return query.Where("jobs.org_kind = ? AND jobs.org_id = ?", models.OrgKindClient, access.client.ID)
}

func (access clientOrgAccess) ApplyJobFilesFilter(query *gorm.DB) *gorm.DB {
	return filterJobFilesThroughJobs(query, access.orgJobIDs())
}

func (access clientOrgAccess) ApplyCandidatesFilter(query *gorm.DB) *gorm.DB {
	proposedCandidateIDs := access.database.Model(&models.Proposal{}).
		Select("proposals.candidate_id").
		Where("proposals.job_id IN (?)", access.orgJobIDs())

	return query.Where(
		"(candidates.org_kind = ? AND candidates.org_id = ?) OR candidates.id IN (?)",
		models.OrgKindClient, access.client.ID, proposedCandidateIDs,
	)
}

func (access clientOrgAccess) ApplyOwnCandidatesFilter(query *gorm.DB) *gorm.DB {
	return query.Where("candidates.org_kind = ? AND candidates.org_id = ?", models.OrgKindClient, access.client.ID)
}

func (access clientOrgAccess) ApplyProposalsFilter(query *gorm.DB) *gorm.DB {
	return query.Where("proposals.job_id IN (?)", access.orgJobIDs())
}

func (access clientOrgAccess) ContractsFilter() Predicate {
	clientID := access.client.ID
	return func(query *gorm.DB) *gorm.DB {
		return query.Where("contracts.client_id = ?", clientID)
	}
}

// Client-side roles never propose candidates; sourcing is the agency side's
// job.
func (access clientOrgAccess) CanCreateProposal(models.Job, models.Candidate) (bool, error) {
	return false, nil
}

func (access clientOrgAccess) CanCreateJobFile(job models.Job) (bool, error) {
	return job.Org == access.client.Ref(), nil
}

// ClientStandardUserAccess is manager-scoped: only jobs the user is assigned
// to manage, and only candidates reaching those jobs through a proposal.
type ClientStandardUserAccess struct {
	database *gorm.DB
	client   models.Client
	user     models.User
}

func NewClientStandardUserAccess(database *gorm.DB, client models.Client, user models.User) ClientStandardUserAccess {
	return ClientStandardUserAccess{database: database, client: client, user: user}
}

func (access ClientStandardUserAccess) Org() models.OrgRef {
	return access.client.Ref()
}

func (access ClientStandardUserAccess) managedJobIDs() *gorm.DB {
	return access.database.Model(&models.JobManager{}).
		Select("job_managers.job_id").
		Where("job_managers.user_id = ?", access.user.ID)
}

func (access ClientStandardUserAccess) ApplyJobsFilter(query *gorm.DB) *gorm.DB {
	return query.Where("jobs.id IN (?)", access.managedJobIDs())
}

func (access ClientStandardUserAccess) ApplyJobFilesFilter(query *gorm.DB) *gorm.DB {
	return filterJobFilesThroughJobs(query, access.managedJobIDs())
}

func (access ClientStandardUserAccess) ApplyCandidatesFilter(query *gorm.DB) *gorm.DB {
	proposedCandidateIDs := access.database.Model(&models.Proposal{}).
		Select("proposals.candidate_id").
		Where("proposals.job_id IN (?)", access.managedJobIDs())

	return query.Where("candidates.id IN (?)", proposedCandidateIDs)
}

func (access ClientStandardUserAccess) ApplyOwnCandidatesFilter(query *gorm.DB) *gorm.DB {
	return query.Where("candidates.org_kind = ? AND candidates.org_id = ?", models.OrgKindClient, access.client.ID)
}

func (access ClientStandardUserAccess) ApplyProposalsFilter(query *gorm.DB) *gorm.DB {
	return query.Where("proposals.job_id IN (?)", access.managedJobIDs())
}

func (access ClientStandardUserAccess) ContractsFilter() Predicate {
	clientID := access.client.ID
	return func(query *gorm.DB) *gorm.DB {
		return query.Where("contracts.client_id = ?", clientID)
	}
}

func (access ClientStandardUserAccess) CanCreateProposal(models.Job, models.Candidate) (bool, error) {
	return false, nil
}

func (access ClientStandardUserAccess) CanCreateJobFile(job models.Job) (bool, error) {
	var matched int64
	err := access.database.Model(&models.JobManager{}).
		Where("job_id = ? AND user_id = ?", job.ID, access.user.ID).
		Count(&matched).Error
	if err != nil {
		return false, err
	}
	return matched > 0, nil
}
