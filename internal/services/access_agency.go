package services

import (
	"github.com/ka4a/talentai-sub000/internal/models"
	"gorm.io/gorm"
)

// agencyOrgAccess carries the org-wide visibility of agency administrators
// and managers: every job the agency holds an active JobAgencyContract on,
// candidates the agency owns, proposals on own candidates or created by any
// member of the agency.
type agencyOrgAccess struct {
	database *gorm.DB
	agency   models.Agency
	user     models.User
}

type AgencyAdministratorAccess struct {
	agencyOrgAccess
}

type AgencyManagerAccess struct {
	agencyOrgAccess
}

func NewAgencyAdministratorAccess(database *gorm.DB, agency models.Agency, user models.User) AgencyAdministratorAccess {
	return AgencyAdministratorAccess{agencyOrgAccess{database: database, agency: agency, user: user}}
}

func NewAgencyManagerAccess(database *gorm.DB, agency models.Agency, user models.User) AgencyManagerAccess {
	return AgencyManagerAccess{agencyOrgAccess{database: database, agency: agency, user: user}}
}

func (access agencyOrgAccess) Org() models.OrgRef {
	return access.agency.Ref()
}

func (access agencyOrgAccess) contractedJobIDs() *gorm.DB {
	return access.database.Model(&models.JobAgencyContract{}).
		Select("job_agency_contracts.job_id").
		Where("job_agency_contracts.agency_id = ? AND job_agency_contracts.is_active = ?", access.agency.ID, true)
}

func (access agencyOrgAccess) ownCandidateIDs() *gorm.DB {
	return access.database.Model(&models.Candidate{}).
		Select("candidates.id").
		Where("candidates.org_kind = ? AND candidates.org_id = ?", models.OrgKindAgency, access.agency.ID)
}

func (access agencyOrgAccess) memberUserIDs(roleModel any, table string) *gorm.DB {
	return access.database.Model(roleModel).
		Select(table + ".user_id").
		Where(table+".agency_id = ?", access.agency.ID)
}

func (access agencyOrgAccess) ApplyJobsFilter(query *gorm.DB) *gorm.DB {
	return query.Where("jobs.id IN (?)", access.contractedJobIDs())
}

func (access agencyOrgAccess) ApplyJobFilesFilter(query *gorm.DB) *gorm.DB {
	return filterJobFilesThroughJobs(query, access.contractedJobIDs())
}

func (access agencyOrgAccess) ApplyCandidatesFilter(query *gorm.DB) *gorm.DB {
	return query.Where("candidates.org_kind = ? AND candidates.org_id = ?", models.OrgKindAgency, access.agency.ID)
}

func (access agencyOrgAccess) ApplyOwnCandidatesFilter(query *gorm.DB) *gorm.DB {
	return access.ApplyCandidatesFilter(query)
}

func (access agencyOrgAccess) ApplyProposalsFilter(query *gorm.DB) *gorm.DB {
	return query.Where(
		"proposals.candidate_id IN (?) OR proposals.created_by_id IN (?) OR proposals.created_by_id IN (?) OR proposals.created_by_id IN (?)",
		access.ownCandidateIDs(),
		access.memberUserIDs(&models.AgencyAdministrator{}, "agency_administrators"),
		access.memberUserIDs(&models.AgencyManager{}, "agency_managers"),
		access.memberUserIDs(&models.Recruiter{}, "recruiters"),
	)
}

func (access agencyOrgAccess) ContractsFilter() Predicate {
	agencyID := access.agency.ID
	return func(query *gorm.DB) *gorm.DB {
		return query.Where("contracts.agency_id = ?", agencyID)
	}
}

func (access agencyOrgAccess) CanCreateProposal(job models.Job, candidate models.Candidate) (bool, error) {
	if candidate.Org != access.agency.Ref() {
		return false, nil
	}
	return access.hasActiveContract(job.ID)
}

func (access agencyOrgAccess) CanCreateJobFile(job models.Job) (bool, error) {
	return access.hasActiveContract(job.ID)
}

func (access agencyOrgAccess) hasActiveContract(jobID uint) (bool, error) {
	var matched int64
	err := access.database.Model(&models.JobAgencyContract{}).
		Where("job_id = ? AND agency_id = ? AND is_active = ?", jobID, access.agency.ID, true).
		Count(&matched).Error
	if err != nil {
		return false, err
	}
	return matched > 0, nil
}

// RecruiterAccess narrows the agency scope to the jobs the recruiter is
// personally assigned to. Candidate ownership and the contracts predicate
// stay org-wide; job, file, and proposal visibility do not.
type RecruiterAccess struct {
	agencyOrgAccess
}

func NewRecruiterAccess(database *gorm.DB, agency models.Agency, user models.User) RecruiterAccess {
	return RecruiterAccess{agencyOrgAccess{database: database, agency: agency, user: user}}
}

func (access RecruiterAccess) assignedJobIDs() *gorm.DB {
	return access.database.Model(&models.JobMember{}).
		Select("job_members.job_id").
		Where("job_members.user_id = ?", access.user.ID)
}

func (access RecruiterAccess) ApplyJobsFilter(query *gorm.DB) *gorm.DB {
	return query.Where("jobs.id IN (?)", access.assignedJobIDs())
}

func (access RecruiterAccess) ApplyJobFilesFilter(query *gorm.DB) *gorm.DB {
	return filterJobFilesThroughJobs(query, access.assignedJobIDs())
}

func (access RecruiterAccess) ApplyProposalsFilter(query *gorm.DB) *gorm.DB {
	return query.
		Where("proposals.job_id IN (?)", access.contractedJobIDs()).
		Where("proposals.job_id IN (?)", access.assignedJobIDs())
}

// An org-level contract alone is not enough for a recruiter: proposing also
// requires personal assignment to the job.
func (access RecruiterAccess) CanCreateProposal(job models.Job, candidate models.Candidate) (bool, error) {
	allowed, err := access.agencyOrgAccess.CanCreateProposal(job, candidate)
	if err != nil || !allowed {
		return false, err
	}
	return access.isAssignedToJob(job.ID)
}

func (access RecruiterAccess) CanCreateJobFile(job models.Job) (bool, error) {
	return access.isAssignedToJob(job.ID)
}

func (access RecruiterAccess) isAssignedToJob(jobID uint) (bool, error) {
	var matched int64
	err := access.database.Model(&models.JobMember{}).
		Where("job_id = ? AND user_id = ?", jobID, access.user.ID).
		Count(&matched).Error
	if err != nil {
		return false, err
	}
	return matched > 0, nil
}
