package services

import (
	"github.com/ka4a/talentai-sub000/internal/models"
	"gorm.io/gorm"
)

// Predicate narrows a query without executing it, so callers can compose it
// into their own contract queries.
type Predicate func(query *gorm.DB) *gorm.DB

// Access is the capability contract every role variant implements: the
// visibility filters scope list queries, the Can* guards authorize single
// writes. The two are deliberately separate operations because list scoping
// and object authorization fail differently (not-found vs denied).
type Access interface {
	ApplyCandidatesFilter(query *gorm.DB) *gorm.DB
	ApplyOwnCandidatesFilter(query *gorm.DB) *gorm.DB
	ApplyJobsFilter(query *gorm.DB) *gorm.DB
	ApplyJobFilesFilter(query *gorm.DB) *gorm.DB
	ApplyProposalsFilter(query *gorm.DB) *gorm.DB
	ContractsFilter() Predicate
	Org() models.OrgRef
	CanCreateProposal(job models.Job, candidate models.Candidate) (bool, error)
	CanCreateJobFile(job models.Job) (bool, error)
}

// filterJobFilesThroughJobs is the default job-files composition: a file is
// visible exactly when its job is.
func filterJobFilesThroughJobs(query *gorm.DB, visibleJobIDs *gorm.DB) *gorm.DB {
	return query.Where("job_files.job_id IN (?)", visibleJobIDs)
}
