package models

import "time"

const (
	StageLonglist  = "longlist"
	StageShortlist = "shortlist"
)

// StatusGroup clusters catalog statuses for cross-cutting logic, such as the
// decline sweep that fires when a proposal reaches PendingStart.
type StatusGroup string

const (
	GroupAssociatedToJob          StatusGroup = "associated_to_job"
	GroupSuitable                 StatusGroup = "suitable"
	GroupSubmittedToHiringManager StatusGroup = "submitted_to_hiring_manager"
	GroupInterviewing             StatusGroup = "interviewing"
	GroupOffer                    StatusGroup = "offer"
	GroupPendingStart             StatusGroup = "pending_start"
	GroupRejected                 StatusGroup = "rejected"
)

// StatusStage is the coarse phase a catalog status belongs to. Associated
// statuses keep the proposal on the longlist; submissions and hired statuses
// put it on the shortlist.
type StatusStage string

const (
	StatusStageAssociated  StatusStage = "associated"
	StatusStageSubmissions StatusStage = "submissions"
	StatusStageHired       StatusStage = "hired"
)

func (stage StatusStage) ProposalStage() string {
	if stage == StatusStageAssociated {
		return StageLonglist
	}
	return StageShortlist
}

// DealStage tags the statuses that count toward the revenue pipeline.
type DealStage string

const (
	DealStageFirstRound        DealStage = "first_round"
	DealStageIntermediateRound DealStage = "intermediate_round"
	DealStageFinalRound        DealStage = "final_round"
	DealStageOffer             DealStage = "offer"
)

// ProposalStatus is one row of an organization's status catalog. Each client
// and agency gets its own catalog seeded at creation time.
type ProposalStatus struct {
	ID           uint        `gorm:"primaryKey"`
	Org          OrgRef      `gorm:"embedded"`
	Name         string      `gorm:"not null"`
	Group        StatusGroup `gorm:"column:status_group;not null"`
	Stage        StatusStage `gorm:"not null"`
	DealStage    DealStage   `gorm:"default:''"`
	Default      bool        `gorm:"column:is_default;not null;default:false"`
	DefaultOrder int         `gorm:"not null;default:0"`
}

// Proposal links a candidate to a job. The stage/actor pairing is enforced at
// the database level as well: a longlist row must carry longlisted_by, a
// shortlist row must carry shortlisted_by, never both.
type Proposal struct {
	ID                    uint   `gorm:"primaryKey"`
	JobID                 uint   `gorm:"not null;uniqueIndex:uidx_proposal_job_candidate"`
	CandidateID           uint   `gorm:"not null;uniqueIndex:uidx_proposal_job_candidate"`
	StatusID              uint   `gorm:"not null"`
	Stage                 string `gorm:"not null;check:chk_proposal_stage_actor,(stage = 'longlist' AND longlisted_by_id IS NOT NULL AND shortlisted_by_id IS NULL) OR (stage = 'shortlist' AND shortlisted_by_id IS NOT NULL AND longlisted_by_id IS NULL)"`
	LonglistedByID        *uint
	ShortlistedByID       *uint
	CreatedByID           uint `gorm:"not null"`
	IsRejected            bool `gorm:"not null;default:false"`
	ListedAt              time.Time
	MovedFromJobID        *uint
	MovedByID             *uint
	StatusLastUpdatedByID *uint
	CreatedAt             time.Time
	UpdatedAt             time.Time

	Status    ProposalStatus `gorm:"foreignKey:StatusID"`
	Job       Job            `gorm:"foreignKey:JobID"`
	Candidate Candidate      `gorm:"foreignKey:CandidateID"`
}
