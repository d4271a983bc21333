package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	InterviewStatusToBeScheduled = "to_be_scheduled"
	InterviewStatusScheduled     = "scheduled"
	InterviewStatusCompleted     = "completed"
	InterviewStatusCanceled      = "canceled"
)

const (
	SchedulingTypeSimple        = "simple"
	SchedulingTypeProposalBased = "proposal_based"
	SchedulingTypePast          = "past"
)

type ProposalInterview struct {
	ID            uint `gorm:"primaryKey"`
	ProposalID    uint `gorm:"not null;index"`
	InterviewerID *uint
	Order         int    `gorm:"column:interview_order;not null;default:1"`
	Status        string `gorm:"not null;default:to_be_scheduled"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type InterviewTimeslot struct {
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
}

// ProposalInterviewSchedule holds the timeslots offered for one interview and
// who was invited. Rescheduling inserts a new current row and retires the old
// one, so only one row per interview has is_current set.
type ProposalInterviewSchedule struct {
	ID             uint                                    `gorm:"primaryKey"`
	InterviewID    uint                                    `gorm:"not null;index"`
	Status         string                                  `gorm:"not null;default:pending"`
	SchedulingType string                                  `gorm:"not null;default:simple"`
	Timeslots      datatypes.JSONSlice[InterviewTimeslot]  `gorm:"not null"`
	Invited        datatypes.JSONSlice[string]             `gorm:"not null"`
	IsCurrent      bool                                    `gorm:"not null;default:true"`
	CreatedAt      time.Time
}
