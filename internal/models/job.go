package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	JobStatusDraft  = "draft"
	JobStatusOpen   = "open"
	JobStatusOnHold = "on_hold"
	JobStatusFilled = "filled"
	JobStatusClosed = "closed"
)

// Job is owned by either a Client or an Agency. ClientID is always set: an
// agency-owned job still designates which client it is sourcing for.
type Job struct {
	ID            uint   `gorm:"primaryKey"`
	Org           OrgRef `gorm:"embedded"`
	ClientID      uint   `gorm:"not null;index"`
	OwnerID       uint   `gorm:"not null"`
	Title         string `gorm:"not null"`
	Status        string `gorm:"not null;default:draft"`
	OpeningsCount int    `gorm:"not null;default:1"`
	Published     bool   `gorm:"not null;default:false"`
	Public        bool   `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PrivateJobPosting carries the unguessable identifier under which a
// published job is reachable without authentication.
type PrivateJobPosting struct {
	ID         uint      `gorm:"primaryKey"`
	JobID      uint      `gorm:"not null;uniqueIndex"`
	PublicUUID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt  time.Time
}

// JobAgencyContract assigns an agency to a job. Re-assignments deactivate
// rows instead of deleting them, so the history of past assignments stays.
type JobAgencyContract struct {
	ID           uint   `gorm:"primaryKey"`
	JobID        uint   `gorm:"not null;uniqueIndex:uidx_job_agency"`
	AgencyID     uint   `gorm:"not null;uniqueIndex:uidx_job_agency"`
	IsActive     bool   `gorm:"not null;default:true"`
	ContractType string `gorm:"not null;default:contingency"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// JobManager is a client-side user assigned to manage a job.
type JobManager struct {
	ID     uint `gorm:"primaryKey"`
	JobID  uint `gorm:"not null;uniqueIndex:uidx_job_manager"`
	UserID uint `gorm:"not null;uniqueIndex:uidx_job_manager"`
}

// JobMember is an agency-side user assigned to work a job.
type JobMember struct {
	ID     uint `gorm:"primaryKey"`
	JobID  uint `gorm:"not null;uniqueIndex:uidx_job_member"`
	UserID uint `gorm:"not null;uniqueIndex:uidx_job_member"`
}

type JobFile struct {
	ID          uint   `gorm:"primaryKey"`
	JobID       uint   `gorm:"not null;index"`
	UploadedBy  uint   `gorm:"not null"`
	Name        string `gorm:"not null"`
	ContentType string
	CreatedAt   time.Time
}
