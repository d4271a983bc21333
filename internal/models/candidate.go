package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Candidate struct {
	ID             uint   `gorm:"primaryKey"`
	Org            OrgRef `gorm:"embedded"`
	OwnerID        uint   `gorm:"not null"`
	FirstName      string `gorm:"not null"`
	LastName       string
	Email          string `gorm:"index"`
	SecondaryEmail string
	Archived       bool            `gorm:"not null;default:false"`
	CurrentSalary  decimal.Decimal `gorm:"type:decimal(14,2)"`
	SalaryCurrency string          `gorm:"not null;default:JPY"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CandidateNote keeps one shared note per organization and candidate, so
// client- and agency-side notes on the same person never collide.
type CandidateNote struct {
	ID          uint    `gorm:"primaryKey"`
	CandidateID uint    `gorm:"not null;uniqueIndex:uidx_candidate_note_org"`
	OrgKind     OrgKind `gorm:"column:org_kind;not null;uniqueIndex:uidx_candidate_note_org"`
	OrgID       uint    `gorm:"column:org_id;not null;uniqueIndex:uidx_candidate_note_org"`
	Text        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (note CandidateNote) Ref() OrgRef {
	return OrgRef{Kind: note.OrgKind, ID: note.OrgID}
}
