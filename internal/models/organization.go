package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrgKind string

const (
	OrgKindClient OrgKind = "client"
	OrgKindAgency OrgKind = "agency"
)

// OrgRef is a discriminated reference to either a Client or an Agency.
// Resources with a polymorphic owner (jobs, candidates, proposal statuses)
// embed it instead of carrying an untyped foreign key.
type OrgRef struct {
	Kind OrgKind `gorm:"column:org_kind;not null" json:"kind"`
	ID   uint    `gorm:"column:org_id;not null" json:"id"`
}

func ClientRef(clientID uint) OrgRef {
	return OrgRef{Kind: OrgKindClient, ID: clientID}
}

func AgencyRef(agencyID uint) OrgRef {
	return OrgRef{Kind: OrgKindAgency, ID: agencyID}
}

type Client struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"not null"`
	PrimaryContactID *uint
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (client Client) Ref() OrgRef {
	return ClientRef(client.ID)
}

// DefaultHiringFeeCoefficient is the share of a placed candidate's annual
// salary billed as the hiring fee when an agency has not configured its own.
var DefaultHiringFeeCoefficient = decimal.NewFromFloat(0.3)

type Agency struct {
	ID                   uint   `gorm:"primaryKey"`
	Name                 string `gorm:"not null"`
	PrimaryContactID     *uint
	HiringFeeCoefficient decimal.Decimal `gorm:"type:decimal(6,4);not null;default:0.3"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (agency Agency) Ref() OrgRef {
	return AgencyRef(agency.ID)
}

func (agency Agency) FeeCoefficient() decimal.Decimal {
	if agency.HiringFeeCoefficient.IsZero() {
		return DefaultHiringFeeCoefficient
	}
	return agency.HiringFeeCoefficient
}
