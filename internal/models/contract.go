package models

import "time"

const (
	ContractStatusInitiated     = "initiated"
	ContractStatusAgencyInvited = "agency_invited"
	ContractStatusPending       = "pending"
	ContractStatusSigned        = "signed"
	ContractStatusRejected      = "rejected"
	ContractStatusExpired       = "expired"
)

// Contract is the org-level agreement that lets an Agency work a Client's
// jobs. At most one row may exist per (agency, client) pair.
type Contract struct {
	ID              uint   `gorm:"primaryKey"`
	AgencyID        uint   `gorm:"not null;uniqueIndex:uidx_contract_agency_client"`
	ClientID        uint   `gorm:"not null;uniqueIndex:uidx_contract_agency_client"`
	Status          string `gorm:"not null;default:initiated"`
	IsClientSigned  bool   `gorm:"not null;default:false"`
	IsAgencySigned  bool   `gorm:"not null;default:false"`
	InvitationToken string `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (contract Contract) FullySigned() bool {
	return contract.IsClientSigned && contract.IsAgencySigned
}
