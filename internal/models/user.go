package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	FirstName    string
	LastName     string
	CreatedAt    time.Time `gorm:"not null"`
}

// RoleKind names one of the six mutually exclusive role variants a user may
// hold. A user has at most one role row across all six tables.
type RoleKind string

const (
	RoleClientAdministrator     RoleKind = "client_administrator"
	RoleClientInternalRecruiter RoleKind = "client_internal_recruiter"
	RoleClientStandardUser      RoleKind = "client_standard_user"
	RoleAgencyAdministrator     RoleKind = "agency_administrator"
	RoleAgencyManager           RoleKind = "agency_manager"
	RoleRecruiter               RoleKind = "recruiter"
)

func AllRoleKinds() []RoleKind {
	return []RoleKind{
		RoleClientAdministrator,
		RoleClientInternalRecruiter,
		RoleClientStandardUser,
		RoleAgencyAdministrator,
		RoleAgencyManager,
		RoleRecruiter,
	}
}

type ClientAdministrator struct {
	ID       uint `gorm:"primaryKey"`
	UserID   uint `gorm:"not null;uniqueIndex"`
	ClientID uint `gorm:"not null;index"`
}

type ClientInternalRecruiter struct {
	ID       uint `gorm:"primaryKey"`
	UserID   uint `gorm:"not null;uniqueIndex"`
	ClientID uint `gorm:"not null;index"`
}

type ClientStandardUser struct {
	ID       uint `gorm:"primaryKey"`
	UserID   uint `gorm:"not null;uniqueIndex"`
	ClientID uint `gorm:"not null;index"`
}

type AgencyAdministrator struct {
	ID       uint `gorm:"primaryKey"`
	UserID   uint `gorm:"not null;uniqueIndex"`
	AgencyID uint `gorm:"not null;index"`
}

type AgencyManager struct {
	ID       uint `gorm:"primaryKey"`
	UserID   uint `gorm:"not null;uniqueIndex"`
	AgencyID uint `gorm:"not null;index"`
}

type Recruiter struct {
	ID       uint `gorm:"primaryKey"`
	UserID   uint `gorm:"not null;uniqueIndex"`
	AgencyID uint `gorm:"not null;index"`
}
