package services

import (
	"fmt"

	"github.com/ka4a/talentai-sub000/internal/models"
	"gorm.io/gorm"
)

// Profile is the resolved role of an authenticated user: which of the six
// variants they hold and which organization owns them. It is resolved once
// per request and passed explicitly from there on.
type Profile struct {
	Kind   models.RoleKind
	User   models.User
	Client *models.Client
	Agency *models.Agency
}

func (profile Profile) Org() models.OrgRef {
	if profile.Client != nil {
		return profile.Client.Ref()
	}
	return profile.Agency.Ref()
}

// Access builds the capability implementation for the profile's role.
func (profile Profile) Access(database *gorm.DB) Access {
	switch profile.Kind {
	case models.RoleClientAdministrator:
		return NewClientAdministratorAccess(database, *profile.Client, profile.User)
	case models.RoleClientInternalRecruiter:
		return NewClientInternalRecruiterAccess(database, *profile.Client, profile.User)
	case models.RoleClientStandardUser:
		return NewClientStandardUserAccess(database, *profile.Client, profile.User)
	case models.RoleAgencyAdministrator:
		return NewAgencyAdministratorAccess(database, *profile.Agency, profile.User)
	case models.RoleAgencyManager:
		return NewAgencyManagerAccess(database, *profile.Agency, profile.User)
	default:
		return NewRecruiterAccess(database, *profile.Agency, profile.User)
	}
}

type ProfileResolver struct {
	database *gorm.DB
}

func NewProfileResolver(database *gorm.DB) *ProfileResolver {
	return &ProfileResolver{database: database}
}

type roleMatch struct {
	kind  models.RoleKind
	orgID uint
}

// Resolve looks the user's role up across all six role tables. Zero rows or
// more than one row is a ProfileResolutionError and aborts the request;
// the resolver never picks one arbitrarily.
func (resolver *ProfileResolver) Resolve(userID uint) (Profile, error) {
	var user models.User
	if err := resolver.database.First(&user, userID).Error; err != nil {
		return Profile{}, fmt.Errorf("load user %d: %w", userID, err)
	}

	matches := make([]roleMatch, 0, 1)

	clientRoles := []struct {
		kind  models.RoleKind
		model any
	}{
		{models.RoleClientAdministrator, &models.ClientAdministrator{}},
		{models.RoleClientInternalRecruiter, &models.ClientInternalRecruiter{}},
		{models.RoleClientStandardUser, &models.ClientStandardUser{}},
	}
	for _, role := range clientRoles {
		var ids []uint
		if err := resolver.database.Model(role.model).Where("user_id = ?", userID).Pluck("client_id", &ids).Error; err != nil {
			return Profile{}, err
		}
		for _, id := range ids {
			matches = append(matches, roleMatch{kind: role.kind, orgID: id})
		}
	}

	agencyRoles := []struct {
		kind  models.RoleKind
		model any
	}{
		{models.RoleAgencyAdministrator, &models.AgencyAdministrator{}},
		{models.RoleAgencyManager, &models.AgencyManager{}},
		{models.RoleRecruiter, &models.Recruiter{}},
	}
	for _, role := range agencyRoles {
		var ids []uint
		if err := resolver.database.Model(role.model).Where("user_id = ?", userID).Pluck("agency_id", &ids).Error; err != nil {
			return Profile{}, err
		}
		for _, id := range ids {
			matches = append(matches, roleMatch{kind: role.kind, orgID: id})
		}
	}

	if len(matches) != 1 {
		return Profile{}, &ProfileResolutionError{UserID: userID, Rows: len(matches)}
	}

	match := matches[0]
	profile := Profile{Kind: match.kind, User: user}

	switch match.kind {
	case models.RoleClientAdministrator, models.RoleClientInternalRecruiter, models.RoleClientStandardUser:
		var client models.Client
		if err := resolver.database.First(&client, match.orgID).Error; err != nil {
			return Profile{}, fmt.Errorf("load client %d: %w", match.orgID, err)
		}
		profile.Client = &client
	default:
		var agency models.Agency
		if err := resolver.database.First(&agency, match.orgID).Error; err != nil {
			return Profile{}, fmt.Errorf("load agency %d: %w", match.orgID, err)
		}
		profile.Agency = &agency
	}

	return profile, nil
}
