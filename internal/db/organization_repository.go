package db

import (
	"fmt"

	"github.com/ka4a/talentai-sub000/internal/models"
	"gorm.io/gorm"
)

type OrganizationRepository struct {
	database *gorm.DB
}

func NewOrganizationRepository(database *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{database: database}
}

func (repo *OrganizationRepository) FindClient(clientID uint) (models.Client, error) {
	var client models.Client
	if err := repo.database.First(&client, clientID).Error; err != nil {
		return models.Client{}, err
	}
	return client, nil
}

func (repo *OrganizationRepository) FindAgency(agencyID uint) (models.Agency, error) {
	var agency models.Agency
	if err := repo.database.First(&agency, agencyID).Error; err != nil {
		return models.Agency{}, err
	}
	return agency, nil
}

// CountProfileRows counts how many role rows a user holds across all six
// role tables. The committed state must never exceed one.
func (repo *OrganizationRepository) CountProfileRows(userID uint) (int64, error) {
	return countProfileRows(repo.database, userID)
}

func countProfileRows(database *gorm.DB, userID uint) (int64, error) {
	roleModels := []any{
		&models.ClientAdministrator{},
		&models.ClientInternalRecruiter{},
		&models.ClientStandardUser{},
		&models.AgencyAdministrator{},
		&models.AgencyManager{},
		&models.Recruiter{},
	}

	var total int64
	for _, roleModel := range roleModels {
		var matched int64
		if err := database.Model(roleModel).Where("user_id = ?", userID).Count(&matched).Error; err != nil {
			return 0, err
		}
		total += matched
	}
	return total, nil
}

func (repo *OrganizationRepository) CreateRole(kind models.RoleKind, userID uint, orgID uint) error {
	switch kind {
	case models.RoleClientAdministrator:
		return repo.database.Create(&models.ClientAdministrator{UserID: userID, ClientID: orgID}).Error
	case models.RoleClientInternalRecruiter:
		return repo.database.Create(&models.ClientInternalRecruiter{UserID: userID, ClientID: orgID}).Error
	case models.RoleClientStandardUser:
		return repo.database.Create(&models.ClientStandardUser{UserID: userID, ClientID: orgID}).Error
	case models.RoleAgencyAdministrator:
		return repo.database.Create(&models.AgencyAdministrator{UserID: userID, AgencyID: orgID}).Error
	case models.RoleAgencyManager:
		return repo.database.Create(&models.AgencyManager{UserID: userID, AgencyID: orgID}).Error
	case models.RoleRecruiter:
		return repo.database.Create(&models.Recruiter{UserID: userID, AgencyID: orgID}).Error
	default:
		return fmt.Errorf("unknown role kind %q", kind)
	}
}

// DeleteClientCascade removes a client, its role rows, and any users left
// without a profile afterwards. Users holding a role elsewhere survive.
func (repo *OrganizationRepository) DeleteClientCascade(clientID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		affectedUserIDs, err := collectRoleUserIDs(tx, "client_id", clientID,
			&models.ClientAdministrator{}, &models.ClientInternalRecruiter{}, &models.ClientStandardUser{})
		if err != nil {
			return err
		}

		for _, roleModel := range []any{&models.ClientAdministrator{}, &models.ClientInternalRecruiter{}, &models.ClientStandardUser{}} {
			if err := tx.Where("client_id = ?", clientID).Delete(roleModel).Error; err != nil {
				return err
			}
		}

		if err := tx.Delete(&models.Client{}, clientID).Error; err != nil {
			return err
		}

		return deleteOrphanedUsers(tx, affectedUserIDs)
	})
}

func (repo *OrganizationRepository) DeleteAgencyCascade(agencyID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		affectedUserIDs, err := collectRoleUserIDs(tx, "agency_id", agencyID,
			&models.AgencyAdministrator{}, &models.AgencyManager{}, &models.Recruiter{})
		if err != nil {
			return err
		}

		for _, roleModel := range []any{&models.AgencyAdministrator{}, &models.AgencyManager{}, &models.Recruiter{}} {
			if err := tx.Where("agency_id = ?", agencyID).Delete(roleModel).Error; err != nil {
				return err
			}
		}

		if err := tx.Delete(&models.Agency{}, agencyID).Error; err != nil {
			return err
		}

		return deleteOrphanedUsers(tx, affectedUserIDs)
	})
}

func collectRoleUserIDs(tx *gorm.DB, orgColumn string, orgID uint, roleModels ...any) ([]uint, error) {
	userIDs := make([]uint, 0)
	for _, roleModel := range roleModels {
		var ids []uint
		if err := tx.Model(roleModel).Where(orgColumn+" = ?", orgID).Pluck("user_id", &ids).Error; err != nil {
			return nil, err
		}
		userIDs = append(userIDs, ids...)
	}
	return userIDs, nil
}

func deleteOrphanedUsers(tx *gorm.DB, userIDs []uint) error {
	for _, userID := range userIDs {
		remaining, err := countProfileRows(tx, userID)
		if err != nil {
			return err
		}
		if remaining > 0 {
			continue
		}
		if err := tx.Delete(&models.User{}, userID).Error; err != nil {
			return err
		}
	}
	return nil
}
