package services

import (
	"fmt"

	"github.com/ka4a/talentai-sub000/internal/db"
	"github.com/ka4a/talentai-sub000/internal/models"
	"gorm.io/gorm"
)

// OrganizationService creates tenants and assigns users to them. Creating an
// organization also seeds its default proposal status catalog: the catalog
// existing is part of the creation contract, not an implicit side effect a
// caller can forget.
type OrganizationService struct {
	database      *gorm.DB
	organizations *db.OrganizationRepository
	seeder        *CatalogSeeder
}

func NewOrganizationService(database *gorm.DB, organizations *db.OrganizationRepository, seeder *CatalogSeeder) *OrganizationService {
	return &OrganizationService{database: database, organizations: organizations, seeder: seeder}
}

func (service *OrganizationService) CreateClient(name string, primaryContactID *uint) (models.Client, error) {
	client := models.Client{Name: name, PrimaryContactID: primaryContactID}
	err := service.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&client).Error; err != nil {
			return fmt.Errorf("create client: %w", err)
		}
		return service.seeder.Seed(tx, client.Ref())
	})
	if err != nil {
		return models.Client{}, err
	}
	return client, nil
}

func (service *OrganizationService) CreateAgency(name string, primaryContactID *uint) (models.Agency, error) {
	agency := models.Agency{
		Name:                 name,
		PrimaryContactID:     primaryContactID,
		HiringFeeCoefficient: models.DefaultHiringFeeCoefficient,
	}
	err := service.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&agency).Error; err != nil {
			return fmt.Errorf("create agency: %w", err)
		}
		return service.seeder.Seed(tx, agency.Ref())
	})
	if err != nil {
		return models.Agency{}, err
	}
	return agency, nil
}

// AssignRole gives a user their single role row. A user already holding any
// role, in any organization, cannot be assigned another one.
func (service *OrganizationService) AssignRole(userID uint, kind models.RoleKind, orgID uint) error {
	existing, err := service.organizations.CountProfileRows(userID)
	if err != nil {
		return err
	}
	if existing > 0 {
		return &IntegrityConflictError{
			Constraint: "single_profile_per_user",
			Detail:     fmt.Sprintf("user %d already holds a role", userID),
		}
	}
	return service.organizations.CreateRole(kind, userID, orgID)
}

func (service *OrganizationService) DeleteClient(clientID uint) error {
	return service.organizations.DeleteClientCascade(clientID)
}

func (service *OrganizationService) DeleteAgency(agencyID uint) error {
	return service.organizations.DeleteAgencyCascade(agencyID)
}
