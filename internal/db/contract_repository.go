package db

import (
	"github.com/ka4a/talentai-sub000/internal/models"
	"gorm.io/gorm"
)

type ContractRepository struct {
	database *gorm.DB
}

func NewContractRepository(database *gorm.DB) *ContractRepository {
	return &ContractRepository{database: database}
}

func (repo *ContractRepository) FindByID(contractID uint) (models.Contract, error) {
	var contract models.Contract
	if err := repo.database.First(&contract, contractID).Error; err != nil {
		return models.Contract{}, err
	}
	return contract, nil
}

func (repo *ContractRepository) PairExists(agencyID uint, clientID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Contract{}).
		Where("agency_id = ? AND client_id = ?", agencyID, clientID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *ContractRepository) FindByInvitationToken(token string) (models.Contract, error) {
	var contract models.Contract
	if err := repo.database.Where("invitation_token = ? AND invitation_token <> ''", token).
		First(&contract).Error; err != nil {
		return models.Contract{}, err
	}
	return contract, nil
}

func (repo *ContractRepository) Create(contract *models.Contract) error {
	return repo.database.Create(contract).Error
}

func (repo *ContractRepository) Save(contract *models.Contract) error {
	return repo.database.Save(contract).Error
}
