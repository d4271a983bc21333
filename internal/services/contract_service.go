package services

import (
	"errors"
	"fmt"

	"github.com/ka4a/talentai-sub000/internal/db"
	"github.com/ka4a/talentai-sub000/internal/models"
	"github.com/ka4a/talentai-sub000/internal/security"
	"gorm.io/gorm"
)

const invitationTokenLength = 32
const invitationTokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

type ContractService struct {
	contracts *db.ContractRepository
	notifier  NotificationSink
}

func NewContractService(contracts *db.ContractRepository, notifier NotificationSink) *ContractService {
	return &ContractService{contracts: contracts, notifier: notifier}
}

// Create starts a contract between an agency and a client. At most one
// contract may exist per pair.
func (service *ContractService) Create(agencyID uint, clientID uint) (models.Contract, error) {
	exists, err := service.contracts.PairExists(agencyID, clientID)
	if err != nil {
		return models.Contract{}, err
	}
	if exists {
		return models.Contract{}, &IntegrityConflictError{
			Constraint: "uidx_contract_agency_client",
			Detail:     fmt.Sprintf("contract between agency %d and client %d already exists", agencyID, clientID),
		}
	}

	contract := models.Contract{
		AgencyID: agencyID,
		ClientID: clientID,
		Status:   models.ContractStatusInitiated,
	}
	if err := service.contracts.Create(&contract); err != nil {
		return models.Contract{}, err
	}
	return contract, nil
}

// InviteAgency issues an invitation token and moves the contract to
// agency_invited. The token travels to the agency out of band.
func (service *ContractService) InviteAgency(actor models.User, contractID uint) (models.Contract, error) {
	contract, err := service.contracts.FindByID(contractID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Contract{}, fmt.Errorf("contract %d: %w", contractID, ErrNotFound)
	}
	if err != nil {
		return models.Contract{}, err
	}

	token, err := security.RandomString(invitationTokenLength, invitationTokenAlphabet)
	if err != nil {
		return models.Contract{}, fmt.Errorf("generate invitation token: %w", err)
	}

	contract.InvitationToken = token
	contract.Status = models.ContractStatusAgencyInvited
	if err := service.contracts.Save(&contract); err != nil {
		return models.Contract{}, err
	}

	service.notifier.Send(contract.AgencyID, EventContractInvited, actor.ID,
		fmt.Sprintf("contract:%d", contract.ID), nil)
	return contract, nil
}

// AcceptInvitation consumes an invitation token and moves the contract to
// pending signature.
func (service *ContractService) AcceptInvitation(token string) (models.Contract, error) {
	contract, err := service.contracts.FindByInvitationToken(token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Contract{}, fmt.Errorf("invitation: %w", ErrNotFound)
	}
	if err != nil {
		return models.Contract{}, err
	}

	contract.InvitationToken = ""
	contract.Status = models.ContractStatusPending
	if err := service.contracts.Save(&contract); err != nil {
		return models.Contract{}, err
	}
	return contract, nil
}

func (service *ContractService) SignByClient(actor models.User, contractID uint) (models.Contract, error) {
	return service.sign(actor, contractID, func(contract *models.Contract) {
		contract.IsClientSigned = true
	})
}

func (service *ContractService) SignByAgency(actor models.User, contractID uint) (models.Contract, error) {
	return service.sign(actor, contractID, func(contract *models.Contract) {
		contract.IsAgencySigned = true
	})
}

func (service *ContractService) sign(actor models.User, contractID uint, apply func(contract *models.Contract)) (models.Contract, error) {
	contract, err := service.contracts.FindByID(contractID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Contract{}, fmt.Errorf("contract %d: %w", contractID, ErrNotFound)
	}
	if err != nil {
		return models.Contract{}, err
	}

	apply(&contract)
	if contract.FullySigned() {
		contract.Status = models.ContractStatusSigned
	}
	if err := service.contracts.Save(&contract); err != nil {
		return models.Contract{}, err
	}

	if contract.FullySigned() {
		service.notifier.Send(contract.ClientID, EventContractSigned, actor.ID,
			fmt.Sprintf("contract:%d", contract.ID), nil)
	}
	return contract, nil
}
