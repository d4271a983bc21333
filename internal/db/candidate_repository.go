package db

import (
	"strings"

	"github.com/ka4a/talentai-sub000/internal/models"
	"gorm.io/gorm"
)

type CandidateRepository struct {
	database *gorm.DB
}

func NewCandidateRepository(database *gorm.DB) *CandidateRepository {
	return &CandidateRepository{database: database}
}

func (repo *CandidateRepository) FindByID(candidateID uint) (models.Candidate, error) {
	var candidate models.Candidate
	if err := repo.database.First(&candidate, candidateID).Error; err != nil {
		return models.Candidate{}, err
	}
	return candidate, nil
}

func (repo *CandidateRepository) Create(candidate *models.Candidate) error {
	return repo.database.Create(candidate).Error
}

func (repo *CandidateRepository) Save(candidate *models.Candidate) error {
	return repo.database.Save(candidate).Error
}

// EmailInUse reports whether any of the given addresses already appears in
// another candidate's email or secondary_email. Both fields participate in
// the uniqueness rule.
func (repo *CandidateRepository) EmailInUse(excludeCandidateID uint, emails ...string) (bool, error) {
	normalized := make([]string, 0, len(emails))
	for _, email := range emails {
		trimmed := strings.ToLower(strings.TrimSpace(email))
		if trimmed == "" {
			continue
		}
		normalized = append(normalized, trimmed)
	}
	if len(normalized) == 0 {
		return false, nil
	}

	query := repo.database.Model(&models.Candidate{}).
		Where("lower(trim(email)) IN ? OR lower(trim(secondary_email)) IN ?", normalized, normalized)
	if excludeCandidateID != 0 {
		query = query.Where("id <> ?", excludeCandidateID)
	}

	var matched int64
	if err := query.Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *CandidateRepository) HasLiveProposals(candidateID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Proposal{}).
		Where("candidate_id = ? AND is_rejected = ?", candidateID, false).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *CandidateRepository) SetArchived(candidateID uint, archived bool) error {
	return repo.database.Model(&models.Candidate{}).
		Where("id = ?", candidateID).
		Update("archived", archived).Error
}

func (repo *CandidateRepository) NoteExists(candidateID uint, org models.OrgRef) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.CandidateNote{}).
		Where("candidate_id = ? AND org_kind = ? AND org_id = ?", candidateID, org.Kind, org.ID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *CandidateRepository) CreateNote(note *models.CandidateNote) error {
	return repo.database.Create(note).Error
}
