package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ka4a/talentai-sub000/internal/db"
	"github.com/ka4a/talentai-sub000/internal/models"
	"gorm.io/gorm"
)

type CandidateService struct {
	candidates *db.CandidateRepository
	engine     *VisibilityEngine
}

func NewCandidateService(candidates *db.CandidateRepository, engine *VisibilityEngine) *CandidateService {
	return &CandidateService{candidates: candidates, engine: engine}
}

// Create adds a candidate owned by the actor's organization. Both email
// fields participate in a single uniqueness rule: no address may appear in
// any other candidate's email or secondary_email.
func (service *CandidateService) Create(access Access, actor models.User, candidate models.Candidate) (models.Candidate, error) {
	inUse, err := service.candidates.EmailInUse(0, candidate.Email, candidate.SecondaryEmail)
	if err != nil {
		return models.Candidate{}, err
	}
	if inUse {
		return models.Candidate{}, &IntegrityConflictError{
			Constraint: "candidate_email_unique",
			Detail:     "email or secondary email already in use",
		}
	}

	candidate.Org = access.Org()
	candidate.OwnerID = actor.ID
	candidate.Archived = false
	if err := service.candidates.Create(&candidate); err != nil {
		return models.Candidate{}, err
	}
	return candidate, nil
}

// Archive hides a candidate from the default collection. Candidates with a
// live (non-rejected) proposal cannot be archived.
func (service *CandidateService) Archive(access Access, candidateID uint) error {
	candidate, err := service.engine.VisibleCandidate(access, candidateID)
	if err != nil {
		return err
	}

	live, err := service.candidates.HasLiveProposals(candidate.ID)
	if err != nil {
		return err
	}
	if live {
		return &InvalidTransitionError{
			Rule:   RuleLiveProposalsArchive,
			Detail: fmt.Sprintf("candidate %d still has live proposals", candidate.ID),
		}
	}

	return service.candidates.SetArchived(candidate.ID, true)
}

func (service *CandidateService) Restore(access Access, candidateID uint) error {
	var candidate models.Candidate
	err := service.engine.AllCandidates(access).
		Where("candidates.id = ?", candidateID).
		First(&candidate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("candidate %d: %w", candidateID, ErrNotFound)
	}
	if err != nil {
		return err
	}
	return service.candidates.SetArchived(candidate.ID, false)
}

// AddNote attaches the organization's note to a candidate. One note per
// (organization, candidate).
func (service *CandidateService) AddNote(access Access, candidateID uint, text string) (models.CandidateNote, error) {
	candidate, err := service.engine.VisibleCandidate(access, candidateID)
	if err != nil {
		return models.CandidateNote{}, err
	}

	org := access.Org()
	exists, err := service.candidates.NoteExists(candidate.ID, org)
	if err != nil {
		return models.CandidateNote{}, err
	}
	if exists {
		return models.CandidateNote{}, &IntegrityConflictError{
			Constraint: "uidx_candidate_note_org",
			Detail:     fmt.Sprintf("organization already has a note on candidate %d", candidate.ID),
		}
	}

	note := models.CandidateNote{
		CandidateID: candidate.ID,
		OrgKind:     org.Kind,
		OrgID:       org.ID,
		Text:        text,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := service.candidates.CreateNote(&note); err != nil {
		return models.CandidateNote{}, err
	}
	return note, nil
}
