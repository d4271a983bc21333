package services

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/ka4a/talentai-sub000/internal/db"
	"github.com/ka4a/talentai-sub000/internal/models"
	"gorm.io/gorm"
)

type fixture struct {
	t        *testing.T
	database *gorm.DB
	repos    *db.Repositories
	engine   *VisibilityEngine
	resolver *ProfileResolver
	orgs     *OrganizationService
	sink     *LogNotificationSink

	userSequence int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "talentai-test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	seeder, err := NewCatalogSeeder()
	if err != nil {
		t.Fatalf("load default status catalog: %v", err)
	}

	repos := db.NewRepositories(database)
	return &fixture{
		t:        t,
		database: database,
		repos:    repos,
		engine:   NewVisibilityEngine(database),
		resolver: NewProfileResolver(database),
		orgs:     NewOrganizationService(database, repos.Organizations, seeder),
		sink:     NewLogNotificationSink(),
	}
}

func (f *fixture) createUser(name string) models.User {
	f.t.Helper()
	f.userSequence++
	user := models.User{
		Email:        fmt.Sprintf("%s-%d@example.com", name, f.userSequence),
		PasswordHash: "x",
		FirstName:    name,
	}
	if err := f.database.Create(&user).Error; err != nil {
		f.t.Fatalf("create user %s: %v", name, err)
	}
	return user
}

func (f *fixture) createClient(name string) models.Client {
	f.t.Helper()
	client, err := f.orgs.CreateClient(name, nil)
	if err != nil {
		f.t.Fatalf("create client %s: %v", name, err)
	}
	return client
}

func (f *fixture) createAgency(name string) models.Agency {
	f.t.Helper()
	agency, err := f.orgs.CreateAgency(name, nil)
	if err != nil {
		f.t.Fatalf("create agency %s: %v", name, err)
	}
	return agency
}

func (f *fixture) assignRole(user models.User, kind models.RoleKind, orgID uint) {
	f.t.Helper()
	if err := f.orgs.AssignRole(user.ID, kind, orgID); err != nil {
		f.t.Fatalf("assign role %s to user %d: %v", kind, user.ID, err)
	}
}

func (f *fixture) accessFor(user models.User) Access {
	f.t.Helper()
	profile, err := f.resolver.Resolve(user.ID)
	if err != nil {
		f.t.Fatalf("resolve profile for user %d: %v", user.ID, err)
	}
	return profile.Access(f.database)
}

func (f *fixture) signedContract(agency models.Agency, client models.Client) models.Contract {
	f.t.Helper()
	contract := models.Contract{
		AgencyID:       agency.ID,
		ClientID:       client.ID,
		Status:         models.ContractStatusSigned,
		IsClientSigned: true,
		IsAgencySigned: true,
	}
	if err := f.database.Create(&contract).Error; err != nil {
		f.t.Fatalf("create contract: %v", err)
	}
	return contract
}

func (f *fixture) createJob(org models.OrgRef, clientID uint, owner models.User, title string, openings int) models.Job {
	f.t.Helper()
	job := models.Job{
		Org:           org,
		ClientID:      clientID,
		OwnerID:       owner.ID,
		Title:         title,
		Status:        models.JobStatusOpen,
		OpeningsCount: openings,
	}
	if err := f.database.Create(&job).Error; err != nil {
		f.t.Fatalf("create job %s: %v", title, err)
	}
	return job
}

func (f *fixture) activateAgencyOnJob(job models.Job, agency models.Agency) {
	f.t.Helper()
	jac := models.JobAgencyContract{JobID: job.ID, AgencyID: agency.ID, IsActive: true}
	if err := f.database.Create(&jac).Error; err != nil {
		f.t.Fatalf("create job agency contract: %v", err)
	}
}

func (f *fixture) addJobMember(job models.Job, user models.User) {
	f.t.Helper()
	member := models.JobMember{JobID: job.ID, UserID: user.ID}
	if err := f.database.Create(&member).Error; err != nil {
		f.t.Fatalf("create job member: %v", err)
	}
}

func (f *fixture) addJobManager(job models.Job, user models.User) {
	f.t.Helper()
	manager := models.JobManager{JobID: job.ID, UserID: user.ID}
	if err := f.database.Create(&manager).Error; err != nil {
		f.t.Fatalf("create job manager: %v", err)
	}
}

func (f *fixture) createCandidate(org models.OrgRef, owner models.User, firstName string) models.Candidate {
	f.t.Helper()
	f.userSequence++
	candidate := models.Candidate{
		Org:       org,
		OwnerID:   owner.ID,
		FirstName: firstName,
		Email:     fmt.Sprintf("%s-%d@candidates.example.com", firstName, f.userSequence),
	}
	if err := f.database.Create(&candidate).Error; err != nil {
		f.t.Fatalf("create candidate %s: %v", firstName, err)
	}
	return candidate
}

// statusOf finds the organization's seeded catalog status in the given group.
func (f *fixture) statusOf(org models.OrgRef, group models.StatusGroup) models.ProposalStatus {
	f.t.Helper()
	var status models.ProposalStatus
	err := f.database.
		Where("org_kind = ? AND org_id = ? AND status_group = ?", org.Kind, org.ID, group).
		Order("default_order ASC").
		First(&status).Error
	if err != nil {
		f.t.Fatalf("find %s status for %s %d: %v", group, org.Kind, org.ID, err)
	}
	return status
}

func (f *fixture) statusByName(org models.OrgRef, name string) models.ProposalStatus {
	f.t.Helper()
	var status models.ProposalStatus
	err := f.database.
		Where("org_kind = ? AND org_id = ? AND name = ?", org.Kind, org.ID, name).
		First(&status).Error
	if err != nil {
		f.t.Fatalf("find status %q for %s %d: %v", name, org.Kind, org.ID, err)
	}
	return status
}

func (f *fixture) createProposal(job models.Job, candidate models.Candidate, status models.ProposalStatus, actor models.User) models.Proposal {
	f.t.Helper()
	stage := status.Stage.ProposalStage()
	proposal := models.Proposal{
		JobID:                 job.ID,
		CandidateID:           candidate.ID,
		StatusID:              status.ID,
		Stage:                 stage,
		CreatedByID:           actor.ID,
		IsRejected:            status.Group == models.GroupRejected,
		ListedAt:              time.Now(),
		StatusLastUpdatedByID: &actor.ID,
	}
	if stage == models.StageLonglist {
		proposal.LonglistedByID = &actor.ID
	} else {
		proposal.ShortlistedByID = &actor.ID
	}
	if err := f.database.Create(&proposal).Error; err != nil {
		f.t.Fatalf("create proposal: %v", err)
	}
	return proposal
}

func (f *fixture) reloadProposal(proposalID uint) models.Proposal {
	f.t.Helper()
	var proposal models.Proposal
	if err := f.database.Preload("Status").First(&proposal, proposalID).Error; err != nil {
		f.t.Fatalf("reload proposal %d: %v", proposalID, err)
	}
	return proposal
}

func countRows(t *testing.T, query *gorm.DB) int64 {
	t.Helper()
	var total int64
	if err := query.Count(&total).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return total
}
