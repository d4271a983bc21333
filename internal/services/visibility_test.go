package services

import (
	"errors"
	"testing"

	"github.com/ka4a/talentai-sub000/internal/models"
)

// recruitingWorld is the shared scenario: one client with two jobs, one
// contracted agency whose recruiter works only the first job, and one
// uncontracted bystander agency.
type recruitingWorld struct {
	f *fixture

	client       models.Client
	agency       models.Agency
	otherAgency  models.Agency
	clientAdmin  models.User
	standardUser models.User
	agencyAdmin  models.User
	recruiter    models.User
	outsider     models.User

	jobAssigned   models.Job
	jobUnassigned models.Job
}

func buildRecruitingWorld(t *testing.T) *recruitingWorld {
	t.Helper()
	f := newFixture(t)
	world := &recruitingWorld{f: f}

	world.client = f.createClient("Acme")
	world.agency = f.createAgency("Scouts")
	world.otherAgency = f.createAgency("Bystanders")

	world.clientAdmin = f.createUser("client-admin")
	f.assignRole(world.clientAdmin, models.RoleClientAdministrator, world.client.ID)
	world.standardUser = f.createUser("hiring-manager")
	f.assignRole(world.standardUser, models.RoleClientStandardUser, world.client.ID)
	world.agencyAdmin = f.createUser("agency-admin")
	f.assignRole(world.agencyAdmin, models.RoleAgencyAdministrator, world.agency.ID)
	world.recruiter = f.createUser("recruiter")
	f.assignRole(world.recruiter, models.RoleRecruiter, world.agency.ID)
	world.outsider = f.createUser("outsider")
	f.assignRole(world.outsider, models.RoleAgencyAdministrator, world.otherAgency.ID)

	f.signedContract(world.agency, world.client)

	world.jobAssigned = f.createJob(world.client.Ref(), world.client.ID, world.clientAdmin, "Backend Engineer", 1)
	world.jobUnassigned = f.createJob(world.client.Ref(), world.client.ID, world.clientAdmin, "Data Engineer", 1)
	f.activateAgencyOnJob(world.jobAssigned, world.agency)
	f.activateAgencyOnJob(world.jobUnassigned, world.agency)
	f.addJobMember(world.jobAssigned, world.recruiter)
	f.addJobManager(world.jobAssigned, world.standardUser)

	return world
}

func visibleJobIDs(t *testing.T, f *fixture, access Access) map[uint]bool {
	t.Helper()
	var jobs []models.Job
	if err := f.engine.Jobs(access).Find(&jobs).Error; err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	ids := make(map[uint]bool, len(jobs))
	for _, job := range jobs {
		ids[job.ID] = true
	}
	return ids
}

func TestClientAdministratorSeesAllOrgJobs(t *testing.T) {
	world := buildRecruitingWorld(t)
	ids := visibleJobIDs(t, world.f, world.f.accessFor(world.clientAdmin))
	if !ids[world.jobAssigned.ID] || !ids[world.jobUnassigned.ID] {
		t.Fatalf("expected both org jobs visible, got %v", ids)
	}
}

func TestClientStandardUserSeesOnlyManagedJobs(t *testing.T) {
	world := buildRecruitingWorld(t)
	ids := visibleJobIDs(t, world.f, world.f.accessFor(world.standardUser))
	if !ids[world.jobAssigned.ID] {
		t.Fatal("expected the managed job to be visible")
	}
	if ids[world.jobUnassigned.ID] {
		t.Fatal("expected the unmanaged job to be hidden")
	}
}

func TestRecruiterJobsAreSubsetOfAgencyAdministratorJobs(t *testing.T) {
	world := buildRecruitingWorld(t)
	adminIDs := visibleJobIDs(t, world.f, world.f.accessFor(world.agencyAdmin))
	recruiterIDs := visibleJobIDs(t, world.f, world.f.accessFor(world.recruiter))

	for id := range recruiterIDs {
		if !adminIDs[id] {
			t.Fatalf("recruiter sees job %d the administrator cannot", id)
		}
	}
	if !adminIDs[world.jobUnassigned.ID] {
		t.Fatal("expected administrator to see the contracted job the recruiter lacks")
	}
	if recruiterIDs[world.jobUnassigned.ID] {
		t.Fatal("expected recruiter not to see jobs without personal assignment")
	}
}

func TestUncontractedAgencySeesNothing(t *testing.T) {
	world := buildRecruitingWorld(t)
	ids := visibleJobIDs(t, world.f, world.f.accessFor(world.outsider))
	if len(ids) != 0 {
		t.Fatalf("expected no visible jobs, got %v", ids)
	}
}

func TestInvisibleJobReportsNotFound(t *testing.T) {
	world := buildRecruitingWorld(t)
	_, err := world.f.engine.VisibleJob(world.f.accessFor(world.outsider), world.jobAssigned.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestClientSeesCandidatesProposedToItsJobs(t *testing.T) {
	world := buildRecruitingWorld(t)
	f := world.f

	agencyCandidate := f.createCandidate(world.agency.Ref(), world.agencyAdmin, "Taro")
	unproposed := f.createCandidate(world.agency.Ref(), world.agencyAdmin, "Hanako")
	status := f.statusOf(world.agency.Ref(), models.GroupAssociatedToJob)
	f.createProposal(world.jobAssigned, agencyCandidate, status, world.agencyAdmin)

	access := f.accessFor(world.clientAdmin)
	var candidates []models.Candidate
	if err := f.engine.Candidates(access).Find(&candidates).Error; err != nil {
		t.Fatalf("list candidates: %v", err)
	}

	seen := make(map[uint]bool)
	for _, candidate := range candidates {
		seen[candidate.ID] = true
	}
	if !seen[agencyCandidate.ID] {
		t.Fatal("expected the proposed agency candidate to be visible to the client")
	}
	if seen[unproposed.ID] {
		t.Fatal("expected the unproposed agency candidate to stay hidden from the client")
	}
}

func TestArchivedCandidatesExcludedFromDefaultCollection(t *testing.T) {
	world := buildRecruitingWorld(t)
	f := world.f

	candidate := f.createCandidate(world.agency.Ref(), world.agencyAdmin, "Taro")
	if err := f.database.Model(&models.Candidate{}).Where("id = ?", candidate.ID).Update("archived", true).Error; err != nil {
		t.Fatalf("archive candidate: %v", err)
	}

	access := f.accessFor(world.agencyAdmin)
	if total := countRows(t, f.engine.Candidates(access).Where("candidates.id = ?", candidate.ID)); total != 0 {
		t.Fatal("expected archived candidate excluded from the default collection")
	}
	if total := countRows(t, f.engine.AllCandidates(access).Where("candidates.id = ?", candidate.ID)); total != 1 {
		t.Fatal("expected archived candidate in the all collection")
	}
}

func TestContractsScopedToOwnOrganization(t *testing.T) {
	world := buildRecruitingWorld(t)
	f := world.f

	agencyTotal := countRows(t, f.engine.Contracts(f.accessFor(world.agencyAdmin)))
	if agencyTotal != 1 {
		t.Fatalf("expected agency to see 1 contract, got %d", agencyTotal)
	}
	outsiderTotal := countRows(t, f.engine.Contracts(f.accessFor(world.outsider)))
	if outsiderTotal != 0 {
		t.Fatalf("expected bystander agency to see 0 contracts, got %d", outsiderTotal)
	}
}

func TestClientRolesCannotProposeCandidates(t *testing.T) {
	world := buildRecruitingWorld(t)
	f := world.f

	candidate := f.createCandidate(world.client.Ref(), world.clientAdmin, "Taro")
	access := f.accessFor(world.clientAdmin)
	allowed, err := access.CanCreateProposal(world.jobAssigned, candidate)
	if err != nil {
		t.Fatalf("can create proposal: %v", err)
	}
	if allowed {
		t.Fatal("expected client administrator to be denied proposal creation")
	}
}

func TestRecruiterProposalGuardRequiresAssignment(t *testing.T) {
	world := buildRecruitingWorld(t)
	f := world.f

	candidate := f.createCandidate(world.agency.Ref(), world.recruiter, "Taro")
	access := f.accessFor(world.recruiter)

	allowed, err := access.CanCreateProposal(world.jobAssigned, candidate)
	if err != nil || !allowed {
		t.Fatalf("expected proposal allowed on the assigned job, got allowed=%v err=%v", allowed, err)
	}

	allowed, err = access.CanCreateProposal(world.jobUnassigned, candidate)
	if err != nil {
		t.Fatalf("can create proposal: %v", err)
	}
	if allowed {
		t.Fatal("expected proposal denied on a contracted but unassigned job")
	}
}
