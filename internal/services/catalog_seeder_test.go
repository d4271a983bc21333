package services

import (
	"testing"

	"github.com/ka4a/talentai-sub000/internal/models"
)

func TestOrganizationCreationSeedsStatusCatalog(t *testing.T) {
	f := newFixture(t)
	client := f.createClient("Acme")
	agency := f.createAgency("Scouts")

	for _, org := range []models.OrgRef{client.Ref(), agency.Ref()} {
		total := countRows(t, f.database.Model(&models.ProposalStatus{}).
			Where("org_kind = ? AND org_id = ?", org.Kind, org.ID))
		if total == 0 {
			t.Fatalf("expected seeded catalog for %s %d", org.Kind, org.ID)
		}

		defaults := map[models.StatusStage]int{}
		var statuses []models.ProposalStatus
		if err := f.database.
			Where("org_kind = ? AND org_id = ? AND is_default = ?", org.Kind, org.ID, true).
			Find(&statuses).Error; err != nil {
			t.Fatalf("load default statuses: %v", err)
		}
		for _, status := range statuses {
			defaults[status.Stage]++
		}
		if defaults[models.StatusStageAssociated] == 0 {
			t.Fatalf("expected a default associated status for %s %d", org.Kind, org.ID)
		}
		if defaults[models.StatusStageSubmissions] == 0 {
			t.Fatalf("expected a default submissions status for %s %d", org.Kind, org.ID)
		}
	}
}

func TestSeededCatalogCoversLifecycleGroups(t *testing.T) {
	f := newFixture(t)
	client := f.createClient("Acme")

	required := []models.StatusGroup{
		models.GroupAssociatedToJob,
		models.GroupSubmittedToHiringManager,
		models.GroupInterviewing,
		models.GroupOffer,
		models.GroupPendingStart,
		models.GroupRejected,
	}
	for _, group := range required {
		total := countRows(t, f.database.Model(&models.ProposalStatus{}).
			Where("org_kind = ? AND org_id = ? AND status_group = ?", models.OrgKindClient, client.ID, group))
		if total == 0 {
			t.Fatalf("expected at least one %s status in the seeded catalog", group)
		}
	}
}

func TestSeededCatalogTagsDealStages(t *testing.T) {
	f := newFixture(t)
	agency := f.createAgency("Scouts")

	for _, dealStage := range []models.DealStage{
		models.DealStageFirstRound,
		models.DealStageIntermediateRound,
		models.DealStageFinalRound,
		models.DealStageOffer,
	} {
		total := countRows(t, f.database.Model(&models.ProposalStatus{}).
			Where("org_kind = ? AND org_id = ? AND deal_stage = ?", models.OrgKindAgency, agency.ID, dealStage))
		if total == 0 {
			t.Fatalf("expected a %s status in the seeded catalog", dealStage)
		}
	}
}
