package services

import (
	_ "embed"
	"fmt"

	"github.com/ka4a/talentai-sub000/internal/models"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed default_statuses.yaml
var defaultStatusesYAML []byte

type statusSeed struct {
	Name         string `yaml:"name"`
	Group        string `yaml:"group"`
	Stage        string `yaml:"stage"`
	DealStage    string `yaml:"deal_stage"`
	Default      bool   `yaml:"default"`
	DefaultOrder int    `yaml:"default_order"`
}

type statusCatalogFile struct {
	Client []statusSeed `yaml:"client"`
	Agency []statusSeed `yaml:"agency"`
}

// CatalogSeeder creates the default proposal status catalog for a new
// organization. Organization creation must invoke it; proposals cannot be
// created for an org without a seeded catalog.
type CatalogSeeder struct {
	catalog statusCatalogFile
}

func NewCatalogSeeder() (*CatalogSeeder, error) {
	var catalog statusCatalogFile
	if err := yaml.Unmarshal(defaultStatusesYAML, &catalog); err != nil {
		return nil, fmt.Errorf("parse default status catalog: %w", err)
	}
	if len(catalog.Client) == 0 || len(catalog.Agency) == 0 {
		return nil, fmt.Errorf("default status catalog is incomplete: %d client, %d agency entries",
			len(catalog.Client), len(catalog.Agency))
	}
	return &CatalogSeeder{catalog: catalog}, nil
}

// Seed inserts the default catalog rows for the organization within the
// caller's transaction.
func (seeder *CatalogSeeder) Seed(tx *gorm.DB, org models.OrgRef) error {
	seeds := seeder.catalog.Client
	if org.Kind == models.OrgKindAgency {
		seeds = seeder.catalog.Agency
	}

	for _, seed := range seeds {
		status := models.ProposalStatus{
			Org:          org,
			Name:         seed.Name,
			Group:        models.StatusGroup(seed.Group),
			Stage:        models.StatusStage(seed.Stage),
			DealStage:    models.DealStage(seed.DealStage),
			Default:      seed.Default,
			DefaultOrder: seed.DefaultOrder,
		}
		if err := tx.Create(&status).Error; err != nil {
			return fmt.Errorf("seed status %q for %s %d: %w", seed.Name, org.Kind, org.ID, err)
		}
	}
	return nil
}
