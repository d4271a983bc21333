package services

import (
	"sort"
	"time"

	"github.com/ka4a/talentai-sub000/internal/models"
	"github.com/shopspring/decimal"
)

// PipelineBuckets holds predicted revenue per deal stage plus their sum.
type PipelineBuckets struct {
	FirstRound        decimal.Decimal `json:"first_round"`
	IntermediateRound decimal.Decimal `json:"intermediate_round"`
	FinalRound        decimal.Decimal `json:"final_round"`
	Offer             decimal.Decimal `json:"offer"`
	Total             decimal.Decimal `json:"total"`
}

// PipelineSummary is the fixed-shape output of the deal pipeline. Total
// holds full predicted fees; Realistic discounts each stage by how likely
// a deal at that stage is to close.
type PipelineSummary struct {
	Total     PipelineBuckets `json:"total"`
	Realistic PipelineBuckets `json:"realistic"`
}

var dealStageRank = map[models.DealStage]int{
	models.DealStageFirstRound:        1,
	models.DealStageIntermediateRound: 2,
	models.DealStageFinalRound:        3,
	models.DealStageOffer:             4,
}

var realismCoefficients = map[models.DealStage]decimal.Decimal{
	models.DealStageFirstRound:        decimal.NewFromFloat(0.1),
	models.DealStageIntermediateRound: decimal.NewFromFloat(0.3),
	models.DealStageFinalRound:        decimal.NewFromFloat(0.5),
	models.DealStageOffer:             decimal.NewFromFloat(0.8),
}

// PipelineService projects an agency's in-flight proposals into a revenue
// forecast. It is read-only: it never mutates proposals and sees only what
// the caller's visibility filter admits.
type PipelineService struct {
	engine   *VisibilityEngine
	exchange ExchangeRates
}

func NewPipelineService(engine *VisibilityEngine, exchange ExchangeRates) *PipelineService {
	return &PipelineService{engine: engine, exchange: exchange}
}

type pipelineEntry struct {
	jobID         uint
	candidateID   uint
	stage         models.DealStage
	salary        decimal.Decimal
	openingsCount int
}

// Summary aggregates the agency's visible proposals per deal stage as of the
// given time. statusLastUpdatedBy, when set, narrows the proposal set to
// those last touched by that user before any selection or valuation runs.
//
// For each (job, candidate) only the highest deal stage reached counts. Each
// job contributes at most openings_count candidates, the highest salaries
// first. Every counted salary is converted to the base currency; a missing
// exchange rate aborts the whole summary.
func (service *PipelineService) Summary(access Access, agency models.Agency, statusLastUpdatedBy *uint, asOf time.Time) (PipelineSummary, error) {
	query := service.engine.Proposals(access).
		Joins("JOIN proposal_statuses ON proposal_statuses.id = proposals.status_id").
		Where("proposal_statuses.deal_stage <> ''").
		Where("proposals.is_rejected = ?", false).
		Preload("Status").
		Preload("Job").
		Preload("Candidate")
	if statusLastUpdatedBy != nil {
		query = query.Where("proposals.status_last_updated_by_id = ?", *statusLastUpdatedBy)
	}

	var proposals []models.Proposal
	if err := query.Find(&proposals).Error; err != nil {
		return PipelineSummary{}, err
	}

	entries, err := service.selectHighestStages(proposals, asOf)
	if err != nil {
		return PipelineSummary{}, err
	}
	entries = capByOpenings(entries)

	feeCoefficient := agency.FeeCoefficient()
	summary := PipelineSummary{}
	for _, entry := range entries {
		fee := entry.salary.Mul(feeCoefficient)
		summary.Total.add(entry.stage, fee)
		summary.Realistic.add(entry.stage, fee.Mul(realismCoefficients[entry.stage]))
	}
	summary.Total.sum()
	summary.Realistic.sum()
	return summary, nil
}

// selectHighestStages resolves duplicate proposals for one candidate on one
// job down to the single highest deal stage reached, converting salaries as
// it goes. Statuses without a deal stage rank are skipped.
func (service *PipelineService) selectHighestStages(proposals []models.Proposal, asOf time.Time) ([]pipelineEntry, error) {
	type pairKey struct {
		jobID       uint
		candidateID uint
	}
	best := make(map[pairKey]pipelineEntry)
	order := make([]pairKey, 0, len(proposals))

	for _, proposal := range proposals {
		stage := proposal.Status.DealStage
		rank, ranked := dealStageRank[stage]
		if !ranked {
			continue
		}

		key := pairKey{jobID: proposal.JobID, candidateID: proposal.CandidateID}
		current, seen := best[key]
		if seen && dealStageRank[current.stage] >= rank {
			continue
		}

		rate, err := service.exchange.Rate(proposal.Candidate.SalaryCurrency, asOf)
		if err != nil {
			return nil, err
		}

		entry := pipelineEntry{
			jobID:         proposal.JobID,
			candidateID:   proposal.CandidateID,
			stage:         stage,
			salary:        proposal.Candidate.CurrentSalary.Mul(rate),
			openingsCount: proposal.Job.OpeningsCount,
		}
		if !seen {
			order = append(order, key)
		}
		best[key] = entry
	}

	entries := make([]pipelineEntry, 0, len(best))
	for _, key := range order {
		entries = append(entries, best[key])
	}
	return entries, nil
}

// capByOpenings limits each job to its openings_count candidates, keeping
// the highest converted salaries when the cap bites.
func capByOpenings(entries []pipelineEntry) []pipelineEntry {
	byJob := make(map[uint][]pipelineEntry)
	jobOrder := make([]uint, 0)
	for _, entry := range entries {
		if _, seen := byJob[entry.jobID]; !seen {
			jobOrder = append(jobOrder, entry.jobID)
		}
		byJob[entry.jobID] = append(byJob[entry.jobID], entry)
	}

	capped := make([]pipelineEntry, 0, len(entries))
	for _, jobID := range jobOrder {
		jobEntries := byJob[jobID]
		sort.SliceStable(jobEntries, func(i, j int) bool {
			return jobEntries[i].salary.GreaterThan(jobEntries[j].salary)
		})
		limit := jobEntries[0].openingsCount
		if limit < 1 {
			limit = 1
		}
		if limit > len(jobEntries) {
			limit = len(jobEntries)
		}
		capped = append(capped, jobEntries[:limit]...)
	}
	return capped
}

func (buckets *PipelineBuckets) add(stage models.DealStage, amount decimal.Decimal) {
	switch stage {
	case models.DealStageFirstRound:
		buckets.FirstRound = buckets.FirstRound.Add(amount)
	case models.DealStageIntermediateRound:
		buckets.IntermediateRound = buckets.IntermediateRound.Add(amount)
	case models.DealStageFinalRound:
		buckets.FinalRound = buckets.FinalRound.Add(amount)
	case models.DealStageOffer:
		buckets.Offer = buckets.Offer.Add(amount)
	}
}

func (buckets *PipelineBuckets) sum() {
	buckets.Total = buckets.FirstRound.
		Add(buckets.IntermediateRound).
		Add(buckets.FinalRound).
		Add(buckets.Offer)
}
