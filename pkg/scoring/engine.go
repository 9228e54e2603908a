package scoring

import (
	"fmt"
	"sort"

	"github.com/agriscope/agriscope/pkg/agronomy"
)

// Factor is the interface that all suitability factors implement.
type Factor interface {
	// Key returns the machine-readable factor identifier.
	Key() string
	// Name returns the human-readable factor name.
	Name() string
	// Evaluate computes the factor's score contribution for one crop
	// against the environment snapshot.
	Evaluate(profile agronomy.CropProfile, env *agronomy.EnvironmentSnapshot) FactorResult
}

// Engine runs all configured factors against every crop profile and
// produces a ranked Result.
type Engine struct {
	factors  []Factor
	profiles []agronomy.CropProfile
	weights  DefaultWeights
}

// NewEngine creates a scoring engine with the given factors and the
// built-in crop knowledge base.
func NewEngine(factors ...Factor) *Engine {
	return &Engine{
		factors:  factors,
		profiles: agronomy.Profiles(),
		weights:  Defaults(),
	}
}

// WithProfiles replaces the crop knowledge base. Used by tests and by
// deployments that carry regional profile overrides.
func (e *Engine) WithProfiles(profiles []agronomy.CropProfile) *Engine {
	e.profiles = profiles
	return e
}

// EvaluateCrop scores a single crop against the snapshot, returning the
// clamped total and the flat factor findings.
func (e *Engine) EvaluateCrop(profile agronomy.CropProfile, env *agronomy.EnvironmentSnapshot) (float64, []string, []FactorResult) {
	var total float64
	var notes []string
	var breakdown []FactorResult

	for _, f := range e.factors {
		fr := f.Evaluate(profile, env)
		total += fr.Points
		notes = append(notes, fr.Notes...)
		breakdown = append(breakdown, fr)
	}

	if total > e.weights.MaxScore {
		total = e.weights.MaxScore
	}
	return total, notes, breakdown
}

// Recommend scores every crop in the knowledge base against the request
// and returns the ranked, budget-filtered top recommendations.
func (e *Engine) Recommend(req Request) (*Result, error) {
	if len(e.factors) == 0 {
		return nil, fmt.Errorf("no factors configured")
	}

	env := &agronomy.EnvironmentSnapshot{
		Location: req.Location,
		Soil:     req.Soil,
		Weather:  req.Weather,
		Market:   req.Market,
	}
	env.Normalize()

	farmSize := req.FarmSize
	if farmSize == 0 {
		farmSize = 1
	}

	var recs []Recommendation
	for _, profile := range e.profiles {
		score, notes, breakdown := e.EvaluateCrop(profile, env)
		if score <= e.weights.MinSuitability {
			continue
		}

		rec := Recommendation{
			Crop:                profile.Name,
			SuitabilityScore:    score,
			Factors:             notes,
			Breakdown:           breakdown,
			MarketData:          env.Quote(profile.Name),
			GrowingRequirements: profile,
		}
		rec.computeEconomics(profile, farmSize)
		rec.Confidence = Confidence(score, notes, rec.MarketData)
		rec.Recommendation = RecommendationText(score, rec.Confidence, notes)
		recs = append(recs, rec)
	}

	// Rank by the mean of suitability and confidence. The budget filter
	// runs after ranking so relative order is stable regardless of budget.
	sort.SliceStable(recs, func(i, j int) bool {
		return (recs[i].SuitabilityScore+recs[i].Confidence)/2 >
			(recs[j].SuitabilityScore+recs[j].Confidence)/2
	})

	if req.Budget > 0 {
		limit := req.Budget * e.weights.BudgetHeadroom
		filtered := recs[:0]
		for _, rec := range recs {
			if rec.EstimatedCost <= limit {
				filtered = append(filtered, rec)
			}
		}
		recs = filtered
	}

	if len(recs) > e.weights.TopN {
		recs = recs[:e.weights.TopN]
	}

	return &Result{
		Recommendations:    recs,
		TotalCropsAnalyzed: len(e.profiles),
	}, nil
}
