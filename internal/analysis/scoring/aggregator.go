package scoring

import (
	"math"

	"resumescore/internal/errors"
	"resumescore/internal/types"
)

// Component names for the six weighted scores
const (
	ComponentKeywordMatch        = "keyword_match"
	ComponentSemanticMatch       = "semantic_match"
	ComponentImpactStrength      = "impact_strength"
	ComponentSkillsAlignment     = "skills_alignment"
	ComponentExperienceAlignment = "experience_alignment"
	ComponentFormatCompliance    = "format_compliance"
)

// WeightTolerance is the allowed deviation of the weight sum from 1.0
const WeightTolerance = 0.001

// Weights is the fixed component weight vector. It is configuration, not
// derived data: validated once at startup and shared read-only between the
// aggregator and the projection simulator.
type Weights map[string]float64

// DefaultWeights returns the standard weight vector
func DefaultWeights() Weights {
	return Weights{
		ComponentKeywordMatch:        0.30,
		ComponentSemanticMatch:       0.25,
		ComponentImpactStrength:      0.15,
		ComponentSkillsAlignment:     0.10,
		ComponentExperienceAlignment: 0.10,
		ComponentFormatCompliance:    0.10,
	}
}

// Validate checks the weight vector sums to 1.0 within tolerance. A failure
// here is a configuration error and fatal at startup.
func (w Weights) Validate() error {
	sum := 0.0
	for _, weight := range w {
		sum += weight
	}
	if math.Abs(sum-1.0) > WeightTolerance {
		return errors.NewConfigError(errors.ErrCodeInvalidWeights,
			"Component weights must sum to 1.0", nil).
			WithContext("sum", sum)
	}
	return nil
}

// Aggregator combines component scores into a final score with breakdown.
// Pure and deterministic: identical inputs always produce identical output.
type Aggregator struct {
	weights Weights
	logger  *errors.Logger
}

// NewAggregator creates an aggregator over a validated weight vector
func NewAggregator(weights Weights, logger *errors.Logger) (*Aggregator, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Aggregator{weights: weights, logger: logger}, nil
}

// Weights returns the weight vector the aggregator was built with
func (a *Aggregator) Weights() Weights {
	return a.weights
}

// CalculateFinalScore aggregates the six named component scores. Missing
// components default to 0 with a logged warning; each score is clamped to
// [0,100] before weighting. The final score is the rounded sum of
// contributions.
func (a *Aggregator) CalculateFinalScore(components map[string]float64) types.ScoreResult {
	breakdown := make(map[string]types.ScoreComponent, len(a.weights))
	finalScore := 0.0

	for component, weight := range a.weights {
		score, ok := components[component]
		if !ok {
			if a.logger != nil {
				a.logger.Warn("Missing score component, using 0", "component", component)
			}
			score = 0.0
		}

		score = Clamp(score)
		contribution := score * weight
		finalScore += contribution

		breakdown[component] = types.ScoreComponent{
			Score:        round2(score),
			Weight:       round2(weight * 100),
			Contribution: round2(contribution),
		}
	}

	return types.ScoreResult{
		FinalScore: int(math.Round(finalScore)),
		Breakdown:  breakdown,
	}
}

// Clamp bounds a component score to [0,100]
func Clamp(score float64) float64 {
	return math.Max(0.0, math.Min(100.0, score))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
