// Package projection simulates the score a resume would reach if the
// proposed bullet rewrites were applied, without re-running feature
// detection on the rewritten text.
package projection

import (
	"math"
	"strings"

	"resumescore/internal/analysis/scoring"
	"resumescore/internal/types"
)

// AssumedRewriteScore is the optimistic impact score assumed for a
// rewritten bullet. A heuristic point estimate, not a measured outcome;
// kept as a named constant so the assumption stays visible and revisable.
const AssumedRewriteScore = 95

// DefaultRewriteMinutes is the assumed effort to apply the rewrites,
// used by the ROI heuristic.
const DefaultRewriteMinutes = 15

// Simulator replays score aggregation with hypothetical improved
// components. It shares the aggregator with the live scoring path so the
// weight vector and rounding rule can never drift.
type Simulator struct {
	aggregator *scoring.Aggregator
}

// NewSimulator creates a simulator over the shared aggregator
func NewSimulator(aggregator *scoring.Aggregator) *Simulator {
	return &Simulator{aggregator: aggregator}
}

// Project computes the projected score after applying the rewrites.
// The impact component substitutes AssumedRewriteScore for every rewritten
// bullet; the keyword component adds the distinct newly introduced
// keywords to the implied current match count, capped at the total.
func (s *Simulator) Project(
	current types.ScoreResult,
	rewrites []types.Rewrite,
	originalBullets []types.BulletAnalysis,
	totalKeywords int,
) types.ProjectionResult {
	newImpact := projectedImpactScore(originalBullets, rewrites)
	newCoverage := projectedKeywordCoverage(
		current.Breakdown[scoring.ComponentKeywordMatch].Score,
		rewrites,
		totalKeywords,
	)

	components := make(map[string]float64, len(current.Breakdown))
	for name, component := range current.Breakdown {
		components[name] = component.Score
	}
	components[scoring.ComponentImpactStrength] = newImpact
	components[scoring.ComponentKeywordMatch] = newCoverage

	projected := s.aggregator.CalculateFinalScore(components)

	improvement := projected.FinalScore - current.FinalScore
	percentageGain := 0.0
	if current.FinalScore > 0 {
		percentageGain = round2(float64(improvement) / float64(current.FinalScore) * 100)
	}

	return types.ProjectionResult{
		CurrentScore:   current.FinalScore,
		ProjectedScore: projected.FinalScore,
		Improvement:    improvement,
		PercentageGain: percentageGain,
		Breakdown: map[string]float64{
			scoring.ComponentImpactStrength: round2(newImpact - current.Breakdown[scoring.ComponentImpactStrength].Score),
			scoring.ComponentKeywordMatch:   round2(newCoverage - current.Breakdown[scoring.ComponentKeywordMatch].Score),
		},
	}
}

// projectedImpactScore averages bullet scores with rewritten bullets
// substituted by the assumed post-rewrite score. Bullets are matched to
// rewrites by exact original text.
func projectedImpactScore(bullets []types.BulletAnalysis, rewrites []types.Rewrite) float64 {
	if len(bullets) == 0 {
		return 0.0
	}

	rewritten := make(map[string]struct{}, len(rewrites))
	for _, r := range rewrites {
		rewritten[r.Original] = struct{}{}
	}

	total := 0
	for _, bullet := range bullets {
		if _, ok := rewritten[bullet.Text]; ok {
			total += AssumedRewriteScore
		} else {
			total += bullet.ImpactScore
		}
	}

	return round2(float64(total) / float64(len(bullets)))
}

// projectedKeywordCoverage reconstructs the implied match count from the
// current coverage percentage, adds distinct newly introduced keywords,
// caps at the keyword total, and recomputes the percentage.
func projectedKeywordCoverage(currentCoverage float64, rewrites []types.Rewrite, totalKeywords int) float64 {
	if totalKeywords == 0 {
		return currentCoverage
	}

	added := make(map[string]struct{})
	for _, rewrite := range rewrites {
		for _, kw := range rewrite.KeywordsAdded {
			added[strings.ToLower(kw)] = struct{}{}
		}
	}

	currentMatches := currentCoverage / 100 * float64(totalKeywords)
	newMatches := math.Min(currentMatches+float64(len(added)), float64(totalKeywords))

	return round2(newMatches / float64(totalKeywords) * 100)
}

// CalculateROI rates the projection as improvement points per minute of
// assumed effort.
func CalculateROI(currentScore, projectedScore, minutes int) types.RewriteROI {
	if minutes <= 0 {
		minutes = DefaultRewriteMinutes
	}

	improvement := projectedScore - currentScore
	roi := float64(improvement) / float64(minutes)

	recommendation := "Optional"
	if roi > 0.5 {
		recommendation = "Highly Recommended"
	} else if roi > 0.25 {
		recommendation = "Recommended"
	}

	return types.RewriteROI{
		ROIScore:         round2(roi),
		EstimatedMinutes: minutes,
		Recommendation:   recommendation,
	}
}

// EstimatePassRate maps a score onto fixed screening pass-rate bands
func EstimatePassRate(score int) types.PassRateEstimate {
	switch {
	case score >= 85:
		return types.PassRateEstimate{PassRate: 90, Confidence: "High"}
	case score >= 75:
		return types.PassRateEstimate{PassRate: 75, Confidence: "Medium-High"}
	case score >= 65:
		return types.PassRateEstimate{PassRate: 60, Confidence: "Medium"}
	case score >= 50:
		return types.PassRateEstimate{PassRate: 40, Confidence: "Medium-Low"}
	default:
		return types.PassRateEstimate{PassRate: 20, Confidence: "Low"}
	}
}

// BeforeAfter summarizes the tier movement between current and projected
type BeforeAfter struct {
	Current     TierSummary `json:"current"`
	Projected   TierSummary `json:"projected"`
	Improvement int         `json:"improvement"`
	TierChange  bool        `json:"tierChange"`
}

// TierSummary pairs a score with its grade and pass-rate tier
type TierSummary struct {
	Score    int                    `json:"score"`
	Grade    string                 `json:"grade"`
	PassRate types.PassRateEstimate `json:"passRate"`
}

// CompareBeforeAfter builds the before/after comparison for a projection
func CompareBeforeAfter(currentScore, projectedScore int) BeforeAfter {
	current := TierSummary{
		Score:    currentScore,
		Grade:    scoring.Grade(currentScore),
		PassRate: EstimatePassRate(currentScore),
	}
	projected := TierSummary{
		Score:    projectedScore,
		Grade:    scoring.Grade(projectedScore),
		PassRate: EstimatePassRate(projectedScore),
	}

	return BeforeAfter{
		Current:     current,
		Projected:   projected,
		Improvement: projectedScore - currentScore,
		TierChange:  current.Grade != projected.Grade,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
