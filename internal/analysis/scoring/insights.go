package scoring

import (
	"sort"

	"resumescore/internal/types"
)

// Grade returns the letter grade for a final score
func Grade(score int) string {
	switch {
	case score >= 95:
		return "A+"
	case score >= 90:
		return "A"
	case score >= 85:
		return "A-"
	case score >= 80:
		return "B+"
	case score >= 75:
		return "B"
	case score >= 70:
		return "B-"
	case score >= 65:
		return "C+"
	case score >= 60:
		return "C"
	case score >= 55:
		return "C-"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

// Interpretation returns the human-readable reading of a final score
func Interpretation(score int) string {
	switch {
	case score >= 85:
		return "Excellent - Your resume is highly optimized for ATS systems"
	case score >= 75:
		return "Very Good - Your resume should perform well in ATS screening"
	case score >= 65:
		return "Good - Your resume is competitive but has room for improvement"
	case score >= 50:
		return "Fair - Consider implementing the suggested improvements"
	default:
		return "Needs Improvement - Your resume may struggle with ATS screening"
	}
}

// Percentile estimates a percentile rank from a fixed lookup table, not a
// real distribution.
func Percentile(score int) int {
	switch {
	case score >= 90:
		return 95
	case score >= 85:
		return 90
	case score >= 80:
		return 85
	case score >= 75:
		return 75
	case score >= 70:
		return 65
	case score >= 65:
		return 55
	case score >= 60:
		return 45
	case score >= 55:
		return 35
	case score >= 50:
		return 25
	default:
		return max(5, score/2)
	}
}

// TopImprovements ranks components by potential point gain,
// (100 - score) * weight / 100, descending.
func TopImprovements(breakdown map[string]types.ScoreComponent) []types.ImprovementPriority {
	improvements := make([]types.ImprovementPriority, 0, len(breakdown))

	for component, data := range breakdown {
		gain := round2((100 - data.Score) * data.Weight / 100)

		priority := "Low"
		if gain > 10 {
			priority = "High"
		} else if gain > 5 {
			priority = "Medium"
		}

		improvements = append(improvements, types.ImprovementPriority{
			Component:     component,
			CurrentScore:  data.Score,
			PotentialGain: gain,
			Priority:      priority,
		})
	}

	sort.SliceStable(improvements, func(i, j int) bool {
		if improvements[i].PotentialGain != improvements[j].PotentialGain {
			return improvements[i].PotentialGain > improvements[j].PotentialGain
		}
		return improvements[i].Component < improvements[j].Component
	})

	return improvements
}

// BenchmarkComparison compares a score against fixed industry bands
type BenchmarkComparison struct {
	Industry        string `json:"industry"`
	YourScore       int    `json:"yourScore"`
	IndustryAverage int    `json:"industryAverage"`
	Comparison      string `json:"comparison"`
	Percentile      int    `json:"percentile"`
}

type benchmark struct {
	low, average, high int
}

var industryBenchmarks = map[string]benchmark{
	"general": {low: 50, average: 65, high: 80},
	"tech":    {low: 55, average: 70, high: 85},
	"finance": {low: 52, average: 68, high: 83},
}

// CompareToBenchmark places a score against an industry band. Unknown
// industries fall back to the general band.
func CompareToBenchmark(score int, industry string) BenchmarkComparison {
	b, ok := industryBenchmarks[industry]
	if !ok {
		industry = "general"
		b = industryBenchmarks["general"]
	}

	comparison := "Below Average"
	if score >= b.high {
		comparison = "Above Average"
	} else if score >= b.average {
		comparison = "Average"
	}

	return BenchmarkComparison{
		Industry:        industry,
		YourScore:       score,
		IndustryAverage: b.average,
		Comparison:      comparison,
		Percentile:      Percentile(score),
	}
}

// Insights bundles the secondary derivations for a score result
func Insights(result types.ScoreResult) types.ScoreInsights {
	return types.ScoreInsights{
		Grade:           Grade(result.FinalScore),
		Interpretation:  Interpretation(result.FinalScore),
		Percentile:      Percentile(result.FinalScore),
		TopImprovements: TopImprovements(result.Breakdown),
	}
}
