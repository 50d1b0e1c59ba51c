package scoring

import (
	"math"
	"testing"
)

func TestDefaultWeightsSumToOne(t *testing.T) {
	weights := DefaultWeights()

	sum := 0.0
	for _, w := range weights {
		sum += w
	}

	if math.Abs(sum-1.0) > WeightTolerance {
		t.Errorf("Expected weights to sum to 1.0, got %f", sum)
	}

	if err := weights.Validate(); err != nil {
		t.Errorf("Expected default weights to validate, got: %v", err)
	}
}

func TestWeightsValidateRejectsBadVector(t *testing.T) {
	tests := []struct {
		name    string
		weights Weights
	}{
		{
			name: "sum too high",
			weights: Weights{
				ComponentKeywordMatch:  0.60,
				ComponentSemanticMatch: 0.60,
			},
		},
		{
			name: "sum too low",
			weights: Weights{
				ComponentKeywordMatch: 0.50,
			},
		},
		{
			name:    "empty vector",
			weights: Weights{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.weights.Validate(); err == nil {
				t.Error("Expected validation error but got none")
			}
		})
	}
}

func TestCalculateFinalScore(t *testing.T) {
	aggregator, err := NewAggregator(DefaultWeights(), nil)
	if err != nil {
		t.Fatalf("Failed to create aggregator: %v", err)
	}

	tests := []struct {
		name       string
		components map[string]float64
		expected   int
	}{
		{
			name: "all perfect scores",
			components: map[string]float64{
				ComponentKeywordMatch:        100,
				ComponentSemanticMatch:       100,
				ComponentImpactStrength:      100,
				ComponentSkillsAlignment:     100,
				ComponentExperienceAlignment: 100,
				ComponentFormatCompliance:    100,
			},
			expected: 100,
		},
		{
			name: "all zero scores",
			components: map[string]float64{
				ComponentKeywordMatch:        0,
				ComponentSemanticMatch:       0,
				ComponentImpactStrength:      0,
				ComponentSkillsAlignment:     0,
				ComponentExperienceAlignment: 0,
				ComponentFormatCompliance:    0,
			},
			expected: 0,
		},
		{
			name: "mixed realistic scores",
			components: map[string]float64{
				ComponentKeywordMatch:        70,
				ComponentSemanticMatch:       80,
				ComponentImpactStrength:      65,
				ComponentSkillsAlignment:     75,
				ComponentExperienceAlignment: 70,
				ComponentFormatCompliance:    90,
			},
			expected: 74,
		},
		{
			name: "out of range scores are clamped",
			components: map[string]float64{
				ComponentKeywordMatch:        150,
				ComponentSemanticMatch:       -20,
				ComponentImpactStrength:      100,
				ComponentSkillsAlignment:     100,
				ComponentExperienceAlignment: 100,
				ComponentFormatCompliance:    100,
			},
			// 150 treated as 100, -20 treated as 0
			expected: 75,
		},
		{
			name:       "missing components default to zero",
			components: map[string]float64{},
			expected:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := aggregator.CalculateFinalScore(tt.components)

			if result.FinalScore != tt.expected {
				t.Errorf("Expected final score %d, got %d", tt.expected, result.FinalScore)
			}

			if result.FinalScore < 0 || result.FinalScore > 100 {
				t.Errorf("Final score %d out of [0,100]", result.FinalScore)
			}

			if len(result.Breakdown) != 6 {
				t.Errorf("Expected 6 breakdown entries, got %d", len(result.Breakdown))
			}

			for name, component := range result.Breakdown {
				if component.Score < 0 || component.Score > 100 {
					t.Errorf("Component %s score %f out of [0,100]", name, component.Score)
				}
				expectedContribution := math.Round(component.Score*component.Weight) / 100
				if math.Abs(component.Contribution-expectedContribution) > 0.011 {
					t.Errorf("Component %s contribution %f does not match score*weight %f",
						name, component.Contribution, expectedContribution)
				}
			}
		})
	}
}

func TestCalculateFinalScoreIsDeterministic(t *testing.T) {
	aggregator, err := NewAggregator(DefaultWeights(), nil)
	if err != nil {
		t.Fatalf("Failed to create aggregator: %v", err)
	}

	components := map[string]float64{
		ComponentKeywordMatch:        70,
		ComponentSemanticMatch:       80,
		ComponentImpactStrength:      65,
		ComponentSkillsAlignment:     75,
		ComponentExperienceAlignment: 70,
		ComponentFormatCompliance:    90,
	}

	first := aggregator.CalculateFinalScore(components)
	for i := 0; i < 10; i++ {
		result := aggregator.CalculateFinalScore(components)
		if result.FinalScore != first.FinalScore {
			t.Fatalf("Non-deterministic final score: %d vs %d", result.FinalScore, first.FinalScore)
		}
		for name, component := range result.Breakdown {
			if component != first.Breakdown[name] {
				t.Fatalf("Non-deterministic breakdown for %s", name)
			}
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{150, 100},
		{-20, 0},
		{0, 0},
		{100, 100},
		{55.5, 55.5},
	}

	for _, tt := range tests {
		if got := Clamp(tt.input); got != tt.expected {
			t.Errorf("Clamp(%f) = %f, expected %f", tt.input, got, tt.expected)
		}
	}
}

func TestGrade(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{100, "A+"},
		{95, "A+"},
		{90, "A"},
		{85, "A-"},
		{80, "B+"},
		{75, "B"},
		{74, "B-"},
		{70, "B-"},
		{65, "C+"},
		{60, "C"},
		{55, "C-"},
		{50, "D"},
		{49, "F"},
		{0, "F"},
	}

	for _, tt := range tests {
		if got := Grade(tt.score); got != tt.expected {
			t.Errorf("Grade(%d) = %s, expected %s", tt.score, got, tt.expected)
		}
	}
}

func TestPercentile(t *testing.T) {
	tests := []struct {
		score    int
		expected int
	}{
		{95, 95},
		{85, 90},
		{80, 85},
		{75, 75},
		{70, 65},
		{65, 55},
		{60, 45},
		{55, 35},
		{50, 25},
		{40, 20},
		{4, 5}, // floor of 5
	}

	for _, tt := range tests {
		if got := Percentile(tt.score); got != tt.expected {
			t.Errorf("Percentile(%d) = %d, expected %d", tt.score, got, tt.expected)
		}
	}
}

func TestTopImprovements(t *testing.T) {
	aggregator, err := NewAggregator(DefaultWeights(), nil)
	if err != nil {
		t.Fatalf("Failed to create aggregator: %v", err)
	}

	result := aggregator.CalculateFinalScore(map[string]float64{
		ComponentKeywordMatch:        40, // gain (100-40)*0.30 = 18 -> High
		ComponentSemanticMatch:       80, // gain 5 -> Low
		ComponentImpactStrength:      50, // gain 7.5 -> Medium
		ComponentSkillsAlignment:     90, // gain 1 -> Low
		ComponentExperienceAlignment: 90,
		ComponentFormatCompliance:    90,
	})

	improvements := TopImprovements(result.Breakdown)
	if len(improvements) != 6 {
		t.Fatalf("Expected 6 improvement entries, got %d", len(improvements))
	}

	if improvements[0].Component != ComponentKeywordMatch {
		t.Errorf("Expected keyword_match first, got %s", improvements[0].Component)
	}
	if improvements[0].Priority != "High" {
		t.Errorf("Expected High priority, got %s", improvements[0].Priority)
	}

	for i := 1; i < len(improvements); i++ {
		if improvements[i].PotentialGain > improvements[i-1].PotentialGain {
			t.Errorf("Improvements not sorted descending at index %d", i)
		}
	}

	for _, imp := range improvements {
		if imp.Component == ComponentImpactStrength && imp.Priority != "Medium" {
			t.Errorf("Expected Medium priority for impact_strength, got %s", imp.Priority)
		}
		if imp.Component == ComponentSemanticMatch && imp.Priority != "Low" {
			t.Errorf("Expected Low priority for semantic_match, got %s", imp.Priority)
		}
	}
}

func TestCompareToBenchmark(t *testing.T) {
	tests := []struct {
		name       string
		score      int
		industry   string
		comparison string
	}{
		{"above average general", 85, "general", "Above Average"},
		{"average general", 70, "general", "Average"},
		{"below average general", 50, "general", "Below Average"},
		{"tech has higher bar", 80, "tech", "Average"},
		{"unknown industry falls back", 85, "retail", "Above Average"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CompareToBenchmark(tt.score, tt.industry)
			if result.Comparison != tt.comparison {
				t.Errorf("Expected %s, got %s", tt.comparison, result.Comparison)
			}
		})
	}
}

func BenchmarkCalculateFinalScore(b *testing.B) {
	aggregator, err := NewAggregator(DefaultWeights(), nil)
	if err != nil {
		b.Fatalf("Failed to create aggregator: %v", err)
	}

	components := map[string]float64{
		ComponentKeywordMatch:        70,
		ComponentSemanticMatch:       80,
		ComponentImpactStrength:      65,
		ComponentSkillsAlignment:     75,
		ComponentExperienceAlignment: 70,
		ComponentFormatCompliance:    90,
	}

	for b.Loop() {
		aggregator.CalculateFinalScore(components)
	}
}
