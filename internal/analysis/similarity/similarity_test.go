package similarity

import (
	"math"
	"testing"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"identical vectors", []float64{1, 2, 3}, []float64{1, 2, 3}, 1.0},
		{"opposite vectors", []float64{1, 0}, []float64{-1, 0}, -1.0},
		{"orthogonal vectors", []float64{1, 0}, []float64{0, 1}, 0.0},
		{"zero vector", []float64{0, 0}, []float64{1, 1}, 0.0},
		{"both zero", []float64{0, 0}, []float64{0, 0}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cosine(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Cosine = %f, expected %f", got, tt.expected)
			}
		})
	}

	t.Run("length mismatch is an error", func(t *testing.T) {
		if _, err := Cosine([]float64{1, 2}, []float64{1, 2, 3}); err == nil {
			t.Error("Expected error for mismatched lengths")
		}
	})
}

func TestScoreFromSimilarity(t *testing.T) {
	tests := []struct {
		similarity float64
		expected   float64
	}{
		{1.0, 100.0},
		{0.0, 50.0},
		{-1.0, 0.0},
		{0.5, 75.0},
		{0.6, 80.0},
		// out-of-range inputs stay clamped
		{1.5, 100.0},
		{-1.5, 0.0},
	}

	for _, tt := range tests {
		if got := ScoreFromSimilarity(tt.similarity); got != tt.expected {
			t.Errorf("ScoreFromSimilarity(%f) = %f, expected %f", tt.similarity, got, tt.expected)
		}
	}
}

func TestScoreFromVectors(t *testing.T) {
	t.Run("identical vectors score 100", func(t *testing.T) {
		score, err := ScoreFromVectors([]float64{0.5, 0.5}, []float64{0.5, 0.5})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if score != 100.0 {
			t.Errorf("Expected 100.0, got %f", score)
		}
	})

	t.Run("zero vector scores midpoint", func(t *testing.T) {
		score, err := ScoreFromVectors([]float64{0, 0}, []float64{1, 1})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if score != 50.0 {
			t.Errorf("Expected 50.0, got %f", score)
		}
	})

	t.Run("mismatch propagates the error", func(t *testing.T) {
		if _, err := ScoreFromVectors([]float64{1}, []float64{1, 2}); err == nil {
			t.Error("Expected error for mismatched lengths")
		}
	})
}

func TestExperienceAlignment(t *testing.T) {
	tests := []struct {
		name     string
		semantic float64
		gaps     int
		expected float64
	}{
		{"no gaps keeps semantic score", 80.0, 0, 80.0},
		{"each gap costs ten points", 80.0, 2, 60.0},
		{"floored at zero", 30.0, 5, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExperienceAlignment(tt.semantic, tt.gaps); got != tt.expected {
				t.Errorf("ExperienceAlignment(%f, %d) = %f, expected %f", tt.semantic, tt.gaps, got, tt.expected)
			}
		})
	}
}
