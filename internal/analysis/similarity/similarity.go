package similarity

import (
	"fmt"
	"math"
)

// NeutralScore is substituted when the embedding collaborator fails after
// its retries. Semantic match degrades, it never aborts the analysis.
const NeutralScore = 50.0

// Cosine computes the cosine similarity of two equal-length vectors.
// Returns 0 when either vector has zero norm.
func Cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector length mismatch: %d vs %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// ScoreFromSimilarity rescales a cosine similarity in [-1,1] to [0,100],
// rounded to two decimals.
func ScoreFromSimilarity(similarity float64) float64 {
	score := (similarity + 1) / 2 * 100
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return math.Round(score*100) / 100
}

// ScoreFromVectors computes the semantic component directly from two
// embedding vectors.
func ScoreFromVectors(a, b []float64) (float64, error) {
	sim, err := Cosine(a, b)
	if err != nil {
		return 0, err
	}
	return ScoreFromSimilarity(sim), nil
}

// ExperienceAlignment derives the experience component from the semantic
// score and the number of identified experience gaps.
func ExperienceAlignment(semanticScore float64, gapCount int) float64 {
	aligned := semanticScore - 10.0*float64(gapCount)
	if aligned < 0 {
		aligned = 0
	}
	return math.Round(aligned*100) / 100
}
