package impact

import (
	"strings"
	"testing"

	"resumescore/internal/types"
)

func TestDetectQuantification(t *testing.T) {
	analyzer := NewAnalyzer(DefaultLexicon(), 0)

	tests := []struct {
		bullet   string
		expected bool
	}{
		{"Increased revenue by 25%", true},
		{"Led team of 5 engineers", true},
		{"Managed $2M budget", true},
		{"Served 10+ enterprise clients", true},
		{"Delivered 3x throughput improvement", true},
		{"Cut onboarding from 6 weeks to 2 weeks", true},
		{"Reduced costs by 40 percent", true},
		{"Responsible for various tasks", false},
		{"Worked on team projects", false},
		{"Improved the deployment process", false},
	}

	for _, tt := range tests {
		t.Run(tt.bullet, func(t *testing.T) {
			if got := analyzer.DetectQuantification(tt.bullet); got != tt.expected {
				t.Errorf("DetectQuantification(%q) = %v, expected %v", tt.bullet, got, tt.expected)
			}
		})
	}
}

func TestScoreFeatures(t *testing.T) {
	tests := []struct {
		name                                                  string
		hasQuantification, hasStrongVerb, isConcise, isActive bool
		hasWeakPhrase                                         bool
		expected                                              int
	}{
		{"all positive features", true, true, true, true, false, 100},
		{"no features at all", false, false, false, false, true, 0},
		{"quantified and strong only", true, true, false, false, false, 70},
		{"neutral verb credit", false, false, true, true, false, 40},
		{"weak phrase cancels neutral credit", false, false, true, true, true, 10},
		{"weak phrase floor at zero", false, false, false, false, true, 0},
		{"strong verb survives weak phrase", false, true, true, true, true, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreFeatures(tt.hasQuantification, tt.hasStrongVerb, tt.isConcise, tt.isActive, tt.hasWeakPhrase)
			if got != tt.expected {
				t.Errorf("Expected score %d, got %d", tt.expected, got)
			}
			if got < 0 || got > 100 {
				t.Errorf("Score %d out of [0,100]", got)
			}
		})
	}
}

func TestAnalyzeBulletBounds(t *testing.T) {
	analyzer := NewAnalyzer(DefaultLexicon(), 0)

	t.Run("strong bullet scores high", func(t *testing.T) {
		result := analyzer.AnalyzeBullet("Increased revenue by 25% by launching a new pricing engine")
		if result.ImpactScore < 80 {
			t.Errorf("Expected score >= 80 for strong bullet, got %d", result.ImpactScore)
		}
		if !result.HasQuantification {
			t.Error("Expected quantification to be detected")
		}
	})

	t.Run("weak bullet scores low", func(t *testing.T) {
		result := analyzer.AnalyzeBullet("Responsible for helping with documentation that was updated by the team whenever the quarterly planning process happened to require additional material for stakeholders")
		if result.ImpactScore > 30 {
			t.Errorf("Expected score <= 30 for weak bullet, got %d", result.ImpactScore)
		}
	})
}

func TestAnalyzeBulletLabels(t *testing.T) {
	analyzer := NewAnalyzer(DefaultLexicon(), 0)

	t.Run("weak phrase produces labeled weakness", func(t *testing.T) {
		result := analyzer.AnalyzeBullet("Responsible for maintaining the build system")

		found := false
		for _, w := range result.Weaknesses {
			if w == "weak phrase: 'responsible for'" {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected weak phrase label, got weaknesses: %v", result.Weaknesses)
		}

		// weak phrase suppresses the missing-strong-verb weakness
		for _, w := range result.Weaknesses {
			if w == "no strong action verb" {
				t.Error("Did not expect missing-verb weakness alongside a weak phrase")
			}
		}
	})

	t.Run("strong bullet collects strengths", func(t *testing.T) {
		result := analyzer.AnalyzeBullet("Launched checkout flow serving 200 customers")

		expected := map[string]bool{
			"contains metrics":   false,
			"strong action verb": false,
			"concise":            false,
			"active voice":       false,
		}
		for _, s := range result.Strengths {
			if _, ok := expected[s]; ok {
				expected[s] = true
			}
		}
		for label, seen := range expected {
			if !seen {
				t.Errorf("Expected strength %q, got %v", label, result.Strengths)
			}
		}
	})

	t.Run("verbose bullet is flagged", func(t *testing.T) {
		long := "Implemented " + strings.Repeat("very ", 30) + "complex system"
		result := analyzer.AnalyzeBullet(long)

		found := false
		for _, w := range result.Weaknesses {
			if w == "too verbose" {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected verbosity weakness, got %v", result.Weaknesses)
		}
	})

	t.Run("passive voice is flagged", func(t *testing.T) {
		result := analyzer.AnalyzeBullet("The pipeline was maintained by the platform team")

		found := false
		for _, w := range result.Weaknesses {
			if w == "passive voice" {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected passive voice weakness, got %v", result.Weaknesses)
		}
	})
}

func TestAnalyzeAll(t *testing.T) {
	analyzer := NewAnalyzer(DefaultLexicon(), 0)

	t.Run("empty input yields empty summary", func(t *testing.T) {
		summary := analyzer.AnalyzeAll(nil)
		if summary.TotalBullets != 0 || summary.AverageScore != 0 {
			t.Errorf("Expected zero summary, got %+v", summary)
		}
		if summary.Bullets == nil {
			t.Error("Expected empty slice, got nil")
		}
	})

	t.Run("summary counts weak and strong bullets", func(t *testing.T) {
		bullets := []string{
			"Increased revenue by 25% through pricing experiments",
			"Responsible for helping with documentation that was reviewed by the team across many different quarterly planning cycles and stakeholder meetings",
			"Launched internal dashboard used by 40 engineers",
		}
		summary := analyzer.AnalyzeAll(bullets)

		if summary.TotalBullets != 3 {
			t.Errorf("Expected 3 bullets, got %d", summary.TotalBullets)
		}
		if summary.StrongBullets < 2 {
			t.Errorf("Expected at least 2 strong bullets, got %d", summary.StrongBullets)
		}
		if summary.WeakBullets < 1 {
			t.Errorf("Expected at least 1 weak bullet, got %d", summary.WeakBullets)
		}
		if summary.AverageScore < 0 || summary.AverageScore > 100 {
			t.Errorf("Average %f out of [0,100]", summary.AverageScore)
		}
	})
}

func TestWeakestBullets(t *testing.T) {
	analyzed := []types.BulletAnalysis{
		{Text: "a", ImpactScore: 90},
		{Text: "b", ImpactScore: 30},
		{Text: "c", ImpactScore: 50},
		{Text: "d", ImpactScore: 20},
	}

	t.Run("returns lowest scores ascending", func(t *testing.T) {
		weakest := WeakestBullets(analyzed, 2)
		if len(weakest) != 2 {
			t.Fatalf("Expected 2 bullets, got %d", len(weakest))
		}
		if weakest[0].ImpactScore != 20 || weakest[1].ImpactScore != 30 {
			t.Errorf("Expected scores [20, 30], got [%d, %d]", weakest[0].ImpactScore, weakest[1].ImpactScore)
		}
	})

	t.Run("count larger than input returns all", func(t *testing.T) {
		weakest := WeakestBullets(analyzed, 10)
		if len(weakest) != 4 {
			t.Errorf("Expected 4 bullets, got %d", len(weakest))
		}
	})

	t.Run("ties preserve input order", func(t *testing.T) {
		tied := []types.BulletAnalysis{
			{Text: "first", ImpactScore: 40},
			{Text: "second", ImpactScore: 40},
			{Text: "third", ImpactScore: 40},
		}
		weakest := WeakestBullets(tied, 3)
		if weakest[0].Text != "first" || weakest[1].Text != "second" || weakest[2].Text != "third" {
			t.Errorf("Tie order not preserved: %v", weakest)
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		WeakestBullets(analyzed, 2)
		if analyzed[0].ImpactScore != 90 {
			t.Error("Input slice was reordered")
		}
	})
}

func BenchmarkAnalyzeBullet(b *testing.B) {
	analyzer := NewAnalyzer(DefaultLexicon(), 0)
	bullet := "Increased revenue by 25% by launching a new pricing engine for 200+ enterprise customers"

	for b.Loop() {
		analyzer.AnalyzeBullet(bullet)
	}
}
