package keywords

import (
	"strings"
	"testing"

	"resumescore/internal/types"
)

func TestCoverageScore(t *testing.T) {
	tests := []struct {
		name     string
		matched  float64
		total    int
		expected float64
	}{
		{"seven of ten", 7, 10, 70.0},
		{"all matched", 10, 10, 100.0},
		{"none matched", 0, 10, 0.0},
		{"partial credit", 5.5, 10, 55.0},
		{"zero total", 5, 0, 0.0},
		{"over count is clamped", 12, 10, 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoverageScore(tt.matched, tt.total); got != tt.expected {
				t.Errorf("CoverageScore(%f, %d) = %f, expected %f", tt.matched, tt.total, got, tt.expected)
			}
		})
	}
}

func TestExtractKeywords(t *testing.T) {
	analyzer := NewAnalyzer(DefaultLexicon(), 0)

	t.Run("empty text yields no keywords", func(t *testing.T) {
		if got := analyzer.ExtractKeywords(""); len(got) != 0 {
			t.Errorf("Expected no keywords, got %v", got)
		}
	})

	t.Run("frequent terms rank first", func(t *testing.T) {
		text := "python python python docker kubernetes"
		got := analyzer.ExtractKeywords(text)
		if len(got) == 0 {
			t.Fatal("Expected keywords")
		}
		if got[0] != "python" {
			t.Errorf("Expected python first, got %v", got)
		}
	})

	t.Run("stop words are excluded", func(t *testing.T) {
		got := analyzer.ExtractKeywords("the quick and the python with the docker")
		for _, kw := range got {
			for _, word := range strings.Fields(kw) {
				if word == "the" || word == "and" || word == "with" {
					t.Errorf("Stop word leaked into keyword %q", kw)
				}
			}
		}
	})

	t.Run("respects the top-N limit", func(t *testing.T) {
		limited := NewAnalyzer(DefaultLexicon(), 5)
		text := "python go rust java docker kubernetes terraform ansible postgres redis kafka"
		got := limited.ExtractKeywords(text)
		if len(got) > 5 {
			t.Errorf("Expected at most 5 keywords, got %d", len(got))
		}
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		text := "python docker kubernetes aws terraform ci cd microservices python docker"
		first := analyzer.ExtractKeywords(text)
		for i := 0; i < 5; i++ {
			again := analyzer.ExtractKeywords(text)
			if len(again) != len(first) {
				t.Fatalf("Non-deterministic length: %d vs %d", len(again), len(first))
			}
			for j := range first {
				if first[j] != again[j] {
					t.Fatalf("Non-deterministic order at %d: %q vs %q", j, first[j], again[j])
				}
			}
		}
	})
}

func TestCategorize(t *testing.T) {
	analyzer := NewAnalyzer(DefaultLexicon(), 0)

	t.Run("known terms land in their categories", func(t *testing.T) {
		categorized := analyzer.Categorize([]string{"python", "leadership", "docker", "aws certified"})

		if !contains(categorized[types.CategoryTechnicalSkill], "python") {
			t.Errorf("Expected python in technical skills, got %v", categorized[types.CategoryTechnicalSkill])
		}
		if !contains(categorized[types.CategorySoftSkill], "leadership") {
			t.Errorf("Expected leadership in soft skills, got %v", categorized[types.CategorySoftSkill])
		}
		if !contains(categorized[types.CategoryTool], "docker") {
			t.Errorf("Expected docker in tools, got %v", categorized[types.CategoryTool])
		}
	})

	t.Run("unknown terms become domain terms", func(t *testing.T) {
		categorized := analyzer.Categorize([]string{"fintech"})
		if !contains(categorized[types.CategoryDomainTerm], "fintech") {
			t.Errorf("Expected domain term, got %v", categorized[types.CategoryDomainTerm])
		}
	})

	t.Run("tagging is not exclusive", func(t *testing.T) {
		categorized := analyzer.Categorize([]string{"kubernetes"})
		hits := 0
		if contains(categorized[types.CategoryTechnicalSkill], "kubernetes") {
			hits++
		}
		if contains(categorized[types.CategoryTool], "kubernetes") {
			hits++
		}
		if hits < 2 {
			t.Errorf("Expected kubernetes in multiple categories, got %v", categorized)
		}
		if contains(categorized[types.CategoryDomainTerm], "kubernetes") {
			t.Error("Categorized keyword must not also be a domain term")
		}
	})

	t.Run("all categories are present even when empty", func(t *testing.T) {
		categorized := analyzer.Categorize(nil)
		for _, cat := range []types.KeywordCategory{
			types.CategoryTechnicalSkill, types.CategorySoftSkill,
			types.CategoryTool, types.CategoryCertification, types.CategoryDomainTerm,
		} {
			if _, ok := categorized[cat]; !ok {
				t.Errorf("Expected category %s to be present", cat)
			}
		}
	})
}

func TestMatchKeywords(t *testing.T) {
	analyzer := NewAnalyzer(DefaultLexicon(), 0)

	resume := "Senior engineer with Python and Docker experience, managing deployments"

	t.Run("whole word presence is exact", func(t *testing.T) {
		exact, _, _ := analyzer.MatchKeywords(resume, []string{"python", "docker"})
		if len(exact) != 2 {
			t.Errorf("Expected 2 exact matches, got %v", exact)
		}
	})

	t.Run("lemma substring is partial", func(t *testing.T) {
		// "pipelines" lemmatizes to "pipeline", present only inside "pipelined"
		exact, partial, _ := analyzer.MatchKeywords("Built a pipelined deployment system", []string{"pipelines"})
		if len(exact) != 0 {
			t.Errorf("Expected no exact match, got %v", exact)
		}
		if len(partial) != 1 || partial[0] != "pipelines" {
			t.Errorf("Expected pipelines as partial match, got %v", partial)
		}
	})

	t.Run("absent keyword is missing", func(t *testing.T) {
		_, _, missing := analyzer.MatchKeywords(resume, []string{"kubernetes"})
		if len(missing) != 1 || missing[0] != "kubernetes" {
			t.Errorf("Expected kubernetes missing, got %v", missing)
		}
	})

	t.Run("matching is case insensitive", func(t *testing.T) {
		exact, _, _ := analyzer.MatchKeywords("PYTHON DEVELOPER", []string{"python"})
		if len(exact) != 1 {
			t.Errorf("Expected case-insensitive exact match, got %v", exact)
		}
	})

	t.Run("buckets partition the keyword list", func(t *testing.T) {
		kws := []string{"python", "docker", "kubernetes", "terraform"}
		exact, partial, missing := analyzer.MatchKeywords(resume, kws)
		if len(exact)+len(partial)+len(missing) != len(kws) {
			t.Errorf("Buckets do not partition: %d exact, %d partial, %d missing from %d keywords",
				len(exact), len(partial), len(missing), len(kws))
		}
	})
}

func TestSkillsAlignmentScore(t *testing.T) {
	analyzer := NewAnalyzer(DefaultLexicon(), 0)

	t.Run("neutral when no technical keywords", func(t *testing.T) {
		score := analyzer.SkillsAlignmentScore("any resume", map[types.KeywordCategory][]string{
			types.CategoryTechnicalSkill: {},
		})
		if score != 50.0 {
			t.Errorf("Expected neutral 50.0, got %f", score)
		}
	})

	t.Run("full overlap scores 100", func(t *testing.T) {
		score := analyzer.SkillsAlignmentScore("python and go services", map[types.KeywordCategory][]string{
			types.CategoryTechnicalSkill: {"python", "go"},
		})
		if score != 100.0 {
			t.Errorf("Expected 100.0, got %f", score)
		}
	})

	t.Run("half overlap scores 50", func(t *testing.T) {
		score := analyzer.SkillsAlignmentScore("python services", map[types.KeywordCategory][]string{
			types.CategoryTechnicalSkill: {"python", "rust"},
		})
		if score != 50.0 {
			t.Errorf("Expected 50.0, got %f", score)
		}
	})
}

func TestAnalyzeEndToEnd(t *testing.T) {
	analyzer := NewAnalyzer(DefaultLexicon(), 0)

	jobDescription := `We are hiring a backend engineer. Requirements: Python, Docker,
Kubernetes. Experience with Python microservices and Docker deployments required.
Kubernetes cluster operations a plus.`

	resume := `Backend engineer with 6 years of Python experience. Built and shipped
FastAPI microservices packaged with Docker. Deployed services to production daily.`

	result := analyzer.Analyze(jobDescription, resume)

	if result.TotalKeywords == 0 {
		t.Fatal("Expected keywords to be extracted")
	}
	if result.TotalKeywords != len(result.Matched)+len(result.PartialMatches)+len(result.Missing) {
		t.Errorf("Buckets do not partition the keyword set: %d != %d + %d + %d",
			result.TotalKeywords, len(result.Matched), len(result.PartialMatches), len(result.Missing))
	}

	if !contains(result.Matched, "python") {
		t.Errorf("Expected python matched, got %v", result.Matched)
	}
	if !contains(result.Matched, "docker") {
		t.Errorf("Expected docker matched, got %v", result.Matched)
	}
	if !contains(result.Missing, "kubernetes") {
		t.Errorf("Expected kubernetes missing, got %v", result.Missing)
	}

	if result.CoverageScore <= 0 || result.CoverageScore >= 100 {
		t.Errorf("Expected coverage strictly between 0 and 100, got %f", result.CoverageScore)
	}
	if result.SkillsScore < 0 || result.SkillsScore > 100 {
		t.Errorf("Skills score %f out of [0,100]", result.SkillsScore)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func BenchmarkAnalyze(b *testing.B) {
	analyzer := NewAnalyzer(DefaultLexicon(), 0)
	jobDescription := strings.Repeat("Python Docker Kubernetes microservices engineer with cloud experience. ", 20)
	resume := strings.Repeat("Senior Python engineer building Docker images and cloud services. ", 20)

	for b.Loop() {
		analyzer.Analyze(jobDescription, resume)
	}
}
