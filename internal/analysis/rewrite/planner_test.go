package rewrite

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"resumescore/internal/analysis/projection"
	"resumescore/internal/types"
)

type fakeGenerator struct {
	responses map[string]string
	err       error
	failFor   map[string]error
	calls     int
}

func (f *fakeGenerator) RewriteBullet(_ context.Context, bullet string, keywords []string, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if err, ok := f.failFor[bullet]; ok {
		return "", err
	}
	if resp, ok := f.responses[bullet]; ok {
		return resp, nil
	}
	return fmt.Sprintf("Delivered %s using %s", bullet, strings.Join(keywords, ", ")), nil
}

func TestRewriteBullets(t *testing.T) {
	ctx := context.Background()

	t.Run("rewrites each weak bullet", func(t *testing.T) {
		gen := &fakeGenerator{}
		planner := NewPlanner(gen, 0, 0, nil)

		weak := []types.BulletAnalysis{
			{Text: "worked on backend", ImpactScore: 20},
			{Text: "helped with testing", ImpactScore: 30},
		}
		rewrites := planner.RewriteBullets(ctx, weak, []string{"docker"}, "job description")

		if len(rewrites) != 2 {
			t.Fatalf("Expected 2 rewrites, got %d", len(rewrites))
		}
		if rewrites[0].Original != "worked on backend" {
			t.Errorf("Original not preserved: %q", rewrites[0].Original)
		}
		if rewrites[0].ImprovementScore != projection.AssumedRewriteScore-20 {
			t.Errorf("Expected improvement %d, got %d",
				projection.AssumedRewriteScore-20, rewrites[0].ImprovementScore)
		}
	})

	t.Run("respects the bullet limit", func(t *testing.T) {
		gen := &fakeGenerator{}
		planner := NewPlanner(gen, 2, 0, nil)

		weak := []types.BulletAnalysis{
			{Text: "one", ImpactScore: 10},
			{Text: "two", ImpactScore: 20},
			{Text: "three", ImpactScore: 30},
		}
		rewrites := planner.RewriteBullets(ctx, weak, nil, "")

		if len(rewrites) != 2 {
			t.Errorf("Expected 2 rewrites, got %d", len(rewrites))
		}
		if gen.calls != 2 {
			t.Errorf("Expected 2 generator calls, got %d", gen.calls)
		}
	})

	t.Run("one failure drops one bullet not the batch", func(t *testing.T) {
		gen := &fakeGenerator{
			failFor: map[string]error{"two": errors.New("model unavailable")},
		}
		planner := NewPlanner(gen, 0, 0, nil)

		weak := []types.BulletAnalysis{
			{Text: "one", ImpactScore: 10},
			{Text: "two", ImpactScore: 20},
			{Text: "three", ImpactScore: 30},
		}
		rewrites := planner.RewriteBullets(ctx, weak, nil, "")

		if len(rewrites) != 2 {
			t.Fatalf("Expected 2 rewrites, got %d", len(rewrites))
		}
		for _, r := range rewrites {
			if r.Original == "two" {
				t.Error("Failed bullet should have been dropped")
			}
		}
	})

	t.Run("all failures yield empty result", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("model unavailable")}
		planner := NewPlanner(gen, 0, 0, nil)

		rewrites := planner.RewriteBullets(ctx, []types.BulletAnalysis{{Text: "one"}}, nil, "")
		if len(rewrites) != 0 {
			t.Errorf("Expected no rewrites, got %v", rewrites)
		}
	})

	t.Run("empty rewrite after cleaning is skipped", func(t *testing.T) {
		gen := &fakeGenerator{responses: map[string]string{"one": `""`}}
		planner := NewPlanner(gen, 0, 0, nil)

		rewrites := planner.RewriteBullets(ctx, []types.BulletAnalysis{{Text: "one"}}, nil, "")
		if len(rewrites) != 0 {
			t.Errorf("Expected no rewrites, got %v", rewrites)
		}
	})
}

func TestCleanRewrite(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips surrounding quotes",
			input:    `"Delivered measurable results"`,
			expected: "Delivered measurable results",
		},
		{
			name:     "strips bullet marker",
			input:    "- delivered measurable results",
			expected: "Delivered measurable results",
		},
		{
			name:     "strips known preamble",
			input:    "Here is the rewritten bullet: delivered measurable results",
			expected: "Delivered measurable results",
		},
		{
			name:     "strips preamble case insensitively",
			input:    "REWRITTEN: shipped the feature",
			expected: "Shipped the feature",
		},
		{
			name:     "capitalizes first letter",
			input:    "launched the platform",
			expected: "Launched the platform",
		},
		{
			name:     "trims whitespace",
			input:    "   Shipped it   ",
			expected: "Shipped it",
		},
		{
			name:     "empty input stays empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanRewrite(tt.input); got != tt.expected {
				t.Errorf("CleanRewrite(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIdentifyAddedKeywords(t *testing.T) {
	tests := []struct {
		name      string
		original  string
		rewritten string
		keywords  []string
		expected  []string
	}{
		{
			name:      "newly introduced keyword is reported",
			original:  "worked on backend",
			rewritten: "Built Docker-based backend services",
			keywords:  []string{"docker", "kubernetes"},
			expected:  []string{"docker"},
		},
		{
			name:      "keyword already present is not added",
			original:  "maintained docker images",
			rewritten: "Optimized Docker image builds",
			keywords:  []string{"docker"},
			expected:  []string{},
		},
		{
			name:      "matching is case insensitive",
			original:  "worked on infra",
			rewritten: "Automated infra with TERRAFORM",
			keywords:  []string{"terraform"},
			expected:  []string{"terraform"},
		},
		{
			name:      "order follows the keyword list",
			original:  "did things",
			rewritten: "Shipped kubernetes and docker tooling",
			keywords:  []string{"docker", "kubernetes"},
			expected:  []string{"docker", "kubernetes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IdentifyAddedKeywords(tt.original, tt.rewritten, tt.keywords)
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Expected %v, got %v", tt.expected, got)
				}
			}
		})
	}
}
