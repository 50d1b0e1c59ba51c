package textnorm

import (
	"strings"
	"testing"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "collapses inline whitespace per line",
			input:    "Senior   Engineer\tat   Acme",
			expected: "Senior Engineer at Acme",
		},
		{
			name:     "limits blank runs to one empty line",
			input:    "EXPERIENCE\n\n\n\n- Built things",
			expected: "EXPERIENCE\n\n- Built things",
		},
		{
			name:     "normalizes typographic characters",
			input:    "Led “growth” team — 2019–2023",
			expected: `Led "growth" team - 2019-2023`,
		},
		{
			name:     "preserves line structure",
			input:    "- first bullet\n- second bullet",
			expected: "- first bullet\n- second bullet",
		},
		{
			name:     "trims surrounding whitespace",
			input:    "  \n  hello  \n  ",
			expected: "hello",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.input); got != tt.expected {
				t.Errorf("CleanText(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCleanTextIsIdempotent(t *testing.T) {
	inputs := []string{
		"Senior   Engineer\n\n\n\nEXPERIENCE\n- Built “things” — fast",
		"- bullet one\n- bullet two\n\nEDUCATION",
		"plain paragraph of text",
	}

	for _, input := range inputs {
		once := CleanText(input)
		twice := CleanText(once)
		if once != twice {
			t.Errorf("CleanText not idempotent:\nonce:  %q\ntwice: %q", once, twice)
		}
	}
}

func TestExtractBullets(t *testing.T) {
	t.Run("marker lines become bullets", func(t *testing.T) {
		text := "• Increased revenue by 25%\n- Launched new platform\n* Reduced costs significantly"
		bullets := ExtractBullets(text)
		if len(bullets) != 3 {
			t.Fatalf("Expected 3 bullets, got %d: %v", len(bullets), bullets)
		}
		if bullets[0] != "Increased revenue by 25%" {
			t.Errorf("Marker not stripped: %q", bullets[0])
		}
	})

	t.Run("continuation lines join the previous bullet", func(t *testing.T) {
		text := "- Led migration of legacy services\n  to a new platform with zero downtime"
		bullets := ExtractBullets(text)
		if len(bullets) != 1 {
			t.Fatalf("Expected 1 bullet, got %d: %v", len(bullets), bullets)
		}
		if !strings.Contains(bullets[0], "zero downtime") {
			t.Errorf("Continuation not joined: %q", bullets[0])
		}
	})

	t.Run("blank line ends a bullet", func(t *testing.T) {
		text := "- First achievement here\n\n- Second achievement here"
		bullets := ExtractBullets(text)
		if len(bullets) != 2 {
			t.Fatalf("Expected 2 bullets, got %d: %v", len(bullets), bullets)
		}
	})

	t.Run("action verb lines are promoted", func(t *testing.T) {
		text := "Developed real-time analytics pipeline for ad bidding"
		bullets := ExtractBullets(text)
		if len(bullets) != 1 {
			t.Fatalf("Expected 1 promoted bullet, got %d: %v", len(bullets), bullets)
		}
	})

	t.Run("plain prose is not promoted", func(t *testing.T) {
		text := "I am a passionate software engineer with many interests"
		bullets := ExtractBullets(text)
		if len(bullets) != 0 {
			t.Errorf("Expected no bullets, got %v", bullets)
		}
	})

	t.Run("short bullets are dropped", func(t *testing.T) {
		text := "- EXPERIENCE\n- Built the entire data platform"
		bullets := ExtractBullets(text)
		if len(bullets) != 1 {
			t.Fatalf("Expected 1 bullet, got %d: %v", len(bullets), bullets)
		}
		if bullets[0] != "Built the entire data platform" {
			t.Errorf("Wrong bullet survived: %q", bullets[0])
		}
	})

	t.Run("empty text yields none", func(t *testing.T) {
		if bullets := ExtractBullets(""); len(bullets) != 0 {
			t.Errorf("Expected no bullets, got %v", bullets)
		}
	})
}

func TestNormalizeJobDescription(t *testing.T) {
	t.Run("strips posting boilerplate", func(t *testing.T) {
		jd := "Backend engineer wanted. Apply now! We are an Equal Opportunity Employer."
		got := NormalizeJobDescription(jd)
		lower := strings.ToLower(got)
		if strings.Contains(lower, "apply now") {
			t.Errorf("Boilerplate survived: %q", got)
		}
		if strings.Contains(lower, "equal opportunity employer") {
			t.Errorf("Boilerplate survived: %q", got)
		}
		if !strings.Contains(lower, "backend engineer") {
			t.Errorf("Real content lost: %q", got)
		}
	})

	t.Run("cleans whitespace left by removal", func(t *testing.T) {
		got := NormalizeJobDescription("Python developer.   Apply now   today.")
		if strings.Contains(got, "  ") {
			t.Errorf("Double space left behind: %q", got)
		}
	})
}

func TestExtractExperienceYears(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"simple mention", "5 years of experience", 5},
		{"plus suffix", "7+ years building services", 7},
		{"abbreviated", "3 yrs in fintech", 3},
		{"takes the maximum", "2 years of Go after 8 years of Java", 8},
		{"no mention", "experienced engineer", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractExperienceYears(tt.text); got != tt.expected {
				t.Errorf("ExtractExperienceYears(%q) = %d, expected %d", tt.text, got, tt.expected)
			}
		})
	}
}
