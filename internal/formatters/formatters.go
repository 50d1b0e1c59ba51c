package formatters

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"resumescore/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "ScoreReport", &ScoreTextFormatter{})
	registry.RegisterFormatter("markdown", "ScoreReport", &ScoreMarkdownFormatter{})
	registry.RegisterFormatter("text", "KeywordAnalysis", &KeywordTextFormatter{})
	registry.RegisterFormatter("markdown", "KeywordAnalysis", &KeywordMarkdownFormatter{})
	registry.RegisterFormatter("text", "ImpactSummary", &ImpactTextFormatter{})
	registry.RegisterFormatter("markdown", "ImpactSummary", &ImpactMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.ScoreReport, *types.ScoreReport:
		return "ScoreReport"
	case types.KeywordAnalysis, *types.KeywordAnalysis:
		return "KeywordAnalysis"
	case types.ImpactSummary, *types.ImpactSummary:
		return "ImpactSummary"
	default:
		return "any"
	}
}

func asScoreReport(data any) (types.ScoreReport, bool) {
	switch v := data.(type) {
	case types.ScoreReport:
		return v, true
	case *types.ScoreReport:
		return *v, true
	}
	return types.ScoreReport{}, false
}

func asKeywordAnalysis(data any) (types.KeywordAnalysis, bool) {
	switch v := data.(type) {
	case types.KeywordAnalysis:
		return v, true
	case *types.KeywordAnalysis:
		return *v, true
	}
	return types.KeywordAnalysis{}, false
}

func asImpactSummary(data any) (types.ImpactSummary, bool) {
	switch v := data.(type) {
	case types.ImpactSummary:
		return v, true
	case *types.ImpactSummary:
		return *v, true
	}
	return types.ImpactSummary{}, false
}

// sortedComponents returns breakdown component names in a stable order
func sortedComponents(breakdown map[string]types.ScoreComponent) []string {
	names := make([]string, 0, len(breakdown))
	for name := range breakdown {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// componentLabel renders a snake_case component name for display
func componentLabel(name string) string {
	words := strings.Split(name, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// ScoreTextFormatter handles text formatting for scoring reports
type ScoreTextFormatter struct{}

func (stf *ScoreTextFormatter) Format(data any) (string, error) {
	result, ok := asScoreReport(data)
	if !ok {
		return "", fmt.Errorf("expected ScoreReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== RESUME SCORE ===\n\n")
	output.WriteString(fmt.Sprintf("Final Score: %d/100 (Grade %s)\n", result.FinalScore, result.Insights.Grade))
	output.WriteString(result.Insights.Interpretation)
	output.WriteString("\n")
	output.WriteString(fmt.Sprintf("Estimated percentile: %d\n\n", result.Insights.Percentile))

	output.WriteString("=== SCORE BREAKDOWN ===\n")
	for _, name := range sortedComponents(result.Breakdown) {
		component := result.Breakdown[name]
		output.WriteString(fmt.Sprintf("%-22s %6.2f  (weight %.0f%%, contributes %.2f)\n",
			componentLabel(name), component.Score, component.Weight, component.Contribution))
	}
	output.WriteString("\n")

	if len(result.Insights.TopImprovements) > 0 {
		output.WriteString("=== TOP IMPROVEMENTS ===\n")
		for i, improvement := range result.Insights.TopImprovements {
			output.WriteString(fmt.Sprintf("%d. %s (%s priority, up to %.1f points)\n",
				i+1, componentLabel(improvement.Component), improvement.Priority, improvement.PotentialGain))
		}
		output.WriteString("\n")
	}

	if len(result.MissingKeywords) > 0 {
		output.WriteString("=== MISSING KEYWORDS ===\n")
		for _, keyword := range result.MissingKeywords {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if len(result.WeakBullets) > 0 {
		output.WriteString("=== WEAK BULLETS ===\n")
		for i, bullet := range result.WeakBullets {
			output.WriteString(fmt.Sprintf("%d. [%d/100] %s\n", i+1, bullet.ImpactScore, bullet.Text))
			for _, weakness := range bullet.Weaknesses {
				output.WriteString(fmt.Sprintf("   - %s\n", weakness))
			}
		}
		output.WriteString("\n")
	}

	if len(result.RewrittenBullets) > 0 {
		output.WriteString("=== SUGGESTED REWRITES ===\n")
		for i, rewrite := range result.RewrittenBullets {
			output.WriteString(fmt.Sprintf("%d. Before: %s\n", i+1, rewrite.Original))
			output.WriteString(fmt.Sprintf("   After:  %s\n", rewrite.Rewritten))
			if len(rewrite.KeywordsAdded) > 0 {
				output.WriteString(fmt.Sprintf("   Keywords added: %s\n", strings.Join(rewrite.KeywordsAdded, ", ")))
			}
		}
		output.WriteString("\n")
	}

	output.WriteString("=== PROJECTION ===\n")
	output.WriteString(fmt.Sprintf("Projected score after rewrites: %d/100 (%+d)\n",
		result.ProjectedScore, result.ImprovementDelta))

	return output.String(), nil
}

func (stf *ScoreTextFormatter) SupportedType() string {
	return "ScoreReport"
}

// ScoreMarkdownFormatter handles markdown formatting for scoring reports
type ScoreMarkdownFormatter struct{}

func (smf *ScoreMarkdownFormatter) Format(data any) (string, error) {
	result, ok := asScoreReport(data)
	if !ok {
		return "", fmt.Errorf("expected ScoreReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Resume Score\n\n")
	output.WriteString(fmt.Sprintf("**Final Score:** %d/100 (Grade %s)\n\n", result.FinalScore, result.Insights.Grade))
	output.WriteString(result.Insights.Interpretation)
	output.WriteString("\n\n")
	output.WriteString(fmt.Sprintf("**Estimated percentile:** %d\n\n", result.Insights.Percentile))

	output.WriteString("## Score Breakdown\n\n")
	output.WriteString("| Component | Score | Weight | Contribution |\n")
	output.WriteString("|-----------|-------|--------|---------------|\n")
	for _, name := range sortedComponents(result.Breakdown) {
		component := result.Breakdown[name]
		output.WriteString(fmt.Sprintf("| %s | %.2f | %.0f%% | %.2f |\n",
			componentLabel(name), component.Score, component.Weight, component.Contribution))
	}
	output.WriteString("\n")

	if len(result.Insights.TopImprovements) > 0 {
		output.WriteString("## Top Improvements\n\n")
		for i, improvement := range result.Insights.TopImprovements {
			output.WriteString(fmt.Sprintf("%d. **%s** (%s priority, up to %.1f points)\n",
				i+1, componentLabel(improvement.Component), improvement.Priority, improvement.PotentialGain))
		}
		output.WriteString("\n")
	}

	if len(result.MissingKeywords) > 0 {
		output.WriteString("## Missing Keywords\n\n")
		for _, keyword := range result.MissingKeywords {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if len(result.WeakBullets) > 0 {
		output.WriteString("## Weak Bullets\n\n")
		for i, bullet := range result.WeakBullets {
			output.WriteString(fmt.Sprintf("### %d. Score %d/100\n\n", i+1, bullet.ImpactScore))
			output.WriteString(fmt.Sprintf("> %s\n\n", bullet.Text))
			for _, weakness := range bullet.Weaknesses {
				output.WriteString(fmt.Sprintf("- %s\n", weakness))
			}
			output.WriteString("\n")
		}
	}

	if len(result.RewrittenBullets) > 0 {
		output.WriteString("## Suggested Rewrites\n\n")
		for i, rewrite := range result.RewrittenBullets {
			output.WriteString(fmt.Sprintf("### Rewrite %d\n\n", i+1))
			output.WriteString(fmt.Sprintf("**Before:** %s\n\n", rewrite.Original))
			output.WriteString(fmt.Sprintf("**After:** %s\n\n", rewrite.Rewritten))
			if len(rewrite.KeywordsAdded) > 0 {
				output.WriteString(fmt.Sprintf("**Keywords added:** %s\n\n", strings.Join(rewrite.KeywordsAdded, ", ")))
			}
		}
	}

	output.WriteString("## Projection\n\n")
	output.WriteString(fmt.Sprintf("**Projected score after rewrites:** %d/100 (%+d)\n",
		result.ProjectedScore, result.ImprovementDelta))

	return output.String(), nil
}

func (smf *ScoreMarkdownFormatter) SupportedType() string {
	return "ScoreReport"
}

// KeywordTextFormatter handles text formatting for keyword analysis results
type KeywordTextFormatter struct{}

func (ktf *KeywordTextFormatter) Format(data any) (string, error) {
	result, ok := asKeywordAnalysis(data)
	if !ok {
		return "", fmt.Errorf("expected KeywordAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== KEYWORD ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("Keywords extracted: %d\n", result.TotalKeywords))
	output.WriteString(fmt.Sprintf("Coverage score: %.2f/100\n", result.CoverageScore))
	output.WriteString(fmt.Sprintf("Skills score: %.2f/100\n\n", result.SkillsScore))

	if len(result.Matched) > 0 {
		output.WriteString("Matched:\n")
		for _, keyword := range result.Matched {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if len(result.PartialMatches) > 0 {
		output.WriteString("Partial matches:\n")
		for _, keyword := range result.PartialMatches {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if len(result.Missing) > 0 {
		output.WriteString("Missing:\n")
		for _, keyword := range result.Missing {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if len(result.CategoryMatches) > 0 {
		output.WriteString("By category:\n")
		categories := make([]string, 0, len(result.CategoryMatches))
		for category := range result.CategoryMatches {
			categories = append(categories, string(category))
		}
		sort.Strings(categories)
		for _, category := range categories {
			keywords := result.CategoryMatches[types.KeywordCategory(category)]
			output.WriteString(fmt.Sprintf("  %s: %s\n", category, strings.Join(keywords, ", ")))
		}
	}

	return output.String(), nil
}

func (ktf *KeywordTextFormatter) SupportedType() string {
	return "KeywordAnalysis"
}

// KeywordMarkdownFormatter handles markdown formatting for keyword analysis results
type KeywordMarkdownFormatter struct{}

func (kmf *KeywordMarkdownFormatter) Format(data any) (string, error) {
	result, ok := asKeywordAnalysis(data)
	if !ok {
		return "", fmt.Errorf("expected KeywordAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Keyword Analysis\n\n")
	output.WriteString(fmt.Sprintf("**Keywords extracted:** %d\n\n", result.TotalKeywords))
	output.WriteString(fmt.Sprintf("**Coverage score:** %.2f/100\n\n", result.CoverageScore))
	output.WriteString(fmt.Sprintf("**Skills score:** %.2f/100\n\n", result.SkillsScore))

	if len(result.Matched) > 0 {
		output.WriteString("## Matched\n\n")
		for _, keyword := range result.Matched {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if len(result.PartialMatches) > 0 {
		output.WriteString("## Partial Matches\n\n")
		for _, keyword := range result.PartialMatches {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if len(result.Missing) > 0 {
		output.WriteString("## Missing\n\n")
		for _, keyword := range result.Missing {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if len(result.CategoryMatches) > 0 {
		output.WriteString("## By Category\n\n")
		categories := make([]string, 0, len(result.CategoryMatches))
		for category := range result.CategoryMatches {
			categories = append(categories, string(category))
		}
		sort.Strings(categories)
		for _, category := range categories {
			keywords := result.CategoryMatches[types.KeywordCategory(category)]
			output.WriteString(fmt.Sprintf("- **%s:** %s\n", category, strings.Join(keywords, ", ")))
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (kmf *KeywordMarkdownFormatter) SupportedType() string {
	return "KeywordAnalysis"
}

// ImpactTextFormatter handles text formatting for impact summaries
type ImpactTextFormatter struct{}

func (itf *ImpactTextFormatter) Format(data any) (string, error) {
	result, ok := asImpactSummary(data)
	if !ok {
		return "", fmt.Errorf("expected ImpactSummary, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== BULLET IMPACT ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("Bullets analyzed: %d\n", result.TotalBullets))
	output.WriteString(fmt.Sprintf("Average impact: %.2f/100\n", result.AverageScore))
	output.WriteString(fmt.Sprintf("Strong bullets: %d\n", result.StrongBullets))
	output.WriteString(fmt.Sprintf("Weak bullets: %d\n\n", result.WeakBullets))

	for i, bullet := range result.Bullets {
		quantified := "no"
		if bullet.HasQuantification {
			quantified = "yes"
		}
		output.WriteString(fmt.Sprintf("%d. [%d/100] %s\n", i+1, bullet.ImpactScore, bullet.Text))
		output.WriteString(fmt.Sprintf("   Quantified: %s\n", quantified))
		for _, strength := range bullet.Strengths {
			output.WriteString(fmt.Sprintf("   + %s\n", strength))
		}
		for _, weakness := range bullet.Weaknesses {
			output.WriteString(fmt.Sprintf("   - %s\n", weakness))
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (itf *ImpactTextFormatter) SupportedType() string {
	return "ImpactSummary"
}

// ImpactMarkdownFormatter handles markdown formatting for impact summaries
type ImpactMarkdownFormatter struct{}

func (imf *ImpactMarkdownFormatter) Format(data any) (string, error) {
	result, ok := asImpactSummary(data)
	if !ok {
		return "", fmt.Errorf("expected ImpactSummary, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Bullet Impact Analysis\n\n")
	output.WriteString(fmt.Sprintf("**Bullets analyzed:** %d\n\n", result.TotalBullets))
	output.WriteString(fmt.Sprintf("**Average impact:** %.2f/100\n\n", result.AverageScore))
	output.WriteString(fmt.Sprintf("**Strong bullets:** %d\n\n", result.StrongBullets))
	output.WriteString(fmt.Sprintf("**Weak bullets:** %d\n\n", result.WeakBullets))

	for i, bullet := range result.Bullets {
		output.WriteString(fmt.Sprintf("## %d. Score %d/100\n\n", i+1, bullet.ImpactScore))
		output.WriteString(fmt.Sprintf("> %s\n\n", bullet.Text))
		if bullet.HasQuantification {
			output.WriteString("Quantified: yes\n\n")
		} else {
			output.WriteString("Quantified: no\n\n")
		}
		if len(bullet.Strengths) > 0 {
			output.WriteString("**Strengths:**\n")
			for _, strength := range bullet.Strengths {
				output.WriteString(fmt.Sprintf("- %s\n", strength))
			}
			output.WriteString("\n")
		}
		if len(bullet.Weaknesses) > 0 {
			output.WriteString("**Weaknesses:**\n")
			for _, weakness := range bullet.Weaknesses {
				output.WriteString(fmt.Sprintf("- %s\n", weakness))
			}
			output.WriteString("\n")
		}
	}

	return output.String(), nil
}

func (imf *ImpactMarkdownFormatter) SupportedType() string {
	return "ImpactSummary"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
