package impact

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"resumescore/internal/textutil"
	"resumescore/internal/types"
)

const (
	// DefaultConciseWordLimit is the word-count threshold for conciseness
	DefaultConciseWordLimit = 25

	// WeakScoreThreshold marks bullets counted as weak in the summary
	WeakScoreThreshold = 50

	// StrongScoreThreshold marks bullets counted as strong in the summary
	StrongScoreThreshold = 70

	// DefaultWeakestCount is the default number of weakest bullets selected
	DefaultWeakestCount = 3
)

var quantificationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d+%`),
	regexp.MustCompile(`(?i)\$\d+`),
	regexp.MustCompile(`(?i)\d+\s*(million|thousand|billion|k|m|b)\b`),
	regexp.MustCompile(`(?i)\d+\+`),
	regexp.MustCompile(`(?i)\d+x`),
	regexp.MustCompile(`(?i)\d+\s*(percent|percentage)`),
	regexp.MustCompile(`(?i)\b\d+\s*(users|customers|clients|projects|people|team members|employees|engineers|developers)\b`),
	regexp.MustCompile(`(?i)\d+\s*(hours|days|weeks|months|years)`),
	regexp.MustCompile(`(?i)(increased|reduced|improved|decreased|grew)\s+by\s+\d+`),
}

var passivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bwas\s+\w+ed\b`),
	regexp.MustCompile(`(?i)\bwere\s+\w+ed\b`),
	regexp.MustCompile(`(?i)\bbeen\s+\w+ed\b`),
	regexp.MustCompile(`(?i)\bis\s+\w+ed\b`),
	regexp.MustCompile(`(?i)\bare\s+\w+ed\b`),
}

// Analyzer scores the rhetorical strength of resume bullets. Pure: the
// feature detectors are regex and lexicon lookups only.
type Analyzer struct {
	lexicon          Lexicon
	conciseWordLimit int
	strongVerbRes    map[string]*regexp.Regexp
}

// NewAnalyzer creates an impact analyzer. conciseWordLimit <= 0 falls back
// to the default.
func NewAnalyzer(lexicon Lexicon, conciseWordLimit int) *Analyzer {
	if conciseWordLimit <= 0 {
		conciseWordLimit = DefaultConciseWordLimit
	}

	verbRes := make(map[string]*regexp.Regexp, len(lexicon.StrongVerbs))
	for verb := range lexicon.StrongVerbs {
		verbRes[verb] = regexp.MustCompile(`\b` + regexp.QuoteMeta(verb) + `\b`)
	}

	return &Analyzer{
		lexicon:          lexicon,
		conciseWordLimit: conciseWordLimit,
		strongVerbRes:    verbRes,
	}
}

// AnalyzeBullet scores a single bullet and derives its weakness and
// strength labels from the same feature flags.
func (a *Analyzer) AnalyzeBullet(bullet string) types.BulletAnalysis {
	hasQuantification := a.DetectQuantification(bullet)
	weakPhrases := a.DetectWeakPhrases(bullet)
	hasStrongVerb := a.DetectStrongVerb(bullet)
	isConcise := a.IsConcise(bullet)
	isActive := a.IsActiveVoice(bullet)

	score := ScoreFeatures(hasQuantification, hasStrongVerb, isConcise, isActive, len(weakPhrases) > 0)

	weaknesses := []string{}
	strengths := []string{}

	if hasQuantification {
		strengths = append(strengths, "contains metrics")
	} else {
		weaknesses = append(weaknesses, "no quantifiable metrics")
	}

	for _, p := range weakPhrases {
		weaknesses = append(weaknesses, fmt.Sprintf("weak phrase: '%s'", p))
	}

	if hasStrongVerb {
		strengths = append(strengths, "strong action verb")
	} else if len(weakPhrases) == 0 {
		weaknesses = append(weaknesses, "no strong action verb")
	}

	if isConcise {
		strengths = append(strengths, "concise")
	} else {
		weaknesses = append(weaknesses, "too verbose")
	}

	if isActive {
		strengths = append(strengths, "active voice")
	} else {
		weaknesses = append(weaknesses, "passive voice")
	}

	return types.BulletAnalysis{
		Text:              bullet,
		ImpactScore:       score,
		HasQuantification: hasQuantification,
		Weaknesses:        weaknesses,
		Strengths:         strengths,
	}
}

// AnalyzeAll analyzes every bullet and aggregates the document summary
func (a *Analyzer) AnalyzeAll(bullets []string) types.ImpactSummary {
	if len(bullets) == 0 {
		return types.ImpactSummary{Bullets: []types.BulletAnalysis{}}
	}

	analyzed := make([]types.BulletAnalysis, 0, len(bullets))
	total := 0
	weak := 0
	strong := 0

	for _, bullet := range bullets {
		analysis := a.AnalyzeBullet(bullet)
		analyzed = append(analyzed, analysis)
		total += analysis.ImpactScore
		if analysis.ImpactScore < WeakScoreThreshold {
			weak++
		}
		if analysis.ImpactScore >= StrongScoreThreshold {
			strong++
		}
	}

	average := float64(total) / float64(len(bullets))
	return types.ImpactSummary{
		AverageScore:  math.Round(average*100) / 100,
		WeakBullets:   weak,
		StrongBullets: strong,
		TotalBullets:  len(bullets),
		Bullets:       analyzed,
	}
}

// ScoreFeatures computes the impact score from the detected feature flags.
// Quantification +40; strong verb +30, else neutral credit +10 when no
// weak phrase; concise +20; active voice +10; weak phrase penalty -20
// floored at 0. Result capped at 100.
func ScoreFeatures(hasQuantification, hasStrongVerb, isConcise, isActive, hasWeakPhrase bool) int {
	score := 0

	if hasQuantification {
		score += 40
	}

	if hasStrongVerb {
		score += 30
	} else if !hasWeakPhrase {
		score += 10
	}

	if isConcise {
		score += 20
	}

	if isActive {
		score += 10
	}

	if hasWeakPhrase {
		score = max(0, score-20)
	}

	return min(score, 100)
}

// DetectQuantification reports whether the bullet contains a measurable result
func (a *Analyzer) DetectQuantification(bullet string) bool {
	for _, re := range quantificationPatterns {
		if re.MatchString(bullet) {
			return true
		}
	}
	return false
}

// DetectWeakPhrases returns every weak phrase present, in lexicon order
func (a *Analyzer) DetectWeakPhrases(bullet string) []string {
	bulletLower := strings.ToLower(bullet)
	var found []string
	for _, phrase := range a.lexicon.WeakPhrases {
		if strings.Contains(bulletLower, phrase) {
			found = append(found, phrase)
		}
	}
	return found
}

// DetectStrongVerb reports whether any strong verb appears as a whole word
func (a *Analyzer) DetectStrongVerb(bullet string) bool {
	bulletLower := strings.ToLower(bullet)
	for _, re := range a.strongVerbRes {
		if re.MatchString(bulletLower) {
			return true
		}
	}
	return false
}

// IsConcise reports whether the bullet is within the word limit
func (a *Analyzer) IsConcise(bullet string) bool {
	return textutil.WordCount(bullet) <= a.conciseWordLimit
}

// IsActiveVoice reports whether no passive-voice pattern matches
func (a *Analyzer) IsActiveVoice(bullet string) bool {
	for _, re := range passivePatterns {
		if re.MatchString(bullet) {
			return false
		}
	}
	return true
}

// WeakestBullets returns the count lowest-scoring bullets in ascending
// order. The sort is stable: ties keep their original input order.
func WeakestBullets(analyzed []types.BulletAnalysis, count int) []types.BulletAnalysis {
	if count <= 0 {
		count = DefaultWeakestCount
	}

	sorted := make([]types.BulletAnalysis, len(analyzed))
	copy(sorted, analyzed)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ImpactScore < sorted[j].ImpactScore
	})

	if count > len(sorted) {
		count = len(sorted)
	}
	return sorted[:count]
}
