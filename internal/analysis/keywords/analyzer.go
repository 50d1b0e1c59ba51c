package keywords

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"resumescore/internal/textutil"
	"resumescore/internal/types"
)

// DefaultTopKeywords is the default number of keywords extracted from a
// job description.
const DefaultTopKeywords = 30

var punctuationRe = regexp.MustCompile(`[^\w\s]`)

// Analyzer extracts keywords from a job description, categorizes them, and
// measures their presence in a resume. Pure: no I/O, no shared state.
type Analyzer struct {
	lexicon Lexicon
	topN    int
}

// NewAnalyzer creates a keyword analyzer. topN <= 0 falls back to the default.
func NewAnalyzer(lexicon Lexicon, topN int) *Analyzer {
	if topN <= 0 {
		topN = DefaultTopKeywords
	}
	return &Analyzer{lexicon: lexicon, topN: topN}
}

// Analyze runs extraction, categorization, matching, and scoring
func (a *Analyzer) Analyze(jobDescription, resume string) types.KeywordAnalysis {
	extracted := a.ExtractKeywords(jobDescription)
	categorized := a.Categorize(extracted)
	exact, partial, missing := a.MatchKeywords(resume, extracted)

	coverage := CoverageScore(
		float64(len(exact))+0.5*float64(len(partial)),
		len(extracted),
	)

	return types.KeywordAnalysis{
		TotalKeywords:   len(extracted),
		Matched:         exact,
		PartialMatches:  partial,
		Missing:         missing,
		CoverageScore:   coverage,
		SkillsScore:     a.SkillsAlignmentScore(resume, categorized),
		CategoryMatches: categorized,
	}
}

// ExtractKeywords ranks unigrams through trigrams by normalized term
// frequency over the job description alone and keeps the top N. Falls back
// to raw word-frequency counting when n-gram extraction yields nothing.
func (a *Analyzer) ExtractKeywords(text string) []string {
	keywords := a.extractByTermFrequency(text)
	if len(keywords) == 0 {
		return a.simpleExtraction(text)
	}
	return keywords
}

type scoredTerm struct {
	term  string
	score float64
	order int
}

func (a *Analyzer) extractByTermFrequency(text string) []string {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	total := 0

	for n := 1; n <= 3; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			gram := strings.Join(tokens[i:i+n], " ")
			if len(gram) < 2 {
				continue
			}
			if _, seen := firstSeen[gram]; !seen {
				firstSeen[gram] = len(firstSeen)
			}
			counts[gram]++
			total++
		}
	}
	if total == 0 {
		return nil
	}

	scored := make([]scoredTerm, 0, len(counts))
	for term, count := range counts {
		scored = append(scored, scoredTerm{
			term: term,
			// Single-document corpus: inverse document frequency is
			// constant, so the weighting reduces to normalized TF.
			score: float64(count) / float64(total),
			order: firstSeen[term],
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].order < scored[j].order
	})

	limit := min(a.topN, len(scored))
	keywords := make([]string, 0, limit)
	for _, s := range scored[:limit] {
		keywords = append(keywords, s.term)
	}
	return keywords
}

// simpleExtraction is the raw-frequency fallback path
func (a *Analyzer) simpleExtraction(text string) []string {
	text = strings.ToLower(text)
	text = punctuationRe.ReplaceAllString(text, " ")

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for _, word := range strings.Fields(text) {
		if len(word) <= 2 {
			continue
		}
		if _, seen := firstSeen[word]; !seen {
			firstSeen[word] = len(firstSeen)
		}
		counts[word]++
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.SliceStable(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return firstSeen[words[i]] < firstSeen[words[j]]
	})

	if len(words) > a.topN {
		words = words[:a.topN]
	}
	return words
}

// Categorize tags each keyword against the reference sets by substring
// containment. Tagging is non-exclusive: a keyword may land in several
// categories at once. Only keywords matching no set become domain terms.
func (a *Analyzer) Categorize(kws []string) map[types.KeywordCategory][]string {
	categorized := map[types.KeywordCategory][]string{
		types.CategoryTechnicalSkill: {},
		types.CategorySoftSkill:      {},
		types.CategoryTool:           {},
		types.CategoryCertification:  {},
		types.CategoryDomainTerm:     {},
	}

	for _, kw := range kws {
		kwLower := strings.ToLower(kw)
		tagged := false
		for _, cat := range a.lexicon.categories() {
			for _, term := range cat.terms {
				if strings.Contains(kwLower, term) {
					categorized[cat.name] = append(categorized[cat.name], kw)
					tagged = true
					break
				}
			}
		}
		if !tagged {
			categorized[types.CategoryDomainTerm] = append(categorized[types.CategoryDomainTerm], kw)
		}
	}
	return categorized
}

// MatchKeywords buckets each keyword into exact, partial, or missing.
// Exact means the whole-word pattern appears in the resume; partial means
// a suffix-stripped lemma appears as a substring.
func (a *Analyzer) MatchKeywords(resume string, kws []string) (exact, partial, missing []string) {
	exact = []string{}
	partial = []string{}
	missing = []string{}
	resumeLower := strings.ToLower(resume)

	for _, kw := range kws {
		kwLower := strings.ToLower(kw)
		wordRe, err := regexp.Compile(`\b` + regexp.QuoteMeta(kwLower) + `\b`)
		switch {
		case err == nil && wordRe.MatchString(resumeLower):
			exact = append(exact, kw)
		case strings.Contains(resumeLower, textutil.Lemmatize(kwLower)):
			partial = append(partial, kw)
		default:
			missing = append(missing, kw)
		}
	}
	return exact, partial, missing
}

// CoverageScore computes 100 * matched / total, clamped to [0,100] and
// rounded to two decimals. Zero total means zero coverage.
func CoverageScore(matchedCount float64, totalCount int) float64 {
	if totalCount == 0 {
		return 0.0
	}
	score := matchedCount / float64(totalCount) * 100.0
	if score > 100.0 {
		score = 100.0
	}
	if score < 0.0 {
		score = 0.0
	}
	return math.Round(score*100) / 100
}

// SkillsAlignmentScore measures how many technical-skill keywords appear in
// the resume by plain substring containment. Returns a neutral 50 when the
// job description yielded no technical keywords.
func (a *Analyzer) SkillsAlignmentScore(resume string, categorized map[types.KeywordCategory][]string) float64 {
	technical := categorized[types.CategoryTechnicalSkill]
	if len(technical) == 0 {
		return 50.0
	}

	resumeLower := strings.ToLower(resume)
	matched := 0
	for _, skill := range technical {
		if strings.Contains(resumeLower, strings.ToLower(skill)) {
			matched++
		}
	}

	score := float64(matched) / float64(len(technical)) * 100.0
	if score > 100.0 {
		score = 100.0
	}
	return math.Round(score*100) / 100
}

func tokenize(text string) []string {
	text = strings.ToLower(text)
	text = punctuationRe.ReplaceAllString(text, " ")

	var tokens []string
	for _, tok := range strings.Fields(text) {
		if textutil.IsStopWord(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
