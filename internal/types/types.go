package types

// ScoreResumeInput represents the input for a full resume scoring run
type ScoreResumeInput struct {
	Resume         string `json:"resume"`
	JobDescription string `json:"jobDescription"`
}

// KeywordCategory identifies the reference set a keyword was tagged with
type KeywordCategory string

const (
	CategoryTechnicalSkill KeywordCategory = "technical_skills"
	CategorySoftSkill      KeywordCategory = "soft_skills"
	CategoryTool           KeywordCategory = "tools"
	CategoryCertification  KeywordCategory = "certifications"
	CategoryDomainTerm     KeywordCategory = "domain_terms"
)

// MatchState describes how a job keyword was found in the resume
type MatchState string

const (
	MatchExact   MatchState = "exact"
	MatchPartial MatchState = "partial"
	MatchMissing MatchState = "missing"
)

// KeywordAnalysis represents the keyword extraction and matching result
type KeywordAnalysis struct {
	TotalKeywords   int                          `json:"totalKeywords"`
	Matched         []string                     `json:"matched"`         // exact whole-word matches
	PartialMatches  []string                     `json:"partialMatches"`  // lemma substring matches
	Missing         []string                     `json:"missing"`         // not found at all
	CoverageScore   float64                      `json:"coverageScore"`   // 0-100
	SkillsScore     float64                      `json:"skillsScore"`     // 0-100, technical keywords only
	CategoryMatches map[KeywordCategory][]string `json:"categoryMatches"` // non-exclusive tagging
}

// BulletAnalysis represents the impact assessment of a single bullet.
// Immutable once created.
type BulletAnalysis struct {
	Text              string   `json:"text"`
	ImpactScore       int      `json:"impactScore"` // 0-100
	HasQuantification bool     `json:"hasQuantification"`
	Weaknesses        []string `json:"weaknesses"`
	Strengths         []string `json:"strengths"`
}

// ImpactSummary aggregates bullet analyses across a document
type ImpactSummary struct {
	AverageScore  float64          `json:"averageScore"`
	WeakBullets   int              `json:"weakBullets"`   // score < 50
	StrongBullets int              `json:"strongBullets"` // score >= 70
	TotalBullets  int              `json:"totalBullets"`
	Bullets       []BulletAnalysis `json:"bullets"`
}

// ScoreComponent represents one weighted entry of a score breakdown
type ScoreComponent struct {
	Score        float64 `json:"score"`        // clamped to 0-100
	Weight       float64 `json:"weight"`       // percentage, 0-100
	Contribution float64 `json:"contribution"` // score * weight / 100
}

// ScoreResult represents the aggregated final score with its breakdown
type ScoreResult struct {
	FinalScore int                       `json:"finalScore"` // 0-100
	Breakdown  map[string]ScoreComponent `json:"breakdown"`
}

// Rewrite represents a proposed bullet rewrite from the generation collaborator
type Rewrite struct {
	Original         string   `json:"original"`
	Rewritten        string   `json:"rewritten"`
	ImprovementScore int      `json:"improvementScore"` // assumed delta, not measured
	KeywordsAdded    []string `json:"keywordsAdded"`
}

// ProjectionResult represents the simulated score after applying rewrites
type ProjectionResult struct {
	CurrentScore   int                `json:"currentScore"`
	ProjectedScore int                `json:"projectedScore"`
	Improvement    int                `json:"improvement"`    // may be negative
	PercentageGain float64            `json:"percentageGain"` // 0 when current score is 0
	Breakdown      map[string]float64 `json:"breakdown"`      // per-component deltas
}

// RewriteROI represents the effort-vs-gain heuristic for a projection
type RewriteROI struct {
	ROIScore         float64 `json:"roiScore"` // improvement points per minute
	EstimatedMinutes int     `json:"estimatedMinutes"`
	Recommendation   string  `json:"recommendation"` // Highly Recommended / Recommended / Optional
}

// PassRateEstimate represents the screening pass-rate tier for a score
type PassRateEstimate struct {
	PassRate   int    `json:"passRate"` // percent
	Confidence string `json:"confidence"`
}

// ScoreInsights carries the secondary read-only derivations of a ScoreResult
type ScoreInsights struct {
	Grade           string                `json:"grade"`
	Interpretation  string                `json:"interpretation"`
	Percentile      int                   `json:"percentile"`
	TopImprovements []ImprovementPriority `json:"topImprovements"`
}

// ImprovementPriority ranks a component by its potential point gain
type ImprovementPriority struct {
	Component     string  `json:"component"`
	CurrentScore  float64 `json:"currentScore"`
	PotentialGain float64 `json:"potentialGain"`
	Priority      string  `json:"priority"` // High / Medium / Low
}

// ScoreReport is the full structured result returned to callers
type ScoreReport struct {
	FinalScore       int                       `json:"finalScore"`
	Breakdown        map[string]ScoreComponent `json:"breakdown"`
	Insights         ScoreInsights             `json:"insights"`
	MissingKeywords  []string                  `json:"missingKeywords"` // top 10
	WeakBullets      []BulletAnalysis          `json:"weakBullets"`
	RewrittenBullets []Rewrite                 `json:"rewrittenBullets"`
	ProjectedScore   int                       `json:"projectedScore"`
	ImprovementDelta int                       `json:"improvementDelta"`
}

// RewriteBulletInput represents a single bullet rewrite request
type RewriteBulletInput struct {
	Bullet         string   `json:"bullet"`
	Keywords       []string `json:"keywords,omitempty"` // missing keywords to work in
	JobDescription string   `json:"jobDescription"`
}

// GapAnalysisInput represents the input for experience gap analysis
type GapAnalysisInput struct {
	Resume         string `json:"resume"`
	JobDescription string `json:"jobDescription"`
}

// GapAnalysis represents the experience gaps between a resume and a job
type GapAnalysis struct {
	Gaps    []string `json:"gaps"`
	Summary string   `json:"summary,omitempty"`
}

// AnalyzeKeywordsInput represents the input for standalone keyword analysis
type AnalyzeKeywordsInput struct {
	JobDescription string `json:"jobDescription"`
	Resume         string `json:"resume,omitempty"`
}

// AnalyzeImpactInput represents the input for standalone impact analysis
type AnalyzeImpactInput struct {
	Resume string `json:"resume"`
}
