// Package pipeline orchestrates the full resume scoring run: input
// validation, normalization, concurrent component analyses, aggregation,
// rewrite planning, and projection.
package pipeline

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"resumescore/internal/analysis/docformat"
	"resumescore/internal/analysis/impact"
	"resumescore/internal/analysis/keywords"
	"resumescore/internal/analysis/projection"
	"resumescore/internal/analysis/rewrite"
	"resumescore/internal/analysis/scoring"
	"resumescore/internal/analysis/similarity"
	"resumescore/internal/config"
	"resumescore/internal/errors"
	"resumescore/internal/textnorm"
	"resumescore/internal/types"
)

// MissingKeywordLimit caps how many missing keywords the report surfaces
const MissingKeywordLimit = 10

// Embedder is the embedding capability the pipeline needs. Implementations
// own their retry policy; the pipeline degrades to a neutral semantic score
// when a call ultimately fails.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float64, error)
}

// GapAnalyzer is the generative gap-analysis capability. Optional: a nil
// analyzer leaves experience alignment at the semantic proxy.
type GapAnalyzer interface {
	AnalyzeGaps(ctx context.Context, input types.GapAnalysisInput) (types.GapAnalysis, error)
}

// Collaborators bundles the AI capabilities the pipeline depends on.
// Any nil collaborator disables its analysis and falls back gracefully.
type Collaborators struct {
	Embedder Embedder
	Rewriter rewrite.Generator
	Gaps     GapAnalyzer
}

// Engine runs the scoring pipeline. The aggregator instance is shared with
// the projection simulator so the weight vector can never drift between
// the live and projected paths.
type Engine struct {
	cfg       config.AnalysisConfig
	collab    Collaborators
	keywords  *keywords.Analyzer
	impact    *impact.Analyzer
	aggregate *scoring.Aggregator
	simulator *projection.Simulator
	planner   *rewrite.Planner
	logger    *errors.Logger
}

// NewEngine creates a pipeline engine. An empty weight vector falls back to
// the defaults; an invalid one is a fatal configuration error.
func NewEngine(cfg config.AnalysisConfig, collab Collaborators, logger *errors.Logger) (*Engine, error) {
	weights := scoring.Weights(cfg.Weights)
	if len(weights) == 0 {
		weights = scoring.DefaultWeights()
	}

	aggregator, err := scoring.NewAggregator(weights, logger)
	if err != nil {
		return nil, err
	}

	return &Engine{
		cfg:       cfg,
		collab:    collab,
		keywords:  keywords.NewAnalyzer(keywords.DefaultLexicon(), cfg.TopKeywords),
		impact:    impact.NewAnalyzer(impact.DefaultLexicon(), cfg.ConciseWordLimit),
		aggregate: aggregator,
		simulator: projection.NewSimulator(aggregator),
		planner:   rewrite.NewPlanner(collab.Rewriter, cfg.MaxRewriteBullets, cfg.MaxRewriteKeywords, logger),
		logger:    logger,
	}, nil
}

// Aggregator exposes the shared aggregator for callers that derive
// secondary results (benchmarks, comparisons) from the same weights.
func (e *Engine) Aggregator() *scoring.Aggregator {
	return e.aggregate
}

// ScoreResume runs the full pipeline and assembles the structured report
func (e *Engine) ScoreResume(ctx context.Context, input types.ScoreResumeInput) (*types.ScoreReport, error) {
	if err := e.validateInput(input); err != nil {
		return nil, err
	}

	resume := textnorm.CleanText(input.Resume)
	jobDescription := textnorm.NormalizeJobDescription(input.JobDescription)
	bullets := textnorm.ExtractBullets(resume)

	analyses, err := e.runComponentAnalyses(ctx, resume, jobDescription, bullets)
	if err != nil {
		return nil, err
	}

	result := e.aggregate.CalculateFinalScore(map[string]float64{
		scoring.ComponentKeywordMatch:        analyses.keywords.CoverageScore,
		scoring.ComponentSemanticMatch:       analyses.semanticScore,
		scoring.ComponentImpactStrength:      analyses.impact.AverageScore,
		scoring.ComponentSkillsAlignment:     analyses.keywords.SkillsScore,
		scoring.ComponentExperienceAlignment: similarity.ExperienceAlignment(analyses.semanticScore, analyses.gapCount),
		scoring.ComponentFormatCompliance:    analyses.formatScore,
	})

	weakest := impact.WeakestBullets(analyses.impact.Bullets, e.cfg.WeakestCount)
	rewrites := []types.Rewrite{}
	if e.collab.Rewriter != nil {
		rewrites = e.planner.RewriteBullets(ctx, weakest, analyses.keywords.Missing, jobDescription)
	}
	projected := e.simulator.Project(result, rewrites, analyses.impact.Bullets, analyses.keywords.TotalKeywords)

	return &types.ScoreReport{
		FinalScore:       result.FinalScore,
		Breakdown:        result.Breakdown,
		Insights:         scoring.Insights(result),
		MissingKeywords:  topMissing(analyses.keywords.Missing, MissingKeywordLimit),
		WeakBullets:      weakest,
		RewrittenBullets: rewrites,
		ProjectedScore:   projected.ProjectedScore,
		ImprovementDelta: projected.Improvement,
	}, nil
}

// AnalyzeKeywords runs the standalone keyword analysis. Matching against a
// resume is optional; without one every keyword reports as missing.
func (e *Engine) AnalyzeKeywords(_ context.Context, input types.AnalyzeKeywordsInput) (*types.KeywordAnalysis, error) {
	if err := validateLength("job description", input.JobDescription,
		e.minJobLength(), e.maxJobLength()); err != nil {
		return nil, err
	}

	jobDescription := textnorm.NormalizeJobDescription(input.JobDescription)
	analysis := e.keywords.Analyze(jobDescription, textnorm.CleanText(input.Resume))
	return &analysis, nil
}

// AnalyzeImpact runs the standalone bullet impact analysis
func (e *Engine) AnalyzeImpact(_ context.Context, input types.AnalyzeImpactInput) (*types.ImpactSummary, error) {
	if err := validateLength("resume", input.Resume,
		e.minResumeLength(), e.maxResumeLength()); err != nil {
		return nil, err
	}

	resume := textnorm.CleanText(input.Resume)
	summary := e.impact.AnalyzeAll(textnorm.ExtractBullets(resume))
	return &summary, nil
}

// componentResults carries the joined outputs of the concurrent analyses
type componentResults struct {
	keywords      types.KeywordAnalysis
	impact        types.ImpactSummary
	formatScore   float64
	semanticScore float64
	gapCount      int
}

// runComponentAnalyses fans the component analyses out concurrently over
// the same normalized inputs and joins before aggregation. Each goroutine
// writes a distinct field of the shared result.
func (e *Engine) runComponentAnalyses(ctx context.Context, resume, jobDescription string, bullets []string) (*componentResults, error) {
	results := &componentResults{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		results.keywords = e.keywords.Analyze(jobDescription, resume)
		return nil
	})

	g.Go(func() error {
		results.impact = e.impact.AnalyzeAll(bullets)
		return nil
	})

	g.Go(func() error {
		results.formatScore = docformat.ComplianceScore(resume)
		return nil
	})

	g.Go(func() error {
		results.semanticScore = e.semanticScore(gctx, resume, jobDescription)
		return nil
	})

	g.Go(func() error {
		results.gapCount = e.gapCount(gctx, resume, jobDescription)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, errors.NewInternalError(errors.ErrCodeAnalysisFailed,
			"Component analysis failed", err)
	}

	return results, nil
}

// semanticScore embeds both texts and rescales their cosine similarity.
// Any collaborator failure degrades to the neutral score.
func (e *Engine) semanticScore(ctx context.Context, resume, jobDescription string) float64 {
	if e.collab.Embedder == nil {
		return similarity.NeutralScore
	}

	var resumeVec, jobVec []float64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resumeVec, err = e.collab.Embedder.EmbedText(gctx, resume)
		return err
	})
	g.Go(func() error {
		var err error
		jobVec, err = e.collab.Embedder.EmbedText(gctx, jobDescription)
		return err
	})

	if err := g.Wait(); err != nil {
		if e.logger != nil {
			e.logger.Warn("Embedding failed, using neutral semantic score", "error", err.Error())
		}
		return similarity.NeutralScore
	}

	score, err := similarity.ScoreFromVectors(resumeVec, jobVec)
	if err != nil {
		if e.logger != nil {
			e.logger.Warn("Similarity computation failed, using neutral semantic score", "error", err.Error())
		}
		return similarity.NeutralScore
	}
	return score
}

// gapCount asks the gap-analysis collaborator how many experience gaps the
// job exposes. Failures count as zero gaps so experience alignment falls
// back to the semantic proxy.
func (e *Engine) gapCount(ctx context.Context, resume, jobDescription string) int {
	if e.collab.Gaps == nil {
		return 0
	}

	analysis, err := e.collab.Gaps.AnalyzeGaps(ctx, types.GapAnalysisInput{
		Resume:         resume,
		JobDescription: jobDescription,
	})
	if err != nil {
		if e.logger != nil {
			e.logger.Warn("Gap analysis failed, using semantic proxy for experience alignment",
				"error", err.Error())
		}
		return 0
	}
	return len(analysis.Gaps)
}

func (e *Engine) validateInput(input types.ScoreResumeInput) error {
	if err := validateLength("job description", input.JobDescription,
		e.minJobLength(), e.maxJobLength()); err != nil {
		return err
	}
	return validateLength("resume", input.Resume,
		e.minResumeLength(), e.maxResumeLength())
}

// validateLength enforces trimmed length bounds on an input document
func validateLength(name, text string, minLen, maxLen int) error {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minLen {
		return errors.NewValidationError(errors.ErrCodeTextTooShort,
			"The "+name+" is too short to analyze", nil).
			WithContext("length", len(trimmed)).
			WithContext("minimum", minLen)
	}
	if len(trimmed) > maxLen {
		return errors.NewValidationError(errors.ErrCodeTextTooLong,
			"The "+name+" exceeds the maximum supported length", nil).
			WithContext("length", len(trimmed)).
			WithContext("maximum", maxLen)
	}
	return nil
}

func topMissing(missing []string, limit int) []string {
	if len(missing) <= limit {
		return missing
	}
	return missing[:limit]
}

func (e *Engine) minJobLength() int {
	if e.cfg.MinJobDescriptionLength > 0 {
		return e.cfg.MinJobDescriptionLength
	}
	return 50
}

func (e *Engine) maxJobLength() int {
	if e.cfg.MaxJobDescriptionLength > 0 {
		return e.cfg.MaxJobDescriptionLength
	}
	return 50000
}

func (e *Engine) minResumeLength() int {
	if e.cfg.MinResumeLength > 0 {
		return e.cfg.MinResumeLength
	}
	return 50
}

func (e *Engine) maxResumeLength() int {
	if e.cfg.MaxResumeLength > 0 {
		return e.cfg.MaxResumeLength
	}
	return 50000
}
