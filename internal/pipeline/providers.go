package pipeline

import (
	"context"

	"resumescore/internal/ai"
	"resumescore/internal/types"
)

// ProviderRewriter adapts an AI provider to the rewrite planner's
// Generator interface, discarding token usage the planner has no use for.
type ProviderRewriter struct {
	Provider ai.AIProvider
}

// RewriteBullet implements rewrite.Generator
func (r ProviderRewriter) RewriteBullet(ctx context.Context, bullet string, kws []string, jobDescription string) (string, error) {
	text, _, err := r.Provider.RewriteBullet(ctx, types.RewriteBulletInput{
		Bullet:         bullet,
		Keywords:       kws,
		JobDescription: jobDescription,
	})
	return text, err
}

// ProviderGapAnalyzer adapts an AI provider to the GapAnalyzer interface
type ProviderGapAnalyzer struct {
	Provider ai.AIProvider
}

// AnalyzeGaps implements GapAnalyzer
func (a ProviderGapAnalyzer) AnalyzeGaps(ctx context.Context, input types.GapAnalysisInput) (types.GapAnalysis, error) {
	analysis, _, err := a.Provider.AnalyzeGaps(ctx, input)
	return analysis, err
}

// NewCollaborators wires per-operation AI providers into the pipeline's
// collaborator bundle. Any nil provider leaves its capability disabled.
func NewCollaborators(embed, rewrite, gaps ai.AIProvider) Collaborators {
	collab := Collaborators{}
	if embed != nil {
		collab.Embedder = embed
	}
	if rewrite != nil {
		collab.Rewriter = ProviderRewriter{Provider: rewrite}
	}
	if gaps != nil {
		collab.Gaps = ProviderGapAnalyzer{Provider: gaps}
	}
	return collab
}
