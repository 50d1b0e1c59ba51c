package ai

import (
	"context"

	"resumescore/internal/types"
)

// AIProvider interface for different AI implementations
// Generation methods return token usage information - callers can ignore it if not needed
type AIProvider interface {
	EmbedText(ctx context.Context, text string) ([]float64, error)
	RewriteBullet(ctx context.Context, input types.RewriteBulletInput) (string, *TokenUsage, error)
	AnalyzeGaps(ctx context.Context, input types.GapAnalysisInput) (types.GapAnalysis, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}

// PromptBuilder interface for building AI prompts
type PromptBuilder interface {
	BuildRewritePrompt(bullet string, keywords []string, jobDescription string) string
	BuildGapsPrompt(resume, jobDescription string) string
}
