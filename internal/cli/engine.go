package cli

import (
	"resumescore/internal/ai"
	"resumescore/internal/config"
	"resumescore/internal/errors"
	"resumescore/internal/pipeline"
)

// newAIProvider creates the AI service for one operation. Failures are
// logged and return nil so the pipeline degrades instead of aborting.
func newAIProvider(opConfig config.OperationAIConfig, operation string, logger *errors.Logger) ai.AIProvider {
	service, err := ai.NewService(&opConfig, operation, logger)
	if err != nil {
		logger.Warn("AI service unavailable, continuing without it",
			"operation", operation,
			"error", err.Error())
		return nil
	}
	return service.Provider
}

// buildEngine wires the per-operation AI providers into a scoring engine.
// withAI=false skips provider creation entirely for offline analyses.
func buildEngine(cfg *config.Config, logger *errors.Logger, withAI bool) (*pipeline.Engine, error) {
	collab := pipeline.Collaborators{}
	if withAI {
		collab = pipeline.NewCollaborators(
			newAIProvider(cfg.GetEmbedConfig(), "embed", logger),
			newAIProvider(cfg.GetRewriteConfig(), "rewrite", logger),
			newAIProvider(cfg.GetGapsConfig(), "gaps", logger),
		)
	}
	return pipeline.NewEngine(cfg.Analysis, collab, logger)
}
