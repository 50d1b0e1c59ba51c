package cli

import (
	"fmt"

	"resumescore/internal/common"
	"resumescore/internal/types"

	"github.com/spf13/cobra"
)

var impactCmd = &cobra.Command{
	Use:   "impact [resume-file]",
	Short: "Analyze the impact of a resume's bullet points",
	Long: `Analyze every bullet point in a resume for impact: action verbs,
quantification, weak phrasing, and length. The summary reports a 0-100
impact score per bullet with its strengths and weaknesses, plus document
level counts of weak and strong bullets.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if impactConfig.OutputFormat == "" {
			impactConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(impactConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runImpact,
}

var impactConfig common.CommandConfig

func init() {
	impactCmd.Flags().StringVarP(&impactConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	impactCmd.Flags().StringVar(&impactConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = impactCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runImpact(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	// Impact analysis is heuristic, no AI providers needed
	engine, err := buildEngine(cfg, logger, false)
	if err != nil {
		return fmt.Errorf("failed to create scoring engine: %w", err)
	}

	createInput := func(contents []string) (types.AnalyzeImpactInput, error) {
		if len(contents) != 1 {
			return types.AnalyzeImpactInput{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return types.AnalyzeImpactInput{Resume: contents[0]}, nil
	}

	logDetails := func(input types.AnalyzeImpactInput, cfg common.CommandConfig) {
		logger.Info("Starting bullet impact analysis",
			"resume_chars", len(input.Resume),
			"output_format", cfg.OutputFormat)
	}

	err = common.RunAnalysisCommand(
		cmd.Context(),
		logger,
		impactConfig,
		args,
		createInput,
		engine.AnalyzeImpact,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze bullet impact: %w", err)
	}
	logger.Info("Bullet impact analysis completed successfully")
	return nil
}
