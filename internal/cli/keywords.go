package cli

import (
	"fmt"

	"resumescore/internal/common"
	"resumescore/internal/types"

	"github.com/spf13/cobra"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords [job-description-file] [resume-file]",
	Short: "Extract and match keywords from a job description",
	Long: `Extract the significant keywords from a job description and, when a
resume file is also given, match them against the resume. The analysis
reports exact matches, partial matches, missing keywords, coverage and
skills scores, and a per-category breakdown.

Without a resume file every keyword reports as missing.`,
	Args: cobra.RangeArgs(1, 2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if keywordsConfig.OutputFormat == "" {
			keywordsConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(keywordsConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runKeywords,
}

var keywordsConfig common.CommandConfig

func init() {
	keywordsCmd.Flags().StringVarP(&keywordsConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	keywordsCmd.Flags().StringVar(&keywordsConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = keywordsCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runKeywords(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	// Keyword analysis is purely lexical, no AI providers needed
	engine, err := buildEngine(cfg, logger, false)
	if err != nil {
		return fmt.Errorf("failed to create scoring engine: %w", err)
	}

	createInput := func(contents []string) (types.AnalyzeKeywordsInput, error) {
		input := types.AnalyzeKeywordsInput{}
		switch len(contents) {
		case 1:
			input.JobDescription = contents[0]
		case 2:
			input.JobDescription = contents[0]
			input.Resume = contents[1]
		default:
			return input, fmt.Errorf("expected 1 or 2 file paths, got %d", len(contents))
		}
		return input, nil
	}

	logDetails := func(input types.AnalyzeKeywordsInput, cfg common.CommandConfig) {
		logger.Info("Starting keyword analysis",
			"job_chars", len(input.JobDescription),
			"resume_chars", len(input.Resume),
			"output_format", cfg.OutputFormat)
	}

	err = common.RunAnalysisCommand(
		cmd.Context(),
		logger,
		keywordsConfig,
		args,
		createInput,
		engine.AnalyzeKeywords,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze keywords: %w", err)
	}
	logger.Info("Keyword analysis completed successfully")
	return nil
}
