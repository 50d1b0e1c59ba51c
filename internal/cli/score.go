package cli

import (
	"fmt"

	"resumescore/internal/common"
	"resumescore/internal/types"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [resume-file] [job-description-file]",
	Short: "Score a resume against a job description",
	Long: `Score a resume against a job description and report a weighted 0-100
score with a full breakdown. The command takes two arguments: the path to
the resume file and the path to the job description file. Both files should
be in plain text format.

The report includes missing keywords, the weakest bullets, suggested
rewrites, and the projected score after applying the rewrites. When no AI
provider is configured the semantic components fall back to neutral values
and no rewrites are suggested.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if scoreConfig.OutputFormat == "" {
			scoreConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(scoreConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScore,
}

var scoreConfig common.CommandConfig
var scoreOffline bool

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	scoreCmd.Flags().BoolVar(&scoreOffline, "offline", false, "Skip AI-backed analyses and use neutral fallbacks")

	// Add completion for format flag
	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	engine, err := buildEngine(cfg, logger, !scoreOffline)
	if err != nil {
		return fmt.Errorf("failed to create scoring engine: %w", err)
	}

	createInput := func(contents []string) (types.ScoreResumeInput, error) {
		if len(contents) != 2 {
			return types.ScoreResumeInput{}, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}
		return types.ScoreResumeInput{
			Resume:         contents[0],
			JobDescription: contents[1],
		}, nil
	}

	logDetails := func(input types.ScoreResumeInput, cfg common.CommandConfig) {
		logger.Info("Starting resume scoring",
			"resume_chars", len(input.Resume),
			"job_chars", len(input.JobDescription),
			"offline", scoreOffline,
			"output_format", cfg.OutputFormat)
	}

	err = common.RunAnalysisCommand(
		cmd.Context(),
		logger,
		scoreConfig,
		args,
		createInput,
		engine.ScoreResume,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}
	logger.Info("Resume scoring completed successfully")
	return nil
}
