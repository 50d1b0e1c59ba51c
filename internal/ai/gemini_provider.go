package ai

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"net"
	"net/http"
	"strings"
	"time"

	"resumescore/internal/config"
	scoreErrors "resumescore/internal/errors"
	"resumescore/internal/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
)

// maxRetryBackoff caps the exponential backoff between retry attempts
const maxRetryBackoff = 10 * time.Second

// GeminiProvider implements AIProvider for Google Gemini
type GeminiProvider struct {
	client         *genai.Client
	httpClient     *http.Client
	config         *config.OperationAIConfig
	circuitBreaker *AICircuitBreaker
	embedBreaker   *EmbedCircuitBreaker
	modelBreaker   *ModelCircuitBreaker
	logger         *scoreErrors.Logger
}

// Ensure GeminiProvider implements AIProvider
var _ AIProvider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a new Gemini provider instance for a specific operation
func NewGeminiProvider(cfg *config.OperationAIConfig, operationType string, logger *scoreErrors.Logger) (*GeminiProvider, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, scoreErrors.NewAIError(scoreErrors.ErrCodeAIServiceFailed,
			"Failed to create Gemini client", err)
	}

	// Initialize circuit breakers with operation-specific configuration
	circuitBreaker := NewAICircuitBreaker(operationType, cfg, logger)
	embedBreaker := NewEmbedCircuitBreaker(operationType, cfg, logger)
	modelBreaker := NewModelCircuitBreaker(operationType, cfg, logger)

	return &GeminiProvider{
		client: client,
		httpClient: &http.Client{
			Timeout: *cfg.Timeout,
		},
		config:         cfg,
		circuitBreaker: circuitBreaker,
		embedBreaker:   embedBreaker,
		modelBreaker:   modelBreaker,
		logger:         logger,
	}, nil
}

// ModelInfo represents information about the AI model
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Version     string `json:"version,omitempty"`
	Available   bool   `json:"available"`
	Error       string `json:"error,omitempty"`
}

// GetModelInfo checks the readiness and availability of the configured model
func (g *GeminiProvider) GetModelInfo(ctx context.Context) *ModelInfo {
	modelInfo := &ModelInfo{
		Name:      g.config.Model,
		Available: false,
	}

	// Create a timeout context for the model check
	timeout := getAIModelCheckTimeout()
	checkCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Get model information from Gemini API with circuit breaker
	model, err := g.modelBreaker.ExecuteModel(func() (*genai.Model, error) {
		return g.client.Models.Get(checkCtx, g.config.Model, &genai.GetModelConfig{})
	})
	if err != nil {
		modelInfo.Error = fmt.Sprintf("Failed to get model info: %v", err)

		// Log the error for debugging
		g.logger.Warn("Model availability check failed",
			"model", g.config.Model,
			"provider", g.config.Provider,
			"error", err.Error())
		return modelInfo
	}

	// Model is available, populate info
	modelInfo.Available = true
	if model.DisplayName != "" {
		modelInfo.DisplayName = model.DisplayName
	}
	if model.Version != "" {
		modelInfo.Version = model.Version
	}

	// Log successful check
	g.logger.Debug("Model availability check successful",
		"model", g.config.Model,
		"provider", g.config.Provider,
		"display_name", modelInfo.DisplayName,
		"version", modelInfo.Version)

	return modelInfo
}

// executeWithRetry executes an AI call with retry logic and exponential backoff.
// Backoff starts at 2s and doubles per attempt, capped at maxRetryBackoff.
func executeWithRetry[T any](g *GeminiProvider, ctx context.Context, operation string, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt <= *g.config.MaxRetries; attempt++ {
		if attempt > 0 {
			// Log retry attempt
			g.logger.Warn("Retrying AI operation",
				"operation", operation,
				"attempt", attempt,
				"max_retries", *g.config.MaxRetries,
				"error", lastErr.Error())

			// Exponential backoff with jitter to prevent thundering herd
			baseDelay := time.Duration(math.Pow(2, float64(attempt))) * time.Second
			// Use crypto/rand for secure random jitter
			jitterMax := big.NewInt(int64(float64(baseDelay) * 0.1))
			jitterBig, _ := rand.Int(rand.Reader, jitterMax)
			jitter := time.Duration(jitterBig.Int64())
			backoff := min(baseDelay+jitter, maxRetryBackoff)

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return zero, ctx.Err()
			}
		}

		result, err := fn()
		if err == nil {
			if attempt > 0 {
				g.logger.Info("AI operation succeeded after retry",
					"operation", operation,
					"successful_attempt", attempt+1,
					"total_attempts", attempt+1)
			}
			return result, nil
		}

		lastErr = err

		// Don't retry on certain errors (auth, invalid input, etc.)
		if !g.isRetryableError(err) {
			g.logger.Debug("Error is not retryable, stopping retry attempts",
				"operation", operation,
				"error", err.Error())
			break
		}
	}

	// Log final failure
	g.logger.LogError(lastErr, "AI operation failed after all retry attempts",
		"operation", operation,
		"total_attempts", *g.config.MaxRetries+1)

	return zero, fmt.Errorf("operation '%s' failed after %d retries: %w", operation, *g.config.MaxRetries, lastErr)
}

// isRetryableError determines if an error should trigger a retry
func (g *GeminiProvider) isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Check for network errors (timeouts, connection issues)
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return true // Retry on timeouts
		}
		// Consider other network errors retryable (e.g., connection refused)
		return true
	}

	// Check for Google API errors (HTTP status codes)
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}

	return false
}

// generateText runs a generation call with common tracing, circuit breaker, and retry logic,
// returning the raw response text.
func (g *GeminiProvider) generateText(
	ctx context.Context,
	operationName string,
	userPrompt string,
	systemPrompt string,
	genaiConfig *genai.GenerateContentConfig,
	spanAttributes ...attribute.KeyValue,
) (string, *TokenUsage, error) {
	tracer := otel.Tracer("resumescore.ai.gemini")
	ctx, span := tracer.Start(ctx, "gemini."+operationName)
	defer span.End()

	// Set base attributes
	span.SetAttributes(
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", g.config.Model),
		attribute.Float64("ai.temperature", float64(*g.config.Temperature)),
	)
	span.SetAttributes(spanAttributes...)

	if *g.config.UseSystemPrompts && systemPrompt != "" {
		genaiConfig.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	result, err := g.circuitBreaker.Execute(func() (*genai.GenerateContentResponse, error) {
		return executeWithRetry(g, ctx, operationName, func() (*genai.GenerateContentResponse, error) {
			return g.client.Models.GenerateContent(ctx, g.config.Model, genai.Text(userPrompt), genaiConfig)
		})
	})

	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return "", nil, scoreErrors.NewAIError(scoreErrors.ErrCodeAIServiceFailed, "Failed to generate content for "+operationName, err)
	}

	tokenUsage := extractTokenUsage(result)
	if tokenUsage != nil {
		span.SetAttributes(
			attribute.Int64("ai.tokens.input", tokenUsage.InputTokens),
			attribute.Int64("ai.tokens.output", tokenUsage.OutputTokens),
			attribute.Int64("ai.tokens.total", tokenUsage.TotalTokens),
		)
	}

	span.SetAttributes(attribute.Bool("success", true))
	return result.Text(), tokenUsage, nil
}

// EmbedText implements AIProvider interface for text embeddings
func (g *GeminiProvider) EmbedText(ctx context.Context, text string) ([]float64, error) {
	tracer := otel.Tracer("resumescore.ai.gemini")
	ctx, span := tracer.Start(ctx, "gemini.embed_text")
	defer span.End()

	span.SetAttributes(
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", g.config.Model),
		attribute.Int("input.text_length", len(text)),
	)

	result, err := g.embedBreaker.ExecuteEmbed(func() (*genai.EmbedContentResponse, error) {
		return executeWithRetry(g, ctx, "embed_text", func() (*genai.EmbedContentResponse, error) {
			return g.client.Models.EmbedContent(ctx, g.config.Model, genai.Text(text), &genai.EmbedContentConfig{})
		})
	})
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return nil, scoreErrors.NewAIError(scoreErrors.ErrCodeAIServiceFailed, "Failed to embed text", err)
	}

	if len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		span.SetAttributes(attribute.Bool("success", false))
		return nil, scoreErrors.NewAIError(scoreErrors.ErrCodeAIServiceFailed, "Embedding response contained no values", nil)
	}

	values := result.Embeddings[0].Values
	vector := make([]float64, len(values))
	for i, v := range values {
		vector[i] = float64(v)
	}

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Int("output.dimensions", len(vector)),
	)
	return vector, nil
}

// RewriteBullet implements AIProvider interface for single-bullet rewriting.
// The rewrite is requested as plain text rather than structured output.
func (g *GeminiProvider) RewriteBullet(ctx context.Context, input types.RewriteBulletInput) (string, *TokenUsage, error) {
	systemPrompt, userPrompt := g.getPromptsForRewrite(input.Bullet, input.Keywords, input.JobDescription)
	config := g.buildRewriteConfig()

	text, tokenUsage, err := g.generateText(
		ctx,
		"rewrite_bullet",
		userPrompt,
		systemPrompt,
		config,
		attribute.Int("input.bullet_length", len(input.Bullet)),
		attribute.Int("input.keyword_count", len(input.Keywords)),
	)
	if err != nil {
		return "", nil, err
	}

	return strings.TrimSpace(text), tokenUsage, nil
}

// AnalyzeGaps implements AIProvider interface for experience gap analysis
func (g *GeminiProvider) AnalyzeGaps(ctx context.Context, input types.GapAnalysisInput) (types.GapAnalysis, *TokenUsage, error) {
	systemPrompt, userPrompt := g.getPromptsForGaps(input.Resume, input.JobDescription)
	config := g.buildGapsSchema()

	text, tokenUsage, err := g.generateText(
		ctx,
		"analyze_gaps",
		userPrompt,
		systemPrompt,
		config,
		attribute.Int("input.resume_length", len(input.Resume)),
		attribute.Int("input.job_length", len(input.JobDescription)),
	)
	if err != nil {
		return types.GapAnalysis{}, nil, err
	}

	var output types.GapAnalysis
	if err := json.Unmarshal([]byte(extractJSONObject(text)), &output); err != nil {
		return types.GapAnalysis{}, nil, scoreErrors.NewAIError("AI_RESPONSE_PARSE_FAILED",
			"Failed to parse AI response for analyze_gaps", err)
	}

	return output, tokenUsage, nil
}

// extractJSONObject returns the substring between the first '{' and the last '}'.
// Models occasionally wrap JSON output in prose or code fences.
func extractJSONObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return text
	}
	return text[start : end+1]
}

// GetCircuitBreakerStats returns circuit breaker statistics
func (g *GeminiProvider) GetCircuitBreakerStats() map[string]any {
	stats := map[string]any{
		"ai_operations":    g.circuitBreaker.GetStats(),
		"embed_operations": g.embedBreaker.GetEmbedStats(),
		"model_operations": g.modelBreaker.GetModelStats(),
	}

	// Overall health - all breakers must be healthy
	aiHealthy := g.circuitBreaker.IsHealthy()
	embedHealthy := g.embedBreaker.IsEmbedHealthy()
	modelHealthy := g.modelBreaker.IsModelHealthy()
	stats["overall_healthy"] = aiHealthy && embedHealthy && modelHealthy

	return stats
}

// Close implements AIProvider interface
func (g *GeminiProvider) Close() error {
	// Gemini client doesn't have a Close method in current single-shot usage
	// Probably needed in streaming mode
	return nil
}

// buildRewriteConfig creates the generation config for rewrite requests.
// Rewrites want plain text, not JSON.
func (g *GeminiProvider) buildRewriteConfig() *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "text/plain",
	}

	// Apply temperature configuration if set
	if *g.config.Temperature > 0 {
		config.Temperature = g.config.Temperature
	}

	return config
}

// buildGapsSchema creates the schema for gap analysis requests
func (g *GeminiProvider) buildGapsSchema() *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"gaps": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"summary": {Type: genai.TypeString},
			},
			Required: []string{"gaps", "summary"},
		},
	}

	// Apply temperature configuration if set
	if *g.config.Temperature > 0 {
		config.Temperature = g.config.Temperature
	}

	return config
}

// getPromptsForRewrite returns system and user prompts for bullet rewriting
func (g *GeminiProvider) getPromptsForRewrite(bullet string, keywords []string, jobDescription string) (string, string) {
	// Get prompts from config or use defaults
	systemPrompt := g.getSystemPrompt("rewrite")
	userPrompt := g.getUserPrompt("rewrite")

	keywordList := "none"
	if len(keywords) > 0 {
		keywordList = strings.Join(keywords, ", ")
	}

	// Format user prompt with dynamic content
	formattedUserPrompt := fmt.Sprintf(userPrompt, keywordList, bullet, jobDescription)

	return systemPrompt, formattedUserPrompt
}

// getPromptsForGaps returns system and user prompts for gap analysis
func (g *GeminiProvider) getPromptsForGaps(resume, jobDescription string) (string, string) {
	// Get prompts from config or use defaults
	systemPrompt := g.getSystemPrompt("gaps")
	userPrompt := g.getUserPrompt("gaps")

	// Format user prompt with dynamic content
	formattedUserPrompt := fmt.Sprintf(userPrompt, resume, jobDescription)

	return systemPrompt, formattedUserPrompt
}

// getSystemPrompt returns the appropriate system prompt
func (g *GeminiProvider) getSystemPrompt(promptType string) string {
	loadedPrompts, configPrompts := g.getPrompts(promptType)
	var configSystemPrompts *config.SystemPrompts
	if configPrompts != nil {
		configSystemPrompts = &configPrompts.SystemPrompts
	} else {
		// Create an empty struct to avoid nil pointer panics
		configSystemPrompts = &config.SystemPrompts{}
	}

	switch promptType {
	case "rewrite":
		return resolvePrompt(
			loadedPrompts.SystemPrompts.RewriteBullet,
			configSystemPrompts.RewriteBullet,
			DefaultSystemPrompts.RewriteBullet,
		)
	case "gaps":
		return resolvePrompt(
			loadedPrompts.SystemPrompts.AnalyzeGaps,
			configSystemPrompts.AnalyzeGaps,
			DefaultSystemPrompts.AnalyzeGaps,
		)
	default:
		// Fallback for any unknown prompt type
		return ""
	}
}

// getUserPrompt returns the appropriate user prompt template
func (g *GeminiProvider) getUserPrompt(promptType string) string {
	loadedPrompts, configPrompts := g.getPrompts(promptType)
	var configUserPrompts *config.UserPrompts
	if configPrompts != nil {
		configUserPrompts = &configPrompts.UserPrompts
	} else {
		// Create an empty struct to avoid nil pointer panics
		configUserPrompts = &config.UserPrompts{}
	}

	switch promptType {
	case "rewrite":
		return resolvePrompt(
			loadedPrompts.UserPrompts.RewriteBullet,
			configUserPrompts.RewriteBullet,
			DefaultUserPrompts.RewriteBullet,
		)
	case "gaps":
		return resolvePrompt(
			loadedPrompts.UserPrompts.AnalyzeGaps,
			configUserPrompts.AnalyzeGaps,
			DefaultUserPrompts.AnalyzeGaps,
		)
	default:
		return ""
	}
}

// TokenUsage represents token usage information from AI responses
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

// AIOperationResult holds the result of an AI operation including token usage
type AIOperationResult struct {
	Error      error
	TokenUsage *TokenUsage
}

// extractTokenUsage extracts token usage information from Gemini API response
func extractTokenUsage(result *genai.GenerateContentResponse) *TokenUsage {
	if result == nil || result.UsageMetadata == nil {
		return nil
	}

	usage := result.UsageMetadata
	return &TokenUsage{
		InputTokens:  int64(usage.PromptTokenCount),
		OutputTokens: int64(usage.CandidatesTokenCount),
		TotalTokens:  int64(usage.TotalTokenCount),
	}
}

// getAIModelCheckTimeout returns the configured AI model check timeout
func getAIModelCheckTimeout() time.Duration {
	// Use default timeout since we don't have access to config here
	// This function should be refactored to accept timeout as parameter
	// Fallback to default
	return 10 * time.Second
}

// getPrompts returns the appropriate prompts for the operation, prioritizing loaded content over config
func (g *GeminiProvider) getPrompts(operationType string) (config.OperationLoadedPrompts, *config.PromptConfig) {
	// Get loaded prompts (returns a copy)
	loadedPrompts := config.GetPromptsForOperation(operationType)
	configPrompts := &g.config.CustomPrompts
	return loadedPrompts, configPrompts
}

// resolvePrompt selects the correct prompt string based on a clear priority order:
// 1. A prompt loaded from a file.
// 2. A prompt defined directly in the configuration.
// 3. A hardcoded default prompt.
func resolvePrompt(loadedFromFile, fromConfig, fromDefault string) string {
	if loadedFromFile != "" {
		return loadedFromFile
	}
	if fromConfig != "" {
		return fromConfig
	}
	return fromDefault
}
