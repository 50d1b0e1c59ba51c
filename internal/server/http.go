package server

import (
	"time"

	"resumescore/internal/ai"
	"resumescore/internal/config"
	scoreErrors "resumescore/internal/errors"
	"resumescore/internal/pipeline"
)

// ScoreRequest represents the request body for the score endpoint
// KeywordsRequest represents the request body for the keywords endpoint
// ErrorResponse represents an error response
type ScoreRequest struct {
	Resume         string `json:"resume"`
	JobDescription string `json:"jobDescription"`
}

type KeywordsRequest struct {
	JobDescription string `json:"jobDescription"`
	Resume         string `json:"resume,omitempty"`
}

type ImpactRequest struct {
	Resume string `json:"resume"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// Scoring pipeline shared by all request handlers
	Engine *pipeline.Engine

	// TLS Configuration
	TLSConfig config.TLSConfig

	// Certificate management
	CertificateManager *CertificateManager

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Logger
	Logger *scoreErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
// (Refactored to reduce long parameter list in NewServer)
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, logger *scoreErrors.Logger) *Server {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.Window,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	engine, err := pipeline.NewEngine(appCfg.Analysis, buildCollaborators(appCfg, logger), logger)
	if err != nil {
		// Invalid weights are caught by config validation at startup, so
		// this only happens when the server is constructed around an
		// unvalidated config. Handlers report 503 for a nil engine.
		logger.LogError(err, "Failed to create scoring engine")
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		Engine:         engine,
		TLSConfig:      cfg.TLSConfig,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		Logger:         logger,
	}
}

// buildCollaborators creates the per-operation AI providers for the scoring
// pipeline. A provider that fails to initialize is logged and left nil so
// the pipeline degrades instead of blocking server startup.
func buildCollaborators(appCfg *config.Config, logger *scoreErrors.Logger) pipeline.Collaborators {
	newProvider := func(opConfig config.OperationAIConfig, operation string) ai.AIProvider {
		service, err := ai.NewService(&opConfig, operation, logger)
		if err != nil {
			logger.Warn("AI service unavailable, continuing without it",
				"operation", operation,
				"error", err.Error())
			return nil
		}
		return service.Provider
	}

	return pipeline.NewCollaborators(
		newProvider(appCfg.GetEmbedConfig(), "embed"),
		newProvider(appCfg.GetRewriteConfig(), "rewrite"),
		newProvider(appCfg.GetGapsConfig(), "gaps"),
	)
}
