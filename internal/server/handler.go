package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"resumescore/internal/observability"
	"resumescore/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createScoreHandler wraps the full scoring pipeline with observability
func (s *Server) createScoreHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumescore.api")
		ctx, span := tracer.Start(ctx, "api.score")
		defer span.End()

		// Parse request
		var req ScoreRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		// Validation
		if strings.TrimSpace(req.Resume) == "" {
			err := fmt.Errorf("missing resume")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume", "resume field is required", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}

		// Size validation
		if len(req.Resume) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("resume too large: %d chars", len(req.Resume))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume too large", fmt.Sprintf("resume exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}
		if len(req.JobDescription) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("job description too large: %d chars", len(req.JobDescription))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Job description too large", fmt.Sprintf("jobDescription exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}

		if s.Engine == nil {
			writeErrorResponse(w, "Scoring engine unavailable", "server started without a valid scoring configuration", http.StatusServiceUnavailable)
			return
		}

		// Add request attributes to span
		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.Resume)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "score"),
		)

		input := types.ScoreResumeInput{
			Resume:         req.Resume,
			JobDescription: req.JobDescription,
		}

		// Track the scoring run with observability. The pipeline aggregates
		// token usage internally so none is reported here.
		metrics := om.GetMetrics()
		var result *types.ScoreReport
		err := metrics.TrackAIOperationWithTokens(ctx, "score", func(ctx context.Context) *observability.AIOperationResult {
			report, scoreErr := s.Engine.ScoreResume(ctx, input)
			result = report
			return &observability.AIOperationResult{Error: scoreErr}
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "scoring"))
			metrics.RecordBusinessMetric(ctx, "resume_scored", false, om,
				attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to score resume", err.Error(), statusForError(err))
			return
		}

		// Record success metrics
		metrics.RecordBusinessMetric(ctx, "resume_scored", true, om,
			attribute.Int("score.final", result.FinalScore),
			attribute.Int("score.projected", result.ProjectedScore))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("score.final", result.FinalScore),
			attribute.Int("score.projected", result.ProjectedScore),
			attribute.Int("rewrites.count", len(result.RewrittenBullets)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createKeywordsHandler wraps the standalone keyword analysis with observability
func (s *Server) createKeywordsHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumescore.api")
		ctx, span := tracer.Start(ctx, "api.keywords")
		defer span.End()

		var req KeywordsRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}

		if s.Engine == nil {
			writeErrorResponse(w, "Scoring engine unavailable", "server started without a valid scoring configuration", http.StatusServiceUnavailable)
			return
		}

		span.SetAttributes(
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.Int("request.resume_length", len(req.Resume)),
			attribute.String("operation", "keywords"),
		)

		result, err := s.Engine.AnalyzeKeywords(ctx, types.AnalyzeKeywordsInput{
			JobDescription: req.JobDescription,
			Resume:         req.Resume,
		})

		metrics := om.GetMetrics()
		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "keywords_analyzed", false, om)
			writeErrorResponse(w, "Failed to analyze keywords", err.Error(), statusForError(err))
			return
		}

		metrics.RecordBusinessMetric(ctx, "keywords_analyzed", true, om,
			attribute.Int("keywords.total", result.TotalKeywords),
			attribute.Int("keywords.missing", len(result.Missing)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("keywords.total", result.TotalKeywords),
			attribute.Float64("keywords.coverage", result.CoverageScore),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createImpactHandler wraps the standalone bullet impact analysis with observability
func (s *Server) createImpactHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumescore.api")
		ctx, span := tracer.Start(ctx, "api.impact")
		defer span.End()

		var req ImpactRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Resume) == "" {
			err := fmt.Errorf("missing resume")
			span.RecordError(err)
			writeErrorResponse(w, "Missing resume", "resume field is required", http.StatusBadRequest)
			return
		}

		if s.Engine == nil {
			writeErrorResponse(w, "Scoring engine unavailable", "server started without a valid scoring configuration", http.StatusServiceUnavailable)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.Resume)),
			attribute.String("operation", "impact"),
		)

		result, err := s.Engine.AnalyzeImpact(ctx, types.AnalyzeImpactInput{
			Resume: req.Resume,
		})

		metrics := om.GetMetrics()
		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "impact_analyzed", false, om)
			writeErrorResponse(w, "Failed to analyze bullet impact", err.Error(), statusForError(err))
			return
		}

		metrics.RecordBusinessMetric(ctx, "impact_analyzed", true, om,
			attribute.Int("bullets.total", result.TotalBullets),
			attribute.Int("bullets.weak", result.WeakBullets))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("bullets.total", result.TotalBullets),
			attribute.Float64("bullets.average_score", result.AverageScore),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
