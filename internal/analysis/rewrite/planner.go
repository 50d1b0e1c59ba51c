// Package rewrite turns weak bullets into improvement proposals by calling
// a generative-text collaborator and post-processing its output.
package rewrite

import (
	"context"
	"strings"
	"unicode"

	"resumescore/internal/analysis/projection"
	"resumescore/internal/errors"
	"resumescore/internal/types"
)

const (
	// DefaultMaxBullets limits how many weak bullets get rewritten
	DefaultMaxBullets = 3

	// DefaultMaxKeywords limits how many missing keywords are offered for
	// injection into a rewrite
	DefaultMaxKeywords = 5
)

// Generator is the capability the planner needs from the generative-text
// collaborator. Implementations own their retry policy; the planner only
// decides what to do when a call ultimately fails.
type Generator interface {
	RewriteBullet(ctx context.Context, bullet string, keywords []string, jobDescription string) (string, error)
}

// responsePreambles are known collaborator lead-ins stripped from rewrites
var responsePreambles = []string{
	"Here is the rewritten bullet:",
	"Rewritten:",
	"Rewritten bullet:",
	"New bullet:",
	"Here you go:",
}

// Planner produces rewrites for the weakest bullets of a document
type Planner struct {
	generator   Generator
	maxBullets  int
	maxKeywords int
	logger      *errors.Logger
}

// NewPlanner creates a rewrite planner. Non-positive limits fall back to
// the defaults.
func NewPlanner(generator Generator, maxBullets, maxKeywords int, logger *errors.Logger) *Planner {
	if maxBullets <= 0 {
		maxBullets = DefaultMaxBullets
	}
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}
	return &Planner{
		generator:   generator,
		maxBullets:  maxBullets,
		maxKeywords: maxKeywords,
		logger:      logger,
	}
}

// RewriteBullets rewrites up to maxBullets weak bullets sequentially,
// offering up to maxKeywords missing keywords for injection. A single
// bullet's failure drops that bullet from the result, never the batch.
func (p *Planner) RewriteBullets(ctx context.Context, weakBullets []types.BulletAnalysis, missingKeywords []string, jobDescription string) []types.Rewrite {
	bullets := weakBullets
	if len(bullets) > p.maxBullets {
		bullets = bullets[:p.maxBullets]
	}

	keywords := missingKeywords
	if len(keywords) > p.maxKeywords {
		keywords = keywords[:p.maxKeywords]
	}

	rewrites := make([]types.Rewrite, 0, len(bullets))
	for _, bullet := range bullets {
		rewritten, err := p.generator.RewriteBullet(ctx, bullet.Text, keywords, jobDescription)
		if err != nil {
			if p.logger != nil {
				p.logger.LogError(err, "Bullet rewrite failed, skipping bullet",
					"bullet_chars", len(bullet.Text))
			}
			continue
		}

		rewritten = CleanRewrite(rewritten)
		if rewritten == "" {
			continue
		}

		rewrites = append(rewrites, types.Rewrite{
			Original:         bullet.Text,
			Rewritten:        rewritten,
			ImprovementScore: max(0, projection.AssumedRewriteScore-bullet.ImpactScore),
			KeywordsAdded:    IdentifyAddedKeywords(bullet.Text, rewritten, keywords),
		})
	}
	return rewrites
}

// CleanRewrite strips quotes, bullet markers, and known collaborator
// preambles from a generated rewrite, then capitalizes the first letter.
func CleanRewrite(text string) string {
	text = strings.TrimSpace(text)
	text = strings.Trim(text, `"'`)
	text = strings.TrimLeft(text, "•●○■□▪▫-*")
	text = strings.TrimSpace(text)

	for _, prefix := range responsePreambles {
		if len(text) >= len(prefix) && strings.EqualFold(text[:len(prefix)], prefix) {
			text = strings.TrimSpace(text[len(prefix):])
			text = strings.TrimSpace(strings.TrimLeft(text, ":"))
		}
	}

	if text == "" {
		return text
	}

	runes := []rune(text)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// IdentifyAddedKeywords returns the keywords present in the rewritten text
// but absent from the original, by case-insensitive substring containment.
// Discovery order follows the keyword list.
func IdentifyAddedKeywords(original, rewritten string, keywords []string) []string {
	originalLower := strings.ToLower(original)
	rewrittenLower := strings.ToLower(rewritten)

	added := []string{}
	for _, kw := range keywords {
		kwLower := strings.ToLower(kw)
		if strings.Contains(rewrittenLower, kwLower) && !strings.Contains(originalLower, kwLower) {
			added = append(added, kw)
		}
	}
	return added
}
