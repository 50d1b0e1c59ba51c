// Package docformat scores how well a resume follows conventional
// structure: contact information, standard sections, and bullet markers.
package docformat

import (
	"regexp"

	"resumescore/internal/textutil"
)

var (
	sectionRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bexperience\b`),
		regexp.MustCompile(`(?i)\beducation\b`),
		regexp.MustCompile(`(?i)\bskills\b`),
	}
	bulletRe = regexp.MustCompile(`[\x{2022}\x{25CF}\x{25CB}\x{25A0}\x{25A1}\x{25AA}\x{25AB}\-\*]\s+`)
)

// ComplianceScore rates resume structure on a 0-100 scale: email and phone
// 15 points each, each standard section 15, bullet markers 25.
func ComplianceScore(text string) float64 {
	score := 0.0

	if textutil.ExtractEmail(text) != "" {
		score += 15
	}
	if textutil.ExtractPhone(text) != "" {
		score += 15
	}

	for _, re := range sectionRes {
		if re.MatchString(text) {
			score += 15
		}
	}

	if bulletRe.MatchString(text) {
		score += 25
	}

	if score > 100 {
		score = 100
	}
	return score
}
