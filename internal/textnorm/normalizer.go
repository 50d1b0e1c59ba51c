package textnorm

import (
	"regexp"
	"strings"

	"resumescore/internal/textutil"
)

var (
	multiBlankRe = regexp.MustCompile(`\n{3,}`)
	yearsRe      = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)`)
)

// jobPostingArtifacts are boilerplate phrases stripped from job descriptions
// before keyword extraction so they never surface as keywords.
var jobPostingArtifacts = []*regexp.Regexp{
	regexp.MustCompile(`(?i)apply now`),
	regexp.MustCompile(`(?i)click here`),
	regexp.MustCompile(`(?i)send resume to`),
	regexp.MustCompile(`(?i)equal opportunity employer`),
	regexp.MustCompile(`(?i)\beoe\b`),
}

// actionVerbStarters is the verb set used to promote plain lines to bullets.
// Broader than the impact scoring lexicon on purpose: extraction should be
// permissive, scoring strict.
var actionVerbStarters = map[string]struct{}{
	"achieved": {}, "administered": {}, "analyzed": {}, "architected": {},
	"built": {}, "collaborated": {}, "conducted": {}, "coordinated": {},
	"created": {}, "delivered": {}, "designed": {}, "developed": {},
	"directed": {}, "drove": {}, "engineered": {}, "established": {},
	"executed": {}, "expanded": {}, "generated": {}, "implemented": {},
	"improved": {}, "increased": {}, "initiated": {}, "launched": {},
	"led": {}, "managed": {}, "optimized": {}, "orchestrated": {},
	"organized": {}, "performed": {}, "pioneered": {}, "planned": {},
	"produced": {}, "programmed": {}, "reduced": {}, "reengineered": {},
	"resolved": {}, "spearheaded": {}, "streamlined": {}, "transformed": {},
	"maintained": {}, "automated": {}, "deployed": {}, "integrated": {},
	"migrated": {}, "scaled": {}, "tested": {}, "validated": {},
	"monitored": {}, "documented": {}, "trained": {}, "supported": {},
	"enhanced": {},
}

// CleanText normalizes unicode, collapses in-line whitespace per line, and
// limits blank runs to a single empty line. Line structure is preserved so
// bullet extraction still works on the result. Idempotent: cleaning an
// already-clean text is a no-op.
func CleanText(text string) string {
	text = textutil.NormalizeUnicode(text)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = textutil.CleanWhitespace(line)
	}
	text = strings.Join(lines, "\n")

	text = multiBlankRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// ExtractBullets pulls achievement bullets out of resume text. Marker lines
// start a bullet, following non-marker lines continue it, and plain lines of
// more than three words starting with an action verb count as bullets too.
// Bullets shorter than three words are dropped as headers or noise.
func ExtractBullets(text string) []string {
	var bullets []string
	var current string

	flush := func() {
		if current != "" {
			bullets = append(bullets, strings.TrimSpace(current))
			current = ""
		}
	}

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)

		if stripped == "" {
			flush()
			continue
		}

		if textutil.IsBulletLine(stripped) {
			flush()
			current = textutil.StripBulletMarker(stripped)
			continue
		}

		if current != "" {
			current += " " + stripped
			continue
		}

		if textutil.WordCount(stripped) > 3 && startsWithActionVerb(stripped) {
			current = stripped
		}
	}
	flush()

	filtered := bullets[:0]
	for _, b := range bullets {
		if textutil.WordCount(b) >= 3 {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// NormalizeJobDescription cleans a job description and strips common
// posting boilerplate.
func NormalizeJobDescription(jd string) string {
	jd = CleanText(jd)
	for _, artifact := range jobPostingArtifacts {
		jd = artifact.ReplaceAllString(jd, "")
	}

	lines := strings.Split(jd, "\n")
	for i, line := range lines {
		lines[i] = textutil.CleanWhitespace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// ExtractExperienceYears returns the largest "N years" style mention, 0 if none
func ExtractExperienceYears(text string) int {
	maxYears := 0
	for _, m := range yearsRe.FindAllStringSubmatch(text, -1) {
		years := 0
		for _, c := range m[1] {
			years = years*10 + int(c-'0')
		}
		if years > maxYears {
			maxYears = years
		}
	}
	return maxYears
}

func startsWithActionVerb(text string) bool {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimRight(fields[0], ".,;:"))
	_, ok := actionVerbStarters[first]
	return ok
}
