package textutil

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe   = regexp.MustCompile(`\s+`)
	emailRe        = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe        = regexp.MustCompile(`(\+?\d{1,3}[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
	bulletMarkerRe = regexp.MustCompile(`^[\x{2022}\x{25CF}\x{25CB}\x{25A0}\x{25A1}\x{25AA}\x{25AB}\-\*]\s+`)
)

// unicodeReplacements maps typographic characters to their plain equivalents
var unicodeReplacements = []struct {
	old string
	new string
}{
	{"–", "-"}, // en dash
	{"—", "-"}, // em dash
	{"‘", "'"},
	{"’", "'"},
	{"“", `"`},
	{"”", `"`},
	{"\u00a0", " "}, // non-breaking space
}

// NormalizeUnicode replaces common typographic characters with ASCII
// equivalents. The bullet glyph is kept so bullet detection still works.
func NormalizeUnicode(text string) string {
	for _, r := range unicodeReplacements {
		text = strings.ReplaceAll(text, r.old, r.new)
	}
	return text
}

// CleanWhitespace collapses runs of whitespace into single spaces and trims
func CleanWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// ExtractEmail returns the first email address found, or empty string
func ExtractEmail(text string) string {
	return emailRe.FindString(text)
}

// ExtractPhone returns the first phone number found, or empty string
func ExtractPhone(text string) string {
	return phoneRe.FindString(text)
}

// Lemmatize applies a simplified English suffix stripper.
// It is intentionally crude: partial keyword matching only needs a stable
// stem, not linguistic correctness.
func Lemmatize(word string) string {
	word = strings.ToLower(word)
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 3:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "es") && len(word) > 2:
		return word[:len(word)-2]
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") && len(word) > 1:
		return word[:len(word)-1]
	case strings.HasSuffix(word, "ing") && len(word) > 4:
		return word[:len(word)-3]
	case strings.HasSuffix(word, "ed") && len(word) > 3:
		return word[:len(word)-2]
	}
	return word
}

// IsBulletLine reports whether a line starts with a known bullet marker
func IsBulletLine(line string) bool {
	return bulletMarkerRe.MatchString(strings.TrimSpace(line))
}

// StripBulletMarker removes a leading bullet marker and its whitespace
func StripBulletMarker(line string) string {
	return bulletMarkerRe.ReplaceAllString(strings.TrimSpace(line), "")
}

// stopWords is the token exclusion set for frequency-based extraction
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "have": {}, "he": {},
	"in": {}, "is": {}, "it": {}, "its": {}, "of": {}, "on": {}, "or": {},
	"our": {}, "that": {}, "the": {}, "their": {}, "this": {}, "to": {},
	"was": {}, "we": {}, "were": {}, "will": {}, "with": {}, "you": {},
	"your": {}, "they": {}, "them": {}, "these": {}, "those": {}, "not": {},
	"but": {}, "if": {}, "can": {}, "all": {}, "any": {}, "more": {},
	"other": {}, "such": {}, "than": {}, "what": {}, "which": {}, "who": {},
	"would": {}, "about": {}, "into": {}, "also": {}, "been": {}, "both": {},
	"each": {}, "may": {}, "should": {}, "must": {}, "well": {},
}

// IsStopWord reports whether a lowercase token is in the stop-word set
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}

// WordCount counts whitespace-separated words
func WordCount(text string) int {
	return len(strings.Fields(text))
}
