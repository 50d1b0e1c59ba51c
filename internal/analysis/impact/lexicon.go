package impact

// Lexicon holds the verb and phrase sets the bullet detectors run against.
// Built once at startup and treated as read-only afterwards.
type Lexicon struct {
	StrongVerbs map[string]struct{}
	WeakPhrases []string
}

// DefaultLexicon returns the built-in strong-verb and weak-phrase sets
func DefaultLexicon() Lexicon {
	strong := []string{
		"achieved", "accelerated", "accomplished", "architected", "automated",
		"built", "championed", "created", "delivered", "designed", "developed",
		"directed", "drove", "eliminated", "engineered", "established",
		"executed", "expanded", "generated", "implemented", "improved",
		"increased", "initiated", "launched", "led", "managed", "orchestrated",
		"optimized", "pioneered", "produced", "reduced", "reengineered",
		"resolved", "scaled", "spearheaded", "streamlined", "transformed",
		"upgraded", "overhauled", "maximized", "minimized", "modernized",
		"revolutionized",
	}

	verbs := make(map[string]struct{}, len(strong))
	for _, v := range strong {
		verbs[v] = struct{}{}
	}

	return Lexicon{
		StrongVerbs: verbs,
		WeakPhrases: []string{
			"responsible for", "worked on", "helped", "helped with",
			"assisted", "assisted with", "participated", "participated in",
			"involved in", "dealt with", "handled", "tasked with",
			"duties included",
		},
	}
}
