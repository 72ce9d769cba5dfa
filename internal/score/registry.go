// Package score computes emotional valence and arousal intensity from
// per-language lexicons.
package score

// Lexicon provides word-level sentiment and arousal lookups for one
// language. Sentiment values are roughly -5..+5.
type Lexicon interface {
	SentimentOf(token string) (int, bool)
	IsArousal(token string) bool
}

// MapLexicon is the plain map-backed Lexicon used by the built-in languages.
type MapLexicon struct {
	Sentiment map[string]int
	Arousal   map[string]struct{}
}

func (l *MapLexicon) SentimentOf(token string) (int, bool) {
	v, ok := l.Sentiment[token]
	return v, ok
}

func (l *MapLexicon) IsArousal(token string) bool {
	_, ok := l.Arousal[token]
	return ok
}

// lexicons is populated at startup and read-only during pipeline runs,
// so no locking is needed.
var lexicons = map[string]Lexicon{}

// Register installs a lexicon for a language code, replacing any previous
// one. Call before the first pipeline run.
func Register(lang string, lex Lexicon) {
	lexicons[lang] = lex
}

// Get returns the lexicon for a language code, or nil. A missing language
// is a valid state, not an error: articles then score neutral.
func Get(lang string) Lexicon {
	return lexicons[lang]
}

// Languages lists the registered language codes.
func Languages() []string {
	out := make([]string, 0, len(lexicons))
	for lang := range lexicons {
		out = append(out, lang)
	}
	return out
}
