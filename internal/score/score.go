package score

import (
	"newsbrief/internal/model"
)

// Result carries the two lexicon scores for one article.
type Result struct {
	EmotionalScore float64 // [-1, 1], 0 when nothing matched
	ArousalScore   float64 // [0, 1]
}

// Tokens scores a normalized token list against the lexicon for lang.
// An unregistered language yields a neutral result rather than an error.
func Tokens(tokens []string, lang string) Result {
	lexicon := Get(lang)
	if lexicon == nil || len(tokens) == 0 {
		return Result{}
	}

	sentimentSum := 0
	sentimentCount := 0
	arousalCount := 0

	for _, token := range tokens {
		if v, ok := lexicon.SentimentOf(token); ok {
			sentimentSum += v
			sentimentCount++
		}
		if lexicon.IsArousal(token) {
			arousalCount++
		}
	}

	var emotional float64
	if sentimentCount > 0 {
		emotional = clamp(float64(sentimentSum)/(float64(sentimentCount)*5), -1, 1)
	}

	arousal := clamp(float64(arousalCount)/float64(len(tokens))*10, 0, 1)

	return Result{EmotionalScore: emotional, ArousalScore: arousal}
}

// Article attaches scores to one record.
func Article(a model.ArticleRecord, lang string) model.ArticleRecord {
	r := Tokens(a.Tokens, lang)
	a.EmotionalScore = r.EmotionalScore
	a.ArousalScore = r.ArousalScore
	return a
}

// All scores every article with the same language lexicon.
func All(articles []model.ArticleRecord, lang string) []model.ArticleRecord {
	out := make([]model.ArticleRecord, 0, len(articles))
	for _, a := range articles {
		out = append(out, Article(a, lang))
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
