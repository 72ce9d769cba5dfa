// Package classify assigns a topic domain, a cognitive register, and an
// optional country code to each article, each with a raw confidence score.
//
// Classification is layered and entirely lexicon-driven, no external calls:
//
//  1. feed category mapping -> domain prior
//  2. source bias -> domain prior
//  3. keyword scoring against the domain lexicon
//  4. keyword scoring against the register lexicon
//  5. independent country detection pass
//
// The register axis is what separates this from a plain topic classifier:
// it says not just what happened but what the story asks of the reader.
package classify

import (
	"strings"

	"newsbrief/internal/model"
)

// Classification is the result for one article. Confidences are the winning
// raw aggregate scores, not normalized; callers may threshold on them.
type Classification struct {
	Domain             string
	Register           string
	CountryCode        string
	DomainConfidence   int
	RegisterConfidence int
}

// Article classifies a single normalized article. Deterministic: the same
// record always yields the same result.
func Article(a *model.ArticleRecord) Classification {
	// Title is editorially curated, so it scores at double weight.
	titleText := strings.ToLower(a.Title)
	bodyText := strings.ToLower(a.Summary + " " + a.Content)
	fullText := titleText + " " + bodyText

	titleTokens := splitTokens(titleText)
	allTokens := a.Tokens
	if len(allTokens) == 0 {
		allTokens = splitTokens(fullText)
	}

	// Domain priors: feed categories, then source bias.
	domainScores := map[string]int{}
	for _, cat := range a.Categories {
		if domain, ok := categoryToDomain[strings.ToLower(strings.TrimSpace(cat))]; ok {
			domainScores[domain] += categoryConfidence
		}
	}
	if bias, ok := sourceBias[a.SourceID]; ok {
		domainScores[bias.Domain] += bias.Weight
	}

	for _, domain := range DomainOrder {
		if combined := scoreKeywords(titleTokens, titleText, allTokens, fullText, domainKeywords[domain]); combined > 0 {
			domainScores[domain] += combined
		}
	}

	registerScores := map[string]int{}
	for _, register := range RegisterOrder {
		if combined := scoreKeywords(titleTokens, titleText, allTokens, fullText, registerKeywords[register]); combined > 0 {
			registerScores[register] = combined
		}
	}

	domain, domainScore := pickTop(domainScores, DomainOrder, "")
	register, registerScore := pickTop(registerScores, RegisterOrder, DefaultRegister)

	return Classification{
		Domain:             domain,
		Register:           register,
		CountryCode:        DetectCountry(a.Title, a.Summary),
		DomainConfidence:   domainScore,
		RegisterConfidence: registerScore,
	}
}

// All classifies every article, attaching the results in place.
func All(articles []model.ArticleRecord) []model.ArticleRecord {
	out := make([]model.ArticleRecord, 0, len(articles))
	for _, a := range articles {
		c := Article(&a)
		a.Domain = c.Domain
		a.Register = c.Register
		a.CountryCode = c.CountryCode
		a.DomainConfidence = c.DomainConfidence
		a.RegisterConfidence = c.RegisterConfidence
		out = append(out, a)
	}
	return out
}

// scoreKeywords runs one lexicon over title (2x) and body (1x).
func scoreKeywords(titleTokens []string, titleText string, allTokens []string, fullText string, kws []Keyword) int {
	return scoreAgainst(titleTokens, titleText, kws)*2 + scoreAgainst(allTokens, fullText, kws)
}

// scoreAgainst aggregates keyword weights over tokens and raw text.
// Multi-word phrases match the raw lowercase text at double weight.
// Single keywords of length >= 4 match by token prefix (stem matching);
// shorter ones require exact token equality.
func scoreAgainst(tokens []string, rawText string, kws []Keyword) int {
	score := 0

	for _, kw := range kws {
		if strings.ContainsRune(kw.Term, ' ') {
			if strings.Contains(rawText, kw.Term) {
				score += kw.Weight * 2
			}
			continue
		}

		for _, token := range tokens {
			if token == kw.Term || (len(kw.Term) >= 4 && strings.HasPrefix(token, kw.Term)) {
				score += kw.Weight
				break
			}
		}
	}

	return score
}

// pickTop returns the highest-scoring key, resolving ties to the first
// highest in the given order. A key needs a positive score to win; with no
// signal the fallback is returned with score 0.
func pickTop(scores map[string]int, order []string, fallback string) (string, int) {
	best := fallback
	bestScore := 0

	for _, key := range order {
		if s := scores[key]; s > bestScore {
			best = key
			bestScore = s
		}
	}

	return best, bestScore
}

// splitTokens is the classifier's own light tokenizer: lowercase input,
// split on non-alphabetic runes keeping apostrophes and hyphens, keep
// stopwords (they never appear in the lexicons anyway).
func splitTokens(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && r != '\'' && r != '-'
	})
	out := fields[:0]
	for _, f := range fields {
		if len(f) > 1 {
			out = append(out, f)
		}
	}
	return out
}
