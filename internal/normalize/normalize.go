// Package normalize tokenizes article text and estimates reading time.
package normalize

import (
	"math"
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"

	"newsbrief/internal/model"
)

// wordsPerMinute is the assumed adult reading speed.
const wordsPerMinute = 225

var stopwords = map[string]struct{}{}

func init() {
	list := []string{
		"a", "an", "the", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "from", "is", "are", "was", "were", "be", "been",
		"being", "have", "has", "had", "do", "does", "did", "will", "would",
		"could", "should", "may", "might", "shall", "can", "it", "its",
		"this", "that", "these", "those", "i", "you", "he", "she", "we",
		"they", "me", "him", "her", "us", "them", "my", "your", "his",
		"our", "their", "what", "which", "who", "whom", "when", "where",
		"why", "how", "not", "no", "nor", "so", "if", "then", "than",
		"too", "very", "just", "about", "above", "after", "again", "all",
		"also", "am", "as", "because", "before", "between", "both", "each",
		"few", "get", "got", "here", "into", "more", "most", "new", "now",
		"only", "other", "out", "over", "own", "said", "same", "some",
		"such", "there", "through", "under", "up", "while", "down",
	}
	for _, w := range list {
		stopwords[w] = struct{}{}
	}
}

// Tokenize lowercases text, splits on non-alphabetic characters (keeping
// apostrophes and hyphens inside tokens), and drops one-character tokens
// and stopwords.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && r != '\'' && r != '-'
	})

	tokens := make([]string, 0, len(fields))
	for _, t := range fields {
		if len(t) <= 1 {
			continue
		}
		if _, stop := stopwords[t]; stop {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// ReadTimeMin estimates reading minutes from the raw word count,
// rounded to two decimals.
func ReadTimeMin(text string) float64 {
	n := WordCount(text)
	if n == 0 {
		return 0
	}
	return math.Round(float64(n)/wordsPerMinute*100) / 100
}

// WordCount counts the Unicode word segments that carry letters or digits,
// so punctuation runs are not counted as words.
func WordCount(text string) int {
	if text == "" {
		return 0
	}

	count := 0
	tokens := words.FromString(text)
	for tokens.Next() {
		if wordy(tokens.Value()) {
			count++
		}
	}
	return count
}

func wordy(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// Article attaches tokens and the read-time estimate to one record.
// Tokens come from title+summary+content; read time comes from the raw text
// the reader would actually read (content, then summary, then title).
func Article(a model.ArticleRecord) model.ArticleRecord {
	a.Tokens = Tokenize(a.Title + " " + a.Summary + " " + a.Content)
	a.ReadTimeMin = ReadTimeMin(a.Text())
	return a
}

// All normalizes every article.
func All(articles []model.ArticleRecord) []model.ArticleRecord {
	out := make([]model.ArticleRecord, 0, len(articles))
	for _, a := range articles {
		out = append(out, Article(a))
	}
	return out
}

// Jaccard computes set similarity between two token lists:
// intersection size over union size.
func Jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	setA := make(map[string]struct{}, len(a))
	for _, t := range a {
		setA[t] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, t := range b {
		setB[t] = struct{}{}
	}

	intersection := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
