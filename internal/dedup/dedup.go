// Package dedup collapses near-identical articles, keeping the earliest.
//
// Two articles are duplicates when their normalized titles are identical or
// their token-set Jaccard similarity exceeds the threshold (default 0.7, an
// approximation of a 0.92 cosine target on short texts). The kept article
// absorbs the duplicate's categories. Comparison against already-kept
// articles is O(n²), fine at daily-brief scale but not meant for web-scale
// corpora.
package dedup

import (
	"sort"
	"strings"

	"newsbrief/internal/model"
	"newsbrief/internal/normalize"
)

// DefaultThreshold is the Jaccard similarity above which two articles are
// considered the same story copy.
const DefaultThreshold = 0.7

// Articles deduplicates, earliest first. Running it on its own output
// changes nothing.
func Articles(articles []model.ArticleRecord, threshold float64) []model.ArticleRecord {
	sorted := append([]model.ArticleRecord(nil), articles...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt < sorted[j].PublishedAt
	})

	byTitle := make(map[string]int, len(sorted)) // normalized title -> kept index
	kept := make([]model.ArticleRecord, 0, len(sorted))

	for _, a := range sorted {
		norm := NormalizeTitle(a.Title)

		if idx, ok := byTitle[norm]; ok {
			kept[idx].Categories = mergeCategories(kept[idx].Categories, a.Categories)
			continue
		}

		duplicate := false
		for i := range kept {
			if normalize.Jaccard(a.Tokens, kept[i].Tokens) > threshold {
				kept[i].Categories = mergeCategories(kept[i].Categories, a.Categories)
				duplicate = true
				break
			}
		}

		if !duplicate {
			byTitle[norm] = len(kept)
			kept = append(kept, a)
		}
	}

	return kept
}

// NormalizeTitle reduces a title to its lowercase alphanumeric skeleton.
func NormalizeTitle(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// mergeCategories unions the duplicate's categories into the kept
// article's, preserving first-seen order.
func mergeCategories(kept, extra []string) []string {
	seen := make(map[string]struct{}, len(kept))
	for _, c := range kept {
		seen[c] = struct{}{}
	}
	for _, c := range extra {
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			kept = append(kept, c)
		}
	}
	return kept
}
