package group

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsbrief/internal/model"
)

func sameEvent(id, sourceID, title string, arousal float64) model.ArticleRecord {
	return model.ArticleRecord{
		ID:           id,
		SourceID:     sourceID,
		SourceName:   sourceID,
		Title:        title,
		Summary:      "European Union leaders met in Brussels.",
		Tokens:       []string{"summit", "leaders", "brussels", "agreement", "climate"},
		Domain:       "politics",
		Register:     "awareness",
		CountryCode:  "EU",
		PublishedAt:  1_700_000_000_000,
		ArousalScore: arousal,
	}
}

func TestArticlesGroupsSameEvent(t *testing.T) {
	articles := []model.ArticleRecord{
		sameEvent("a", "bbc-world", "Summit ends with climate agreement", 0.5),
		sameEvent("b", "guardian-world", "Climate pact sealed", 0.1),
		{
			ID: "c", SourceID: "npr-news", Title: "Local team wins championship",
			Tokens:      []string{"team", "championship", "season", "coach"},
			PublishedAt: 1_700_000_000_000,
		},
	}

	groups, ungrouped := Articles(articles, BaseThreshold)

	require.Len(t, groups, 1)
	require.Len(t, ungrouped, 1)

	g := groups[0]
	assert.Equal(t, 2, g.ArticleCount)
	assert.Len(t, g.Sources, 2)
	// Representative is the calmest take; headline is the shortest title.
	assert.Equal(t, "b", g.Representative.ID)
	assert.Equal(t, "Climate pact sealed", g.Headline)
	assert.Equal(t, "politics", g.Domain)
	assert.Equal(t, "EU", g.CountryCode)
	assert.Equal(t, "c", ungrouped[0].ID)
}

func TestArticlesGroupIDStableAcrossOrder(t *testing.T) {
	a := sameEvent("a", "bbc-world", "Summit ends with climate agreement", 0.5)
	b := sameEvent("b", "guardian-world", "Climate pact sealed", 0.1)

	groups1, _ := Articles([]model.ArticleRecord{a, b}, BaseThreshold)
	groups2, _ := Articles([]model.ArticleRecord{b, a}, BaseThreshold)

	require.Len(t, groups1, 1)
	require.Len(t, groups2, 1)
	assert.Equal(t, groups1[0].GroupID, groups2[0].GroupID)
	assert.Len(t, groups1[0].GroupID, 16)
}

func TestArticlesWorstRegisterWins(t *testing.T) {
	a := sameEvent("a", "bbc-world", "Summit ends with climate agreement", 0.5)
	a.Register = "alert"
	b := sameEvent("b", "guardian-world", "Climate pact sealed", 0.1)
	b.Register = "curiosity"

	groups, _ := Articles([]model.ArticleRecord{a, b}, BaseThreshold)

	require.Len(t, groups, 1)
	assert.Equal(t, "alert", groups[0].Register)
}

func TestSimilarityBoostsOnlyAcrossSources(t *testing.T) {
	a := model.ArticleRecord{
		ID: "a", SourceID: "bbc-world",
		Tokens:      []string{"summit", "alpha", "bravo", "charlie"},
		Domain:      "politics",
		CountryCode: "FR",
		PublishedAt: 1_700_000_000_000,
	}
	b := a
	b.ID = "b"
	b.Tokens = []string{"summit", "delta", "echo", "foxtrot"}

	// Same source: bare Jaccard 1/7, below threshold.
	assert.Less(t, Similarity(&a, &b), BaseThreshold)

	// Different source: domain, country, and recency boosts push it over.
	b.SourceID = "guardian-world"
	assert.GreaterOrEqual(t, Similarity(&a, &b), BaseThreshold)
}

func TestArticlesSingletonsNeverGroup(t *testing.T) {
	articles := []model.ArticleRecord{
		{ID: "a", Tokens: []string{"alpha", "bravo"}},
		{ID: "b", Tokens: []string{"charlie", "delta"}},
	}

	groups, ungrouped := Articles(articles, BaseThreshold)

	assert.Empty(t, groups)
	assert.Len(t, ungrouped, 2)
}

func TestArticlesSharedTermsAndEntities(t *testing.T) {
	a := sameEvent("a", "bbc-world", "Summit ends with climate agreement", 0.5)
	a.Summary = "Ursula Von Der Leyen spoke in Brussels."
	b := sameEvent("b", "guardian-world", "Climate pact sealed", 0.1)
	b.Summary = "Ursula Von Der Leyen praised the pact."

	groups, _ := Articles([]model.ArticleRecord{a, b}, BaseThreshold)
	require.Len(t, groups, 1)

	require.NotEmpty(t, groups[0].SharedTerms)
	for _, tc := range groups[0].SharedTerms {
		assert.GreaterOrEqual(t, tc.Count, 2)
	}

	require.NotEmpty(t, groups[0].SharedEntities)
	assert.Equal(t, "Ursula Von Der Leyen", groups[0].SharedEntities[0].Entity)
}

func TestArticlesBoostsGroupLowJaccardSameEvent(t *testing.T) {
	base := int64(1_700_000_000_000)
	mk := func(id, source string, extra []string, offsetMs int64) model.ArticleRecord {
		return model.ArticleRecord{
			ID:          id,
			SourceID:    source,
			SourceName:  source,
			Title:       "Strikes reported near Kyiv " + id,
			Tokens:      append([]string{"kyiv"}, extra...),
			Domain:      "politics",
			Register:    "concern",
			CountryCode: "UA",
			PublishedAt: base + offsetMs,
		}
	}

	articles := []model.ArticleRecord{
		mk("a", "bbc-world", []string{"strikes", "overnight", "reported"}, 0),
		mk("b", "guardian-world", []string{"missiles", "eastern", "region"}, 60*60*1000),
		mk("c", "al-jazeera", []string{"defense", "officials", "statement"}, 2*60*60*1000),
	}

	// Pairwise Jaccard is 1/7, well below the base threshold; the domain,
	// country, and recency boosts carry it over.
	groups, ungrouped := Articles(articles, BaseThreshold)

	require.Len(t, groups, 1)
	assert.Equal(t, 3, groups[0].ArticleCount)
	assert.Empty(t, ungrouped)
	assert.Equal(t, "UA", groups[0].CountryCode)
}

func TestArticlesThresholdMonotonicity(t *testing.T) {
	articles := []model.ArticleRecord{
		sameEvent("a", "bbc-world", "Summit ends with climate agreement", 0.5),
		sameEvent("b", "guardian-world", "Climate pact sealed", 0.1),
	}

	loose, _ := Articles(articles, BaseThreshold)
	require.Len(t, loose, 1)

	// A stricter threshold can only break groups apart, never form new ones.
	strict, strictUngrouped := Articles(articles, 1.5)
	assert.Empty(t, strict)
	assert.Len(t, strictUngrouped, 2)
}
