package parse

import (
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsbrief/internal/fetch"
)

func TestMakeID(t *testing.T) {
	id := MakeID("bbc-world", "https://example.com/a", "Some headline")

	assert.Len(t, id, 16)
	assert.Equal(t, id, MakeID("bbc-world", "https://example.com/a", "Some headline"))
	assert.NotEqual(t, id, MakeID("bbc-world", "https://example.com/b", "Some headline"))
	assert.NotEqual(t, id, MakeID("npr-news", "https://example.com/a", "Some headline"))
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Plain headline", "Plain headline"},
		{"strips markup", "<p>Hello <b>world</b></p>", "Hello world"},
		{"drops script bodies", "<p>Hello</p><script>alert(1)</script>", "Hello"},
		{"drops style bodies", "<style>p{color:red}</style><p>Visible</p>", "Visible"},
		{"decodes entities without markup", "Fish &amp; Chips &ndash; review", "Fish & Chips – review"},
		{"collapses whitespace", "Hello\n\n   world\t again", "Hello world again"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestPayload(t *testing.T) {
	published := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	fetchedAt := int64(1770000000000)

	payload := fetch.Payload{
		SourceID:   "bbc-world",
		SourceName: "BBC News - World",
		FetchedAt:  fetchedAt,
		Items: []*gofeed.Item{
			{
				Title:           "<b>Summit</b> ends with agreement",
				Description:     "Leaders agreed on a framework.",
				Link:            "https://example.com/summit",
				PublishedParsed: &published,
				Categories:      []string{"World"},
			},
			{
				Title:       "No date on this one",
				Description: "Body text.",
				Link:        "https://example.com/undated",
			},
			{
				Title: "   ",
				Link:  "https://example.com/untitled",
			},
		},
	}

	articles := Payload(payload)
	require.Len(t, articles, 2)

	a := articles[0]
	assert.Equal(t, "Summit ends with agreement", a.Title)
	assert.Equal(t, "Leaders agreed on a framework.", a.Summary)
	// No item content means the summary doubles as content.
	assert.Equal(t, a.Summary, a.Content)
	assert.Equal(t, published.UnixMilli(), a.PublishedAt)
	assert.Equal(t, fetchedAt, a.FetchedAt)
	assert.Equal(t, []string{"World"}, a.Categories)
	assert.Len(t, a.ID, 16)

	// Unparsable dates fall back to fetch time.
	assert.Equal(t, fetchedAt, articles[1].PublishedAt)
}
