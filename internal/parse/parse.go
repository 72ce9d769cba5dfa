// Package parse converts raw feed payloads into partial article records.
//
// Pure and deterministic: markup stripped, entities decoded, whitespace
// collapsed, publish dates converted to epoch milliseconds (falling back to
// fetch time), and a content-addressed id computed once per item. Items with
// an empty title after stripping carry no information and are dropped.
package parse

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"newsbrief/internal/fetch"
	"newsbrief/internal/model"
)

// Payload parses a single raw feed payload into partial ArticleRecords.
func Payload(p fetch.Payload) []model.ArticleRecord {
	out := make([]model.ArticleRecord, 0, len(p.Items))

	for _, item := range p.Items {
		title := CleanText(item.Title)
		if title == "" {
			continue
		}

		summary := CleanText(item.Description)
		content := CleanText(item.Content)
		if content == "" {
			content = summary
		}

		out = append(out, model.ArticleRecord{
			ID:          MakeID(p.SourceID, item.Link, title),
			SourceID:    p.SourceID,
			SourceName:  p.SourceName,
			Title:       title,
			Summary:     summary,
			Content:     content,
			Link:        item.Link,
			PublishedAt: publishedAt(item, p.FetchedAt),
			FetchedAt:   p.FetchedAt,
			Categories:  append([]string(nil), item.Categories...),
		})
	}

	return out
}

// All parses every payload into one flat article list.
func All(payloads []fetch.Payload) []model.ArticleRecord {
	var out []model.ArticleRecord
	for _, p := range payloads {
		out = append(out, Payload(p)...)
	}
	return out
}

// MakeID derives the stable article identity from sourceId|link|title.
// Never recomputed after parse time.
func MakeID(sourceID, link, title string) string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s", sourceID, link, title)))
	return hex.EncodeToString(h[:])[:16]
}

// CleanText strips markup and script/style bodies, decodes HTML entities,
// and collapses whitespace.
func CleanText(s string) string {
	if s == "" {
		return ""
	}

	if strings.ContainsRune(s, '<') {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
		if err == nil {
			doc.Find("script, style").Remove()
			s = doc.Text()
		} else {
			s = html.UnescapeString(s)
		}
	} else {
		s = html.UnescapeString(s)
	}

	return strings.Join(strings.Fields(s), " ")
}

func publishedAt(item *gofeed.Item, fetchedAt int64) int64 {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.UnixMilli()
	}
	if item.UpdatedParsed != nil {
		return item.UpdatedParsed.UnixMilli()
	}
	return fetchedAt
}
