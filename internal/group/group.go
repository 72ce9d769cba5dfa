// Package group clusters distinct selected articles that cover the same
// underlying event, so multi-outlet stories read as one entry with its
// sources attached.
package group

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"sort"
	"strings"

	"newsbrief/internal/classify"
	"newsbrief/internal/model"
	"newsbrief/internal/normalize"
)

// BaseThreshold is the minimum boosted similarity for an article to join
// an existing bucket.
const BaseThreshold = 0.20

const (
	domainBoost  = 0.08
	countryBoost = 0.10
	timeBoost    = 0.05
	timeWindowMs = 24 * 60 * 60 * 1000
)

// entityPattern matches runs of two or more capitalized words, a cheap
// stand-in for named entities.
var entityPattern = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)\b`)

// Similarity scores how likely two articles cover the same event: token
// Jaccard plus metadata boosts. Boosts only apply across different sources;
// two articles from one outlet sharing a domain tag is no evidence of a
// shared event.
func Similarity(a, b *model.ArticleRecord) float64 {
	score := normalize.Jaccard(a.Tokens, b.Tokens)

	if a.SourceID != b.SourceID {
		if a.Domain != "" && a.Domain == b.Domain {
			score += domainBoost
		}
		if a.CountryCode != "" && a.CountryCode == b.CountryCode {
			score += countryBoost
		}
		dt := a.PublishedAt - b.PublishedAt
		if dt < 0 {
			dt = -dt
		}
		if dt < timeWindowMs {
			score += timeBoost
		}
	}

	return score
}

// Articles buckets the input greedily in one pass: each article joins the
// bucket with the highest max-pairwise similarity at or above the threshold,
// or starts its own. Buckets with at least two members become StoryGroups;
// singletons are returned as ungrouped. Input order matters and is the
// caller's publishedAt ordering.
func Articles(articles []model.ArticleRecord, threshold float64) ([]model.StoryGroup, []model.ArticleRecord) {
	if threshold <= 0 {
		threshold = BaseThreshold
	}

	var buckets [][]model.ArticleRecord
	for i := range articles {
		a := &articles[i]

		best := -1
		bestScore := 0.0
		for bi := range buckets {
			score := 0.0
			for mi := range buckets[bi] {
				if s := Similarity(a, &buckets[bi][mi]); s > score {
					score = s
				}
			}
			if score >= threshold && score > bestScore {
				best = bi
				bestScore = score
			}
		}

		if best >= 0 {
			buckets[best] = append(buckets[best], *a)
		} else {
			buckets = append(buckets, []model.ArticleRecord{*a})
		}
	}

	var groups []model.StoryGroup
	var ungrouped []model.ArticleRecord
	for _, bucket := range buckets {
		if len(bucket) >= 2 {
			groups = append(groups, buildGroup(bucket))
		} else {
			ungrouped = append(ungrouped, bucket...)
		}
	}

	return groups, ungrouped
}

// buildGroup derives the group's presentation fields from its members.
// The representative is the calmest take (lowest arousal, then shortest
// title); the register is the most severe one present so an alert member
// is never hidden behind a calmer sibling's label.
func buildGroup(members []model.ArticleRecord) model.StoryGroup {
	rep := members[0]
	for _, m := range members[1:] {
		if m.ArousalScore < rep.ArousalScore ||
			(m.ArousalScore == rep.ArousalScore && len(m.Title) < len(rep.Title)) {
			rep = m
		}
	}

	headline := members[0].Title
	earliest := members[0].PublishedAt
	latest := members[0].PublishedAt
	for _, m := range members[1:] {
		if len(m.Title) < len(headline) {
			headline = m.Title
		}
		if m.PublishedAt < earliest {
			earliest = m.PublishedAt
		}
		if m.PublishedAt > latest {
			latest = m.PublishedAt
		}
	}

	worst := classify.DefaultRegister
	worstCost := classify.RegisterCost[worst]
	for _, m := range members {
		if cost, ok := classify.RegisterCost[m.Register]; ok && cost > worstCost {
			worst = m.Register
			worstCost = cost
		}
	}

	sources := make([]model.GroupSource, 0, len(members))
	for _, m := range members {
		sources = append(sources, model.GroupSource{
			SourceID:       m.SourceID,
			SourceName:     m.SourceName,
			ArticleID:      m.ID,
			Title:          m.Title,
			Link:           m.Link,
			Summary:        m.Summary,
			Content:        m.Content,
			PublishedAt:    m.PublishedAt,
			ReadTimeMin:    m.ReadTimeMin,
			EmotionalScore: m.EmotionalScore,
			ArousalScore:   m.ArousalScore,
		})
	}

	return model.StoryGroup{
		GroupID:        groupID(members),
		Headline:       headline,
		Domain:         plurality(members, func(m *model.ArticleRecord) string { return m.Domain }),
		Register:       worst,
		CountryCode:    plurality(members, func(m *model.ArticleRecord) string { return m.CountryCode }),
		Sources:        sources,
		ArticleCount:   len(members),
		Representative: rep,
		PublishedRange: model.PublishedRange{Earliest: earliest, Latest: latest},
		ReadTimeMin:    rep.ReadTimeMin,
		EmotionalScore: rep.EmotionalScore,
		ArousalScore:   rep.ArousalScore,
		SharedTerms:    sharedTerms(members),
		SharedEntities: sharedEntities(members),
	}
}

// groupID hashes the sorted member IDs, so the same set of articles always
// names the same group regardless of arrival order.
func groupID(members []model.ArticleRecord) string {
	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}
	sort.Strings(ids)
	sum := sha256.Sum256([]byte(strings.Join(ids, "|")))
	return hex.EncodeToString(sum[:])[:16]
}

// plurality returns the most common non-empty value; ties go to the value
// seen first.
func plurality(members []model.ArticleRecord, key func(*model.ArticleRecord) string) string {
	counts := make(map[string]int)
	var order []string
	for i := range members {
		v := key(&members[i])
		if v == "" {
			continue
		}
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	best := ""
	bestCount := 0
	for _, v := range order {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}

// sharedTerms lists tokens appearing in at least two members, most shared
// first. Each member counts a token once.
func sharedTerms(members []model.ArticleRecord) []model.TermCount {
	counts := make(map[string]int)
	for i := range members {
		seen := make(map[string]struct{}, len(members[i].Tokens))
		for _, t := range members[i].Tokens {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			counts[t]++
		}
	}

	var terms []model.TermCount
	for term, n := range counts {
		if n >= 2 {
			terms = append(terms, model.TermCount{Term: term, Count: n})
		}
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].Term < terms[j].Term
	})
	return terms
}

// sharedEntities extracts capitalized multi-word phrases from member
// titles and summaries and keeps those two or more members mention.
func sharedEntities(members []model.ArticleRecord) []model.EntityCount {
	counts := make(map[string]int)
	for i := range members {
		text := members[i].Title + " " + members[i].Summary
		seen := make(map[string]struct{})
		for _, match := range entityPattern.FindAllString(text, -1) {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			counts[match]++
		}
	}

	var entities []model.EntityCount
	for entity, n := range counts {
		if n >= 2 {
			entities = append(entities, model.EntityCount{Entity: entity, Count: n})
		}
	}
	sort.Slice(entities, func(i, j int) bool {
		if entities[i].Count != entities[j].Count {
			return entities[i].Count > entities[j].Count
		}
		return entities[i].Entity < entities[j].Entity
	})
	return entities
}
