// Package pipeline runs one end-to-end brief generation pass and exposes
// client-safe projections of the result.
package pipeline

import (
	"context"
	"time"

	"newsbrief/internal/budget"
	"newsbrief/internal/classify"
	"newsbrief/internal/config"
	"newsbrief/internal/dedup"
	"newsbrief/internal/fetch"
	"newsbrief/internal/filter"
	"newsbrief/internal/group"
	"newsbrief/internal/logger"
	"newsbrief/internal/metrics"
	"newsbrief/internal/model"
	"newsbrief/internal/normalize"
	"newsbrief/internal/parse"
	"newsbrief/internal/retry"
	"newsbrief/internal/score"
)

// ArticleView is the outward shape of a selected article. Tokens and other
// stage internals stay inside the pipeline.
type ArticleView struct {
	ID             string   `json:"id"`
	SourceID       string   `json:"sourceId"`
	SourceName     string   `json:"sourceName"`
	Title          string   `json:"title"`
	Link           string   `json:"link"`
	Summary        string   `json:"summary"`
	PublishedAt    int64    `json:"publishedAt"`
	ReadTimeMin    float64  `json:"readTimeMin"`
	Domain         string   `json:"domain,omitempty"`
	Register       string   `json:"register"`
	CountryCode    string   `json:"countryCode,omitempty"`
	EmotionalScore float64  `json:"emotionalScore"`
	ArousalScore   float64  `json:"arousalScore"`
	ContentFlags   []string `json:"contentFlags,omitempty"`
}

// Result is one run's output: the brief itself, the selected articles
// clustered into story groups, and the screening counts.
type Result struct {
	Brief     model.DailyBrief   `json:"brief"`
	Groups    []model.StoryGroup `json:"groups"`
	Ungrouped []ArticleView      `json:"ungrouped"`
	Articles  []ArticleView      `json:"articles"`
	Rejected  int                `json:"rejected"`
	Flagged   int                `json:"flagged"`
	Duration  time.Duration      `json:"-"`
}

// Run executes fetch, parse, filter, normalize, classify, dedup, score,
// select, group in order. seen holds article IDs already delivered in
// earlier runs; they stay in the pool for dedup and grouping context but
// the selector skips them.
//
// Fetch failures never fail the run: with every feed unreachable the
// stages all see empty input and the result is a brief with no articles.
func Run(ctx context.Context, srcs []model.Source, seen map[string]bool, cfg *config.Config) (*Result, error) {
	start := time.Now()

	fetcher := fetch.New(fetch.Options{
		Timeout:     cfg.FetchTimeout,
		Concurrency: cfg.FetchConcurrency,
		Retry: retry.Config{
			MaxAttempts: cfg.RetryAttempts,
			Delay:       cfg.RetryDelay,
			Backoff:     true,
		},
	})
	payloads := fetcher.FetchAll(ctx, srcs)
	enabled := 0
	for _, s := range srcs {
		if s.Enabled {
			enabled++
		}
	}
	metrics.Global.AddFeedsFetched(len(payloads))
	metrics.Global.AddFeedsFailed(enabled - len(payloads))

	articles := parse.All(payloads)
	metrics.Global.AddArticlesParsed(len(articles))
	logger.Info("parsed articles", "count", len(articles), "feeds", len(payloads))

	screened := filter.Articles(articles)
	metrics.Global.AddArticlesRejected(len(screened.Rejected))
	metrics.Global.AddArticlesFlagged(len(screened.Flagged))
	logger.Info("screened articles",
		"kept", len(screened.Kept),
		"rejected", len(screened.Rejected),
		"flagged", len(screened.Flagged))

	normalized := normalize.All(screened.Kept)
	classified := classify.All(normalized)

	deduped := dedup.Articles(classified, cfg.DedupThreshold)
	metrics.Global.AddDuplicatesRemoved(len(classified) - len(deduped))
	logger.Info("deduplicated articles",
		"kept", len(deduped),
		"removed", len(classified)-len(deduped))

	scored := score.All(deduped, cfg.Language)

	for i := range scored {
		if seen[scored[i].ID] {
			scored[i].Seen = true
		}
	}

	brief := budget.Select(scored, budget.Options{
		MaxReadTimeMin: cfg.MaxReadTimeMin,
		MaxArousalLoad: cfg.MaxArousalLoad,
		Mode:           cfg.Mode,
	})
	metrics.Global.AddArticlesSelected(brief.ArticleCount)
	metrics.Global.IncrementBriefs()
	logger.Info("brief selected",
		"articles", brief.ArticleCount,
		"candidates", brief.CandidateCount,
		"readTimeMin", brief.TotalReadTime,
		"emotionalLoad", brief.EmotionalLoad,
		"mode", brief.Mode)

	groups, ungrouped := group.Articles(brief.Articles, cfg.GroupThreshold)
	metrics.Global.AddStoryGroups(len(groups))
	logger.Info("grouped stories", "groups", len(groups), "ungrouped", len(ungrouped))

	res := &Result{
		Brief:     brief,
		Groups:    groups,
		Ungrouped: views(ungrouped),
		Articles:  views(brief.Articles),
		Rejected:  len(screened.Rejected),
		Flagged:   len(screened.Flagged),
		Duration:  time.Since(start),
	}

	metrics.Global.RecordPipelineTime(res.Duration)
	metrics.Global.SetLastRun()
	return res, nil
}

func views(articles []model.ArticleRecord) []ArticleView {
	out := make([]ArticleView, 0, len(articles))
	for _, a := range articles {
		out = append(out, ArticleView{
			ID:             a.ID,
			SourceID:       a.SourceID,
			SourceName:     a.SourceName,
			Title:          a.Title,
			Link:           a.Link,
			Summary:        a.Summary,
			PublishedAt:    a.PublishedAt,
			ReadTimeMin:    a.ReadTimeMin,
			Domain:         a.Domain,
			Register:       a.Register,
			CountryCode:    a.CountryCode,
			EmotionalScore: a.EmotionalScore,
			ArousalScore:   a.ArousalScore,
			ContentFlags:   a.ContentFlags,
		})
	}
	return out
}
