// Package fetch retrieves raw feed payloads for all enabled sources.
//
// Fetching is the only concurrent stage of the pipeline. Every source is an
// independent unit of work with its own timeout; one source failing must
// never abort the batch for the others.
package fetch

import (
	"context"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"newsbrief/internal/logger"
	"newsbrief/internal/model"
	"newsbrief/internal/retry"
)

// Payload is one successfully fetched feed. Transient: produced here,
// consumed by the parser.
type Payload struct {
	SourceID   string
	SourceName string
	FeedTitle  string
	Items      []*gofeed.Item
	FetchedAt  int64 // epoch ms
}

// Options tune the batch fetch.
type Options struct {
	Timeout     time.Duration
	Concurrency int
	Retry       retry.Config
}

// DefaultOptions mirror the config defaults.
func DefaultOptions() Options {
	return Options{
		Timeout:     10 * time.Second,
		Concurrency: 8,
		Retry:       retry.Config{MaxAttempts: 2, Delay: 2 * time.Second, Backoff: true},
	}
}

// Fetcher fetches feeds with a shared parser and concurrency cap.
type Fetcher struct {
	parser *gofeed.Parser
	opts   Options
}

func New(opts Options) *Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultOptions().Timeout
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultOptions().Concurrency
	}

	parser := gofeed.NewParser()
	parser.UserAgent = "newsbrief/1.0 (+rss reader)"

	return &Fetcher{parser: parser, opts: opts}
}

// FetchAll retrieves all enabled sources concurrently. Failed sources are
// logged and omitted from the result; order is not guaranteed.
func (f *Fetcher) FetchAll(ctx context.Context, srcs []model.Source) []Payload {
	enabled := make([]model.Source, 0, len(srcs))
	for _, s := range srcs {
		if s.Enabled {
			enabled = append(enabled, s)
		}
	}

	results := make(chan Payload, len(enabled))
	sem := make(chan struct{}, f.opts.Concurrency)

	var wg sync.WaitGroup
	for _, src := range enabled {
		wg.Add(1)
		go func(src model.Source) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			payload, err := f.fetchOne(ctx, src)
			if err != nil {
				logger.Warn("feed fetch failed", "source", src.ID, "url", src.FeedURL, "error", err)
				return
			}
			results <- payload
		}(src)
	}

	wg.Wait()
	close(results)

	payloads := make([]Payload, 0, len(enabled))
	total := 0
	for p := range results {
		payloads = append(payloads, p)
		total += len(p.Items)
	}

	logger.Info("feeds fetched", "ok", len(payloads), "total", len(enabled), "items", total)
	return payloads
}

// fetchOne retrieves a single source with its own timeout and retry budget.
func (f *Fetcher) fetchOne(ctx context.Context, src model.Source) (Payload, error) {
	var feed *gofeed.Feed

	err := retry.Do(ctx, f.opts.Retry, func() error {
		fetchCtx, cancel := context.WithTimeout(ctx, f.opts.Timeout)
		defer cancel()

		var err error
		feed, err = f.parser.ParseURLWithContext(src.FeedURL, fetchCtx)
		return err
	})
	if err != nil {
		return Payload{}, err
	}

	title := feed.Title
	if title == "" {
		title = src.Name
	}

	return Payload{
		SourceID:   src.ID,
		SourceName: src.Name,
		FeedTitle:  title,
		Items:      feed.Items,
		FetchedAt:  time.Now().UnixMilli(),
	}, nil
}
