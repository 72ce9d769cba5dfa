// Package metrics keeps per-run pipeline counters for the monitoring
// endpoint. All access goes through the mutex; the pipeline is the only
// writer during a run.
package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	FeedsFetched       int64
	FeedsFailed        int64
	ArticlesParsed     int64
	ArticlesRejected   int64
	ArticlesFlagged    int64
	DuplicatesRemoved  int64
	StoryGroupsBuilt   int64
	ArticlesSelected   int64
	BriefsGenerated    int64

	// Timings
	LastPipelineTime    time.Duration
	TotalPipelineTime   time.Duration
	AveragePipelineTime time.Duration
	PipelineRuns        int64

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) AddFeedsFetched(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FeedsFetched += int64(n)
}

func (m *Metrics) AddFeedsFailed(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FeedsFailed += int64(n)
}

func (m *Metrics) AddArticlesParsed(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesParsed += int64(n)
}

func (m *Metrics) AddArticlesRejected(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesRejected += int64(n)
}

func (m *Metrics) AddArticlesFlagged(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesFlagged += int64(n)
}

func (m *Metrics) AddDuplicatesRemoved(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DuplicatesRemoved += int64(n)
}

func (m *Metrics) AddStoryGroups(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StoryGroupsBuilt += int64(n)
}

func (m *Metrics) AddArticlesSelected(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesSelected += int64(n)
}

func (m *Metrics) IncrementBriefs() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BriefsGenerated++
}

func (m *Metrics) RecordPipelineTime(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastPipelineTime = duration
	m.TotalPipelineTime += duration
	m.PipelineRuns++

	if m.PipelineRuns > 0 {
		m.AveragePipelineTime = m.TotalPipelineTime / time.Duration(m.PipelineRuns)
	}
}

func (m *Metrics) SetLastRun() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"feeds_fetched":            m.FeedsFetched,
		"feeds_failed":             m.FeedsFailed,
		"articles_parsed":          m.ArticlesParsed,
		"articles_rejected":        m.ArticlesRejected,
		"articles_flagged":         m.ArticlesFlagged,
		"duplicates_removed":       m.DuplicatesRemoved,
		"story_groups_built":       m.StoryGroupsBuilt,
		"articles_selected":        m.ArticlesSelected,
		"briefs_generated":         m.BriefsGenerated,
		"last_pipeline_time_ms":    m.LastPipelineTime.Milliseconds(),
		"average_pipeline_time_ms": m.AveragePipelineTime.Milliseconds(),
		"last_run_time":            m.LastRunTime.Format(time.RFC3339),
		"last_error_time":          m.LastErrorTime.Format(time.RFC3339),
		"last_error":               m.LastError,
		"is_healthy":               m.IsHealthy,
	}
}
