// Package model holds the record types that flow through the brief pipeline.
package model

// Source is one configured feed. The pipeline only reads enabled sources;
// editing the source list happens outside a pipeline run.
type Source struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	FeedURL  string `yaml:"feedUrl" json:"feedUrl"`
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Country  string `yaml:"country" json:"country"`
	Category string `yaml:"category" json:"category"`
	Language string `yaml:"language" json:"language"`
}

// ArticleRecord is the canonical unit flowing through the pipeline.
// Each stage attaches its own fields and leaves earlier ones alone.
// ID is computed once at parse time and never recomputed; it is the stable
// identity used for dedup merging and seen-tracking across runs.
type ArticleRecord struct {
	ID          string   `json:"id"`
	SourceID    string   `json:"sourceId"`
	SourceName  string   `json:"sourceName"`
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Content     string   `json:"content"`
	Link        string   `json:"link"`
	PublishedAt int64    `json:"publishedAt"` // epoch ms, fetch time if unparsable
	FetchedAt   int64    `json:"fetchedAt"`
	Categories  []string `json:"categories"`

	// Normalizer
	Tokens      []string `json:"-"`
	ReadTimeMin float64  `json:"readTimeMin"`

	// Classifier
	Domain             string `json:"domain,omitempty"`
	Register           string `json:"register,omitempty"`
	CountryCode        string `json:"countryCode,omitempty"`
	DomainConfidence   int    `json:"domainConfidence"`
	RegisterConfidence int    `json:"registerConfidence"`

	// Scorer
	EmotionalScore float64 `json:"emotionalScore"`
	ArousalScore   float64 `json:"arousalScore"`

	// Filter
	ContentFlags []string `json:"contentFlags,omitempty"`

	// External read-state
	Seen bool `json:"seen"`
}

// Text returns the raw text the article carries, longest form first.
// Read-time estimation and scoring both want "the text the reader would read".
func (a *ArticleRecord) Text() string {
	if a.Content != "" {
		return a.Content
	}
	if a.Summary != "" {
		return a.Summary
	}
	return a.Title
}
