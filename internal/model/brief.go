package model

// TermCount is a diagnostic shared-term annotation on a story group.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// EntityCount is a capitalized-phrase entity annotation on a story group.
type EntityCount struct {
	Entity string `json:"entity"`
	Count  int    `json:"count"`
}

// PublishedRange spans the earliest and latest member publish times.
type PublishedRange struct {
	Earliest int64 `json:"earliest"`
	Latest   int64 `json:"latest"`
}

// GroupSource is one member article reduced to its per-source view.
type GroupSource struct {
	SourceID       string  `json:"sourceId"`
	SourceName     string  `json:"sourceName"`
	ArticleID      string  `json:"articleId"`
	Title          string  `json:"title"`
	Link           string  `json:"link"`
	Summary        string  `json:"summary"`
	Content        string  `json:"content"`
	PublishedAt    int64   `json:"publishedAt"`
	ReadTimeMin    float64 `json:"readTimeMin"`
	EmotionalScore float64 `json:"emotionalScore"`
	ArousalScore   float64 `json:"arousalScore"`
}

// StoryGroup is a cluster of distinct articles covering the same event.
// Built only for buckets with at least two members; immutable once built.
// GroupID derives from the sorted member IDs, so the same set of articles
// always yields the same group identity.
type StoryGroup struct {
	GroupID        string         `json:"groupId"`
	Headline       string         `json:"headline"`
	Domain         string         `json:"domain,omitempty"`
	Register       string         `json:"register"`
	CountryCode    string         `json:"countryCode,omitempty"`
	Sources        []GroupSource  `json:"sources"`
	ArticleCount   int            `json:"articleCount"`
	Representative ArticleRecord  `json:"representative"`
	PublishedRange PublishedRange `json:"publishedRange"`
	ReadTimeMin    float64        `json:"readTimeMin"`
	EmotionalScore float64        `json:"emotionalScore"`
	ArousalScore   float64        `json:"arousalScore"`
	SharedTerms    []TermCount    `json:"sharedTerms"`
	SharedEntities []EntityCount  `json:"sharedEntities"`
}

// DailyBrief is one pipeline run's bounded selection. Read-only after
// construction.
type DailyBrief struct {
	ID             string          `json:"id"`
	GeneratedAt    int64           `json:"generatedAt"`
	Articles       []ArticleRecord `json:"articles"`
	TotalReadTime  float64         `json:"totalReadTime"`
	EmotionalLoad  float64         `json:"emotionalLoad"`
	Mode           string          `json:"mode"`
	ArticleCount   int             `json:"articleCount"`
	CandidateCount int             `json:"candidateCount"`
}
