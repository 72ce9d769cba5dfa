package budget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"newsbrief/internal/model"
)

func candidate(id string, publishedAt int64, readTime, emotional, arousal float64) model.ArticleRecord {
	return model.ArticleRecord{
		ID:             id,
		Title:          id,
		PublishedAt:    publishedAt,
		ReadTimeMin:    readTime,
		EmotionalScore: emotional,
		ArousalScore:   arousal,
	}
}

func opts() Options {
	return Options{
		MaxReadTimeMin: 15,
		MaxArousalLoad: 0.6,
		Mode:           "overview",
		Now:            time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC),
	}
}

func selectedIDs(b model.DailyBrief) []string {
	ids := make([]string, 0, len(b.Articles))
	for _, a := range b.Articles {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestSelectNewestFirstUnderReadTime(t *testing.T) {
	brief := Select([]model.ArticleRecord{
		candidate("oldest", 1000, 5, 0, 0),
		candidate("newest", 3000, 5, 0, 0),
		candidate("middle", 2000, 5, 0, 0),
	}, opts())

	assert.Equal(t, []string{"newest", "middle", "oldest"}, selectedIDs(brief))
	assert.Equal(t, 15.0, brief.TotalReadTime)
	assert.Equal(t, 3, brief.ArticleCount)
	assert.Equal(t, 3, brief.CandidateCount)
}

func TestSelectReadTimeBound(t *testing.T) {
	brief := Select([]model.ArticleRecord{
		candidate("big", 3000, 12, 0, 0),
		candidate("too-big", 2000, 4, 0, 0),
		candidate("fits", 1000, 3, 0, 0),
	}, opts())

	// 12 + 4 would exceed 15, but the smaller later article still fits.
	assert.Equal(t, []string{"big", "fits"}, selectedIDs(brief))
	assert.LessOrEqual(t, brief.TotalReadTime, 15.0)
}

func TestSelectSkipsSeen(t *testing.T) {
	seen := candidate("seen", 3000, 5, 0, 0)
	seen.Seen = true

	brief := Select([]model.ArticleRecord{
		seen,
		candidate("fresh", 2000, 5, 0, 0),
	}, opts())

	assert.Equal(t, []string{"fresh"}, selectedIDs(brief))
	assert.Equal(t, 1, brief.CandidateCount)
}

func TestSelectSingleHighArousal(t *testing.T) {
	brief := Select([]model.ArticleRecord{
		candidate("hot1", 3000, 2, 0, 0.9),
		candidate("hot2", 2000, 2, 0, 0.8),
		candidate("calm", 1000, 2, 0, 0.2),
	}, opts())

	assert.Equal(t, []string{"hot1", "calm"}, selectedIDs(brief))
}

func TestSelectFirstPickSkipsLoadCheck(t *testing.T) {
	o := opts()
	o.MaxArousalLoad = 0.5

	brief := Select([]model.ArticleRecord{
		candidate("heavy", 3000, 2, -0.9, 0.1),
		candidate("heavy2", 2000, 2, -0.9, 0.1),
		candidate("light", 1000, 2, 0.0, 0.1),
	}, o)

	// The first admission ignores the load cap; later ones must keep the
	// projected mean under it.
	assert.Equal(t, []string{"heavy", "light"}, selectedIDs(brief))
	assert.InDelta(t, 0.45, brief.EmotionalLoad, 1e-9)
}

func TestSelectLoadUsesAbsoluteValues(t *testing.T) {
	o := opts()
	o.MaxArousalLoad = 0.5

	brief := Select([]model.ArticleRecord{
		candidate("down", 3000, 2, -0.6, 0.1),
		candidate("up", 2000, 2, 0.6, 0.1),
	}, o)

	// +0.6 and -0.6 do not cancel out; projected mean 0.6 > 0.5.
	assert.Equal(t, []string{"down"}, selectedIDs(brief))
}

func TestSelectEmptyInput(t *testing.T) {
	brief := Select(nil, opts())

	assert.Empty(t, brief.Articles)
	assert.Equal(t, 0.0, brief.TotalReadTime)
	assert.Equal(t, 0.0, brief.EmotionalLoad)
	assert.Len(t, brief.ID, 16)
	assert.Equal(t, "overview", brief.Mode)
}

func TestSelectBriefIDDeterministicForSameInstant(t *testing.T) {
	o := opts()
	a := Select(nil, o)
	b := Select(nil, o)

	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, o.Now.UnixMilli(), a.GeneratedAt)
}

func TestSelectUniformReadTimes(t *testing.T) {
	o := opts()
	o.MaxReadTimeMin = 10

	var articles []model.ArticleRecord
	for i := 0; i < 10; i++ {
		articles = append(articles, candidate(string(rune('a'+i)), int64(1000-i), 3, 0, 0))
	}

	brief := Select(articles, o)

	// Three articles fill 9 of the 10 minutes; a fourth would overflow.
	assert.Equal(t, 3, brief.ArticleCount)
	assert.Equal(t, 9.0, brief.TotalReadTime)
}

func TestSelectBriefIDTimezoneIndependent(t *testing.T) {
	instant := time.Date(2026, 8, 28, 23, 30, 0, 0, time.UTC)

	o1 := opts()
	o1.Now = instant
	o2 := opts()
	// Same instant, viewed from a zone where the local date has rolled over.
	o2.Now = instant.In(time.FixedZone("UTC+10", 10*60*60))

	a := Select(nil, o1)
	b := Select(nil, o2)

	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, a.GeneratedAt, b.GeneratedAt)
}
