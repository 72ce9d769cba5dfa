package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"newsbrief/internal/model"
)

func TestArticleDomainFromKeywords(t *testing.T) {
	a := model.ArticleRecord{
		Title:   "Parliament passes sweeping election legislation",
		Summary: "Lawmakers voted after weeks of debate.",
	}

	c := Article(&a)
	assert.Equal(t, "politics", c.Domain)
	assert.Greater(t, c.DomainConfidence, 0)
}

func TestArticleRegisterAlert(t *testing.T) {
	a := model.ArticleRecord{
		Title:   "Breaking: urgent evacuation ordered near plant",
		Summary: "Authorities called the situation developing.",
	}

	c := Article(&a)
	assert.Equal(t, "alert", c.Register)
	assert.Greater(t, c.RegisterConfidence, 0)
}

func TestArticleNoSignalFallbacks(t *testing.T) {
	a := model.ArticleRecord{
		Title:   "Colorful kites fill skies",
		Summary: "Residents enjoyed light winds.",
	}

	c := Article(&a)
	assert.Equal(t, "", c.Domain)
	assert.Equal(t, 0, c.DomainConfidence)
	assert.Equal(t, DefaultRegister, c.Register)
}

func TestArticleCategoryPrior(t *testing.T) {
	a := model.ArticleRecord{
		Title:      "Findings published this morning",
		Summary:    "Details inside.",
		Categories: []string{"Science"},
	}

	c := Article(&a)
	assert.Equal(t, "science", c.Domain)
}

func TestArticleSourceBias(t *testing.T) {
	a := model.ArticleRecord{
		SourceID: "ars-technica",
		Title:    "Something happened this morning",
		Summary:  "Details inside.",
	}

	c := Article(&a)
	assert.Equal(t, "tech", c.Domain)
}

func TestArticleDeterministic(t *testing.T) {
	a := model.ArticleRecord{
		Title:   "Military ceasefire talks resume as inflation bites",
		Summary: "Negotiators met again while markets watched.",
	}

	first := Article(&a)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Article(&a))
	}
}

func TestDetectCountry(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		summary string
		want    string
	}{
		{"title match doubled", "France prepares for vote", "", "FR"},
		{"summary only", "Vote preparations continue", "Officials in France and especially Paris are ready.", "FR"},
		{"below noise floor", "Vote preparations continue", "", ""},
		{"strong ukraine signal", "Zelensky visits Kyiv frontline", "", "UA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCountry(tt.title, tt.summary))
		})
	}
}
