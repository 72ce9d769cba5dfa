package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "drops stopwords",
			in:   "The quick brown fox jumps over the lazy dog",
			want: []string{"quick", "brown", "fox", "jumps", "lazy", "dog"},
		},
		{
			name: "keeps apostrophes and hyphens inside tokens",
			in:   "Ukraine's long-term recovery plan",
			want: []string{"ukraine's", "long-term", "recovery", "plan"},
		},
		{
			name: "drops single characters",
			in:   "a b c plan",
			want: []string{"plan"},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 3, WordCount("Hello, world! Again"))
	assert.Equal(t, 3, WordCount("version 42 shipped"))
	assert.Equal(t, 0, WordCount("... !!! ---"))
	assert.Equal(t, 0, WordCount(""))
}

func TestReadTimeMin(t *testing.T) {
	// 225 words is exactly one minute.
	text := strings.TrimSpace(strings.Repeat("word ", 225))
	assert.Equal(t, 1.0, ReadTimeMin(text))

	// 100 words: 100/225 = 0.4444, rounded to 0.44.
	text = strings.TrimSpace(strings.Repeat("word ", 100))
	assert.Equal(t, 0.44, ReadTimeMin(text))

	assert.Equal(t, 0.0, ReadTimeMin(""))
}

func TestJaccard(t *testing.T) {
	assert.Equal(t, 1.0, Jaccard([]string{"a", "b"}, []string{"b", "a"}))
	assert.Equal(t, 0.0, Jaccard([]string{"a"}, []string{"b"}))
	assert.Equal(t, 0.5, Jaccard([]string{"a", "b", "c"}, []string{"b", "c", "d"}))
	assert.Equal(t, 0.0, Jaccard(nil, []string{"a"}))
}
