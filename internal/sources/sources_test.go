package sources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sources.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
sources:
  - id: bbc-world
    name: BBC News - World
    feedUrl: https://feeds.bbci.co.uk/news/world/rss.xml
    enabled: true
    country: uk
    category: news
    language: en
  - id: hacker-news
    name: Hacker News
    feedUrl: https://news.ycombinator.com/rss
    enabled: false
`)

	srcs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, srcs, 2)
	assert.Equal(t, "bbc-world", srcs[0].ID)
	assert.Equal(t, "uk", srcs[0].Country)
	assert.True(t, srcs[0].Enabled)
	assert.False(t, srcs[1].Enabled)
}

func TestLoadRejectsMissingFields(t *testing.T) {
	path := writeFile(t, `
sources:
  - name: Missing ID
    feedUrl: https://example.com/rss
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnabledAndByID(t *testing.T) {
	path := writeFile(t, `
sources:
  - id: one
    feedUrl: https://example.com/1
    enabled: true
  - id: two
    feedUrl: https://example.com/2
    enabled: false
`)

	srcs, err := Load(path)
	require.NoError(t, err)

	enabled := Enabled(srcs)
	require.Len(t, enabled, 1)
	assert.Equal(t, "one", enabled[0].ID)

	require.NotNil(t, ByID(srcs, "two"))
	assert.Nil(t, ByID(srcs, "three"))
}
