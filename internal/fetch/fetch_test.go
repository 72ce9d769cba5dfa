package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsbrief/internal/model"
	"newsbrief/internal/retry"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://example.com</link>
    <item>
      <title>First headline</title>
      <link>https://example.com/1</link>
      <description>First body.</description>
      <pubDate>Mon, 10 Feb 2026 08:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Second headline</title>
      <link>https://example.com/2</link>
      <description>Second body.</description>
    </item>
  </channel>
</rss>`

func testOptions() Options {
	return Options{
		Timeout:     2 * time.Second,
		Concurrency: 2,
		Retry:       retry.Config{MaxAttempts: 1, Delay: time.Millisecond},
	}
}

func TestFetchAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	f := New(testOptions())
	payloads := f.FetchAll(context.Background(), []model.Source{
		{ID: "test-feed", Name: "Test Feed", FeedURL: srv.URL, Enabled: true},
	})

	require.Len(t, payloads, 1)
	p := payloads[0]
	assert.Equal(t, "test-feed", p.SourceID)
	assert.Equal(t, "Test Feed", p.FeedTitle)
	assert.Len(t, p.Items, 2)
	assert.Greater(t, p.FetchedAt, int64(0))
}

func TestFetchAllIsolatesFailures(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleRSS))
	}))
	defer good.Close()

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	f := New(testOptions())
	payloads := f.FetchAll(context.Background(), []model.Source{
		{ID: "bad", Name: "Bad", FeedURL: bad.URL, Enabled: true},
		{ID: "good", Name: "Good", FeedURL: good.URL, Enabled: true},
	})

	require.Len(t, payloads, 1)
	assert.Equal(t, "good", payloads[0].SourceID)
}

func TestFetchAllSkipsDisabledSources(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	f := New(testOptions())
	payloads := f.FetchAll(context.Background(), []model.Source{
		{ID: "off", Name: "Off", FeedURL: srv.URL, Enabled: false},
	})

	assert.Empty(t, payloads)
	assert.False(t, called)
}
