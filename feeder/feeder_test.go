package feeder

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const cityFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>City Council Calendar</title>
  <link>https://example.gov/meetings</link>
  <item>
    <title>Regular Council Meeting</title>
    <link>https://example.gov/meetings/2025-01-15</link>
    <pubDate>Wed, 15 Jan 2025 18:30:00 GMT</pubDate>
  </item>
  <item>
    <title>Budget Work Session</title>
    <link>https://example.gov/meetings/2025-01-22</link>
    <pubDate>Wed, 22 Jan 2025 18:30:00 GMT</pubDate>
  </item>
  <item>
    <title>Planning Commission</title>
    <link>https://example.gov/meetings/2025-01-29</link>
  </item>
</channel>
</rss>`

func TestFetchRssFeeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(cityFeed))
	}))
	defer srv.Close()

	items, err := FetchRssFeeds(srv.URL, 0)

	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, "Regular Council Meeting", items[0].Title)
	assert.Equal(t, "https://example.gov/meetings/2025-01-15", items[0].Link)
	assert.False(t, items[0].PublishedAt.IsZero())
	// item without pubDate keeps the zero time
	assert.True(t, items[2].PublishedAt.IsZero())
}

func TestFetchRssFeedsLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(cityFeed))
	}))
	defer srv.Close()

	items, err := FetchRssFeeds(srv.URL, 2)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestFetchRssFeedsBadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := FetchRssFeeds(url, 0)

	assert.Error(t, err)
}
