package analyzer_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ranjith1717-CPU/Civicscoop/analyzer"
)

const meetingPage = `<html>
<head><title>City Portal | austin.gov</title></head>
<body>
<header>Site navigation banner</header>
<h1>Austin City Council: Housing Crisis Response Meeting</h1>
<p>The City of Austin council convened on January 15, 2025 at 18:30 to address
the housing shortage. Mayor Johnson announced the city will need important
housing funding, and residents offered public comment on the budget.</p>
<p>Agenda Item 1: Approve emergency shelter funding allocation</p>
<p>Council Member Lee stated the community must see significant progress this
quarter, starting with zoning reform.</p>
<footer>Contact the webmaster</footer>
</body>
</html>`

var engagementRe = regexp.MustCompile(`^\d{1,2}%$`)

func TestAnalyzeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, analyzer.UserAgent, r.Header.Get("User-Agent"))
		w.Write([]byte(meetingPage))
	}))
	defer srv.Close()

	a := analyzer.New()
	res := a.Analyze(context.Background(), srv.URL, analyzer.Options{Notes: "pilot run"})

	assert.Empty(t, res.Error)
	assert.Equal(t, "Austin City Council: Housing Crisis Response Meeting", res.Title)
	assert.Equal(t, "Austin", res.Location)
	assert.Equal(t, "january 15, 2025", res.Date)
	assert.Contains(t, res.Topics, "Housing")

	assert.GreaterOrEqual(t, len(res.Topics), 1)
	assert.LessOrEqual(t, len(res.Topics), 4)
	assert.LessOrEqual(t, len(res.KeyQuotes), 3)
	assert.LessOrEqual(t, len(res.AgendaItems), 10)
	assert.LessOrEqual(t, len(res.Participants), 15)

	assert.Regexp(t, engagementRe, res.EngagementEstimate)
	assert.GreaterOrEqual(t, res.AIAccuracy, 60.0)
	assert.LessOrEqual(t, res.AIAccuracy, 99.0)

	assert.Equal(t, srv.URL, res.AnalysisMetadata.URLAnalyzed)
	assert.Equal(t, "pilot run", res.AnalysisMetadata.Notes)
	assert.Greater(t, res.AnalysisMetadata.ContentLength, 0)
	assert.False(t, res.AnalysisMetadata.ErrorOccurred)
}

func TestAnalyzeExtractsQuoteWithSpeaker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(meetingPage))
	}))
	defer srv.Close()

	res := analyzer.New().Analyze(context.Background(), srv.URL, analyzer.Options{})

	assert.NotEmpty(t, res.KeyQuotes)
	for i, q := range res.KeyQuotes {
		assert.Greater(t, q.Confidence, 0.0)
		assert.LessOrEqual(t, q.Confidence, 98.0)
		if i > 0 {
			assert.GreaterOrEqual(t, res.KeyQuotes[i-1].Confidence, q.Confidence)
		}
	}
	speaker := res.KeyQuotes[0].Speaker
	assert.True(t, strings.Contains(speaker, "Mayor") || strings.Contains(speaker, "Council Member"),
		"unexpected speaker %q", speaker)
}

func TestAnalyzeCustomTitleOverride(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(meetingPage))
	}))
	defer srv.Close()

	res := analyzer.New().Analyze(context.Background(), srv.URL, analyzer.Options{CustomTitle: "Override Title"})

	assert.Equal(t, "Override Title", res.Title)
}

func TestAnalyzeFetchFailureUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // connection refused from here on

	res := analyzer.New().Analyze(context.Background(), url, analyzer.Options{})

	assert.NotEmpty(t, res.Error)
	assert.True(t, strings.HasPrefix(res.Error, "Failed to fetch content:"), "error %q", res.Error)
	assert.Equal(t, 0.0, res.AIAccuracy)
	assert.Equal(t, "0%", res.EngagementEstimate)
	assert.Equal(t, "Analysis Failed", res.Title)
	assert.Equal(t, []string{"General"}, res.Topics)
	assert.Equal(t, "low", res.Priority)
	assert.Empty(t, res.KeyQuotes)
	assert.True(t, res.AnalysisMetadata.ErrorOccurred)
}

func TestAnalyzeFetchFailureHTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	res := analyzer.New().Analyze(context.Background(), srv.URL, analyzer.Options{})

	assert.True(t, strings.HasPrefix(res.Error, "Failed to fetch content:"), "error %q", res.Error)
}

func TestAnalyzeMarkupSkipsFetch(t *testing.T) {
	res := analyzer.New().AnalyzeMarkup("https://example.org/meeting", meetingPage, analyzer.Options{})

	assert.Empty(t, res.Error)
	assert.Equal(t, "Austin City Council: Housing Crisis Response Meeting", res.Title)
	assert.Equal(t, "https://example.org/meeting", res.AnalysisMetadata.URLAnalyzed)
}

func TestNormalizeIdempotentProperty(t *testing.T) {
	once := analyzer.Normalize(meetingPage)

	assert.Equal(t, once, analyzer.Normalize(once))
}
