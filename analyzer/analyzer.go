// Package analyzer infers meeting facts (title, location, topics, priority,
// engagement, quotes, agenda, participants) from an arbitrary web page using
// heuristic text analysis. It never returns a bare error: every invocation
// yields a complete AnalysisResult, with failures reported via the Error
// field.
package analyzer

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/Ranjith1717-CPU/Civicscoop/config"
)

// Analyzer holds a reusable HTTP session. Instances carry no mutable
// analysis state, so a single Analyzer is safe for concurrent use.
type Analyzer struct {
	client *http.Client
}

// Options carries per-request overrides.
type Options struct {
	// CustomTitle, when set, replaces the extracted title unconditionally.
	CustomTitle string
	// Notes is carried verbatim into the result metadata.
	Notes string
}

func New() *Analyzer {
	return &Analyzer{
		client: &http.Client{Timeout: FetchTimeout},
	}
}

// Analyze fetches a URL and runs the full extraction pipeline. A fetch
// failure produces an error result prefixed "Failed to fetch content:";
// any later failure produces one prefixed "Analysis failed:".
func (a *Analyzer) Analyze(ctx context.Context, url string, opts Options) *AnalysisResult {
	config.Logger.Infof("starting analysis of URL: %s", url)

	markup, err := a.fetch(ctx, url)
	if err != nil {
		config.Logger.Errorf("fetch error for %s: %v", url, err)
		return FetchFailureResult(url, err)
	}

	return a.AnalyzeMarkup(url, markup, opts)
}

// FetchMarkup downloads raw markup without running analysis, for callers
// that need the markup itself (preview extraction, worker pipeline).
func (a *Analyzer) FetchMarkup(ctx context.Context, url string) (string, error) {
	return a.fetch(ctx, url)
}

// FetchFailureResult builds the structured record recorded when content
// could not be retrieved at all.
func FetchFailureResult(url string, err error) *AnalysisResult {
	return errorResult(fmt.Sprintf("Failed to fetch content: %v", err), url)
}

// AnalyzeMarkup runs the extraction pipeline over already-retrieved markup,
// for callers that fetch through another channel (e.g. a rendering browser).
func (a *Analyzer) AnalyzeMarkup(url, markup string, opts Options) (result *AnalysisResult) {
	// The CRUD layer has no error-handling path of its own; nothing may
	// escape this boundary.
	defer func() {
		if r := recover(); r != nil {
			config.Logger.Errorf("analysis error for %s: %v", url, r)
			result = errorResult(fmt.Sprintf("Analysis failed: %v", r), url)
		}
	}()

	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		config.Logger.Errorf("analysis error for %s: %v", url, err)
		return errorResult(fmt.Sprintf("Analysis failed: %v", err), url)
	}

	content := normalizeDocument(doc)

	title := opts.CustomTitle
	if title == "" {
		title = extractTitle(doc)
	}

	result = &AnalysisResult{
		Title:              title,
		Location:           extractLocation(content, url),
		Date:               extractDate(content),
		Topics:             extractTopics(content),
		Priority:           classifyPriority(content),
		EngagementEstimate: estimateEngagement(content, url),
		KeyQuotes:          extractQuotes(content),
		Summary:            generateSummary(content),
		AgendaItems:        extractAgendaItems(content),
		Participants:       extractParticipants(content),
		AIAccuracy:         calculateAccuracyScore(content),
		AnalysisMetadata: Metadata{
			AnalyzedAt:    time.Now().UTC(),
			ContentLength: len(content),
			URLAnalyzed:   url,
			Notes:         opts.Notes,
		},
	}

	config.Logger.Infof("analysis completed successfully for: %s", result.Title)
	return result
}
