package analyzer

import "time"

// Priority buckets assigned by the classifier.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

// AnalysisResult is the complete outcome of analyzing one meeting URL.
// It is constructed once and never mutated; failures are reported through
// the Error field instead of a returned error so callers always receive a
// well-formed record.
type AnalysisResult struct {
	Title              string        `bson:"title" json:"title"`
	Location           string        `bson:"location" json:"location"`
	Date               string        `bson:"date" json:"date"`
	Topics             []string      `bson:"topics" json:"topics"`
	Priority           string        `bson:"priority" json:"priority"`
	EngagementEstimate string        `bson:"engagement_estimate" json:"engagement_estimate"`
	KeyQuotes          []Quote       `bson:"key_quotes" json:"key_quotes"`
	Summary            string        `bson:"summary" json:"summary"`
	AgendaItems        []AgendaItem  `bson:"agenda_items" json:"agenda_items"`
	Participants       []Participant `bson:"participants" json:"participants"`
	AIAccuracy         float64       `bson:"ai_accuracy" json:"ai_accuracy"`
	AnalysisMetadata   Metadata      `bson:"analysis_metadata" json:"analysis_metadata"`
	Error              string        `bson:"error,omitempty" json:"error,omitempty"`
}

// Quote is a sentence judged impactful enough to surface on the dashboard.
// Confidence is a heuristic score in (0, 98], not a calibrated probability.
type Quote struct {
	Text       string  `bson:"text" json:"text"`
	Speaker    string  `bson:"speaker" json:"speaker"`
	Confidence float64 `bson:"confidence" json:"confidence"`
	Timestamp  string  `bson:"timestamp" json:"timestamp"`
	Context    string  `bson:"context" json:"context"`
}

type AgendaItem struct {
	Number      string `bson:"number" json:"number"`
	Description string `bson:"description" json:"description"`
	Status      string `bson:"status" json:"status"`
}

type Participant struct {
	Name    string `bson:"name" json:"name"`
	Role    string `bson:"role" json:"role"`
	Present bool   `bson:"present" json:"present"`
}

type Metadata struct {
	AnalyzedAt    time.Time `bson:"analyzed_at" json:"analyzed_at"`
	ContentLength int       `bson:"content_length" json:"content_length"`
	URLAnalyzed   string    `bson:"url_analyzed" json:"url_analyzed"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	ErrorOccurred bool      `bson:"error_occurred,omitempty" json:"error_occurred,omitempty"`
}

const fallbackDateFormat = "January 02, 2006"

// errorResult builds the standardized failure record. Every field holds a
// usable default so the CRUD layer can persist and render it unchanged.
func errorResult(message, url string) *AnalysisResult {
	now := time.Now()
	return &AnalysisResult{
		Title:              "Analysis Failed",
		Location:           "Unknown",
		Date:               now.Format(fallbackDateFormat),
		Topics:             []string{"General"},
		Priority:           PriorityLow,
		EngagementEstimate: "0%",
		KeyQuotes:          []Quote{},
		Summary:            "Failed to analyze content: " + message,
		AgendaItems:        []AgendaItem{},
		Participants:       []Participant{},
		AIAccuracy:         0.0,
		Error:              message,
		AnalysisMetadata: Metadata{
			AnalyzedAt:    now.UTC(),
			URLAnalyzed:   url,
			ErrorOccurred: true,
		},
	}
}
