package types

import (
	"fmt"
	"time"
)

// Sentiment is the closed classification set for a feedback text.
// Anything a provider returns outside this set is coerced to Neutral.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

// ParseSentiment maps a raw provider label onto the closed sentiment set.
// Unrecognized labels fall back to Neutral rather than failing ingestion.
func ParseSentiment(raw string) Sentiment {
	switch raw {
	case string(SentimentPositive):
		return SentimentPositive
	case string(SentimentNegative):
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// Known feedback origins. SourceLiveFeed tags records synthesized by the
// live poller.
const (
	SourceTwitter     = "Twitter"
	SourceReview      = "Review"
	SourceEmail       = "Email"
	SourceSupport     = "Support"
	SourceDirectInput = "Direct Input"
	SourceLiveFeed    = "Live Feed"
)

// ParseSource normalizes a synthesized source tag. Unknown tags map to
// Live Feed so the activity feed never shows a free-form origin.
func ParseSource(raw string) string {
	switch raw {
	case SourceTwitter, SourceReview, SourceEmail, SourceSupport, SourceDirectInput, SourceLiveFeed:
		return raw
	default:
		return SourceLiveFeed
	}
}

// FeedbackItem is a single scored piece of feedback. Items are immutable
// once appended to the store.
type FeedbackItem struct {
	ID                string    `json:"id"`
	Source            string    `json:"source"`
	Text              string    `json:"text"`
	Date              string    `json:"date"` // YYYY-MM-DD, stamped at ingestion
	Sentiment         Sentiment `json:"sentiment"`
	Emotion           string    `json:"emotion"`
	Intensity         int       `json:"intensity"` // 0-10, 0 reserved for failed analysis
	Topics            []string  `json:"topics"`
	ActionableInsight string    `json:"actionableInsight,omitempty"`
}

// CompanyProfile tailors provider prompts to the brand under analysis.
// An empty Name disables profile-aware prompting.
type CompanyProfile struct {
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Description string `json:"description"`
}

// ContextPrompt renders the profile as a prompt fragment, or "" when no
// company name is configured.
func (p CompanyProfile) ContextPrompt() string {
	if p.Name == "" {
		return ""
	}
	ctx := fmt.Sprintf("\nContext: You are analyzing feedback for %q", p.Name)
	if p.Industry != "" {
		ctx += fmt.Sprintf(", a company in the %s industry", p.Industry)
	}
	ctx += "."
	if p.Description != "" {
		ctx += fmt.Sprintf("\nCompany Description: %s", p.Description)
	}
	return ctx
}

// AnalysisResponse is the schema the classifier call must return.
type AnalysisResponse struct {
	Sentiment         string   `json:"sentiment"`
	Emotion           string   `json:"emotion"`
	Intensity         int      `json:"intensity"`
	Topics            []string `json:"topics"`
	ActionableInsight string   `json:"actionableInsight"`
}

// SyntheticFeedback is the schema the feedback generator call must return.
type SyntheticFeedback struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// SummaryResponse is the schema the summarizer call must return.
// GeneratedAt is stamped locally, not by the service.
type SummaryResponse struct {
	Overview        string   `json:"overview"`
	TopIssues       []string `json:"topIssues"`
	Recommendations []string `json:"recommendations"`
}

// ExecutiveSummary is an ephemeral report over the whole collection,
// superseded wholesale by each regeneration.
type ExecutiveSummary struct {
	Overview        string    `json:"overview"`
	TopIssues       []string  `json:"topIssues"`
	Recommendations []string  `json:"recommendations"`
	GeneratedAt     time.Time `json:"generatedAt"`
}
