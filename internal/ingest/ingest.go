package ingest

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brandpulseai/brandpulse/pkg/feedback"
	"github.com/brandpulseai/brandpulse/pkg/llm"
	"github.com/brandpulseai/brandpulse/pkg/types"
)

// failedAnalysisNotice is attached to items whose classification call failed.
// The text is preserved so nothing submitted is ever lost.
const failedAnalysisNotice = "Analysis failed. Please try again."

// Pipeline scores raw feedback texts through the configured LLM provider and
// appends the result to the store. Classification failures never surface to
// the caller: the item is stored with neutral sentinel fields instead.
type Pipeline struct {
	provider llm.Provider
	store    *feedback.Store

	// Injectable for tests.
	now   func() time.Time
	newID func() string
}

// NewPipeline creates an ingestion pipeline backed by the given provider and store.
func NewPipeline(provider llm.Provider, store *feedback.Store) *Pipeline {
	return &Pipeline{
		provider: provider,
		store:    store,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Ingest classifies one feedback text and appends it to the store. The
// returned item is the stored record, sentinel-filled when analysis failed.
func (p *Pipeline) Ingest(ctx context.Context, text, source string, profile types.CompanyProfile) types.FeedbackItem {
	item := types.FeedbackItem{
		ID:     p.newID(),
		Source: source,
		Text:   text,
		Date:   p.now().Format("2006-01-02"),
	}

	analysis, err := p.provider.AnalyzeFeedback(ctx, text, profile.ContextPrompt())
	if err != nil {
		log.Printf("Feedback analysis failed, storing with sentinel fields: %v", err)
		item.Sentiment = types.SentimentNeutral
		item.Emotion = "Unknown"
		item.Intensity = 0
		item.Topics = []string{"Error"}
		item.ActionableInsight = failedAnalysisNotice
		p.store.Append(item)
		return item
	}

	item.Sentiment = types.ParseSentiment(analysis.Sentiment)
	item.Emotion = strings.TrimSpace(analysis.Emotion)
	item.Intensity = clampIntensity(analysis.Intensity)
	item.Topics = analysis.Topics
	item.ActionableInsight = strings.TrimSpace(analysis.ActionableInsight)

	p.store.Append(item)
	return item
}

// clampIntensity bounds a provider-reported intensity to the 0-10 scale.
func clampIntensity(n int) int {
	if n < 0 {
		return 0
	}
	if n > 10 {
		return 10
	}
	return n
}
