package report

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/brandpulseai/brandpulse/pkg/feedback"
	"github.com/brandpulseai/brandpulse/pkg/llm"
	"github.com/brandpulseai/brandpulse/pkg/types"
)

// failedSummaryNotice is returned when the summarizer call fails.
const failedSummaryNotice = "Could not generate summary at this time."

// Generator produces on-demand executive summaries over the whole feedback
// collection. Each run snapshots the store, so items ingested mid-generation
// simply miss the report.
type Generator struct {
	provider llm.Provider
	store    *feedback.Store
	profiles *feedback.Profiles

	now func() time.Time
}

// NewGenerator creates a report generator over the given store.
func NewGenerator(provider llm.Provider, store *feedback.Store, profiles *feedback.Profiles) *Generator {
	return &Generator{
		provider: provider,
		store:    store,
		profiles: profiles,
		now:      time.Now,
	}
}

// Generate builds the executive summary. It never returns an error: when the
// summarizer call fails the summary carries a fixed failure notice and empty
// issue/recommendation lists, stamped like any other report.
func (g *Generator) Generate(ctx context.Context) types.ExecutiveSummary {
	items := g.store.All()
	profile := g.profiles.Get()

	resp, err := g.provider.GenerateSummary(ctx, FeedbackLines(items), profile.ContextPrompt())
	if err != nil {
		log.Printf("Summary generation failed: %v", err)
		return types.ExecutiveSummary{
			Overview:        failedSummaryNotice,
			TopIssues:       []string{},
			Recommendations: []string{},
			GeneratedAt:     g.now(),
		}
	}

	return types.ExecutiveSummary{
		Overview:        resp.Overview,
		TopIssues:       resp.TopIssues,
		Recommendations: resp.Recommendations,
		GeneratedAt:     g.now(),
	}
}

// FeedbackLines serializes items for the summarizer prompt, one line per
// item: "- [sentiment] (topic, topic): text".
func FeedbackLines(items []types.FeedbackItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("- [%s] (%s): %s", item.Sentiment, strings.Join(item.Topics, ", "), item.Text))
	}
	return strings.Join(lines, "\n")
}
