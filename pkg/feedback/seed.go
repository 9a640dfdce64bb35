package feedback

import "github.com/brandpulseai/brandpulse/pkg/types"

// SampleItems returns a small pre-scored dataset so a fresh dashboard has
// something to render before any real feedback arrives.
func SampleItems() []types.FeedbackItem {
	return []types.FeedbackItem{
		{
			ID:                "seed-1",
			Source:            types.SourceReview,
			Text:              "The new UI is sleek, but I can't find the logout button anymore. It's really frustrating.",
			Date:              "2023-10-25",
			Sentiment:         types.SentimentNegative,
			Emotion:           "Frustrated",
			Intensity:         7,
			Topics:            []string{"UI/UX", "Navigation"},
			ActionableInsight: "Improve visibility of account management controls.",
		},
		{
			ID:                "seed-2",
			Source:            types.SourceTwitter,
			Text:              "Absolutely loving the new dark mode! Best update in years.",
			Date:              "2023-10-26",
			Sentiment:         types.SentimentPositive,
			Emotion:           "Excited",
			Intensity:         9,
			Topics:            []string{"Dark Mode", "Design"},
			ActionableInsight: "Highlight dark mode in marketing materials.",
		},
		{
			ID:                "seed-3",
			Source:            types.SourceSupport,
			Text:              "My package was delayed by 3 days. The product is fine, but shipping needs work.",
			Date:              "2023-10-24",
			Sentiment:         types.SentimentNeutral,
			Emotion:           "Disappointed",
			Intensity:         5,
			Topics:            []string{"Shipping", "Logistics"},
			ActionableInsight: "Investigate carrier delays in this region.",
		},
		{
			ID:                "seed-4",
			Source:            types.SourceEmail,
			Text:              "Customer service agent was very rude when I asked for a refund.",
			Date:              "2023-10-23",
			Sentiment:         types.SentimentNegative,
			Emotion:           "Angry",
			Intensity:         9,
			Topics:            []string{"Customer Service", "Refunds"},
			ActionableInsight: "Review support ticket #4421 and retrain staff.",
		},
		{
			ID:                "seed-5",
			Source:            types.SourceReview,
			Text:              "Great value for money. Does exactly what it says on the box.",
			Date:              "2023-10-26",
			Sentiment:         types.SentimentPositive,
			Emotion:           "Satisfied",
			Intensity:         6,
			Topics:            []string{"Pricing", "Value"},
			ActionableInsight: "Maintain current pricing strategy.",
		},
	}
}
