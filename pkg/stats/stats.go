// Package stats derives dashboard aggregates from the feedback collection.
// Every function is pure and recomputes from the full slice on each call;
// at dashboard scales (hundreds to low thousands of items) a cache is not
// worth the invalidation surface.
package stats

import (
	"math"
	"sort"

	"github.com/brandpulseai/brandpulse/pkg/types"
)

// criticalIntensity is the strict lower bound above which a negative item
// counts as a critical issue. Fixed policy, not configurable.
const criticalIntensity = 7

// topTopicsLimit caps the trending-topics ranking.
const topTopicsLimit = 5

// Counts tallies items by sentiment.
type Counts struct {
	Total    int `json:"total"`
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// TopicCount is one entry of the trending-topics ranking.
type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// Count tallies the collection by sentiment.
func Count(items []types.FeedbackItem) Counts {
	c := Counts{Total: len(items)}
	for _, item := range items {
		switch item.Sentiment {
		case types.SentimentPositive:
			c.Positive++
		case types.SentimentNegative:
			c.Negative++
		default:
			c.Neutral++
		}
	}
	return c
}

// NetSentimentScore maps the collection to a -100..+100 scale:
// round(((positive - negative) / total) * 100). Zero for an empty collection.
func NetSentimentScore(items []types.FeedbackItem) int {
	c := Count(items)
	if c.Total == 0 {
		return 0
	}
	return int(math.Round(float64(c.Positive-c.Negative) / float64(c.Total) * 100))
}

// CriticalIssueCount counts negative items with intensity strictly above 7.
func CriticalIssueCount(items []types.FeedbackItem) int {
	n := 0
	for _, item := range items {
		if item.Sentiment == types.SentimentNegative && item.Intensity > criticalIntensity {
			n++
		}
	}
	return n
}

// TopicFrequency flattens all topic tags, tallies exact (case-sensitive)
// matches and returns the top 5 by count. Ties keep first-encountered order.
func TopicFrequency(items []types.FeedbackItem) []TopicCount {
	counts := make(map[string]int)
	var order []string
	for _, item := range items {
		for _, topic := range item.Topics {
			if _, seen := counts[topic]; !seen {
				order = append(order, topic)
			}
			counts[topic]++
		}
	}

	ranked := make([]TopicCount, 0, len(order))
	for _, topic := range order {
		ranked = append(ranked, TopicCount{Topic: topic, Count: counts[topic]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > topTopicsLimit {
		ranked = ranked[:topTopicsLimit]
	}
	return ranked
}
