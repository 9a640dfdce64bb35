package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/brandpulseai/brandpulse/pkg/types"
)

// extractJSON pulls the first JSON object out of a completion. Models
// occasionally wrap the payload in markdown fences or add a leading
// sentence despite the schema instruction.
func extractJSON(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON object in completion: %q", truncate(raw, 120))
	}
	return raw[start : end+1], nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// decodeAnalysis parses a classifier completion. A payload that does not
// match the schema is an error; the ingestion pipeline turns it into the
// failure sentinel.
func decodeAnalysis(raw string) (*types.AnalysisResponse, error) {
	jsonText, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var resp types.AnalysisResponse
	if err := json.Unmarshal([]byte(jsonText), &resp); err != nil {
		return nil, fmt.Errorf("failed to decode analysis response: %w", err)
	}
	if len(resp.Topics) == 0 {
		return nil, fmt.Errorf("analysis response has no topics")
	}
	return &resp, nil
}

// decodeSynthetic parses a feedback-generator completion.
func decodeSynthetic(raw string) (*types.SyntheticFeedback, error) {
	jsonText, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var resp types.SyntheticFeedback
	if err := json.Unmarshal([]byte(jsonText), &resp); err != nil {
		return nil, fmt.Errorf("failed to decode synthetic feedback: %w", err)
	}
	if strings.TrimSpace(resp.Text) == "" {
		return nil, fmt.Errorf("synthetic feedback has empty text")
	}
	return &resp, nil
}

// decodeSummary parses a summarizer completion.
func decodeSummary(raw string) (*types.SummaryResponse, error) {
	jsonText, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var resp types.SummaryResponse
	if err := json.Unmarshal([]byte(jsonText), &resp); err != nil {
		return nil, fmt.Errorf("failed to decode summary response: %w", err)
	}
	if strings.TrimSpace(resp.Overview) == "" {
		return nil, fmt.Errorf("summary response has empty overview")
	}
	return &resp, nil
}
