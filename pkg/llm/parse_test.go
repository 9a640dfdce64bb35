package llm

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/brandpulseai/brandpulse/pkg/types"
)

func TestDecodeAnalysis(t *testing.T) {
	raw := `{"sentiment":"Negative","emotion":"Frustrated","intensity":8,"topics":["Shipping","Support"],"actionableInsight":"Audit carrier SLAs."}`

	got, err := decodeAnalysis(raw)
	if err != nil {
		t.Fatalf("decodeAnalysis: %v", err)
	}

	want := &types.AnalysisResponse{
		Sentiment:         "Negative",
		Emotion:           "Frustrated",
		Intensity:         8,
		Topics:            []string{"Shipping", "Support"},
		ActionableInsight: "Audit carrier SLAs.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("analysis mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeAnalysisStripsMarkdownFences(t *testing.T) {
	raw := "Here is the analysis:\n```json\n{\"sentiment\":\"Positive\",\"emotion\":\"Joy\",\"intensity\":6,\"topics\":[\"Pricing\"],\"actionableInsight\":\"Keep it up.\"}\n```"

	got, err := decodeAnalysis(raw)
	if err != nil {
		t.Fatalf("decodeAnalysis: %v", err)
	}
	if got.Sentiment != "Positive" || len(got.Topics) != 1 {
		t.Errorf("unexpected decode result: %+v", got)
	}
}

func TestDecodeAnalysisRejectsMalformedPayloads(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"no json", "the model refused to answer"},
		{"broken json", `{"sentiment": "Positive", "topics": [`},
		{"empty topics", `{"sentiment":"Positive","emotion":"Joy","intensity":5,"topics":[],"actionableInsight":"x"}`},
		{"empty string", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := decodeAnalysis(tc.raw); err == nil {
				t.Errorf("expected error for %q", tc.raw)
			}
		})
	}
}

func TestDecodeSynthetic(t *testing.T) {
	got, err := decodeSynthetic(`{"text":"Checkout keeps timing out on mobile.","source":"Twitter"}`)
	if err != nil {
		t.Fatalf("decodeSynthetic: %v", err)
	}
	if got.Text == "" || got.Source != "Twitter" {
		t.Errorf("unexpected result: %+v", got)
	}

	if _, err := decodeSynthetic(`{"text":"   ","source":"Twitter"}`); err == nil {
		t.Error("expected error for blank text")
	}
	if _, err := decodeSynthetic("no json here"); err == nil {
		t.Error("expected error for non-JSON payload")
	}
}

func TestDecodeSummary(t *testing.T) {
	raw := `{"overview":"Sentiment is trending down.","topIssues":["Shipping delays","Refund handling"],"recommendations":["Fix carrier SLAs"]}`

	got, err := decodeSummary(raw)
	if err != nil {
		t.Fatalf("decodeSummary: %v", err)
	}

	want := &types.SummaryResponse{
		Overview:        "Sentiment is trending down.",
		TopIssues:       []string{"Shipping delays", "Refund handling"},
		Recommendations: []string{"Fix carrier SLAs"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}

	if _, err := decodeSummary(`{"overview":"","topIssues":[],"recommendations":[]}`); err == nil {
		t.Error("expected error for empty overview")
	}
}

func TestExtractJSON(t *testing.T) {
	got, err := extractJSON(`prefix {"a":1} suffix`)
	if err != nil {
		t.Fatalf("extractJSON: %v", err)
	}
	if got != `{"a":1}` {
		t.Errorf("extractJSON = %q", got)
	}

	if _, err := extractJSON("}{"); err == nil {
		t.Error("expected error for reversed braces")
	}
}
