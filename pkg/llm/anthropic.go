package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/brandpulseai/brandpulse/pkg/types"
)

// AnthropicProvider implements the Provider interface for Anthropic's Claude models
type AnthropicProvider struct {
	apiKey string
	model  string
	client *http.Client
}

// NewAnthropicProvider creates a new Anthropic provider
func NewAnthropicProvider(apiKey, model string) *AnthropicProvider {
	if model == "" {
		model = "claude-3-5-sonnet-20241022" // Default model
	}
	return &AnthropicProvider{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{},
	}
}

// Name returns the provider name
func (p *AnthropicProvider) Name() string {
	return fmt.Sprintf("Anthropic (%s)", p.model)
}

// Anthropic API structures
type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	Messages    []anthropicMessage `json:"messages"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
}

type anthropicContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicResponse struct {
	ID      string                  `json:"id"`
	Type    string                  `json:"type"`
	Role    string                  `json:"role"`
	Content []anthropicContentBlock `json:"content"`
}

// complete sends a single-turn prompt and returns the raw completion text.
func (p *AnthropicProvider) complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	reqBody := anthropicRequest{
		Model: p.model,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.anthropic.com/v1/messages", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call Anthropic API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Anthropic API returned status %d: %s", resp.StatusCode, string(body))
	}

	var anthropicResp anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&anthropicResp); err != nil {
		return "", fmt.Errorf("failed to decode Anthropic response: %w", err)
	}

	if len(anthropicResp.Content) == 0 {
		return "", fmt.Errorf("Anthropic returned no content")
	}

	return anthropicResp.Content[0].Text, nil
}

// AnalyzeFeedback classifies one feedback text
func (p *AnthropicProvider) AnalyzeFeedback(ctx context.Context, text, profileCtx string) (*types.AnalysisResponse, error) {
	raw, err := p.complete(ctx, BuildAnalysisPrompt(text, profileCtx), analysisTemperature, analysisMaxTokens)
	if err != nil {
		return nil, err
	}
	return decodeAnalysis(raw)
}

// SynthesizeFeedback invents one live-feed item
func (p *AnthropicProvider) SynthesizeFeedback(ctx context.Context, profileCtx string) (*types.SyntheticFeedback, error) {
	raw, err := p.complete(ctx, BuildSynthesisPrompt(profileCtx), synthesisTemperature, synthesisMaxTokens)
	if err != nil {
		return nil, err
	}
	return decodeSynthetic(raw)
}

// GenerateSummary produces the executive summary
func (p *AnthropicProvider) GenerateSummary(ctx context.Context, feedbackLines, profileCtx string) (*types.SummaryResponse, error) {
	raw, err := p.complete(ctx, BuildSummaryPrompt(feedbackLines, profileCtx), summaryTemperature, summaryMaxTokens)
	if err != nil {
		return nil, err
	}
	return decodeSummary(raw)
}
