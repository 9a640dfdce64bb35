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

// OpenAIProvider implements the Provider interface for OpenAI's GPT models
type OpenAIProvider struct {
	apiKey string
	model  string
	client *http.Client
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = "gpt-4o-mini" // Default model
	}
	return &OpenAIProvider{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{},
	}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return fmt.Sprintf("OpenAI (%s)", p.model)
}

// OpenAI API structures
type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponseFormat struct {
	Type string `json:"type"`
}

type openAIRequest struct {
	Model          string                `json:"model"`
	Messages       []openAIMessage       `json:"messages"`
	Temperature    float64               `json:"temperature"`
	MaxTokens      int                   `json:"max_tokens,omitempty"`
	ResponseFormat *openAIResponseFormat `json:"response_format,omitempty"`
}

type openAIChoice struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type openAIResponse struct {
	Choices []openAIChoice `json:"choices"`
}

// complete sends a single-turn prompt and returns the raw completion text.
func (p *OpenAIProvider) complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	reqBody := openAIRequest{
		Model: p.model,
		Messages: []openAIMessage{
			{Role: "system", Content: "You are a brand-feedback analyst. Always answer with a single JSON object."},
			{Role: "user", Content: prompt},
		},
		Temperature:    temperature,
		MaxTokens:      maxTokens,
		ResponseFormat: &openAIResponseFormat{Type: "json_object"},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.openai.com/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call OpenAI API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("OpenAI API returned status %d: %s", resp.StatusCode, string(body))
	}

	var openAIResp openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return "", fmt.Errorf("failed to decode OpenAI response: %w", err)
	}

	if len(openAIResp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI returned no choices")
	}

	return openAIResp.Choices[0].Message.Content, nil
}

// AnalyzeFeedback classifies one feedback text
func (p *OpenAIProvider) AnalyzeFeedback(ctx context.Context, text, profileCtx string) (*types.AnalysisResponse, error) {
	raw, err := p.complete(ctx, BuildAnalysisPrompt(text, profileCtx), analysisTemperature, analysisMaxTokens)
	if err != nil {
		return nil, err
	}
	return decodeAnalysis(raw)
}

// SynthesizeFeedback invents one live-feed item
func (p *OpenAIProvider) SynthesizeFeedback(ctx context.Context, profileCtx string) (*types.SyntheticFeedback, error) {
	raw, err := p.complete(ctx, BuildSynthesisPrompt(profileCtx), synthesisTemperature, synthesisMaxTokens)
	if err != nil {
		return nil, err
	}
	return decodeSynthetic(raw)
}

// GenerateSummary produces the executive summary
func (p *OpenAIProvider) GenerateSummary(ctx context.Context, feedbackLines, profileCtx string) (*types.SummaryResponse, error) {
	raw, err := p.complete(ctx, BuildSummaryPrompt(feedbackLines, profileCtx), summaryTemperature, summaryMaxTokens)
	if err != nil {
		return nil, err
	}
	return decodeSummary(raw)
}
