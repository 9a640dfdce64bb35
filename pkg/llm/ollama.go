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

// OllamaProvider implements the Provider interface for Ollama (self-hosted LLMs)
type OllamaProvider struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewOllamaProvider creates a new Ollama provider
func NewOllamaProvider(baseURL, model string) *OllamaProvider {
	if model == "" {
		model = "llama3" // Default model
	}
	return &OllamaProvider{
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{},
	}
}

// Name returns the provider name
func (p *OllamaProvider) Name() string {
	return fmt.Sprintf("Ollama (%s)", p.model)
}

// Ollama API structures
type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Format  string         `json:"format,omitempty"`
	Options *ollamaOptions `json:"options,omitempty"`
}

type ollamaResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// complete sends a single-turn prompt and returns the raw completion text.
func (p *OllamaProvider) complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	reqBody := ollamaRequest{
		Model:  p.model,
		Prompt: prompt,
		Stream: false,
		Format: "json",
		Options: &ollamaOptions{
			Temperature: temperature,
			NumPredict:  maxTokens,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/generate", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call Ollama API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Ollama API returned status %d: %s", resp.StatusCode, string(body))
	}

	var ollamaResp ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&ollamaResp); err != nil {
		return "", fmt.Errorf("failed to decode Ollama response: %w", err)
	}

	if ollamaResp.Response == "" {
		return "", fmt.Errorf("Ollama returned empty response")
	}

	return ollamaResp.Response, nil
}

// AnalyzeFeedback classifies one feedback text
func (p *OllamaProvider) AnalyzeFeedback(ctx context.Context, text, profileCtx string) (*types.AnalysisResponse, error) {
	raw, err := p.complete(ctx, BuildAnalysisPrompt(text, profileCtx), analysisTemperature, analysisMaxTokens)
	if err != nil {
		return nil, err
	}
	return decodeAnalysis(raw)
}

// SynthesizeFeedback invents one live-feed item
func (p *OllamaProvider) SynthesizeFeedback(ctx context.Context, profileCtx string) (*types.SyntheticFeedback, error) {
	raw, err := p.complete(ctx, BuildSynthesisPrompt(profileCtx), synthesisTemperature, synthesisMaxTokens)
	if err != nil {
		return nil, err
	}
	return decodeSynthetic(raw)
}

// GenerateSummary produces the executive summary
func (p *OllamaProvider) GenerateSummary(ctx context.Context, feedbackLines, profileCtx string) (*types.SummaryResponse, error) {
	raw, err := p.complete(ctx, BuildSummaryPrompt(feedbackLines, profileCtx), summaryTemperature, summaryMaxTokens)
	if err != nil {
		return nil, err
	}
	return decodeSummary(raw)
}
