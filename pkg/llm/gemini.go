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

// GeminiProvider implements the Provider interface for Google's Gemini
// models. This is the default provider; the dashboard was designed around
// Gemini's JSON-mode responses.
type GeminiProvider struct {
	apiKey string
	model  string
	client *http.Client
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(apiKey, model string) *GeminiProvider {
	if model == "" {
		model = "gemini-2.5-flash" // Default model
	}
	return &GeminiProvider{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{},
	}
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return fmt.Sprintf("Google Gemini (%s)", p.model)
}

// Gemini API structures
type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

// complete sends a single-turn prompt and returns the raw completion text.
func (p *GeminiProvider) complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:      temperature,
			MaxOutputTokens:  maxTokens,
			ResponseMIMEType: "application/json",
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", p.model, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call Gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Gemini API returned status %d: %s", resp.StatusCode, string(body))
	}

	var geminiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", fmt.Errorf("failed to decode Gemini response: %w", err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("Gemini returned no content")
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}

// AnalyzeFeedback classifies one feedback text
func (p *GeminiProvider) AnalyzeFeedback(ctx context.Context, text, profileCtx string) (*types.AnalysisResponse, error) {
	raw, err := p.complete(ctx, BuildAnalysisPrompt(text, profileCtx), analysisTemperature, analysisMaxTokens)
	if err != nil {
		return nil, err
	}
	return decodeAnalysis(raw)
}

// SynthesizeFeedback invents one live-feed item
func (p *GeminiProvider) SynthesizeFeedback(ctx context.Context, profileCtx string) (*types.SyntheticFeedback, error) {
	raw, err := p.complete(ctx, BuildSynthesisPrompt(profileCtx), synthesisTemperature, synthesisMaxTokens)
	if err != nil {
		return nil, err
	}
	return decodeSynthetic(raw)
}

// GenerateSummary produces the executive summary
func (p *GeminiProvider) GenerateSummary(ctx context.Context, feedbackLines, profileCtx string) (*types.SummaryResponse, error) {
	raw, err := p.complete(ctx, BuildSummaryPrompt(feedbackLines, profileCtx), summaryTemperature, summaryMaxTokens)
	if err != nil {
		return nil, err
	}
	return decodeSummary(raw)
}
