package llm

import (
	"context"

	"github.com/brandpulseai/brandpulse/pkg/types"
)

// Provider defines the interface for LLM providers (Gemini, OpenAI, Claude,
// Ollama, Bedrock). All three operations are fallible network calls; callers
// own the fail-open policy.
type Provider interface {
	// AnalyzeFeedback classifies one feedback text into sentiment, emotion,
	// intensity, topics and an actionable insight.
	AnalyzeFeedback(ctx context.Context, text, profileCtx string) (*types.AnalysisResponse, error)

	// SynthesizeFeedback invents one plausible feedback text plus a source
	// tag for the live feed.
	SynthesizeFeedback(ctx context.Context, profileCtx string) (*types.SyntheticFeedback, error)

	// GenerateSummary produces an executive summary over the serialized
	// feedback lines.
	GenerateSummary(ctx context.Context, feedbackLines, profileCtx string) (*types.SummaryResponse, error)

	// Name returns the provider name (for logging)
	Name() string
}

// Config holds common configuration for LLM providers
type Config struct {
	Provider string // "gemini", "openai", "anthropic", "ollama", "bedrock"

	// Gemini-specific
	GeminiAPIKey string
	GeminiModel  string // e.g., "gemini-2.5-flash", "gemini-1.5-pro"

	// OpenAI-specific
	OpenAIAPIKey string
	OpenAIModel  string // e.g., "gpt-4o", "gpt-4o-mini"

	// Anthropic-specific
	AnthropicAPIKey string
	AnthropicModel  string // e.g., "claude-3-5-sonnet-20241022"

	// Ollama-specific
	OllamaURL   string
	OllamaModel string

	// AWS Bedrock-specific
	BedrockRegion string // e.g., "us-east-1", "us-west-2"
	BedrockModel  string // e.g., "anthropic.claude-3-5-sonnet-20241022-v2:0"
}
