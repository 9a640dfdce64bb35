package llm

import (
	"strings"
	"testing"
)

func TestFactoryDefaultsToGemini(t *testing.T) {
	f := NewFactory(Config{GeminiAPIKey: "test-key"})
	p, err := f.CreateProvider()
	if err != nil {
		t.Fatalf("CreateProvider: %v", err)
	}
	if !strings.Contains(p.Name(), "Gemini") {
		t.Errorf("default provider = %s, want Gemini", p.Name())
	}
}

func TestFactoryProviderSelection(t *testing.T) {
	cases := []struct {
		cfg      Config
		wantName string
	}{
		{Config{Provider: "gemini", GeminiAPIKey: "k"}, "Gemini"},
		{Config{Provider: "openai", OpenAIAPIKey: "k"}, "OpenAI"},
		{Config{Provider: "anthropic", AnthropicAPIKey: "k"}, "Anthropic"},
		{Config{Provider: "claude", AnthropicAPIKey: "k"}, "Anthropic"},
		{Config{Provider: "ollama", OllamaURL: "http://localhost:11434"}, "Ollama"},
	}

	for _, tc := range cases {
		p, err := NewFactory(tc.cfg).CreateProvider()
		if err != nil {
			t.Errorf("CreateProvider(%s): %v", tc.cfg.Provider, err)
			continue
		}
		if !strings.Contains(p.Name(), tc.wantName) {
			t.Errorf("provider for %q = %s, want %s", tc.cfg.Provider, p.Name(), tc.wantName)
		}
	}
}

func TestFactoryMissingCredentials(t *testing.T) {
	cases := []Config{
		{Provider: "gemini"},
		{Provider: "openai"},
		{Provider: "anthropic"},
		{Provider: "ollama"},
	}
	for _, cfg := range cases {
		if _, err := NewFactory(cfg).CreateProvider(); err == nil {
			t.Errorf("expected error for unconfigured %q provider", cfg.Provider)
		}
	}
}

func TestFactoryUnknownProvider(t *testing.T) {
	if _, err := NewFactory(Config{Provider: "watson"}).CreateProvider(); err == nil {
		t.Error("expected error for unknown provider")
	}
}
