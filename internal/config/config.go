package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Port      string `yaml:"port"`
	AuthToken string `yaml:"auth_token"`

	LLMProvider     string `yaml:"llm_provider"` // "gemini", "openai", "anthropic", "ollama", "bedrock"
	GeminiAPIKey    string `yaml:"gemini_api_key"`
	GeminiModel     string `yaml:"gemini_model"`
	OpenAIAPIKey    string `yaml:"openai_api_key"`
	OpenAIModel     string `yaml:"openai_model"`
	AnthropicAPIKey string `yaml:"anthropic_api_key"`
	AnthropicModel  string `yaml:"anthropic_model"`
	OllamaURL       string `yaml:"ollama_url"`
	OllamaModel     string `yaml:"ollama_model"`
	BedrockRegion   string `yaml:"bedrock_region"`
	BedrockModel    string `yaml:"bedrock_model"`

	LiveIntervalSeconds int  `yaml:"live_interval_seconds"`
	SeedSampleData      bool `yaml:"seed_sample_data"`
}

// LoadConfig loads configuration from an optional YAML file (path in
// BRANDPULSE_CONFIG) with environment variables taking precedence.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:                "8080",
		LLMProvider:         "gemini",
		GeminiModel:         "gemini-2.5-flash",
		OpenAIModel:         "gpt-4o-mini",
		AnthropicModel:      "claude-3-5-sonnet-20241022",
		OllamaURL:           "http://localhost:11434",
		OllamaModel:         "llama3",
		BedrockRegion:       "us-east-1",
		BedrockModel:        "anthropic.claude-3-5-sonnet-20241022-v2:0",
		LiveIntervalSeconds: 6,
		SeedSampleData:      true,
	}

	if path := os.Getenv("BRANDPULSE_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if cfg.LiveIntervalSeconds <= 0 {
		return nil, fmt.Errorf("live_interval_seconds must be positive, got %d", cfg.LiveIntervalSeconds)
	}
	return cfg, nil
}

// applyEnv overrides file values with environment variables where set.
func (c *Config) applyEnv() {
	c.Port = getEnv("PORT", c.Port)
	c.AuthToken = getEnv("AUTH_TOKEN", c.AuthToken)
	c.LLMProvider = getEnv("LLM_PROVIDER", c.LLMProvider)
	c.GeminiAPIKey = getEnv("GEMINI_API_KEY", c.GeminiAPIKey)
	c.GeminiModel = getEnv("GEMINI_MODEL", c.GeminiModel)
	c.OpenAIAPIKey = getEnv("OPENAI_API_KEY", c.OpenAIAPIKey)
	c.OpenAIModel = getEnv("OPENAI_MODEL", c.OpenAIModel)
	c.AnthropicAPIKey = getEnv("ANTHROPIC_API_KEY", c.AnthropicAPIKey)
	c.AnthropicModel = getEnv("ANTHROPIC_MODEL", c.AnthropicModel)
	c.OllamaURL = getEnv("OLLAMA_URL", c.OllamaURL)
	c.OllamaModel = getEnv("OLLAMA_MODEL", c.OllamaModel)
	c.BedrockRegion = getEnv("BEDROCK_REGION", c.BedrockRegion)
	c.BedrockModel = getEnv("BEDROCK_MODEL", c.BedrockModel)
	c.LiveIntervalSeconds = getEnvInt("LIVE_INTERVAL_SECONDS", c.LiveIntervalSeconds)
	if v := os.Getenv("SEED_SAMPLE_DATA"); v != "" {
		c.SeedSampleData = v == "true"
	}
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an int environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
