package app

import (
	"log"
	"time"

	"github.com/brandpulseai/brandpulse/internal/config"
	"github.com/brandpulseai/brandpulse/internal/handler"
	"github.com/brandpulseai/brandpulse/internal/ingest"
	"github.com/brandpulseai/brandpulse/internal/poller"
	"github.com/brandpulseai/brandpulse/internal/report"
	"github.com/brandpulseai/brandpulse/pkg/feedback"
	"github.com/brandpulseai/brandpulse/pkg/llm"
)

// App holds all application dependencies
type App struct {
	Config      *config.Config
	LLMProvider llm.Provider
	Store       *feedback.Store
	Profiles    *feedback.Profiles
	Pipeline    *ingest.Pipeline
	Poller      *poller.Poller
	Generator   *report.Generator
	APIHandler  *handler.APIHandler
}

// New initializes a new application with all dependencies
func New() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	// Initialize LLM provider based on configuration
	factory := llm.NewFactory(llm.Config{
		Provider:        cfg.LLMProvider,
		GeminiAPIKey:    cfg.GeminiAPIKey,
		GeminiModel:     cfg.GeminiModel,
		OpenAIAPIKey:    cfg.OpenAIAPIKey,
		OpenAIModel:     cfg.OpenAIModel,
		AnthropicAPIKey: cfg.AnthropicAPIKey,
		AnthropicModel:  cfg.AnthropicModel,
		OllamaURL:       cfg.OllamaURL,
		OllamaModel:     cfg.OllamaModel,
		BedrockRegion:   cfg.BedrockRegion,
		BedrockModel:    cfg.BedrockModel,
	})
	provider, err := factory.CreateProvider()
	if err != nil {
		return nil, err
	}

	store := feedback.NewStore()
	profiles := feedback.NewProfiles()

	if cfg.SeedSampleData {
		for _, item := range feedback.SampleItems() {
			store.Append(item)
		}
		log.Printf("Seeded %d sample feedback items", store.Len())
	}

	pipeline := ingest.NewPipeline(provider, store)
	livePoller := poller.New(provider, pipeline, profiles, time.Duration(cfg.LiveIntervalSeconds)*time.Second)
	generator := report.NewGenerator(provider, store, profiles)

	return &App{
		Config:      cfg,
		LLMProvider: provider,
		Store:       store,
		Profiles:    profiles,
		Pipeline:    pipeline,
		Poller:      livePoller,
		Generator:   generator,
		APIHandler:  handler.NewAPIHandler(pipeline, store, profiles, livePoller, generator),
	}, nil
}

// LogStartupInfo logs application startup information
func (a *App) LogStartupInfo() {
	log.Printf("Starting BrandPulse AI on port %s", a.Config.Port)
	log.Printf("LLM Provider: %s", a.LLMProvider.Name())
	log.Printf("Live feed interval: %ds", a.Config.LiveIntervalSeconds)

	if a.Config.AuthToken != "" {
		log.Printf("API authentication: enabled (Bearer token required)")
	} else {
		log.Printf("API authentication: disabled (WARNING: anyone can submit feedback)")
	}
}
