package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/brandpulseai/brandpulse/internal/ingest"
	"github.com/brandpulseai/brandpulse/internal/poller"
	"github.com/brandpulseai/brandpulse/internal/report"
	"github.com/brandpulseai/brandpulse/pkg/feedback"
	"github.com/brandpulseai/brandpulse/pkg/stats"
	"github.com/brandpulseai/brandpulse/pkg/types"
)

// APIHandler serves the dashboard REST API.
type APIHandler struct {
	pipeline  *ingest.Pipeline
	store     *feedback.Store
	profiles  *feedback.Profiles
	poller    *poller.Poller
	generator *report.Generator
}

// NewAPIHandler creates the API handler
func NewAPIHandler(pipeline *ingest.Pipeline, store *feedback.Store, profiles *feedback.Profiles, p *poller.Poller, generator *report.Generator) *APIHandler {
	return &APIHandler{
		pipeline:  pipeline,
		store:     store,
		profiles:  profiles,
		poller:    p,
		generator: generator,
	}
}

type submitFeedbackRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// HandleFeedback routes /api/feedback: POST submits one text for analysis,
// GET lists stored items in insertion order (?limit=N returns the N most
// recent, newest first).
func (h *APIHandler) HandleFeedback(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.submitFeedback(w, r)
	case http.MethodGet:
		h.listFeedback(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *APIHandler) submitFeedback(w http.ResponseWriter, r *http.Request) {
	var req submitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Failed to parse feedback request: %v", err)
		http.Error(w, "Failed to parse request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "Feedback text must not be empty", http.StatusBadRequest)
		return
	}

	source := types.SourceDirectInput
	if req.Source != "" {
		source = types.ParseSource(req.Source)
	}

	item := h.pipeline.Ingest(r.Context(), req.Text, source, h.profiles.Get())
	writeJSON(w, http.StatusCreated, item)
}

func (h *APIHandler) listFeedback(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, h.store.Recent(limit))
		return
	}
	writeJSON(w, http.StatusOK, h.store.All())
}

// dashboardResponse is the aggregate view backing the dashboard page.
type dashboardResponse struct {
	Total              int                `json:"total"`
	Positive           int                `json:"positive"`
	Negative           int                `json:"negative"`
	Neutral            int                `json:"neutral"`
	NetSentimentScore  int                `json:"netSentimentScore"`
	CriticalIssueCount int                `json:"criticalIssueCount"`
	TopTopics          []stats.TopicCount `json:"topTopics"`
}

// HandleDashboard computes all aggregates over one consistent snapshot.
func (h *APIHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	items := h.store.All()
	counts := stats.Count(items)
	writeJSON(w, http.StatusOK, dashboardResponse{
		Total:              counts.Total,
		Positive:           counts.Positive,
		Negative:           counts.Negative,
		Neutral:            counts.Neutral,
		NetSentimentScore:  stats.NetSentimentScore(items),
		CriticalIssueCount: stats.CriticalIssueCount(items),
		TopTopics:          stats.TopicFrequency(items),
	})
}

// HandleReports generates an executive summary on demand. An empty
// collection is rejected rather than summarized.
func (h *APIHandler) HandleReports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.store.Len() == 0 {
		http.Error(w, "No feedback to summarize", http.StatusUnprocessableEntity)
		return
	}

	summary := h.generator.Generate(r.Context())
	writeJSON(w, http.StatusOK, summary)
}

// HandleProfile routes /api/settings/profile: GET returns the current
// company profile, PUT replaces it wholesale.
func (h *APIHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.profiles.Get())
	case http.MethodPut:
		var profile types.CompanyProfile
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			log.Printf("Failed to parse profile: %v", err)
			http.Error(w, "Failed to parse request body", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		h.profiles.Set(profile)
		log.Printf("Company profile updated: %q", profile.Name)
		writeJSON(w, http.StatusOK, profile)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type liveStatusResponse struct {
	Live     bool `json:"live"`
	InFlight int  `json:"inFlight"`
}

// HandleLiveStart begins live-feed polling. Idempotent.
func (h *APIHandler) HandleLiveStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.poller.Start()
	writeJSON(w, http.StatusOK, liveStatusResponse{Live: h.poller.IsLive(), InFlight: h.poller.InFlight()})
}

// HandleLiveStop halts live-feed polling. Idempotent.
func (h *APIHandler) HandleLiveStop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.poller.Stop()
	writeJSON(w, http.StatusOK, liveStatusResponse{Live: h.poller.IsLive(), InFlight: h.poller.InFlight()})
}

// HandleLiveStatus reports whether the live feed is running.
func (h *APIHandler) HandleLiveStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, liveStatusResponse{Live: h.poller.IsLive(), InFlight: h.poller.InFlight()})
}

// HandleHealth handles health check requests
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
