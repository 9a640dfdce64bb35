package poller

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/brandpulseai/brandpulse/internal/ingest"
	"github.com/brandpulseai/brandpulse/pkg/feedback"
	"github.com/brandpulseai/brandpulse/pkg/llm"
	"github.com/brandpulseai/brandpulse/pkg/types"
)

// DefaultInterval is the pacing between live-feed cycles.
const DefaultInterval = 6 * time.Second

// Poller drives the live feed: on a fixed interval it asks the provider to
// synthesize one plausible feedback text, then runs it through the normal
// ingestion pipeline. Cycles are dispatched on their own goroutines, so a
// slow provider makes cycles overlap rather than stretching the interval.
type Poller struct {
	provider llm.Provider
	pipeline *ingest.Pipeline
	profiles *feedback.Profiles
	interval time.Duration

	mu       sync.Mutex
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	inFlight atomic.Int64
}

// New creates a stopped poller. interval <= 0 selects DefaultInterval.
func New(provider llm.Provider, pipeline *ingest.Pipeline, profiles *feedback.Profiles, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		provider: provider,
		pipeline: pipeline,
		profiles: profiles,
		interval: interval,
	}
}

// Start begins the live feed. The first cycle runs immediately, subsequent
// cycles on each tick. Starting an already-live poller is a no-op.
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel

	log.Printf("Live feed started (interval %s)", p.interval)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runCycle(ctx)
	}()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.wg.Add(1)
				go func() {
					defer p.wg.Done()
					p.runCycle(ctx)
				}()
			}
		}
	}()
}

// Stop halts scheduling. Cycles that already passed their entry check run to
// completion; their results still land in the store. Stopping a stopped
// poller is a no-op.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel == nil {
		return
	}
	p.cancel()
	p.cancel = nil
	log.Printf("Live feed stopped")
}

// IsLive reports whether the poller is currently scheduling cycles.
func (p *Poller) IsLive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

// InFlight reports the number of cycles currently talking to the provider.
func (p *Poller) InFlight() int {
	return int(p.inFlight.Load())
}

// Wait blocks until all dispatched cycles have returned. Intended for
// shutdown and tests.
func (p *Poller) Wait() {
	p.wg.Wait()
}

// runCycle synthesizes and ingests one live-feed item. The scheduling
// context is checked once at entry; after that the cycle is committed and
// the external calls run detached from cancellation, so Stop never produces
// a half-finished record. A synthesis failure skips the cycle entirely.
func (p *Poller) runCycle(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	p.inFlight.Add(1)
	defer p.inFlight.Add(-1)
	callCtx := context.WithoutCancel(ctx)

	profile := p.profiles.Get()
	synth, err := p.provider.SynthesizeFeedback(callCtx, profile.ContextPrompt())
	if err != nil {
		log.Printf("Live feed synthesis failed, skipping cycle: %v", err)
		return
	}

	p.pipeline.Ingest(callCtx, synth.Text, types.ParseSource(synth.Source), profile)
}
