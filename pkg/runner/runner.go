// Package runner orchestrates one detection run: extract signals, decide,
// report the result, and surface the analyze prompt on a positive detection.
package runner

import (
	"context"
	"log/slog"
	"sync"

	"github.com/clauseai/clausehound/models"
	"github.com/clauseai/clausehound/pkg/messaging"
	"github.com/clauseai/clausehound/pkg/scoring"
	"github.com/clauseai/clausehound/pkg/signals"
	"github.com/clauseai/clausehound/pkg/vocab"
)

// PromptElementID identifies the inline analyze prompt. A page carries at
// most one.
const PromptElementID = "clausehound-analyze-prompt"

// PromptPresenter renders the inline "Analyze Terms" affordance. Visible is
// the idempotence check: the runner never shows a second prompt while one
// exists.
type PromptPresenter interface {
	Visible() bool
	Show(url, title string) error
}

// Runner executes the extract-and-decide pipeline for one tab. It always
// reports the result to the coordinator, so negative runs clear any prior
// indicator state.
type Runner struct {
	tables *vocab.Tables
	bus    *messaging.Bus
	prompt PromptPresenter
	tabID  int
	log    *slog.Logger

	mu   sync.Mutex
	page *models.PageContext
}

// New wires a runner for one tab. prompt may be nil when no page surface
// exists.
func New(tables *vocab.Tables, bus *messaging.Bus, prompt PromptPresenter, tabID int, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		tables: tables,
		bus:    bus,
		prompt: prompt,
		tabID:  tabID,
		log:    logger,
	}
}

// Register binds the on-demand check handler on the runner's bus. The
// response goes straight back to the requester without passing through the
// coordinator.
func (r *Runner) Register() {
	r.bus.Handle(messaging.KindOnDemandCheck, func(ctx context.Context, _ messaging.Envelope) (any, error) {
		r.mu.Lock()
		page := r.page
		r.mu.Unlock()

		if page == nil {
			return models.DetectionResult{}, nil
		}
		return r.Run(ctx, *page), nil
	})
}

// OnPageLoad runs the pipeline for a freshly loaded page and remembers the
// context for later on-demand checks.
func (r *Runner) OnPageLoad(ctx context.Context, page models.PageContext) models.DetectionResult {
	r.mu.Lock()
	r.page = &page
	r.mu.Unlock()

	return r.Run(ctx, page)
}

// Run executes extract-then-decide on the given context, reports the result,
// and triggers the prompt on a positive detection. The pipeline is pure:
// running it twice on an unchanged context yields an identical result.
func (r *Runner) Run(ctx context.Context, page models.PageContext) models.DetectionResult {
	set := signals.Extract(page, r.tables)
	result := scoring.Decide(page, set)

	r.bus.Send(ctx, messaging.Envelope{
		Kind:    messaging.KindDetectionReported,
		TabID:   r.tabID,
		Payload: result,
	})

	if result.ContractDetected && r.prompt != nil && !r.prompt.Visible() {
		if err := r.prompt.Show(result.URL, result.PageTitle); err != nil {
			r.log.Warn("failed to show analyze prompt", "url", result.URL, "error", err)
		}
	}

	return result
}
