// Package coordinator holds the process-wide detection state: per-tab badge
// indicators, the persisted last detection, and the pending analysis context.
// It mutates that state only in response to messages.
package coordinator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/clauseai/clausehound/models"
	"github.com/clauseai/clausehound/pkg/messaging"
	"github.com/clauseai/clausehound/pkg/statestore"
)

// Badge states for the indicator surface.
const (
	BadgeText       = "TOS"
	BadgeColor      = "#3b82f6"
	BadgeColorClear = "transparent"
)

// IndicatorSurface paints the small per-tab badge. An empty text with the
// transparent color clears it.
type IndicatorSurface interface {
	SetBadge(tabID int, text, color string) error
}

// PanelOpener opens the presentation surface for a window.
type PanelOpener interface {
	OpenPanel(windowID int) error
}

// Coordinator handles coordinator-side messages and owns indicator state.
// Persistence is best-effort: a failed write is logged and swallowed so the
// indicator and prompt UX never hang on storage failures.
type Coordinator struct {
	store statestore.Store
	badge IndicatorSurface
	panel PanelOpener
	log   *slog.Logger
	now   func() time.Time

	mu         sync.Mutex
	indicators map[int]models.IndicatorState
}

// New wires a coordinator. badge and panel may be nil when no surface exists
// in the host environment.
func New(store statestore.Store, badge IndicatorSurface, panel PanelOpener, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		store:      store,
		badge:      badge,
		panel:      panel,
		log:        logger,
		now:        time.Now,
		indicators: make(map[int]models.IndicatorState),
	}
}

// Register binds the coordinator's message handlers on the bus.
func (c *Coordinator) Register(bus *messaging.Bus) {
	bus.Handle(messaging.KindDetectionReported, c.handleDetectionReported)
	bus.Handle(messaging.KindAnalysisRequested, c.handleAnalysisRequested)
	bus.Handle(messaging.KindLastDetectionQuery, c.handleLastDetectionQuery)
}

// IndicatorFor returns the current indicator state for a tab. Tabs with no
// reported detection are hidden.
func (c *Coordinator) IndicatorFor(tabID int) models.IndicatorState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.indicators[tabID]
}

func (c *Coordinator) handleDetectionReported(ctx context.Context, env messaging.Envelope) (any, error) {
	result, ok := env.Payload.(models.DetectionResult)
	if !ok {
		return nil, fmt.Errorf("coordinator: unexpected payload %T for %s", env.Payload, env.Kind)
	}

	state := models.IndicatorState{Text: "", Color: BadgeColorClear}
	if result.ContractDetected {
		state = models.IndicatorState{Shown: true, Text: BadgeText, Color: BadgeColor}
	}

	c.mu.Lock()
	c.indicators[env.TabID] = state
	c.mu.Unlock()

	if c.badge != nil {
		if err := c.badge.SetBadge(env.TabID, state.Text, state.Color); err != nil {
			c.log.Warn("failed to paint badge", "tab_id", env.TabID, "error", err)
		}
	}

	stored := models.StoredDetection{
		DetectionResult: result,
		TabID:           env.TabID,
		Timestamp:       c.now().Unix(),
	}
	if err := c.store.Set(ctx, statestore.KeyLastDetection, stored); err != nil {
		c.log.Warn("failed to persist last detection", "tab_id", env.TabID, "error", err)
	}

	return models.Ack{Received: true}, nil
}

func (c *Coordinator) handleAnalysisRequested(ctx context.Context, env messaging.Envelope) (any, error) {
	req, ok := env.Payload.(models.AnalysisRequest)
	if !ok {
		return nil, fmt.Errorf("coordinator: unexpected payload %T for %s", env.Payload, env.Kind)
	}

	analysis := models.AnalysisContext{
		URL:       req.URL,
		Title:     req.Title,
		Timestamp: c.now().Unix(),
	}
	if err := c.store.Set(ctx, statestore.KeyAnalysisContext, analysis); err != nil {
		c.log.Warn("failed to persist analysis context", "url", req.URL, "error", err)
	}

	if c.panel != nil {
		if err := c.panel.OpenPanel(req.WindowID); err != nil {
			c.log.Warn("failed to open panel", "window_id", req.WindowID, "error", err)
		}
	}

	return models.Ack{Received: true}, nil
}

func (c *Coordinator) handleLastDetectionQuery(ctx context.Context, _ messaging.Envelope) (any, error) {
	var stored models.StoredDetection
	found, err := c.store.Get(ctx, statestore.KeyLastDetection, &stored)
	if err != nil {
		// Read failures degrade to "no context available" on the surface.
		c.log.Warn("failed to read last detection", "error", err)
		return (*models.StoredDetection)(nil), nil
	}
	if !found {
		return (*models.StoredDetection)(nil), nil
	}
	return &stored, nil
}
