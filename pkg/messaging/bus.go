// Package messaging is the typed message protocol connecting the detection
// runner, the coordinator, and the presentation surface. Messages are a
// closed set of kinds dispatched through a handler table; a handler produces
// either a fire-and-forget acknowledgment or an awaited structured response.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Kind tags a message variant.
type Kind string

const (
	// KindDetectionReported carries a DetectionResult from a runner to the
	// coordinator. Always sent, positive or negative.
	KindDetectionReported Kind = "detection_reported"
	// KindAnalysisRequested carries an AnalysisRequest from the prompt
	// affordance to the coordinator.
	KindAnalysisRequested Kind = "analysis_requested"
	// KindLastDetectionQuery asks the coordinator for the persisted last
	// detection; the response is *StoredDetection or nil.
	KindLastDetectionQuery Kind = "last_detection_query"
	// KindOnDemandCheck asks a runner to re-execute the detection pipeline
	// and respond with a fresh DetectionResult.
	KindOnDemandCheck Kind = "on_demand_check"
)

// ErrNoHandler is returned when a message kind has no registered listener.
var ErrNoHandler = errors.New("messaging: no handler registered")

// Envelope wraps one message: its kind, the originating tab, and the payload.
type Envelope struct {
	Kind    Kind
	TabID   int
	Payload any
}

// Handler processes one envelope. The returned value is the structured
// response for Request callers; Send callers discard it.
type Handler func(ctx context.Context, env Envelope) (any, error)

// Bus dispatches envelopes to handlers keyed by kind. Registration happens
// at wiring time; dispatch is safe for concurrent use.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Kind]Handler
	log      *slog.Logger
}

// NewBus returns an empty bus logging through the given logger.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		handlers: make(map[Kind]Handler),
		log:      logger,
	}
}

// Handle registers the handler for a message kind, replacing any previous one.
func (b *Bus) Handle(kind Kind, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[kind] = h
}

// Send dispatches an envelope without awaiting a response. A missing listener
// or a handler error is logged as a warning and never propagated; detection
// outcomes must not depend on delivery.
func (b *Bus) Send(ctx context.Context, env Envelope) {
	if _, err := b.dispatch(ctx, env); err != nil {
		b.log.Warn("message not delivered", "kind", string(env.Kind), "tab_id", env.TabID, "error", err)
	}
}

// Request dispatches an envelope and returns the handler's response.
func (b *Bus) Request(ctx context.Context, env Envelope) (any, error) {
	return b.dispatch(ctx, env)
}

func (b *Bus) dispatch(ctx context.Context, env Envelope) (any, error) {
	b.mu.RLock()
	h, ok := b.handlers[env.Kind]
	b.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w for kind %q", ErrNoHandler, env.Kind)
	}
	return h(ctx, env)
}
