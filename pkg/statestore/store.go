// Package statestore is the key-value persistence collaborator behind the
// coordinator. Values live in single slots that are overwritten wholesale,
// never merged; the last write wins.
package statestore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// The coordinator's slot keys.
const (
	// KeyLastDetection holds the most recent StoredDetection across all tabs.
	KeyLastDetection = "lastContractDetection"
	// KeyAnalysisContext holds the pending AnalysisContext.
	KeyAnalysisContext = "analyzeTermsContext"
)

// Store reads and writes JSON-encoded slot values. Get reports false when the
// slot has never been written.
type Store interface {
	Get(ctx context.Context, key string, out any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// Memory is an in-process Store for tests and single-shot CLI runs.
type Memory struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{slots: make(map[string][]byte)}
}

// Get unmarshals the slot value into out, reporting whether the slot exists.
func (m *Memory) Get(_ context.Context, key string, out any) (bool, error) {
	m.mu.RLock()
	raw, ok := m.slots[key]
	m.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("statestore: failed to decode slot %q: %w", key, err)
	}
	return true, nil
}

// Set overwrites the slot with the JSON encoding of value.
func (m *Memory) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("statestore: failed to encode slot %q: %w", key, err)
	}

	m.mu.Lock()
	m.slots[key] = raw
	m.mu.Unlock()
	return nil
}
