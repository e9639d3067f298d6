package state

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/clauseai/clausehound/models"
	"github.com/clauseai/clausehound/pkg/statestore"
)

// StateAction prints the persisted coordinator slots: the last detection and
// the pending analysis context. Missing slots come out as null.
func StateAction(c *cli.Context) error {
	var (
		store *statestore.SQLite
		err   error
	)
	if dbPath := c.String("db"); dbPath != "" {
		store, err = statestore.OpenPath(dbPath)
	} else {
		store, err = statestore.Open()
	}
	if err != nil {
		return fmt.Errorf("failed to open state database: %w", err)
	}
	defer store.Close()

	out := struct {
		LastDetection   *models.StoredDetection `json:"last_detection"`
		AnalysisContext *models.AnalysisContext `json:"analysis_context"`
	}{}

	var detection models.StoredDetection
	if found, err := store.Get(c.Context, statestore.KeyLastDetection, &detection); err == nil && found {
		out.LastDetection = &detection
	}

	var analysis models.AnalysisContext
	if found, err := store.Get(c.Context, statestore.KeyAnalysisContext, &analysis); err == nil && found {
		out.AnalysisContext = &analysis
	}

	raw, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	fmt.Println(string(raw))
	return nil
}
