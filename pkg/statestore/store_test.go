package statestore

import (
	"context"
	"testing"

	"github.com/clauseai/clausehound/models"
)

func setupTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenPath(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func stores(t *testing.T) map[string]Store {
	t.Helper()
	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": setupTestStore(t),
	}
}

func TestGetMissingSlot(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			var out models.StoredDetection
			found, err := store.Get(context.Background(), KeyLastDetection, &out)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if found {
				t.Error("found = true for a never-written slot")
			}
		})
	}
}

func TestSetGetRoundtrip(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			in := models.StoredDetection{
				DetectionResult: models.DetectionResult{
					ContractDetected: true,
					URL:              "https://app.example.io/legal/terms-of-service",
					PageTitle:        "Terms of Service",
				},
				TabID:     3,
				Timestamp: 1756380000,
			}

			if err := store.Set(ctx, KeyLastDetection, in); err != nil {
				t.Fatalf("Set: %v", err)
			}

			var out models.StoredDetection
			found, err := store.Get(ctx, KeyLastDetection, &out)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if !found {
				t.Fatal("found = false after Set")
			}
			if out != in {
				t.Errorf("roundtrip mismatch:\ngot  %+v\nwant %+v", out, in)
			}
		})
	}
}

func TestSetOverwrites(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			first := models.AnalysisContext{URL: "https://a.example.io/terms", Title: "A", Timestamp: 1}
			second := models.AnalysisContext{URL: "https://b.example.io/terms", Title: "B", Timestamp: 2}

			if err := store.Set(ctx, KeyAnalysisContext, first); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if err := store.Set(ctx, KeyAnalysisContext, second); err != nil {
				t.Fatalf("Set: %v", err)
			}

			var out models.AnalysisContext
			if _, err := store.Get(ctx, KeyAnalysisContext, &out); err != nil {
				t.Fatalf("Get: %v", err)
			}
			if out != second {
				t.Errorf("slot = %+v, want the later write %+v", out, second)
			}
		})
	}
}

func TestSlotsAreIndependent(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	if err := store.Set(ctx, KeyLastDetection, models.StoredDetection{TabID: 1}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var out models.AnalysisContext
	found, err := store.Get(ctx, KeyAnalysisContext, &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("writing one slot populated another")
	}
}
