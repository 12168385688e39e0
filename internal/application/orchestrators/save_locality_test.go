package orchestrators_test

import (
	"context"
	"testing"

	"srp/internal/adapters/storage"
	localityStore "srp/internal/adapters/storage/locality"
	"srp/internal/application/orchestrators"
	domain "srp/internal/domain/locality"
)

func TestExecuteSaveLocality(t *testing.T) {
	ctx := context.Background()
	store := localityStore.NewKVStore(storage.NewMemoryKV())

	result, err := orchestrators.ExecuteSaveLocality(ctx,
		orchestrators.SaveLocalityInput{Record: domain.Locality{
			Date: "2025-06-01", Region: "North", Cluster: "Auckland", Locality: "Devonport",
		}},
		orchestrators.SaveLocalityDeps{LocalityStore: store},
	)
	if err != nil {
		t.Fatalf("ExecuteSaveLocality() error = %v", err)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("Errors = %v, want none", result.Errors)
	}
	if result.Record.ID == "" {
		t.Error("saved record has no id")
	}
	if got := store.List(ctx); len(got) != 1 {
		t.Errorf("store holds %d records, want 1", len(got))
	}
}

// TestExecuteSaveLocality_ValidationBlocksWrite verifies an invalid entry
// never reaches storage.
func TestExecuteSaveLocality_ValidationBlocksWrite(t *testing.T) {
	ctx := context.Background()
	store := localityStore.NewKVStore(storage.NewMemoryKV())

	result, err := orchestrators.ExecuteSaveLocality(ctx,
		orchestrators.SaveLocalityInput{Record: domain.Locality{Region: "North"}},
		orchestrators.SaveLocalityDeps{LocalityStore: store},
	)
	if err != nil {
		t.Fatalf("ExecuteSaveLocality() error = %v", err)
	}
	if len(result.Errors) == 0 {
		t.Fatal("Errors empty, want validation failures")
	}
	for _, field := range []string{"date", "cluster", "locality"} {
		if _, ok := result.Errors[field]; !ok {
			t.Errorf("Errors = %v, want key %q", result.Errors, field)
		}
	}
	if got := store.List(ctx); len(got) != 0 {
		t.Errorf("store holds %d records after failed validation, want 0", len(got))
	}
}
