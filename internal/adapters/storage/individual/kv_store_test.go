package individual_test

import (
	"context"
	"testing"

	"srp/internal/adapters/storage"
	individualStore "srp/internal/adapters/storage/individual"
	domain "srp/internal/domain/individual"
)

func seed(t *testing.T) (*individualStore.KVStore, context.Context) {
	t.Helper()
	ctx := context.Background()
	store := individualStore.NewKVStore(storage.NewMemoryKV())

	_, err := store.Save(ctx, domain.Entry{
		Region: "North", Cluster: "Auckland", Locality: "Devonport",
		Individuals: []domain.Person{
			{FirstName: "Mere", FamilyName: "Kohu", Sex: domain.SexFemale, Age: "34"},
			{FirstName: "Tane", FamilyName: "Kohu", Sex: domain.SexMale, Age: "13"},
		},
	})
	if err != nil {
		t.Fatalf("seed save: %v", err)
	}
	_, err = store.Save(ctx, domain.Entry{
		Region: "Central", Cluster: "Wellington", Locality: "Petone",
		Individuals: []domain.Person{
			{FirstName: "Rangi", Sex: domain.SexMale, Age: "28"},
		},
	})
	if err != nil {
		t.Fatalf("seed save: %v", err)
	}
	return store, ctx
}

// TestKVStore_Search verifies person rows inside an entry are searched,
// not just the entry-level fields.
func TestKVStore_Search(t *testing.T) {
	store, ctx := seed(t)

	results := store.Search(ctx, "kohu")
	if len(results) != 1 || results[0].Locality != "Devonport" {
		t.Errorf("Search(kohu) = %v", results)
	}

	results = store.Search(ctx, "petone")
	if len(results) != 1 || results[0].Locality != "Petone" {
		t.Errorf("Search(petone) = %v", results)
	}

	if results := store.Search(ctx, "nobody"); len(results) != 0 {
		t.Errorf("Search(nobody) = %v, want none", results)
	}
}

func TestKVStore_People(t *testing.T) {
	store, ctx := seed(t)

	people := store.People(ctx)
	if len(people) != 3 {
		t.Fatalf("People() = %d rows, want 3", len(people))
	}

	names := map[string]bool{}
	for _, p := range people {
		names[p.FullName()] = true
	}
	for _, want := range []string{"Mere Kohu", "Tane Kohu", "Rangi"} {
		if !names[want] {
			t.Errorf("People() missing %q", want)
		}
	}
}
