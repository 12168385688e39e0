package orchestrators_test

import (
	"context"
	"testing"

	"srp/internal/adapters/storage"
	individualStore "srp/internal/adapters/storage/individual"
	groupStore "srp/internal/adapters/storage/junioryouth"
	"srp/internal/application/orchestrators"
	individualDomain "srp/internal/domain/individual"
	domain "srp/internal/domain/junioryouth"
)

func seedPeople(t *testing.T, ctx context.Context, store *individualStore.KVStore) {
	t.Helper()
	_, err := store.Save(ctx, individualDomain.Entry{
		Region: "North", Cluster: "Auckland", Locality: "Devonport",
		Individuals: []individualDomain.Person{
			{FirstName: "Mere", FamilyName: "Kohu", Sex: "F", CompletedRuhiBooks: []string{"book1", "book5"}},
			{FirstName: "Tane", FamilyName: "Kohu", Sex: "M", CompletedRuhiBooks: []string{"book1"}},
		},
	})
	if err != nil {
		t.Fatalf("seed people: %v", err)
	}
}

// TestExecuteSaveJuniorYouthGroup_AnimatorPrerequisite verifies a known
// person without Book 5 is rejected as animator while an unresolved name
// passes as free text.
func TestExecuteSaveJuniorYouthGroup_AnimatorPrerequisite(t *testing.T) {
	ctx := context.Background()
	groups := groupStore.NewKVStore(storage.NewMemoryKV())
	individuals := individualStore.NewKVStore(storage.NewMemoryKV())
	seedPeople(t, ctx, individuals)

	tests := []struct {
		name      string
		animators []string
		wantErr   bool
	}{
		{"animator with book 5", []string{"Mere Kohu"}, false},
		{"animator without book 5", []string{"Tane Kohu"}, true},
		{"unresolved name passes", []string{"Visiting Animator"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := orchestrators.ExecuteSaveJuniorYouthGroup(ctx,
				orchestrators.SaveJuniorYouthGroupInput{Record: domain.Group{
					Locality:    "Devonport",
					CurrentBook: "Breezes of Confirmation",
					Animators:   tt.animators,
				}},
				orchestrators.SaveJuniorYouthGroupDeps{
					GroupStore:      groups,
					IndividualStore: individuals,
				},
			)
			if err != nil {
				t.Fatalf("ExecuteSaveJuniorYouthGroup() error = %v", err)
			}
			_, blocked := result.Errors["animators"]
			if blocked != tt.wantErr {
				t.Errorf("animators error = %v, wantErr %v", result.Errors["animators"], tt.wantErr)
			}
		})
	}
}

// Without an individual store the prerequisite check is skipped entirely.
func TestExecuteSaveJuniorYouthGroup_NoIndividualStore(t *testing.T) {
	ctx := context.Background()
	groups := groupStore.NewKVStore(storage.NewMemoryKV())

	result, err := orchestrators.ExecuteSaveJuniorYouthGroup(ctx,
		orchestrators.SaveJuniorYouthGroupInput{Record: domain.Group{
			Locality:    "Devonport",
			CurrentBook: "Breezes of Confirmation",
			Animators:   []string{"Tane Kohu"},
		}},
		orchestrators.SaveJuniorYouthGroupDeps{GroupStore: groups},
	)
	if err != nil {
		t.Fatalf("ExecuteSaveJuniorYouthGroup() error = %v", err)
	}
	if len(result.Errors) != 0 {
		t.Errorf("Errors = %v, want none", result.Errors)
	}
}
