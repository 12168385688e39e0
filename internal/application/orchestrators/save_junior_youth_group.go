package orchestrators

import (
	"context"
	"log/slog"

	individualStore "srp/internal/adapters/storage/individual"
	groupStore "srp/internal/adapters/storage/junioryouth"
	"srp/internal/domain/curriculum"
	domain "srp/internal/domain/junioryouth"
)

// SaveJuniorYouthGroupInput carries the group entry from the form.
type SaveJuniorYouthGroupInput struct {
	Record domain.Group
}

// SaveJuniorYouthGroupDeps holds external dependencies for the save
// orchestrator. IndividualStore is optional: when nil the animator
// prerequisite is not checked.
type SaveJuniorYouthGroupDeps struct {
	GroupStore      groupStore.Store
	IndividualStore individualStore.Store
}

// SaveJuniorYouthGroupResult reports the saved record or the per-field
// errors that blocked the save.
type SaveJuniorYouthGroupResult struct {
	Record domain.Group
	Errors map[string]string
}

// ExecuteSaveJuniorYouthGroup validates a junior youth group entry and
// persists it. Animator references that resolve to a known person are
// checked for the Ruhi Book 5 prerequisite; unresolved references pass
// through as free text, matching how the records keep references loose.
// POST: on validation failure no record is written
func ExecuteSaveJuniorYouthGroup(ctx context.Context, input SaveJuniorYouthGroupInput, deps SaveJuniorYouthGroupDeps) (SaveJuniorYouthGroupResult, error) {
	res := input.Record.ValidateForm()

	if deps.IndividualStore != nil {
		people := deps.IndividualStore.People(ctx)
		for _, animator := range input.Record.Animators {
			for _, p := range people {
				if p.FullName() == animator && !p.HasCompletedBook(curriculum.AnimatorPrerequisiteBook) {
					res.Errors["animators"] = "Animator " + animator + " has not completed Book 5"
				}
			}
		}
	}

	if !res.Valid() {
		return SaveJuniorYouthGroupResult{Errors: res.Errors}, nil
	}

	saved, err := deps.GroupStore.Save(ctx, input.Record)
	if err != nil {
		return SaveJuniorYouthGroupResult{}, err
	}

	slog.Info("junior youth group saved",
		"id", saved.ID,
		"locality", saved.Locality,
		"book", saved.CurrentBook,
	)
	return SaveJuniorYouthGroupResult{Record: saved}, nil
}
