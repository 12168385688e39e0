package orchestrators

import (
	"context"
	"log/slog"

	individualStore "srp/internal/adapters/storage/individual"
	domain "srp/internal/domain/individual"
)

// SaveIndividualsInput carries an individuals entry: shared context plus
// one or more person rows entered together.
type SaveIndividualsInput struct {
	Record domain.Entry
}

// SaveIndividualsDeps holds external dependencies for the save
// orchestrator.
type SaveIndividualsDeps struct {
	IndividualStore individualStore.Store
}

// SaveIndividualsResult reports the saved entry or the per-field errors
// that blocked the save. Row errors are keyed field.rowIndex.
type SaveIndividualsResult struct {
	Record domain.Entry
	Errors map[string]string
}

// ExecuteSaveIndividuals validates an individuals entry and persists it.
// POST: on validation failure no record is written
func ExecuteSaveIndividuals(ctx context.Context, input SaveIndividualsInput, deps SaveIndividualsDeps) (SaveIndividualsResult, error) {
	if res := input.Record.ValidateForm(); !res.Valid() {
		return SaveIndividualsResult{Errors: res.Errors}, nil
	}

	saved, err := deps.IndividualStore.Save(ctx, input.Record)
	if err != nil {
		return SaveIndividualsResult{}, err
	}

	slog.Info("individuals saved",
		"id", saved.ID,
		"locality", saved.Locality,
		"people", len(saved.Individuals),
	)
	return SaveIndividualsResult{Record: saved}, nil
}
