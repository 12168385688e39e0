package orchestrators

import (
	"context"
	"log/slog"

	localityStore "srp/internal/adapters/storage/locality"
	domain "srp/internal/domain/locality"
)

// SaveLocalityInput carries the locality entry from the form.
type SaveLocalityInput struct {
	Record domain.Locality
}

// SaveLocalityDeps holds external dependencies for the save orchestrator.
type SaveLocalityDeps struct {
	LocalityStore localityStore.Store
}

// SaveLocalityResult reports the saved record or the per-field errors
// that blocked the save.
type SaveLocalityResult struct {
	Record domain.Locality
	Errors map[string]string
}

// ExecuteSaveLocality validates a locality entry and persists it.
// PRE: deps.LocalityStore is non-nil
// POST: on validation failure no record is written and Errors is
// populated; on success the stored record carries stamped metadata
func ExecuteSaveLocality(ctx context.Context, input SaveLocalityInput, deps SaveLocalityDeps) (SaveLocalityResult, error) {
	if res := input.Record.ValidateForm(); !res.Valid() {
		return SaveLocalityResult{Errors: res.Errors}, nil
	}

	saved, err := deps.LocalityStore.Save(ctx, input.Record)
	if err != nil {
		return SaveLocalityResult{}, err
	}

	slog.Info("locality saved", "id", saved.ID, "locality", saved.Locality, "cluster", saved.Cluster)
	return SaveLocalityResult{Record: saved}, nil
}
