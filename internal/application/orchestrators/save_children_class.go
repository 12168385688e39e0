package orchestrators

import (
	"context"
	"log/slog"

	classStore "srp/internal/adapters/storage/childrenclass"
	domain "srp/internal/domain/childrenclass"
)

// SaveChildrenClassInput carries the class entry from the form.
type SaveChildrenClassInput struct {
	Record domain.Class
}

// SaveChildrenClassDeps holds external dependencies for the save
// orchestrator.
type SaveChildrenClassDeps struct {
	ClassStore classStore.Store
}

// SaveChildrenClassResult reports the saved record or the per-field
// errors that blocked the save.
type SaveChildrenClassResult struct {
	Record domain.Class
	Errors map[string]string
}

// ExecuteSaveChildrenClass validates a children's class entry and
// persists it.
// POST: on validation failure no record is written
func ExecuteSaveChildrenClass(ctx context.Context, input SaveChildrenClassInput, deps SaveChildrenClassDeps) (SaveChildrenClassResult, error) {
	if res := input.Record.ValidateForm(); !res.Valid() {
		return SaveChildrenClassResult{Errors: res.Errors}, nil
	}

	saved, err := deps.ClassStore.Save(ctx, input.Record)
	if err != nil {
		return SaveChildrenClassResult{}, err
	}

	slog.Info("children's class saved", "id", saved.ID, "locality", saved.Locality, "grade", saved.Grade)
	return SaveChildrenClassResult{Record: saved}, nil
}
