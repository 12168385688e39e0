package orchestrators

import (
	"context"
	"log/slog"

	individualStore "srp/internal/adapters/storage/individual"
	circleStore "srp/internal/adapters/storage/studycircle"
	domain "srp/internal/domain/studycircle"
)

// SaveStudyCircleInput carries the circle entry from the form.
type SaveStudyCircleInput struct {
	Record domain.Circle
}

// SaveStudyCircleDeps holds external dependencies for the save
// orchestrator. IndividualStore is optional: when nil the tutor
// prerequisite is not checked.
type SaveStudyCircleDeps struct {
	CircleStore     circleStore.Store
	IndividualStore individualStore.Store
}

// SaveStudyCircleResult reports the saved record or the per-field errors
// that blocked the save.
type SaveStudyCircleResult struct {
	Record domain.Circle
	Errors map[string]string
}

// ExecuteSaveStudyCircle validates a study circle entry and persists it.
// Tutor references that resolve to a known person must have completed
// the book being taught; unresolved references pass through as free
// text.
// POST: on validation failure no record is written
func ExecuteSaveStudyCircle(ctx context.Context, input SaveStudyCircleInput, deps SaveStudyCircleDeps) (SaveStudyCircleResult, error) {
	res := input.Record.ValidateForm()

	if deps.IndividualStore != nil && input.Record.Book != "" {
		people := deps.IndividualStore.People(ctx)
		for _, tutor := range input.Record.Tutors {
			for _, p := range people {
				if p.FullName() == tutor && !p.HasCompletedBook(input.Record.Book) {
					res.Errors["tutors"] = "Tutor " + tutor + " has not completed " + input.Record.Book
				}
			}
		}
	}

	if !res.Valid() {
		return SaveStudyCircleResult{Errors: res.Errors}, nil
	}

	saved, err := deps.CircleStore.Save(ctx, input.Record)
	if err != nil {
		return SaveStudyCircleResult{}, err
	}

	slog.Info("study circle saved",
		"id", saved.ID,
		"locality", saved.Locality,
		"book", saved.Book,
		"progress", saved.Progress,
	)
	return SaveStudyCircleResult{Record: saved}, nil
}
