package locality

import (
	"context"

	domain "srp/internal/domain/locality"
)

// Store persists locality records.
type Store interface {
	// List returns every stored record. Absent or corrupt data reads as
	// an empty list, never an error.
	List(ctx context.Context) []domain.Locality
	GetByID(ctx context.Context, id string) (domain.Locality, error)
	// Save stamps metadata, appends and persists. On a storage failure
	// nothing is appended.
	Save(ctx context.Context, rec domain.Locality) (domain.Locality, error)
	// Update applies a mutation to the record with matching id and
	// stamps lastModified. Missing ids fail with storage.ErrNotFound.
	Update(ctx context.Context, id string, apply func(*domain.Locality)) error
	// Delete removes the record with matching id; a missing id is a
	// successful no-op.
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, term string) []domain.Locality
}
