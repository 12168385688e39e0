package individual

import (
	"context"

	domain "srp/internal/domain/individual"
)

// Store persists individual entries.
type Store interface {
	List(ctx context.Context) []domain.Entry
	GetByID(ctx context.Context, id string) (domain.Entry, error)
	Save(ctx context.Context, rec domain.Entry) (domain.Entry, error)
	Update(ctx context.Context, id string, apply func(*domain.Entry)) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, term string) []domain.Entry
	// People flattens every person row across all entries, for the
	// roster pickers that filter by completed books or age category.
	People(ctx context.Context) []domain.Person
}
