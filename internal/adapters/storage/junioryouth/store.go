package junioryouth

import (
	"context"

	domain "srp/internal/domain/junioryouth"
)

// Store persists junior youth group records.
type Store interface {
	List(ctx context.Context) []domain.Group
	GetByID(ctx context.Context, id string) (domain.Group, error)
	Save(ctx context.Context, rec domain.Group) (domain.Group, error)
	Update(ctx context.Context, id string, apply func(*domain.Group)) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, term string) []domain.Group
}
