package childrenclass

import (
	"context"

	domain "srp/internal/domain/childrenclass"
)

// Store persists children's class records.
type Store interface {
	List(ctx context.Context) []domain.Class
	GetByID(ctx context.Context, id string) (domain.Class, error)
	Save(ctx context.Context, rec domain.Class) (domain.Class, error)
	Update(ctx context.Context, id string, apply func(*domain.Class)) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, term string) []domain.Class
}
