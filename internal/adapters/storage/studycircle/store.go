package studycircle

import (
	"context"

	domain "srp/internal/domain/studycircle"
)

// Store persists study circle records.
type Store interface {
	List(ctx context.Context) []domain.Circle
	GetByID(ctx context.Context, id string) (domain.Circle, error)
	Save(ctx context.Context, rec domain.Circle) (domain.Circle, error)
	Update(ctx context.Context, id string, apply func(*domain.Circle)) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, term string) []domain.Circle
}
