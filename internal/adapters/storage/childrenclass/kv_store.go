package childrenclass

import (
	"context"
	"fmt"
	"time"

	"srp/internal/adapters/storage"
	domain "srp/internal/domain/childrenclass"
	"srp/internal/domain/record"
)

// KVStore implements Store over the key-value storage adapter.
type KVStore struct {
	kv storage.KV
}

// Compile-time check that *KVStore satisfies Store.
var _ Store = (*KVStore)(nil)

// NewKVStore creates a children's class store.
func NewKVStore(kv storage.KV) *KVStore {
	return &KVStore{kv: kv}
}

// List returns all class records in insertion order, with defaults
// applied to legacy records lacking a status.
func (s *KVStore) List(ctx context.Context) []domain.Class {
	list := storage.LoadList[domain.Class](ctx, s.kv, storage.KeyChildrenClasses)
	for i := range list {
		list[i].Normalize()
	}
	return list
}

// GetByID retrieves a record by id.
// POST: returns storage.ErrNotFound when no record matches
func (s *KVStore) GetByID(ctx context.Context, id string) (domain.Class, error) {
	for _, rec := range s.List(ctx) {
		if rec.ID == id {
			return rec, nil
		}
	}
	return domain.Class{}, fmt.Errorf("children's class %s: %w", id, storage.ErrNotFound)
}

// Save stamps metadata, appends the record and persists the sequence.
func (s *KVStore) Save(ctx context.Context, rec domain.Class) (domain.Class, error) {
	list := s.List(ctx)
	rec.Meta = record.NewMeta(time.Now())
	rec.Normalize()
	list = append(list, rec)
	if err := storage.StoreList(ctx, s.kv, storage.KeyChildrenClasses, list); err != nil {
		return domain.Class{}, fmt.Errorf("save children's class: %w", err)
	}
	return rec, nil
}

// Update mutates the record with matching id and stamps lastModified.
func (s *KVStore) Update(ctx context.Context, id string, apply func(*domain.Class)) error {
	list := s.List(ctx)
	for i := range list {
		if list[i].ID == id {
			apply(&list[i])
			list[i].Normalize()
			list[i].Touch(time.Now())
			return storage.StoreList(ctx, s.kv, storage.KeyChildrenClasses, list)
		}
	}
	return fmt.Errorf("children's class %s: %w", id, storage.ErrNotFound)
}

// Delete rewrites the sequence without the matching record.
func (s *KVStore) Delete(ctx context.Context, id string) error {
	list := s.List(ctx)
	kept := list[:0]
	for _, rec := range list {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	return storage.StoreList(ctx, s.kv, storage.KeyChildrenClasses, kept)
}

// Search matches term case-insensitively against the string fields of
// each record.
func (s *KVStore) Search(ctx context.Context, term string) []domain.Class {
	var results []domain.Class
	for _, rec := range s.List(ctx) {
		if storage.MatchesTerm(rec, term) {
			results = append(results, rec)
		}
	}
	return results
}
