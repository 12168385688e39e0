package junioryouth

import (
	"context"
	"fmt"
	"time"

	"srp/internal/adapters/storage"
	domain "srp/internal/domain/junioryouth"
	"srp/internal/domain/record"
)

// KVStore implements Store over the key-value storage adapter.
type KVStore struct {
	kv storage.KV
}

// Compile-time check that *KVStore satisfies Store.
var _ Store = (*KVStore)(nil)

// NewKVStore creates a junior youth group store.
func NewKVStore(kv storage.KV) *KVStore {
	return &KVStore{kv: kv}
}

// List returns all group records in insertion order, with defaults
// applied to legacy records lacking a status.
func (s *KVStore) List(ctx context.Context) []domain.Group {
	list := storage.LoadList[domain.Group](ctx, s.kv, storage.KeyJuniorYouthGroups)
	for i := range list {
		list[i].Normalize()
	}
	return list
}

// GetByID retrieves a record by id.
// POST: returns storage.ErrNotFound when no record matches
func (s *KVStore) GetByID(ctx context.Context, id string) (domain.Group, error) {
	for _, rec := range s.List(ctx) {
		if rec.ID == id {
			return rec, nil
		}
	}
	return domain.Group{}, fmt.Errorf("junior youth group %s: %w", id, storage.ErrNotFound)
}

// Save stamps metadata, appends the record and persists the sequence.
func (s *KVStore) Save(ctx context.Context, rec domain.Group) (domain.Group, error) {
	list := s.List(ctx)
	rec.Meta = record.NewMeta(time.Now())
	rec.Normalize()
	list = append(list, rec)
	if err := storage.StoreList(ctx, s.kv, storage.KeyJuniorYouthGroups, list); err != nil {
		return domain.Group{}, fmt.Errorf("save junior youth group: %w", err)
	}
	return rec, nil
}

// Update mutates the record with matching id and stamps lastModified.
func (s *KVStore) Update(ctx context.Context, id string, apply func(*domain.Group)) error {
	list := s.List(ctx)
	for i := range list {
		if list[i].ID == id {
			apply(&list[i])
			list[i].Normalize()
			list[i].Touch(time.Now())
			return storage.StoreList(ctx, s.kv, storage.KeyJuniorYouthGroups, list)
		}
	}
	return fmt.Errorf("junior youth group %s: %w", id, storage.ErrNotFound)
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
	return storage.StoreList(ctx, s.kv, storage.KeyJuniorYouthGroups, kept)
}

// Search matches term case-insensitively against the string fields of
// each record.
func (s *KVStore) Search(ctx context.Context, term string) []domain.Group {
	var results []domain.Group
	for _, rec := range s.List(ctx) {
		if storage.MatchesTerm(rec, term) {
			results = append(results, rec)
		}
	}
	return results
}
