package locality

import (
	"context"
	"fmt"
	"time"

	"srp/internal/adapters/storage"
	domain "srp/internal/domain/locality"
	"srp/internal/domain/record"
)

// KVStore implements Store over the key-value storage adapter.
type KVStore struct {
	kv storage.KV
}

// Compile-time check that *KVStore satisfies Store.
var _ Store = (*KVStore)(nil)

// NewKVStore creates a locality store.
func NewKVStore(kv storage.KV) *KVStore {
	return &KVStore{kv: kv}
}

// List returns all locality records in insertion order.
func (s *KVStore) List(ctx context.Context) []domain.Locality {
	return storage.LoadList[domain.Locality](ctx, s.kv, storage.KeyLocalities)
}

// GetByID retrieves a record by id.
// POST: returns storage.ErrNotFound when no record matches
func (s *KVStore) GetByID(ctx context.Context, id string) (domain.Locality, error) {
	for _, rec := range s.List(ctx) {
		if rec.ID == id {
			return rec, nil
		}
	}
	return domain.Locality{}, fmt.Errorf("locality %s: %w", id, storage.ErrNotFound)
}

// Save stamps metadata, appends the record and persists the sequence.
// POST: on error the stored sequence is unchanged
func (s *KVStore) Save(ctx context.Context, rec domain.Locality) (domain.Locality, error) {
	list := s.List(ctx)
	rec.Meta = record.NewMeta(time.Now())
	list = append(list, rec)
	if err := storage.StoreList(ctx, s.kv, storage.KeyLocalities, list); err != nil {
		return domain.Locality{}, fmt.Errorf("save locality: %w", err)
	}
	return rec, nil
}

// Update mutates the first record with matching id and stamps
// lastModified.
// POST: the store is unchanged when the id is absent or the write fails
func (s *KVStore) Update(ctx context.Context, id string, apply func(*domain.Locality)) error {
	list := s.List(ctx)
	for i := range list {
		if list[i].ID == id {
			apply(&list[i])
			list[i].Touch(time.Now())
			return storage.StoreList(ctx, s.kv, storage.KeyLocalities, list)
		}
	}
	return fmt.Errorf("locality %s: %w", id, storage.ErrNotFound)
}

// Delete rewrites the sequence without the matching record. Deleting a
// missing id succeeds.
func (s *KVStore) Delete(ctx context.Context, id string) error {
	list := s.List(ctx)
	kept := list[:0]
	for _, rec := range list {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	return storage.StoreList(ctx, s.kv, storage.KeyLocalities, kept)
}

// Search matches term case-insensitively against the string fields of
// each record.
func (s *KVStore) Search(ctx context.Context, term string) []domain.Locality {
	var results []domain.Locality
	for _, rec := range s.List(ctx) {
		if storage.MatchesTerm(rec, term) {
			results = append(results, rec)
		}
	}
	return results
}
