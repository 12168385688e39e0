package individual

import (
	"context"
	"fmt"
	"time"

	"srp/internal/adapters/storage"
	domain "srp/internal/domain/individual"
	"srp/internal/domain/record"
)

// KVStore implements Store over the key-value storage adapter.
type KVStore struct {
	kv storage.KV
}

// Compile-time check that *KVStore satisfies Store.
var _ Store = (*KVStore)(nil)

// NewKVStore creates an individual store.
func NewKVStore(kv storage.KV) *KVStore {
	return &KVStore{kv: kv}
}

// List returns all entries in insertion order.
func (s *KVStore) List(ctx context.Context) []domain.Entry {
	return storage.LoadList[domain.Entry](ctx, s.kv, storage.KeyIndividuals)
}

// GetByID retrieves an entry by id.
// POST: returns storage.ErrNotFound when no entry matches
func (s *KVStore) GetByID(ctx context.Context, id string) (domain.Entry, error) {
	for _, rec := range s.List(ctx) {
		if rec.ID == id {
			return rec, nil
		}
	}
	return domain.Entry{}, fmt.Errorf("individual entry %s: %w", id, storage.ErrNotFound)
}

// Save stamps metadata, appends the entry and persists the sequence.
func (s *KVStore) Save(ctx context.Context, rec domain.Entry) (domain.Entry, error) {
	list := s.List(ctx)
	rec.Meta = record.NewMeta(time.Now())
	list = append(list, rec)
	if err := storage.StoreList(ctx, s.kv, storage.KeyIndividuals, list); err != nil {
		return domain.Entry{}, fmt.Errorf("save individual entry: %w", err)
	}
	return rec, nil
}

// Update mutates the entry with matching id and stamps lastModified.
func (s *KVStore) Update(ctx context.Context, id string, apply func(*domain.Entry)) error {
	list := s.List(ctx)
	for i := range list {
		if list[i].ID == id {
			apply(&list[i])
			list[i].Touch(time.Now())
			return storage.StoreList(ctx, s.kv, storage.KeyIndividuals, list)
		}
	}
	return fmt.Errorf("individual entry %s: %w", id, storage.ErrNotFound)
}

// Delete rewrites the sequence without the matching entry.
func (s *KVStore) Delete(ctx context.Context, id string) error {
	list := s.List(ctx)
	kept := list[:0]
	for _, rec := range list {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	return storage.StoreList(ctx, s.kv, storage.KeyIndividuals, kept)
}

// Search matches term against entry-level string fields and every person
// row inside each entry.
func (s *KVStore) Search(ctx context.Context, term string) []domain.Entry {
	var results []domain.Entry
	for _, rec := range s.List(ctx) {
		if storage.MatchesTerm(rec, term) {
			results = append(results, rec)
			continue
		}
		for _, p := range rec.Individuals {
			if storage.MatchesTerm(p, term) {
				results = append(results, rec)
				break
			}
		}
	}
	return results
}

// People flattens all person rows across entries.
func (s *KVStore) People(ctx context.Context) []domain.Person {
	var people []domain.Person
	for _, rec := range s.List(ctx) {
		people = append(people, rec.Individuals...)
	}
	return people
}
