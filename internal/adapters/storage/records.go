package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"reflect"
	"strings"
)

// Storage keys, one per entity type. The settings and backup keys are
// reserved: nothing writes them today, but imports copy them through
// verbatim when present in a backup file.
const (
	KeyLocalities        = "sinsa_localities"
	KeyIndividuals       = "sinsa_individuals"
	KeyChildrenClasses   = "sinsa_children_classes"
	KeyJuniorYouthGroups = "sinsa_junior_youth_groups"
	KeyStudyCircles      = "sinsa_study_circles"
	KeySettings          = "sinsa_settings"
	KeyBackup            = "sinsa_backup"
)

// EntityKeys maps the entity type names used in backup files to their
// storage keys.
var EntityKeys = map[string]string{
	"localities":        KeyLocalities,
	"individuals":       KeyIndividuals,
	"childrenClasses":   KeyChildrenClasses,
	"juniorYouthGroups": KeyJuniorYouthGroups,
	"studyCircles":      KeyStudyCircles,
}

// Errors shared by the entity stores.
var (
	ErrNotFound    = errors.New("record not found")
	ErrWriteFailed = errors.New("storage write failed")
)

// LoadList reads the record array stored under key. Absent keys and
// malformed JSON both yield an empty list: corruption is logged and
// swallowed, never surfaced to the caller.
func LoadList[T any](ctx context.Context, kv KV, key string) []T {
	value, found, err := kv.Get(ctx, key)
	if err != nil {
		slog.Warn("storage read failed, treating as empty", "key", key, "error", err)
		return nil
	}
	if !found || value == "" {
		return nil
	}

	var list []T
	if err := json.Unmarshal([]byte(value), &list); err != nil {
		slog.Warn("malformed stored data, treating as empty", "key", key, "error", err)
		return nil
	}
	return list
}

// StoreList rewrites the whole record array under key. Every mutating
// operation persists the full sequence; acceptable at the expected scale
// of tens to low thousands of records.
func StoreList[T any](ctx context.Context, kv KV, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	encoded, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return kv.Set(ctx, key, string(encoded))
}

// MatchesTerm reports whether any string-valued top-level field of the
// record contains term, case-insensitively. Fields of embedded structs
// count as top-level, matching the flattened persisted shape; other
// non-string fields are not searched.
func MatchesTerm(rec any, term string) bool {
	term = strings.ToLower(term)
	return matchesValue(reflect.ValueOf(rec), term)
}

func matchesValue(v reflect.Value, term string) bool {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return false
	}
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := v.Field(i)
		switch {
		case fv.Kind() == reflect.String:
			if strings.Contains(strings.ToLower(fv.String()), term) {
				return true
			}
		case field.Anonymous:
			if matchesValue(fv, term) {
				return true
			}
		}
	}
	return false
}
