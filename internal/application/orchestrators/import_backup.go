package orchestrators

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"srp/internal/adapters/files"
	"srp/internal/adapters/storage"
)

// ErrInvalidBackup rejects a payload without a data section. Nothing is
// written when this is returned.
var ErrInvalidBackup = errors.New("invalid import data format")

// ImportBackupInput carries the backup document. When Content is empty
// the document is read from Path through the host file capability.
type ImportBackupInput struct {
	Path    string
	Content string
}

// ImportBackupDeps holds external dependencies for the import
// orchestrator. The importer writes whole arrays, so it works directly
// against the key-value surface rather than the per-entity stores.
type ImportBackupDeps struct {
	KV storage.KV
	FS files.FileSystem
}

// ImportBackupResult reports which storage keys were overwritten and how
// many records each now holds.
type ImportBackupResult struct {
	Keys    []string
	Records map[string]int
}

// ExecuteImportBackup replaces stored data with the contents of a backup
// document. Each key under data is written wholesale: no merge, no
// dedup against existing records. Known entity names map onto their
// storage keys; unknown keys are copied through verbatim.
// PRE: the payload carries a data object; otherwise nothing is written
// POST: a storage failure partway through leaves earlier keys written;
// the import is validated up front but is not transactional
func ExecuteImportBackup(ctx context.Context, input ImportBackupInput, deps ImportBackupDeps) (ImportBackupResult, error) {
	content := input.Content
	if content == "" {
		read, err := deps.FS.ReadFile(input.Path)
		if err != nil {
			return ImportBackupResult{}, fmt.Errorf("read backup: %w", err)
		}
		content = read
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return ImportBackupResult{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	rawData, ok := doc["data"]
	if !ok {
		return ImportBackupResult{}, ErrInvalidBackup
	}

	var data map[string]json.RawMessage
	if err := json.Unmarshal(rawData, &data); err != nil {
		return ImportBackupResult{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}

	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)

	result := ImportBackupResult{Records: make(map[string]int)}
	for _, name := range names {
		key, known := storage.EntityKeys[name]
		if !known {
			key = name
		}
		if err := deps.KV.Set(ctx, key, string(data[name])); err != nil {
			return result, fmt.Errorf("import %q: %w", name, err)
		}
		result.Keys = append(result.Keys, key)
		result.Records[key] = countRecords(data[name])
	}

	slog.Info("backup imported", "path", input.Path, "keys", len(result.Keys))
	return result, nil
}

// countRecords reports the array length of an imported value, or 1 for a
// non-array document.
func countRecords(raw json.RawMessage) int {
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return 1
	}
	return len(list)
}
