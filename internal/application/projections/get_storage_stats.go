package projections

import (
	"context"
	"encoding/json"
	"sort"

	"srp/internal/adapters/storage"
)

// GetStorageStatsDeps holds the key-value surface to inspect.
type GetStorageStatsDeps struct {
	KV storage.KV
}

// KeyStats describes one storage key.
type KeyStats struct {
	Key         string
	SizeBytes   int
	RecordCount int
}

// StorageStatsResult lists every stored key with its size and record
// count, for the maintenance tools view.
type StorageStatsResult struct {
	Keys       []KeyStats
	TotalBytes int
}

// QueryGetStorageStats inspects every stored key.
// POST: non-array values count as a single record
func QueryGetStorageStats(ctx context.Context, deps GetStorageStatsDeps) (StorageStatsResult, error) {
	keys, err := deps.KV.Keys(ctx)
	if err != nil {
		return StorageStatsResult{}, err
	}
	sort.Strings(keys)

	var result StorageStatsResult
	for _, key := range keys {
		value, found, err := deps.KV.Get(ctx, key)
		if err != nil || !found {
			continue
		}
		stats := KeyStats{Key: key, SizeBytes: len(value), RecordCount: 1}
		var list []json.RawMessage
		if err := json.Unmarshal([]byte(value), &list); err == nil {
			stats.RecordCount = len(list)
		}
		result.Keys = append(result.Keys, stats)
		result.TotalBytes += stats.SizeBytes
	}
	return result, nil
}
