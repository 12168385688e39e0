package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"srp/internal/adapters/storage"
)

// ClearDataDeps holds the key-value surface to wipe.
type ClearDataDeps struct {
	KV storage.KV
}

// ClearDataResult reports what was removed.
type ClearDataResult struct {
	KeysRemoved int
}

// ExecuteClearData removes every stored key. The shell is responsible
// for the two consecutive confirmations before calling this.
// POST: the storage namespace is empty
func ExecuteClearData(ctx context.Context, deps ClearDataDeps) (ClearDataResult, error) {
	keys, err := deps.KV.Keys(ctx)
	if err != nil {
		return ClearDataResult{}, fmt.Errorf("list storage keys: %w", err)
	}

	for _, key := range keys {
		if err := deps.KV.Delete(ctx, key); err != nil {
			return ClearDataResult{}, fmt.Errorf("clear %q: %w", key, err)
		}
	}

	slog.Info("all data cleared", "keys", len(keys))
	return ClearDataResult{KeysRemoved: len(keys)}, nil
}
