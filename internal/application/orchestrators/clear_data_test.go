package orchestrators_test

import (
	"context"
	"testing"

	"srp/internal/adapters/storage"
	"srp/internal/application/orchestrators"
)

func TestExecuteClearData(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	kv.Values[storage.KeyLocalities] = `[{"id":"l1"}]`
	kv.Values[storage.KeyStudyCircles] = `[{"id":"s1"}]`

	result, err := orchestrators.ExecuteClearData(ctx, orchestrators.ClearDataDeps{KV: kv})
	if err != nil {
		t.Fatalf("ExecuteClearData() error = %v", err)
	}
	if result.KeysRemoved != 2 {
		t.Errorf("KeysRemoved = %d, want 2", result.KeysRemoved)
	}
	if len(kv.Values) != 0 {
		t.Errorf("stored keys = %v, want none", kv.Values)
	}
}
