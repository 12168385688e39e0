package orchestrators_test

import (
	"context"
	"errors"
	"testing"

	"srp/internal/adapters/storage"
	localityStore "srp/internal/adapters/storage/locality"
	"srp/internal/application/orchestrators"
	localityDomain "srp/internal/domain/locality"
)

func TestExecuteImportBackup(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	fs := newMemFS()
	fs.files["backup.json"] = `{
		"appInfo": {"name": "SI-NSA SRP", "version": "1.0.0"},
		"data": {
			"localities": [{"id": "l1", "locality": "Devonport"}],
			"childrenClasses": [{"id": "c1"}, {"id": "c2"}],
			"sinsa_settings": {"theme": "dark"}
		}
	}`

	result, err := orchestrators.ExecuteImportBackup(ctx,
		orchestrators.ImportBackupInput{Path: "backup.json"},
		orchestrators.ImportBackupDeps{KV: kv, FS: fs},
	)
	if err != nil {
		t.Fatalf("ExecuteImportBackup() error = %v", err)
	}

	if len(result.Keys) != 3 {
		t.Errorf("Keys = %v, want 3 entries", result.Keys)
	}
	if result.Records[storage.KeyLocalities] != 1 {
		t.Errorf("locality count = %d, want 1", result.Records[storage.KeyLocalities])
	}
	if result.Records[storage.KeyChildrenClasses] != 2 {
		t.Errorf("class count = %d, want 2", result.Records[storage.KeyChildrenClasses])
	}
	// non-array values count as one document
	if result.Records["sinsa_settings"] != 1 {
		t.Errorf("settings count = %d, want 1", result.Records["sinsa_settings"])
	}

	// known entity names land under their storage keys
	if _, ok := kv.Values[storage.KeyLocalities]; !ok {
		t.Errorf("stored keys = %v, want %s", kv.Values, storage.KeyLocalities)
	}
	// unknown keys are copied through verbatim
	if _, ok := kv.Values["sinsa_settings"]; !ok {
		t.Errorf("stored keys = %v, want sinsa_settings", kv.Values)
	}
}

// TestExecuteImportBackup_Invalid verifies malformed documents are
// rejected before anything is written.
func TestExecuteImportBackup_Invalid(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		content string
	}{
		{"not json", "{broken"},
		{"missing data key", `{"appInfo": {"name": "x"}}`},
		{"data not an object", `{"data": [1, 2, 3]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := storage.NewMemoryKV()
			_, err := orchestrators.ExecuteImportBackup(ctx,
				orchestrators.ImportBackupInput{Content: tt.content},
				orchestrators.ImportBackupDeps{KV: kv, FS: newMemFS()},
			)
			if !errors.Is(err, orchestrators.ErrInvalidBackup) {
				t.Errorf("error = %v, want ErrInvalidBackup", err)
			}
			if len(kv.Values) != 0 {
				t.Errorf("stored keys = %v, want none written", kv.Values)
			}
		})
	}
}

// TestExportImportRoundTrip exports a populated store and imports the
// document into a fresh one.
func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	source := storage.NewMemoryKV()
	deps := newExportDeps(source, newMemFS())

	deps.LocalityStore.Save(ctx, localityDomain.Locality{
		Date: "2025-06-01", Region: "North", Cluster: "Auckland", Locality: "Devonport",
	})

	exported, err := orchestrators.ExecuteExportJSON(ctx, orchestrators.ExportJSONInput{}, deps)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	target := storage.NewMemoryKV()
	_, err = orchestrators.ExecuteImportBackup(ctx,
		orchestrators.ImportBackupInput{Content: exported.Content},
		orchestrators.ImportBackupDeps{KV: target, FS: newMemFS()},
	)
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	restored := localityStore.NewKVStore(target).List(ctx)
	if len(restored) != 1 {
		t.Fatalf("restored %d localities, want 1", len(restored))
	}
	if restored[0].Locality != "Devonport" {
		t.Errorf("restored locality = %q", restored[0].Locality)
	}
	if restored[0].ID == "" {
		t.Error("restored record lost its id")
	}
}
