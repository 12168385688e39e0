package orchestrators_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"srp/internal/adapters/storage"
	classStore "srp/internal/adapters/storage/childrenclass"
	individualStore "srp/internal/adapters/storage/individual"
	groupStore "srp/internal/adapters/storage/junioryouth"
	localityStore "srp/internal/adapters/storage/locality"
	circleStore "srp/internal/adapters/storage/studycircle"
	"srp/internal/application/orchestrators"
	classDomain "srp/internal/domain/childrenclass"
	individualDomain "srp/internal/domain/individual"
	localityDomain "srp/internal/domain/locality"
)

// memFS is an in-memory file capability for export and import tests.
type memFS struct {
	files map[string]string
}

func newMemFS() *memFS { return &memFS{files: make(map[string]string)} }

func (m *memFS) WriteFile(path, content string) error {
	m.files[path] = content
	return nil
}

func (m *memFS) ReadFile(path string) (string, error) {
	content, ok := m.files[path]
	if !ok {
		return "", errors.New("file not found: " + path)
	}
	return content, nil
}

func newExportDeps(kv *storage.MemoryKV, fs *memFS) orchestrators.ExportDeps {
	return orchestrators.ExportDeps{
		LocalityStore:   localityStore.NewKVStore(kv),
		IndividualStore: individualStore.NewKVStore(kv),
		ClassStore:      classStore.NewKVStore(kv),
		GroupStore:      groupStore.NewKVStore(kv),
		CircleStore:     circleStore.NewKVStore(kv),
		FS:              fs,
	}
}

func TestExecuteExportJSON(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	fs := newMemFS()
	deps := newExportDeps(kv, fs)

	deps.LocalityStore.Save(ctx, localityDomain.Locality{
		Date: "2025-06-01", Region: "North", Cluster: "Auckland", Locality: "Devonport",
	})

	result, err := orchestrators.ExecuteExportJSON(ctx,
		orchestrators.ExportJSONInput{Path: "backup.json"}, deps)
	if err != nil {
		t.Fatalf("ExecuteExportJSON() error = %v", err)
	}

	if result.Payload.Statistics.TotalLocalities != 1 {
		t.Errorf("TotalLocalities = %d, want 1", result.Payload.Statistics.TotalLocalities)
	}
	written, ok := fs.files["backup.json"]
	if !ok {
		t.Fatal("backup file not written")
	}
	if written != result.Content {
		t.Error("written file differs from returned content")
	}
	if !strings.Contains(written, `"name": "SI-NSA SRP"`) {
		t.Errorf("backup missing app info, got:\n%s", written[:200])
	}
}

// TestExecuteExportCSV_Escaping verifies RFC 4180 quoting of fields
// containing commas and quotes.
func TestExecuteExportCSV_Escaping(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	deps := newExportDeps(kv, newMemFS())

	deps.IndividualStore.Save(ctx, individualDomain.Entry{
		Region: "North", Cluster: "Auckland", Locality: "Devonport",
		Individuals: []individualDomain.Person{
			{FirstName: `Smith, John "Jr."`, Sex: "M"},
		},
	})

	result, err := orchestrators.ExecuteExportCSV(ctx,
		orchestrators.ExportCSVInput{EntityType: "individuals"}, deps)
	if err != nil {
		t.Fatalf("ExecuteExportCSV() error = %v", err)
	}
	if !strings.Contains(result.Content, `"Smith, John ""Jr."""`) {
		t.Errorf("field not escaped, got:\n%s", result.Content)
	}
	if result.Rows != 1 {
		t.Errorf("Rows = %d, want 1", result.Rows)
	}
}

// TestExecuteExportCSV_ZeroCountsBlank verifies zero participant counts
// render as empty fields.
func TestExecuteExportCSV_ZeroCountsBlank(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	deps := newExportDeps(kv, newMemFS())

	deps.ClassStore.Save(ctx, classDomain.Class{Locality: "Devonport", Grade: "G1"})

	result, err := orchestrators.ExecuteExportCSV(ctx,
		orchestrators.ExportCSVInput{EntityType: "childrenClasses"}, deps)
	if err != nil {
		t.Fatalf("ExecuteExportCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(result.Content), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want header plus one row", len(lines))
	}
	if !strings.HasSuffix(lines[1], ",,") {
		t.Errorf("zero counts not blank: %q", lines[1])
	}
}

func TestExecuteExportCSV_NoRecords(t *testing.T) {
	ctx := context.Background()
	deps := newExportDeps(storage.NewMemoryKV(), newMemFS())

	_, err := orchestrators.ExecuteExportCSV(ctx,
		orchestrators.ExportCSVInput{EntityType: "localities"}, deps)
	if !errors.Is(err, orchestrators.ErrNoRecords) {
		t.Errorf("error = %v, want ErrNoRecords", err)
	}
}

func TestExecuteExportCSV_UnknownEntity(t *testing.T) {
	ctx := context.Background()
	deps := newExportDeps(storage.NewMemoryKV(), newMemFS())

	if _, err := orchestrators.ExecuteExportCSV(ctx,
		orchestrators.ExportCSVInput{EntityType: "settings"}, deps); err == nil {
		t.Error("error = nil, want unknown entity type failure")
	}
}
