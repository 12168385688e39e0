package record_test

import (
	"testing"
	"time"

	"srp/internal/domain/record"
)

func TestNewMeta(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.FixedZone("NZST", 12*3600))
	m := record.NewMeta(now)

	if m.ID == "" {
		t.Error("NewMeta ID is empty")
	}
	if len(m.ID) != 36 {
		t.Errorf("NewMeta ID = %q, want UUID form", m.ID)
	}
	if !m.Timestamp.Equal(now) {
		t.Errorf("Timestamp = %v, want %v", m.Timestamp, now)
	}
	if m.Timestamp.Location() != time.UTC {
		t.Errorf("Timestamp location = %v, want UTC", m.Timestamp.Location())
	}
	if m.Version != record.StorageVersion {
		t.Errorf("Version = %q, want %q", m.Version, record.StorageVersion)
	}
	if m.LastModified != nil {
		t.Errorf("LastModified = %v, want nil on creation", m.LastModified)
	}

	other := record.NewMeta(now)
	if other.ID == m.ID {
		t.Error("two NewMeta calls produced the same ID")
	}
}

func TestMeta_Touch(t *testing.T) {
	m := record.NewMeta(time.Now())
	later := time.Date(2025, 7, 2, 9, 0, 0, 0, time.UTC)
	m.Touch(later)

	if m.LastModified == nil {
		t.Fatal("LastModified nil after Touch")
	}
	if !m.LastModified.Equal(later) {
		t.Errorf("LastModified = %v, want %v", m.LastModified, later)
	}
}
