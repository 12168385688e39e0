package export_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"srp/internal/domain/childrenclass"
	"srp/internal/domain/export"
	"srp/internal/domain/locality"
	"srp/internal/domain/studycircle"
)

func TestNewPayload(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	data := export.Data{
		Localities:      []locality.Locality{{Locality: "Devonport"}},
		ChildrenClasses: []childrenclass.Class{{Locality: "Devonport"}, {Locality: "Takapuna"}},
		StudyCircles:    []studycircle.Circle{{Locality: "Devonport"}},
	}

	p := export.NewPayload(data, now)

	if p.AppInfo.Name != export.AppName || p.AppInfo.Version != export.AppVersion {
		t.Errorf("AppInfo = %+v", p.AppInfo)
	}
	if !p.AppInfo.ExportDate.Equal(now) {
		t.Errorf("ExportDate = %v, want %v", p.AppInfo.ExportDate, now)
	}
	if p.Statistics.TotalLocalities != 1 {
		t.Errorf("TotalLocalities = %d, want 1", p.Statistics.TotalLocalities)
	}
	if p.Statistics.TotalIndividuals != 0 {
		t.Errorf("TotalIndividuals = %d, want 0", p.Statistics.TotalIndividuals)
	}
	if p.Statistics.TotalActivities != 3 {
		t.Errorf("TotalActivities = %d, want 3", p.Statistics.TotalActivities)
	}
}

// TestPayload_ToJSON verifies the document shape consumers rely on:
// appInfo, a data object with one array per entity type, and the
// duplicated statistics block.
func TestPayload_ToJSON(t *testing.T) {
	p := export.NewPayload(export.Data{}, time.Now())
	encoded, err := p.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(encoded, &doc); err != nil {
		t.Fatalf("output not valid JSON: %v", err)
	}
	for _, key := range []string{"appInfo", "data", "statistics"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("document missing %q", key)
		}
	}

	var data map[string]json.RawMessage
	if err := json.Unmarshal(doc["data"], &data); err != nil {
		t.Fatalf("data not an object: %v", err)
	}
	for _, name := range export.EntityTypes {
		raw, ok := data[name]
		if !ok {
			t.Errorf("data missing entity array %q", name)
			continue
		}
		// empty entity sets serialize as [], not null
		if strings.TrimSpace(string(raw)) == "null" {
			t.Errorf("data[%q] = null, want empty array", name)
		}
	}
}
