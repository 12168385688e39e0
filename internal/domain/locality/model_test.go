package locality_test

import (
	"testing"

	"srp/internal/domain/locality"
)

func validEntry() locality.Locality {
	return locality.Locality{
		Date:     "2025-06-01",
		Region:   "North",
		Cluster:  "Auckland",
		Locality: "Devonport",
	}
}

// TestLocality_ValidateForm tests the required fields and the count
// checks tied to Yes flags.
func TestLocality_ValidateForm(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*locality.Locality)
		wantKey string
	}{
		{"valid", func(l *locality.Locality) {}, ""},
		{"missing date", func(l *locality.Locality) { l.Date = "" }, "date"},
		{"bad date", func(l *locality.Locality) { l.Date = "June 1st" }, "date"},
		{"missing region", func(l *locality.Locality) { l.Region = "" }, "region"},
		{"missing cluster", func(l *locality.Locality) { l.Cluster = "" }, "cluster"},
		{"missing locality", func(l *locality.Locality) { l.Locality = "" }, "locality"},
		{
			"negative feast attendees when observing",
			func(l *locality.Locality) {
				l.ObservesFeast = locality.Yes
				l.FeastAttendees = -2
			},
			"feastAttendees",
		},
		{
			"negative devotional count when hosting",
			func(l *locality.Locality) {
				l.HasDevotionals = locality.Yes
				l.DevotionalMeetings = -1
			},
			"devotionalMeetings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := validEntry()
			tt.modify(&entry)
			res := entry.ValidateForm()

			if tt.wantKey == "" {
				if !res.Valid() {
					t.Errorf("ValidateForm() errors = %v, want none", res.Errors)
				}
				return
			}
			if res.Valid() {
				t.Fatal("ValidateForm() valid, want error")
			}
			if _, ok := res.Errors[tt.wantKey]; !ok {
				t.Errorf("ValidateForm() errors = %v, want key %q", res.Errors, tt.wantKey)
			}
		})
	}
}

// TestLocality_ValidateForm_CountsIgnoredWhenNo verifies a No flag skips
// the paired count check entirely.
func TestLocality_ValidateForm_CountsIgnoredWhenNo(t *testing.T) {
	entry := validEntry()
	entry.ObservesFeast = locality.No
	entry.FeastAttendees = -5

	if res := entry.ValidateForm(); !res.Valid() {
		t.Errorf("ValidateForm() errors = %v, want none", res.Errors)
	}
}
