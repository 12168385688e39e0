package childrenclass_test

import (
	"testing"

	"srp/internal/domain/childrenclass"
)

func TestClass_Normalize(t *testing.T) {
	c := childrenclass.Class{Locality: "Devonport", Grade: "G1"}
	c.Normalize()
	if c.Status != childrenclass.StatusActive {
		t.Errorf("Normalize() status = %q, want %q", c.Status, childrenclass.StatusActive)
	}

	c.Status = childrenclass.StatusSuspended
	c.Normalize()
	if c.Status != childrenclass.StatusSuspended {
		t.Errorf("Normalize() overwrote status %q", c.Status)
	}
}

func TestClass_IsActive(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"", true},
		{childrenclass.StatusActive, true},
		{childrenclass.StatusCompleted, false},
		{childrenclass.StatusSuspended, false},
	}

	for _, tt := range tests {
		c := childrenclass.Class{Status: tt.status}
		if got := c.IsActive(); got != tt.want {
			t.Errorf("IsActive() with status %q = %v, want %v", tt.status, got, tt.want)
		}
	}
}

// TestClass_ValidateForm tests the class entry checks.
func TestClass_ValidateForm(t *testing.T) {
	tests := []struct {
		name    string
		class   childrenclass.Class
		wantKey string
	}{
		{
			name:  "valid",
			class: childrenclass.Class{Locality: "Devonport", Grade: "G2", TotalParticipants: 8, BahaiParticipants: 3},
		},
		{
			name:    "missing locality",
			class:   childrenclass.Class{Grade: "G2"},
			wantKey: "locality",
		},
		{
			name:    "missing grade",
			class:   childrenclass.Class{Locality: "Devonport"},
			wantKey: "grade",
		},
		{
			name:    "unknown grade",
			class:   childrenclass.Class{Locality: "Devonport", Grade: "G9"},
			wantKey: "grade",
		},
		{
			name:    "bad start date",
			class:   childrenclass.Class{Locality: "Devonport", Grade: "G2", StartDate: "last week"},
			wantKey: "startDate",
		},
		{
			name:    "bahai exceeds total",
			class:   childrenclass.Class{Locality: "Devonport", Grade: "G2", TotalParticipants: 5, BahaiParticipants: 7},
			wantKey: "participants",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.class.ValidateForm()
			if tt.wantKey == "" {
				if !res.Valid() {
					t.Errorf("ValidateForm() errors = %v, want none", res.Errors)
				}
				return
			}
			if _, ok := res.Errors[tt.wantKey]; !ok {
				t.Errorf("ValidateForm() errors = %v, want key %q", res.Errors, tt.wantKey)
			}
		})
	}
}

// Zero participant counts are not validated: many entries record only
// the activity, filling counts in later.
func TestClass_ValidateForm_ZeroCountsPass(t *testing.T) {
	c := childrenclass.Class{Locality: "Devonport", Grade: "G1"}
	if res := c.ValidateForm(); !res.Valid() {
		t.Errorf("ValidateForm() errors = %v, want none", res.Errors)
	}
}
