package studycircle_test

import (
	"errors"
	"testing"
	"time"

	"srp/internal/domain/studycircle"
)

func TestCircle_Normalize(t *testing.T) {
	c := studycircle.Circle{Locality: "Devonport", Book: "book1", Unit: 2}
	c.Normalize()

	if c.Status != studycircle.StatusActive {
		t.Errorf("Normalize() status = %q, want %q", c.Status, studycircle.StatusActive)
	}
	if c.Progress != 67 {
		t.Errorf("Normalize() progress = %d, want 67", c.Progress)
	}
}

func TestCircle_Recalculate(t *testing.T) {
	tests := []struct {
		name   string
		circle studycircle.Circle
		want   int
	}{
		{"unit 1 of 3", studycircle.Circle{Book: "book1", Unit: 1}, 33},
		{"unit 3 of 3", studycircle.Circle{Book: "book1", Unit: 3}, 100},
		{"zero unit", studycircle.Circle{Book: "book1", Unit: 0}, 0},
		{"completed forces 100", studycircle.Circle{Book: "book1", Unit: 1, Status: studycircle.StatusCompleted}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.circle.Recalculate()
			if tt.circle.Progress != tt.want {
				t.Errorf("Progress = %d, want %d", tt.circle.Progress, tt.want)
			}
		})
	}
}

func TestCircle_SetBook(t *testing.T) {
	c := studycircle.Circle{Book: "book1", Unit: 3, Progress: 100}

	if err := c.SetBook("book2"); err != nil {
		t.Fatalf("SetBook(book2) error = %v", err)
	}
	if c.Book != "book2" || c.Unit != 1 {
		t.Errorf("after SetBook: book = %q, unit = %d, want book2, 1", c.Book, c.Unit)
	}
	if c.Progress != 33 {
		t.Errorf("after SetBook: progress = %d, want 33", c.Progress)
	}

	if err := c.SetBook("book99"); !errors.Is(err, studycircle.ErrUnknownBook) {
		t.Errorf("SetBook(book99) error = %v, want ErrUnknownBook", err)
	}
}

func TestCircle_SetUnit(t *testing.T) {
	c := studycircle.Circle{Book: "book1", Unit: 1}

	if err := c.SetUnit(3); err != nil {
		t.Fatalf("SetUnit(3) error = %v", err)
	}
	if c.Progress != 100 {
		t.Errorf("progress = %d, want 100", c.Progress)
	}

	if err := c.SetUnit(0); !errors.Is(err, studycircle.ErrUnitRange) {
		t.Errorf("SetUnit(0) error = %v, want ErrUnitRange", err)
	}
	if err := c.SetUnit(4); !errors.Is(err, studycircle.ErrUnitRange) {
		t.Errorf("SetUnit(4) error = %v, want ErrUnitRange", err)
	}
}

func TestCircle_MarkCompleted(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	c := studycircle.Circle{Book: "book1", Unit: 2, Status: studycircle.StatusActive}

	c.MarkCompleted(now)

	if c.Status != studycircle.StatusCompleted {
		t.Errorf("Status = %q, want completed", c.Status)
	}
	if c.Unit != 3 || c.Progress != 100 {
		t.Errorf("Unit = %d, Progress = %d, want 3 and 100", c.Unit, c.Progress)
	}
	if c.CompletedDate != "2025-06-01" {
		t.Errorf("CompletedDate = %q", c.CompletedDate)
	}

	// a pre-existing completion date is kept
	c2 := studycircle.Circle{Book: "book1", CompletedDate: "2025-01-01"}
	c2.MarkCompleted(now)
	if c2.CompletedDate != "2025-01-01" {
		t.Errorf("CompletedDate = %q, want original kept", c2.CompletedDate)
	}
}

func TestCircle_ValidateForm(t *testing.T) {
	tests := []struct {
		name    string
		circle  studycircle.Circle
		wantKey string
	}{
		{
			name:   "valid",
			circle: studycircle.Circle{Locality: "Devonport", Book: "book1", Unit: 1},
		},
		{
			name:    "missing book",
			circle:  studycircle.Circle{Locality: "Devonport"},
			wantKey: "book",
		},
		{
			name:    "unknown book",
			circle:  studycircle.Circle{Locality: "Devonport", Book: "book42", Unit: 1},
			wantKey: "book",
		},
		{
			name:    "unit out of range",
			circle:  studycircle.Circle{Locality: "Devonport", Book: "book1", Unit: 9},
			wantKey: "unit",
		},
		{
			name:    "bahai exceeds total",
			circle:  studycircle.Circle{Locality: "Devonport", Book: "book1", Unit: 1, TotalParticipants: 2, BahaiParticipants: 4},
			wantKey: "participants",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.circle.ValidateForm()
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
