package studycircle

import (
	"errors"
	"time"

	"srp/internal/domain/curriculum"
	"srp/internal/domain/record"
	"srp/internal/domain/validate"
)

// Circle status values. A record with no status counts as active.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusSuspended = "suspended"
	StatusOngoing   = "ongoing"
)

// Domain errors.
var (
	ErrUnknownBook = errors.New("unknown study circle book")
	ErrUnitRange   = errors.New("unit is out of range for the book")
)

// Participant is one person on the circle roster with a per-participant
// completion flag.
type Participant struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// Circle is one study circle record. Tutors reference individual records
// by id; the prerequisite (completion of the book being taught) is
// checked at entry time, not enforced at rest.
type Circle struct {
	record.Meta

	Locality          string        `json:"locality"`
	Tutors            []string      `json:"tutors,omitempty"`
	Book              string        `json:"book"`
	Unit              int           `json:"unit"`
	Progress          int           `json:"progress"`
	Participants      []Participant `json:"participants,omitempty"`
	TotalParticipants int           `json:"totalParticipants"`
	BahaiParticipants int           `json:"bahaiParticipants"`
	StartDate         string        `json:"startDate,omitempty"`
	CompletedDate     string        `json:"completedDate,omitempty"`
	Status            string        `json:"status"`
}

// Normalize applies the declared defaults and recomputes the derived
// progress so read sites never see a missing status or a stale
// percentage. A completed circle always reads 100.
func (c *Circle) Normalize() {
	if c.Status == "" {
		c.Status = StatusActive
	}
	c.Recalculate()
}

// Recalculate refreshes Progress from the current book and unit.
// POST: Progress = round(100*unit/units), forced to 100 when completed
func (c *Circle) Recalculate() {
	if c.Status == StatusCompleted {
		c.Progress = 100
		return
	}
	c.Progress = curriculum.Progress(c.Book, c.Unit)
}

// IsActive reports whether the circle counts toward active participation.
func (c *Circle) IsActive() bool {
	return c.Status == StatusActive || c.Status == ""
}

// IsCompleted reports whether the circle finished its book.
func (c *Circle) IsCompleted() bool {
	return c.Status == StatusCompleted
}

// SetBook changes the book being studied and resets the unit.
// POST: Unit is 1 and Progress reflects the new book
func (c *Circle) SetBook(bookID string) error {
	if _, ok := curriculum.FindRuhiBook(bookID); !ok {
		return ErrUnknownBook
	}
	c.Book = bookID
	c.Unit = 1
	c.Recalculate()
	return nil
}

// SetUnit moves the circle to a unit of the current book.
// PRE: 1 <= unit <= units(book)
// POST: Progress reflects the new unit
func (c *Circle) SetUnit(unit int) error {
	if unit < 1 || unit > curriculum.BookUnits(c.Book) {
		return ErrUnitRange
	}
	c.Unit = unit
	c.Recalculate()
	return nil
}

// MarkCompleted finishes the circle.
// POST: Status is completed, Progress 100, Unit at the book's last unit,
// CompletedDate set when previously empty
func (c *Circle) MarkCompleted(now time.Time) {
	c.Status = StatusCompleted
	c.Unit = curriculum.BookUnits(c.Book)
	c.Progress = 100
	if c.CompletedDate == "" {
		c.CompletedDate = now.Format("2006-01-02")
	}
}

// ValidateForm checks the circle entry: locality and book required, unit
// within the book's range, dates parseable, participant counts
// consistent.
func (c *Circle) ValidateForm() validate.FormResult {
	res := validate.NewFormResult()

	res.Add("locality", validate.Required(c.Locality, "Locality"))
	res.Add("book", validate.Required(c.Book, "Book"))
	if c.Book != "" {
		if _, ok := curriculum.FindRuhiBook(c.Book); !ok {
			res.Add("book", validate.Result{Valid: false, Error: "Unknown book"})
		} else if c.Unit < 1 || c.Unit > curriculum.BookUnits(c.Book) {
			res.Add("unit", validate.Result{Valid: false, Error: "Unit is out of range for the book"})
		}
	}
	res.Add("startDate", validate.Date(c.StartDate))
	res.Add("completedDate", validate.Date(c.CompletedDate))

	if c.TotalParticipants != 0 || c.BahaiParticipants != 0 {
		res.Add("participants", validate.Participants(c.TotalParticipants, c.BahaiParticipants))
	}

	return res
}
