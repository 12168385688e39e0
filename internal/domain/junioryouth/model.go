package junioryouth

import (
	"errors"
	"time"

	"srp/internal/domain/curriculum"
	"srp/internal/domain/record"
	"srp/internal/domain/validate"
)

// Group status values. A record with no status counts as active.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusSuspended = "suspended"
)

// Domain errors.
var (
	ErrNoCurrentBook = errors.New("group has no current book")
	ErrNotActive     = errors.New("group is not active")
)

// CompletedBook is one entry of the completed-books history: the book,
// its date range, and a participant snapshot taken at completion.
type CompletedBook struct {
	Book         string `json:"book"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate"`
	Participants int    `json:"participants"`
}

// Participant is one junior youth on the group roster.
type Participant struct {
	Name       string `json:"name"`
	Age        string `json:"age,omitempty"`
	Registered string `json:"registered,omitempty"`
}

// Group is one junior youth group record. Animators reference individual
// records by id; the prerequisite (completion of Ruhi book 5) is checked
// at entry time, not enforced at rest.
type Group struct {
	record.Meta

	Locality          string          `json:"locality"`
	Animators         []string        `json:"animators,omitempty"`
	CurrentBook       string          `json:"currentBook"`
	CompletedBooks    []CompletedBook `json:"completedBooks,omitempty"`
	Participants      []Participant   `json:"participants,omitempty"`
	TotalParticipants int             `json:"totalParticipants"`
	BahaiParticipants int             `json:"bahaiParticipants"`
	StartDate         string          `json:"startDate,omitempty"`
	EndDate           string          `json:"endDate,omitempty"`
	Status            string          `json:"status"`
}

// Normalize applies the declared defaults so read sites never see a
// missing status.
func (g *Group) Normalize() {
	if g.Status == "" {
		g.Status = StatusActive
	}
}

// IsActive reports whether the group counts toward active participation.
func (g *Group) IsActive() bool {
	return g.Status == StatusActive || g.Status == ""
}

// IsCompleted reports whether the group finished the full sequence.
func (g *Group) IsCompleted() bool {
	return g.Status == StatusCompleted
}

// CompleteCurrentBook records the current book as completed with a
// participant snapshot and advances to the next book in the sequence.
// PRE: group is active and has a current book
// POST: history gains one entry; CurrentBook advances or, at the end of
// the sequence, the group is marked completed with an end date
func (g *Group) CompleteCurrentBook(now time.Time) error {
	if !g.IsActive() {
		return ErrNotActive
	}
	if g.CurrentBook == "" {
		return ErrNoCurrentBook
	}

	completed := CompletedBook{
		Book:         g.CurrentBook,
		StartDate:    g.StartDate,
		EndDate:      now.Format("2006-01-02"),
		Participants: g.TotalParticipants,
	}
	g.CompletedBooks = append(g.CompletedBooks, completed)

	next, ok := curriculum.NextJuniorYouthBook(g.CurrentBook)
	if ok {
		g.CurrentBook = next
		g.Status = StatusActive
		return nil
	}
	g.CurrentBook = ""
	g.Status = StatusCompleted
	if g.EndDate == "" {
		g.EndDate = now.Format("2006-01-02")
	}
	return nil
}

// ValidateForm checks the group entry: locality required, a current book
// required unless the group is completed, dates parseable, participant
// counts consistent.
func (g *Group) ValidateForm() validate.FormResult {
	res := validate.NewFormResult()

	res.Add("locality", validate.Required(g.Locality, "Locality"))
	if g.Status != StatusCompleted {
		res.Add("currentBook", validate.Required(g.CurrentBook, "Current book"))
	}
	res.Add("startDate", validate.Date(g.StartDate))
	res.Add("endDate", validate.Date(g.EndDate))

	if g.TotalParticipants != 0 || g.BahaiParticipants != 0 {
		res.Add("participants", validate.Participants(g.TotalParticipants, g.BahaiParticipants))
	}

	return res
}
