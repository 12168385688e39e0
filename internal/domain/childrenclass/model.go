package childrenclass

import (
	"srp/internal/domain/curriculum"
	"srp/internal/domain/record"
	"srp/internal/domain/validate"
)

// Class status values. A record with no status counts as active.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusSuspended = "suspended"
)

// Child is one row of the optional embedded roster.
type Child struct {
	Name       string `json:"name"`
	Age        string `json:"age,omitempty"`
	Registered string `json:"registered,omitempty"`
}

// Class is one children's class record.
type Class struct {
	record.Meta

	Locality          string  `json:"locality"`
	Teachers          string  `json:"teachers,omitempty"`
	Grade             string  `json:"grade"`
	StartDate         string  `json:"startDate,omitempty"`
	EndDate           string  `json:"endDate,omitempty"`
	TotalParticipants int     `json:"totalParticipants"`
	BahaiParticipants int     `json:"bahaiParticipants"`
	Status            string  `json:"status"`
	Children          []Child `json:"children,omitempty"`
}

// Normalize applies the declared defaults so read sites never see a
// missing status.
func (c *Class) Normalize() {
	if c.Status == "" {
		c.Status = StatusActive
	}
}

// IsActive reports whether the class counts toward active participation.
func (c *Class) IsActive() bool {
	return c.Status == StatusActive || c.Status == ""
}

// IsCompleted reports whether the class finished its grade.
func (c *Class) IsCompleted() bool {
	return c.Status == StatusCompleted
}

// ValidateForm checks the class entry: locality and grade required, grade
// one of G1..G6, dates parseable, and the participant counts consistent.
func (c *Class) ValidateForm() validate.FormResult {
	res := validate.NewFormResult()

	res.Add("locality", validate.Required(c.Locality, "Locality"))
	res.Add("grade", validate.Required(c.Grade, "Grade"))
	if c.Grade != "" && !curriculum.ValidGrade(c.Grade) {
		res.Add("grade", validate.Result{Valid: false, Error: "Grade must be one of G1-G6"})
	}
	res.Add("startDate", validate.Date(c.StartDate))
	res.Add("endDate", validate.Date(c.EndDate))

	if c.TotalParticipants != 0 || c.BahaiParticipants != 0 {
		res.Add("participants", validate.Participants(c.TotalParticipants, c.BahaiParticipants))
	}

	return res
}
