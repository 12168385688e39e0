package individual

import (
	"strconv"
	"strings"

	"srp/internal/domain/curriculum"
	"srp/internal/domain/record"
	"srp/internal/domain/validate"
)

// Sex values.
const (
	SexMale   = "M"
	SexFemale = "F"
)

// Registered Baha'i flag values.
const (
	RegisteredYes = "Y"
	RegisteredNo  = "N"
)

// Person is one individual row inside an entry. Age is kept as entered
// (a number or free text); AgeNumber parses it when possible.
type Person struct {
	FirstName          string   `json:"firstName"`
	FamilyName         string   `json:"familyName,omitempty"`
	Sex                string   `json:"sex"`
	Age                string   `json:"age,omitempty"`
	DateOfBirth        string   `json:"dateOfBirth,omitempty"`
	Registered         string   `json:"registered,omitempty"`
	EnrollmentDate     string   `json:"enrollmentDate,omitempty"`
	Address            string   `json:"address,omitempty"`
	Telephone          string   `json:"telephone,omitempty"`
	Email              string   `json:"email,omitempty"`
	CompletedRuhiBooks []string `json:"completedRuhiBooks,omitempty"`
}

// Entry is one stored record: a region/cluster/locality context and one
// or more person rows entered together.
type Entry struct {
	record.Meta

	Region      string   `json:"region"`
	Cluster     string   `json:"cluster"`
	Locality    string   `json:"locality"`
	Individuals []Person `json:"individuals"`
}

// AgeNumber parses the free-text age.
// POST: ok is false when the age is blank or not numeric
func (p Person) AgeNumber() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(p.Age))
	if err != nil {
		return 0, false
	}
	return n, true
}

// AgeCategory maps the person's age to its fixed band.
// POST: returns curriculum.CategoryUnknown when the age is not numeric
func (p Person) AgeCategory() string {
	n, ok := p.AgeNumber()
	if !ok {
		return curriculum.CategoryUnknown
	}
	return curriculum.AgeCategory(n)
}

// HasCompletedBook reports whether the person finished a Ruhi book.
func (p Person) HasCompletedBook(bookID string) bool {
	for _, b := range p.CompletedRuhiBooks {
		if b == bookID {
			return true
		}
	}
	return false
}

// FullName joins first and family name.
func (p Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.FamilyName)
}

// ValidateForm checks the entry: at least one person row, and for each
// row a first name and sex plus well-formed optional contact fields.
// Field keys for row errors are suffixed with the row index, matching how
// the form reported them per row.
func (e *Entry) ValidateForm() validate.FormResult {
	res := validate.NewFormResult()

	if len(e.Individuals) == 0 {
		res.Add("individuals", validate.Result{Valid: false, Error: "At least one individual is required"})
		return res
	}

	for i, p := range e.Individuals {
		idx := strconv.Itoa(i)
		res.Add("firstName."+idx, validate.Required(p.FirstName, "First name"))
		res.Add("sex."+idx, validate.Required(p.Sex, "Sex"))
		res.Add("email."+idx, validate.Email(p.Email))
		res.Add("telephone."+idx, validate.Phone(p.Telephone))
		res.Add("age."+idx, validate.Age(p.Age))
		res.Add("dateOfBirth."+idx, validate.Date(p.DateOfBirth))
		res.Add("enrollmentDate."+idx, validate.Date(p.EnrollmentDate))
	}

	return res
}
