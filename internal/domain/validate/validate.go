// Package validate holds the pure field validators applied at
// form-submit time. Validators never mutate state and never touch
// storage; optional fields pass when empty.
package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Validation messages shared by the forms.
const (
	MsgRequired        = "This field is required"
	MsgInvalidEmail    = "Please enter a valid email address"
	MsgInvalidPhone    = "Please enter a valid phone number"
	MsgInvalidDate     = "Please enter a valid date"
	MsgMinAge          = "Age must be 0 or greater"
	MsgMaxAge          = "Age must be 150 or less"
	MsgMinParticipants = "Must have at least 1 participant"
)

// Result is the outcome of a single field validation.
type Result struct {
	Valid bool
	Error string
}

func ok() Result { return Result{Valid: true} }

func fail(msg string) Result { return Result{Valid: false, Error: msg} }

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
)

// IsEmpty reports whether a value counts as absent: empty or
// whitespace-only strings and nil values.
func IsEmpty(value string) bool {
	return strings.TrimSpace(value) == ""
}

// Required fails when value is blank after trimming.
// POST: Error names the field, e.g. "Locality this field is required"
func Required(value, fieldName string) Result {
	if fieldName == "" {
		fieldName = "Field"
	}
	if IsEmpty(value) {
		return fail(fieldName + " " + strings.ToLower(MsgRequired))
	}
	return ok()
}

// Email passes when empty (the field is optional) and otherwise requires
// a local@domain.tld shape.
func Email(email string) Result {
	if IsEmpty(email) {
		return ok()
	}
	if !emailRe.MatchString(email) {
		return fail(MsgInvalidEmail)
	}
	return ok()
}

// Phone passes when empty and otherwise restricts the value to digits,
// spaces, dashes, parentheses and a plus sign.
func Phone(phone string) Result {
	if IsEmpty(phone) {
		return ok()
	}
	if !phoneRe.MatchString(phone) {
		return fail(MsgInvalidPhone)
	}
	return ok()
}

// dateLayouts are the accepted calendar date shapes, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a calendar date in any accepted layout.
func ParseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(value)); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date passes when empty and otherwise requires a parseable calendar date.
func Date(value string) Result {
	if IsEmpty(value) {
		return ok()
	}
	if _, parsed := ParseDate(value); !parsed {
		return fail(MsgInvalidDate)
	}
	return ok()
}

// Age passes when empty and otherwise requires a number in [0, 150].
func Age(value string) Result {
	if IsEmpty(value) {
		return ok()
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fail("Age must be a number")
	}
	if n < 0 {
		return fail(MsgMinAge)
	}
	if n > 150 {
		return fail(MsgMaxAge)
	}
	return ok()
}

// Participants checks the activity participant counts: both non-negative,
// and the Baha'i count never exceeding the total.
func Participants(total, bahai int) Result {
	if total < 0 {
		return fail("Total participants must be a positive number")
	}
	if bahai < 0 {
		return fail("Baha'i participants must be a positive number")
	}
	if bahai > total {
		return fail("Baha'i participants cannot exceed total participants")
	}
	return ok()
}

// NonNegative checks an optional numeric count field.
func NonNegative(n int, msg string) Result {
	if n < 0 {
		return fail(msg)
	}
	return ok()
}

// FormResult aggregates per-field errors for a whole form.
type FormResult struct {
	Errors map[string]string
}

// NewFormResult returns an empty, valid form result.
func NewFormResult() FormResult {
	return FormResult{Errors: make(map[string]string)}
}

// Add records a field result, keeping the first error per field.
func (f *FormResult) Add(field string, r Result) {
	if r.Valid {
		return
	}
	if _, exists := f.Errors[field]; !exists {
		f.Errors[field] = r.Error
	}
}

// Valid reports whether every checked field passed.
func (f FormResult) Valid() bool {
	return len(f.Errors) == 0
}
