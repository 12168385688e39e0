// Package curriculum holds the static lookup tables the forms and
// aggregation share: age-category bands, children's class grades, the
// Ruhi Institute book sequence and the junior youth text sequence.
// Values follow the SRP 3.1 Reference Guide.
package curriculum

import "math"

// Age category labels.
const (
	CategoryChild       = "Child"
	CategoryJuniorYouth = "Junior Youth"
	CategoryYouth       = "Youth"
	CategoryAdult       = "Adult"
	CategoryUnknown     = "Unknown"
)

// Age band boundaries (inclusive).
const (
	ChildMin       = 0
	ChildMax       = 11
	JuniorYouthMin = 12
	JuniorYouthMax = 14
	YouthMin       = 15
	YouthMax       = 20
	AdultMin       = 21
	AdultMax       = 150
)

// AgeCategory maps an age to its category label.
// POST: returns CategoryUnknown for ages outside [ChildMin, AdultMax]
func AgeCategory(age int) string {
	switch {
	case age >= ChildMin && age <= ChildMax:
		return CategoryChild
	case age >= JuniorYouthMin && age <= JuniorYouthMax:
		return CategoryJuniorYouth
	case age >= YouthMin && age <= YouthMax:
		return CategoryYouth
	case age >= AdultMin && age <= AdultMax:
		return CategoryAdult
	}
	return CategoryUnknown
}

// Grades offered for children's classes.
var Grades = []string{"G1", "G2", "G3", "G4", "G5", "G6"}

// ValidGrade reports whether g is one of the defined children's class grades.
func ValidGrade(g string) bool {
	for _, grade := range Grades {
		if g == grade {
			return true
		}
	}
	return false
}

// RuhiBook describes one book of the main study circle sequence.
type RuhiBook struct {
	ID    string
	Title string
	Units int
}

// RuhiBooks is the ordered study circle sequence. Every book currently
// carries three units.
var RuhiBooks = []RuhiBook{
	{ID: "book1", Title: "Reflections on the Life of the Spirit", Units: 3},
	{ID: "book2", Title: "Arising to Serve", Units: 3},
	{ID: "book3", Title: "Teaching Children's Classes, Grade 1", Units: 3},
	{ID: "book4", Title: "The Twin Manifestations", Units: 3},
	{ID: "book5", Title: "Releasing the Powers of Junior Youth", Units: 3},
	{ID: "book6", Title: "Teaching the Cause", Units: 3},
	{ID: "book7", Title: "Walking Together on a Path of Service", Units: 3},
	{ID: "book8", Title: "The Covenant of Baha'u'llah", Units: 3},
	{ID: "book9", Title: "Gaining an Historical Perspective", Units: 3},
	{ID: "book10", Title: "Building Vibrant Communities", Units: 3},
}

// AnimatorPrerequisiteBook is the Ruhi book a junior youth group animator
// must have completed.
const AnimatorPrerequisiteBook = "book5"

// defaultUnits is used when a book id is unknown, matching the fallback
// the data-entry forms applied.
const defaultUnits = 3

// FindRuhiBook returns the book for an id.
func FindRuhiBook(id string) (RuhiBook, bool) {
	for _, b := range RuhiBooks {
		if b.ID == id {
			return b, true
		}
	}
	return RuhiBook{}, false
}

// BookUnits returns the unit count for a Ruhi book id.
// POST: returns defaultUnits for unknown ids
func BookUnits(id string) int {
	if b, ok := FindRuhiBook(id); ok {
		return b.Units
	}
	return defaultUnits
}

// Progress computes the completion percentage for a unit of a book.
// POST: returns round(100 * unit / units(book)); 0 when unit < 1
func Progress(bookID string, unit int) int {
	if unit < 1 {
		return 0
	}
	units := BookUnits(bookID)
	return int(math.Round(float64(unit) / float64(units) * 100))
}

// JuniorYouthBooks is the ordered junior youth text sequence. Groups
// reference books by title.
var JuniorYouthBooks = []string{
	"Breezes of Confirmation",
	"Walking the Straight Path",
	"Habits of an Orderly Mind",
	"Glimmerings of Hope",
	"Wind of the Holy Spirit",
	"Human Temple",
	"Learning about Excellence",
	"Thinking about Numbers",
	"Observation and Insight",
	"Spirit of Faith",
	"Drawing on the Power of the Word",
	"The Human Temple",
	"Power of the Holy Spirit",
}

// NextJuniorYouthBook returns the book after current in the sequence.
// POST: ok is false when current is the last book or not in the sequence
func NextJuniorYouthBook(current string) (string, bool) {
	for i, b := range JuniorYouthBooks {
		if b == current {
			if i+1 < len(JuniorYouthBooks) {
				return JuniorYouthBooks[i+1], true
			}
			return "", false
		}
	}
	return "", false
}
