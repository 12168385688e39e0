package locality

import (
	"srp/internal/domain/record"
	"srp/internal/domain/validate"
)

// Yes/No flag values used by the community activity questions.
const (
	Yes = "Yes"
	No  = "No"
)

// Locality is one reporting entry for a named community. The activity
// flags are Yes/No strings, each optionally paired with a count that is
// only meaningful when the flag is Yes.
type Locality struct {
	record.Meta

	Date                string `json:"date"`
	Region              string `json:"region"`
	Cluster             string `json:"cluster"`
	Locality            string `json:"locality"`
	FocusNeighbourhoods string `json:"focusNeighbourhoods,omitempty"`

	HasLSA       string `json:"hasLSA,omitempty"`
	HasLocalFund string `json:"hasLocalFund,omitempty"`

	ObservesFeast  string `json:"observesFeast,omitempty"`
	FeastAttendees int    `json:"feastAttendees,omitempty"`

	ObservesHolyDays string `json:"observesHolyDays,omitempty"`
	HolyDayAttendees int    `json:"holyDayAttendees,omitempty"`

	HasDevotionals         string `json:"hasDevotionals,omitempty"`
	DevotionalMeetings     int    `json:"devotionalMeetings,omitempty"`
	DevotionalParticipants int    `json:"devotionalParticipants,omitempty"`
	FriendsOfFaith         int    `json:"friendsOfFaith,omitempty"`

	ConductsHomeVisits string `json:"conductsHomeVisits,omitempty"`
	HomesVisited       int    `json:"homesVisited,omitempty"`
}

// ValidateForm checks the locality entry the way the data-entry form
// does: date, region, cluster and locality are required, and each count
// paired with a Yes flag must be a valid non-negative number.
// POST: returns a per-field error map; Valid() is true when the map is empty
func (l *Locality) ValidateForm() validate.FormResult {
	res := validate.NewFormResult()

	res.Add("date", validate.Required(l.Date, "date"))
	res.Add("date", validate.Date(l.Date))
	res.Add("region", validate.Required(l.Region, "region"))
	res.Add("cluster", validate.Required(l.Cluster, "cluster"))
	res.Add("locality", validate.Required(l.Locality, "locality"))

	if l.ObservesFeast == Yes {
		res.Add("feastAttendees", validate.NonNegative(l.FeastAttendees, "Please enter a valid number of attendees"))
	}
	if l.ObservesHolyDays == Yes {
		res.Add("holyDayAttendees", validate.NonNegative(l.HolyDayAttendees, "Please enter a valid number of attendees"))
	}
	if l.HasDevotionals == Yes {
		res.Add("devotionalMeetings", validate.NonNegative(l.DevotionalMeetings, "Please enter a valid number"))
		res.Add("devotionalParticipants", validate.NonNegative(l.DevotionalParticipants, "Please enter a valid number"))
		res.Add("friendsOfFaith", validate.NonNegative(l.FriendsOfFaith, "Please enter a valid number"))
	}
	if l.ConductsHomeVisits == Yes {
		res.Add("homesVisited", validate.NonNegative(l.HomesVisited, "Please enter a valid number"))
	}

	return res
}
