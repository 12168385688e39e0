package export

import (
	"encoding/json"
	"time"

	"srp/internal/domain/childrenclass"
	"srp/internal/domain/individual"
	"srp/internal/domain/junioryouth"
	"srp/internal/domain/locality"
	"srp/internal/domain/studycircle"
)

// Application metadata stamped into every export.
const (
	AppName    = "SI-NSA SRP"
	AppVersion = "1.0.0"
)

// Format constants for export output.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// EntityTypes lists the exportable entity type names in their canonical
// order. The names double as the keys of Data in the JSON payload.
var EntityTypes = []string{
	"localities",
	"individuals",
	"childrenClasses",
	"juniorYouthGroups",
	"studyCircles",
}

// AppInfo identifies the producing application inside a backup file.
type AppInfo struct {
	Name       string    `json:"name"`
	Version    string    `json:"version"`
	ExportDate time.Time `json:"exportDate"`
}

// Data holds the full record set, one array per entity type.
type Data struct {
	Localities        []locality.Locality   `json:"localities"`
	Individuals       []individual.Entry    `json:"individuals"`
	ChildrenClasses   []childrenclass.Class `json:"childrenClasses"`
	JuniorYouthGroups []junioryouth.Group   `json:"juniorYouthGroups"`
	StudyCircles      []studycircle.Circle  `json:"studyCircles"`
}

// Statistics duplicates counts computable from Data. Redundant, but part
// of the file contract: consumers may read them without recomputation.
type Statistics struct {
	TotalLocalities  int `json:"totalLocalities"`
	TotalIndividuals int `json:"totalIndividuals"`
	TotalActivities  int `json:"totalActivities"`
}

// Payload is the complete backup document.
type Payload struct {
	AppInfo    AppInfo    `json:"appInfo"`
	Data       Data       `json:"data"`
	Statistics Statistics `json:"statistics"`
}

// NewPayload assembles a backup from the full record set, computing the
// duplicated statistics block. Absent entity sets serialize as empty
// arrays, never null.
func NewPayload(data Data, now time.Time) Payload {
	if data.Localities == nil {
		data.Localities = []locality.Locality{}
	}
	if data.Individuals == nil {
		data.Individuals = []individual.Entry{}
	}
	if data.ChildrenClasses == nil {
		data.ChildrenClasses = []childrenclass.Class{}
	}
	if data.JuniorYouthGroups == nil {
		data.JuniorYouthGroups = []junioryouth.Group{}
	}
	if data.StudyCircles == nil {
		data.StudyCircles = []studycircle.Circle{}
	}
	return Payload{
		AppInfo: AppInfo{
			Name:       AppName,
			Version:    AppVersion,
			ExportDate: now.UTC(),
		},
		Data: data,
		Statistics: Statistics{
			TotalLocalities:  len(data.Localities),
			TotalIndividuals: len(data.Individuals),
			TotalActivities:  len(data.ChildrenClasses) + len(data.JuniorYouthGroups) + len(data.StudyCircles),
		},
	}
}

// ToJSON serializes the payload, indented for human inspection.
func (p Payload) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}
