package orchestrators

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"srp/internal/adapters/files"
	classStore "srp/internal/adapters/storage/childrenclass"
	individualStore "srp/internal/adapters/storage/individual"
	groupStore "srp/internal/adapters/storage/junioryouth"
	localityStore "srp/internal/adapters/storage/locality"
	circleStore "srp/internal/adapters/storage/studycircle"
	classDomain "srp/internal/domain/childrenclass"
	"srp/internal/domain/export"
	individualDomain "srp/internal/domain/individual"
	groupDomain "srp/internal/domain/junioryouth"
	localityDomain "srp/internal/domain/locality"
	circleDomain "srp/internal/domain/studycircle"
)

// ErrNoRecords signals that an entity type has nothing to export. The
// caller must not write an empty file in that case.
var ErrNoRecords = errors.New("no records to export")

// ExportDeps holds the full store set plus the host file capability.
type ExportDeps struct {
	LocalityStore   localityStore.Store
	IndividualStore individualStore.Store
	ClassStore      classStore.Store
	GroupStore      groupStore.Store
	CircleStore     circleStore.Store
	FS              files.FileSystem
}

// BuildExportPayload assembles the full backup document from the stores.
func BuildExportPayload(ctx context.Context, deps ExportDeps, now time.Time) export.Payload {
	data := export.Data{
		Localities:        deps.LocalityStore.List(ctx),
		Individuals:       deps.IndividualStore.List(ctx),
		ChildrenClasses:   deps.ClassStore.List(ctx),
		JuniorYouthGroups: deps.GroupStore.List(ctx),
		StudyCircles:      deps.CircleStore.List(ctx),
	}
	return export.NewPayload(data, now)
}

// ExportJSONInput selects the output path. An empty path skips the file
// write and only returns the serialized document.
type ExportJSONInput struct {
	Path string
}

// ExportJSONResult carries the serialized backup.
type ExportJSONResult struct {
	Path    string
	Content string
	Payload export.Payload
}

// ExecuteExportJSON serializes the entire record set to an indented JSON
// backup and writes it through the host file capability.
func ExecuteExportJSON(ctx context.Context, input ExportJSONInput, deps ExportDeps) (ExportJSONResult, error) {
	payload := BuildExportPayload(ctx, deps, time.Now())
	encoded, err := payload.ToJSON()
	if err != nil {
		return ExportJSONResult{}, fmt.Errorf("encode export: %w", err)
	}

	result := ExportJSONResult{Path: input.Path, Content: string(encoded), Payload: payload}
	if input.Path != "" {
		if err := deps.FS.WriteFile(input.Path, result.Content); err != nil {
			return ExportJSONResult{}, fmt.Errorf("write export: %w", err)
		}
	}

	slog.Info("data exported",
		"format", export.FormatJSON,
		"path", input.Path,
		"localities", payload.Statistics.TotalLocalities,
		"individuals", payload.Statistics.TotalIndividuals,
		"activities", payload.Statistics.TotalActivities,
	)
	return result, nil
}

// ExportCSVInput selects the entity type and output path. An empty path
// skips the file write.
type ExportCSVInput struct {
	EntityType string
	Path       string
}

// ExportCSVResult carries the CSV text for one entity type.
type ExportCSVResult struct {
	Path    string
	Content string
	Rows    int
}

// ExecuteExportCSV serializes one entity type to CSV.
// POST: returns ErrNoRecords when the entity type has zero records, so
// the caller never writes an empty file
func ExecuteExportCSV(ctx context.Context, input ExportCSVInput, deps ExportDeps) (ExportCSVResult, error) {
	var rows [][]string
	switch input.EntityType {
	case "localities":
		rows = localityCSVRows(deps.LocalityStore.List(ctx))
	case "individuals":
		rows = individualCSVRows(deps.IndividualStore.List(ctx))
	case "childrenClasses":
		rows = childrenClassCSVRows(deps.ClassStore.List(ctx))
	case "juniorYouthGroups":
		rows = juniorYouthGroupCSVRows(deps.GroupStore.List(ctx))
	case "studyCircles":
		rows = studyCircleCSVRows(deps.CircleStore.List(ctx))
	default:
		return ExportCSVResult{}, fmt.Errorf("unknown entity type %q", input.EntityType)
	}

	if rows == nil {
		return ExportCSVResult{}, fmt.Errorf("%s: %w", input.EntityType, ErrNoRecords)
	}

	content, err := encodeCSV(rows)
	if err != nil {
		return ExportCSVResult{}, err
	}

	result := ExportCSVResult{Path: input.Path, Content: content, Rows: len(rows) - 1}
	if input.Path != "" {
		if err := deps.FS.WriteFile(input.Path, content); err != nil {
			return ExportCSVResult{}, fmt.Errorf("write export: %w", err)
		}
	}

	slog.Info("data exported", "format", export.FormatCSV, "entity", input.EntityType, "rows", result.Rows)
	return result, nil
}

// encodeCSV renders rows with RFC 4180 quoting: fields containing a
// comma, quote or newline are wrapped in double quotes with inner quotes
// doubled.
func encodeCSV(rows [][]string) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.WriteAll(rows); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// count renders an attendee/participant count the way the original files
// did: zero reads as blank.
func count(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func localityCSVRows(list []localityDomain.Locality) [][]string {
	if len(list) == 0 {
		return nil
	}
	rows := [][]string{{
		"Date", "Region", "Cluster", "Locality", "Focus Neighbourhoods",
		"Has LSA", "Local Fund", "Observes Feast", "Feast Attendees",
		"Observes Holy Days", "Holy Day Attendees", "Has Devotionals",
		"Devotional Meetings", "Devotional Participants", "Friends of Faith",
		"Conducts Home Visits", "Homes Visited",
	}}
	for _, loc := range list {
		rows = append(rows, []string{
			loc.Date, loc.Region, loc.Cluster, loc.Locality, loc.FocusNeighbourhoods,
			loc.HasLSA, loc.HasLocalFund, loc.ObservesFeast, count(loc.FeastAttendees),
			loc.ObservesHolyDays, count(loc.HolyDayAttendees), loc.HasDevotionals,
			count(loc.DevotionalMeetings), count(loc.DevotionalParticipants), count(loc.FriendsOfFaith),
			loc.ConductsHomeVisits, count(loc.HomesVisited),
		})
	}
	return rows
}

// individualCSVRows emits one row per person across all entries.
func individualCSVRows(list []individualDomain.Entry) [][]string {
	if len(list) == 0 {
		return nil
	}
	rows := [][]string{{
		"First Name", "Family Name", "Sex", "Age", "Date of Birth",
		"Registered Bahá'í", "Enrollment Date", "Address",
		"Telephone", "Email",
	}}
	for _, entry := range list {
		for _, p := range entry.Individuals {
			rows = append(rows, []string{
				p.FirstName, p.FamilyName, p.Sex, p.Age, p.DateOfBirth,
				p.Registered, p.EnrollmentDate, p.Address,
				p.Telephone, p.Email,
			})
		}
	}
	return rows
}

func childrenClassCSVRows(list []classDomain.Class) [][]string {
	if len(list) == 0 {
		return nil
	}
	rows := [][]string{{
		"Locality", "Teachers", "Grade", "Start Date", "End Date",
		"Total Participants", "Bahá'í Participants",
	}}
	for _, cls := range list {
		rows = append(rows, []string{
			cls.Locality, cls.Teachers, cls.Grade, cls.StartDate, cls.EndDate,
			count(cls.TotalParticipants), count(cls.BahaiParticipants),
		})
	}
	return rows
}

func juniorYouthGroupCSVRows(list []groupDomain.Group) [][]string {
	if len(list) == 0 {
		return nil
	}
	rows := [][]string{{
		"Locality", "Animators", "Book", "Start Date", "End Date",
		"Total Participants", "Bahá'í Participants",
	}}
	for _, grp := range list {
		rows = append(rows, []string{
			grp.Locality, strings.Join(grp.Animators, ","), grp.CurrentBook,
			grp.StartDate, grp.EndDate,
			count(grp.TotalParticipants), count(grp.BahaiParticipants),
		})
	}
	return rows
}

func studyCircleCSVRows(list []circleDomain.Circle) [][]string {
	if len(list) == 0 {
		return nil
	}
	rows := [][]string{{
		"Locality", "Tutors", "Book", "Start Date", "Completed Date",
		"Total Participants", "Bahá'í Participants",
	}}
	for _, circle := range list {
		rows = append(rows, []string{
			circle.Locality, strings.Join(circle.Tutors, ","), circle.Book,
			circle.StartDate, circle.CompletedDate,
			count(circle.TotalParticipants), count(circle.BahaiParticipants),
		})
	}
	return rows
}
