// Package reports renders the statistical summary the reports view
// shows: a markdown document derived from the dashboard projection,
// optionally rendered to a standalone HTML page.
package reports

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"srp/internal/application/projections"
	"srp/internal/domain/export"
)

// mdRenderer is a goldmark instance for the HTML report. The table
// extension is required: the report body is built from pipe tables.
// Report content is generated, not user-authored, but raw HTML stays
// escaped anyway.
var mdRenderer = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// BuildMarkdown renders the statistical report as markdown.
func BuildMarkdown(stats projections.DashboardResult, now time.Time) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s Statistical Report\n\n", export.AppName)
	fmt.Fprintf(&sb, "Generated %s\n\n", now.Format("2 January 2006"))

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Measure | Value |\n")
	sb.WriteString("|---|---|\n")
	fmt.Fprintf(&sb, "| Localities | %d |\n", stats.Localities)
	fmt.Fprintf(&sb, "| Individual entries | %d |\n", stats.TotalIndividuals)
	fmt.Fprintf(&sb, "| Children's classes | %d |\n", stats.ChildrenClasses)
	fmt.Fprintf(&sb, "| Junior youth groups | %d |\n", stats.JuniorYouthGroups)
	fmt.Fprintf(&sb, "| Study circles | %d |\n", stats.StudyCircles)
	fmt.Fprintf(&sb, "| Total activities | %d |\n", stats.TotalActivities)
	fmt.Fprintf(&sb, "| Active participants | %d |\n", stats.ActiveParticipants)
	fmt.Fprintf(&sb, "| Completion rate | %d%% |\n\n", stats.CompletionRate)

	if len(stats.RecentActivities) > 0 {
		sb.WriteString("## Recent Activities\n\n")
		sb.WriteString("| Type | Locality | Status | Participants |\n")
		sb.WriteString("|---|---|---|---|\n")
		for _, a := range stats.RecentActivities {
			fmt.Fprintf(&sb, "| %s | %s | %s | %d |\n", a.Type, a.Locality, a.Status, a.TotalParticipants)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderHTML converts the markdown report into a standalone HTML page.
func RenderHTML(markdown string) (string, error) {
	var body bytes.Buffer
	if err := mdRenderer.Convert([]byte(markdown), &body); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}

	var page strings.Builder
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	page.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&page, "<title>%s Statistical Report</title>\n", export.AppName)
	page.WriteString("</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.String(), nil
}
