package projections

import (
	"context"
	"math"
	"sort"
	"time"

	"srp/internal/domain/childrenclass"
	"srp/internal/domain/individual"
	"srp/internal/domain/junioryouth"
	"srp/internal/domain/locality"
	"srp/internal/domain/studycircle"
	"srp/internal/domain/validate"
)

// Display labels and color classes for the recent-activities list.
const (
	TypeChildrenClass    = "Children's Class"
	TypeJuniorYouthGroup = "Junior Youth Group"
	TypeStudyCircle      = "Study Circle"

	ColorChildrenClass    = "bg-blue-100 text-blue-800"
	ColorJuniorYouthGroup = "bg-green-100 text-green-800"
	ColorStudyCircle      = "bg-purple-100 text-purple-800"
)

// recentLimit caps the recent-activities list.
const recentLimit = 5

// DashboardLocalityStore is the locality surface the dashboard needs.
type DashboardLocalityStore interface {
	List(ctx context.Context) []locality.Locality
}

// DashboardIndividualStore is the individuals surface the dashboard needs.
type DashboardIndividualStore interface {
	List(ctx context.Context) []individual.Entry
}

// DashboardClassStore is the children's class surface the dashboard needs.
type DashboardClassStore interface {
	List(ctx context.Context) []childrenclass.Class
}

// DashboardGroupStore is the junior youth group surface the dashboard needs.
type DashboardGroupStore interface {
	List(ctx context.Context) []junioryouth.Group
}

// DashboardCircleStore is the study circle surface the dashboard needs.
type DashboardCircleStore interface {
	List(ctx context.Context) []studycircle.Circle
}

// GetDashboardDeps holds dependencies for the dashboard projection.
type GetDashboardDeps struct {
	LocalityStore   DashboardLocalityStore
	IndividualStore DashboardIndividualStore
	ClassStore      DashboardClassStore
	GroupStore      DashboardGroupStore
	CircleStore     DashboardCircleStore
}

// RecentActivity is one row of the recent-activities list, tagged with a
// display type and color class.
type RecentActivity struct {
	ID                string
	Type              string
	Color             string
	Locality          string
	Status            string
	TotalParticipants int
	// sortKey is the start date when it parses, the creation instant
	// otherwise.
	sortKey time.Time
}

// DashboardResult carries the derived statistics, recomputed from the
// full store snapshot on every read.
type DashboardResult struct {
	TotalIndividuals   int
	TotalActivities    int
	ChildrenClasses    int
	JuniorYouthGroups  int
	StudyCircles       int
	Localities         int
	ActiveParticipants int
	CompletionRate     int
	RecentActivities   []RecentActivity
}

// QueryGetDashboard scans all five record sequences and derives the
// dashboard statistics. No caching, no incremental maintenance.
// POST: CompletionRate is 0 when there are no activity records
func QueryGetDashboard(ctx context.Context, deps GetDashboardDeps) (DashboardResult, error) {
	individuals := deps.IndividualStore.List(ctx)
	classes := deps.ClassStore.List(ctx)
	groups := deps.GroupStore.List(ctx)
	circles := deps.CircleStore.List(ctx)
	localities := deps.LocalityStore.List(ctx)

	result := DashboardResult{
		TotalIndividuals:  len(individuals),
		ChildrenClasses:   len(classes),
		JuniorYouthGroups: len(groups),
		StudyCircles:      len(circles),
		Localities:        len(localities),
		TotalActivities:   len(classes) + len(groups) + len(circles),
	}

	completed := 0
	for _, c := range classes {
		if c.IsCompleted() {
			completed++
		}
		if c.IsActive() {
			result.ActiveParticipants += c.TotalParticipants
		}
	}
	for _, g := range groups {
		if g.IsCompleted() {
			completed++
		}
		if g.IsActive() {
			result.ActiveParticipants += g.TotalParticipants
		}
	}
	for _, c := range circles {
		if c.IsCompleted() {
			completed++
		}
		if c.IsActive() {
			result.ActiveParticipants += c.TotalParticipants
		}
	}

	if result.TotalActivities > 0 {
		result.CompletionRate = int(math.Round(float64(completed) / float64(result.TotalActivities) * 100))
	}

	result.RecentActivities = recentActivities(classes, groups, circles)
	return result, nil
}

// recentActivities unions the three activity types, sorts descending by
// date and truncates. The sort is stable, so ties keep the concatenation
// order: classes, then groups, then circles.
func recentActivities(classes []childrenclass.Class, groups []junioryouth.Group, circles []studycircle.Circle) []RecentActivity {
	var all []RecentActivity
	for _, c := range classes {
		all = append(all, RecentActivity{
			ID: c.ID, Type: TypeChildrenClass, Color: ColorChildrenClass,
			Locality: c.Locality, Status: c.Status, TotalParticipants: c.TotalParticipants,
			sortKey: activityDate(c.StartDate, c.Timestamp),
		})
	}
	for _, g := range groups {
		all = append(all, RecentActivity{
			ID: g.ID, Type: TypeJuniorYouthGroup, Color: ColorJuniorYouthGroup,
			Locality: g.Locality, Status: g.Status, TotalParticipants: g.TotalParticipants,
			sortKey: activityDate(g.StartDate, g.Timestamp),
		})
	}
	for _, c := range circles {
		all = append(all, RecentActivity{
			ID: c.ID, Type: TypeStudyCircle, Color: ColorStudyCircle,
			Locality: c.Locality, Status: c.Status, TotalParticipants: c.TotalParticipants,
			sortKey: activityDate(c.StartDate, c.Timestamp),
		})
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].sortKey.After(all[j].sortKey)
	})
	if len(all) > recentLimit {
		all = all[:recentLimit]
	}
	return all
}

// activityDate picks the first usable instant: the start date when it
// parses, the creation timestamp otherwise.
func activityDate(startDate string, timestamp time.Time) time.Time {
	if t, ok := validate.ParseDate(startDate); ok {
		return t
	}
	return timestamp
}
