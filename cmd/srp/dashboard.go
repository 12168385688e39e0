package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"srp/internal/application/projections"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show aggregated community statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := projections.QueryGetDashboard(cmd.Context(), projections.GetDashboardDeps{
				LocalityStore:   current.Localities,
				IndividualStore: current.Individuals,
				ClassStore:      current.Classes,
				GroupStore:      current.Groups,
				CircleStore:     current.Circles,
			})
			if err != nil {
				return err
			}

			fmt.Println("Community Statistics")
			fmt.Println("====================")
			fmt.Printf("Localities:            %d\n", stats.Localities)
			fmt.Printf("Individuals:           %d\n", stats.TotalIndividuals)
			fmt.Printf("Children's classes:    %d\n", stats.ChildrenClasses)
			fmt.Printf("Junior youth groups:   %d\n", stats.JuniorYouthGroups)
			fmt.Printf("Study circles:         %d\n", stats.StudyCircles)
			fmt.Printf("Total activities:      %d\n", stats.TotalActivities)
			fmt.Printf("Active participants:   %d\n", stats.ActiveParticipants)
			fmt.Printf("Completion rate:       %d%%\n", stats.CompletionRate)

			if len(stats.RecentActivities) > 0 {
				fmt.Println()
				fmt.Println("Recent activities:")
				for _, a := range stats.RecentActivities {
					fmt.Printf("  %-20s %-20s %-10s participants=%d\n",
						a.Type, a.Locality, a.Status, a.TotalParticipants)
				}
			}
			return nil
		},
	}
}
